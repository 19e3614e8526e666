package contact_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devcodecare/site/modules/contact"
)

func validForm() map[string]any {
	return map[string]any{
		"name":    "Jo Smith",
		"email":   "jo@example.com",
		"subject": "Project inquiry",
		"message": "I would like to talk about a new website.",
	}
}

func with(overrides map[string]any) map[string]any {
	form := validForm()
	for k, v := range overrides {
		if v == nil {
			delete(form, k)
			continue
		}
		form[k] = v
	}
	return form
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        any
		wantErrors contact.FieldErrors
	}{
		{name: "valid", raw: validForm()},
		{name: "valid with service", raw: with(map[string]any{"service": "web"})},
		{name: "valid other service", raw: with(map[string]any{"service": "other", "otherService": "Consulting"})},
		{name: "empty service means none", raw: with(map[string]any{"service": ""})},
		{name: "not an object", raw: []any{"a"}, wantErrors: contact.FieldErrors{"general": "Invalid form data"}},
		{name: "nil", raw: nil, wantErrors: contact.FieldErrors{"general": "Invalid form data"}},
		{
			name: "missing required fields",
			raw:  map[string]any{},
			wantErrors: contact.FieldErrors{
				"name":    "Name is required",
				"email":   "Email is required",
				"subject": "Subject is required",
				"message": "Message is required",
			},
		},
		{
			name:       "wrong type",
			raw:        with(map[string]any{"name": 42.0, "service": true}),
			wantErrors: contact.FieldErrors{"name": "Name must be a string", "service": "Service must be a string"},
		},
		{name: "name too short", raw: with(map[string]any{"name": "J"}), wantErrors: contact.FieldErrors{"name": "Name must be at least 2 characters"}},
		{name: "empty name", raw: with(map[string]any{"name": ""}), wantErrors: contact.FieldErrors{"name": "Name must be at least 2 characters"}},
		{name: "name too long", raw: with(map[string]any{"name": strings.Repeat("a", 101)}), wantErrors: contact.FieldErrors{"name": "Name must be less than 100 characters"}},
		{name: "name bad chars", raw: with(map[string]any{"name": "Jo <b>"}), wantErrors: contact.FieldErrors{"name": "Name can only contain letters, spaces, hyphens, and apostrophes"}},
		{name: "name with apostrophe and hyphen", raw: with(map[string]any{"name": "Mary-Jane O'Neil"})},
		{name: "invalid email", raw: with(map[string]any{"email": "not-an-email"}), wantErrors: contact.FieldErrors{"email": "Please enter a valid email address"}},
		{name: "email display name", raw: with(map[string]any{"email": "Jo <jo@example.com>"}), wantErrors: contact.FieldErrors{"email": "Please enter a valid email address"}},
		{name: "email with apostrophe", raw: with(map[string]any{"email": "o'neil@example.com"}), wantErrors: contact.FieldErrors{"email": "Please enter a valid email address"}},
		{name: "email with handler pattern", raw: with(map[string]any{"email": "onx=1@example.com"}), wantErrors: contact.FieldErrors{"email": "Please enter a valid email address"}},
		{
			name:       "email too long",
			raw:        with(map[string]any{"email": strings.Repeat("a", 64) + "@" + strings.Repeat("b", 190) + ".com"}),
			wantErrors: contact.FieldErrors{"email": "Email must be less than 255 characters"},
		},
		{name: "subject too short", raw: with(map[string]any{"subject": "H"}), wantErrors: contact.FieldErrors{"subject": "Subject must be at least 2 characters"}},
		{name: "subject too long", raw: with(map[string]any{"subject": strings.Repeat("s", 201)}), wantErrors: contact.FieldErrors{"subject": "Subject must be less than 200 characters"}},
		{name: "unknown service", raw: with(map[string]any{"service": "gardening"}), wantErrors: contact.FieldErrors{"service": "Please select a valid service"}},
		{
			name:       "other service too long",
			raw:        with(map[string]any{"service": "web", "otherService": strings.Repeat("o", 201)}),
			wantErrors: contact.FieldErrors{"otherService": "Other service must be less than 200 characters"},
		},
		{name: "message too short", raw: with(map[string]any{"message": "short"}), wantErrors: contact.FieldErrors{"message": "Message must be at least 10 characters"}},
		{name: "message too long", raw: with(map[string]any{"message": strings.Repeat("m", 5001)}), wantErrors: contact.FieldErrors{"message": "Message must be less than 5000 characters"}},
		{name: "lengths count code points", raw: with(map[string]any{"message": strings.Repeat("é", 10)})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, errs := contact.Validate(tt.raw)
			if tt.wantErrors == nil {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.wantErrors, errs)
		})
	}
}

func TestValidateOtherServiceRequired(t *testing.T) {
	t.Parallel()

	for _, other := range []any{nil, "", "   ", "x", " x "} {
		raw := with(map[string]any{"service": "other"})
		if other != nil {
			raw["otherService"] = other
		}
		_, errs := contact.Validate(raw)
		assert.Equal(t, "Please specify the other service", errs["otherService"], "otherService=%q", other)

		// Reported alongside unrelated field errors too.
		raw["message"] = "short"
		_, errs = contact.Validate(raw)
		assert.Contains(t, errs, "otherService")
		assert.Contains(t, errs, "message")
	}
}

func TestValidateSanitizes(t *testing.T) {
	t.Parallel()

	sub, errs := contact.Validate(with(map[string]any{
		"email":        "Jo.Smith@Example.COM",
		"subject":      "  <b>Hello</b> onclick=alert(1)  ",
		"service":      "other",
		"otherService": "JavaScript:Consulting",
		"message":      "Visit javascript:alert('x') <script>now</script>\nThanks",
	}))
	require.Empty(t, errs)

	assert.Equal(t, "Jo Smith", sub.Name)
	assert.Equal(t, "jo.smith@example.com", sub.Email)
	assert.Equal(t, "bHello/b alert(1)", sub.Subject)
	assert.Equal(t, contact.ServiceOther, sub.Service)
	assert.Equal(t, "Consulting", sub.OtherService)
	assert.Equal(t, "Visit alert('x') scriptnow/script\nThanks", sub.Message)
}

func TestValidateEmailNormalized(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"jo@x.com", "JO@X.COM", "First.Last+tag@Sub.Example.org", "a_b-c@d.io"} {
		sub, errs := contact.Validate(with(map[string]any{"email": in}))
		require.Empty(t, errs, in)
		assert.Equal(t, strings.ToLower(in), sub.Email)
		assert.NotContains(t, sub.Email, "<")
		assert.NotContains(t, sub.Email, ">")
		assert.False(t, strings.ContainsAny(sub.Email, `&"'`), "no HTML-sensitive characters")
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	t.Parallel()

	first, errs := contact.Validate(with(map[string]any{
		"subject": "javajavascript:script:<<x>> ononclick=click=",
		"message": "Hello there onmouseover=go() and more",
	}))
	require.Empty(t, errs)

	second, errs := contact.Validate(map[string]any{
		"name":    first.Name,
		"email":   first.Email,
		"subject": first.Subject,
		"message": first.Message,
	})
	require.Empty(t, errs)
	assert.Equal(t, first, second)
}
