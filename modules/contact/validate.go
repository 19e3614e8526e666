package contact

import (
	"regexp"
	"strings"

	"github.com/devcodecare/site/pkg/sanitizer"
	"github.com/devcodecare/site/pkg/validator"
)

const (
	nameMin         = 2
	nameMax         = 100
	emailMax        = 255
	subjectMin      = 2
	subjectMax      = 200
	otherServiceMin = 2
	otherServiceMax = 200
	messageMin      = 10
	messageMax      = 5000
)

var namePattern = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)

// htmlSensitive are characters an accepted email address must not contain,
// although some of them are legal in an addr-spec.
const htmlSensitive = `<>&"'`

var (
	clean      = sanitizer.StripUnsafe
	cleanEmail = sanitizer.Compose(sanitizer.NormalizeEmail, sanitizer.StripUnsafe)
)

// Validate checks a decoded JSON value against the contact form rules and
// returns the sanitized submission. Each invalid field reports the first rule
// it broke. Sanitization runs only once every rule passes.
func Validate(raw any) (Submission, FieldErrors) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Submission{}, FieldErrors{GeneralField: "Invalid form data"}
	}

	errs := FieldErrors{}
	name, hasName := stringField(obj, "name", "Name", true, errs)
	email, hasEmail := stringField(obj, "email", "Email", true, errs)
	subject, hasSubject := stringField(obj, "subject", "Subject", true, errs)
	service, hasService := stringField(obj, "service", "Service", false, errs)
	other, hasOther := stringField(obj, "otherService", "Other service", false, errs)
	message, hasMessage := stringField(obj, "message", "Message", true, errs)

	// An empty selection is the form's "no service" option.
	hasService = hasService && service != ""

	var rules []validator.Rule
	if hasName {
		rules = append(rules,
			validator.MinLen("name", name, nameMin).WithMessage("Name must be at least 2 characters"),
			validator.MaxLen("name", name, nameMax).WithMessage("Name must be less than 100 characters"),
			validator.Matches("name", name, namePattern, "name").
				WithMessage("Name can only contain letters, spaces, hyphens, and apostrophes"),
		)
	}
	if hasEmail {
		rules = append(rules,
			validator.ValidEmail("email", email).WithMessage("Please enter a valid email address"),
			validator.MaxLen("email", email, emailMax).WithMessage("Email must be less than 255 characters"),
			safeEmail("email", email),
		)
	}
	if hasSubject {
		rules = append(rules,
			validator.MinLen("subject", subject, subjectMin).WithMessage("Subject must be at least 2 characters"),
			validator.MaxLen("subject", subject, subjectMax).WithMessage("Subject must be less than 200 characters"),
		)
	}
	if hasService {
		rules = append(rules,
			validator.InListString("service", service, ServiceValues()).WithMessage("Please select a valid service"),
		)
	}
	if hasOther {
		rules = append(rules,
			validator.MaxLen("otherService", other, otherServiceMax).WithMessage("Other service must be less than 200 characters"),
		)
	}
	if _, typeErr := errs["otherService"]; !typeErr {
		rules = append(rules, validator.When(hasService && Service(service) == ServiceOther,
			validator.MinLenTrimmed("otherService", other, otherServiceMin).WithMessage("Please specify the other service"),
		))
	}
	if hasMessage {
		rules = append(rules,
			validator.MinLen("message", message, messageMin).WithMessage("Message must be at least 10 characters"),
			validator.MaxLen("message", message, messageMax).WithMessage("Message must be less than 5000 characters"),
		)
	}

	if err := validator.ApplyFirst(rules...); err != nil {
		for field, msg := range validator.ExtractValidationErrors(err).Map() {
			if _, exists := errs[field]; !exists {
				errs[field] = msg
			}
		}
	}
	if len(errs) > 0 {
		return Submission{}, errs
	}

	sub := Submission{
		Name:    clean(name),
		Email:   cleanEmail(email),
		Subject: clean(subject),
		Message: clean(message),
	}
	if hasService {
		sub.Service = Service(clean(service))
	}
	if hasOther {
		sub.OtherService = clean(other)
	}
	return sub, nil
}

// stringField reads key from obj. Absent and null values are reported as
// missing when required; non-string values are always an error.
func stringField(obj map[string]any, key, label string, required bool, errs FieldErrors) (string, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		if required {
			errs[key] = label + " is required"
		}
		return "", false
	}

	s, ok := v.(string)
	if !ok {
		errs[key] = label + " must be a string"
		return "", false
	}
	return s, true
}

// safeEmail rejects addresses that sanitization would alter or that carry
// HTML-sensitive characters, so an accepted address is delivered as typed.
func safeEmail(field, value string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			lower := strings.ToLower(value)
			return !strings.ContainsAny(lower, htmlSensitive) && cleanEmail(lower) == lower
		},
		Error: validator.ValidationError{
			Field:   field,
			Message: "Please enter a valid email address",
			Code:    "validation.email",
		},
	}
}
