package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devcodecare/site/pkg/requestid"
)

// serveWithID runs the middleware and returns the id seen by the next
// handler together with the echoed response header.
func serveWithID(t *testing.T, header string, set bool) (seen, echoed string) {
	t.Helper()

	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	if set {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	return seen, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("client ids are kept when well formed", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{
			"abc123",
			"edge_7F-22",
			"550e8400-e29b-41d4-a716-446655440000",
			strings.Repeat("x", 128),
		} {
			seen, echoed := serveWithID(t, id, true)
			assert.Equal(t, id, seen)
			assert.Equal(t, id, echoed)
		}
	})

	t.Run("missing or malformed ids are replaced", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			header string
			set    bool
		}{
			{"absent", "", false},
			{"empty", "", true},
			{"spaces", "req 42", true},
			{"path", "../../etc", true},
			{"markup", "<b>id</b>", true},
			{"header injection", "id\r\nSet-Cookie: x=1", true},
			{"too long", strings.Repeat("x", 129), true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				seen, echoed := serveWithID(t, tt.header, tt.set)

				assert.Equal(t, seen, echoed)
				_, err := uuid.Parse(seen)
				assert.NoError(t, err, "generated id %q", seen)
			})
		}
	})

	t.Run("each request gets its own id", func(t *testing.T) {
		t.Parallel()
		first, _ := serveWithID(t, "", false)
		second, _ := serveWithID(t, "", false)
		assert.NotEqual(t, first, second)
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))

	ctx := requestid.WithContext(context.Background(), "req-1")
	assert.Equal(t, "req-1", requestid.FromContext(ctx))

	ctx = requestid.WithContext(ctx, "req-2")
	assert.Equal(t, "req-2", requestid.FromContext(ctx))
}
