package contact

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/devcodecare/site/handler"
	"github.com/devcodecare/site/pkg/binder"
	"github.com/devcodecare/site/pkg/clientip"
	"github.com/devcodecare/site/pkg/logger"
	"github.com/devcodecare/site/pkg/ratelimit"
)

// Response messages.
const (
	msgMethodNotAllowed = "Method not allowed"
	msgTooManyRequests  = "Too many requests. Please try again later."
	msgInvalidBody      = "Invalid request body"
	msgFixErrors        = "Please fix the errors below"
	msgSendFailed       = "Failed to send message"
	msgUnexpected       = "An unexpected error occurred. Please try again later."
)

// Response is the JSON body of every contact endpoint reply.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  FieldErrors `json:"errors,omitempty"`
}

// Handler serves POST /api/contact: rate limit, parse, validate, dispatch.
type Handler struct {
	limiter      ratelimit.Limiter
	sender       Sender
	log          *slog.Logger
	metrics      *Metrics
	keyFunc      func(*http.Request) string
	exposeErrors bool
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the handler logger.
func WithLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		h.log = logger.OrDefault(log)
	}
}

// WithMetrics records submission results on m.
func WithMetrics(m *Metrics) HandlerOption {
	return func(h *Handler) {
		h.metrics = m
	}
}

// WithKeyFunc replaces clientip.Key as the rate-limit key source.
func WithKeyFunc(fn func(*http.Request) string) HandlerOption {
	return func(h *Handler) {
		if fn != nil {
			h.keyFunc = fn
		}
	}
}

// WithErrorDetail controls whether delivery error detail is returned in 500
// responses. It is off by default and should stay off in production.
func WithErrorDetail(expose bool) HandlerOption {
	return func(h *Handler) {
		h.exposeErrors = expose
	}
}

// NewHandler creates the contact form handler. limiter and sender are required.
func NewHandler(limiter ratelimit.Limiter, sender Sender, opts ...HandlerOption) *Handler {
	if limiter == nil {
		panic("contact.NewHandler: nil limiter")
	}
	if sender == nil {
		panic("contact.NewHandler: nil sender")
	}

	h := &Handler{
		limiter: limiter,
		sender:  sender,
		log:     slog.Default(),
		keyFunc: clientip.Key,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	w := handler.NewStatusWriter(rw)
	ctx := r.Context()

	defer func() {
		if rec := recover(); rec != nil {
			h.log.ErrorContext(ctx, "contact handler panic",
				logger.Error(fmt.Errorf("%w: %v", ErrUnexpectedFault, rec)))
			h.metrics.submission(ctx, resultPanic)
			if !w.Written() {
				h.reply(w, r, http.StatusInternalServerError, Response{Message: msgUnexpected})
			}
		}
	}()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.reply(w, r, http.StatusMethodNotAllowed, Response{Message: msgMethodNotAllowed})
		return
	}

	key := h.keyFunc(r)
	res, known := h.admit(r, key)
	if !res.Allowed {
		retry := strconv.Itoa(res.RetryAfterSeconds())
		h.log.DebugContext(ctx, "contact rate limit exceeded", logger.ClientIP(key))
		h.metrics.submission(ctx, resultRateLimited)
		h.reply(w, r, http.StatusTooManyRequests, Response{
			Message: msgTooManyRequests,
			Errors:  FieldErrors{GeneralField: "Rate limit exceeded"},
		},
			handler.WithHeader("X-RateLimit-Remaining", "0"),
			handler.WithHeader("X-RateLimit-Reset", retry),
			handler.WithHeader("Retry-After", retry),
		)
		return
	}

	var raw any
	if err := binder.JSON(r, &raw); err != nil {
		h.log.DebugContext(ctx, "contact body rejected", logger.ClientIP(key), logger.Error(err))
		h.metrics.submission(ctx, resultBadRequest)
		h.reply(w, r, http.StatusBadRequest, Response{
			Message: msgInvalidBody,
			Errors:  FieldErrors{GeneralField: "Invalid JSON"},
		})
		return
	}

	sub, fieldErrs := Validate(raw)
	if len(fieldErrs) > 0 {
		h.log.DebugContext(ctx, "contact form invalid", logger.ClientIP(key), slog.Any("fields", map[string]string(fieldErrs)))
		h.metrics.submission(ctx, resultInvalid)
		h.reply(w, r, http.StatusBadRequest, Response{Message: msgFixErrors, Errors: fieldErrs})
		return
	}

	out := h.sender.Send(ctx, sub)
	if !out.Success {
		h.metrics.submission(ctx, resultFailed)
		h.reply(w, r, http.StatusInternalServerError, Response{Message: h.failureMessage(out)})
		return
	}

	h.metrics.submission(ctx, resultSent)
	var opts []handler.JSONOption
	if known {
		opts = append(opts, handler.WithHeader("X-RateLimit-Remaining", strconv.Itoa(res.Remaining)))
	}
	h.reply(w, r, http.StatusOK, Response{Success: true, Message: out.Message}, opts...)
}

// admit consults the limiter. On a limiter failure the request is admitted
// and known is false, since no remaining count is available.
func (h *Handler) admit(r *http.Request, key string) (res ratelimit.Result, known bool) {
	res, err := h.limiter.Allow(r.Context(), key)
	if err != nil {
		h.log.WarnContext(r.Context(), "rate limiter unavailable, admitting request",
			logger.ClientIP(key), logger.Error(err))
		return ratelimit.Result{Allowed: true}, false
	}
	return res, true
}

func (h *Handler) failureMessage(out Outcome) string {
	if !h.exposeErrors {
		return msgSendFailed
	}
	if errors.Is(out.Err, ErrUnexpectedFault) {
		return "Mailer error: " + out.Err.Error()
	}
	if out.Message != "" {
		return out.Message
	}
	return msgSendFailed
}

func (h *Handler) reply(w http.ResponseWriter, r *http.Request, status int, body Response, opts ...handler.JSONOption) {
	opts = append(opts, handler.WithJSONStatus(status))
	handler.Write(w, r, handler.JSON(body, opts...), h.log)
}
