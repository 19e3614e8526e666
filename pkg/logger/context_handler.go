package logger

import (
	"context"
	"log/slog"
	"maps"
)

// ContextExtractor pulls a request-scoped attribute out of ctx.
// The bool result reports whether the attribute is present.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler appends extractor attributes to each record. An extracted
// attribute is dropped when the record, or a logger derived with With, already
// carries the same key at the current group level.
type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
	bound      map[string]struct{}
}

func newContextHandler(next slog.Handler, extractors []ContextExtractor) slog.Handler {
	if len(extractors) == 0 {
		return next
	}
	return &contextHandler{Handler: next, extractors: extractors}
}

// Handle runs the extractors at log time so values set on ctx after the
// logger was built, such as the request id, are picked up.
func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if ctx == nil {
		return h.Handler.Handle(ctx, rec)
	}

	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if !ok || attr.Equal(slog.Attr{}) || h.has(rec, attr.Key) {
			continue
		}
		rec.AddAttrs(attr)
	}
	return h.Handler.Handle(ctx, rec)
}

func (h *contextHandler) has(rec slog.Record, key string) bool {
	if _, ok := h.bound[key]; ok {
		return true
	}
	found := false
	rec.Attrs(func(a slog.Attr) bool {
		found = a.Key == key
		return !found
	})
	return found
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := maps.Clone(h.bound)
	if bound == nil {
		bound = make(map[string]struct{}, len(attrs))
	}
	for _, a := range attrs {
		bound[a.Key] = struct{}{}
	}
	return &contextHandler{
		Handler:    h.Handler.WithAttrs(attrs),
		extractors: h.extractors,
		bound:      bound,
	}
}

// WithGroup starts a fresh key set: attributes bound outside the group no
// longer collide with the ones written inside it.
func (h *contextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &contextHandler{
		Handler:    h.Handler.WithGroup(name),
		extractors: h.extractors,
	}
}
