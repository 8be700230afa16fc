package log

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// RedactMarker replaces the home directory prefix in logged values.
const RedactMarker = "~"

// RedactHomeHandler wraps an slog.Handler and masks the user's home
// directory in string attribute values before passing records on.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites keep logging plain paths without caring about redaction
type RedactHomeHandler struct {
	// handler is the underlying slog handler that receives redacted records.
	handler slog.Handler

	// home is the home directory prefix to mask. Empty disables redaction.
	home string
}

// NewRedactHomeHandler creates a RedactHomeHandler wrapping the given
// handler. If handler is nil, the returned handler uses
// slog.Default().Handler().
func NewRedactHomeHandler(handler slog.Handler) *RedactHomeHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &RedactHomeHandler{handler: handler, home: home}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *RedactHomeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle redacts the record's attributes and passes it to the underlying
// handler.
func (h *RedactHomeHandler) Handle(ctx context.Context, r slog.Record) error {
	redacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		redacted.AddAttrs(h.redactAttr(a))
		return true
	})

	return h.handler.Handle(ctx, redacted)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are redacted before being added.
func (h *RedactHomeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redactedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redactedAttrs[i] = h.redactAttr(a)
	}
	return &RedactHomeHandler{handler: h.handler.WithAttrs(redactedAttrs), home: h.home}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactHomeHandler) WithGroup(name string) slog.Handler {
	return &RedactHomeHandler{handler: h.handler.WithGroup(name), home: h.home}
}

// redactAttr redacts a single attribute, recursively handling groups.
func (h *RedactHomeHandler) redactAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		redactedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			redactedAttrs[i] = h.redactAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redactedAttrs...)}
	}

	if h.home == "" || a.Value.Kind() != slog.KindString {
		return a
	}

	value := a.Value.String()
	if !strings.Contains(value, h.home) {
		return a
	}
	return slog.String(a.Key, strings.ReplaceAll(value, h.home, RedactMarker))
}
