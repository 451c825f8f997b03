package logging

import (
	"context"
	"errors"
	"log/slog"
)

// filterHandler passes on the records whose level keep accepts.
type filterHandler struct {
	h    slog.Handler
	keep func(slog.Level) bool
}

// Filter returns a handler that passes records to h only if keep accepts
// their level.
func Filter(h slog.Handler, keep func(slog.Level) bool) slog.Handler {
	return &filterHandler{h: h, keep: keep}
}

func (f *filterHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return f.keep(l) && f.h.Enabled(ctx, l)
}

func (f *filterHandler) Handle(ctx context.Context, r slog.Record) error {
	if !f.keep(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f *filterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &filterHandler{h: f.h.WithAttrs(attrs), keep: f.keep}
}

func (f *filterHandler) WithGroup(name string) slog.Handler {
	return &filterHandler{h: f.h.WithGroup(name), keep: f.keep}
}

// fanoutHandler sends every record to all handlers that are enabled for it.
type fanoutHandler []slog.Handler

// Fanout returns a handler that duplicates records to hs.
func Fanout(hs ...slog.Handler) slog.Handler {
	return fanoutHandler(hs)
}

func (hs fanoutHandler) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range hs {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (hs fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range hs {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (hs fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanoutHandler, len(hs))
	for i, h := range hs {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (hs fanoutHandler) WithGroup(name string) slog.Handler {
	out := make(fanoutHandler, len(hs))
	for i, h := range hs {
		out[i] = h.WithGroup(name)
	}
	return out
}
