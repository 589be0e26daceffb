// Package skill implements the text_transform request/response cycle: one
// JSON object in, one JSON result out.
//
// Every failure, including a panic inside a transform, is reported through
// the result's success and error fields. Nothing in this package terminates
// the process.
package skill

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/valpere/textskill/internal/transform"
)

// Handler runs requests against the transform registry.
type Handler struct {
	log    *slog.Logger
	lookup func(string) (transform.Func, bool)
}

// NewHandler returns a Handler that writes diagnostics to log. A nil log
// discards them.
func NewHandler(log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{log: log, lookup: transform.Lookup}
}

// Handle processes one raw request and always returns a well-formed Result.
func (h *Handler) Handle(raw []byte) Result {
	out, err := h.process(raw)
	if err != nil {
		h.log.Debug("request failed", "kind", kindOf(err).String(), "error", err.Error())
		return Failed(err)
	}
	return Succeeded(out)
}

// kindOf returns the Kind carried anywhere in err's chain, or KindInternal.
func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func (h *Handler) process(raw []byte) (out string, err error) {
	req, err := parseRequest(raw)
	if err != nil {
		return "", err
	}

	fn, ok := h.lookup(req.Transform)
	if !ok {
		return "", &Error{
			Kind: KindUnknownTransform,
			Msg:  fmt.Sprintf("unknown transform '%s' — use: %s", req.Transform, transform.Usage()),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = &Error{Kind: KindInternal, Msg: fmt.Sprint(r)}
		}
	}()

	out = fn(req.Text)
	h.log.Debug("transform applied", "transform", req.Transform, "in_len", len(req.Text), "out_len", len(out))
	return out, nil
}

// Run drains r, handles the payload and emits the result to w. A read error
// is reported as a failed result; only a failure to write the result is
// returned.
func (h *Handler) Run(r io.Reader, w io.Writer) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		h.log.Warn("failed to read stdin", "error", err)
		return Emit(w, Failed(fmt.Errorf("failed to read stdin: %w", err)))
	}
	h.log.Debug("request read", "bytes", len(raw))

	return Emit(w, h.Handle(raw))
}
