package skill

import (
	"encoding/json"
	"fmt"
	"io"
)

// Result is the only thing ever written to stdout. All three fields are
// always present; Error is null on success.
type Result struct {
	Success bool    `json:"success"`
	Output  string  `json:"output"`
	Error   *string `json:"error"`
}

// Succeeded builds a successful result.
func Succeeded(output string) Result {
	return Result{Success: true, Output: output}
}

// Failed builds a failed result carrying err's message.
func Failed(err error) Result {
	msg := err.Error()
	return Result{Success: false, Output: "", Error: &msg}
}

// Emit writes res to w as compact JSON in a single write, without a trailing
// newline.
func Emit(w io.Writer, res Result) error {
	out, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
