package skill

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/valpere/textskill/internal/transform"
)

const unknownSuffix = " — use: uppercase, lowercase, reverse, title"

func errString(s string) *string { return &s }

func equalResult(a, b Result) bool {
	if a.Success != b.Success || a.Output != b.Output {
		return false
	}
	if a.Error == nil || b.Error == nil {
		return a.Error == nil && b.Error == nil
	}
	return *a.Error == *b.Error
}

func TestHandler_Handle(t *testing.T) {
	h := NewHandler(nil)

	tests := []struct {
		name     string
		input    string
		expected Result
	}{
		{
			name:     "uppercase",
			input:    `{"text":"hello world","transform":"uppercase"}`,
			expected: Result{Success: true, Output: "HELLO WORLD"},
		},
		{
			name:     "reverse",
			input:    `{"text":"Hello","transform":"reverse"}`,
			expected: Result{Success: true, Output: "olleH"},
		},
		{
			name:     "title",
			input:    `{"text":"a quick fox","transform":"title"}`,
			expected: Result{Success: true, Output: "A Quick Fox"},
		},
		{
			name:     "lowercase",
			input:    `{"text":"MiXeD","transform":"lowercase"}`,
			expected: Result{Success: true, Output: "mixed"},
		},
		{
			name:     "transform name is case insensitive",
			input:    `{"text":"hello world","transform":"UPPERCASE"}`,
			expected: Result{Success: true, Output: "HELLO WORLD"},
		},
		{
			name:     "missing text defaults to empty",
			input:    `{"transform":"reverse"}`,
			expected: Result{Success: true, Output: ""},
		},
		{
			name:     "non-string text defaults to empty",
			input:    `{"text":42,"transform":"uppercase"}`,
			expected: Result{Success: true, Output: ""},
		},
		{
			name:     "extra keys are ignored",
			input:    `{"text":"abc","transform":"reverse","extra":[1,2]}`,
			expected: Result{Success: true, Output: "cba"},
		},
		{
			name:     "surrounding whitespace",
			input:    " \n{\"text\":\"x\",\"transform\":\"uppercase\"}\n",
			expected: Result{Success: true, Output: "X"},
		},
		{
			name:     "unknown transform",
			input:    `{"text":"x","transform":"rot13"}`,
			expected: Result{Error: errString("unknown transform 'rot13'" + unknownSuffix)},
		},
		{
			name:     "unknown transform is reported lowercased",
			input:    `{"text":"x","transform":"ROT13"}`,
			expected: Result{Error: errString("unknown transform 'rot13'" + unknownSuffix)},
		},
		{
			name:     "missing transform",
			input:    `{"text":"x"}`,
			expected: Result{Error: errString("unknown transform ''" + unknownSuffix)},
		},
		{
			name:     "empty transform",
			input:    `{"text":"x","transform":""}`,
			expected: Result{Error: errString("unknown transform ''" + unknownSuffix)},
		},
		{
			name:     "array root",
			input:    `[1,2,3]`,
			expected: Result{Error: errString("args must be a dict")},
		},
		{
			name:     "string root",
			input:    `"hello"`,
			expected: Result{Error: errString("args must be a dict")},
		},
		{
			name:     "null root",
			input:    `null`,
			expected: Result{Error: errString("args must be a dict")},
		},
		{
			name:     "number root",
			input:    `12`,
			expected: Result{Error: errString("args must be a dict")},
		},
		{
			name:     "numeric transform",
			input:    `{"text":"x","transform":5}`,
			expected: Result{Error: errString("transform must be a string, got number")},
		},
		{
			name:     "null transform",
			input:    `{"text":"x","transform":null}`,
			expected: Result{Error: errString("transform must be a string, got null")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.Handle([]byte(tt.input))
			if !equalResult(got, tt.expected) {
				t.Errorf("Handle(%q) = %+v (error %v), want %+v (error %v)",
					tt.input, got, deref(got.Error), tt.expected, deref(tt.expected.Error))
			}
		})
	}
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func TestHandler_Handle_MalformedJSON(t *testing.T) {
	h := NewHandler(nil)

	inputs := []string{"not valid json", "", "{", `{"text":"a"} trailing`, "{'text':'a'}"}
	for _, in := range inputs {
		got := h.Handle([]byte(in))
		if got.Success {
			t.Errorf("Handle(%q) succeeded, want failure", in)
			continue
		}
		if got.Output != "" {
			t.Errorf("Handle(%q) output = %q, want empty", in, got.Output)
		}
		if got.Error == nil || !strings.HasPrefix(*got.Error, "invalid JSON: ") {
			t.Errorf("Handle(%q) error = %v, want prefix %q", in, deref(got.Error), "invalid JSON: ")
		}
		if got.Error != nil && len(*got.Error) == len("invalid JSON: ") {
			t.Errorf("Handle(%q) error has no parser diagnostic", in)
		}
	}
}

func TestHandler_Handle_AllTransforms(t *testing.T) {
	h := NewHandler(nil)
	inputs := []string{"", "hello world", "Straße", "日本語"}

	for _, tr := range transform.All() {
		for _, s := range inputs {
			raw := `{"text":` + quote(s) + `,"transform":"` + tr.Name + `"}`
			got := h.Handle([]byte(raw))
			want := Succeeded(tr.Apply(s))
			if !equalResult(got, want) {
				t.Errorf("%s(%q) = %+v, want %+v", tr.Name, s, got, want)
			}
		}
	}
}

func quote(s string) string {
	var buf bytes.Buffer
	if err := Emit(&buf, Succeeded(s)); err != nil {
		panic(err)
	}
	// {"success":true,"output":<quoted>,"error":null}
	out := strings.TrimPrefix(buf.String(), `{"success":true,"output":`)
	return strings.TrimSuffix(out, `,"error":null}`)
}

func TestHandler_Handle_RecoversPanic(t *testing.T) {
	h := NewHandler(nil)
	h.lookup = func(string) (transform.Func, bool) {
		return func(string) string { panic("boom") }, true
	}

	got := h.Handle([]byte(`{"text":"x","transform":"uppercase"}`))
	want := Result{Error: errString("boom")}
	if !equalResult(got, want) {
		t.Errorf("Handle() = %+v (error %v), want failure with %q", got, deref(got.Error), "boom")
	}
}

func TestHandler_Run(t *testing.T) {
	h := NewHandler(nil)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "success",
			input:    `{"text":"hello world","transform":"uppercase"}`,
			expected: `{"success":true,"output":"HELLO WORLD","error":null}`,
		},
		{
			name:     "unknown transform",
			input:    `{"text":"x","transform":"rot13"}`,
			expected: `{"success":false,"output":"","error":"unknown transform 'rot13'` + unknownSuffix + `"}`,
		},
		{
			name:     "wrong shape",
			input:    `[1,2,3]`,
			expected: `{"success":false,"output":"","error":"args must be a dict"}`,
		},
		{
			name:     "malformed",
			input:    `not json`,
			expected: `{"success":false,"output":"","error":"invalid JSON: invalid character 'o' in literal null (expecting 'u')"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := h.Run(strings.NewReader(tt.input), &out); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if out.String() != tt.expected {
				t.Errorf("Run(%q) wrote %q, want %q", tt.input, out.String(), tt.expected)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestHandler_Run_ReadError(t *testing.T) {
	h := NewHandler(nil)

	var out bytes.Buffer
	if err := h.Run(failingReader{}, &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := `{"success":false,"output":"","error":"failed to read stdin: broken pipe"}`
	if out.String() != want {
		t.Errorf("Run wrote %q, want %q", out.String(), want)
	}
}

func TestHandler_Run_WriteError(t *testing.T) {
	h := NewHandler(nil)

	err := h.Run(strings.NewReader(`{"text":"x","transform":"uppercase"}`), failingWriter{})
	if err == nil {
		t.Fatal("expected error when the result cannot be written")
	}
}

func TestHandler_Handle_LogsErrorKind(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	h.Handle([]byte(`[1,2,3]`))
	if !strings.Contains(buf.String(), "kind=wrong_shape") {
		t.Errorf("expected kind=wrong_shape in debug log, got %q", buf.String())
	}
}
