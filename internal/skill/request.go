package skill

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Request is the decoded stdin payload. Keys other than text and transform
// are accepted and ignored.
type Request struct {
	Text      string
	Transform string
}

// parseRequest decodes raw and checks that the root is an object.
func parseRequest(raw []byte) (Request, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Request{}, &Error{Kind: KindMalformedInput, Msg: "invalid JSON: " + err.Error(), Err: err}
	}

	args, ok := doc.(map[string]any)
	if !ok {
		return Request{}, &Error{Kind: KindWrongShape, Msg: "args must be a dict"}
	}

	var req Request
	// A non-string text is treated as absent.
	if text, ok := args["text"].(string); ok {
		req.Text = text
	}

	switch v := args["transform"].(type) {
	case nil:
		if _, present := args["transform"]; present {
			return Request{}, &Error{Kind: KindInternal, Msg: "transform must be a string, got null"}
		}
	case string:
		req.Transform = strings.ToLower(v)
	default:
		return Request{}, &Error{Kind: KindInternal, Msg: fmt.Sprintf("transform must be a string, got %s", jsonType(v))}
	}

	return req, nil
}

func jsonType(v any) string {
	switch v.(type) {
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
