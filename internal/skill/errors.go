package skill

// Kind classifies a failed request.
type Kind int

const (
	// KindInternal is any failure that is not one of the kinds below,
	// including a recovered panic from a transform.
	KindInternal Kind = iota
	// KindMalformedInput means stdin was not a single JSON document.
	KindMalformedInput
	// KindWrongShape means the JSON document was not an object.
	KindWrongShape
	// KindUnknownTransform means the transform name is not registered.
	KindUnknownTransform
)

func (k Kind) String() string {
	switch k {
	case KindMalformedInput:
		return "malformed_input"
	case KindWrongShape:
		return "wrong_shape"
	case KindUnknownTransform:
		return "unknown_transform"
	default:
		return "internal"
	}
}

// Sentinels for errors.Is.
var (
	ErrInternal         = &Error{Kind: KindInternal}
	ErrMalformedInput   = &Error{Kind: KindMalformedInput}
	ErrWrongShape       = &Error{Kind: KindWrongShape}
	ErrUnknownTransform = &Error{Kind: KindUnknownTransform}
)

// Error is the single error type produced by Handle. Msg is exactly the
// text that ends up in the result's error field.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
