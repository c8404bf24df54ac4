package fmindex

import "fmt"

// Kind is the closed taxonomy of errors this package can return.
type Kind int

const (
	// InvalidSampleRate means sample_rate was not a positive power of two.
	InvalidSampleRate Kind = iota
	// InvalidSentinel means the sequence's terminal sentinel is missing,
	// duplicated elsewhere in the sequence, or not minimal under the rank map.
	InvalidSentinel
	// SequenceTooShort means the sequence has fewer than 2 symbols.
	SequenceTooShort
	// UnknownSymbol means the rank map has no entry for some symbol.
	UnknownSymbol
	// CorruptIndex means a loaded index failed a format or invariant check.
	CorruptIndex
	// IoError means the backing reader/writer failed during Save or Load.
	IoError
)

func (k Kind) String() string {
	switch k {
	case InvalidSampleRate:
		return "InvalidSampleRate"
	case InvalidSentinel:
		return "InvalidSentinel"
	case SequenceTooShort:
		return "SequenceTooShort"
	case UnknownSymbol:
		return "UnknownSymbol"
	case CorruptIndex:
		return "CorruptIndex"
	case IoError:
		return "IoError"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned at package boundaries.
type Error struct {
	Kind Kind
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("fmindex: %s: %s: %v", e.Kind, e.Msg, e.err)
	}
	return fmt.Sprintf("fmindex: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.err }

// newErr returns an *Error of the given Kind with no wrapped cause.
// Kind is not itself an error, so callers test the kind of a returned
// error with IsKind rather than errors.Is.
func newErr(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

func wrapErr(kind Kind, msg string, cause error) error {
	return &Error{Kind: kind, Msg: msg, err: cause}
}

// IsKind reports whether err is an *Error of the given Kind.
func IsKind(err error, kind Kind) bool {
	var fe *Error
	for err != nil {
		if e, ok := err.(*Error); ok {
			fe = e
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return fe != nil && fe.Kind == kind
}
