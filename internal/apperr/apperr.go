package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure by how the invocation should react to it.
type Kind int

const (
	KindUnknown Kind = iota
	// ConfigUnavailable: the configuration directory cannot be resolved.
	ConfigUnavailable
	// StorageUnavailable: the history database cannot be opened or queried.
	StorageUnavailable
	// RowDecode: a single history row is malformed.
	RowDecode
	// EntryRead: a single filesystem entry cannot be read or decoded.
	EntryRead
	// Serialization: the response cannot be encoded or written.
	Serialization
)

func (k Kind) String() string {
	switch k {
	case ConfigUnavailable:
		return "config unavailable"
	case StorageUnavailable:
		return "storage unavailable"
	case RowDecode:
		return "row decode"
	case EntryRead:
		return "entry read"
	case Serialization:
		return "serialization"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match for any *Error of the same Kind, so callers can write
// errors.Is(err, apperr.E(apperr.RowDecode, "", nil)) or use KindOf instead.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the Kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Recoverable reports whether err is a per-record failure that the caller
// should skip rather than abort on.
func Recoverable(err error) bool {
	switch KindOf(err) {
	case RowDecode, EntryRead:
		return true
	default:
		return false
	}
}
