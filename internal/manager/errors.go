// ABOUTME: Error taxonomy for the public operation surface.
// ABOUTME: Raw store errors never cross this boundary unwrapped.
package manager

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failed operation.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotAvailable
	KindAuthorizationFailed
	KindSaveFailed
	KindQueryFailed
	KindMissingRequiredData
	KindRecordNotFound
	KindInvalidIdentifier
)

// String returns the stable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotAvailable:
		return "NotAvailable"
	case KindAuthorizationFailed:
		return "AuthorizationFailed"
	case KindSaveFailed:
		return "SaveFailed"
	case KindQueryFailed:
		return "QueryFailed"
	case KindMissingRequiredData:
		return "MissingRequiredData"
	case KindRecordNotFound:
		return "RecordNotFound"
	case KindInvalidIdentifier:
		return "InvalidIdentifier"
	default:
		return "Unknown"
	}
}

// Error is the single error type every public operation returns on
// failure. Fields is populated only for KindMissingRequiredData.
type Error struct {
	Kind   Kind
	Op     string
	Fields []string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if len(e.Fields) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(e.Fields, ", "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches against another *Error by kind, so callers can compare with
// errors.Is(err, &manager.Error{Kind: manager.KindRecordNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the taxonomy kind from an operation error, or
// KindUnknown when err is not an operation error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func opErr(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func missingData(op string, fields []string) *Error {
	return &Error{Kind: KindMissingRequiredData, Op: op, Fields: fields}
}
