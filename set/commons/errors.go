package commons

import (
	"errors"
	"fmt"
)

type Kind int

const (
	NotAnObject Kind = iota + 1
	MissingOrInvalidSize
	NegativeSize
	HasNotCallable
	KeysNotCallable
	KeysNotIterator
)

var kindNames = [...]string{
	NotAnObject:          "not-an-object",
	MissingOrInvalidSize: "missing-or-invalid-size",
	NegativeSize:         "negative-size",
	HasNotCallable:       "has-not-callable",
	KeysNotCallable:      "keys-not-callable",
	KeysNotIterator:      "keys-not-iterator",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n != "" && n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown error kind %q", name)
}

const (
	ClassTypeError  = "TypeError"
	ClassRangeError = "RangeError"
)

// Class is the error class a Kind is reported under.
func (k Kind) Class() string {
	if k == NegativeSize {
		return ClassRangeError
	}
	return ClassTypeError
}

// Error is a validation failure of a composite operation's argument.
type Error struct {
	Kind Kind
	Op   Op
}

var (
	ErrNotAnObject          = &Error{Kind: NotAnObject}
	ErrMissingOrInvalidSize = &Error{Kind: MissingOrInvalidSize}
	ErrNegativeSize         = &Error{Kind: NegativeSize}
	ErrHasNotCallable       = &Error{Kind: HasNotCallable}
	ErrKeysNotCallable      = &Error{Kind: KeysNotCallable}
	ErrKeysNotIterator      = &Error{Kind: KeysNotIterator}
)

func NewError(kind Kind, op Op) *Error {
	return &Error{Kind: kind, Op: op}
}

func (e *Error) Error() string {
	return e.Kind.Class() + ": " + e.message()
}

func (e *Error) message() string {
	switch e.Kind {
	case NotAnObject:
		return "Set operation expects first argument to be an object"
	case MissingOrInvalidSize:
		return "Set operation expects first argument to have non-NaN 'size' property"
	case NegativeSize:
		return "Set operation expects first argument to have non-negative 'size' property"
	case HasNotCallable:
		return fmt.Sprintf("Set.prototype.%s expects other.has to be callable", e.Op)
	case KeysNotCallable:
		return fmt.Sprintf("Set.prototype.%s expects other.keys to be callable", e.Op)
	case KeysNotIterator:
		return fmt.Sprintf("Set.prototype.%s expects other.keys() to return an iterator", e.Op)
	}
	return fmt.Sprintf("Set operation failed with error kind %d", int(e.Kind))
}

// Is matches any Error of the same Kind, so errors.Is(err, ErrHasNotCallable) holds
// whatever operation raised it.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func IsTypeError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind.Class() == ClassTypeError
}

func IsRangeError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind.Class() == ClassRangeError
}
