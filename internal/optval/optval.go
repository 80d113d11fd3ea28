// Package optval provides the dynamic value type used to move option
// values across the engine boundary.
//
// OptVal is a closed tagged union over nil, boolean, integer, and
// string. The nil variant is the explicit "no value in this scope"
// sentinel and is distinct from an option being unknown. Conversions
// to and from native Go values are total and reject mismatches rather
// than coercing.
package optval

import (
	"errors"
	"fmt"
)

// ErrBadValue indicates a Go value that cannot be represented as an OptVal.
var ErrBadValue = errors.New("value is not a valid option type")

// Kind identifies the variant held by an OptVal.
type Kind uint8

const (
	// KindNil is the "no value" sentinel variant.
	KindNil Kind = iota
	// KindBool is a boolean value.
	KindBool
	// KindInt is an integer value.
	KindInt
	// KindStr is a string value.
	KindStr
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindInt:
		return "number"
	case KindStr:
		return "string"
	default:
		return "unknown"
	}
}

// OptVal is a tagged option value. The zero value is the nil sentinel.
type OptVal struct {
	kind Kind
	b    bool
	n    int64
	s    string
}

// Nil returns the nil sentinel value.
func Nil() OptVal {
	return OptVal{}
}

// Bool returns a boolean OptVal.
func Bool(b bool) OptVal {
	return OptVal{kind: KindBool, b: b}
}

// Int returns an integer OptVal.
func Int(n int64) OptVal {
	return OptVal{kind: KindInt, n: n}
}

// Str returns a string OptVal.
func Str(s string) OptVal {
	return OptVal{kind: KindStr, s: s}
}

// Kind returns the variant held by the value.
func (v OptVal) Kind() Kind {
	return v.kind
}

// IsNil reports whether the value is the nil sentinel.
func (v OptVal) IsNil() bool {
	return v.kind == KindNil
}

// AsBool returns the boolean value. The second return is false if the
// value is not a boolean.
func (v OptVal) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer value. The second return is false if the
// value is not an integer.
func (v OptVal) AsInt() (int64, bool) {
	return v.n, v.kind == KindInt
}

// AsStr returns the string value. The second return is false if the
// value is not a string.
func (v OptVal) AsStr() (string, bool) {
	return v.s, v.kind == KindStr
}

// Any returns the native Go representation: nil, bool, int64, or string.
func (v OptVal) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.n
	case KindStr:
		return v.s
	default:
		return nil
	}
}

// FromAny converts a native Go value into an OptVal. Integers of any
// width are accepted; everything else outside bool/string/nil is
// rejected with ErrBadValue.
func FromAny(value any) (OptVal, error) {
	switch val := value.(type) {
	case nil:
		return Nil(), nil
	case bool:
		return Bool(val), nil
	case int:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case uint:
		return Int(int64(val)), nil
	case uint8:
		return Int(int64(val)), nil
	case uint16:
		return Int(int64(val)), nil
	case uint32:
		return Int(int64(val)), nil
	case string:
		return Str(val), nil
	default:
		return Nil(), fmt.Errorf("%w: %T", ErrBadValue, value)
	}
}

// Equal reports whether two values hold the same variant and content.
func (v OptVal) Equal(other OptVal) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.n == other.n
	case KindStr:
		return v.s == other.s
	default:
		return true
	}
}

// String returns a printable representation for logs and messages.
func (v OptVal) String() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("%v", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.n)
	case KindStr:
		return v.s
	default:
		return "<nil>"
	}
}
