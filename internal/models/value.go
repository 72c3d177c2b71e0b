package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindUnset Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a single attribute value decoded from a GitLab payload.
// The zero Value is unset.
type Value struct {
	kind Kind
	raw  any
}

// ValueOf classifies a decoded JSON value. Integers are kept as int64 so
// ids above 2^53 survive intact; other numbers become float64. Nested
// objects and arrays are kept verbatim.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{kind: KindNull}
	case Value:
		return t
	case string:
		return Value{kind: KindString, raw: t}
	case bool:
		return Value{kind: KindBool, raw: t}
	case float64:
		return Value{kind: KindNumber, raw: t}
	case float32:
		return Value{kind: KindNumber, raw: float64(t)}
	case int:
		return Value{kind: KindNumber, raw: int64(t)}
	case int8:
		return Value{kind: KindNumber, raw: int64(t)}
	case int16:
		return Value{kind: KindNumber, raw: int64(t)}
	case int32:
		return Value{kind: KindNumber, raw: int64(t)}
	case int64:
		return Value{kind: KindNumber, raw: t}
	case uint:
		return unsignedValue(uint64(t))
	case uint8:
		return Value{kind: KindNumber, raw: int64(t)}
	case uint16:
		return Value{kind: KindNumber, raw: int64(t)}
	case uint32:
		return Value{kind: KindNumber, raw: int64(t)}
	case uint64:
		return unsignedValue(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Value{kind: KindNumber, raw: i}
		}
		f, err := t.Float64()
		if err != nil {
			return Value{kind: KindOther, raw: t.String()}
		}
		return Value{kind: KindNumber, raw: f}
	default:
		return Value{kind: KindOther, raw: t}
	}
}

func unsignedValue(u uint64) Value {
	if u > math.MaxInt64 {
		return Value{kind: KindNumber, raw: float64(u)}
	}
	return Value{kind: KindNumber, raw: int64(u)}
}

func (v Value) Kind() Kind {
	return v.kind
}

// IsSet reports whether the value came from a payload, including an explicit null.
func (v Value) IsSet() bool {
	return v.kind != KindUnset
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) AsString() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok && v.kind == KindString
}

func (v Value) AsFloat() (float64, bool) {
	switch n := v.number().(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// AsInt returns the number as an int when it is integral and fits.
func (v Value) AsInt() (int, bool) {
	i, ok := v.asInt64()
	if !ok || i < math.MinInt || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}

func (v Value) asInt64() (int64, bool) {
	switch n := v.number().(type) {
	case int64:
		return n, true
	case float64:
		// -math.MinInt64 is 2^63, the first float64 past the int64 range
		if n != math.Trunc(n) || n < math.MinInt64 || n >= -math.MinInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

// number returns the int64 or float64 held by a number, nil otherwise.
func (v Value) number() any {
	if v.kind != KindNumber {
		return nil
	}
	return v.raw
}

func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.raw.(bool), true
}

// Interface returns the underlying value, nil for unset and null.
func (v Value) Interface() any {
	switch v.kind {
	case KindUnset, KindNull:
		return nil
	case KindNumber:
		if i, ok := v.AsInt(); ok {
			return i
		}
		if i, ok := v.asInt64(); ok {
			return i
		}
	}
	return v.raw
}

// Equal compares numbers by value whatever their representation.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindNumber {
		a, okA := v.asInt64()
		b, okB := other.asInt64()
		if okA || okB {
			return okA && okB && a == b
		}
		return v.raw == other.raw
	}
	if v.kind == KindOther {
		a, errA := json.Marshal(v.raw)
		b, errB := json.Marshal(other.raw)
		return errA == nil && errB == nil && string(a) == string(b)
	}
	return v.raw == other.raw
}

func (v Value) String() string {
	switch v.kind {
	case KindUnset:
		return ""
	case KindNull:
		return "null"
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
