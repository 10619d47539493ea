package value

import (
	"bytes"
	"fmt"
)

const (
	NullString  = "NULL"
	TrueString  = "true"
	FalseString = "false"
)

// Value is one of BoolValue, Float64Value, Int64Value, StringValue,
// BytesValue, or VectorValue. A nil Value is the void value; it stands for
// both a missing parameter and SQL NULL.
type Value interface {
	fmt.Stringer
}

type BoolValue bool

func (b BoolValue) String() string {
	if b {
		return TrueString
	}
	return FalseString
}

type Int64Value int64

func (i Int64Value) String() string {
	return fmt.Sprintf("%v", int64(i))
}

type Float64Value float64

func (d Float64Value) String() string {
	return fmt.Sprintf("%v", float64(d))
}

type StringValue string

func (s StringValue) String() string {
	return fmt.Sprintf("'%s'", string(s))
}

type BytesValue []byte

var (
	hexDigits = [16]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd',
		'e', 'f'}
)

func (b BytesValue) String() string {
	var buf bytes.Buffer
	buf.WriteString("'\\x")
	for _, v := range b {
		buf.WriteRune(hexDigits[v>>4])
		buf.WriteRune(hexDigits[v&0xF])
	}

	buf.WriteRune('\'')
	return buf.String()
}

// VectorValue is the only recursive variant. It carries a parameter list
// (flat), one result row, or a result set (a vector of row vectors).
type VectorValue []Value

func (vec VectorValue) String() string {
	var buf bytes.Buffer
	buf.WriteRune('[')
	for idx, v := range vec {
		if idx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(Format(v))
	}
	buf.WriteRune(']')
	return buf.String()
}

func Format(v Value) string {
	if v == nil {
		return NullString
	}

	return v.String()
}

// Equal reports whether two values are the same variant with the same
// contents; vectors compare element by element.
func Equal(v1, v2 Value) bool {
	if v1 == nil {
		return v2 == nil
	}

	switch v1 := v1.(type) {
	case BoolValue:
		v2, ok := v2.(BoolValue)
		return ok && v1 == v2
	case Int64Value:
		v2, ok := v2.(Int64Value)
		return ok && v1 == v2
	case Float64Value:
		v2, ok := v2.(Float64Value)
		return ok && v1 == v2
	case StringValue:
		v2, ok := v2.(StringValue)
		return ok && v1 == v2
	case BytesValue:
		v2, ok := v2.(BytesValue)
		return ok && bytes.Equal([]byte(v1), []byte(v2))
	case VectorValue:
		v2, ok := v2.(VectorValue)
		if !ok || len(v1) != len(v2) {
			return false
		}
		for idx := range v1 {
			if !Equal(v1[idx], v2[idx]) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("unexpected type for value.Value: %T: %v", v1, v1))
	}
}
