package types

import (
	"strconv"
)

// A Value is one field of a materialized tuple. It keeps the literal text
// read from a relation file (string values keep their surrounding quotes) and
// the column type declared for it in the catalog.
type Value struct {
	valueType TypeID
	text      string
}

func NewInteger(value int64) Value {
	return Value{Integer, strconv.FormatInt(value, 10)}
}

func NewVarchar(value string) Value {
	return Value{Varchar, value}
}

// NewValueFromText is used when the value comes straight from a relation file
func NewValueFromText(text string, valueType TypeID) Value {
	return Value{valueType, text}
}

func (v Value) ValueType() TypeID {
	return v.valueType
}

func (v Value) ToString() string {
	return v.text
}

func (v Value) String() string {
	return v.text
}

// ToInteger parses the literal text as a base-10 signed integer.
func (v Value) ToInteger() (int64, error) {
	return strconv.ParseInt(v.text, 10, 64)
}

// equality is textual: two values are equal when their literal text is equal
func (v Value) CompareEquals(right Value) bool {
	return v.text == right.text
}

func (v Value) CompareNotEquals(right Value) bool {
	return v.text != right.text
}

func (v Value) CompareGreaterThan(right Value) (bool, error) {
	l, r, err := integerPair(v, right)
	return l > r, err
}

func (v Value) CompareGreaterThanOrEqual(right Value) (bool, error) {
	l, r, err := integerPair(v, right)
	return l >= r, err
}

func (v Value) CompareLessThan(right Value) (bool, error) {
	l, r, err := integerPair(v, right)
	return l < r, err
}

func (v Value) CompareLessThanOrEqual(right Value) (bool, error) {
	l, r, err := integerPair(v, right)
	return l <= r, err
}

func integerPair(left Value, right Value) (int64, int64, error) {
	l, err := left.ToInteger()
	if err != nil {
		return 0, 0, err
	}
	r, err := right.ToInteger()
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// Serialize returns the bytes used for hashing a value
func (v Value) Serialize() []byte {
	return []byte(v.text)
}
