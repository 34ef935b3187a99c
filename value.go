package json5

import "math"

// Kind is the closed set of JSON5 value kinds.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindString
	KindNumber
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// NumberKind is the closed set of numeric sub-kinds a Number can hold.
// These never collapse into one another at parse time: Integer and
// Hexadecimal are distinct sub-kinds even though they share a Go
// representation, and the three extended-real kinds are distinct from
// Decimal and from each other.
type NumberKind int

const (
	NumberInteger NumberKind = iota
	NumberHexadecimal
	NumberDecimal
	NumberPositiveInfinity
	NumberNegativeInfinity
	NumberNaN
)

func (k NumberKind) String() string {
	switch k {
	case NumberInteger:
		return "Integer"
	case NumberHexadecimal:
		return "Hexadecimal"
	case NumberDecimal:
		return "Decimal"
	case NumberPositiveInfinity:
		return "PositiveInfinity"
	case NumberNegativeInfinity:
		return "NegativeInfinity"
	case NumberNaN:
		return "NaN"
	default:
		return "Unknown"
	}
}

// Number is a closed tagged union over the six numeric sub-kinds JSON5
// recognizes. Integer and Hexadecimal values are held as int64; Decimal
// as a finite float64; the three extended-real kinds carry no payload.
type Number struct {
	kind NumberKind
	i    int64
	f    float64
}

// Integer constructs a Number of kind NumberInteger.
func Integer(i int64) Number { return Number{kind: NumberInteger, i: i} }

// Hexadecimal constructs a Number of kind NumberHexadecimal.
func Hexadecimal(i int64) Number { return Number{kind: NumberHexadecimal, i: i} }

// Decimal constructs a Number of kind NumberDecimal. f must be finite;
// use PositiveInfinityNumber, NegativeInfinityNumber, or NaNNumber for the
// extended reals.
func Decimal(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("json5: Decimal requires a finite value")
	}
	return Number{kind: NumberDecimal, f: f}
}

// PositiveInfinityNumber constructs the Number representing Infinity.
func PositiveInfinityNumber() Number { return Number{kind: NumberPositiveInfinity} }

// NegativeInfinityNumber constructs the Number representing -Infinity.
func NegativeInfinityNumber() Number { return Number{kind: NumberNegativeInfinity} }

// NaNNumber constructs the Number representing NaN.
func NaNNumber() Number { return Number{kind: NumberNaN} }

// Kind reports the numeric sub-kind.
func (n Number) Kind() NumberKind { return n.kind }

// Int returns the integral value for NumberInteger and NumberHexadecimal.
// It is meaningless for the other sub-kinds.
func (n Number) Int() int64 { return n.i }

// Float returns the value for NumberDecimal. It is meaningless for the
// other sub-kinds; use Kind to test for the extended reals instead of
// reading Float.
func (n Number) Float() float64 { return n.f }

// Equal reports whether two Numbers denote the same value, normalizing
// Hexadecimal and Integer into the same class (per the round-trip
// property: a Hexadecimal literal and its decimal equivalent compare
// equal once parsed).
func (n Number) Equal(o Number) bool {
	if normalizeNumberKind(n.kind) != normalizeNumberKind(o.kind) {
		return false
	}
	switch normalizeNumberKind(n.kind) {
	case NumberInteger:
		return n.i == o.i
	case NumberDecimal:
		return n.f == o.f
	default:
		return true
	}
}

func normalizeNumberKind(k NumberKind) NumberKind {
	if k == NumberHexadecimal {
		return NumberInteger
	}
	return k
}

// Value is a closed tagged union over the JSON5 value kinds. It is a
// value type (not an interface), copied by assignment except for its
// Array and Object payloads, which are reference-shaped the way Go
// slices and map-backed types normally are.
type Value struct {
	kind Kind
	b    bool
	s    string
	num  Number
	arr  []Value
	obj  *Object
}

// Null constructs the null Value.
func Null() Value { return Value{kind: KindNull} }

// Boolean constructs a boolean Value.
func Boolean(b bool) Value { return Value{kind: KindBoolean, b: b} }

// String constructs a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// NumberValue constructs a Value wrapping a Number.
func NumberValue(n Number) Value { return Value{kind: KindNumber, num: n} }

// ArrayValue constructs an array Value. The given items are copied into a
// fresh backing slice, so later mutation of items does not alias the
// returned Value.
func ArrayValue(items ...Value) Value {
	return Value{kind: KindArray, arr: append([]Value(nil), items...)}
}

// ObjectValue constructs an object Value wrapping o.
func ObjectValue(o *Object) Value { return Value{kind: KindObject, obj: o} }

// Kind reports the value's kind.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the payload for KindBoolean.
func (v Value) Bool() bool { return v.b }

// Str returns the payload for KindString.
func (v Value) Str() string { return v.s }

// Num returns the payload for KindNumber.
func (v Value) Num() Number { return v.num }

// Array returns the payload for KindArray.
func (v Value) Array() []Value { return v.arr }

// Object returns the payload for KindObject.
func (v Value) Object() *Object { return v.obj }

// Equal reports deep structural equality, modulo the Hexadecimal/Integer
// numeric normalization documented on Number.Equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBoolean:
		return v.b == o.b
	case KindString:
		return v.s == o.s
	case KindNumber:
		return v.num.Equal(o.num)
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(o.obj)
	default:
		return false
	}
}
