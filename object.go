package json5

import "fmt"

// Object is an insertion-ordered set of (key, Value) pairs with O(1)
// duplicate-key detection, the same shape the teacher reaches for
// whenever it needs both ordered iteration and a uniqueness check (its
// namespace maps in encoder.go keep a parallel index for exactly this
// reason). JSON5 objects need it as a first-class exported type, since
// unlike the teacher's internal namespace maps, object member order is
// part of the value itself.
type Object struct {
	keys   []string
	values []Value
	index  map[string]int
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set appends key/v to the object. It reports an error without mutating
// the object if key is already present; callers that need to overwrite
// must check Get first.
func (o *Object) Set(key string, v Value) error {
	if _, exists := o.index[key]; exists {
		return fmt.Errorf("json5: duplicate key %q", key)
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, v)
	return nil
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.values[i], true
}

// Len reports the number of members.
func (o *Object) Len() int { return len(o.keys) }

// At returns the key/value pair at position i in insertion order.
func (o *Object) At(i int) (string, Value) { return o.keys[i], o.values[i] }

// Keys returns a copy of the member keys in insertion order.
func (o *Object) Keys() []string { return append([]string(nil), o.keys...) }

// Equal reports whether two objects have the same members in the same
// order with deeply equal values.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if o.Len() != other.Len() {
		return false
	}
	for i := range o.keys {
		k1, v1 := o.At(i)
		k2, v2 := other.At(i)
		if k1 != k2 || !v1.Equal(v2) {
			return false
		}
	}
	return true
}
