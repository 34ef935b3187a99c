package json5

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Marshal renders arbitrary Go data as JSON5 text via reflection. Maps
// are rendered with sorted keys for determinism, since Go's own map
// iteration order is randomized. Struct fields are rendered in
// declaration order using their name, or the name given by a
// `json5:"name"` tag; a tag of "-" skips the field, and the
// ",omitempty" tag option skips zero-valued fields.
//
// The teacher never needed cycle detection: RDF triples are acyclic by
// construction. Arbitrary host data walked via reflect genuinely can
// cycle (through pointers, slices, or maps), so Marshal tracks the
// identity of every container currently on the recursion path and fails
// with CyclicReference if one is re-entered.
func Marshal(data interface{}, opts ...interface{}) (string, error) {
	format, sopts := splitOpts(opts)
	var buf bytes.Buffer
	s := &serializer{
		format:     format,
		w:          &errWriter{w: bufio.NewWriter(&buf)},
		maxDepth:   DefaultMaxDepth,
		activePtrs: make(map[uintptr]bool),
	}
	for _, o := range sopts {
		o(s)
	}
	if err := s.writeReflect(reflect.ValueOf(data), 0); err != nil {
		return "", err
	}
	s.w.w.Flush()
	if s.w.err != nil {
		return "", s.w.err
	}
	return buf.String(), nil
}

func (s *serializer) writeReflect(rv reflect.Value, depth int) error {
	if depth > s.maxDepth {
		return newError(NestingTooDeep, Position{}, "nesting depth exceeds limit of %d", s.maxDepth)
	}
	if !rv.IsValid() {
		s.w.writeString("null")
		return s.w.err
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Ptr:
		if rv.IsNil() {
			s.w.writeString("null")
			return s.w.err
		}
		if rv.Kind() == reflect.Ptr {
			addr := rv.Pointer()
			if s.activePtrs[addr] {
				return newError(CyclicReference, Position{}, "cyclic reference detected")
			}
			s.activePtrs[addr] = true
			defer delete(s.activePtrs, addr)
		}
		return s.writeReflect(rv.Elem(), depth)

	case reflect.Bool:
		if rv.Bool() {
			s.w.writeString("true")
		} else {
			s.w.writeString("false")
		}

	case reflect.String:
		s.writeString(rv.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s.w.writeString(strconv.FormatInt(rv.Int(), 10))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		s.w.writeString(strconv.FormatUint(rv.Uint(), 10))

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		switch {
		case math.IsNaN(f):
			s.w.writeString("NaN")
		case math.IsInf(f, 1):
			s.w.writeString("Infinity")
		case math.IsInf(f, -1):
			s.w.writeString("-Infinity")
		default:
			s.w.writeString(formatShortestFloat(f))
		}

	case reflect.Slice:
		if rv.IsNil() {
			s.w.writeString("null")
			return s.w.err
		}
		addr := rv.Pointer()
		if s.activePtrs[addr] {
			return newError(CyclicReference, Position{}, "cyclic reference detected")
		}
		s.activePtrs[addr] = true
		defer delete(s.activePtrs, addr)
		return s.writeReflectSeq(rv, depth)

	case reflect.Array:
		return s.writeReflectSeq(rv, depth)

	case reflect.Map:
		if rv.IsNil() {
			s.w.writeString("null")
			return s.w.err
		}
		addr := rv.Pointer()
		if s.activePtrs[addr] {
			return newError(CyclicReference, Position{}, "cyclic reference detected")
		}
		s.activePtrs[addr] = true
		defer delete(s.activePtrs, addr)
		return s.writeReflectMap(rv, depth)

	case reflect.Struct:
		return s.writeReflectStruct(rv, depth)

	default:
		return newError(UnrepresentableNumber, Position{}, "cannot serialize a value of kind %s", rv.Kind())
	}
	return s.w.err
}

func (s *serializer) writeReflectSeq(rv reflect.Value, depth int) error {
	n := rv.Len()
	s.w.writeByte('[')
	if n == 0 {
		s.w.writeByte(']')
		return s.w.err
	}
	indented := s.format.Indent.enabled()
	for i := 0; i < n; i++ {
		if indented {
			s.w.writeByte('\n')
			s.writeIndent(depth + 1)
		}
		if err := s.writeReflect(rv.Index(i), depth+1); err != nil {
			return err
		}
		last := i == n-1
		if !last {
			s.w.writeByte(',')
		} else if indented && s.format.TrailingComma == TrailingCommaWhenIndented {
			s.w.writeByte(',')
		}
	}
	if indented {
		s.w.writeByte('\n')
		s.writeIndent(depth)
	}
	s.w.writeByte(']')
	return s.w.err
}

func (s *serializer) writeReflectMap(rv reflect.Value, depth int) error {
	keys := rv.MapKeys()
	strKeys := make([]string, len(keys))
	for i, k := range keys {
		strKeys[i] = fmt.Sprint(k.Interface())
	}
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return strKeys[order[a]] < strKeys[order[b]] })

	s.w.writeByte('{')
	if len(order) == 0 {
		s.w.writeByte('}')
		return s.w.err
	}
	indented := s.format.Indent.enabled()
	for pos, idx := range order {
		if indented {
			s.w.writeByte('\n')
			s.writeIndent(depth + 1)
		}
		s.writeKey(strKeys[idx])
		s.w.writeByte(':')
		if indented {
			s.w.writeByte(' ')
		}
		if err := s.writeReflect(rv.MapIndex(keys[idx]), depth+1); err != nil {
			return err
		}
		last := pos == len(order)-1
		if !last {
			s.w.writeByte(',')
		} else if indented && s.format.TrailingComma == TrailingCommaWhenIndented {
			s.w.writeByte(',')
		}
	}
	if indented {
		s.w.writeByte('\n')
		s.writeIndent(depth)
	}
	s.w.writeByte('}')
	return s.w.err
}

type structField struct {
	name      string
	index     int
	omitempty bool
}

func structFields(t reflect.Type) []structField {
	fields := make([]structField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		name := f.Name
		omitempty := false
		if tag, ok := f.Tag.Lookup("json5"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					omitempty = true
				}
			}
		}
		fields = append(fields, structField{name: name, index: i, omitempty: omitempty})
	}
	return fields
}

func (s *serializer) writeReflectStruct(rv reflect.Value, depth int) error {
	fields := structFields(rv.Type())
	s.w.writeByte('{')

	type pending struct {
		name string
		val  reflect.Value
	}
	var members []pending
	for _, f := range fields {
		fv := rv.Field(f.index)
		if f.omitempty && fv.IsZero() {
			continue
		}
		members = append(members, pending{name: f.name, val: fv})
	}

	if len(members) == 0 {
		s.w.writeByte('}')
		return s.w.err
	}
	indented := s.format.Indent.enabled()
	for i, m := range members {
		if indented {
			s.w.writeByte('\n')
			s.writeIndent(depth + 1)
		}
		s.writeKey(m.name)
		s.w.writeByte(':')
		if indented {
			s.w.writeByte(' ')
		}
		if err := s.writeReflect(m.val, depth+1); err != nil {
			return err
		}
		last := i == len(members)-1
		if !last {
			s.w.writeByte(',')
		} else if indented && s.format.TrailingComma == TrailingCommaWhenIndented {
			s.w.writeByte(',')
		}
	}
	if indented {
		s.w.writeByte('\n')
		s.writeIndent(depth)
	}
	s.w.writeByte('}')
	return s.w.err
}
