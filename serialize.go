package json5

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Quote selects the preferred quote character for serialized strings and
// (when QuoteKeysAlways is set) object keys.
type Quote int

const (
	QuoteSingle Quote = iota
	QuoteDouble
)

// Indent controls whether and how deeply containers are pretty-printed.
// The zero value renders compactly, with no inserted whitespace.
type Indent struct {
	spaces int
}

// NoIndent renders containers compactly on a single line.
func NoIndent() Indent { return Indent{} }

// Spaces renders containers with n spaces per nesting level. n must be
// between 1 and 10 inclusive.
func Spaces(n int) Indent {
	if n < 1 || n > 10 {
		panic("json5: indent spaces must be between 1 and 10")
	}
	return Indent{spaces: n}
}

func (i Indent) enabled() bool { return i.spaces > 0 }

// TrailingComma controls whether a trailing comma follows the last
// member of an indented container. It has no effect in compact mode.
type TrailingComma int

const (
	TrailingCommaNever TrailingComma = iota
	TrailingCommaWhenIndented
)

// QuoteKeys controls when object keys are quoted.
type QuoteKeys int

const (
	// QuoteKeysWhenNeeded leaves a key unquoted when it is a valid
	// ECMAScript identifier and not one of the five reserved value
	// keywords (true, false, null, Infinity, NaN).
	QuoteKeysWhenNeeded QuoteKeys = iota
	QuoteKeysAlways
)

// Format controls how Stringify and Marshal render a value.
type Format struct {
	Quote         Quote
	Indent        Indent
	TrailingComma TrailingComma
	QuoteKeys     QuoteKeys
}

// DefaultFormat is the Format used when Stringify or Marshal are called
// with no explicit Format: single-quoted strings, compact, no trailing
// comma, unquoted keys where valid.
func DefaultFormat() Format {
	return Format{
		Quote:         QuoteSingle,
		Indent:        NoIndent(),
		TrailingComma: TrailingCommaNever,
		QuoteKeys:     QuoteKeysWhenNeeded,
	}
}

// StringifyOption configures a single Stringify or Marshal call beyond
// the Format axes.
type StringifyOption func(*serializer)

// WithSerializeMaxDepth overrides the nesting-depth guard the serializer
// applies, matching the parser's depth bound.
func WithSerializeMaxDepth(n int) StringifyOption {
	return func(s *serializer) { s.maxDepth = n }
}

// serializer walks a Value tree (or, via writeReflect, arbitrary host
// data) and renders it through a sticky-error buffered writer, the same
// shape as the teacher's errWriter in encoder.go: writes after the first
// failure are no-ops, and the accumulated error is returned once at the
// end instead of threaded through every call.
type serializer struct {
	format   Format
	w        *errWriter
	maxDepth int

	activeObjects map[*Object]bool
	activePtrs    map[uintptr]bool
}

type errWriter struct {
	w   *bufio.Writer
	err error
}

func (ew *errWriter) writeString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = ew.w.WriteString(s)
}

func (ew *errWriter) writeByte(b byte) {
	if ew.err != nil {
		return
	}
	ew.err = ew.w.WriteByte(b)
}

func (ew *errWriter) writeRune(r rune) {
	if ew.err != nil {
		return
	}
	_, ew.err = ew.w.WriteRune(r)
}

// Stringify renders a Value tree as JSON5 text.
func Stringify(v Value, opts ...interface{}) (string, error) {
	format, sopts := splitOpts(opts)
	var buf bytes.Buffer
	s := &serializer{
		format:        format,
		w:             &errWriter{w: bufio.NewWriter(&buf)},
		maxDepth:      DefaultMaxDepth,
		activeObjects: make(map[*Object]bool),
	}
	for _, o := range sopts {
		o(s)
	}
	if err := s.writeValue(v, 0); err != nil {
		return "", err
	}
	s.w.w.Flush()
	if s.w.err != nil {
		return "", s.w.err
	}
	return buf.String(), nil
}

// splitOpts lets Stringify/Marshal accept a mix of Format and
// StringifyOption arguments; at most one Format is meaningful.
func splitOpts(opts []interface{}) (Format, []StringifyOption) {
	format := DefaultFormat()
	var sopts []StringifyOption
	for _, o := range opts {
		switch v := o.(type) {
		case Format:
			format = v
		case StringifyOption:
			sopts = append(sopts, v)
		}
	}
	return format, sopts
}

func (s *serializer) writeValue(v Value, depth int) error {
	if depth > s.maxDepth {
		return newError(NestingTooDeep, Position{}, "nesting depth exceeds limit of %d", s.maxDepth)
	}
	switch v.Kind() {
	case KindNull:
		s.w.writeString("null")
	case KindBoolean:
		if v.Bool() {
			s.w.writeString("true")
		} else {
			s.w.writeString("false")
		}
	case KindString:
		s.writeString(v.Str())
	case KindNumber:
		return s.writeNumber(v.Num())
	case KindArray:
		return s.writeArray(v.Array(), depth)
	case KindObject:
		return s.writeObject(v.Object(), depth)
	}
	return s.w.err
}

func (s *serializer) writeNumber(n Number) error {
	switch n.Kind() {
	case NumberInteger, NumberHexadecimal:
		s.w.writeString(strconv.FormatInt(n.Int(), 10))
	case NumberDecimal:
		s.w.writeString(formatShortestFloat(n.Float()))
	case NumberPositiveInfinity:
		s.w.writeString("Infinity")
	case NumberNegativeInfinity:
		s.w.writeString("-Infinity")
	case NumberNaN:
		s.w.writeString("NaN")
	}
	return s.w.err
}

// formatShortestFloat renders f using the shortest decimal form that
// round-trips to the same float64, per strconv.FormatFloat's 'g', -1
// mode. Negative zero is rendered as the bare "-0" per the serializer's
// documented behavior for that one value: it does not round-trip back
// to a Decimal (it reparses as Integer 0), a deliberate, narrow
// exception recorded in DESIGN.md. Every other finite value is given an
// explicit '.' or exponent so it always reparses as a FloatLiteral.
func formatShortestFloat(f float64) string {
	if f == 0 {
		if math.Signbit(f) {
			return "-0"
		}
		return "0.0"
	}
	out := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(out, ".eE") {
		out += ".0"
	}
	return out
}

func (s *serializer) writeArray(items []Value, depth int) error {
	s.w.writeByte('[')
	if len(items) == 0 {
		s.w.writeByte(']')
		return s.w.err
	}
	indented := s.format.Indent.enabled()
	for i, item := range items {
		if indented {
			s.w.writeByte('\n')
			s.writeIndent(depth + 1)
		}
		if err := s.writeValue(item, depth+1); err != nil {
			return err
		}
		last := i == len(items)-1
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

func (s *serializer) writeObject(o *Object, depth int) error {
	if o != nil {
		if s.activeObjects[o] {
			return newError(CyclicReference, Position{}, "cyclic object reference detected")
		}
		s.activeObjects[o] = true
		defer delete(s.activeObjects, o)
	}

	s.w.writeByte('{')
	n := 0
	if o != nil {
		n = o.Len()
	}
	if n == 0 {
		s.w.writeByte('}')
		return s.w.err
	}
	indented := s.format.Indent.enabled()
	for i := 0; i < n; i++ {
		key, val := o.At(i)
		if indented {
			s.w.writeByte('\n')
			s.writeIndent(depth + 1)
		}
		s.writeKey(key)
		s.w.writeByte(':')
		if indented {
			s.w.writeByte(' ')
		}
		if err := s.writeValue(val, depth+1); err != nil {
			return err
		}
		last := i == n-1
		if !last {
			s.w.writeByte(',')
			if !indented {
				// compact mode: no space after comma, matching the
				// single-line rendering used throughout this format.
			}
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

func (s *serializer) writeIndent(depth int) {
	for i := 0; i < depth*s.format.Indent.spaces; i++ {
		s.w.writeByte(' ')
	}
}

func (s *serializer) writeKey(key string) {
	if s.format.QuoteKeys == QuoteKeysWhenNeeded && isValidUnquotedKey(key) {
		s.w.writeString(key)
		return
	}
	s.writeString(key)
}

func isValidUnquotedKey(key string) bool {
	if key == "" || isReservedValueKeyword(key) {
		return false
	}
	runes := []rune(key)
	if !isIdentifierStart(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !isIdentifierPart(r) {
			return false
		}
	}
	return true
}

func isReservedValueKeyword(s string) bool {
	switch s {
	case "true", "false", "null", "Infinity", "NaN":
		return true
	}
	return false
}

func (s *serializer) chooseQuote(str string) rune {
	preferred, other := '\'', '"'
	if s.format.Quote == QuoteDouble {
		preferred, other = '"', '\''
	}
	if strings.ContainsRune(str, preferred) && !strings.ContainsRune(str, other) {
		return other
	}
	return preferred
}

func (s *serializer) writeString(str string) {
	quote := s.chooseQuote(str)
	runes := []rune(str)
	s.w.writeRune(quote)
	for i, r := range runes {
		next := rune(-1)
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		s.writeStringRune(r, quote, next)
	}
	s.w.writeRune(quote)
}

func (s *serializer) writeStringRune(r, quote, next rune) {
	switch {
	case r == quote:
		s.w.writeByte('\\')
		s.w.writeRune(r)
	case r == '\\':
		s.w.writeString(`\\`)
	case r == '\n':
		s.w.writeString(`\n`)
	case r == '\r':
		s.w.writeString(`\r`)
	case r == '\t':
		s.w.writeString(`\t`)
	case r == '\b':
		s.w.writeString(`\b`)
	case r == '\f':
		s.w.writeString(`\f`)
	case r == '\v':
		s.w.writeString(`\v`)
	case r == 0:
		if isDigit(next) {
			s.w.writeString(`\x00`)
		} else {
			s.w.writeString(`\0`)
		}
	case r == ' ':
		s.w.writeString(`\u2028`)
	case r == ' ':
		s.w.writeString(`\u2029`)
	case r == 0x7f:
		s.w.writeString(`\x7F`)
	case r < 0x20:
		s.w.writeString(fmt.Sprintf(`\x%02X`, r))
	case r > 0xFFFF:
		hi, lo := utf16.EncodeRune(r)
		s.w.writeString(fmt.Sprintf(`\u%04X\u%04X`, hi, lo))
	default:
		s.w.writeRune(r)
	}
}
