// Package json5ext bridges a json5.Value tree to and from a generic
// external JSON element, the way the teacher's xsd subpackage bridges
// RDF IRIs to a single external namespace concern: a small package that
// imports the root package and re-exposes one mapping, rather than
// folding that mapping into the core.
//
// The external element type here is whatever github.com/segmentio/encoding/json
// already produces and consumes: map[string]interface{}, []interface{},
// string, bool, nil, and json.Number for numbers. That makes the result
// of Decode a value any encoding/json-compatible structured-data codec
// can consume directly, and the input to Encode anything such a codec
// can produce.
package json5ext

import (
	"strings"

	"github.com/segmentio/encoding/json"

	"github.com/jsonfive/json5"
)

// Decode parses text as JSON5 and projects the resulting Value tree into
// a generic external JSON element. Objects become map[string]interface{},
// arrays become []interface{}, strings and booleans and null map
// directly, and numbers become json.Number holding the value's
// canonical JSON5 text. NaN and the two signed infinities have no
// representation in plain JSON and are reported as UnrepresentableNumber.
func Decode(text string) (interface{}, error) {
	v, err := json5.Parse(text)
	if err != nil {
		return nil, err
	}
	return project(v)
}

func project(v json5.Value) (interface{}, error) {
	switch v.Kind() {
	case json5.KindNull:
		return nil, nil
	case json5.KindBoolean:
		return v.Bool(), nil
	case json5.KindString:
		return v.Str(), nil
	case json5.KindNumber:
		return projectNumber(v.Num())
	case json5.KindArray:
		items := v.Array()
		out := make([]interface{}, len(items))
		for i, item := range items {
			p, err := project(item)
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return out, nil
	case json5.KindObject:
		obj := v.Object()
		out := make(map[string]interface{}, obj.Len())
		for i := 0; i < obj.Len(); i++ {
			key, val := obj.At(i)
			p, err := project(val)
			if err != nil {
				return nil, err
			}
			out[key] = p
		}
		return out, nil
	default:
		return nil, nil
	}
}

func projectNumber(n json5.Number) (interface{}, error) {
	switch n.Kind() {
	case json5.NumberInteger, json5.NumberHexadecimal:
		return json.Number(formatInt(n.Int())), nil
	case json5.NumberDecimal:
		return json.Number(formatFloat(n.Float())), nil
	default:
		return nil, unrepresentable(n.Kind())
	}
}

// Encode classifies an arbitrary decoded JSON element's numbers by their
// textual form and renders the whole tree through the core serializer.
// A json.Number is one of the three extended reals if it is exactly
// "NaN", "Infinity", or "-Infinity"; otherwise Hexadecimal if it begins
// with "0x" or "0X" after an optional '+' or '-'; otherwise Decimal if
// its text contains '.', 'e', or 'E'; otherwise Integer.
func Encode(element interface{}, opts ...interface{}) (string, error) {
	v, err := lift(element)
	if err != nil {
		return "", err
	}
	return json5.Stringify(v, opts...)
}

func lift(element interface{}) (json5.Value, error) {
	switch e := element.(type) {
	case nil:
		return json5.Null(), nil
	case bool:
		return json5.Boolean(e), nil
	case string:
		return json5.String(e), nil
	case json.Number:
		return liftNumber(string(e))
	case float64:
		return liftNumber(formatFloat(e))
	case []interface{}:
		items := make([]json5.Value, len(e))
		for i, item := range e {
			lv, err := lift(item)
			if err != nil {
				return json5.Value{}, err
			}
			items[i] = lv
		}
		return json5.ArrayValue(items...), nil
	case map[string]interface{}:
		obj := json5.NewObject()
		for k, val := range e {
			lv, err := lift(val)
			if err != nil {
				return json5.Value{}, err
			}
			if err := obj.Set(k, lv); err != nil {
				return json5.Value{}, err
			}
		}
		return json5.ObjectValue(obj), nil
	default:
		return json5.Value{}, unrepresentableKind(element)
	}
}

func liftNumber(text string) (json5.Value, error) {
	switch text {
	case "NaN":
		return json5.NumberValue(json5.NaNNumber()), nil
	case "Infinity":
		return json5.NumberValue(json5.PositiveInfinityNumber()), nil
	case "-Infinity":
		return json5.NumberValue(json5.NegativeInfinityNumber()), nil
	}

	bare := strings.TrimPrefix(strings.TrimPrefix(text, "-"), "+")
	if strings.HasPrefix(bare, "0x") || strings.HasPrefix(bare, "0X") {
		i, err := parseHexSigned(text)
		if err != nil {
			return json5.Value{}, err
		}
		return json5.NumberValue(json5.Hexadecimal(i)), nil
	}
	if strings.ContainsAny(text, ".eE") {
		f, err := parseFloat(text)
		if err != nil {
			return json5.Value{}, err
		}
		return json5.NumberValue(json5.Decimal(f)), nil
	}
	i, err := parseInt(text)
	if err != nil {
		return json5.Value{}, err
	}
	return json5.NumberValue(json5.Integer(i)), nil
}
