package json5ext

import (
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonfive/json5"
)

func TestDecodeProjectsToGenericElements(t *testing.T) {
	element, err := Decode(`{a: 1, b: [true, null, 'x'], c: 0xFF}`)
	require.NoError(t, err)

	m, ok := element.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, json.Number("1"), m["a"])
	assert.Equal(t, json.Number("255"), m["c"])

	b, ok := m["b"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{true, nil, "x"}, b)
}

func TestDecodeRejectsExtendedReals(t *testing.T) {
	_, err := Decode(`NaN`)
	require.Error(t, err)
	j5err, ok := err.(*json5.Error)
	require.True(t, ok)
	assert.Equal(t, json5.UnrepresentableNumber, j5err.Kind)
}

func TestEncodeLiftsGenericElements(t *testing.T) {
	element := map[string]interface{}{
		"name": "json5",
		"n":    json.Number("42"),
		"f":    json.Number("1.5"),
		"hex":  json.Number("0x10"),
		"tags": []interface{}{"a", "b"},
	}
	text, err := Encode(element)
	require.NoError(t, err)

	reparsed, err := json5.Parse(text)
	require.NoError(t, err)
	obj := reparsed.Object()

	n, ok := obj.Get("n")
	require.True(t, ok)
	assert.Equal(t, int64(42), n.Num().Int())

	hex, ok := obj.Get("hex")
	require.True(t, ok)
	// Hexadecimal numbers are written in decimal form, so they reparse
	// as Integer.
	assert.Equal(t, json5.NumberInteger, hex.Num().Kind())
	assert.Equal(t, int64(16), hex.Num().Int())
}

func TestEncodeRejectsUnrepresentableKind(t *testing.T) {
	_, err := Encode(make(chan int))
	require.Error(t, err)
	j5err, ok := err.(*json5.Error)
	require.True(t, ok)
	assert.Equal(t, json5.UnrepresentableNumber, j5err.Kind)
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	original := `{a:1,b:[1.5,'x',true,null]}`
	element, err := Decode(original)
	require.NoError(t, err)

	text, err := Encode(element)
	require.NoError(t, err)

	roundTripped, err := Decode(text)
	require.NoError(t, err)
	assert.Equal(t, element, roundTripped)
}
