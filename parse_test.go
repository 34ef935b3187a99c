package json5

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrimitives(t *testing.T) {
	v, err := Parse(`null`)
	require.NoError(t, err)
	assert.Equal(t, KindNull, v.Kind())

	v, err = Parse(`true`)
	require.NoError(t, err)
	assert.True(t, v.Bool())

	v, err = Parse(`false`)
	require.NoError(t, err)
	assert.False(t, v.Bool())

	v, err = Parse(`"hi"`)
	require.NoError(t, err)
	assert.Equal(t, "hi", v.Str())
}

func TestParseObjectWithUnquotedKeysAndTrailingComma(t *testing.T) {
	v, err := Parse("{a: 1, b: 2,}")
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind())
	obj := v.Object()
	require.Equal(t, 2, obj.Len())
	a, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), a.Num().Int())
}

func TestParseArrayWithTrailingComma(t *testing.T) {
	v, err := Parse("[1, 2, 3,]")
	require.NoError(t, err)
	require.Equal(t, KindArray, v.Kind())
	assert.Len(t, v.Array(), 3)
}

func TestParseRejectsDuplicateKey(t *testing.T) {
	_, err := Parse(`{a: 1, a: 2}`)
	require.Error(t, err)
	j5err, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, DuplicateKey, j5err.Kind)
}

func TestParseRejectsTrailingInput(t *testing.T) {
	_, err := Parse(`1 2`)
	require.Error(t, err)
	j5err, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, TrailingInput, j5err.Kind)
}

func TestParseIntegerOverflowReparsesAsDecimal(t *testing.T) {
	v, err := Parse("99999999999999999999999")
	require.NoError(t, err)
	require.Equal(t, NumberDecimal, v.Num().Kind())
}

func TestParseUnsignedHex(t *testing.T) {
	v, err := Parse("0xDECAF")
	require.NoError(t, err)
	require.Equal(t, NumberHexadecimal, v.Num().Kind())
	assert.Equal(t, int64(912559), v.Num().Int())

	v, err = Parse("0xdecaf")
	require.NoError(t, err)
	require.Equal(t, NumberHexadecimal, v.Num().Kind())
	assert.Equal(t, int64(912559), v.Num().Int())
}

func TestParseHexNegativeMinInt64(t *testing.T) {
	v, err := Parse("-0x8000000000000000")
	require.NoError(t, err)
	require.Equal(t, NumberHexadecimal, v.Num().Kind())
	assert.Equal(t, int64(-9223372036854775808), v.Num().Int())
}

func TestParseExtendedReals(t *testing.T) {
	v, err := Parse("Infinity")
	require.NoError(t, err)
	assert.Equal(t, NumberPositiveInfinity, v.Num().Kind())

	v, err = Parse("-Infinity")
	require.NoError(t, err)
	assert.Equal(t, NumberNegativeInfinity, v.Num().Kind())

	v, err = Parse("NaN")
	require.NoError(t, err)
	assert.Equal(t, NumberNaN, v.Num().Kind())
}

func TestParseNestedStructure(t *testing.T) {
	v, err := Parse(`{name: "json5", tags: ['a', 'b'], meta: {ok: true}}`)
	require.NoError(t, err)
	obj := v.Object()
	tags, ok := obj.Get("tags")
	require.True(t, ok)
	assert.Len(t, tags.Array(), 2)
	meta, ok := obj.Get("meta")
	require.True(t, ok)
	ok2, found := meta.Object().Get("ok")
	require.True(t, found)
	assert.True(t, ok2.Bool())
}

func TestParseEnforcesMaxDepth(t *testing.T) {
	deep := ""
	for i := 0; i < 5; i++ {
		deep += "["
	}
	for i := 0; i < 5; i++ {
		deep += "]"
	}
	_, err := Parse(deep, WithMaxDepth(2))
	require.Error(t, err)
	j5err, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, NestingTooDeep, j5err.Kind)
}

func TestParseCommentsAreIgnored(t *testing.T) {
	v, err := Parse("{ // trailing\n a: 1 /* inline */ }")
	require.NoError(t, err)
	a, ok := v.Object().Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), a.Num().Int())
}
