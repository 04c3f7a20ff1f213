package dyn

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	for _, tc := range []struct {
		k    Kind
		want string
	}{
		{KindNone, "None"},
		{KindArray, "Array"},
		{KindCsvObject, "CsvObject"},
		{numKinds, "<unknown>"},
		{-1, "<unknown>"},
	} {
		assert.Equal(t, tc.want, tc.k.String())
	}
}

func TestAccessorsStrictVsCoercing(t *testing.T) {
	u := NewUint(5)

	_, ok := u.AsInt()
	assert.False(t, ok, "AsInt must not coerce a Uint")

	i, ok := u.ToInt()
	require.True(t, ok)
	assert.Equal(t, int64(5), i)

	s, ok := NewUint(5).ToString()
	require.True(t, ok)
	assert.Equal(t, "5", s)

	_, ok = NewBool(true).ToInt()
	assert.False(t, ok, "Bool must never coerce to integer")
}

func TestToUintRejectsNegativeFloat(t *testing.T) {
	_, ok := NewFloat(-1.5).ToUint()
	assert.False(t, ok)
}

func TestToIntFromOverflowingUint(t *testing.T) {
	_, ok := NewUint(1 << 63).ToInt()
	assert.False(t, ok, "a Uint above MaxInt64 must not coerce to Int")
}

func TestToFloatFromString(t *testing.T) {
	f, ok := NewString("3.25").ToFloat()
	require.True(t, ok)
	assert.Equal(t, 3.25, f)

	_, ok = NewString("not a number").ToFloat()
	assert.False(t, ok)
}

func TestIsNumberPredicate(t *testing.T) {
	assert.True(t, NewUint(1).IsNumber())
	assert.True(t, NewInt(-1).IsNumber())
	assert.True(t, NewFloat(1.5).IsNumber())
	assert.False(t, NewString("1").IsNumber())
	assert.False(t, None.IsNumber())
}

func TestDisplayQuotesStringsOnlyWhenEmbedded(t *testing.T) {
	assert.Equal(t, "hello", NewString("hello").String())
	assert.Equal(t, `["hello"]`, NewArray([]Value{NewString("hello")}).String())
	assert.Equal(t, "null", None.String())
	assert.Equal(t, "[1, 2, 3]", NewArray([]Value{NewUint(1), NewUint(2), NewUint(3)}).String())
}

func TestEqualIsOrderIndependentForObjects(t *testing.T) {
	a := NewObject(map[string]Value{"x": NewUint(1), "y": NewUint(2)})
	b := NewObject(map[string]Value{"y": NewUint(2), "x": NewUint(1)})
	if !a.Equal(b) {
		t.Fatalf("expected order-independent object equality, diff: %s", cmp.Diff(a, b, cmp.Exporter(func(_ any) bool { return true })))
	}
}

func TestEqualDistinguishesKinds(t *testing.T) {
	assert.False(t, NewUint(0).Equal(NewInt(0)))
	assert.False(t, NewUint(0).Equal(NewFloat(0)))
	assert.True(t, None.Equal(Value{}))
}
