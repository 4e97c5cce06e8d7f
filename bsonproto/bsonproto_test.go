package bsonproto

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestInt32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32} {
		b := make([]byte, SizeInt32)
		EncodeInt32(b, v)

		got, err := DecodeInt32(b)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestInt64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		b := make([]byte, SizeInt64)
		EncodeInt64(b, v)

		got, err := DecodeInt64(b)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1.5, -1.5, math.Inf(1), math.Inf(-1), math.NaN()} {
		b := make([]byte, SizeFloat64)
		EncodeFloat64(b, v)

		got, err := DecodeFloat64(b)
		require.NoError(t, err)

		if math.IsNaN(v) {
			assert.True(t, math.IsNaN(got))
			continue
		}

		assert.Equal(t, v, got)
	}
}

func TestBoolRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		b := make([]byte, SizeBool)
		EncodeBool(b, v)

		got, err := DecodeBool(b)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestCStringRoundTrip(t *testing.T) {
	for _, v := range []string{"", "hello", "a.b.c"} {
		b := make([]byte, SizeCString(v))
		EncodeCString(b, v)

		got, err := DecodeCString(b)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestCStringNoNUL(t *testing.T) {
	_, err := DecodeCString([]byte("no nul here"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecodeInvalidInput)
}

func TestStringRoundTrip(t *testing.T) {
	for _, v := range []string{"", "hello, world", "\x00embedded"} {
		b := make([]byte, SizeString(v))
		EncodeString(b, v)

		got, err := DecodeString(b)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestStringShortInput(t *testing.T) {
	_, err := DecodeString([]byte{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecodeShortInput))
}

func TestBinaryRoundTrip(t *testing.T) {
	v := Binary{B: []byte{1, 2, 3, 4}, Subtype: BinaryGeneric}
	b := make([]byte, SizeBinary(v))
	EncodeBinary(b, v)

	got, err := DecodeBinary(b)
	require.NoError(t, err)
	assert.Equal(t, v.Subtype, got.Subtype)
	assert.Equal(t, v.B, got.B)
}

func TestObjectIDRoundTrip(t *testing.T) {
	v := bson.NewObjectID()
	b := make([]byte, SizeObjectID)
	EncodeObjectID(b, v)

	got, err := DecodeObjectID(b)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestRegexRoundTrip(t *testing.T) {
	v := Regex{Pattern: "^abc$", Options: "i"}
	b := make([]byte, SizeRegex(v))
	EncodeRegex(b, v)

	got, err := DecodeRegex(b)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestTimestampRoundTrip(t *testing.T) {
	v := NewTimestamp(123, 456)
	b := make([]byte, SizeTimestamp)
	EncodeTimestamp(b, v)

	got, err := DecodeTimestamp(b)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	assert.Equal(t, uint32(123), got.T())
	assert.Equal(t, uint32(456), got.I())
}

func TestDecimal128RoundTrip(t *testing.T) {
	v := bson.NewDecimal128(1, 2)
	b := make([]byte, SizeDecimal128)
	EncodeDecimal128(b, v)

	got, err := DecodeDecimal128(b)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}
