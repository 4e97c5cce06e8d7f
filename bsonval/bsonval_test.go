package bsonval

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/lagoondb/mql/bsonproto"
)

func mustDoc(t *testing.T, pairs ...any) *Document {
	t.Helper()

	doc, err := DocumentFromPairs(pairs...)
	require.NoError(t, err)

	return doc
}

func TestDocumentEncodeDecodeRoundTrip(t *testing.T) {
	doc := mustDoc(t,
		"_id", int32(1),
		"name", "alice",
		"score", 1.5,
		"active", true,
		"tags", MustArrayFromSlice([]any{"a", "b"}...),
		"nested", mustDoc(t, "x", int64(42)),
		"nothing", nil,
	)

	b, err := doc.Encode()
	require.NoError(t, err)

	got, rest, err := DecodeDocument(b)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.True(t, doc.Equal(got), "round-tripped document should equal the original")
}

func TestDocumentDecodeBadSize(t *testing.T) {
	doc := mustDoc(t, "a", int32(1))

	b, err := doc.Encode()
	require.NoError(t, err)

	// Corrupt the declared size to something longer than the buffer.
	b[0] = 0xff

	_, _, err = DecodeDocument(b)
	require.Error(t, err)
}

func TestArrayEncodeDecodeRoundTrip(t *testing.T) {
	arr := MustArrayFromSlice([]any{int32(1), "two", 3.0, true}...)

	b, err := arr.Encode()
	require.NoError(t, err)

	got, rest, err := DecodeArray(b)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.True(t, arr.Equal(got))
}

func TestCompareNumericCrossType(t *testing.T) {
	cases := []struct {
		a, b Value
		cmp  int
	}{
		{Int32Value(1), Int64Value(1), 0},
		{Int32Value(1), NumberValue(1.5), -1},
		{NumberValue(2.5), Int32Value(2), 1},
		{Int64Value(-5), Int32Value(-5), 0},
	}

	for _, c := range cases {
		cmp, ok := Compare(NewElement("", c.a), NewElement("", c.b))
		require.True(t, ok)
		assert.Equal(t, c.cmp, cmp)
	}
}

func TestCompareIncomparable(t *testing.T) {
	// Same-type non-numeric comparisons are deliberately incomparable: only
	// Number/Int32/Int64 participate in three-valued compare.
	_, ok := Compare(NewElement("", StringValue("a")), NewElement("", StringValue("a")))
	assert.False(t, ok)

	_, ok = Compare(NewElement("", BooleanValue(true)), NewElement("", BooleanValue(true)))
	assert.False(t, ok)

	_, ok = Compare(NewElement("", StringValue("a")), NewElement("", Int32Value(1)))
	assert.False(t, ok)
}

func TestValueEqualNaN(t *testing.T) {
	doc1 := mustDoc(t, "v", NumberValue(math.NaN()))
	doc2 := mustDoc(t, "v", NumberValue(math.NaN()))
	assert.True(t, doc1.Equal(doc2))
}

func TestValueEqualDatetime(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc1 := mustDoc(t, "t", now)
	doc2 := mustDoc(t, "t", now)
	assert.True(t, doc1.Equal(doc2))
}

func TestDecodeRegexTag(t *testing.T) {
	doc := NewDocument(1)
	doc.Add("x", RegexValue(bsonproto.Regex{Pattern: "a", Options: ""}))

	b, err := doc.Encode()
	require.NoError(t, err)

	_, _, err = DecodeDocument(b)
	require.NoError(t, err, "regex is a supported tag and must round-trip")
}
