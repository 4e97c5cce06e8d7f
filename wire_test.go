package wire

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/lagoondb/mql/bsonval"
)

func mustDoc(t *testing.T, pairs ...any) *bsonval.Document {
	t.Helper()

	doc, err := bsonval.DocumentFromPairs(pairs...)
	require.NoError(t, err)

	return doc
}

func TestFrameRoundTrip(t *testing.T) {
	doc, err := bsonval.DocumentFromPairs("ping", int32(1))
	require.NoError(t, err)

	frame := &Frame{
		Header: MsgHeader{RequestID: 42, OpCode: OpCodeMsg},
		Sections: []Section{
			{Kind: SectionKindBody, Documents: []*bsonval.Document{doc}},
		},
	}

	b, err := frame.Encode()
	require.NoError(t, err)

	got, rest, err := Decode(b)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, OpCodeMsg, got.Header.OpCode)
	assert.Equal(t, int32(42), got.Header.RequestID)
	require.Len(t, got.Sections, 1)
	assert.True(t, doc.Equal(got.Sections[0].Documents[0]))
}

func TestUnknownOpCode(t *testing.T) {
	b := make([]byte, MsgHeaderLen)
	binary.LittleEndian.PutUint32(b[0:4], uint32(MsgHeaderLen))
	binary.LittleEndian.PutUint32(b[12:16], 9999)

	_, _, err := Decode(b)
	require.Error(t, err)
	assert.Equal(t, "Unknown op code: 9999", err.Error())
}

func TestMultipleBodySections(t *testing.T) {
	doc := mustDoc(t, "a", int32(1))

	frame := &Frame{
		Header: MsgHeader{OpCode: OpCodeMsg},
		Sections: []Section{
			{Kind: SectionKindBody, Documents: []*bsonval.Document{doc}},
			{Kind: SectionKindBody, Documents: []*bsonval.Document{doc}},
		},
	}

	_, err := frame.Encode()
	require.Error(t, err)
	assert.Equal(t, "Multiple body sections in message", err.Error())
}

func TestUnknownSectionKind(t *testing.T) {
	doc := mustDoc(t, "a", int32(1))
	docBytes, err := doc.Encode()
	require.NoError(t, err)

	body := make([]byte, 4)
	body = append(body, 7) // unknown kind
	body = append(body, docBytes...)

	header := MsgHeader{OpCode: OpCodeMsg, MessageLength: int32(MsgHeaderLen + len(body))}
	headerBytes, err := header.MarshalBinary()
	require.NoError(t, err)

	full := append(headerBytes, body...)

	_, _, err = Decode(full)
	require.Error(t, err)
	assert.Equal(t, "Unknown section kind 7", err.Error())
}

func TestDocumentSequenceSection(t *testing.T) {
	doc1 := mustDoc(t, "x", int32(1))
	doc2 := mustDoc(t, "x", int32(2))

	frame := &Frame{
		Header: MsgHeader{OpCode: OpCodeMsg},
		Sections: []Section{
			{Kind: SectionKindDocumentSequence, Identifier: "docs", Documents: []*bsonval.Document{doc1, doc2}},
		},
	}

	b, err := frame.Encode()
	require.NoError(t, err)

	got, _, err := Decode(b)
	require.NoError(t, err)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "docs", got.Sections[0].Identifier)
	require.Len(t, got.Sections[0].Documents, 2)
	assert.True(t, doc1.Equal(got.Sections[0].Documents[0]))
	assert.True(t, doc2.Equal(got.Sections[0].Documents[1]))
}

func TestFlagBitsSingleWordDecode(t *testing.T) {
	// All three documented bits set, plus an undocumented bit that must be
	// ignored rather than corrupting adjacent bit positions the way a
	// two-16-bit-half decode would.
	word := uint32(1<<0 | 1<<1 | 1<<16 | 1<<20)

	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, word)

	flags, err := decodeFlagBits(b)
	require.NoError(t, err)
	assert.True(t, flags.ChecksumPresent)
	assert.True(t, flags.MoreToCome)
	assert.True(t, flags.ExhaustAllowed)
}

func TestReadFrame(t *testing.T) {
	doc := mustDoc(t, "a", int32(1))

	frame := &Frame{
		Header:   MsgHeader{OpCode: OpCodeMsg},
		Sections: []Section{{Kind: SectionKindBody, Documents: []*bsonval.Document{doc}}},
	}

	b, err := frame.Encode()
	require.NoError(t, err)

	got, err := ReadFrame(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, OpCodeMsg, got.Header.OpCode)
}
