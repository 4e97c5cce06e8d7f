// Copyright 2021 FerretDB Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wire

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"golang.org/x/sync/errgroup"

	"example.com/lagoondb/mql/internal/util/lazyerrors"
)

// Frame is one decoded message: its header, and, for OP_MSG, the flag word
// and sections carried in its body. Other recognized opcodes carry a header
// only; this package does not decode their legacy bodies.
type Frame struct {
	Header   MsgHeader
	Flags    FlagBits
	Sections []Section
	Checksum uint32
}

// crc32cTable is the Castagnoli polynomial table CRC32C checksums use.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// checksumOf returns the CRC32C of b, the same algorithm a checksumPresent
// frame's trailing 4 bytes are claimed to hold.
func checksumOf(b []byte) uint32 {
	return crc32.Checksum(b, crc32cTable)
}

// Decode parses a single frame out of b, which must hold at least
// header.MessageLength bytes. It returns the decoded Frame and the bytes
// left over after it.
//
// Checksum validation is a stub: a present checksum is recorded on the
// Frame but never compared against a recomputed value.
func Decode(b []byte) (*Frame, []byte, error) {
	header, err := decodeMsgHeader(b)
	if err != nil {
		return nil, nil, err
	}

	if len(b) < int(header.MessageLength) {
		return nil, nil, lazyerrors.Errorf("expected %d bytes, got %d", header.MessageLength, len(b))
	}

	body := b[MsgHeaderLen:header.MessageLength]
	rest := b[header.MessageLength:]

	frame := &Frame{Header: header}

	if header.OpCode != OpCodeMsg {
		return frame, rest, nil
	}

	flags, err := decodeFlagBits(body)
	if err != nil {
		return nil, nil, err
	}

	frame.Flags = flags

	sectionsEnd := len(body)
	if flags.ChecksumPresent {
		if len(body) < 4+4 {
			return nil, nil, fmt.Errorf("expected at least 8 bytes for flags and checksum, got %d", len(body))
		}

		sectionsEnd -= 4
		frame.Checksum = binary.LittleEndian.Uint32(body[sectionsEnd:])
	}

	sections, err := decodeSections(body[4:sectionsEnd])
	if err != nil {
		return nil, nil, err
	}

	frame.Sections = sections

	if CheckNaNs {
		if err := checkNaN(sections); err != nil {
			return nil, nil, err
		}
	}

	return frame, rest, nil
}

// Encode is the inverse of Decode.
func (f *Frame) Encode() ([]byte, error) {
	if f.Header.OpCode != OpCodeMsg {
		header := f.Header
		header.MessageLength = MsgHeaderLen

		return header.MarshalBinary()
	}

	sectionBytes, err := encodeSections(f.Sections)
	if err != nil {
		return nil, err
	}

	bodyLen := 4 + len(sectionBytes)
	if f.Flags.ChecksumPresent {
		bodyLen += 4
	}

	header := f.Header
	header.MessageLength = int32(MsgHeaderLen + bodyLen)

	headerBytes, err := header.MarshalBinary()
	if err != nil {
		return nil, err
	}

	b := make([]byte, 0, len(headerBytes)+bodyLen)
	b = append(b, headerBytes...)

	var flagWord [4]byte
	binary.LittleEndian.PutUint32(flagWord[:], f.Flags.encode())
	b = append(b, flagWord[:]...)

	b = append(b, sectionBytes...)

	if f.Flags.ChecksumPresent {
		var checksum [4]byte
		binary.LittleEndian.PutUint32(checksum[:], checksumOf(b))
		b = append(b, checksum[:]...)
	}

	return b, nil
}

// ReadFrame reads one frame from r: a 4-byte little-endian message length
// followed by that many bytes (the length prefix is itself part of the
// header and of the returned frame bytes), mirroring the reference server's
// read loop, which never interprets a frame beyond pulling its declared
// length off the socket.
func ReadFrame(r io.Reader) (*Frame, error) {
	lenBuf := make([]byte, 4)
	if _, err := io.ReadFull(r, lenBuf); err != nil {
		return nil, err
	}

	length := int32(binary.LittleEndian.Uint32(lenBuf))
	if length < MsgHeaderLen || length > MaxMsgLen {
		return nil, lazyerrors.Errorf("invalid message length %d", length)
	}

	b := make([]byte, length)
	copy(b, lenBuf)

	if _, err := io.ReadFull(r, b[4:]); err != nil {
		return nil, lazyerrors.Error(err)
	}

	frame, _, err := Decode(b)
	if err != nil {
		return nil, err
	}

	return frame, nil
}

// DecodeBatch decodes each of frames concurrently; frames are independent
// and immutable once constructed, so there is nothing to synchronize beyond
// collecting results in input order.
func DecodeBatch(ctx context.Context, frames [][]byte) ([]*Frame, error) {
	result := make([]*Frame, len(frames))

	g, ctx := errgroup.WithContext(ctx)

	for i, b := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			frame, _, err := Decode(b)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}

			result[i] = frame

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// String returns a short representation for logging.
func (f *Frame) String() string {
	if f == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s flags: %s sections: %d", f.Header.String(), f.Flags.String(), len(f.Sections))
}
