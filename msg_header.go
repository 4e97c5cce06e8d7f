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
	"encoding/binary"
	"fmt"

	"example.com/lagoondb/mql/internal/util/lazyerrors"
)

// OpCode identifies the kind of message a [MsgHeader] introduces. Only the
// codes a document-database wire still speaks are recognized; every other
// historical code (OP_REPLY, OP_UPDATE, ...) is rejected rather than carried
// forward as a known-but-unused constant.
type OpCode int32

// The recognized opcodes.
const (
	OpCodeInvalid OpCode = 0
	OpCodeInsert  OpCode = 2002
	OpCodeQuery   OpCode = 2004
	OpCodeGetMore OpCode = 2005
	OpCodeMsg     OpCode = 2013
)

// String returns a human-readable name for the opcode, or a numeric
// fallback for anything not in the recognized set.
func (c OpCode) String() string {
	switch c {
	case OpCodeInvalid:
		return "OP_INVALID"
	case OpCodeInsert:
		return "OP_INSERT"
	case OpCodeQuery:
		return "OP_QUERY"
	case OpCodeGetMore:
		return "OP_GET_MORE"
	case OpCodeMsg:
		return "OP_MSG"
	default:
		return fmt.Sprintf("OpCode(%d)", int32(c))
	}
}

// checkOpCode reports an error unless c is one of the recognized opcodes.
func checkOpCode(c OpCode) error {
	switch c {
	case OpCodeInvalid, OpCodeInsert, OpCodeQuery, OpCodeGetMore, OpCodeMsg:
		return nil
	default:
		return fmt.Errorf("Unknown op code: %d", int32(c))
	}
}

// MsgHeaderLen is the wire length of a [MsgHeader]: four little-endian
// int32 fields.
const MsgHeaderLen = 16

// MaxMsgLen is the largest message length this package will accept.
const MaxMsgLen = 48_000_000

// MsgHeader is the 16-byte header every frame begins with.
type MsgHeader struct {
	MessageLength int32
	RequestID     int32
	ResponseTo    int32
	OpCode        OpCode
}

// decodeMsgHeader reads a MsgHeader from the first [MsgHeaderLen] bytes of b.
func decodeMsgHeader(b []byte) (MsgHeader, error) {
	if len(b) < MsgHeaderLen {
		return MsgHeader{}, lazyerrors.Errorf("expected at least %d bytes, got %d", MsgHeaderLen, len(b))
	}

	h := MsgHeader{
		MessageLength: int32(binary.LittleEndian.Uint32(b[0:4])),
		RequestID:     int32(binary.LittleEndian.Uint32(b[4:8])),
		ResponseTo:    int32(binary.LittleEndian.Uint32(b[8:12])),
		OpCode:        OpCode(binary.LittleEndian.Uint32(b[12:16])),
	}

	if h.MessageLength < MsgHeaderLen || h.MessageLength > MaxMsgLen {
		return MsgHeader{}, lazyerrors.Errorf("invalid message length %d", h.MessageLength)
	}

	if err := checkOpCode(h.OpCode); err != nil {
		return MsgHeader{}, err
	}

	return h, nil
}

// MarshalBinary writes h as 16 little-endian bytes.
func (h MsgHeader) MarshalBinary() ([]byte, error) {
	b := make([]byte, MsgHeaderLen)

	binary.LittleEndian.PutUint32(b[0:4], uint32(h.MessageLength))
	binary.LittleEndian.PutUint32(b[4:8], uint32(h.RequestID))
	binary.LittleEndian.PutUint32(b[8:12], uint32(h.ResponseTo))
	binary.LittleEndian.PutUint32(b[12:16], uint32(h.OpCode))

	return b, nil
}

// String returns a one-line representation for logging.
func (h MsgHeader) String() string {
	return fmt.Sprintf(
		"length: %5d, id: %4d, response_to: %4d, opcode: %s",
		h.MessageLength, h.RequestID, h.ResponseTo, h.OpCode,
	)
}

// check interfaces
var (
	_ fmt.Stringer = OpCode(0)
	_ fmt.Stringer = MsgHeader{}
)
