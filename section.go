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
	"errors"
	"fmt"

	"example.com/lagoondb/mql/bsonproto"
	"example.com/lagoondb/mql/bsonval"
)

// SectionKind identifies the shape of an OP_MSG section.
type SectionKind byte

// The two recognized section kinds.
const (
	SectionKindBody             SectionKind = 0
	SectionKindDocumentSequence SectionKind = 1
)

// Section is one section of an OP_MSG body: either a single Body document
// (kind 0) or an identified, packed sequence of Documents (kind 1).
type Section struct {
	Kind       SectionKind
	Identifier string // only set for SectionKindDocumentSequence
	Documents  []*bsonval.Document
}

// checkSections enforces the at-most-one-Body invariant across a frame's
// sections.
func checkSections(sections []Section) error {
	bodies := 0

	for _, s := range sections {
		if s.Kind == SectionKindBody {
			bodies++
		}
	}

	if bodies > 1 {
		return errors.New("Multiple body sections in message")
	}

	return nil
}

// decodeSections parses the section region of an OP_MSG body out of b,
// consuming every byte (callers trim a trailing checksum from b first).
func decodeSections(b []byte) ([]Section, error) {
	var sections []Section

	pos := 0

	for pos < len(b) {
		kind := SectionKind(b[pos])

		switch kind {
		case SectionKindBody:
			doc, rest, err := bsonval.DecodeDocument(b[pos+1:])
			if err != nil {
				return nil, err
			}

			sections = append(sections, Section{Kind: SectionKindBody, Documents: []*bsonval.Document{doc}})
			pos = len(b) - len(rest)

		case SectionKindDocumentSequence:
			if len(b) < pos+5 {
				return nil, fmt.Errorf("document sequence section: expected at least 5 bytes, got %d", len(b)-pos)
			}

			totalSize := int(int32(binary.LittleEndian.Uint32(b[pos+1 : pos+5])))
			if totalSize < 5 || pos+1+totalSize > len(b) {
				return nil, fmt.Errorf("document sequence section: invalid total size %d", totalSize)
			}

			end := pos + 1 + totalSize

			identifier, err := bsonproto.DecodeCString(b[pos+5 : end])
			if err != nil {
				return nil, err
			}

			cur := pos + 5 + bsonproto.SizeCString(identifier)

			var docs []*bsonval.Document

			for cur < end {
				doc, rest, err := bsonval.DecodeDocument(b[cur:end])
				if err != nil {
					return nil, err
				}

				docs = append(docs, doc)
				cur = end - len(rest)
			}

			sections = append(sections, Section{Kind: SectionKindDocumentSequence, Identifier: identifier, Documents: docs})
			pos = end

		default:
			return nil, fmt.Errorf("Unknown section kind %d", kind)
		}

		if err := checkSections(sections); err != nil {
			return nil, err
		}
	}

	return sections, nil
}

// encodeSections is the inverse of decodeSections.
func encodeSections(sections []Section) ([]byte, error) {
	if err := checkSections(sections); err != nil {
		return nil, err
	}

	var b []byte

	for _, s := range sections {
		switch s.Kind {
		case SectionKindBody:
			raw, err := s.Documents[0].Encode()
			if err != nil {
				return nil, err
			}

			b = append(b, byte(SectionKindBody))
			b = append(b, raw...)

		case SectionKindDocumentSequence:
			var seq []byte

			idBuf := make([]byte, bsonproto.SizeCString(s.Identifier))
			bsonproto.EncodeCString(idBuf, s.Identifier)
			seq = append(seq, idBuf...)

			for _, doc := range s.Documents {
				raw, err := doc.Encode()
				if err != nil {
					return nil, err
				}

				seq = append(seq, raw...)
			}

			b = append(b, byte(SectionKindDocumentSequence))

			var size [4]byte
			binary.LittleEndian.PutUint32(size[:], uint32(len(seq)+4))
			b = append(b, size[:]...)
			b = append(b, seq...)

		default:
			return nil, fmt.Errorf("Unknown section kind %d", s.Kind)
		}
	}

	return b, nil
}
