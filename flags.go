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
)

// FlagBits are the bits of an OP_MSG's uint32 flag word.
//
// The reference implementation this package tracks decodes the word as two
// separate 16-bit halves (low half: checksumPresent/moreToCome, high half:
// exhaustAllowed and friends). That split has no wire-format justification —
// all three bits live in one 32-bit field — so this package decodes it as a
// single word and masks the three documented bit positions directly.
type FlagBits struct {
	ChecksumPresent bool
	MoreToCome      bool
	ExhaustAllowed  bool
}

const (
	flagChecksumPresent uint32 = 1 << 0
	flagMoreToCome      uint32 = 1 << 1
	flagExhaustAllowed  uint32 = 1 << 16
)

// decodeFlagBits decodes the first 4 bytes of b as a FlagBits word; any
// bytes after those 4 are ignored.
func decodeFlagBits(b []byte) (FlagBits, error) {
	if len(b) < 4 {
		return FlagBits{}, fmt.Errorf("expected at least 4 bytes for flag bits, got %d", len(b))
	}

	word := binary.LittleEndian.Uint32(b[0:4])

	return FlagBits{
		ChecksumPresent: word&flagChecksumPresent != 0,
		MoreToCome:      word&flagMoreToCome != 0,
		ExhaustAllowed:  word&flagExhaustAllowed != 0,
	}, nil
}

// encode packs f back into a uint32 flag word.
func (f FlagBits) encode() uint32 {
	var word uint32

	if f.ChecksumPresent {
		word |= flagChecksumPresent
	}

	if f.MoreToCome {
		word |= flagMoreToCome
	}

	if f.ExhaustAllowed {
		word |= flagExhaustAllowed
	}

	return word
}

// String returns a short representation for logging.
func (f FlagBits) String() string {
	return fmt.Sprintf(
		"{checksumPresent: %t, moreToCome: %t, exhaustAllowed: %t}",
		f.ChecksumPresent, f.MoreToCome, f.ExhaustAllowed,
	)
}
