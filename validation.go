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
	"errors"
	"math"

	"example.com/lagoondb/mql/bsonval"
)

// validateNan returns an error if a float64 NaN is present anywhere in doc.
func validateNan(doc *bsonval.Document) error {
	for e := range doc.All() {
		if err := validateNanValue(e.Value); err != nil {
			return err
		}
	}

	return nil
}

func validateNanValue(v bsonval.Value) error {
	switch v.Tag() {
	case bsonval.TagDocument:
		return validateNan(v.Raw().(*bsonval.Document))

	case bsonval.TagArray:
		arr := v.Raw().(*bsonval.Array)
		for e := range arr.All() {
			if err := validateNanValue(e); err != nil {
				return err
			}
		}

	case bsonval.TagNumber:
		if n := v.Raw().(float64); math.IsNaN(n) {
			return errors.New("NaN is not supported")
		}
	}

	return nil
}

// checkNaN validates every document carried by a frame's sections when
// [CheckNaNs] is enabled.
func checkNaN(sections []Section) error {
	for _, s := range sections {
		for _, doc := range s.Documents {
			if err := validateNan(doc); err != nil {
				return err
			}
		}
	}

	return nil
}
