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

// Package mqltest provides testing helpers shared across this module's
// packages.
package mqltest

import (
	"fmt"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/lagoondb/mql/bsonval"
)

// dump renders doc as Extended JSON for a failure message; require.NoError
// on the marshal error since a document that fails to dump is itself a bug
// worth surfacing loudly.
func dump(tb testing.TB, doc *bsonval.Document) string {
	tb.Helper()

	b, err := doc.MarshalJSON()
	require.NoError(tb, err)

	return string(b)
}

// diff returns a readable form of expected and actual and the diff between
// them.
func diff(tb testing.TB, expected, actual *bsonval.Document) (expectedS, actualS, d string) {
	tb.Helper()

	expectedS = dump(tb, expected)
	actualS = dump(tb, actual)

	var err error

	d, err = difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expectedS),
		FromFile: "expected",
		B:        difflib.SplitLines(actualS),
		ToFile:   "actual",
		Context:  1,
	})
	require.NoError(tb, err)

	return
}

// AssertEqualDocuments asserts that two documents are equal.
func AssertEqualDocuments(tb testing.TB, expected, actual *bsonval.Document) bool {
	tb.Helper()

	if expected.Equal(actual) {
		return true
	}

	expectedS, actualS, d := diff(tb, expected, actual)
	msg := fmt.Sprintf("Not equal:\n\nexpected:\n%s\n\nactual:\n%s\n\ndiff:\n%s", expectedS, actualS, d)

	return assert.Fail(tb, msg)
}
