package match

import (
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

func parse(t *testing.T, pairs ...any) Expression {
	t.Helper()

	expr, err := ParsePredicateTopLevel(mustDoc(t, pairs...))
	require.NoError(t, err)

	return expr
}

func TestImplicitEquality(t *testing.T) {
	expr := parse(t, "a", int32(1))
	assert.True(t, Matches(expr, mustDoc(t, "a", int32(1))))
	assert.False(t, Matches(expr, mustDoc(t, "a", int32(2))))
}

func TestComparisonOperators(t *testing.T) {
	expr := parse(t, "a", mustDoc(t, "$gt", int32(1), "$lte", int32(5)))
	assert.True(t, Matches(expr, mustDoc(t, "a", int32(3))))
	assert.False(t, Matches(expr, mustDoc(t, "a", int32(1))))
	assert.False(t, Matches(expr, mustDoc(t, "a", int32(6))))
}

func TestAndOrNorEmptyLists(t *testing.T) {
	and := Tree{Operator: TreeAnd}
	or := Tree{Operator: TreeOr}
	nor := Tree{Operator: TreeNor}

	doc := mustDoc(t)

	assert.True(t, Matches(and, doc), "empty $and matches everything")
	assert.False(t, Matches(or, doc), "empty $or matches nothing")
	assert.True(t, Matches(nor, doc), "empty $nor matches everything")
}

func TestNinIsNotIn(t *testing.T) {
	ninExpr := parse(t, "a", mustDoc(t, "$nin", bsonval.MustArrayFromSlice([]any{int32(1), int32(2)}...)))
	inExpr := parse(t, "a", mustDoc(t, "$in", bsonval.MustArrayFromSlice([]any{int32(1), int32(2)}...)))

	for _, v := range []int32{1, 2, 3, 4} {
		doc := mustDoc(t, "a", v)
		assert.Equal(t, !Matches(inExpr, doc), Matches(ninExpr, doc))
	}
}

func TestNinDesugarsToNotIn(t *testing.T) {
	expr := parse(t, "a", mustDoc(t, "$nin", bsonval.MustArrayFromSlice([]any{int32(1)}...)))

	not, ok := expr.(Not)
	require.True(t, ok)

	pm, ok := not.Inner.(PathMatch)
	require.True(t, ok)
	assert.Equal(t, OpIN, pm.Predicate.Operator)
}

func TestInRequiresArray(t *testing.T) {
	_, err := ParsePredicateTopLevel(mustDoc(t, "a", mustDoc(t, "$in", int32(1))))
	require.Error(t, err)
	assert.Equal(t, "$in/$nin requires array", err.Error())

	_, err = ParsePredicateTopLevel(mustDoc(t, "a", mustDoc(t, "$nin", int32(1))))
	require.Error(t, err)
	assert.Equal(t, "$in/$nin requires array", err.Error())
}

func TestNotRegexOrObject(t *testing.T) {
	_, err := ParsePredicateTopLevel(mustDoc(t, "a", mustDoc(t, "$not", int32(1))))
	require.Error(t, err)
	assert.Equal(t, "$not must take a regex or object", err.Error())
}

func TestDottedPathIntoNestedDocument(t *testing.T) {
	expr := parse(t, "a.b", int32(1))

	doc := mustDoc(t, "a", mustDoc(t, "b", int32(1)))
	assert.True(t, Matches(expr, doc))

	doc2 := mustDoc(t, "a", mustDoc(t, "b", int32(2)))
	assert.False(t, Matches(expr, doc2))
}

func TestPathThroughArrayOfDocuments(t *testing.T) {
	expr := parse(t, "a.b", int32(2))

	doc := mustDoc(t, "a", bsonval.MustArrayFromSlice([]any{
		map[string]any{"b": int32(1)},
		map[string]any{"b": int32(2)},
	}...))

	assert.True(t, Matches(expr, doc))
}

func TestArrayIndexPath(t *testing.T) {
	expr := parse(t, "a.0", int32(7))

	doc := mustDoc(t, "a", bsonval.MustArrayFromSlice([]any{int32(7), int32(8)}...))
	assert.True(t, Matches(expr, doc))

	doc2 := mustDoc(t, "a", bsonval.MustArrayFromSlice([]any{int32(8), int32(7)}...))
	assert.False(t, Matches(expr, doc2))
}

func TestMissingFieldNeverYieldsEOOLeaf(t *testing.T) {
	root := bsonval.NewElement("", bsonval.DocumentValue(mustDoc(t, "a", int32(1))))
	leaves := iterPath(NewPath("missing"), root)

	for _, l := range leaves {
		assert.False(t, l.Value.IsMissing())
	}

	assert.Empty(t, leaves)
}

func TestDBRefNotTreatedAsOperatorDocument(t *testing.T) {
	expr := parse(t, "ref", mustDoc(t, "$ref", "coll", "$id", int32(1)))

	// A DBRef-shaped document is an ordinary equality argument, not an
	// operator sub-document: it parses to a single implicit-equality
	// PathMatch rather than being exploded per "$ref"/"$id" field.
	pm, ok := expr.(PathMatch)
	require.True(t, ok)
	assert.Equal(t, OpEQ, pm.Predicate.Operator)
	assert.Equal(t, "ref", pm.Path.String())
}

func TestTopLevelLogicalRequiresArray(t *testing.T) {
	_, err := ParsePredicateTopLevel(mustDoc(t, "$and", int32(1)))
	require.Error(t, err)
	assert.Equal(t, "Top Level Logical Expression Must Take An Array", err.Error())
}

func TestTopLevelLogicalArrayElementMustBeDocument(t *testing.T) {
	_, err := ParsePredicateTopLevel(mustDoc(t, "$or", bsonval.MustArrayFromSlice([]any{int32(1)}...)))
	require.Error(t, err)
	assert.Equal(t, "Top Level Logical Array Element Must Be Document", err.Error())
}

func TestUnknownOperator(t *testing.T) {
	_, err := ParsePredicateTopLevel(mustDoc(t, "a", mustDoc(t, "$bogus", int32(1))))
	require.Error(t, err)
	assert.Equal(t, "Operator $bogus is not defined", err.Error())
}

func TestGeoOperatorsStubbed(t *testing.T) {
	_, err := ParsePredicateTopLevel(mustDoc(t, "loc", mustDoc(t, "$near", mustDoc(t, "x", int32(1)))))
	require.Error(t, err)
	assert.Equal(t, "geo is not yet implemented", err.Error())
}

func TestCompareEqualAST(t *testing.T) {
	a := parse(t, "a", int32(1))
	b := parse(t, "a", int32(1))
	c := parse(t, "a", int32(2))

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c), "Equal must compare the predicate argument, not just operator/path shape")
}
