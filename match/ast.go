package match

import "example.com/lagoondb/mql/bsonval"

// MatchOperator identifies a per-field predicate operator (spec.md §4.5).
type MatchOperator string

// The set of operators the parser and evaluator registries recognize.
const (
	OpEQ         MatchOperator = "$eq"
	OpLT         MatchOperator = "$lt"
	OpLTE        MatchOperator = "$lte"
	OpGT         MatchOperator = "$gt"
	OpGTE        MatchOperator = "$gte"
	OpIN         MatchOperator = "$in"
	OpNIN        MatchOperator = "$nin"
	OpRegex      MatchOperator = "$regex"
	OpNear       MatchOperator = "$near"
	OpNearSphere MatchOperator = "$nearSphere"
	OpGeoNear    MatchOperator = "$geoNear"
)

// TreeOperator identifies a pathless logical combinator (spec.md §4.5).
type TreeOperator string

const (
	TreeAnd TreeOperator = "$and"
	TreeOr  TreeOperator = "$or"
	TreeNor TreeOperator = "$nor"
)

// Expression is the match AST: a tagged variant over PathMatch, Tree, and
// Not (spec.md §4.4 / §9 "Expression tree polymorphism"). It carries pure
// data — all behaviour lives in the evaluator, which dispatches on the
// concrete type via a type switch rather than a virtual method, so the AST
// stays inspectable and trivially comparable for tests.
type Expression interface {
	matchExpression()
}

// Predicate pairs an operator with its argument value, the unit evaluated
// against each leaf element an iterPath call yields.
type Predicate struct {
	Operator MatchOperator
	Argument bsonval.Value
}

// PathMatch applies a Predicate to every leaf element reached by walking
// Path from the document root (spec.md §4.6).
type PathMatch struct {
	Path      Path
	Predicate Predicate
}

func (PathMatch) matchExpression() {}

// Tree combines Children with a logical operator (spec.md §4.6).
type Tree struct {
	Operator TreeOperator
	Children []Expression
}

func (Tree) matchExpression() {}

// Not negates Inner. It is its own AST node (rather than a TreeOperator)
// because $not has no pathless form: it only ever wraps a field-level
// regex or operator document (spec.md §4.5).
type Not struct {
	Inner Expression
}

func (Not) matchExpression() {}

// Equal reports whether two Expressions are structurally equal. The AST has
// no behaviour beyond this (spec.md §4.4).
func Equal(a, b Expression) bool {
	switch a := a.(type) {
	case PathMatch:
		b, ok := b.(PathMatch)
		return ok && a.Path.Equal(b.Path) && a.Predicate.Operator == b.Predicate.Operator &&
			a.Predicate.Argument.Equal(b.Predicate.Argument)

	case Tree:
		b, ok := b.(Tree)
		if !ok || a.Operator != b.Operator || len(a.Children) != len(b.Children) {
			return false
		}

		for i, c := range a.Children {
			if !Equal(c, b.Children[i]) {
				return false
			}
		}

		return true

	case Not:
		b, ok := b.(Not)
		return ok && Equal(a.Inner, b.Inner)

	default:
		return false
	}
}
