package match

import (
	"errors"
	"fmt"
	"strings"

	"example.com/lagoondb/mql/bsonval"
)

// pathlessParser parses a top-level operator element (one whose field name
// starts with "$") into an Expression.
type pathlessParser func(bsonval.Element) (Expression, error)

// PathlessExpressions is the registry of pathless top-level operator
// parsers, keyed by operator name (spec.md §4.5: "Parser extensibility is
// table-driven"). Populated once at package init; never mutated afterward.
var PathlessExpressions = map[string]pathlessParser{
	string(TreeAnd): parseTopLevelLogical(TreeAnd),
	string(TreeOr):  parseTopLevelLogical(TreeOr),
	string(TreeNor): parseTopLevelLogical(TreeNor),
}

// fieldOperators is the registry of field-level operator keys recognized by
// parseSubField. $not is handled ahead of this table (it has no fixed
// argument shape) and $nin is handled when the lookup here fails (it
// desugars to Not($in)), so neither appears here.
var fieldOperators = map[string]MatchOperator{
	"$eq":         OpEQ,
	"$lt":         OpLT,
	"$lte":        OpLTE,
	"$gt":         OpGT,
	"$gte":        OpGTE,
	"$in":         OpIN,
	"$regex":      OpRegex,
	"$near":       OpNear,
	"$nearSphere": OpNearSphere,
	"$geoNear":    OpGeoNear,
}

// ParsePredicateTopLevel parses a query document into a match Expression
// (spec.md §4.5 entry point parsePredicateTopLevel).
func ParsePredicateTopLevel(doc *bsonval.Document) (Expression, error) {
	var children []Expression

	for e := range doc.All() {
		switch {
		case strings.HasPrefix(e.Name, "$"):
			parse, ok := PathlessExpressions[e.Name]
			if !ok {
				return nil, fmt.Errorf("unknown top level operator: %s", e.Name)
			}

			child, err := parse(e)
			if err != nil {
				return nil, err
			}

			children = append(children, child)

		case isExpressionDocument(e.Value):
			subChildren, err := parseDocumentTopLevel(e.Name, e.Value)
			if err != nil {
				return nil, err
			}

			children = append(children, subChildren...)

		case e.Value.Tag() == bsonval.TagRegex:
			child, err := parseRegexMatch(e.Name, e.Value)
			if err != nil {
				return nil, err
			}

			children = append(children, child)

		default:
			child, err := parseComparison(e.Name, e.Value, OpEQ)
			if err != nil {
				return nil, err
			}

			children = append(children, child)
		}
	}

	if len(children) == 1 {
		return children[0], nil
	}

	return Tree{Operator: TreeAnd, Children: children}, nil
}

// isExpressionDocument reports whether v is an operator sub-document: a
// non-empty Document whose first field starts with "$", excluding
// DBRef-shaped documents (spec.md §4.5).
func isExpressionDocument(v bsonval.Value) bool {
	if v.Tag() != bsonval.TagDocument {
		return false
	}

	doc := v.Raw().(*bsonval.Document)
	if doc.Len() == 0 {
		return false
	}

	if !strings.HasPrefix(doc.ElementAt(0).Name, "$") {
		return false
	}

	return !isDBRefDocument(doc)
}

// isDBRefDocument reports whether doc has the shape of a database reference:
// a "$ref" field together with an "$id" field (spec.md §4.5). Such a
// document is treated as an ordinary data value, never as an operator
// document, even though its first field starts with "$".
func isDBRefDocument(doc *bsonval.Document) bool {
	return doc.Has("$ref") && doc.Has("$id")
}

// isGeoExpr reports whether doc contains one of the geo operator keys.
func isGeoExpr(doc *bsonval.Document) bool {
	return doc.Has(string(OpNear)) || doc.Has(string(OpNearSphere)) || doc.Has(string(OpGeoNear))
}

// parseDocumentTopLevel parses a field's operator sub-document into one
// Expression per operator key (spec.md §4.5 parseDocumentTopLevel).
func parseDocumentTopLevel(fieldName string, v bsonval.Value) ([]Expression, error) {
	doc := v.Raw().(*bsonval.Document)

	if isGeoExpr(doc) {
		expr, err := parseGeo(fieldName, doc)
		if err != nil {
			return nil, err
		}

		return []Expression{expr}, nil
	}

	children := make([]Expression, 0, doc.Len())

	for field := range doc.All() {
		child, err := parseSubField(fieldName, field)
		if err != nil {
			return nil, err
		}

		children = append(children, child)
	}

	return children, nil
}

// parseSubField parses a single operator key / argument pair under
// fieldPath (spec.md §4.5 parseSubField).
func parseSubField(fieldPath string, field bsonval.Element) (Expression, error) {
	if field.Name == "$not" {
		return parseSubNot(fieldPath, field.Value)
	}

	op, ok := fieldOperators[field.Name]
	if !ok {
		if field.Name == "$nin" {
			if field.Value.Tag() != bsonval.TagArray {
				return nil, errors.New("$in/$nin requires array")
			}

			return Not{Inner: PathMatch{
				Path:      NewPath(fieldPath),
				Predicate: Predicate{Operator: OpIN, Argument: field.Value},
			}}, nil
		}

		return nil, fmt.Errorf("Operator %s is not defined", field.Name)
	}

	return parseComparison(fieldPath, field.Value, op)
}

// parseSubNot parses the argument of a field-level "$not" (spec.md §4.5):
// it must be a regex (becoming Not(regex-match)) or an operator document
// (becoming Not(AND of the nested operator parses)).
func parseSubNot(fieldPath string, v bsonval.Value) (Expression, error) {
	switch v.Tag() {
	case bsonval.TagRegex:
		return Not{Inner: PathMatch{
			Path:      NewPath(fieldPath),
			Predicate: Predicate{Operator: OpRegex, Argument: v},
		}}, nil

	case bsonval.TagDocument:
		doc := v.Raw().(*bsonval.Document)
		children := make([]Expression, 0, doc.Len())

		for field := range doc.All() {
			child, err := parseSubField(fieldPath, field)
			if err != nil {
				return nil, err
			}

			children = append(children, child)
		}

		return Not{Inner: Tree{Operator: TreeAnd, Children: children}}, nil

	default:
		return nil, errors.New("$not must take a regex or object")
	}
}

// parseRegexMatch rewrites a bare regex field value as {fieldName:
// {$regex: <regex>}} before dispatching it through parseSubField
// (spec.md §4.5).
func parseRegexMatch(fieldName string, v bsonval.Value) (Expression, error) {
	return parseSubField(fieldName, bsonval.NewElement("$regex", v))
}

// parseComparison builds a PathMatch for an implicit-equality or explicit
// operator comparison, rejecting a regex argument anywhere but equality
// (spec.md §4.5).
func parseComparison(fieldName string, v bsonval.Value, op MatchOperator) (Expression, error) {
	if op != OpEQ && v.Tag() == bsonval.TagRegex {
		return nil, errors.New("Regex can only appear in equality comparison")
	}

	if op == OpIN && v.Tag() != bsonval.TagArray {
		return nil, errors.New("$in/$nin requires array")
	}

	return PathMatch{
		Path:      NewPath(fieldName),
		Predicate: Predicate{Operator: op, Argument: v},
	}, nil
}

// parseTopLevelLogical builds the pathless parser for $and/$or/$nor: each
// must take an array of documents, each parsed as a nested query selector
// (spec.md §4.5).
func parseTopLevelLogical(op TreeOperator) pathlessParser {
	return func(e bsonval.Element) (Expression, error) {
		if e.Value.Tag() != bsonval.TagArray {
			return nil, errors.New("Top Level Logical Expression Must Take An Array")
		}

		arr := e.Value.Raw().(*bsonval.Array)
		children := make([]Expression, 0, arr.Len())

		for v := range arr.All() {
			if v.Tag() != bsonval.TagDocument {
				return nil, errors.New("Top Level Logical Array Element Must Be Document")
			}

			child, err := ParsePredicateTopLevel(v.Raw().(*bsonval.Document))
			if err != nil {
				return nil, err
			}

			children = append(children, child)
		}

		return Tree{Operator: op, Children: children}, nil
	}
}
