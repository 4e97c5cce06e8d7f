package match

import (
	"errors"

	"example.com/lagoondb/mql/bsonval"
)

// parseGeo handles a geo-shaped operator sub-document ($near, $nearSphere,
// $geoNear). Geo query semantics are out of scope for this module
// (spec.md §9): parsing fails explicitly rather than silently accepting and
// then never matching, so a caller can tell "unimplemented" apart from "no
// geo index".
func parseGeo(_ string, _ *bsonval.Document) (Expression, error) {
	return nil, errors.New("geo is not yet implemented")
}
