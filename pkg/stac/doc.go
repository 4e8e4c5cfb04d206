// Package stac models a SpatioTemporal Asset Catalog (STAC) Collection record
// (STAC core 1.0.0 plus the item-assets and eo extensions) as a typed,
// immutable data structure with strict parsing, exhaustive invariant
// validation, JSON Schema conformance checking, and canonical serialization.
//
// All operations are pure functions over in-memory data: there is no I/O, no
// retry surface, and independent goroutines may parse and validate documents
// concurrently without coordination.
//
// Foreign members (JSON fields not defined by the STAC spec or the targeted
// extensions) are preserved through unmarshal/marshal round trips in each
// type's AdditionalFields map:
//
//	col, err := stac.Parse(data)
//	if err != nil {
//	    // *stac.ParseError: malformed JSON or missing/mistyped required field
//	}
//	if violations := stac.Validate(col); len(violations) > 0 {
//	    // every broken invariant, collected in one pass
//	}
package stac
