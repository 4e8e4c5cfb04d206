package stac

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// requiredCollectionFields lists the members a Collection document must carry,
// with the JSON kind each must hold.
var requiredCollectionFields = []struct {
	name string
	kind string
}{
	{"type", "string"},
	{"id", "string"},
	{"stac_version", "string"},
	{"description", "string"},
	{"license", "string"},
	{"extent", "object"},
}

// Parse deserializes a raw STAC Collection document. It fails fast with a
// *ParseError when the input is not valid JSON, a required member is missing
// or mistyped, or the type discriminator is not "Collection". Duplicate keys
// inside a JSON object follow encoding/json semantics: the last occurrence
// wins.
//
// Parse only checks structure; use a Validator for the cross-field
// invariants.
func Parse(data []byte) (*Collection, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Msg: "invalid JSON", Err: err}
	}

	for _, field := range requiredCollectionFields {
		val, ok := raw[field.name]
		if !ok {
			return nil, &ParseError{Field: field.name, Msg: "required field missing"}
		}
		if !jsonKindMatches(val, field.kind) {
			return nil, &ParseError{Field: field.name, Msg: "expected JSON " + field.kind}
		}
	}

	var typ string
	if err := json.Unmarshal(raw["type"], &typ); err != nil {
		return nil, &ParseError{Field: "type", Msg: "expected JSON string", Err: err}
	}
	if typ != CollectionType {
		return nil, &ParseError{
			Field: "type",
			Msg:   fmt.Sprintf("expected %q, got %q", CollectionType, typ),
			Err:   ErrNotCollection,
		}
	}

	var col Collection
	if err := json.Unmarshal(data, &col); err != nil {
		return nil, &ParseError{Msg: "decoding collection", Err: err}
	}
	return &col, nil
}

func jsonKindMatches(raw json.RawMessage, kind string) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return false
	}
	switch kind {
	case "string":
		return trimmed[0] == '"'
	case "object":
		return trimmed[0] == '{'
	}
	return false
}
