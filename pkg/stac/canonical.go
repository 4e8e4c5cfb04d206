package stac

import (
	"encoding/json"

	"github.com/gowebpki/jcs"
)

// Serialize encodes the collection back to JSON. Key order and whitespace may
// differ from the source document, but Parse(Serialize(col)) yields a value
// deeply equal to col for any valid collection.
func Serialize(col *Collection) ([]byte, error) {
	return json.Marshal(col)
}

// CanonicalJSON returns the RFC 8785 (JCS) canonical encoding of the
// collection. Two semantically equal records canonicalize to identical bytes
// regardless of key order in their source documents, which makes published
// records diffable when a replacement supersedes them.
func CanonicalJSON(col *Collection) ([]byte, error) {
	data, err := json.Marshal(col)
	if err != nil {
		return nil, err
	}
	return jcs.Transform(data)
}
