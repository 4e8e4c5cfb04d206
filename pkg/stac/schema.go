package stac

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/collection.json
var collectionSchemaJSON string

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

func collectionSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("collection.json", strings.NewReader(collectionSchemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schemaCompiled, schemaErr = compiler.Compile("collection.json")
	})
	return schemaCompiled, schemaErr
}

// ValidateSchema checks a raw JSON document against the embedded Collection
// schema, independently of the typed Parse path. The returned error is a
// *jsonschema.ValidationError when the document is valid JSON but does not
// conform, and a *ParseError when it is not JSON at all.
func ValidateSchema(data []byte) error {
	schema, err := collectionSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return &ParseError{Msg: "invalid JSON", Err: err}
	}
	return schema.Validate(doc)
}
