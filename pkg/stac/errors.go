package stac

import (
	"errors"
	"fmt"
)

// ErrNotCollection indicates a document whose type discriminator is not "Collection".
var ErrNotCollection = errors.New("stac: document is not a Collection")

// ParseError reports a structurally invalid Collection document: malformed
// JSON, or a required member that is missing or of the wrong type. Parsing
// fails fast, so a ParseError describes the first defect encountered.
type ParseError struct {
	// Field is the JSON member at fault, "" when the document as a whole is
	// unusable.
	Field string
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	msg := "stac: parse"
	if e.Field != "" {
		msg += " " + e.Field
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }
