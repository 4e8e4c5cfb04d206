package stac

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CollectionType is the STAC type discriminator for Collections (always "Collection").
const CollectionType = "Collection"

// Extension schema URIs declared by collections this module targets.
const (
	ExtensionItemAssets = "https://stac-extensions.github.io/item-assets/v1.0.0/schema.json"
	ExtensionEO         = "https://stac-extensions.github.io/eo/v1.1.0/schema.json"

	eoExtensionPrefix = "https://stac-extensions.github.io/eo/"
)

// Collection represents a STAC Collection record with support for foreign
// members. A Collection is read-only reference data from the perspective of
// any consuming system: maintainers publish a replacement rather than
// mutating a record in place, and Id is the immutable catalog key.
type Collection struct {
	Type        string                `json:"type"`
	Version     string                `json:"stac_version"`
	Extensions  []string              `json:"stac_extensions,omitempty"`
	Id          string                `json:"id"`
	Title       string                `json:"title,omitempty"`
	Description string                `json:"description"`
	Keywords    []string              `json:"keywords,omitempty"`
	License     string                `json:"license"`
	Providers   []*Provider           `json:"providers,omitempty"`
	Extent      *Extent               `json:"extent"`
	Summaries   map[string]any        `json:"summaries,omitempty"`
	Links       []*Link               `json:"links"`
	Assets      map[string]*Asset     `json:"assets,omitempty"`
	ItemAssets  map[string]*ItemAsset `json:"item_assets,omitempty"`

	// AdditionalFields holds foreign members not defined in the STAC spec.
	AdditionalFields map[string]any `json:"-"`
}

var knownCollectionFields = map[string]bool{
	"type": true, "stac_version": true, "stac_extensions": true,
	"id": true, "title": true, "description": true, "keywords": true,
	"license": true, "providers": true, "extent": true, "summaries": true,
	"links": true, "assets": true, "item_assets": true,
}

// UnmarshalJSON implements custom unmarshaling to capture foreign members.
func (col *Collection) UnmarshalJSON(data []byte) error {
	type collectionAlias Collection
	var aux collectionAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*col = Collection(aux)

	if col.Type != "" && col.Type != CollectionType {
		return fmt.Errorf("invalid collection type: expected %q, got %q", CollectionType, col.Type)
	}

	extra, err := extraFields(data, knownCollectionFields)
	if err != nil {
		return err
	}
	col.AdditionalFields = extra

	return nil
}

// MarshalJSON implements custom marshaling to include foreign members.
// The type field is always emitted as "Collection" per the STAC spec, and
// present-but-empty members survive the omitempty tags so that
// Parse(Serialize(col)) round-trips exactly.
func (col Collection) MarshalJSON() ([]byte, error) {
	type collectionAlias Collection
	aux := collectionAlias(col)
	aux.Type = CollectionType

	data, err := json.Marshal(aux)
	if err != nil {
		return nil, err
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}

	emptyMembers := []struct {
		key     string
		present bool
		raw     string
	}{
		{"stac_extensions", col.Extensions != nil && len(col.Extensions) == 0, "[]"},
		{"keywords", col.Keywords != nil && len(col.Keywords) == 0, "[]"},
		{"providers", col.Providers != nil && len(col.Providers) == 0, "[]"},
		{"summaries", col.Summaries != nil && len(col.Summaries) == 0, "{}"},
		{"assets", col.Assets != nil && len(col.Assets) == 0, "{}"},
		{"item_assets", col.ItemAssets != nil && len(col.ItemAssets) == 0, "{}"},
	}
	for _, member := range emptyMembers {
		if member.present {
			obj[member.key] = json.RawMessage(member.raw)
		}
	}

	for key, val := range col.AdditionalFields {
		encoded, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		obj[key] = encoded
	}

	return json.Marshal(obj)
}

// GetLink returns the first link with the specified rel type, or nil if not found.
func (col *Collection) GetLink(rel string) *Link {
	return linkByRel(col.Links, rel)
}

// GetLinks returns all links with the specified rel type.
func (col *Collection) GetLinks(rel string) []*Link {
	return linksByRel(col.Links, rel)
}

// SelfHref returns the href of the collection's self link, or "" when absent.
func (col *Collection) SelfHref() string {
	if link := col.GetLink("self"); link != nil {
		return link.Href
	}
	return ""
}

// HasExtension reports whether the collection declares the exact extension
// schema URI.
func (col *Collection) HasExtension(uri string) bool {
	for _, ext := range col.Extensions {
		if ext == uri {
			return true
		}
	}
	return false
}

// HasEOExtension reports whether any version of the eo extension is declared.
func (col *Collection) HasEOExtension() bool {
	for _, ext := range col.Extensions {
		if strings.HasPrefix(ext, eoExtensionPrefix) {
			return true
		}
	}
	return false
}
