package stac

import "encoding/json"

// Asset represents a collection-level STAC Asset with support for additional
// fields. Unlike ItemAsset it points at an actual file, so href is required.
type Asset struct {
	Href        string   `json:"href"`
	Type        string   `json:"type,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Roles       []string `json:"roles,omitempty"`

	// AdditionalFields holds foreign members from extensions.
	AdditionalFields map[string]any `json:"-"`
}

var knownAssetFields = map[string]bool{
	"href": true, "type": true, "title": true, "description": true,
	"roles": true,
}

// UnmarshalJSON implements custom unmarshaling to capture foreign members.
func (asset *Asset) UnmarshalJSON(data []byte) error {
	type assetAlias Asset
	var aux assetAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*asset = Asset(aux)

	extra, err := extraFields(data, knownAssetFields)
	if err != nil {
		return err
	}
	asset.AdditionalFields = extra

	return nil
}

// MarshalJSON implements custom marshaling to include foreign members.
func (asset Asset) MarshalJSON() ([]byte, error) {
	type assetAlias Asset
	aux := assetAlias(asset)

	data, err := json.Marshal(aux)
	if err != nil {
		return nil, err
	}

	return mergeExtra(data, asset.AdditionalFields)
}
