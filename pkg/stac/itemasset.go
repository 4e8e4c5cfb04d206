package stac

import "encoding/json"

// ItemAsset describes an asset that items of a collection are expected to
// carry, per the item-assets extension. It is a schema for item assets, not a
// pointer to a file, so there is no href. The eo:bands field is typed because
// this module targets the eo extension; other extension fields end up in
// AdditionalFields.
type ItemAsset struct {
	Type        string   `json:"type,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	Bands       []*Band  `json:"eo:bands,omitempty"`

	// AdditionalFields holds foreign members from other extensions.
	AdditionalFields map[string]any `json:"-"`
}

var knownItemAssetFields = map[string]bool{
	"type": true, "title": true, "description": true, "roles": true,
	"eo:bands": true,
}

// UnmarshalJSON implements custom unmarshaling to capture foreign members.
func (ia *ItemAsset) UnmarshalJSON(data []byte) error {
	type itemAssetAlias ItemAsset
	var aux itemAssetAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*ia = ItemAsset(aux)

	extra, err := extraFields(data, knownItemAssetFields)
	if err != nil {
		return err
	}
	ia.AdditionalFields = extra

	return nil
}

// MarshalJSON implements custom marshaling to include foreign members.
func (ia ItemAsset) MarshalJSON() ([]byte, error) {
	type itemAssetAlias ItemAsset
	aux := itemAssetAlias(ia)

	data, err := json.Marshal(aux)
	if err != nil {
		return nil, err
	}

	return mergeExtra(data, ia.AdditionalFields)
}

// BandNames returns the names of the asset's eo:bands in declaration order.
func (ia *ItemAsset) BandNames() []string {
	if len(ia.Bands) == 0 {
		return nil
	}
	names := make([]string, 0, len(ia.Bands))
	for _, band := range ia.Bands {
		names = append(names, band.Name)
	}
	return names
}
