package stac

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionForeignMembers(t *testing.T) {
	t.Run("unmarshal preserves foreign members", func(t *testing.T) {
		jsonData := `{
			"type": "Collection",
			"stac_version": "1.0.0",
			"id": "test-collection",
			"description": "Test collection",
			"license": "MIT",
			"extent": {"spatial": {"bbox": [[-180, -90, 180, 90]]}, "temporal": {"interval": [["2020-01-01T00:00:00Z", null]]}},
			"links": [],
			"custom_extension": {"enabled": true}
		}`

		var col Collection
		err := json.Unmarshal([]byte(jsonData), &col)
		require.NoError(t, err)

		assert.Equal(t, "test-collection", col.Id)
		assert.Contains(t, col.AdditionalFields, "custom_extension")
		ce := col.AdditionalFields["custom_extension"].(map[string]any)
		assert.Equal(t, true, ce["enabled"])
	})

	t.Run("marshal includes foreign members", func(t *testing.T) {
		col := Collection{
			Type:        CollectionType,
			Version:     "1.0.0",
			Id:          "test-collection",
			Description: "Test",
			License:     "MIT",
			Extent:      &Extent{},
			Links:       []*Link{},
			AdditionalFields: map[string]any{
				"custom_extension": map[string]any{"enabled": true},
			},
		}

		data, err := json.Marshal(col)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Contains(t, decoded, "custom_extension")
	})

	t.Run("marshal always emits the type discriminator", func(t *testing.T) {
		col := Collection{Version: "1.0.0", Id: "x", Description: "d", License: "MIT"}

		data, err := json.Marshal(col)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, CollectionType, decoded["type"])
	})

	t.Run("unmarshal rejects a mismatched type discriminator", func(t *testing.T) {
		var col Collection
		err := json.Unmarshal([]byte(`{"type": "Feature", "id": "x"}`), &col)
		assert.Error(t, err)
	})

	t.Run("present-but-empty members survive a round trip", func(t *testing.T) {
		col := Collection{
			Version:     "1.0.0",
			Id:          "x",
			Description: "d",
			License:     "MIT",
			Summaries:   map[string]any{},
			Assets:      map[string]*Asset{},
			Keywords:    []string{},
		}

		data, err := json.Marshal(col)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Contains(t, decoded, "summaries")
		assert.Contains(t, decoded, "assets")
		assert.Contains(t, decoded, "keywords")
	})
}

func TestItemAssetForeignMembers(t *testing.T) {
	t.Run("eo:bands is typed, other extensions are foreign", func(t *testing.T) {
		jsonData := `{
			"type": "image/tiff; application=geotiff",
			"title": "Red band",
			"eo:bands": [{"name": "B04", "common_name": "red", "center_wavelength": 0.665}],
			"raster:bands": [{"data_type": "uint16"}]
		}`

		var asset ItemAsset
		err := json.Unmarshal([]byte(jsonData), &asset)
		require.NoError(t, err)

		require.Len(t, asset.Bands, 1)
		assert.Equal(t, "B04", asset.Bands[0].Name)
		assert.Equal(t, "red", asset.Bands[0].CommonName)
		assert.InDelta(t, 0.665, asset.Bands[0].CenterWavelength, 1e-9)

		assert.NotContains(t, asset.AdditionalFields, "eo:bands")
		assert.Contains(t, asset.AdditionalFields, "raster:bands")
	})

	t.Run("marshal includes foreign members", func(t *testing.T) {
		asset := ItemAsset{
			Type:             "image/tiff; application=geotiff",
			Bands:            []*Band{{Name: "B04"}},
			AdditionalFields: map[string]any{"proj:epsg": 4326},
		}

		data, err := json.Marshal(asset)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Contains(t, decoded, "eo:bands")
		assert.Equal(t, float64(4326), decoded["proj:epsg"])
	})
}

func TestLinkForeignMembers(t *testing.T) {
	t.Run("unmarshal preserves foreign members", func(t *testing.T) {
		jsonData := `{
			"href": "https://example.com",
			"rel": "self",
			"method": "POST"
		}`

		var link Link
		err := json.Unmarshal([]byte(jsonData), &link)
		require.NoError(t, err)

		assert.Equal(t, "https://example.com", link.Href)
		assert.Equal(t, "self", link.Rel)
		assert.Equal(t, "POST", link.AdditionalFields["method"])
	})

	t.Run("marshal includes foreign members", func(t *testing.T) {
		link := Link{
			Href:             "https://example.com",
			Rel:              "next",
			AdditionalFields: map[string]any{"method": "POST"},
		}

		data, err := json.Marshal(link)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "POST", decoded["method"])
	})
}

func TestCollectionLinkLookup(t *testing.T) {
	col := &Collection{
		Links: []*Link{
			{Href: "https://example.com/c", Rel: "self"},
			{Href: "https://example.com/items?page=2", Rel: "next"},
			{Href: "https://example.com/license-a", Rel: "license"},
			{Href: "https://example.com/license-b", Rel: "license"},
		},
	}

	require.NotNil(t, col.GetLink("self"))
	assert.Equal(t, "https://example.com/c", col.SelfHref())
	assert.Nil(t, col.GetLink("parent"))
	assert.Len(t, col.GetLinks("license"), 2)
}

func TestCollectionsList(t *testing.T) {
	doc := `{
		"collections": [
			{"type": "Collection", "stac_version": "1.0.0", "id": "a", "description": "d", "license": "MIT",
			 "extent": {"spatial": {"bbox": [[-180, -90, 180, 90]]}, "temporal": {"interval": [[null, null]]}}, "links": []},
			{"type": "Collection", "stac_version": "1.0.0", "id": "b", "description": "d", "license": "MIT",
			 "extent": {"spatial": {"bbox": [[-180, -90, 180, 90]]}, "temporal": {"interval": [[null, null]]}}, "links": []}
		],
		"links": [{"href": "https://example.com/collections?page=2", "rel": "next"}]
	}`

	var list CollectionsList
	require.NoError(t, json.Unmarshal([]byte(doc), &list))

	require.Len(t, list.Collections, 2)
	require.NotNil(t, list.Get("b"))
	assert.Equal(t, "b", list.Get("b").Id)
	assert.Nil(t, list.Get("missing"))
	require.NotNil(t, list.GetLink("next"))
}
