package stac

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRoundTripProperty checks the serialization law parse(serialize(c)) == c
// over generated collections rather than a fixed fixture set.
func TestRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("parse(serialize(c)) is deeply equal to c", prop.ForAll(
		func(id, title, keyword string, west, south, width, height float64) bool {
			col := &Collection{
				Type:        CollectionType,
				Version:     "1.0.0",
				Extensions:  []string{ExtensionItemAssets, ExtensionEO},
				Id:          id,
				Title:       title,
				Description: "generated collection",
				Keywords:    []string{keyword},
				License:     "proprietary",
				Extent: &Extent{
					Spatial: &SpatialExtent{
						Bbox: [][]float64{{west, south, west + width, south + height}},
					},
					Temporal: &TemporalExtent{
						Interval: [][]*string{{str("2020-01-01T00:00:00Z"), nil}},
					},
				},
				Links: []*Link{{
					Href:             "https://example.com/collections/" + id,
					Rel:              "self",
					Type:             "application/json",
					AdditionalFields: map[string]any{},
				}},
				ItemAssets: map[string]*ItemAsset{
					"data": {
						Type:             "image/tiff; application=geotiff",
						Bands:            []*Band{{Name: "b1"}},
						AdditionalFields: map[string]any{},
					},
				},
				AdditionalFields: map[string]any{},
			}

			data, err := Serialize(col)
			if err != nil {
				return false
			}
			parsed, err := Parse(data)
			if err != nil {
				return false
			}
			return reflect.DeepEqual(col, parsed)
		},
		gen.Identifier(),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.Float64Range(-180, 90),
		gen.Float64Range(-90, 45),
		gen.Float64Range(0, 90),
		gen.Float64Range(0, 45),
	))

	properties.TestingRun(t)
}
