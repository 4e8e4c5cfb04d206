package stac

import (
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/semver/v3"
)

// BandStrictness controls how the Validator treats item assets without
// eo:bands when the eo extension is declared. The published AgERA5 record is
// itself inconsistent on this point, so the choice is left to the caller.
type BandStrictness int

const (
	// BandsOptional accepts item assets without eo:bands even when the eo
	// extension is declared.
	BandsOptional BandStrictness = iota
	// BandsRequired flags every item asset lacking eo:bands when the eo
	// extension is declared.
	BandsRequired
)

// ViolationCode identifies a class of invariant violation.
type ViolationCode string

const (
	CodeEmptyID         ViolationCode = "empty-id"
	CodeBadVersion      ViolationCode = "bad-stac-version"
	CodeMissingSpatial  ViolationCode = "missing-spatial-extent"
	CodeMissingTemporal ViolationCode = "missing-temporal-extent"
	CodeBboxLength      ViolationCode = "bbox-length"
	CodeBboxOrder       ViolationCode = "bbox-order"
	CodeBboxRange       ViolationCode = "bbox-range"
	CodeIntervalLength  ViolationCode = "interval-length"
	CodeIntervalFormat  ViolationCode = "interval-format"
	CodeIntervalOrder   ViolationCode = "interval-order"
	CodeUndeclaredBands ViolationCode = "undeclared-eo-bands"
	CodeMissingBands    ViolationCode = "missing-eo-bands"
	CodeDuplicateBand   ViolationCode = "duplicate-band-name"
)

// Violation reports one broken domain invariant in an otherwise well-formed
// Collection.
type Violation struct {
	Code    ViolationCode `json:"code"`
	Path    string        `json:"path"`
	Message string        `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s [%s]", v.Path, v.Message, v.Code)
}

// Validator checks the cross-field invariants of a Collection. The zero value
// is ready to use with default strictness.
type Validator struct {
	BandStrictness BandStrictness
}

// Validate checks col with a default Validator.
func Validate(col *Collection) []Violation {
	return (&Validator{}).Validate(col)
}

// Validate checks every domain invariant and returns the full violation set;
// an empty result means the collection is valid. Unlike Parse it never stops
// at the first defect, and structurally legal but semantically odd data (an
// empty keywords list, an empty summaries map) is never a violation.
func (val *Validator) Validate(col *Collection) []Violation {
	var out []Violation

	if col.Id == "" {
		out = append(out, Violation{CodeEmptyID, "id", "id must not be empty"})
	}

	if _, err := semver.NewVersion(col.Version); err != nil {
		out = append(out, Violation{
			CodeBadVersion, "stac_version",
			fmt.Sprintf("%q is not a semantic version", col.Version),
		})
	}

	out = append(out, val.validateExtent(col.Extent)...)
	out = append(out, val.validateItemAssets(col)...)

	return out
}

func (val *Validator) validateExtent(extent *Extent) []Violation {
	var out []Violation
	if extent == nil {
		return []Violation{
			{CodeMissingSpatial, "extent.spatial", "spatial extent is required"},
			{CodeMissingTemporal, "extent.temporal", "temporal extent is required"},
		}
	}

	if extent.Spatial == nil || len(extent.Spatial.Bbox) == 0 {
		out = append(out, Violation{CodeMissingSpatial, "extent.spatial.bbox", "at least one bbox is required"})
	} else {
		for i, box := range extent.Spatial.Bbox {
			out = append(out, validateBbox(fmt.Sprintf("extent.spatial.bbox[%d]", i), box)...)
		}
	}

	if extent.Temporal == nil || len(extent.Temporal.Interval) == 0 {
		out = append(out, Violation{CodeMissingTemporal, "extent.temporal.interval", "at least one interval is required"})
	} else {
		for i, interval := range extent.Temporal.Interval {
			out = append(out, validateInterval(fmt.Sprintf("extent.temporal.interval[%d]", i), interval)...)
		}
	}

	return out
}

func validateBbox(path string, box []float64) []Violation {
	if len(box) != 4 && len(box) != 6 {
		return []Violation{{
			CodeBboxLength, path,
			fmt.Sprintf("bbox must have 4 or 6 elements, got %d", len(box)),
		}}
	}

	west, south := box[0], box[1]
	east, north := box[2], box[3]
	if len(box) == 6 {
		east, north = box[3], box[4]
	}

	var out []Violation
	if west > east {
		out = append(out, Violation{
			CodeBboxOrder, path,
			fmt.Sprintf("west (%v) must not exceed east (%v)", west, east),
		})
	}
	if south > north {
		out = append(out, Violation{
			CodeBboxOrder, path,
			fmt.Sprintf("south (%v) must not exceed north (%v)", south, north),
		})
	}
	if west < -180 || west > 180 || east < -180 || east > 180 {
		out = append(out, Violation{CodeBboxRange, path, "longitudes must be within [-180, 180]"})
	}
	if south < -90 || south > 90 || north < -90 || north > 90 {
		out = append(out, Violation{CodeBboxRange, path, "latitudes must be within [-90, 90]"})
	}
	return out
}

func validateInterval(path string, interval []*string) []Violation {
	if len(interval) != 2 {
		return []Violation{{
			CodeIntervalLength, path,
			fmt.Sprintf("interval must have exactly 2 elements, got %d", len(interval)),
		}}
	}

	var out []Violation
	bounds := make([]*time.Time, 2)
	for i, raw := range interval {
		if raw == nil {
			continue
		}
		ts, err := time.Parse(time.RFC3339, *raw)
		if err != nil {
			out = append(out, Violation{
				CodeIntervalFormat, path,
				fmt.Sprintf("%q is not an RFC 3339 timestamp", *raw),
			})
			continue
		}
		bounds[i] = &ts
	}

	if bounds[0] != nil && bounds[1] != nil && bounds[0].After(*bounds[1]) {
		out = append(out, Violation{
			CodeIntervalOrder, path,
			fmt.Sprintf("start (%s) must not be after end (%s)", *interval[0], *interval[1]),
		})
	}
	return out
}

func (val *Validator) validateItemAssets(col *Collection) []Violation {
	if len(col.ItemAssets) == 0 {
		return nil
	}

	keys := make([]string, 0, len(col.ItemAssets))
	for key := range col.ItemAssets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	eoDeclared := col.HasEOExtension()

	var out []Violation
	for _, key := range keys {
		asset := col.ItemAssets[key]
		path := "item_assets." + key

		if len(asset.Bands) > 0 && !eoDeclared {
			out = append(out, Violation{
				CodeUndeclaredBands, path + ".eo:bands",
				"eo:bands present but the eo extension is not declared in stac_extensions",
			})
		}
		if len(asset.Bands) == 0 && eoDeclared && val.BandStrictness == BandsRequired {
			out = append(out, Violation{
				CodeMissingBands, path,
				"eo extension declared but asset has no eo:bands",
			})
		}

		seen := make(map[string]bool, len(asset.Bands))
		for i, band := range asset.Bands {
			if seen[band.Name] {
				out = append(out, Violation{
					CodeDuplicateBand, fmt.Sprintf("%s.eo:bands[%d]", path, i),
					fmt.Sprintf("band name %q appears more than once", band.Name),
				})
			}
			seen[band.Name] = true
		}
	}
	return out
}
