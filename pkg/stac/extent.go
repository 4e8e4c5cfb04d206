package stac

import (
	"time"

	"github.com/paulmach/orb"
)

// Extent represents the spatial and temporal extent of a STAC Collection.
type Extent struct {
	Spatial  *SpatialExtent  `json:"spatial,omitempty"`
	Temporal *TemporalExtent `json:"temporal,omitempty"`
}

// SpatialExtent represents the spatial extent of a STAC Collection. Each bbox
// is a [west, south, east, north] 4-tuple in degrees, or a 6-tuple with
// elevation bounds at indices 2 and 5.
type SpatialExtent struct {
	Bbox [][]float64 `json:"bbox"`
}

// Bounds converts each well-formed bbox into an orb.Bound. Boxes that are not
// 4 or 6 elements long are skipped; use a Validator to surface them.
func (s *SpatialExtent) Bounds() []orb.Bound {
	if s == nil {
		return nil
	}
	var bounds []orb.Bound
	for _, box := range s.Bbox {
		switch len(box) {
		case 4:
			bounds = append(bounds, orb.Bound{
				Min: orb.Point{box[0], box[1]},
				Max: orb.Point{box[2], box[3]},
			})
		case 6:
			bounds = append(bounds, orb.Bound{
				Min: orb.Point{box[0], box[1]},
				Max: orb.Point{box[3], box[4]},
			})
		}
	}
	return bounds
}

// TemporalExtent represents the temporal extent of a STAC Collection. Each
// interval is a [start, end] pair of RFC 3339 timestamps; a nil entry means
// the bound is open-ended.
type TemporalExtent struct {
	Interval [][]*string `json:"interval"`
}

// Start returns the parsed start of the first interval. The bool is false
// when the interval is absent, open-ended, or unparseable.
func (tx *TemporalExtent) Start() (time.Time, bool) {
	return tx.bound(0)
}

// End returns the parsed end of the first interval. The bool is false when
// the interval is absent, open-ended, or unparseable.
func (tx *TemporalExtent) End() (time.Time, bool) {
	return tx.bound(1)
}

func (tx *TemporalExtent) bound(idx int) (time.Time, bool) {
	if tx == nil || len(tx.Interval) == 0 || len(tx.Interval[0]) <= idx {
		return time.Time{}, false
	}
	raw := tx.Interval[0][idx]
	if raw == nil {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
