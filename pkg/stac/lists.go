package stac

// CollectionsList represents a list of STAC Collections, e.g. the stored body
// of a catalog's /collections document.
type CollectionsList struct {
	Collections []*Collection `json:"collections"`
	Links       []*Link       `json:"links,omitempty"`
}

// Get returns the collection with the given id, or nil if not present.
func (list *CollectionsList) Get(id string) *Collection {
	for _, col := range list.Collections {
		if col.Id == id {
			return col
		}
	}
	return nil
}

// GetLink returns the first list-level link with the specified rel type, or
// nil if not found.
func (list *CollectionsList) GetLink(rel string) *Link {
	return linkByRel(list.Links, rel)
}
