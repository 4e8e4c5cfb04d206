package stac

import "encoding/json"

// Link represents a STAC Link with support for additional fields.
type Link struct {
	Href  string `json:"href"`
	Rel   string `json:"rel"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`

	// AdditionalFields holds foreign members (e.g., "method", "body" for POST links).
	AdditionalFields map[string]any `json:"-"`
}

var knownLinkFields = map[string]bool{
	"href": true, "rel": true, "type": true, "title": true,
}

// UnmarshalJSON implements custom unmarshaling to capture foreign members.
func (link *Link) UnmarshalJSON(data []byte) error {
	type linkAlias Link
	var aux linkAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*link = Link(aux)

	extra, err := extraFields(data, knownLinkFields)
	if err != nil {
		return err
	}
	link.AdditionalFields = extra

	return nil
}

// MarshalJSON implements custom marshaling to include foreign members.
func (link Link) MarshalJSON() ([]byte, error) {
	type linkAlias Link
	aux := linkAlias(link)

	data, err := json.Marshal(aux)
	if err != nil {
		return nil, err
	}

	return mergeExtra(data, link.AdditionalFields)
}

func linkByRel(links []*Link, rel string) *Link {
	for _, link := range links {
		if link.Rel == rel {
			return link
		}
	}
	return nil
}

func linksByRel(links []*Link, rel string) []*Link {
	var result []*Link
	for _, link := range links {
		if link.Rel == rel {
			result = append(result, link)
		}
	}
	return result
}
