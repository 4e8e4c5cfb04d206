package stac

// Band describes one electro-optical band per the eo extension. Name is the
// band's unique identifier within its asset.
type Band struct {
	Name             string  `json:"name"`
	CommonName       string  `json:"common_name,omitempty"`
	Description      string  `json:"description,omitempty"`
	CenterWavelength float64 `json:"center_wavelength,omitempty"`
	FullWidthHalfMax float64 `json:"full_width_half_max,omitempty"`
}
