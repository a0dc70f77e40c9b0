package domain

// CartLine is one customer selection as submitted by the storefront. The
// StatedPriceCents field is whatever the client displayed and is never used
// for anything; pricing always starts from the catalog.
type CartLine struct {
	ProductID        string `json:"productId"`
	ProductName      string `json:"productName,omitempty"`
	SizeName         string `json:"sizeName"`
	Quantity         int    `json:"quantity"`
	SecondFlavorID   string `json:"secondFlavorId,omitempty"`
	SecondFlavorName string `json:"secondFlavorName,omitempty"`
	Observation      string `json:"observation,omitempty"`
	StatedPriceCents int64  `json:"statedPriceCents,omitempty"`
}

// SameSelection reports whether two lines describe the identical selection
// and may be merged into one line with a combined quantity.
func (l CartLine) SameSelection(other CartLine) bool {
	return l.ProductID == other.ProductID &&
		l.SizeName == other.SizeName &&
		l.SecondFlavorID == other.SecondFlavorID &&
		l.Observation == other.Observation
}
