package model

// Product is a catalog listing. Listings come from two disjoint sources, the
// static seed catalog and seller submissions; ids are unique across both.
type Product struct {
	ID             uint64  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Image          string  `json:"image"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	SellerName     string  `json:"seller_name"`
	SellerPhone    string  `json:"seller_phone"`
	SellerTelegram string  `json:"seller_telegram"` // username without @
}

// SubmitProductRequest for a seller listing submission
type SubmitProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	// SellerTelegram overrides the shop profile contact for this listing.
	SellerTelegram string `json:"seller_telegram"`
}

type CatalogResponse struct {
	Items      []Product `json:"items"`
	Categories []string  `json:"categories,omitempty"`
}
