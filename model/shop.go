package model

// ShopProfile is the seller storefront identity plus listing quota usage.
// ListingsUsed is compared against ListingsLimit by callers; the store never
// clamps it.
type ShopProfile struct {
	ShopName      string `json:"shop_name"`
	Description   string `json:"description"`
	Phone         string `json:"phone"`
	ListingsUsed  int    `json:"listings_used"`
	ListingsLimit int    `json:"listings_limit"`
}

// ShopPatch is a partial profile update; nil fields are left untouched.
type ShopPatch struct {
	ShopName    *string `json:"shop_name,omitempty"`
	Description *string `json:"description,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}
