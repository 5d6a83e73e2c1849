package model

// CartItem is a product plus its quantity. At most one item exists per
// product id and a persisted quantity is always >= 1.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// CheckoutRequest carries buyer contact for the order message
type CheckoutRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,min=9"`
	Address string `json:"address"`
}

// CheckoutResponse returns the composed order message and the chat deep link
// the client opens. Delivery is one-way; no confirmation comes back.
type CheckoutResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}
