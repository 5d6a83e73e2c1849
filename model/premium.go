package model

import (
	"time"

	"github.com/bekzodm/minibazar/constant"
)

// PremiumRequest is a user-submitted claim of having paid for an additional
// listing package. It is created pending and moved to a terminal state by an
// admin decision.
type PremiumRequest struct {
	ID            string                 `json:"id"`
	UserID        string                 `json:"user_id"`
	UserName      string                 `json:"user_name"`
	SenderName    string                 `json:"sender_name"` // shop name
	ListingsCount int                    `json:"listings_count"`
	Amount        string                 `json:"amount"`
	CheckImage    string                 `json:"check_image,omitempty"`
	Date          time.Time              `json:"date"`
	Status        constant.RequestStatus `json:"status"`
}

// SubmitPremiumRequest for a paid listing package purchase claim
type SubmitPremiumRequest struct {
	ListingsCount int    `json:"listings_count" validate:"required,gt=0"`
	Amount        string `json:"amount" validate:"required"`
	CheckImage    string `json:"check_image"`
}

type PremiumPricingResponse struct {
	ListingPrice int `json:"listing_price"` // per 10-listing package
}

type PendingCountResponse struct {
	Pending int `json:"pending"`
}
