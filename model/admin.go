package model

import "time"

// AdminCard is the payout card shown on the premium purchase screen.
type AdminCard struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Bank   string `json:"bank"`
}

// BotConfig points order and premium notifications at a Telegram bot.
type BotConfig struct {
	Username string `json:"username"`
	Token    string `json:"token"`
	ChatID   string `json:"chat_id"`
}

// AdminConfig is the single process-wide admin configuration document.
// PinHash replaces the raw PIN at rest; compare with bcrypt.
type AdminConfig struct {
	Card          AdminCard `json:"card"`
	Bot           BotConfig `json:"bot"`
	ListingPrice  int       `json:"listing_price"` // per 10-listing package
	AdminTelegram string    `json:"admin_telegram"`
	PinHash       string    `json:"pin_hash"`
}

// AdminSecurity is the failed-login counter and lockout deadline. Passing the
// deadline does not self-clear; a caller must reset explicitly.
type AdminSecurity struct {
	FailedAttempts int        `json:"failed_attempts"`
	LockoutUntil   *time.Time `json:"lockout_until,omitempty"`
}

// AdminCardPatch partial-updates the payout card; nil fields keep their value.
type AdminCardPatch struct {
	Number *string `json:"number,omitempty"`
	Holder *string `json:"holder,omitempty"`
	Bank   *string `json:"bank,omitempty"`
}

// BotConfigPatch partial-updates the bot configuration.
type BotConfigPatch struct {
	Username *string `json:"username,omitempty"`
	Token    *string `json:"token,omitempty"`
	ChatID   *string `json:"chat_id,omitempty"`
}

// AdminLoginRequest for PIN login to the admin panel
type AdminLoginRequest struct {
	Pin string `json:"pin" validate:"required"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type SetPinRequest struct {
	Pin string `json:"pin" validate:"required"`
}

type SetListingPriceRequest struct {
	Price int `json:"price" validate:"gt=0"`
}

type SetAdminTelegramRequest struct {
	Handle string `json:"handle" validate:"required"`
}
