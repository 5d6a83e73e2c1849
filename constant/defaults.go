package constant

import "time"

// Shop defaults applied when a shop profile is first created.
const (
	DefaultListingsLimit = 10
)

// Admin security parameters.
const (
	MaxFailedAttempts = 3
	LockoutDuration   = 24 * time.Hour
)

// Admin configuration defaults. The PIN default matches the mockup code the
// panel shipped with; operators replace it through the settings endpoint.
const (
	DefaultAdminPin      = "7777"
	DefaultListingPrice  = 10000 // price per 10-listing package, in so'm
	DefaultCardNumber    = "8600 1234 5678 9999"
	DefaultCardHolder    = "YANGIYER ADMIN"
	DefaultCardBank      = "Ipak Yuli Bank"
	DefaultBotUsername   = "yangiyer_bazar_bot"
	DefaultAdminTelegram = "yangiyer_admin"
)
