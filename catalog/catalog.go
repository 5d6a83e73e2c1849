// Package catalog holds the static seed listings shown before any seller has
// submitted products. Seed entries are read-only; deletion only ever touches
// seller-submitted listings.
package catalog

import "github.com/bekzodm/minibazar/model"

var seed = []model.Product{
	{
		ID:             1,
		Name:           "Apex Smart Watch",
		Price:          299,
		Category:       "Electronics",
		Image:          "/assets/products/apex-smart-watch.jpg",
		Description:    "Monitor your health and stay connected with the Apex Smart Watch. Features an always-on Retina display, ECG app, and fall detection.",
		SellerName:     "Tech Haven",
		SellerPhone:    "+998 90 123 45 67",
		SellerTelegram: "tech_haven_admin",
	},
	{
		ID:             2,
		Name:           "Sonic Pro Headphones",
		Price:          199,
		Category:       "Audio",
		Image:          "/assets/products/sonic-pro-headphones.jpg",
		Description:    "Immerse yourself in pure sound with Sonic Pro. Active noise cancellation, 30-hour battery life, and premium comfort for long listening sessions.",
		SellerName:     "Audio World",
		SellerPhone:    "+998 93 987 65 43",
		SellerTelegram: "audio_world_support",
	},
	{
		ID:             3,
		Name:           "Velocity Runner",
		Price:          120,
		Category:       "Footwear",
		Image:          "/assets/products/velocity-runner.jpg",
		Description:    "Built for speed and comfort. The Velocity Runner features responsive cushioning and a breathable mesh upper for your best run yet.",
		SellerName:     "Sport Style",
		SellerPhone:    "+998 99 111 22 33",
		SellerTelegram: "sport_style_shop",
	},
	{
		ID:             4,
		Name:           "Urban Commuter Pack",
		Price:          85,
		Category:       "Accessories",
		Image:          "/assets/products/urban-commuter-pack.jpg",
		Description:    "Sleek, durable, and water-resistant. The Urban Commuter Pack has a dedicated laptop sleeve and plenty of space for your daily essentials.",
		SellerName:     "Urban Gear",
		SellerPhone:    "+998 97 555 44 22",
		SellerTelegram: "urban_gear_manager",
	},
}

var categories = []string{"All", "Electronics", "Audio", "Footwear", "Accessories"}

// Products returns a copy of the seed catalog.
func Products() []model.Product {
	out := make([]model.Product, len(seed))
	copy(out, seed)
	return out
}

// Categories returns the category list, "All" first.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// MaxID returns the highest id used by the seed catalog. Seller listing ids
// are assigned above it.
func MaxID() uint64 {
	var max uint64
	for _, p := range seed {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}
