package constant

// Storage namespace per store. Each namespace holds one serialized snapshot
// of that store's state and nothing else.
const (
	NamespaceUser     = "user-storage"
	NamespaceShop     = "shop-storage"
	NamespaceProduct  = "product-storage"
	NamespaceCart     = "cart-storage"
	NamespaceWishlist = "wishlist-storage"
	NamespaceAdmin    = "admin-storage"
	NamespaceLanguage = "language-storage"
)
