package transport

import (
	"net/http"

	accountapp "github.com/bekzodm/minibazar/application/account"
	adminpanelapp "github.com/bekzodm/minibazar/application/adminpanel"
	checkoutapp "github.com/bekzodm/minibazar/application/checkout"
	listingapp "github.com/bekzodm/minibazar/application/listing"
	premiumapp "github.com/bekzodm/minibazar/application/premium"
	cartstore "github.com/bekzodm/minibazar/store/cart"
	langstore "github.com/bekzodm/minibazar/store/language"
	shopstore "github.com/bekzodm/minibazar/store/shop"
	wishliststore "github.com/bekzodm/minibazar/store/wishlist"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AccountApp    accountapp.AccountApp
	ListingApp    listingapp.ListingApp
	CheckoutApp   checkoutapp.CheckoutApp
	PremiumApp    premiumapp.PremiumApp
	AdminPanelApp adminpanelapp.AdminPanelApp

	ShopStore     *shopstore.Store
	CartStore     *cartstore.Store
	WishlistStore *wishliststore.Store
	LanguageStore *langstore.Store
}

func NewTransport(rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// account
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/me", rh.Me).Methods(http.MethodGet)

	// catalog and listings
	mux.HandleFunc("/catalog", rh.Catalog).Methods(http.MethodGet)
	mux.HandleFunc("/my-catalog", rh.SellerCatalog).Methods(http.MethodGet)
	mux.HandleFunc("/products", rh.SubmitProduct).Methods(http.MethodPost)
	mux.HandleFunc("/products/{id}", rh.DeleteProduct).Methods(http.MethodDelete)

	// shop profile
	mux.HandleFunc("/shop", rh.ShopProfile).Methods(http.MethodGet)
	mux.HandleFunc("/shop", rh.UpdateShopProfile).Methods(http.MethodPatch)

	// cart and checkout
	mux.HandleFunc("/cart", rh.Cart).Methods(http.MethodGet)
	mux.HandleFunc("/cart", rh.AddToCart).Methods(http.MethodPost)
	mux.HandleFunc("/cart", rh.ClearCart).Methods(http.MethodDelete)
	mux.HandleFunc("/cart/{id}/increment", rh.IncrementQuantity).Methods(http.MethodPost)
	mux.HandleFunc("/cart/{id}/decrement", rh.DecrementQuantity).Methods(http.MethodPost)
	mux.HandleFunc("/cart/{id}", rh.RemoveFromCart).Methods(http.MethodDelete)
	mux.HandleFunc("/checkout", rh.Checkout).Methods(http.MethodPost)

	// wishlist
	mux.HandleFunc("/wishlist", rh.Wishlist).Methods(http.MethodGet)
	mux.HandleFunc("/wishlist/toggle", rh.ToggleWishlist).Methods(http.MethodPost)

	// language
	mux.HandleFunc("/language", rh.Language).Methods(http.MethodGet)
	mux.HandleFunc("/language", rh.SetLanguage).Methods(http.MethodPut)
	mux.HandleFunc("/translate", rh.Translate).Methods(http.MethodGet)

	// premium
	mux.HandleFunc("/premium", rh.SubmitPremium).Methods(http.MethodPost)
	mux.HandleFunc("/premium/pricing", rh.PremiumPricing).Methods(http.MethodGet)

	// admin panel
	mux.HandleFunc("/admin/login", rh.AdminLogin).Methods(http.MethodPost)
	mux.HandleFunc("/admin/requests", rh.AdminRequests).Methods(http.MethodGet)
	mux.HandleFunc("/admin/requests/pending-count", rh.AdminPendingCount).Methods(http.MethodGet)
	mux.HandleFunc("/admin/requests/{id}/approve", rh.AdminApprove).Methods(http.MethodPost)
	mux.HandleFunc("/admin/requests/{id}/reject", rh.AdminReject).Methods(http.MethodPost)
	mux.HandleFunc("/admin/config", rh.AdminConfig).Methods(http.MethodGet)
	mux.HandleFunc("/admin/security", rh.AdminSecurity).Methods(http.MethodGet)
	mux.HandleFunc("/admin/pin", rh.AdminSetPin).Methods(http.MethodPut)
	mux.HandleFunc("/admin/card", rh.AdminSetCard).Methods(http.MethodPut)
	mux.HandleFunc("/admin/bot", rh.AdminSetBot).Methods(http.MethodPut)
	mux.HandleFunc("/admin/listing-price", rh.AdminSetListingPrice).Methods(http.MethodPut)
	mux.HandleFunc("/admin/telegram", rh.AdminSetTelegram).Methods(http.MethodPut)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AdminMiddleware(rh.AdminPanelApp))

	return mux
}
