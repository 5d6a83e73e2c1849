package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	"github.com/bekzodm/minibazar/utils/errors"
	validatorx "github.com/bekzodm/minibazar/utils/validator"
	"github.com/gorilla/mux"
)

// Register handler
// @Summary Register visitor
// @Description Record the visitor identity and seed the shop profile name
// @Tags Account
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.AccountApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.AccountApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Log out
// @Description Reset the visitor identity
// @Tags Account
// @Produce json
// @Success 200 {object} Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.AccountApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	s.AccountApp.Logout(ctx)
	writeSuccess(w, nil)
}

// Me handler
// @Summary Current visitor
// @Tags Account
// @Produce json
// @Success 200 {object} model.User
// @Router /me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.AccountApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeSuccess(w, s.AccountApp.Current(ctx))
}

// Catalog handler
// @Summary Browse catalog
// @Description Seed catalog items and category list
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.CatalogResponse
// @Router /catalog [get]
func (s *RestHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.ListingApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeSuccess(w, s.ListingApp.Catalog(ctx))
}

// SellerCatalog handler
// @Summary Seller catalog
// @Description Seller submissions merged with the seed catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.CatalogResponse
// @Router /my-catalog [get]
func (s *RestHandler) SellerCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.ListingApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeSuccess(w, s.ListingApp.SellerCatalog(ctx))
}

// SubmitProduct handler
// @Summary Publish listing
// @Description Publish a seller listing, gated by the listing quota
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body model.SubmitProductRequest true "Submit Product Request"
// @Success 200 {object} model.Product
// @Failure 403 {object} errors.CustomError
// @Router /products [post]
func (s *RestHandler) SubmitProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SubmitProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.ListingApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.ListingApp.Submit(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete listing
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} Response
// @Router /products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.ListingApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	if err := s.ListingApp.Delete(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ShopProfile handler
// @Summary Shop profile
// @Tags Shop
// @Produce json
// @Success 200 {object} model.ShopProfile
// @Router /shop [get]
func (s *RestHandler) ShopProfile(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.ShopStore.Profile())
}

// UpdateShopProfile handler
// @Summary Update shop profile
// @Description Partial update; omitted fields keep their value
// @Tags Shop
// @Accept json
// @Produce json
// @Param request body model.ShopPatch true "Shop Patch"
// @Success 200 {object} model.ShopProfile
// @Router /shop [patch]
func (s *RestHandler) UpdateShopProfile(w http.ResponseWriter, r *http.Request) {
	var req model.ShopPatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	s.ShopStore.UpdateProfile(req)
	writeSuccess(w, s.ShopStore.Profile())
}

// Cart handler
// @Summary Cart contents
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartResponse
// @Router /cart [get]
func (s *RestHandler) Cart(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, model.CartResponse{
		Items: s.CartStore.Items(),
		Total: s.CartStore.Total(),
	})
}

// AddToCart handler
// @Summary Add to cart
// @Description Adding an already present product bumps its quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.Product true "Product"
// @Success 200 {object} model.CartResponse
// @Router /cart [post]
func (s *RestHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req model.Product
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	s.CartStore.AddToCart(req)
	writeSuccess(w, model.CartResponse{
		Items: s.CartStore.Items(),
		Total: s.CartStore.Total(),
	})
}

// IncrementQuantity handler
// @Summary Increment cart quantity
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.CartResponse
// @Router /cart/{id}/increment [post]
func (s *RestHandler) IncrementQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	s.CartStore.IncrementQuantity(id)
	writeSuccess(w, model.CartResponse{
		Items: s.CartStore.Items(),
		Total: s.CartStore.Total(),
	})
}

// DecrementQuantity handler
// @Summary Decrement cart quantity
// @Description Decrementing a quantity of one removes the item
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.CartResponse
// @Router /cart/{id}/decrement [post]
func (s *RestHandler) DecrementQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	s.CartStore.DecrementQuantity(id)
	writeSuccess(w, model.CartResponse{
		Items: s.CartStore.Items(),
		Total: s.CartStore.Total(),
	})
}

// RemoveFromCart handler
// @Summary Remove from cart
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.CartResponse
// @Router /cart/{id} [delete]
func (s *RestHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	s.CartStore.RemoveFromCart(id)
	writeSuccess(w, model.CartResponse{
		Items: s.CartStore.Items(),
		Total: s.CartStore.Total(),
	})
}

// ClearCart handler
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} Response
// @Router /cart [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	s.CartStore.ClearCart()
	writeSuccess(w, nil)
}

// Checkout handler
// @Summary Checkout
// @Description Compose the order message, notify the bot and clear the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.CheckoutRequest true "Checkout Request"
// @Success 200 {object} model.CheckoutResponse
// @Failure 400 {object} errors.CustomError
// @Router /checkout [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.CheckoutApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.CheckoutApp.Checkout(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Wishlist handler
// @Summary Wishlist contents
// @Tags Wishlist
// @Produce json
// @Success 200 {array} model.Product
// @Router /wishlist [get]
func (s *RestHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.WishlistStore.Items())
}

// ToggleWishlist handler
// @Summary Toggle wishlist membership
// @Description Adds the product if absent, removes it if present
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param request body model.Product true "Product"
// @Success 200 {array} model.Product
// @Router /wishlist/toggle [post]
func (s *RestHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	var req model.Product
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	s.WishlistStore.Toggle(req)
	writeSuccess(w, s.WishlistStore.Items())
}

// Language handler
// @Summary Active locale
// @Tags Language
// @Produce json
// @Success 200 {object} model.SetLanguageRequest
// @Router /language [get]
func (s *RestHandler) Language(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, model.SetLanguageRequest{Language: s.LanguageStore.Language()})
}

// SetLanguage handler
// @Summary Switch locale
// @Tags Language
// @Accept json
// @Produce json
// @Param request body model.SetLanguageRequest true "Set Language Request"
// @Success 200 {object} model.SetLanguageRequest
// @Router /language [put]
func (s *RestHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req model.SetLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	s.LanguageStore.SetLanguage(req.Language)
	writeSuccess(w, model.SetLanguageRequest{Language: s.LanguageStore.Language()})
}

// Translate handler
// @Summary Resolve a translation key
// @Description Unknown keys come back as the key itself
// @Tags Language
// @Produce json
// @Param key query string true "Dotted translation key"
// @Success 200 {object} model.TranslateResponse
// @Router /translate [get]
func (s *RestHandler) Translate(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	writeSuccess(w, model.TranslateResponse{Key: key, Value: s.LanguageStore.T(key)})
}

// SubmitPremium handler
// @Summary Submit premium request
// @Description File a paid listing package purchase claim for admin review
// @Tags Premium
// @Accept json
// @Produce json
// @Param request body model.SubmitPremiumRequest true "Submit Premium Request"
// @Success 200 {object} model.PremiumRequest
// @Failure 403 {object} errors.CustomError
// @Router /premium [post]
func (s *RestHandler) SubmitPremium(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SubmitPremiumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.PremiumApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.PremiumApp.SubmitRequest(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// PremiumPricing handler
// @Summary Premium pricing
// @Tags Premium
// @Produce json
// @Success 200 {object} model.PremiumPricingResponse
// @Router /premium/pricing [get]
func (s *RestHandler) PremiumPricing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.PremiumApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeSuccess(w, s.PremiumApp.Pricing(ctx))
}

// pathID extracts the numeric {id} route variable.
func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}
