package listing

import (
	"context"

	"github.com/bekzodm/minibazar/catalog"
	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	productstore "github.com/bekzodm/minibazar/store/product"
	shopstore "github.com/bekzodm/minibazar/store/shop"
	userstore "github.com/bekzodm/minibazar/store/user"
	"github.com/bekzodm/minibazar/utils/errors"
	"github.com/bekzodm/minibazar/utils/logger"
	"go.uber.org/zap"
)

type ListingApp interface {
	Submit(ctx context.Context, req *model.SubmitProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id uint64) error
	Catalog(ctx context.Context) *model.CatalogResponse
	SellerCatalog(ctx context.Context) *model.CatalogResponse
}

type listingAppImpl struct {
	userStore    *userstore.Store
	shopStore    *shopstore.Store
	productStore *productstore.Store
}

func NewListingApp(userStore *userstore.Store, shopStore *shopstore.Store, productStore *productstore.Store) ListingApp {
	return &listingAppImpl{userStore: userStore, shopStore: shopStore, productStore: productStore}
}

// Submit publishes a seller listing. The quota gate lives here, not in the
// store: usage is compared against the limit before mutating, and the two
// resulting mutations (add listing, bump usage) are independent.
func (s *listingAppImpl) Submit(ctx context.Context, req *model.SubmitProductRequest) (*model.Product, error) {
	if !s.userStore.IsRegistered() {
		return nil, errors.SetCustomError(constant.ErrNotRegistered)
	}

	prof := s.shopStore.Profile()
	if prof.ListingsUsed >= prof.ListingsLimit {
		logger.Info("[Submit] listing limit reached",
			zap.Int("used", prof.ListingsUsed), zap.Int("limit", prof.ListingsLimit))
		return nil, errors.SetCustomError(constant.ErrListingLimit)
	}

	p := model.Product{
		ID:             s.nextID(),
		Name:           req.Name,
		Category:       req.Category,
		Image:          req.Image,
		Description:    req.Description,
		Price:          req.Price,
		SellerName:     prof.ShopName,
		SellerPhone:    prof.Phone,
		SellerTelegram: req.SellerTelegram,
	}
	if p.SellerName == "" {
		p.SellerName = s.userStore.Get().Name
	}
	if p.SellerPhone == "" {
		p.SellerPhone = s.userStore.Get().Phone
	}

	s.productStore.Add(p)
	s.shopStore.IncrementListingsUsed()

	logger.Info("[Submit] listing published", zap.Uint64("id", p.ID), zap.String("name", p.Name))
	return &p, nil
}

// nextID assigns above both sources so ids stay unique across the seed
// catalog and seller submissions.
func (s *listingAppImpl) nextID() uint64 {
	max := catalog.MaxID()
	if m := s.productStore.MaxID(); m > max {
		max = m
	}
	return max + 1
}

// Delete removes a seller listing. Seed catalog entries are untouchable and
// usage is not refunded.
func (s *listingAppImpl) Delete(ctx context.Context, id uint64) error {
	s.productStore.Delete(id)
	return nil
}

func (s *listingAppImpl) Catalog(ctx context.Context) *model.CatalogResponse {
	return &model.CatalogResponse{
		Items:      catalog.Products(),
		Categories: catalog.Categories(),
	}
}

// SellerCatalog merges seller submissions with the seed catalog by
// concatenation, submissions first.
func (s *listingAppImpl) SellerCatalog(ctx context.Context) *model.CatalogResponse {
	items := s.productStore.Products()
	items = append(items, catalog.Products()...)
	return &model.CatalogResponse{Items: items}
}
