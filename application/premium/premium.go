package premium

import (
	"context"
	"fmt"

	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	adminstore "github.com/bekzodm/minibazar/store/admin"
	shopstore "github.com/bekzodm/minibazar/store/shop"
	userstore "github.com/bekzodm/minibazar/store/user"
	"github.com/bekzodm/minibazar/thirdparty/rabbitmq"
	"github.com/bekzodm/minibazar/utils/errors"
	"github.com/bekzodm/minibazar/utils/logger"
	"go.uber.org/zap"
)

type PremiumApp interface {
	SubmitRequest(ctx context.Context, req *model.SubmitPremiumRequest) (*model.PremiumRequest, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Requests(ctx context.Context) []model.PremiumRequest
	PendingCount(ctx context.Context) int
	Pricing(ctx context.Context) *model.PremiumPricingResponse
	IsShopPremium(ctx context.Context, shopName string) bool
}

type premiumAppImpl struct {
	userStore  *userstore.Store
	shopStore  *shopstore.Store
	adminStore *adminstore.Store
	publisher  *rabbitmq.Publisher
}

func NewPremiumApp(userStore *userstore.Store, shopStore *shopstore.Store, adminStore *adminstore.Store, publisher *rabbitmq.Publisher) PremiumApp {
	return &premiumAppImpl{userStore: userStore, shopStore: shopStore, adminStore: adminStore, publisher: publisher}
}

// SubmitRequest files a paid-listing purchase claim for admin review. The
// request always starts pending; the receipt image is carried as-is.
func (s *premiumAppImpl) SubmitRequest(ctx context.Context, req *model.SubmitPremiumRequest) (*model.PremiumRequest, error) {
	if !s.userStore.IsRegistered() {
		return nil, errors.SetCustomError(constant.ErrNotRegistered)
	}

	user := s.userStore.Get()
	prof := s.shopStore.Profile()

	created := s.adminStore.AddRequest(adminstore.AddRequestInput{
		UserID:        user.Phone,
		UserName:      user.Name,
		SenderName:    prof.ShopName,
		ListingsCount: req.ListingsCount,
		Amount:        req.Amount,
		CheckImage:    req.CheckImage,
	})

	if s.publisher != nil {
		msg := rabbitmq.BotNotification{
			Kind:   rabbitmq.NotificationKindPremium,
			ChatID: s.adminStore.Config().Bot.ChatID,
			Text: fmt.Sprintf("💎 Yangi premium so'rov\nDo'kon: %s\nPaket: %d ta e'lon\nSumma: %s",
				created.SenderName, created.ListingsCount, created.Amount),
		}
		if err := s.publisher.PublishBotNotification(msg); err != nil {
			logger.Error("[SubmitRequest] publish premium notification", zap.String("error", err.Error()))
		}
	}

	logger.Info("[SubmitRequest] premium request filed",
		zap.String("id", created.ID), zap.String("shop", created.SenderName))
	return &created, nil
}

// Approve flips the request to approved and credits the purchased package to
// the shop's quota. The two mutations hit separate stores with no
// transaction between them. Approving an already-decided request is not
// guarded and credits the quota again.
func (s *premiumAppImpl) Approve(ctx context.Context, id string) error {
	req, ok := s.adminStore.Request(id)
	if !ok {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	s.adminStore.ApproveRequest(id)
	s.shopStore.AddListingsLimit(req.ListingsCount)

	logger.Info("[Approve] premium request approved",
		zap.String("id", id), zap.String("shop", req.SenderName), zap.Int("listings", req.ListingsCount))
	return nil
}

// Reject flips the request to rejected. The approved-shops registry and the
// shop quota stay untouched.
func (s *premiumAppImpl) Reject(ctx context.Context, id string) error {
	if _, ok := s.adminStore.Request(id); !ok {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	s.adminStore.RejectRequest(id)
	logger.Info("[Reject] premium request rejected", zap.String("id", id))
	return nil
}

func (s *premiumAppImpl) Requests(ctx context.Context) []model.PremiumRequest {
	return s.adminStore.Requests()
}

func (s *premiumAppImpl) PendingCount(ctx context.Context) int {
	return s.adminStore.PendingCount()
}

func (s *premiumAppImpl) Pricing(ctx context.Context) *model.PremiumPricingResponse {
	return &model.PremiumPricingResponse{ListingPrice: s.adminStore.Config().ListingPrice}
}

func (s *premiumAppImpl) IsShopPremium(ctx context.Context, shopName string) bool {
	return s.adminStore.IsShopPremium(shopName)
}
