package account

import (
	"context"

	"github.com/bekzodm/minibazar/model"
	shopstore "github.com/bekzodm/minibazar/store/shop"
	userstore "github.com/bekzodm/minibazar/store/user"
	"github.com/bekzodm/minibazar/utils/logger"
	"go.uber.org/zap"
)

type AccountApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Current(ctx context.Context) model.User
	Logout(ctx context.Context)
}

type accountAppImpl struct {
	userStore *userstore.Store
	shopStore *shopstore.Store
}

func NewAccountApp(userStore *userstore.Store, shopStore *shopstore.Store) AccountApp {
	return &accountAppImpl{userStore: userStore, shopStore: shopStore}
}

// Register records the visitor identity. Field constraints (name length,
// phone length) are checked by the transport before this is called; the
// store itself accepts anything. Registration is unconditional: no
// uniqueness check, no verification round-trip.
func (s *accountAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	s.userStore.SetUser(req.Name, req.Phone)

	// seed the shop profile name so seller mode has something to show
	if s.shopStore.Profile().ShopName == "" {
		s.shopStore.UpdateProfile(model.ShopPatch{ShopName: &req.Name})
	}

	logger.Info("[Register] visitor registered", zap.String("name", req.Name))
	return &model.RegisterResponse{Name: req.Name, Phone: req.Phone}, nil
}

func (s *accountAppImpl) Current(ctx context.Context) model.User {
	return s.userStore.Get()
}

// Logout resets the identity; consumers treat the cleared registration flag
// as a force-onboarding gate.
func (s *accountAppImpl) Logout(ctx context.Context) {
	s.userStore.Logout()
	logger.Info("[Logout] visitor reset")
}
