package adminpanel

import (
	"context"
	"fmt"
	"time"

	"github.com/bekzodm/minibazar/cmd/config"
	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	adminstore "github.com/bekzodm/minibazar/store/admin"
	"github.com/bekzodm/minibazar/utils/errors"
	"github.com/bekzodm/minibazar/utils/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminPanelApp interface {
	Login(ctx context.Context, req *model.AdminLoginRequest) (*model.AdminLoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)

	SetPin(ctx context.Context, pin string)
	SetCard(ctx context.Context, patch model.AdminCardPatch)
	SetBotConfig(ctx context.Context, patch model.BotConfigPatch)
	SetListingPrice(ctx context.Context, price int)
	SetAdminTelegram(ctx context.Context, handle string)
	Config(ctx context.Context) model.AdminConfig
	Security(ctx context.Context) model.AdminSecurity
}

type adminPanelAppImpl struct {
	config     *config.Config
	adminStore *adminstore.Store
}

func NewAdminPanelApp(cfg *config.Config, adminStore *adminstore.Store) AdminPanelApp {
	return &adminPanelAppImpl{config: cfg, adminStore: adminStore}
}

// Login checks the PIN against the stored hash and issues a session token.
// Three wrong PINs in a row lock the panel for 24 hours. The lockout never
// clears itself; an expired deadline is reset here, at the only place a
// caller re-enters, before the check runs. The process clock is the only
// clock, so skew shortens or lengthens the effective lockout.
func (s *adminPanelAppImpl) Login(ctx context.Context, req *model.AdminLoginRequest) (*model.AdminLoginResponse, error) {
	if s.adminStore.LockoutExpired() {
		s.adminStore.ResetSecurity()
	}

	if s.adminStore.IsLocked() {
		return nil, errors.SetCustomError(constant.ErrAdminLocked)
	}

	if !s.adminStore.CheckPin(req.Pin) {
		s.adminStore.RecordFailedAttempt()
		logger.Warn("[Login] wrong admin pin",
			zap.Int("failed_attempts", s.adminStore.Security().FailedAttempts))
		if s.adminStore.IsLocked() {
			return nil, errors.SetCustomError(constant.ErrAdminLocked)
		}
		return nil, errors.SetCustomError(constant.ErrInvalidPin)
	}

	s.adminStore.ResetSecurity()

	token, err := s.generateSessionToken()
	if err != nil {
		logger.Error("[Login] err generateSessionToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[Login] admin session opened")
	return &model.AdminLoginResponse{Token: token}, nil
}

// ValidateToken parses an admin session token and returns its session id.
func (s *adminPanelAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}
	if claims.Subject != "admin" {
		return "", fmt.Errorf("not an admin session")
	}
	if claims.ID == "" {
		return "", fmt.Errorf("token missing jti")
	}

	return claims.ID, nil
}

func (s *adminPanelAppImpl) generateSessionToken() (string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.SessionExpTime)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Auth.JWTSecret))
}

func (s *adminPanelAppImpl) SetPin(ctx context.Context, pin string) {
	s.adminStore.SetAdminPin(pin)
}

func (s *adminPanelAppImpl) SetCard(ctx context.Context, patch model.AdminCardPatch) {
	s.adminStore.SetAdminCard(patch)
}

func (s *adminPanelAppImpl) SetBotConfig(ctx context.Context, patch model.BotConfigPatch) {
	s.adminStore.SetBotConfig(patch)
}

func (s *adminPanelAppImpl) SetListingPrice(ctx context.Context, price int) {
	s.adminStore.SetListingPrice(price)
}

func (s *adminPanelAppImpl) SetAdminTelegram(ctx context.Context, handle string) {
	s.adminStore.SetAdminTelegram(handle)
}

func (s *adminPanelAppImpl) Config(ctx context.Context) model.AdminConfig {
	return s.adminStore.Config()
}

func (s *adminPanelAppImpl) Security(ctx context.Context) model.AdminSecurity {
	return s.adminStore.Security()
}
