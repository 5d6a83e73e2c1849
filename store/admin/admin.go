// Package admin holds the premium request lifecycle, the approved-shops
// registry, global admin configuration, and the admin login lockout counter.
package admin

import (
	"sync"
	"time"

	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	"github.com/bekzodm/minibazar/storage"
	"github.com/bekzodm/minibazar/utils/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type state struct {
	Requests      []model.PremiumRequest `json:"requests"`
	ApprovedShops []string               `json:"approved_shops"`
	Config        model.AdminConfig      `json:"config"`
	Security      model.AdminSecurity    `json:"security"`
}

type Store struct {
	mu    sync.Mutex
	ns    storage.Namespace
	state state
	subs  []func()
}

func New(provider storage.Provider) *Store {
	s := &Store{ns: provider.Namespace(constant.NamespaceAdmin)}
	found, err := s.ns.Load(&s.state)
	if err != nil {
		logger.Error("[AdminStore] load snapshot", zap.String("error", err.Error()))
	}
	if !found {
		s.state.Config = defaultConfig()
	}
	return s
}

func defaultConfig() model.AdminConfig {
	hash, err := bcrypt.GenerateFromPassword([]byte(constant.DefaultAdminPin), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[AdminStore] hash default pin", zap.String("error", err.Error()))
	}
	return model.AdminConfig{
		Card: model.AdminCard{
			Number: constant.DefaultCardNumber,
			Holder: constant.DefaultCardHolder,
			Bank:   constant.DefaultCardBank,
		},
		Bot: model.BotConfig{
			Username: constant.DefaultBotUsername,
		},
		ListingPrice:  constant.DefaultListingPrice,
		AdminTelegram: constant.DefaultAdminTelegram,
		PinHash:       string(hash),
	}
}

func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// AddRequestInput carries the caller-supplied fields of a purchase claim.
// Id, date and status are assigned here.
type AddRequestInput struct {
	UserID        string
	UserName      string
	SenderName    string
	ListingsCount int
	Amount        string
	CheckImage    string
}

// AddRequest prepends a new request in the pending state and returns it.
func (s *Store) AddRequest(in AddRequestInput) model.PremiumRequest {
	req := model.PremiumRequest{
		ID:            uuid.NewString(),
		UserID:        in.UserID,
		UserName:      in.UserName,
		SenderName:    in.SenderName,
		ListingsCount: in.ListingsCount,
		Amount:        in.Amount,
		CheckImage:    in.CheckImage,
		Date:          time.Now(),
		Status:        constant.RequestStatusPending,
	}
	s.mu.Lock()
	s.state.Requests = append([]model.PremiumRequest{req}, s.state.Requests...)
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
	return req
}

// ApproveRequest marks the request approved and records its sender in the
// approved-shops registry. The prior status is deliberately not checked;
// callers that approve twice re-trigger their own side effects.
func (s *Store) ApproveRequest(id string) {
	s.mu.Lock()
	for i := range s.state.Requests {
		if s.state.Requests[i].ID != id {
			continue
		}
		s.state.Requests[i].Status = constant.RequestStatusApproved
		if name := s.state.Requests[i].SenderName; name != "" {
			s.addApprovedShopLocked(name)
		}
		break
	}
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

// RejectRequest marks the request rejected. The approved-shops registry is
// left untouched.
func (s *Store) RejectRequest(id string) {
	s.mu.Lock()
	for i := range s.state.Requests {
		if s.state.Requests[i].ID == id {
			s.state.Requests[i].Status = constant.RequestStatusRejected
			break
		}
	}
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

func (s *Store) addApprovedShopLocked(name string) {
	for _, n := range s.state.ApprovedShops {
		if n == name {
			return
		}
	}
	s.state.ApprovedShops = append(s.state.ApprovedShops, name)
}

func (s *Store) Request(id string) (model.PremiumRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, req := range s.state.Requests {
		if req.ID == id {
			return req, true
		}
	}
	return model.PremiumRequest{}, false
}

// Requests returns all requests, most recent first.
func (s *Store) Requests() []model.PremiumRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.PremiumRequest, len(s.state.Requests))
	copy(out, s.state.Requests)
	return out
}

// PendingCount derives the number of requests still awaiting a decision.
func (s *Store) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, req := range s.state.Requests {
		if req.Status == constant.RequestStatusPending {
			count++
		}
	}
	return count
}

func (s *Store) ApprovedShops() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.state.ApprovedShops))
	copy(out, s.state.ApprovedShops)
	return out
}

// IsShopPremium reports whether a shop with that name has had a request
// approved. The empty name is never premium.
func (s *Store) IsShopPremium(name string) bool {
	if name == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.state.ApprovedShops {
		if n == name {
			return true
		}
	}
	return false
}

// RecordFailedAttempt bumps the failed-login counter. At the threshold the
// lockout deadline moves 24 hours ahead; the counter is never clamped.
func (s *Store) RecordFailedAttempt() {
	s.mu.Lock()
	s.state.Security.FailedAttempts++
	if s.state.Security.FailedAttempts >= constant.MaxFailedAttempts {
		until := time.Now().Add(constant.LockoutDuration)
		s.state.Security.LockoutUntil = &until
	}
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

// ResetSecurity zeroes the counter and clears the lockout deadline. Nothing
// calls this automatically when the deadline passes; callers must.
func (s *Store) ResetSecurity() {
	s.mu.Lock()
	s.state.Security = model.AdminSecurity{}
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

// IsLocked is a pure read: locked while a deadline is set and in the future.
func (s *Store) IsLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Security.LockoutUntil != nil && s.state.Security.LockoutUntil.After(time.Now())
}

// LockoutExpired reports a deadline that is set but already in the past,
// the state in which a caller should reset security.
func (s *Store) LockoutExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Security.LockoutUntil != nil && !s.state.Security.LockoutUntil.After(time.Now())
}

func (s *Store) Security() model.AdminSecurity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Security
}

// CheckPin compares the candidate against the stored hash.
func (s *Store) CheckPin(pin string) bool {
	s.mu.Lock()
	hash := s.state.Config.PinHash
	s.mu.Unlock()
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}

// SetAdminPin replaces the PIN. No strength or format rules apply.
func (s *Store) SetAdminPin(pin string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[AdminStore] hash pin", zap.String("error", err.Error()))
		return
	}
	s.mu.Lock()
	s.state.Config.PinHash = string(hash)
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

func (s *Store) SetAdminCard(patch model.AdminCardPatch) {
	s.mu.Lock()
	if patch.Number != nil {
		s.state.Config.Card.Number = *patch.Number
	}
	if patch.Holder != nil {
		s.state.Config.Card.Holder = *patch.Holder
	}
	if patch.Bank != nil {
		s.state.Config.Card.Bank = *patch.Bank
	}
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

func (s *Store) SetBotConfig(patch model.BotConfigPatch) {
	s.mu.Lock()
	if patch.Username != nil {
		s.state.Config.Bot.Username = *patch.Username
	}
	if patch.Token != nil {
		s.state.Config.Bot.Token = *patch.Token
	}
	if patch.ChatID != nil {
		s.state.Config.Bot.ChatID = *patch.ChatID
	}
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

func (s *Store) SetListingPrice(price int) {
	s.mu.Lock()
	s.state.Config.ListingPrice = price
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

func (s *Store) SetAdminTelegram(handle string) {
	s.mu.Lock()
	s.state.Config.AdminTelegram = handle
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

func (s *Store) Config() model.AdminConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Config
}

func (s *Store) persistLocked() []func() {
	if err := s.ns.Save(s.state); err != nil {
		logger.Error("[AdminStore] save snapshot", zap.String("error", err.Error()))
	}
	return s.subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
