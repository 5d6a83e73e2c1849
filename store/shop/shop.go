// Package shop holds the visitor's shop profile and listing quota usage.
package shop

import (
	"sync"

	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	"github.com/bekzodm/minibazar/storage"
	"github.com/bekzodm/minibazar/utils/logger"
	"go.uber.org/zap"
)

type Store struct {
	mu    sync.Mutex
	ns    storage.Namespace
	state model.ShopProfile
	subs  []func()
}

func New(provider storage.Provider) *Store {
	s := &Store{ns: provider.Namespace(constant.NamespaceShop)}
	found, err := s.ns.Load(&s.state)
	if err != nil {
		logger.Error("[ShopStore] load snapshot", zap.String("error", err.Error()))
	}
	if !found {
		s.state.ListingsLimit = constant.DefaultListingsLimit
	}
	return s
}

func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) Profile() model.ShopProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// UpdateProfile shallow-merges the non-nil patch fields. No validation.
func (s *Store) UpdateProfile(patch model.ShopPatch) {
	s.mu.Lock()
	if patch.ShopName != nil {
		s.state.ShopName = *patch.ShopName
	}
	if patch.Description != nil {
		s.state.Description = *patch.Description
	}
	if patch.Phone != nil {
		s.state.Phone = *patch.Phone
	}
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

// IncrementListingsUsed bumps the usage counter. The store never compares it
// against the limit; callers gate submissions before mutating.
func (s *Store) IncrementListingsUsed() {
	s.mu.Lock()
	s.state.ListingsUsed++
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

// AddListingsLimit raises the quota by the approved package size.
func (s *Store) AddListingsLimit(amount int) {
	s.mu.Lock()
	s.state.ListingsLimit += amount
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

func (s *Store) persistLocked() []func() {
	if err := s.ns.Save(s.state); err != nil {
		logger.Error("[ShopStore] save snapshot", zap.String("error", err.Error()))
	}
	return s.subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
