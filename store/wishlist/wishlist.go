// Package wishlist holds favorited products with membership-only semantics.
package wishlist

import (
	"sync"

	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	"github.com/bekzodm/minibazar/storage"
	"github.com/bekzodm/minibazar/utils/logger"
	"go.uber.org/zap"
)

type state struct {
	Items []model.Product `json:"items"`
}

type Store struct {
	mu    sync.Mutex
	ns    storage.Namespace
	state state
	subs  []func()
}

func New(provider storage.Provider) *Store {
	s := &Store{ns: provider.Namespace(constant.NamespaceWishlist)}
	if _, err := s.ns.Load(&s.state); err != nil {
		logger.Error("[WishlistStore] load snapshot", zap.String("error", err.Error()))
	}
	return s
}

func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) Items() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, len(s.state.Items))
	copy(out, s.state.Items)
	return out
}

// Toggle removes the product when present, appends it when absent. Toggling
// twice restores the original membership.
func (s *Store) Toggle(p model.Product) {
	s.mu.Lock()
	found := false
	kept := s.state.Items[:0]
	for _, it := range s.state.Items {
		if it.ID == p.ID {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	s.state.Items = kept
	if !found {
		s.state.Items = append(s.state.Items, p)
	}
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

func (s *Store) IsInWishlist(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.state.Items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) persistLocked() []func() {
	if err := s.ns.Save(s.state); err != nil {
		logger.Error("[WishlistStore] save snapshot", zap.String("error", err.Error()))
	}
	return s.subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
