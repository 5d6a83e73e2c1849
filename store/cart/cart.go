// Package cart holds the active shopping cart. At most one item exists per
// product id; quantities below 1 are never persisted.
package cart

import (
	"sync"

	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	"github.com/bekzodm/minibazar/storage"
	"github.com/bekzodm/minibazar/utils/logger"
	"go.uber.org/zap"
)

type state struct {
	Items []model.CartItem `json:"items"`
}

type Store struct {
	mu    sync.Mutex
	ns    storage.Namespace
	state state
	subs  []func()
}

func New(provider storage.Provider) *Store {
	s := &Store{ns: provider.Namespace(constant.NamespaceCart)}
	if _, err := s.ns.Load(&s.state); err != nil {
		logger.Error("[CartStore] load snapshot", zap.String("error", err.Error()))
	}
	return s
}

func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartItem, len(s.state.Items))
	copy(out, s.state.Items)
	return out
}

// AddToCart merges into an existing item's quantity or appends a fresh item
// with quantity 1. Existing items keep their position; new items go last.
func (s *Store) AddToCart(p model.Product) {
	s.mu.Lock()
	merged := false
	for i := range s.state.Items {
		if s.state.Items[i].ID == p.ID {
			s.state.Items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.state.Items = append(s.state.Items, model.CartItem{Product: p, Quantity: 1})
	}
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

func (s *Store) IncrementQuantity(id uint64) {
	s.mu.Lock()
	for i := range s.state.Items {
		if s.state.Items[i].ID == id {
			s.state.Items[i].Quantity++
			break
		}
	}
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

// DecrementQuantity lowers the quantity by one; an item at quantity 1 is
// removed outright.
func (s *Store) DecrementQuantity(id uint64) {
	s.mu.Lock()
	for i := range s.state.Items {
		if s.state.Items[i].ID != id {
			continue
		}
		if s.state.Items[i].Quantity > 1 {
			s.state.Items[i].Quantity--
		} else {
			s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)
		}
		break
	}
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

func (s *Store) RemoveFromCart(id uint64) {
	s.mu.Lock()
	kept := s.state.Items[:0]
	for _, it := range s.state.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.state.Items = kept
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

// ClearCart empties the cart, used after checkout.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.state.Items = nil
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

// Total folds price times quantity over the current items on every call;
// nothing is cached.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, it := range s.state.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (s *Store) persistLocked() []func() {
	if err := s.ns.Save(s.state); err != nil {
		logger.Error("[CartStore] save snapshot", zap.String("error", err.Error()))
	}
	return s.subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
