// Package product holds seller-submitted listings, separate from the static
// seed catalog. Consumers concatenate both for display.
package product

import (
	"sync"

	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	"github.com/bekzodm/minibazar/storage"
	"github.com/bekzodm/minibazar/utils/logger"
	"go.uber.org/zap"
)

type state struct {
	Products []model.Product `json:"products"`
}

type Store struct {
	mu    sync.Mutex
	ns    storage.Namespace
	state state
	subs  []func()
}

func New(provider storage.Provider) *Store {
	s := &Store{ns: provider.Namespace(constant.NamespaceProduct)}
	if _, err := s.ns.Load(&s.state); err != nil {
		logger.Error("[ProductStore] load snapshot", zap.String("error", err.Error()))
	}
	return s
}

func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, len(s.state.Products))
	copy(out, s.state.Products)
	return out
}

// MaxID returns the highest id among submitted listings, 0 when empty.
func (s *Store) MaxID() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var max uint64
	for _, p := range s.state.Products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}

// Add prepends the listing so the newest submission lists first. The id is
// caller-supplied and assumed unique.
func (s *Store) Add(p model.Product) {
	s.mu.Lock()
	s.state.Products = append([]model.Product{p}, s.state.Products...)
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

// Delete removes the listing with the given id, a no-op when absent. Seed
// catalog entries are out of reach here.
func (s *Store) Delete(id uint64) {
	s.mu.Lock()
	kept := s.state.Products[:0]
	for _, p := range s.state.Products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.state.Products = kept
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

func (s *Store) persistLocked() []func() {
	if err := s.ns.Save(s.state); err != nil {
		logger.Error("[ProductStore] save snapshot", zap.String("error", err.Error()))
	}
	return s.subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
