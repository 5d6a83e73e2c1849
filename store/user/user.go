// Package user holds the registered visitor identity. The document is
// process-wide: one visitor, reset wholesale on logout.
package user

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
	state model.User
	subs  []func()
}

func New(provider storage.Provider) *Store {
	s := &Store{ns: provider.Namespace(constant.NamespaceUser)}
	if _, err := s.ns.Load(&s.state); err != nil {
		logger.Error("[UserStore] load snapshot", zap.String("error", err.Error()))
	}
	return s
}

// Subscribe registers fn to run after every completed mutation.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) Get() model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) IsRegistered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsRegistered
}

// SetUser records the visitor identity and marks it registered
// unconditionally. Field validation happens at the caller.
func (s *Store) SetUser(name, phone string) {
	s.mu.Lock()
	s.state = model.User{Name: name, Phone: phone, IsRegistered: true}
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

// Logout resets the identity to the anonymous state. Callers treat the
// unregistered flag as a force-onboarding gate.
func (s *Store) Logout() {
	s.mu.Lock()
	s.state = model.User{}
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

// persistLocked saves the snapshot and returns the subscriber list to run
// after the lock is released. Save failures are logged, never propagated.
func (s *Store) persistLocked() []func() {
	if err := s.ns.Save(s.state); err != nil {
		logger.Error("[UserStore] save snapshot", zap.String("error", err.Error()))
	}
	return s.subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
