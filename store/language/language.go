// Package language holds the active UI locale and resolves translation keys
// against static per-build lookup tables.
package language

import (
	"strings"
	"sync"

	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/storage"
	"github.com/bekzodm/minibazar/utils/logger"
	"go.uber.org/zap"
)

const (
	LangUz = "uz"
	LangRu = "ru"
)

type state struct {
	Language string `json:"language"`
}

type Store struct {
	mu    sync.Mutex
	ns    storage.Namespace
	state state
	subs  []func()
}

func New(provider storage.Provider) *Store {
	s := &Store{ns: provider.Namespace(constant.NamespaceLanguage)}
	found, err := s.ns.Load(&s.state)
	if err != nil {
		logger.Error("[LanguageStore] load snapshot", zap.String("error", err.Error()))
	}
	if !found || s.state.Language == "" {
		s.state.Language = LangUz
	}
	return s
}

func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Language
}

// SetLanguage replaces the active locale tag.
func (s *Store) SetLanguage(code string) {
	s.mu.Lock()
	s.state.Language = code
	subs := s.persistLocked()
	s.mu.Unlock()
	notify(subs)
}

// T resolves a dot-separated key (e.g. "categories.Electronics") through the
// active locale's table. Any missing segment degrades to the literal key;
// this never fails.
func (s *Store) T(key string) string {
	s.mu.Lock()
	lang := s.state.Language
	s.mu.Unlock()

	table, ok := translations[lang]
	if !ok {
		return key
	}

	var current interface{} = table
	for _, segment := range strings.Split(key, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return key
		}
		current, ok = m[segment]
		if !ok {
			return key
		}
	}
	if v, ok := current.(string); ok {
		return v
	}
	return key
}

func (s *Store) persistLocked() []func() {
	if err := s.ns.Save(s.state); err != nil {
		logger.Error("[LanguageStore] save snapshot", zap.String("error", err.Error()))
	}
	return s.subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
