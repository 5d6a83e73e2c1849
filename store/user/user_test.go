package user_test

import (
	"testing"

	"github.com/bekzodm/minibazar/storage"
	"github.com/bekzodm/minibazar/store/user"
)

func newStore(t *testing.T) *user.Store {
	t.Helper()
	p, err := storage.NewFileProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}
	return user.New(p)
}

func TestStore_SetUser(t *testing.T) {
	s := newStore(t)
	if s.IsRegistered() {
		t.Fatal("fresh store should be unregistered")
	}

	s.SetUser("Bekzod", "+998901234567")

	u := s.Get()
	if u.Name != "Bekzod" || u.Phone != "+998901234567" || !u.IsRegistered {
		t.Fatalf("Get() = %+v, want registered identity", u)
	}
}

func TestStore_Logout_ResetsWholesale(t *testing.T) {
	s := newStore(t)
	s.SetUser("Bekzod", "+998901234567")

	s.Logout()

	u := s.Get()
	if u.Name != "" || u.Phone != "" || u.IsRegistered {
		t.Fatalf("Get() after logout = %+v, want anonymous zero state", u)
	}
}

func TestStore_RehydratesFromSnapshot(t *testing.T) {
	p, err := storage.NewFileProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}

	s := user.New(p)
	s.SetUser("Dilnoza", "+998935554433")

	reloaded := user.New(p)
	if !reloaded.IsRegistered() {
		t.Fatal("reloaded store lost registration flag")
	}
	if got := reloaded.Get().Name; got != "Dilnoza" {
		t.Fatalf("reloaded name = %s, want Dilnoza", got)
	}
}
