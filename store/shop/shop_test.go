package shop_test

import (
	"testing"

	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	"github.com/bekzodm/minibazar/storage"
	"github.com/bekzodm/minibazar/store/shop"
)

func newStore(t *testing.T) *shop.Store {
	t.Helper()
	p, err := storage.NewFileProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}
	return shop.New(p)
}

func TestStore_DefaultQuota(t *testing.T) {
	s := newStore(t)
	prof := s.Profile()
	if prof.ListingsLimit != constant.DefaultListingsLimit {
		t.Fatalf("ListingsLimit = %d, want %d", prof.ListingsLimit, constant.DefaultListingsLimit)
	}
	if prof.ListingsUsed != 0 {
		t.Fatalf("ListingsUsed = %d, want 0", prof.ListingsUsed)
	}
}

func TestStore_UpdateProfile_PartialMerge(t *testing.T) {
	s := newStore(t)
	name := "Tech Haven"
	desc := "Best gadgets in town!"
	s.UpdateProfile(model.ShopPatch{ShopName: &name, Description: &desc})

	phone := "+998 90 123 45 67"
	s.UpdateProfile(model.ShopPatch{Phone: &phone})

	prof := s.Profile()
	if prof.ShopName != name || prof.Description != desc || prof.Phone != phone {
		t.Fatalf("Profile() = %+v, want all patched fields merged", prof)
	}
}

func TestStore_IncrementListingsUsed_NeverClamped(t *testing.T) {
	s := newStore(t)
	// push usage past the limit; the store only counts, callers compare
	for i := 0; i < constant.DefaultListingsLimit+2; i++ {
		s.IncrementListingsUsed()
	}

	prof := s.Profile()
	if prof.ListingsUsed != constant.DefaultListingsLimit+2 {
		t.Fatalf("ListingsUsed = %d, want %d (no clamp)", prof.ListingsUsed, constant.DefaultListingsLimit+2)
	}
}

func TestStore_AddListingsLimit(t *testing.T) {
	s := newStore(t)
	s.AddListingsLimit(10)
	s.AddListingsLimit(20)

	if got := s.Profile().ListingsLimit; got != constant.DefaultListingsLimit+30 {
		t.Fatalf("ListingsLimit = %d, want %d", got, constant.DefaultListingsLimit+30)
	}
}

func TestStore_RehydratesFromSnapshot(t *testing.T) {
	p, err := storage.NewFileProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}

	s := shop.New(p)
	name := "Urban Gear"
	s.UpdateProfile(model.ShopPatch{ShopName: &name})
	s.IncrementListingsUsed()

	reloaded := shop.New(p)
	prof := reloaded.Profile()
	if prof.ShopName != name || prof.ListingsUsed != 1 {
		t.Fatalf("reloaded Profile() = %+v, want persisted state", prof)
	}
	// default quota must not overwrite a persisted snapshot
	if prof.ListingsLimit != constant.DefaultListingsLimit {
		t.Fatalf("reloaded ListingsLimit = %d, want %d", prof.ListingsLimit, constant.DefaultListingsLimit)
	}
}
