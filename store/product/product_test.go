package product_test

import (
	"testing"

	"github.com/bekzodm/minibazar/model"
	"github.com/bekzodm/minibazar/storage"
	"github.com/bekzodm/minibazar/store/product"
)

func newStore(t *testing.T) *product.Store {
	t.Helper()
	p, err := storage.NewFileProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}
	return product.New(p)
}

func TestStore_Add_PrependsNewest(t *testing.T) {
	s := newStore(t)
	s.Add(model.Product{ID: 5, Name: "first"})
	s.Add(model.Product{ID: 6, Name: "second"})

	items := s.Products()
	if len(items) != 2 {
		t.Fatalf("products = %d, want 2", len(items))
	}
	if items[0].ID != 6 || items[1].ID != 5 {
		t.Fatalf("order = [%d %d], want most-recent-first", items[0].ID, items[1].ID)
	}
}

func TestStore_Delete(t *testing.T) {
	s := newStore(t)
	s.Add(model.Product{ID: 5})
	s.Add(model.Product{ID: 6})

	s.Delete(5)
	if items := s.Products(); len(items) != 1 || items[0].ID != 6 {
		t.Fatalf("after delete products = %+v, want only id 6", items)
	}

	// absent id is a no-op
	s.Delete(99)
	if items := s.Products(); len(items) != 1 {
		t.Fatalf("delete of absent id changed the list: %+v", items)
	}
}

func TestStore_MaxID(t *testing.T) {
	s := newStore(t)
	if got := s.MaxID(); got != 0 {
		t.Fatalf("MaxID() on empty store = %d, want 0", got)
	}

	s.Add(model.Product{ID: 12})
	s.Add(model.Product{ID: 7})
	if got := s.MaxID(); got != 12 {
		t.Fatalf("MaxID() = %d, want 12", got)
	}
}

func TestStore_RehydratesFromSnapshot(t *testing.T) {
	p, err := storage.NewFileProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}

	s := product.New(p)
	s.Add(model.Product{ID: 9, Name: "Persisted"})

	reloaded := product.New(p)
	if items := reloaded.Products(); len(items) != 1 || items[0].Name != "Persisted" {
		t.Fatalf("reloaded products = %+v, want persisted listing", items)
	}
}
