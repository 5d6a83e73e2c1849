package storage_test

import (
	"testing"

	"github.com/bekzodm/minibazar/storage"
)

type snapshot struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileNamespace_LoadMissing(t *testing.T) {
	p, err := storage.NewFileProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}

	var got snapshot
	found, err := p.Namespace("user-storage").Load(&got)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if found {
		t.Fatal("Load() found = true, want false for missing snapshot")
	}
}

func TestFileNamespace_SaveThenLoad(t *testing.T) {
	p, err := storage.NewFileProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}

	ns := p.Namespace("shop-storage")
	if err := ns.Save(snapshot{Name: "Tech Haven", Count: 3}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var got snapshot
	found, err := ns.Load(&got)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !found {
		t.Fatal("Load() found = false, want true")
	}
	if got.Name != "Tech Haven" || got.Count != 3 {
		t.Fatalf("Load() = %+v, want saved snapshot", got)
	}
}

func TestFileNamespace_SaveReplacesWholesale(t *testing.T) {
	p, err := storage.NewFileProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}

	ns := p.Namespace("cart-storage")
	if err := ns.Save(snapshot{Name: "first", Count: 1}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := ns.Save(snapshot{Name: "second"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var got snapshot
	if _, err := ns.Load(&got); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Name != "second" || got.Count != 0 {
		t.Fatalf("Load() = %+v, want second snapshot only", got)
	}
}

func TestFileProvider_NamespacesAreIndependent(t *testing.T) {
	p, err := storage.NewFileProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}

	if err := p.Namespace("a").Save(snapshot{Name: "a"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var got snapshot
	found, err := p.Namespace("b").Load(&got)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if found {
		t.Fatal("namespace b should not see namespace a's snapshot")
	}
}

func TestRedisNamespace_NilClientNoops(t *testing.T) {
	p := storage.NewRedisProvider(nil)
	ns := p.Namespace("admin-storage")

	if err := ns.Save(snapshot{Name: "x"}); err != nil {
		t.Fatalf("Save() with nil client error = %v", err)
	}
	var got snapshot
	found, err := ns.Load(&got)
	if err != nil {
		t.Fatalf("Load() with nil client error = %v", err)
	}
	if found {
		t.Fatal("Load() with nil client found = true, want false")
	}
}
