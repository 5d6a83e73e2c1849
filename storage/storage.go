package storage

// Namespace persists a single store's snapshot under a fixed name. Each store
// owns exactly one namespace; there are no cross-namespace transactions.
type Namespace interface {
	// Load reads the snapshot into v. It returns false when no snapshot has
	// been written yet, which is not an error.
	Load(v interface{}) (bool, error)
	// Save replaces the snapshot wholesale with the serialized form of v.
	Save(v interface{}) error
}

// Provider hands out namespaces by name.
type Provider interface {
	Namespace(name string) Namespace
}
