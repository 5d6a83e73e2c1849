package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileProvider keeps one <namespace>.json file per store under a data
// directory. Writes replace the whole file, mirroring the snapshot contract.
type FileProvider struct {
	dir string
}

func NewFileProvider(dir string) (*FileProvider, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileProvider{dir: dir}, nil
}

func (p *FileProvider) Namespace(name string) Namespace {
	return &fileNamespace{path: filepath.Join(p.dir, name+".json")}
}

type fileNamespace struct {
	path string
}

func (n *fileNamespace) Load(v interface{}) (bool, error) {
	data, err := os.ReadFile(n.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

func (n *fileNamespace) Save(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(n.path, data, 0o644)
}
