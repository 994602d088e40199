package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/mouse-blink/quire/internal/model"
)

// NotebookStore persists and retrieves notebooks.
type NotebookStore interface {
	Load(path m.Path) (*m.Notebook, error)
	Save(path m.Path, nb *m.Notebook) error
}

// LocalNotebookStore reads and writes notebooks on the local filesystem,
// picking the codec by file extension through the registry.
type LocalNotebookStore struct {
	registry *CodecRegistry
}

// NewLocalNotebookStore constructs a store over the given registry.
func NewLocalNotebookStore(registry *CodecRegistry) *LocalNotebookStore {
	return &LocalNotebookStore{registry: registry}
}

// Load reads and decodes the notebook at path.
func (s *LocalNotebookStore) Load(path m.Path) (*m.Notebook, error) {
	codec, err := s.codecFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read notebook: %w", err)
	}

	nb, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	nb.Origin = path

	if info, err := os.Stat(string(path)); err == nil && info.Mode().Perm()&0o200 == 0 {
		nb.ReadOnly = true
	}

	return nb, nil
}

// Save encodes the notebook and writes it to path. The target extension
// selects the codec, so saving under a new extension converts the format.
// The file is written to a temporary sibling and renamed into place, so a
// failed save never truncates the original.
func (s *LocalNotebookStore) Save(path m.Path, nb *m.Notebook) error {
	codec, err := s.codecFor(path)
	if err != nil {
		return err
	}

	data, err := codec.Encode(nb)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	dir := filepath.Dir(string(path))

	tmp, err := os.CreateTemp(dir, filepath.Base(string(path))+".tmp*")
	if err != nil {
		return fmt.Errorf("write notebook: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("write notebook: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("write notebook: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("write notebook: %w", err)
	}

	if err := os.Rename(tmp.Name(), string(path)); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("write notebook: %w", err)
	}

	return nil
}

func (s *LocalNotebookStore) codecFor(path m.Path) (Codec, error) {
	codec, ok := s.registry.Lookup(path)
	if !ok {
		exts := s.registry.Extensions()
		sort.Strings(exts)

		return nil, fmt.Errorf("no codec for %s (supported: %s)", path, strings.Join(exts, ", "))
	}

	return codec, nil
}
