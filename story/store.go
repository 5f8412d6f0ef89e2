package story

import (
	"errors"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/Afessler1998/arbor"
)

// Store moves serialized story trees between the container and a
// filesystem. The filesystem is abstracted behind afero so callers can
// substitute an in-memory one.
type Store struct {
	fs afero.Fs
}

// NewStore creates a store over the given filesystem, or the OS
// filesystem when fsys is nil.
func NewStore(fsys afero.Fs) *Store {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Store{fs: fsys}
}

// Load reads and deserializes the story at path. A missing file yields an
// empty tree, so a fresh story file can be built up and saved later.
func (s *Store) Load(path string) (*arbor.Tree[Beat], error) {
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return arbor.New[Beat]()
	}
	if err != nil {
		return nil, err
	}
	return arbor.Deserialize[Beat](string(data))
}

// Save serializes the tree and writes it to path verbatim.
func (s *Store) Save(tree *arbor.Tree[Beat], path string) error {
	return afero.WriteFile(s.fs, path, []byte(tree.Serialize()), 0o644)
}
