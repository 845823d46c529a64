// Package storage persists each entity collection as a single JSON array
// document on disk. Every mutation loads the whole document, changes the
// in-memory slice and rewrites the whole document; a per-collection mutex
// serializes writers so racing requests cannot clobber each other.
package storage

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/util/common"

	"github.com/goccy/go-json"
)

// Collection document names, one JSON file each under the data folder.
const (
	UsersCollection    = "usuarios"
	BooksCollection    = "livros"
	LoansCollection    = "emprestimos"
	MessagesCollection = "formularios"
)

var store *Store

// Store manages the JSON collection documents under a single directory.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Init creates the data directory and sets the package-level store.
func Init(dir string) error {
	s, err := NewStore(dir)
	if err != nil {
		return err
	}
	store = s
	return nil
}

// GetStore returns the package-level store. Init must run first.
func GetStore() *Store {
	return store
}

// NewStore creates a store rooted at dir, creating dir if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, common.NewErrorf("create data folder %s: %v", dir, err)
	}
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Dir returns the directory holding the collection documents.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// lock returns the mutex guarding one collection document.
func (s *Store) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = new(sync.Mutex)
		s.locks[collection] = l
	}
	return l
}

// Load returns every record of a collection, materializing an empty
// document if none exists yet.
func Load[T any](s *Store, collection string) ([]T, error) {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()
	return load[T](s, collection)
}

// Save replaces the full contents of a collection document.
func Save[T any](s *Store, collection string, records []T) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()
	return save(s, collection, records)
}

// Update runs one load-mutate-save cycle under the collection lock. The
// mutate callback returns the records to persist.
func Update[T any](s *Store, collection string, mutate func([]T) ([]T, error)) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	records, err := load[T](s, collection)
	if err != nil {
		return err
	}
	records, err = mutate(records)
	if err != nil {
		return err
	}
	return save(s, collection, records)
}

func load[T any](s *Store, collection string) ([]T, error) {
	path := s.path(collection)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := save(s, collection, []T{}); err != nil {
			return nil, err
		}
		return []T{}, nil
	} else if err != nil {
		return nil, common.NewErrorf("read collection %s: %v", collection, err)
	}

	records := []T{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, common.NewErrorf("parse collection %s: %v", collection, err)
	}
	return records, nil
}

// save writes to a temp file in the same directory and renames it over the
// document, so readers never observe a half-written file.
func save[T any](s *Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return common.NewErrorf("encode collection %s: %v", collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+".*.tmp")
	if err != nil {
		return common.NewErrorf("write collection %s: %v", collection, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return common.NewErrorf("write collection %s: %v", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return common.NewErrorf("write collection %s: %v", collection, err)
	}
	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return common.NewErrorf("replace collection %s: %v", collection, err)
	}
	return nil
}
