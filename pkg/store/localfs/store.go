// Package localfs provides a KV backend keeping one JSON file per key.
// State stays inspectable with standard tools, at the price of best-effort
// durability: a crash in the middle of a commit can leave a partial
// transaction on disk. The execution model is a single serialized writer,
// which the package mutex enforces in process.
package localfs

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/hivedrive/hivedrive/internal/rand"
	"github.com/hivedrive/hivedrive/pkg/store"
)

// Option configures the store.
type Option func(*Store)

// BaseDir sets the directory holding the record files.
func BaseDir(path string) Option {
	return func(s *Store) {
		s.baseDir = path
	}
}

// FileSystem substitutes the backing filesystem, e.g. afero.NewMemMapFs in
// tests.
func FileSystem(afs afero.Fs) Option {
	return func(s *Store) {
		s.fs = afs
	}
}

// New creates a file-per-key store.
func New(opts ...Option) *Store {
	s := &Store{
		baseDir: ".hivedrive",
		fs:      afero.NewOsFs(),
	}
	for _, configure := range opts {
		configure(s)
	}
	return s
}

// Store maps each key to <baseDir>/<hex(key)>.json.
type Store struct {
	mu      sync.Mutex
	baseDir string
	fs      afero.Fs
	once    sync.Once
}

func (s *Store) Initialize() error {
	var err error
	s.once.Do(func() {
		err = s.fs.MkdirAll(s.baseDir, 0700)
	})
	return err
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) View(fn func(tx store.Txn) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&txn{s: s, readOnly: true})
}

func (s *Store) Update(fn func(tx store.Txn) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &txn{s: s, pending: make(map[string][]byte)}
	if err := fn(t); err != nil {
		return err
	}
	for k, v := range t.pending {
		if v == nil {
			if err := s.remove(k); err != nil {
				return err
			}
			continue
		}
		if err := s.write(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) keyPath(k string) string {
	return filepath.Join(s.baseDir, k+".json")
}

func (s *Store) read(k string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.keyPath(k))
	if os.IsNotExist(err) {
		return nil, store.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read record %s", k)
	}
	return data, nil
}

// write replaces a record through a temp file and rename, so a reader never
// observes a half-written record.
func (s *Store) write(k string, data []byte) error {
	tmp := s.keyPath(k + "-" + rand.LetterString(8))
	if err := afero.WriteFile(s.fs, tmp, data, 0600); err != nil {
		return errors.Wrapf(err, "write record %s", k)
	}
	if err := s.fs.Rename(tmp, s.keyPath(k)); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, "replace record %s", k)
	}
	return nil
}

func (s *Store) remove(k string) error {
	if err := s.fs.Remove(s.keyPath(k)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove record %s", k)
	}
	return nil
}

type txn struct {
	s        *Store
	pending  map[string][]byte
	readOnly bool
}

func fileKey(key []byte) string {
	return hex.EncodeToString(key)
}

func (t *txn) Get(key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, store.IDIsRequired
	}
	k := fileKey(key)
	if v, ok := t.pending[k]; ok {
		if v == nil {
			return nil, store.ErrKeyNotFound
		}
		return append([]byte(nil), v...), nil
	}
	return t.s.read(k)
}

func (t *txn) Set(key, value []byte) error {
	if t.readOnly {
		return store.ErrReadOnlyTxn
	}
	if len(key) == 0 {
		return store.IDIsRequired
	}
	t.pending[fileKey(key)] = append([]byte(nil), value...)
	return nil
}

func (t *txn) Delete(key []byte) error {
	if t.readOnly {
		return store.ErrReadOnlyTxn
	}
	if len(key) == 0 {
		return store.IDIsRequired
	}
	t.pending[fileKey(key)] = nil
	return nil
}
