// Package badgerdb provides the persistent KV backend on top of badger.
package badgerdb

import (
	"os"
	"sync"

	"github.com/dgraph-io/badger"
	"github.com/pkg/errors"

	"github.com/hivedrive/hivedrive/pkg/store"
)

func makeBadgerDb(dir string) (*badger.DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrapf(err, "mkdir -p %s", dir)
	}
	bopts := badger.DefaultOptions
	bopts.Dir = dir
	bopts.ValueDir = dir

	return badger.Open(bopts)
}

func rewriteBadgerError(err error) error {
	switch err {
	case badger.ErrKeyNotFound:
		return store.ErrKeyNotFound
	case badger.ErrEmptyKey:
		return store.IDIsRequired
	default:
		return err
	}
}

// New creates a badger-backed store rooted at baseDir.
func New(baseDir string) *Store {
	if baseDir == "" {
		baseDir = ".hivedrive"
	}
	return &Store{baseDir: baseDir}
}

// Store owns one badger value log holding every table, distinguished by the
// key prefixes in the parent package.
type Store struct {
	baseDir string
	db      *badger.DB
	init    sync.Once
	close   sync.Once
}

func (s *Store) Initialize() error {
	var err error
	s.init.Do(func() {
		var db *badger.DB
		db, err = makeBadgerDb(s.baseDir)
		if err != nil {
			return
		}
		s.db = db
	})
	return err
}

func (s *Store) Close() error {
	var err error
	s.close.Do(func() {
		if s.db != nil {
			err = s.db.Close()
			if err == nil {
				s.db = nil
			}
		}
	})
	return err
}

func (s *Store) View(fn func(tx store.Txn) error) error {
	if s.db == nil {
		return store.ErrNotInitialized
	}
	return s.db.View(func(btx *badger.Txn) error {
		return fn(&txn{b: btx, readOnly: true})
	})
}

func (s *Store) Update(fn func(tx store.Txn) error) error {
	if s.db == nil {
		return store.ErrNotInitialized
	}
	return s.db.Update(func(btx *badger.Txn) error {
		return fn(&txn{b: btx})
	})
}

type txn struct {
	b        *badger.Txn
	readOnly bool
}

func (t *txn) Get(key []byte) ([]byte, error) {
	item, err := t.b.Get(key)
	if err != nil {
		return nil, rewriteBadgerError(err)
	}
	data, err := item.Value()
	if err != nil {
		return nil, rewriteBadgerError(err)
	}
	return data, nil
}

func (t *txn) Set(key, value []byte) error {
	if t.readOnly {
		return store.ErrReadOnlyTxn
	}
	return rewriteBadgerError(t.b.Set(key, value))
}

func (t *txn) Delete(key []byte) error {
	if t.readOnly {
		return store.ErrReadOnlyTxn
	}
	return rewriteBadgerError(t.b.Delete(key))
}
