// Package memory provides a KV backend held entirely in process memory.
// It backs the engine test suite and embedders that want throwaway state.
package memory

import (
	"sync"

	"github.com/hivedrive/hivedrive/pkg/store"
)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Store keeps every record in a single map. Writes inside an Update are
// buffered and applied only when the transaction function succeeds, so a
// failed call leaves the map untouched.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func (s *Store) View(fn func(tx store.Txn) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&txn{data: s.data, readOnly: true})
}

func (s *Store) Update(fn func(tx store.Txn) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &txn{data: s.data, pending: make(map[string][]byte)}
	if err := fn(t); err != nil {
		return err
	}
	for k, v := range t.pending {
		if v == nil {
			delete(s.data, k)
			continue
		}
		s.data[k] = v
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}

// txn overlays pending writes on the committed map. A nil pending value
// marks a deletion.
type txn struct {
	data     map[string][]byte
	pending  map[string][]byte
	readOnly bool
}

func (t *txn) Get(key []byte) ([]byte, error) {
	k := string(key)
	if len(k) == 0 {
		return nil, store.IDIsRequired
	}
	if v, ok := t.pending[k]; ok {
		if v == nil {
			return nil, store.ErrKeyNotFound
		}
		return append([]byte(nil), v...), nil
	}
	v, ok := t.data[k]
	if !ok {
		return nil, store.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (t *txn) Set(key, value []byte) error {
	if t.readOnly {
		return store.ErrReadOnlyTxn
	}
	if len(key) == 0 {
		return store.IDIsRequired
	}
	t.pending[string(key)] = append([]byte(nil), value...)
	return nil
}

func (t *txn) Delete(key []byte) error {
	if t.readOnly {
		return store.ErrReadOnlyTxn
	}
	if len(key) == 0 {
		return store.IDIsRequired
	}
	t.pending[string(key)] = nil
	return nil
}
