package store

type errorString string

func (e errorString) Error() string {
	return string(e)
}

const (
	// IDIsRequired is returned whenever a record id is expected but empty
	IDIsRequired errorString = "id is required"

	// ErrKeyNotFound is returned when a key has no value in the store
	ErrKeyNotFound errorString = "key not found"

	// ErrReadOnlyTxn is returned on writes inside a View transaction
	ErrReadOnlyTxn errorString = "read-only transaction"

	// ErrNotInitialized is returned when a backend is used before Initialize
	ErrNotInitialized errorString = "store is not initialized"

	// IDAlreadyExists is returned when an id collides with the existing
	// account/folder/file namespace
	IDAlreadyExists errorString = "id already exists"

	// UserNotFound when an account registration is not found
	UserNotFound errorString = "user not found"

	// FolderNotFound when a folder node is not found
	FolderNotFound errorString = "folder not found"

	// FileNotFound when a file record is not found
	FileNotFound errorString = "file not found"

	// ShareNotFound when a grant is not found
	ShareNotFound errorString = "share doc not found"
)

// KV is the transactional key-value contract every backend implements.
// The engine maps one call to exactly one transaction, which is how
// mutations stay all-or-nothing: a failed transaction commits none of its
// writes.
type KV interface {
	// View runs fn in a read-only transaction.
	View(fn func(tx Txn) error) error

	// Update runs fn in a read-write transaction. All writes are discarded
	// when fn returns an error.
	Update(fn func(tx Txn) error) error

	Close() error
}

// Txn is a flat keyed view of the store within one transaction.
type Txn interface {
	// Get returns the value for a key, or ErrKeyNotFound.
	Get(key []byte) ([]byte, error)

	// Set binds a value to a key.
	Set(key, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key []byte) error
}
