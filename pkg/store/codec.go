package store

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/hivedrive/hivedrive/pkg/model"
)

// Typed table accessors. Each rewrites the backend's not-found condition
// into the table's own error constant, so callers never see raw keys.

func getRecord(tx Txn, key []byte, notFound error, out interface{}) error {
	data, err := tx.Get(key)
	if err == ErrKeyNotFound {
		return notFound
	}
	if err != nil {
		return err
	}
	if e := jsoniter.Unmarshal(data, out); e != nil {
		return errors.Wrapf(e, "decode record %q", string(key))
	}
	return nil
}

func putRecord(tx Txn, key []byte, in interface{}) error {
	data, err := jsoniter.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "encode record %q", string(key))
	}
	return tx.Set(key, data)
}

// GetUser fetches a registration record.
func GetUser(tx Txn, id string) (*model.UserRecord, error) {
	if id == "" {
		return nil, IDIsRequired
	}
	var u model.UserRecord
	if err := getRecord(tx, UserKey(id), UserNotFound, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// PutUser upserts a registration record.
func PutUser(tx Txn, id string, u *model.UserRecord) error {
	if id == "" {
		return IDIsRequired
	}
	return putRecord(tx, UserKey(id), u)
}

// GetFolder fetches a folder node.
func GetFolder(tx Txn, id string) (*model.FolderNode, error) {
	if id == "" {
		return nil, IDIsRequired
	}
	var f model.FolderNode
	if err := getRecord(tx, FolderKey(id), FolderNotFound, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// PutFolder upserts a folder node.
func PutFolder(tx Txn, id string, f *model.FolderNode) error {
	if id == "" {
		return IDIsRequired
	}
	return putRecord(tx, FolderKey(id), f)
}

// DeleteFolder removes a folder node.
func DeleteFolder(tx Txn, id string) error {
	return tx.Delete(FolderKey(id))
}

// GetFile fetches a file record.
func GetFile(tx Txn, id string) (*model.FileRecord, error) {
	if id == "" {
		return nil, IDIsRequired
	}
	var f model.FileRecord
	if err := getRecord(tx, FileKey(id), FileNotFound, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// PutFile upserts a file record.
func PutFile(tx Txn, id string, f *model.FileRecord) error {
	if id == "" {
		return IDIsRequired
	}
	return putRecord(tx, FileKey(id), f)
}

// DeleteFile removes a file record.
func DeleteFile(tx Txn, id string) error {
	return tx.Delete(FileKey(id))
}

// GetShareDoc fetches a grant by composite key.
func GetShareDoc(tx Txn, k model.ShareKey) (*model.ShareDoc, error) {
	return GetShareDocRaw(tx, k.String())
}

// GetShareDocRaw fetches a grant by an already-derived key string.
func GetShareDocRaw(tx Txn, derived string) (*model.ShareDoc, error) {
	if derived == "" {
		return nil, IDIsRequired
	}
	var d model.ShareDoc
	if err := getRecord(tx, ShareDocKeyRaw(derived), ShareNotFound, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// PutShareDoc upserts a grant.
func PutShareDoc(tx Txn, k model.ShareKey, d *model.ShareDoc) error {
	return putRecord(tx, ShareDocKey(k), d)
}

// GetShareIndex fetches a grantee's received-grants index. An absent index
// is an empty one, not an error: the partition is created on first share.
func GetShareIndex(tx Txn, grantee string) (*model.ShareIndex, error) {
	if grantee == "" {
		return nil, IDIsRequired
	}
	var idx model.ShareIndex
	err := getRecord(tx, ShareIndexKey(grantee), ErrKeyNotFound, &idx)
	if err == ErrKeyNotFound {
		return &model.ShareIndex{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &idx, nil
}

// PutShareIndex upserts a grantee's received-grants index.
func PutShareIndex(tx Txn, grantee string, idx *model.ShareIndex) error {
	if grantee == "" {
		return IDIsRequired
	}
	return putRecord(tx, ShareIndexKey(grantee), idx)
}
