package store

import "github.com/hivedrive/hivedrive/pkg/model"

// Table prefixes keep the users, folders, files, grants and grantee index
// partitions disjoint within a single flat keyspace.
var (
	userPref     = [5]byte{'u', 's', 'e', 'r', ':'}
	folderPref   = [5]byte{'f', 'l', 'd', 'r', ':'}
	filePref     = [5]byte{'f', 'i', 'l', 'e', ':'}
	shareDocPref = [6]byte{'s', 'h', 'd', 'o', 'c', ':'}
	shareIdxPref = [6]byte{'s', 'h', 'i', 'd', 'x', ':'}
)

// UserKey keys a registration record by account id.
func UserKey(id string) []byte {
	return append(userPref[:], id...)
}

// FolderKey keys a folder node by its id.
func FolderKey(id string) []byte {
	return append(folderPref[:], id...)
}

// FileKey keys a file record by its id.
func FileKey(id string) []byte {
	return append(filePref[:], id...)
}

// ShareDocKey keys a grant by its derived composite key.
func ShareDocKey(k model.ShareKey) []byte {
	return ShareDocKeyRaw(k.String())
}

// ShareDocKeyRaw keys a grant by an already-derived composite key string.
func ShareDocKeyRaw(derived string) []byte {
	return append(shareDocPref[:], derived...)
}

// ShareIndexKey keys a grantee's received-grants index.
func ShareIndexKey(grantee string) []byte {
	return append(shareIdxPref[:], grantee...)
}
