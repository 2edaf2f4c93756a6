package model

import (
	"encoding/hex"
	"sort"
	"strings"
	"time"

	blake2b "github.com/minio/blake2b-simd"
	"github.com/pkg/errors"
)

// Permission is the access level recorded on a grant.
type Permission uint8

const (
	// PermissionRead allows decrypting and reading the shared resource.
	PermissionRead Permission = 1
	// PermissionWrite additionally allows mutating beneath the resource.
	PermissionWrite Permission = 2
)

// ResourceKind tells what a grant covers.
type ResourceKind uint8

const (
	// ResourceFile grants access to a single file.
	ResourceFile ResourceKind = 1
	// ResourceFolder grants access to a shared-root subtree as a unit.
	ResourceFolder ResourceKind = 2
)

// ShareDoc is a capability grant from an owner to a grantee over one
// resource. Grants are upserted, never revoked.
type ShareDoc struct {
	ResourceID    string       `json:"resourceId" yaml:"resourceId"`
	SharePassword string       `json:"sharePassword,omitempty" yaml:"sharePassword,omitempty"`
	Permission    Permission   `json:"permission" yaml:"permission"`
	CreatedAt     time.Time    `json:"createdAt" yaml:"createdAt"`
	Kind          ResourceKind `json:"resourceKind" yaml:"resourceKind"`
	_             struct{}
}

const shareKeySep = "_"

// ShareKey is the composite identity of a grant.
type ShareKey struct {
	Owner    string
	Grantee  string
	Resource string
}

// String preserves the historical {owner}_{grantee}_{resource} derivation of
// grant keys, kept byte-for-byte for compatibility with existing state.
func (k ShareKey) String() string {
	return strings.Join([]string{k.Owner, k.Grantee, k.Resource}, shareKeySep)
}

// ParseShareKey splits a derived grant key back into its components. Ids
// containing the separator make the split ambiguous, so parsed keys are for
// display only; lookups always use the full derived string.
func ParseShareKey(s string) (ShareKey, error) {
	parts := strings.SplitN(s, shareKeySep, 3)
	if len(parts) != 3 {
		return ShareKey{}, errors.Errorf("malformed share key %q", s)
	}
	return ShareKey{Owner: parts[0], Grantee: parts[1], Resource: parts[2]}, nil
}

// OwnerPartition returns a stable one-way hash of an owner id, used to
// partition grantee indexes so storage locality does not depend on the raw
// id.
func OwnerPartition(owner string) string {
	hasher, err := blake2b.New(&blake2b.Config{Size: 32})
	if err != nil {
		panic(err)
	}
	_, _ = hasher.Write([]byte(owner))
	sum := hasher.Sum(nil)
	return hex.EncodeToString(sum[:8])
}

// ShareIndex records, per owner partition, the grant keys a grantee has
// received. It only ever grows: re-sharing a triple leaves a single entry.
type ShareIndex struct {
	Partitions map[string][]string `json:"partitions,omitempty" yaml:"partitions,omitempty"`
	_          struct{}
}

// Insert records a grant key under a partition, reporting whether the index
// changed.
func (i *ShareIndex) Insert(partition, key string) bool {
	for _, k := range i.Partitions[partition] {
		if k == key {
			return false
		}
	}
	if i.Partitions == nil {
		i.Partitions = make(map[string][]string, 1)
	}
	i.Partitions[partition] = append(i.Partitions[partition], key)
	return true
}

// Keys flattens the index into a sorted list of grant keys.
func (i *ShareIndex) Keys() []string {
	var keys []string
	for _, part := range i.Partitions {
		keys = append(keys, part...)
	}
	sort.Strings(keys)
	return keys
}

// Len counts recorded grant keys across all partitions.
func (i *ShareIndex) Len() int {
	n := 0
	for _, part := range i.Partitions {
		n += len(part)
	}
	return n
}
