package core

import (
	"time"

	"github.com/hivedrive/hivedrive/pkg/core/status"
	"github.com/hivedrive/hivedrive/pkg/model"
	"github.com/hivedrive/hivedrive/pkg/store"
)

// verifyAccessible gates a mutation beneath rt: the tree owner always
// passes, anyone else needs a Write grant from the owner on one of the
// candidate targets. A grant found with Read-only permission outranks "no
// grant at all" in the reported failure.
func verifyAccessible(tx store.Txn, rt rootInfo, caller string, targets ...string) error {
	if caller == rt.owner() {
		return nil
	}

	failure := error(nil)
	for _, target := range targets {
		doc, err := store.GetShareDoc(tx, model.ShareKey{
			Owner:    rt.owner(),
			Grantee:  caller,
			Resource: target,
		})
		if err == store.ShareNotFound {
			continue
		}
		if err != nil {
			return err
		}
		if doc.Permission == model.PermissionWrite {
			return nil
		}
		failure = status.ErrInsufficientPermission
	}
	if failure == nil {
		failure = status.ErrNotShared
	}
	return failure
}

// validateFolderKind requires a folder to carry the expected classification.
// An unclassified folder never matches.
func validateFolderKind(node *model.FolderNode, want model.FolderKind) error {
	if node.Kind != want {
		return status.ErrWrongFolderKind
	}
	return nil
}

// shareResource upserts a grant and records its key in the grantee's index,
// creating the index partition on first use. Re-sharing the same triple
// overwrites the grant and leaves a single index entry.
func shareResource(tx store.Txn, owner, resourceID, grantee, password string,
	perm model.Permission, kind model.ResourceKind, now time.Time) (model.ShareKey, error) {

	key := model.ShareKey{Owner: owner, Grantee: grantee, Resource: resourceID}
	if owner == grantee {
		return key, status.ErrSelfShare
	}

	doc := model.ShareDoc{
		ResourceID:    resourceID,
		SharePassword: password,
		Permission:    perm,
		CreatedAt:     now,
		Kind:          kind,
	}
	if err := store.PutShareDoc(tx, key, &doc); err != nil {
		return key, err
	}

	idx, err := store.GetShareIndex(tx, grantee)
	if err != nil {
		return key, err
	}
	if idx.Insert(model.OwnerPartition(owner), key.String()) {
		if err := store.PutShareIndex(tx, grantee, idx); err != nil {
			return key, err
		}
	}
	return key, nil
}
