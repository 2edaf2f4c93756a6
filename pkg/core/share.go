package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hivedrive/hivedrive/pkg/model"
	"github.com/hivedrive/hivedrive/pkg/store"
)

// ShareFileParams describes a per-file grant.
type ShareFileParams struct {
	FileID         string
	ParentFolderID string
	Grantee        string
	SharePassword  string
	Permission     model.Permission
	Now            time.Time
}

// ShareFile grants Grantee access to a single file. Per-file sharing is the
// strategy of ordinary subtrees, so the anchor of the file's tree must be a
// Private folder. The grant is recorded against the tree owner regardless
// of who the (possibly delegated) caller is.
func (e *Engine) ShareFile(_ context.Context, caller string, p ShareFileParams) error {
	if caller == "" || p.FileID == "" || p.ParentFolderID == "" || p.Grantee == "" {
		return store.IDIsRequired
	}
	return e.kv.Update(func(tx store.Txn) error {
		if _, err := store.GetFile(tx, p.FileID); err != nil {
			return err
		}

		rt, err := resolveRoot(tx, p.ParentFolderID)
		if err != nil {
			return err
		}
		if err := verifyAccessible(tx, rt, caller, rt.anchor); err != nil {
			return err
		}

		anchor, err := anchorNode(tx, rt)
		if err != nil {
			return err
		}
		if err := validateFolderKind(anchor, model.KindPrivate); err != nil {
			return err
		}

		key, err := shareResource(tx, rt.owner(), p.FileID, p.Grantee,
			p.SharePassword, p.Permission, model.ResourceFile, p.Now)
		if err != nil {
			return err
		}
		e.l.Info("file shared",
			zap.String("doc", key.String()),
			zap.Uint8("permission", uint8(p.Permission)),
		)
		return nil
	})
}

// ShareFolderParams describes a whole-subtree grant.
type ShareFolderParams struct {
	FolderID      string
	Grantee       string
	SharePassword string
	Permission    model.Permission
	Now           time.Time
}

// ShareFolder grants Grantee access to a dedicated shared subtree as a
// unit. Only a folder classified as a shared root can be shared this way;
// arbitrary interior folders cannot.
func (e *Engine) ShareFolder(_ context.Context, caller string, p ShareFolderParams) error {
	if caller == "" || p.FolderID == "" || p.Grantee == "" {
		return store.IDIsRequired
	}
	return e.kv.Update(func(tx store.Txn) error {
		node, err := store.GetFolder(tx, p.FolderID)
		if err != nil {
			return err
		}
		if err := validateFolderKind(node, model.KindSharedRoot); err != nil {
			return err
		}

		rt, err := resolveRoot(tx, p.FolderID)
		if err != nil {
			return err
		}
		if err := verifyAccessible(tx, rt, caller, rt.anchor); err != nil {
			return err
		}

		key, err := shareResource(tx, rt.owner(), p.FolderID, p.Grantee,
			p.SharePassword, p.Permission, model.ResourceFolder, p.Now)
		if err != nil {
			return err
		}
		e.l.Info("folder shared",
			zap.String("doc", key.String()),
			zap.Uint8("permission", uint8(p.Permission)),
		)
		return nil
	})
}

// SharedDoc pairs a grant with its derived key.
type SharedDoc struct {
	Key string
	Doc model.ShareDoc
}

// ListShared returns every grant recorded for a grantee, sorted by key. A
// key indexed without a doc is skipped with a warning; with no revoke path
// it only arises from outside interference with the store.
func (e *Engine) ListShared(_ context.Context, grantee string) ([]SharedDoc, error) {
	if grantee == "" {
		return nil, store.IDIsRequired
	}
	var docs []SharedDoc
	err := e.kv.View(func(tx store.Txn) error {
		idx, err := store.GetShareIndex(tx, grantee)
		if err != nil {
			return err
		}
		for _, key := range idx.Keys() {
			doc, err := store.GetShareDocRaw(tx, key)
			if err == store.ShareNotFound {
				e.l.Warn("indexed grant has no doc", zap.String("doc", key))
				continue
			}
			if err != nil {
				return err
			}
			docs = append(docs, SharedDoc{Key: key, Doc: *doc})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// GetShareDoc fetches a single grant by its derived key.
func (e *Engine) GetShareDoc(_ context.Context, docKey string) (*model.ShareDoc, error) {
	var doc *model.ShareDoc
	err := e.kv.View(func(tx store.Txn) error {
		var err error
		doc, err = store.GetShareDocRaw(tx, docKey)
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// anchorNode loads the anchor folder of a resolved tree. When resolution
// started at the root itself the anchor is the root node already in hand.
func anchorNode(tx store.Txn, rt rootInfo) (*model.FolderNode, error) {
	if rt.anchor == rt.id {
		return rt.node, nil
	}
	return store.GetFolder(tx, rt.anchor)
}
