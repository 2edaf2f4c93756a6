package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hivedrive/hivedrive/pkg/core/status"
	"github.com/hivedrive/hivedrive/pkg/model"
	"github.com/hivedrive/hivedrive/pkg/store"
)

// CreateFolderParams describes a folder creation.
type CreateFolderParams struct {
	ID     string
	Name   string
	Parent string

	// Kind and Password are honored only when Parent is the caller's own
	// root; Password only for shared roots. Anything else is forced unset.
	Kind     model.FolderKind
	Password string

	Now time.Time
}

// CreateFolder inserts a folder beneath a parent on behalf of caller. When
// the parent tree belongs to someone else, the caller needs a Write grant
// on the tree's anchor.
func (e *Engine) CreateFolder(_ context.Context, caller string, p CreateFolderParams) error {
	if caller == "" || p.ID == "" || p.Parent == "" {
		return store.IDIsRequired
	}
	return e.kv.Update(func(tx store.Txn) error {
		if err := checkNamespaceFree(tx, p.ID, false); err != nil {
			return err
		}

		if p.Parent != caller {
			rt, err := resolveRoot(tx, p.Parent)
			if err != nil {
				return err
			}
			if err := verifyAccessible(tx, rt, caller, rt.anchor); err != nil {
				return err
			}
		}

		kind := model.FolderKind(0)
		password := ""
		if p.Parent == caller && p.Kind != 0 {
			kind = p.Kind
			if kind == model.KindSharedRoot {
				password = p.Password
			}
		}

		parent, err := store.GetFolder(tx, p.Parent)
		if err != nil {
			return err
		}
		parent.AddChild(p.ID)
		if err := store.PutFolder(tx, p.Parent, parent); err != nil {
			return err
		}

		node := model.FolderNode{
			Name:      p.Name,
			Parent:    p.Parent,
			Kind:      kind,
			Password:  password,
			CreatedBy: caller,
			CreatedAt: p.Now,
		}
		e.l.Debug("folder created",
			zap.String("folder", p.ID),
			zap.String("parent", p.Parent),
			zap.String("caller", caller),
		)
		return store.PutFolder(tx, p.ID, &node)
	})
}

// RemoveFolder detaches a folder from its parent and deletes the node.
// Owner only: a Write grant does not extend to removal. Descendants are not
// cascaded; they stay fetchable by id but become unreachable from any root.
func (e *Engine) RemoveFolder(_ context.Context, caller, folderID string) error {
	if caller == "" || folderID == "" {
		return store.IDIsRequired
	}
	return e.kv.Update(func(tx store.Txn) error {
		node, err := store.GetFolder(tx, folderID)
		if err != nil {
			return err
		}
		if node.IsRoot(folderID) {
			return status.ErrRootRemoval
		}

		rt, err := resolveRoot(tx, folderID)
		if err != nil {
			return err
		}
		if caller != rt.owner() {
			return status.ErrNotOwner
		}

		parent, err := store.GetFolder(tx, node.Parent)
		if err != nil {
			return err
		}
		if !parent.RemoveChild(folderID) {
			return store.FolderNotFound
		}
		if err := store.PutFolder(tx, node.Parent, parent); err != nil {
			return err
		}
		if len(node.Children) > 0 || len(node.Files) > 0 {
			e.l.Warn("removed folder leaves orphans",
				zap.String("folder", folderID),
				zap.Int("folders", len(node.Children)),
				zap.Int("files", len(node.Files)),
			)
		}
		return store.DeleteFolder(tx, folderID)
	})
}

// GetFolder fetches a folder node.
func (e *Engine) GetFolder(_ context.Context, id string) (*model.FolderNode, error) {
	var f *model.FolderNode
	err := e.kv.View(func(tx store.Txn) error {
		var err error
		f, err = store.GetFolder(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// checkNamespaceFree rejects ids colliding with the combined namespace of
// accounts, folders and files. File creation tolerates an existing file id:
// that path is an upsert.
func checkNamespaceFree(tx store.Txn, id string, allowFile bool) error {
	if _, err := store.GetUser(tx, id); err == nil {
		return store.IDAlreadyExists
	} else if err != store.UserNotFound {
		return err
	}
	if _, err := store.GetFolder(tx, id); err == nil {
		return store.IDAlreadyExists
	} else if err != store.FolderNotFound {
		return err
	}
	if allowFile {
		return nil
	}
	if _, err := store.GetFile(tx, id); err == nil {
		return store.IDAlreadyExists
	} else if err != store.FileNotFound {
		return err
	}
	return nil
}
