package core

import (
	"context"

	"github.com/hivedrive/hivedrive/pkg/core/status"
	"github.com/hivedrive/hivedrive/pkg/model"
	"github.com/hivedrive/hivedrive/pkg/store"
)

// rootInfo is the outcome of an ancestor walk: the self-looped account root,
// its id, and the anchor. The anchor is the first-level folder the walk
// passed through on its way to the root, or the root id when the walk
// started at the root itself. Grants and folder classification attach to
// anchors, never to interior nodes.
type rootInfo struct {
	node   *model.FolderNode
	id     string
	anchor string
}

// owner is the account that created the tree: the root's parent field,
// which for a self-looped root equals its own id.
func (r rootInfo) owner() string {
	return r.node.Parent
}

// resolveRoot follows parent references from folderID until it reaches a
// self-looped root. The walk is capped at maxTreeDepth steps; a dangling
// parent reference means the subtree is orphaned and no root is reachable.
func resolveRoot(tx store.Txn, folderID string) (rootInfo, error) {
	node, err := store.GetFolder(tx, folderID)
	if err != nil {
		return rootInfo{}, err
	}

	cur := folderID
	anchor := folderID
	for depth := 0; depth < maxTreeDepth; depth++ {
		if node.IsRoot(cur) {
			return rootInfo{node: node, id: cur, anchor: anchor}, nil
		}
		parent, err := store.GetFolder(tx, node.Parent)
		if err == store.FolderNotFound {
			return rootInfo{}, status.ErrRootNotFound
		}
		if err != nil {
			return rootInfo{}, err
		}
		anchor = cur
		cur = node.Parent
		node = parent
	}
	return rootInfo{}, status.ErrDepthExceeded
}

// GetRoot resolves the account root of the tree containing folderID and
// returns it with its id.
func (e *Engine) GetRoot(_ context.Context, folderID string) (*model.FolderNode, string, error) {
	var (
		node   *model.FolderNode
		rootID string
	)
	err := e.kv.View(func(tx store.Txn) error {
		rt, err := resolveRoot(tx, folderID)
		if err != nil {
			return err
		}
		node, rootID = rt.node, rt.id
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return node, rootID, nil
}
