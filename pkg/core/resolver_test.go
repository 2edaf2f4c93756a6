package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hivedrive/hivedrive/pkg/core/status"
	"github.com/hivedrive/hivedrive/pkg/model"
	"github.com/hivedrive/hivedrive/pkg/store"
)

func TestResolveRootWalksChain(t *testing.T) {
	e := testEngine()
	ctx := context.Background()

	privateTree(t, e, "alice")
	mustCreateFolder(t, e, "alice", CreateFolderParams{
		ID: "f3", Name: "deep", Parent: "f2", Now: ts(12),
	})

	for _, start := range []string{"alice", "f1", "f2", "f3"} {
		root, rootID, err := e.GetRoot(ctx, start)
		require.NoError(t, err, "resolving from %s", start)
		assert.Equal(t, "alice", rootID)
		assert.True(t, root.IsRoot(rootID))
	}
}

func TestResolveRootAnchor(t *testing.T) {
	e := testEngine()

	privateTree(t, e, "alice")

	err := e.kv.View(func(tx store.Txn) error {
		rt, err := resolveRoot(tx, "f2")
		require.NoError(t, err)
		assert.Equal(t, "alice", rt.id)
		assert.Equal(t, "f1", rt.anchor)
		assert.Equal(t, "alice", rt.owner())

		rt, err = resolveRoot(tx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", rt.anchor)
		return nil
	})
	require.NoError(t, err)
}

func TestResolveRootUnknownFolder(t *testing.T) {
	e := testEngine()
	_, _, err := e.GetRoot(context.Background(), "nope")
	require.Equal(t, store.FolderNotFound, err)
}

func TestResolveRootOrphan(t *testing.T) {
	e := testEngine()
	ctx := context.Background()

	privateTree(t, e, "alice")
	require.NoError(t, e.RemoveFolder(ctx, "alice", "f1"))

	// the orphan stays fetchable by id
	orphan, err := e.GetFolder(ctx, "f2")
	require.NoError(t, err)
	assert.Equal(t, "f1", orphan.Parent)

	// but no registered root is reachable from it
	_, _, err = e.GetRoot(ctx, "f2")
	require.Equal(t, status.ErrRootNotFound, err)
}

func TestResolveRootCycle(t *testing.T) {
	e := testEngine()

	// malformed state, planted directly: a <-> b
	err := e.kv.Update(func(tx store.Txn) error {
		if err := store.PutFolder(tx, "a", &model.FolderNode{Name: "a", Parent: "b"}); err != nil {
			return err
		}
		return store.PutFolder(tx, "b", &model.FolderNode{Name: "b", Parent: "a"})
	})
	require.NoError(t, err)

	_, _, err = e.GetRoot(context.Background(), "a")
	require.Equal(t, status.ErrDepthExceeded, err)
}
