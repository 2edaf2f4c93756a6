package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hivedrive/hivedrive/pkg/model"
	"github.com/hivedrive/hivedrive/pkg/store/memory"
)

func testEngine() *Engine {
	return New(memory.New())
}

func ts(n int64) time.Time {
	return time.Unix(n, 0).UTC()
}

func mustRegister(t *testing.T, e *Engine, account string) {
	t.Helper()
	require.NoError(t, e.Register(context.Background(), account, "pk-"+account, "tok-"+account, ts(1)))
}

func mustCreateFolder(t *testing.T, e *Engine, caller string, p CreateFolderParams) {
	t.Helper()
	require.NoError(t, e.CreateFolder(context.Background(), caller, p))
}

func mustCreateFile(t *testing.T, e *Engine, caller string, p CreateFileParams) {
	t.Helper()
	require.NoError(t, e.CreateFile(context.Background(), caller, p))
}

// privateTree registers owner and builds owner -> f1(kind=Private) -> f2.
func privateTree(t *testing.T, e *Engine, owner string) {
	t.Helper()
	mustRegister(t, e, owner)
	mustCreateFolder(t, e, owner, CreateFolderParams{
		ID: "f1", Name: "documents", Parent: owner,
		Kind: model.KindPrivate, Now: ts(10),
	})
	mustCreateFolder(t, e, owner, CreateFolderParams{
		ID: "f2", Name: "projects", Parent: "f1", Now: ts(11),
	})
}
