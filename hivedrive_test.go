package hivedrive

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hivedrive/hivedrive/pkg/core"
	"github.com/hivedrive/hivedrive/pkg/core/status"
	"github.com/hivedrive/hivedrive/pkg/model"
)

func memConfig() *Config {
	return &Config{
		Store:    StoreConfig{Backend: BackendMemory},
		LogLevel: "none",
	}
}

func TestRuntimeEndToEnd(t *testing.T) {
	rt, err := New(memConfig())
	require.NoError(t, err)
	defer func() { require.NoError(t, rt.Close()) }()

	ctx := context.Background()
	e := rt.Engine()
	now := time.Unix(1500, 0)

	require.NoError(t, e.Register(ctx, "alice", "pk-alice", "tok-alice", now))
	require.NoError(t, e.Register(ctx, "bob", "pk-bob", "tok-bob", now))

	require.NoError(t, e.CreateFolder(ctx, "alice", core.CreateFolderParams{
		ID: "f1", Name: "docs", Parent: "alice", Kind: model.KindPrivate, Now: now,
	}))
	require.NoError(t, e.CreateFile(ctx, "alice", core.CreateFileParams{
		FolderID: "f1", FileID: "file1", CID: "cid-1", Name: "notes.txt", Now: now,
	}))

	// bob cannot touch the tree before being granted anything
	err = e.CreateFile(ctx, "bob", core.CreateFileParams{
		FolderID: "f1", FileID: "file1", CID: "cid-2", Name: "notes.txt", Now: now,
	})
	require.Equal(t, status.ErrNotShared, err)

	require.NoError(t, e.ShareFile(ctx, "alice", core.ShareFileParams{
		FileID: "file1", ParentFolderID: "f1", Grantee: "bob",
		SharePassword: "sp", Permission: model.PermissionWrite, Now: now,
	}))

	docs, err := e.ListShared(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "alice_bob_file1", docs[0].Key)
	assert.Equal(t, model.PermissionWrite, docs[0].Doc.Permission)

	// the write grant on file1 lets bob update its record in place
	later := now.Add(time.Hour)
	require.NoError(t, e.CreateFile(ctx, "bob", core.CreateFileParams{
		FolderID: "f1", FileID: "file1", CID: "cid-2", Name: "notes.txt", Now: later,
	}))
	f, err := e.GetFile(ctx, "file1")
	require.NoError(t, err)
	assert.Equal(t, "cid-2", f.CID)
	assert.Equal(t, "alice", f.CreatedBy)
	assert.Equal(t, "bob", f.UpdatedBy)

	// removal stays with the owner
	err = e.RemoveFile(ctx, "bob", "f1", "file1")
	require.Equal(t, status.ErrNotOwner, err)
	require.NoError(t, e.RemoveFile(ctx, "alice", "f1", "file1"))
}

func TestRuntimeTraced(t *testing.T) {
	tr := mocktracer.New()
	rt, err := New(memConfig(), Tracer(tr))
	require.NoError(t, err)
	defer func() { require.NoError(t, rt.Close()) }()

	require.NoError(t, rt.Engine().Register(context.Background(), "alice", "pk", "tok", time.Unix(1500, 0)))
	require.NotEmpty(t, tr.FinishedSpans())
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	_, err := New(&Config{Store: StoreConfig{Backend: "bolt"}, LogLevel: "none"})
	require.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "hvd-cfg")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "hivedrive.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(
		"store:\n  backend: memory\n  dir: /tmp/meta\nlogLevel: debug\n"), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "/tmp/meta", cfg.Store.Dir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, BackendBadger, cfg.Store.Backend)
	assert.Equal(t, ".hivedrive", cfg.Store.Dir)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/hivedrive.yaml")
	require.Error(t, err)
}
