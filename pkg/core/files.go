package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hivedrive/hivedrive/pkg/core/status"
	"github.com/hivedrive/hivedrive/pkg/model"
	"github.com/hivedrive/hivedrive/pkg/store"
)

// CreateFileParams describes a file creation or delegated rewrite.
type CreateFileParams struct {
	FolderID          string
	FileID            string
	CID               string
	Name              string
	EncryptedPassword string
	FileType          string
	Now               time.Time
}

// CreateFile registers file metadata inside a folder. The caller must own
// the tree or hold a Write grant on its anchor or on the file id itself
// (per-file capability). An existing file id is upserted: creation stamps
// are preserved, update stamps advance, and the id joins the folder listing
// only if absent. A file id listed in another folder stays listed there,
// leaving the record reachable from both.
func (e *Engine) CreateFile(_ context.Context, caller string, p CreateFileParams) error {
	if caller == "" || p.FolderID == "" || p.FileID == "" {
		return store.IDIsRequired
	}
	return e.kv.Update(func(tx store.Txn) error {
		if err := checkNamespaceFree(tx, p.FileID, true); err != nil {
			return err
		}

		rt, err := resolveRoot(tx, p.FolderID)
		if err != nil {
			return err
		}
		if err := verifyAccessible(tx, rt, caller, rt.anchor, p.FileID); err != nil {
			return err
		}

		folder, err := store.GetFolder(tx, p.FolderID)
		if err != nil {
			return err
		}
		if folder.AddFile(p.FileID) {
			if err := store.PutFolder(tx, p.FolderID, folder); err != nil {
				return err
			}
		}

		rec, err := store.GetFile(tx, p.FileID)
		if err == store.FileNotFound {
			rec = &model.FileRecord{
				CreatedAt: p.Now,
				CreatedBy: caller,
			}
		} else if err != nil {
			return err
		}
		rec.CID = p.CID
		rec.Name = p.Name
		rec.EncryptedPassword = p.EncryptedPassword
		rec.FileType = p.FileType
		rec.LastUpdate = p.Now
		rec.UpdatedBy = caller

		e.l.Debug("file recorded",
			zap.String("file", p.FileID),
			zap.String("folder", p.FolderID),
			zap.String("caller", caller),
		)
		return store.PutFile(tx, p.FileID, rec)
	})
}

// RemoveFile delists a file from a folder and deletes its record. Owner
// only: a Write grant does not extend to removal. A file id not listed in
// the folder is a hard failure, never a silent skip.
func (e *Engine) RemoveFile(_ context.Context, caller, folderID, fileID string) error {
	if caller == "" || folderID == "" || fileID == "" {
		return store.IDIsRequired
	}
	return e.kv.Update(func(tx store.Txn) error {
		rt, err := resolveRoot(tx, folderID)
		if err != nil {
			return err
		}
		if caller != rt.owner() {
			return status.ErrNotOwner
		}

		folder, err := store.GetFolder(tx, folderID)
		if err != nil {
			return err
		}
		if !folder.RemoveFile(fileID) {
			return store.FileNotFound
		}
		if err := store.PutFolder(tx, folderID, folder); err != nil {
			return err
		}
		return store.DeleteFile(tx, fileID)
	})
}

// GetFile fetches a file record.
func (e *Engine) GetFile(_ context.Context, id string) (*model.FileRecord, error) {
	var f *model.FileRecord
	err := e.kv.View(func(tx store.Txn) error {
		var err error
		f, err = store.GetFile(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}
