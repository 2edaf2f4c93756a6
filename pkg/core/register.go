package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hivedrive/hivedrive/pkg/model"
	"github.com/hivedrive/hivedrive/pkg/store"
)

// Register records the caller's public key and encrypted token, and creates
// the account's root folder on first registration. Re-registering replaces
// the user record but keeps the existing root, so the tree beneath it
// survives.
func (e *Engine) Register(_ context.Context, caller, publicKey, encryptedToken string, now time.Time) error {
	if caller == "" {
		return store.IDIsRequired
	}
	return e.kv.Update(func(tx store.Txn) error {
		user := model.UserRecord{
			PublicKey:      publicKey,
			EncryptedToken: encryptedToken,
		}
		if err := store.PutUser(tx, caller, &user); err != nil {
			return err
		}

		existing, err := store.GetFolder(tx, caller)
		if err == store.FolderNotFound {
			root := model.FolderNode{
				Name:      "root",
				Parent:    caller,
				CreatedBy: caller,
				CreatedAt: now,
			}
			e.l.Info("account registered", zap.String("account", caller))
			return store.PutFolder(tx, caller, &root)
		}
		if err != nil {
			return err
		}
		if !existing.IsRoot(caller) {
			// the account id is taken by a live folder inside some tree
			return store.IDAlreadyExists
		}
		e.l.Debug("account re-registered", zap.String("account", caller))
		return nil
	})
}

// GetUser fetches a registration record.
func (e *Engine) GetUser(_ context.Context, id string) (*model.UserRecord, error) {
	var u *model.UserRecord
	err := e.kv.View(func(tx store.Txn) error {
		var err error
		u, err = store.GetUser(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}
