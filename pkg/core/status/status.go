// Package status exports the access-control and traversal errors produced
// by the core engine. Not-found and id-collision conditions come from the
// store package instead, next to the tables that detect them.
package status

import "errors"

var (
	// ErrNotOwner signals a removal attempted by anyone but the tree owner
	ErrNotOwner = errors.New("caller does not own this tree")

	// ErrNotShared signals a mutation by a caller holding no grant on the target
	ErrNotShared = errors.New("resource was not shared with caller")

	// ErrInsufficientPermission signals a mutation backed only by a read grant
	ErrInsufficientPermission = errors.New("share grant does not permit writes")

	// ErrWrongFolderKind signals a share against a subtree of the wrong classification
	ErrWrongFolderKind = errors.New("folder kind does not allow this share")

	// ErrSelfShare signals an owner sharing a resource with themselves
	ErrSelfShare = errors.New("cannot share a resource with its owner")

	// ErrDepthExceeded signals an ancestor walk that ran past the depth cap
	ErrDepthExceeded = errors.New("parent chain exceeds maximum depth")

	// ErrRootNotFound signals a parent chain that ends in a dangling reference
	// instead of a self-looped root (an orphaned subtree)
	ErrRootNotFound = errors.New("no root reachable from this folder")

	// ErrRootRemoval signals an attempt to remove an account root itself
	ErrRootRemoval = errors.New("account root cannot be removed")
)
