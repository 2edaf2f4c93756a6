// Package store defines the transactional key-value contract the metadata
// engine runs on, the table key derivations, and typed accessors for the
// persisted record types. Backends live in the sub-packages.
package store
