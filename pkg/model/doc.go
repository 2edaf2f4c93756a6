// Package model defines the persisted records of the hivedrive namespace:
// user registrations, folder tree nodes, file metadata and sharing grants.
package model
