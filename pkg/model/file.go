package model

import "time"

// FileRecord is file metadata only. Content lives in an external
// content-addressed store and is referenced by CID; the engine never reads
// or writes content bytes.
type FileRecord struct {
	CID               string `json:"cid" yaml:"cid"`
	Name              string `json:"name" yaml:"name"`
	EncryptedPassword string `json:"encryptedPassword,omitempty" yaml:"encryptedPassword,omitempty"`
	FileType          string `json:"fileType" yaml:"fileType"`

	CreatedAt  time.Time `json:"createdAt" yaml:"createdAt"`
	CreatedBy  string    `json:"createdBy" yaml:"createdBy"`
	LastUpdate time.Time `json:"lastUpdate" yaml:"lastUpdate"`
	UpdatedBy  string    `json:"updatedBy" yaml:"updatedBy"`
	_          struct{}
}
