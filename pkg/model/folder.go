package model

import "time"

// FolderKind classifies a first-level folder beneath an account root.
// The zero value means the folder is unclassified.
type FolderKind uint8

const (
	// KindPrivate marks an ordinary subtree: files inside it are shared one
	// at a time.
	KindPrivate FolderKind = 1

	// KindSharedRoot marks a dedicated shared subtree: the folder is shared
	// as a unit and may carry a folder password.
	KindSharedRoot FolderKind = 2
)

// FolderNode is a node in an account's folder tree. An account root is the
// node whose id equals its Parent (the self-loop sentinel); every other node
// is listed in exactly one parent's Children.
type FolderNode struct {
	Name     string   `json:"name" yaml:"name"`
	Parent   string   `json:"parent" yaml:"parent"`
	Children []string `json:"children,omitempty" yaml:"children,omitempty"`
	Files    []string `json:"files,omitempty" yaml:"files,omitempty"`

	// Kind and Password are only ever set on first-level folders beneath a
	// root; Password only when Kind is KindSharedRoot.
	Kind     FolderKind `json:"folderKind,omitempty" yaml:"folderKind,omitempty"`
	Password string     `json:"folderPassword,omitempty" yaml:"folderPassword,omitempty"`

	CreatedBy string    `json:"createdBy" yaml:"createdBy"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	_         struct{}
}

// IsRoot reports whether the node keyed by id is a self-looped tree root.
func (f *FolderNode) IsRoot(id string) bool {
	return f.Parent == id
}

// AddChild appends a child id. The caller guarantees uniqueness: folder ids
// are globally unique, so a new folder cannot already be listed.
func (f *FolderNode) AddChild(id string) {
	f.Children = append(f.Children, id)
}

// RemoveChild detaches a child id, reporting whether it was listed.
func (f *FolderNode) RemoveChild(id string) bool {
	for i, c := range f.Children {
		if c == id {
			f.Children = append(f.Children[:i], f.Children[i+1:]...)
			return true
		}
	}
	return false
}

// AddFile lists a file id, reporting whether the listing changed. Re-adding
// a listed file is a no-op.
func (f *FolderNode) AddFile(id string) bool {
	for _, x := range f.Files {
		if x == id {
			return false
		}
	}
	f.Files = append(f.Files, id)
	return true
}

// RemoveFile delists a file id, reporting whether it was listed.
func (f *FolderNode) RemoveFile(id string) bool {
	for i, x := range f.Files {
		if x == id {
			f.Files = append(f.Files[:i], f.Files[i+1:]...)
			return true
		}
	}
	return false
}
