// Package folder reads a directory into a bounded, sorted snapshot whose
// entries each own a rendered icon bitmap.
package folder

import "errors"

const (
	// MaxEntries is the number of entries a snapshot holds; further
	// directory entries are silently dropped.
	MaxEntries = 256

	// MaxTitle is the maximum title length, in runes.
	MaxTitle = 242
)

// Bitmap is an opaque handle to a rendered icon, owned by the Renderer that
// created it.
type Bitmap uintptr

// Renderer produces and releases entry icon bitmaps.
type Renderer interface {
	RenderIcon(path string, isDir bool) (Bitmap, error)
	ReleaseIcon(b Bitmap) error
}

type Entry struct {
	Filename string
	Title    string
	IsDir    bool
	Icon     Bitmap
}

// Snapshot is one listing of Directory. Entries are in presentation order
// once Sort has been called.
type Snapshot struct {
	Directory string
	Entries   []Entry
}

// Reset releases every entry bitmap and empties the snapshot. All releases
// are attempted even when some of them fail.
func Reset(s *Snapshot, r Renderer) error {
	var errs []error
	for _, e := range s.Entries {
		if err := r.ReleaseIcon(e.Icon); err != nil {
			errs = append(errs, err)
		}
	}
	clear(s.Entries)
	s.Entries = s.Entries[:0]
	return errors.Join(errs...)
}
