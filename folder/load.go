package folder

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

const (
	hiddenPrefix = "."
	readBatch    = 64
)

// Load replaces the content of s with the direct children of dir.
//
// A directory that cannot be read yields an empty (or partial) snapshot and
// no error. Errors are only returned when releasing the previous bitmaps or
// rendering a new one fails; entries rendered before the failure stay in s.
func Load(s *Snapshot, dir string, r Renderer) error {
	if err := Reset(s, r); err != nil {
		return fmt.Errorf("release icons: %w", err)
	}
	s.Directory = normalize(dir)

	f, err := os.Open(s.Directory)
	if err != nil {
		log.Debug().Err(err).Str("dir", s.Directory).Msg("[folder] cannot open directory")
		return nil
	}
	defer f.Close()

	for len(s.Entries) < MaxEntries {
		batch, err := f.ReadDir(readBatch)
		for _, d := range batch {
			if len(s.Entries) >= MaxEntries {
				break
			}
			name := d.Name()
			if strings.HasPrefix(name, hiddenPrefix) {
				continue
			}

			full := filepath.Join(s.Directory, name)
			isDir := isDirectory(d, full)
			icon, rerr := r.RenderIcon(full, isDir)
			if rerr != nil {
				return fmt.Errorf("render icon of %s: %w", full, rerr)
			}
			s.Entries = append(s.Entries, Entry{
				Filename: name,
				Title:    Title(name),
				IsDir:    isDir,
				Icon:     icon,
			})
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Debug().Err(err).Str("dir", s.Directory).Msg("[folder] listing stopped early")
			}
			break
		}
	}
	return nil
}

// Title is the display name of a directory entry: its name without the last
// extension, cut to MaxTitle runes.
func Title(name string) string {
	t := strings.TrimSuffix(name, filepath.Ext(name))
	if utf8.RuneCountInString(t) > MaxTitle {
		t = string([]rune(t)[:MaxTitle])
	}
	return t
}

func normalize(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}

// links and junctions are classified by what they point to
func isDirectory(d fs.DirEntry, full string) bool {
	if d.Type()&(fs.ModeSymlink|fs.ModeIrregular) != 0 {
		if fi, err := os.Stat(full); err == nil {
			return fi.IsDir()
		}
	}
	return d.IsDir()
}
