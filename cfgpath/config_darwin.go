//go:build darwin
// +build darwin

package cfgpath

import (
	"os"
	"path/filepath"
)

func cacheFolder() string {
	return filepath.Join(os.Getenv("HOME"), "Library", "Caches")
}
