//go:build !windows && !darwin
// +build !windows,!darwin

package cfgpath

import (
	"os"
	"path/filepath"
)

// https://specifications.freedesktop.org/basedir-spec/basedir-spec-latest.html

func cacheFolder() string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	return filepath.Join(os.Getenv("HOME"), ".cache")
}
