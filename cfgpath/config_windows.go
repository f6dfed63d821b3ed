//go:build windows
// +build windows

package cfgpath

import (
	"os"
	"path/filepath"
)

func cacheFolder() string {
	if v := os.Getenv("LOCALAPPDATA"); v != "" {
		return v
	}
	return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local")
}
