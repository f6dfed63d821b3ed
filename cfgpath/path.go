// Package cfgpath locates the per-user directories of the application.
package cfgpath

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/TrisTech/goupd"
)

const fallbackName = "trayfolder"

// Name is the application directory name, as stamped at build time.
func Name() string {
	if goupd.PROJECT_NAME == "" || goupd.PROJECT_NAME == "unconfigured" {
		return fallbackName
	}
	return goupd.PROJECT_NAME
}

func GetCacheDir() string {
	return filepath.Join(cacheFolder(), Name())
}

// LogFile is the default location of the log file.
func LogFile() string {
	return filepath.Join(GetCacheDir(), Name()+".log")
}

func EnsureDir(c string) error {
	inf, err := os.Stat(c)
	if err != nil && os.IsNotExist(err) {
		err = os.MkdirAll(c, 0755)
		if err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else if !inf.IsDir() {
		return errors.New("error: file exists at directory location")
	}
	return nil
}
