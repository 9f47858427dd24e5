// Package photos discovers photo files under a folder tree.
package photos

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/youruser/bingoapp/internal/util"
)

// ErrDirNotFound is returned when the root folder is missing and
// LoadOptions.CreateMissing is not set.
var ErrDirNotFound = errors.New("photo directory does not exist")

type LoadOptions struct {
	// CreateMissing creates an absent root instead of failing.
	CreateMissing bool
	// SkipDirs names directories whose subtree is never walked.
	SkipDirs []string
}

// LoadPhotosFromDir walks dir recursively and returns every supported photo
// path in walk order. Unreadable subdirectories are logged and skipped.
func LoadPhotosFromDir(dir string, opt LoadOptions) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", dir, err)
		}
		if !opt.CreateMissing {
			return nil, fmt.Errorf("%s: %w", dir, ErrDirNotFound)
		}
		if err := util.EnsureDir(dir); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
		log.WithField("dir", dir).Info("created photo directory")
		return []string{}, nil
	}

	out := []string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			log.WithFields(log.Fields{"path": path, "error": err}).Warn("skipping unreadable entry")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != dir && skipped(d.Name(), opt.SkipDirs) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsSupported(d.Name()) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	return out, nil
}
