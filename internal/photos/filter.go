package photos

import (
	"path/filepath"
	"strings"
)

// Extensions lists the file extensions treated as photos, without the dot.
var Extensions = []string{"jpg", "jpeg", "png", "gif", "bmp", "tiff", "webp"}

// IsSupported reports whether path has a photo extension, ignoring case.
func IsSupported(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return false
	}
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func skipped(name string, skip []string) bool {
	for _, s := range skip {
		if name == s {
			return true
		}
	}
	return false
}
