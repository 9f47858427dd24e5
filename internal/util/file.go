package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// DocumentsEnv overrides the documents root used to resolve photo folders.
const DocumentsEnv = "BINGO_DOCUMENTS"

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// DocumentsDir returns $BINGO_DOCUMENTS or ~/Documents.
func DocumentsDir() (string, error) {
	if dir := os.Getenv(DocumentsEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, "Documents"), nil
}

// PhotoDir resolves a folder name under the documents root.
func PhotoDir(folder string) (string, error) {
	docs, err := DocumentsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(docs, folder), nil
}
