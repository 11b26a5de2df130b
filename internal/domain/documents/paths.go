package documents

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths holds the base directories used to resolve logo and media files.
type Paths struct {
	// AppRoot is the application installation root.
	AppRoot string

	// LogoSubdir is the directory under AppRoot holding company logos.
	LogoSubdir string

	// MediaBase is the root directory for product media files.
	MediaBase string
}

// LogoDir returns the absolute logo directory.
func (p Paths) LogoDir() string {
	return filepath.Join(p.AppRoot, p.LogoSubdir)
}

// fileURI builds a file:// URI with forward slashes regardless of the host
// path separator.
func fileURI(absPath string) string {
	slashed := filepath.ToSlash(absPath)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	return "file://" + slashed
}

// probeFileURI resolves a relative path against a base directory and returns
// the absolute path and its file:// URI only when the file exists on disk.
// Probe failures (permissions included) count as missing.
func probeFileURI(baseDir, relPath string) (absPath *string, uri *string) {
	if relPath == "" {
		return nil, nil
	}
	abs := filepath.Join(baseDir, relPath)
	if _, err := os.Stat(abs); err != nil {
		return nil, nil
	}
	u := fileURI(abs)
	return &abs, &u
}
