package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sitepanel/sitepanel/internal/uniuri"
)

// allowedExtensions is the upload allow-list. Only common web image
// formats are accepted.
var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

const randomNameLen = 9

// Store manages uploaded files in a single flat directory.
type Store struct {
	root string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the upload root directory.
func (s *Store) Root() string {
	return s.root
}

// Path resolves a filename to its absolute location inside the store.
func (s *Store) Path(name string) string {
	return filepath.Join(s.root, name)
}

// DeleteIfExists removes relativePath from the store, best effort.
// Both success and "file not found" are normal completion: the
// referenced file may already have been cleaned up by a prior run, or
// never existed. Paths escaping the store root are ignored the same
// way. Any other failure is returned for the caller to log and swallow.
func (s *Store) DeleteIfExists(relativePath string) error {
	if relativePath == "" {
		return nil
	}

	target := filepath.Join(s.root, filepath.Clean("/"+relativePath))

	// never reach outside the upload directory
	if !strings.HasPrefix(target, filepath.Clean(s.root)+string(filepath.Separator)) {
		return nil
	}

	err := os.Remove(target)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// Filename generates a collision-free name for an uploaded file as
// <fieldname>-<timestamp>-<random>.<ext>, keeping the original file's
// extension lowercased.
func Filename(field, original string) string {
	ext := strings.ToLower(filepath.Ext(original))

	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), uniuri.NewLen(randomNameLen), ext)
}

// AllowedExtension reports whether name carries an accepted image
// extension. The check is case insensitive.
func AllowedExtension(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}
