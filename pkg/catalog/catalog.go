// pkg/catalog/catalog.go
package catalog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"

	"github.com/x-linux-isp/isptool/pkg/control"
	"github.com/x-linux-isp/isptool/pkg/core"
)

// Loader locates the vendor package index and parses it
type Loader struct {
	pattern *regexp.Regexp
	dirs    []string
	self    string
	logger  *log.Logger
}

// NewLoader creates a catalog loader from cfg
func NewLoader(cfg *core.Config, logger *log.Logger) (*Loader, error) {
	pattern, err := regexp.Compile(cfg.CatalogPattern)
	if err != nil {
		return nil, fmt.Errorf("compiling catalog pattern: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Loader{
		pattern: pattern,
		dirs:    cfg.CatalogDirs,
		self:    cfg.SelfPackage,
		logger:  logger,
	}, nil
}

// Load finds the catalog file and parses it
func (l *Loader) Load() (control.Set, error) {
	path, err := Find(l.pattern, l.dirs)
	if err != nil {
		return nil, err
	}
	if path == "" {
		l.logger.Printf("No file matching %q in %v", l.pattern, l.dirs)
		return nil, core.ErrCatalogNotFound
	}
	l.logger.Printf("Using catalog: %s", path)

	set, err := control.ParseFile(path, l.self)
	if err != nil {
		return nil, &core.Error{Op: "reading catalog", Err: fmt.Errorf("%w: %w", core.ErrSourceUnreadable, err)}
	}

	l.logger.Printf("Parsed %d catalog entries", len(set))
	return set, nil
}

// Find returns the full path of the first regular file, in the first
// directory that has one, whose base name matches pattern. Directories are
// not descended into and entries are visited in the order the OS returns
// them. Missing candidates are skipped; "" means nothing matched.
func Find(pattern *regexp.Regexp, dirs []string) (string, error) {
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		entries, err := readDirUnsorted(dir)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", dir, err)
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if !pattern.MatchString(entry.Name()) || !isRegular(path, entry) {
				continue
			}
			return path, nil
		}
	}
	return "", nil
}

// isRegular follows symlinks, so a link to a regular file counts.
func isRegular(path string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// readDirUnsorted is os.ReadDir without the sort by name.
func readDirUnsorted(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}
