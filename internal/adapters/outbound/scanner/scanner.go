package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
}

// FileScanner implements domain.FileFinder by walking the filesystem.
type FileScanner struct {
	log logrus.FieldLogger
}

func New(log logrus.FieldLogger) *FileScanner {
	return &FileScanner{log: log}
}

// Find returns the absolute paths of every file called name under dir,
// sorted. A dir that is missing or not a directory yields no files.
// Unreadable subdirectories are logged and skipped.
func (s *FileScanner) Find(dir, name string, excludeDirs ...string) []string {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		absPath = dir
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).WithField("dir", absPath).Warn("cannot read search directory")
		}
		return nil
	}
	if !info.IsDir() {
		s.log.WithField("dir", absPath).Debug("search path is not a directory")
		return nil
	}

	// Merge extra excludes with built-in skip dirs.
	extraSkip := make(map[string]bool, len(excludeDirs))
	for _, p := range excludeDirs {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	var found []string
	_ = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			s.log.WithError(err).WithField("path", path).Warn("skipping unreadable path")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != absPath && (skipDirs[d.Name()] || extraSkip[d.Name()]) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Name() == name {
			found = append(found, path)
		}
		return nil
	})

	sort.Strings(found)
	return found
}
