package projects

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"zed-recent/internal/apperr"
	"zed-recent/internal/model"
	"zed-recent/internal/pathutil"
)

// Directories lists the immediate, non-hidden subdirectories of every
// configured root, sorted by title and filtered by query.
func (l *Lister) Directories(query string) ([]model.Item, error) {
	items, err := collect(l.directoryItems(), l.log)
	if err != nil {
		return nil, err
	}
	SortByTitle(items)
	l.log.Debug("directories", zap.Int("count", len(items)), zap.String("query", query))
	return Filter(items, query), nil
}

// Roots returns the configured roots with blank lines dropped and ~ expanded.
// Roots that do not exist are still returned; the caller skips them.
func (l *Lister) Roots() []string {
	out := make([]string, 0, len(l.cfg.ProjectRoots))
	for _, line := range l.cfg.ProjectRoots {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, pathutil.ExpandHome(line, l.cfg.Home))
	}
	return out
}

func (l *Lister) directoryItems() iter.Seq2[model.Item, error] {
	return func(yield func(model.Item, error) bool) {
		for _, root := range l.Roots() {
			info, err := os.Stat(root)
			if err != nil || !info.IsDir() {
				l.log.Debug("skipping root", zap.String("root", root))
				continue
			}
			for it, err := range scanRoot(root) {
				if !yield(it, err) {
					return
				}
			}
		}
	}
}

// scanRoot yields one item per visible subdirectory of root, in directory
// order. Unreadable roots and undecodable entries are yielded as EntryRead.
func scanRoot(root string) iter.Seq2[model.Item, error] {
	return func(yield func(model.Item, error) bool) {
		const op = "read entry"

		f, err := os.Open(root)
		if err != nil {
			yield(model.Item{}, apperr.E(apperr.EntryRead, op, err))
			return
		}
		defer f.Close()

		// File.ReadDir keeps the filesystem's enumeration order (os.ReadDir sorts).
		entries, readErr := f.ReadDir(-1)
		for _, e := range entries {
			name := e.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			path := filepath.Join(root, name)
			if !entryIsDir(path, e) {
				continue
			}
			title, p, ok := pathutil.DirPath(path)
			if !ok {
				if !yield(model.Item{}, apperr.E(apperr.EntryRead, op, fmt.Errorf("%q: not a usable path", path))) {
					return
				}
				continue
			}
			if !yield(model.NewPathItem(p, title, p), nil) {
				return
			}
		}
		if readErr != nil {
			yield(model.Item{}, apperr.E(apperr.EntryRead, op, readErr))
		}
	}
}

// entryIsDir follows symlinks; a dangling link is not a directory.
func entryIsDir(path string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
