package memory

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Discover lists the immediate subdirectories of root and returns an
// OverlayItem for each one containing an overlay file. Order follows the
// directory listing. A missing root yields no items and no error; a memory
// folder that cannot be listed is skipped.
func Discover(root string) ([]OverlayItem, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var items []OverlayItem
	for _, e := range entries {
		if !isDir(root, e) {
			continue
		}
		dir := filepath.Join(root, e.Name())
		item, ok := classify(e.Name(), dir)
		if ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// classify sorts the files of one memory folder by marker. ok is false when
// the folder has no overlay or cannot be read.
func classify(name, dir string) (OverlayItem, bool) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return OverlayItem{}, false
	}

	item := OverlayItem{Name: name, SourcePath: dir}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		lower := strings.ToLower(f.Name())
		path := filepath.Join(dir, f.Name())
		switch {
		case strings.Contains(lower, OverlayMarker):
			item.Overlays = append(item.Overlays, path)
		case strings.Contains(lower, BaseImageMarker):
			if item.BaseImage == "" {
				item.BaseImage = path
			}
		case strings.Contains(lower, BaseVideoMarker):
			if item.BaseVideo == "" {
				item.BaseVideo = path
			}
		}
	}
	return item, len(item.Overlays) > 0
}

// isDir follows symlinks so a linked memory folder is still scanned.
func isDir(root string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(root, e.Name()))
	return err == nil && fi.IsDir()
}
