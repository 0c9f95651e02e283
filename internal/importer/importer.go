package importer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// qifExt is the file extension picked up when scanning directories.
const qifExt = ".qif"

// FileInfo describes a QIF file selected for reading.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Expand resolves command-line arguments into files. A file argument is
// returned as is, whatever its extension. A directory argument contributes
// its *.qif files in lexical order, descending into subdirectories when
// recursive is set. Argument order is preserved.
func Expand(args []string, recursive bool) ([]FileInfo, error) {
	var files []FileInfo
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, FileInfo{Name: info.Name(), Path: arg, Size: info.Size()})
			continue
		}
		found, err := Scan(arg, recursive)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

// Scan returns the QIF files in dir.
func Scan(dir string, recursive bool) ([]FileInfo, error) {
	var files []FileInfo
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), qifExt) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", d.Name(), err)
		}
		files = append(files, FileInfo{Name: d.Name(), Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	return files, nil
}
