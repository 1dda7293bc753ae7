package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanPath discovers catalog files at path. A file is returned as-is; a
// directory yields its *.toml files (non-recursive) sorted by name, which
// fixes the pool order across files. A missing path yields nothing.
func ScanPath(path string) ([]DiscoveredFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	if !info.IsDir() {
		return []DiscoveredFile{discovered(path, info)}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var files []DiscoveredFile
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".toml") {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue // vanished between ReadDir and Info
		}
		files = append(files, discovered(filepath.Join(path, e.Name()), fi))
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func discovered(path string, info os.FileInfo) DiscoveredFile {
	return DiscoveredFile{
		Path:    path,
		MtimeNs: info.ModTime().UnixNano(),
		Size:    info.Size(),
	}
}
