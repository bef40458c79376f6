package infra

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cloudcopper/cardlist/lib"
)

type FileSystem interface {
	fs.ReadFileFS
	fs.ReadDirFS
}

// LayerFileSystem looks up files layer by layer.
// The first layer having the file wins.
// Directories are merged across all layers.
type LayerFileSystem struct {
	layers []FileSystem
}

const (
	ErrWrongParamType = lib.Error("wrong param type")
	ErrWrongLayerPath = lib.Error("layer path must not contain ..")
)

// NewLayerFileSystem creates layers in given order.
// The params may be:
//   - string - os directory, or ${ENV} holding os directory (skipped if empty)
//   - func() (string, error) - os directory, like os.Getwd
//   - *LayerFileSystem - all its layers
//   - fs.FS - embed.FS, fs.Sub result etc
func NewLayerFileSystem(params ...interface{}) (*LayerFileSystem, error) {
	var err error
	l := &LayerFileSystem{}
	for _, p := range params {
		l, err = l.Append(p)
		if err != nil {
			return l, err
		}
	}
	return l, nil
}

func (l *LayerFileSystem) Append(p interface{}) (*LayerFileSystem, error) {
	switch v := p.(type) {
	case func() (string, error):
		path, err := v()
		if err != nil {
			return l, err
		}
		return l.appendDir(path)

	case string:
		v = strings.TrimSpace(v)
		if strings.HasPrefix(v, "${") && strings.HasSuffix(v, "}") {
			v = os.Getenv(v[2 : len(v)-1])
		}
		return l.appendDir(v)

	case *LayerFileSystem:
		l.layers = append(l.layers, v.layers...)

	case fs.FS:
		l.layers = append(l.layers, &stdFileSystem{v})

	default:
		return l, ErrWrongParamType
	}

	return l, nil
}

func (l *LayerFileSystem) appendDir(path string) (*LayerFileSystem, error) {
	if path == "" {
		return l, nil
	}
	if strings.Contains(path, "..") {
		return l, fmt.Errorf("%w: %q", ErrWrongLayerPath, path)
	}
	l.layers = append(l.layers, &osFileSystem{path})
	return l, nil
}

func (l *LayerFileSystem) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	for _, layer := range l.layers {
		f, err := layer.Open(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}

		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, err
		}
		if !info.IsDir() {
			return f, nil
		}
		return &layerDir{f, l, name}, nil
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

func (l *LayerFileSystem) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	for _, layer := range l.layers {
		data, err := layer.ReadFile(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return data, err
	}
	return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
}

func (l *LayerFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	f, err := l.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dir, ok := f.(fs.ReadDirFile)
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	return dir.ReadDir(-1)
}

type stdFileSystem struct {
	fs.FS
}

func (s *stdFileSystem) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(s.FS, name)
}

func (s *stdFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(s.FS, name)
}

type osFileSystem struct {
	root string
}

func (o *osFileSystem) Open(name string) (fs.File, error) {
	return os.Open(filepath.Join(o.root, name))
}

func (o *osFileSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(filepath.Join(o.root, name))
}

func (o *osFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(o.root, name))
}

type layerDir struct {
	fs.File
	fs   *LayerFileSystem
	name string
}

// ReadDir returns merged entries of all layers sorted by name
func (l *layerDir) ReadDir(n int) ([]fs.DirEntry, error) {
	m := make(map[string]fs.DirEntry)

	for _, layer := range l.fs.layers {
		entries, err := layer.ReadDir(l.name)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if _, exists := m[e.Name()]; exists {
				continue
			}
			m[e.Name()] = e
		}
	}

	entries := make([]fs.DirEntry, 0, len(m))
	for _, e := range m {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return entries, nil
}
