//go:build linux
// +build linux

package fuse

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	"github.com/cjbassi/mime-detective/pkg/report"
)

// FileEntry is one classified file exposed through the mount.
type FileEntry struct {
	Name string // name within the type directory
	Path string // path of the real file on disk
	Size uint64
}

// TypeFS exposes a detection report as a read-only tree: one directory per
// detected MIME type (slashes replaced by underscores), the classified
// files beneath it.
type TypeFS struct {
	groups map[string]map[string]FileEntry

	mountpoint string
}

// NewTypeFS groups the report's file objects by MIME type. Base-name
// collisions within a group are disambiguated with a numeric suffix.
func NewTypeFS(objects []report.FileObject) *TypeFS {
	groups := make(map[string]map[string]FileEntry)

	for _, obj := range objects {
		dir := typeDirName(obj.MIME)
		if groups[dir] == nil {
			groups[dir] = make(map[string]FileEntry)
		}

		name := filepath.Base(obj.Path)
		for i := 1; ; i++ {
			if _, taken := groups[dir][name]; !taken {
				break
			}
			name = fmt.Sprintf("%s.%d", filepath.Base(obj.Path), i)
		}

		groups[dir][name] = FileEntry{
			Name: name,
			Path: obj.Path,
			Size: obj.Size,
		}
	}
	return &TypeFS{groups: groups}
}

// typeDirName turns "text/plain; charset=utf-8" into "text_plain".
func typeDirName(mime string) string {
	base, _, _ := strings.Cut(mime, ";")
	return strings.ReplaceAll(strings.TrimSpace(base), "/", "_")
}

func (t *TypeFS) Root() (fs.Node, error) {
	return &rootDir{fs: t}, nil
}

// rootDir lists one directory per MIME type.
type rootDir struct {
	fs *TypeFS
}

func (*rootDir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Mode = os.ModeDir | 0555
	return nil
}

func (d *rootDir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	if _, ok := d.fs.groups[name]; ok {
		return &typeDir{fs: d.fs, name: name}, nil
	}
	return nil, fuse.ENOENT
}

func (d *rootDir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	dirEntries := make([]fuse.Dirent, 0, len(d.fs.groups))
	for name := range d.fs.groups {
		dirEntries = append(dirEntries, fuse.Dirent{
			Name: name,
			Type: fuse.DT_Dir,
		})
	}
	sort.Slice(dirEntries, func(i, j int) bool {
		return dirEntries[i].Name < dirEntries[j].Name
	})
	for i := range dirEntries {
		dirEntries[i].Inode = uint64(i)
	}
	return dirEntries, nil
}

// typeDir lists the files classified under one MIME type.
type typeDir struct {
	fs   *TypeFS
	name string
}

func (*typeDir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Mode = os.ModeDir | 0555
	return nil
}

func (d *typeDir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	if e, ok := d.fs.groups[d.name][name]; ok {
		return File{path: e.Path, size: e.Size}, nil
	}
	return nil, fuse.ENOENT
}

func (d *typeDir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	group := d.fs.groups[d.name]

	dirEntries := make([]fuse.Dirent, 0, len(group))
	for name := range group {
		dirEntries = append(dirEntries, fuse.Dirent{
			Name: name,
			Type: fuse.DT_File,
		})
	}
	sort.Slice(dirEntries, func(i, j int) bool {
		return dirEntries[i].Name < dirEntries[j].Name
	})
	for i := range dirEntries {
		dirEntries[i].Inode = uint64(i)
	}
	return dirEntries, nil
}

// File serves the contents of the real file behind a report entry.
type File struct {
	path string
	size uint64
}

func (f File) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Mode = 0444
	a.Size = f.size
	a.Mtime = time.Now()
	return nil
}

func (f File) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	src, err := os.Open(f.path)
	if err != nil {
		return err
	}
	defer src.Close()

	size := int(req.Size)
	offset := req.Offset

	if offset >= int64(f.size) {
		// read past EOF
		resp.Data = []byte{}
		return nil
	}
	if offset+int64(size) > int64(f.size) {
		size = int(int64(f.size) - offset)
	}

	buf := make([]byte, size)
	n, err := src.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return err
	}

	resp.Data = buf[:n]
	return nil
}
