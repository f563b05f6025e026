//go:build unix
// +build unix

// Package mmap memory-maps files read-only so large inputs can be
// classified through the buffer query without copying them into memory.
package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is a read-only memory-mapped file.
type File struct {
	Data []byte // the mapped contents

	f *os.File
}

// Open maps the whole file at path. Mapping an empty file is an error;
// callers should route empty files through a regular read path instead.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	size := fi.Size()
	if size == 0 {
		f.Close()
		return nil, fmt.Errorf("cannot mmap empty file %q", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %q: %w", path, err)
	}

	return &File{Data: data, f: f}, nil
}

// Close unmaps the region and closes the underlying file.
func (m *File) Close() error {
	var err error
	if m.Data != nil {
		err = unix.Munmap(m.Data)
		m.Data = nil
	}
	if m.f != nil {
		if cerr := m.f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		m.f = nil
	}
	return err
}
