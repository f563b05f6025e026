//go:build !unix
// +build !unix

package mmap

import (
	"os"
)

// File falls back to reading the whole file on platforms without mmap
// support.
type File struct {
	Data []byte
}

func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{Data: data}, nil
}

func (m *File) Close() error {
	m.Data = nil
	return nil
}
