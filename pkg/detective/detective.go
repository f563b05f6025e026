// Copyright (c) 2026 The mime-detective Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package detective identifies the media type of file content from its
// magic numbers and returns it as a strongly typed mediatype.MediaType.
//
//	d, err := detective.New()
//	if err != nil { ... }
//	mt, err := d.DetectFilepath("notes.txt")
package detective

import (
	"io"
	"os"

	"github.com/cjbassi/mime-detective/internal/magic"
	"github.com/cjbassi/mime-detective/pkg/mediatype"
)

// DefaultDatabase is the platform-default magic database consulted by New
// when it exists.
const DefaultDatabase = "/usr/share/mime-detective/magic.db"

// fileSniffLen is the number of leading bytes DetectFile consumes from the
// caller's reader before querying the engine.
const fileSniffLen = 2

// engine is the signature-matching session the Detector queries. Satisfied
// by *magic.Engine; a seam for tests.
type engine interface {
	File(path string) (string, error)
	Buffer(buf []byte) (string, error)
}

// Detector is an initialized, ready-to-query detection session. The bound
// signature databases are fixed at construction; a Detector is immutable
// and safe for concurrent use. There is nothing to close: discarding the
// Detector releases it.
type Detector struct {
	eng engine
}

// New returns a Detector bound to the built-in signature set, plus the
// database at DefaultDatabase when that file exists. It fails with a
// database-kind error if the default database exists but cannot be loaded.
func New() (*Detector, error) {
	var paths []string
	if _, err := os.Stat(DefaultDatabase); err == nil {
		paths = append(paths, DefaultDatabase)
	}
	return NewWithDatabases(paths...)
}

// NewWithDatabases returns a Detector that additionally loads the given
// magic database files, in order. Every path must load successfully: any
// failure aborts construction with a database-kind error and no Detector
// is returned.
func NewWithDatabases(paths ...string) (*Detector, error) {
	eng, err := magic.Open(paths...)
	if err != nil {
		return nil, &Error{Kind: KindDatabase, Err: err}
	}
	return &Detector{eng: eng}, nil
}

// DetectFilepath detects the media type of the file at path. The engine
// performs its own I/O against the path, so a missing or unreadable file
// surfaces as a database-kind error.
func (d *Detector) DetectFilepath(path string) (mediatype.MediaType, error) {
	mimeStr, err := d.eng.File(path)
	if err != nil {
		return mediatype.MediaType{}, &Error{Kind: KindDatabase, Err: err}
	}
	return d.parse(mimeStr)
}

// DetectFile detects the media type of an already-open reader by consuming
// exactly the first two bytes and classifying those. The read advances the
// caller's position by two bytes; that side effect is part of the
// contract and is not undone. If fewer than two bytes are available the
// call fails with an I/O-kind error before any engine query.
func (d *Detector) DetectFile(r io.Reader) (mediatype.MediaType, error) {
	var buf [fileSniffLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return mediatype.MediaType{}, &Error{Kind: KindIO, Err: err}
	}
	return d.DetectBuffer(buf[:])
}

// DetectBuffer detects the media type of the given bytes. An empty buffer
// classifies as text/plain, which is what the engine defines for empty
// input.
func (d *Detector) DetectBuffer(buf []byte) (mediatype.MediaType, error) {
	mimeStr, err := d.eng.Buffer(buf)
	if err != nil {
		return mediatype.MediaType{}, &Error{Kind: KindDatabase, Err: err}
	}
	return d.parse(mimeStr)
}

func (d *Detector) parse(mimeStr string) (mediatype.MediaType, error) {
	mt, err := mediatype.Parse(mimeStr)
	if err != nil {
		return mediatype.MediaType{}, &Error{Kind: KindParse, Err: err}
	}
	return mt, nil
}
