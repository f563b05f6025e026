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

// Package magic implements the signature-matching engine behind the
// detective facade: a registry of caller-loaded magic rules layered over
// the built-in signature set of github.com/gabriel-vasile/mimetype.
package magic

import (
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// SniffLimit caps how many leading bytes the built-in signature set reads
// from any input.
// https://github.com/gabriel-vasile/mimetype/blob/master/mimetype.go#L17
const SniffLimit = 65536 // 2^16

func init() {
	mimetype.SetLimit(uint32(SniffLimit))
}

// Engine is an opened signature-matching session. It is immutable after
// Open and safe for concurrent queries.
type Engine struct {
	registry *Registry
	rules    []Rule // load order, for enumeration
}

// Open initializes an engine session. Each path must point to a readable
// magic database file; rules from earlier databases take precedence over
// later ones. Opening with no paths yields an engine backed purely by the
// built-in signature set. If any database fails to load, the whole open
// fails and no engine is returned.
func Open(paths ...string) (*Engine, error) {
	e := &Engine{registry: NewRegistry()}

	for _, path := range paths {
		rules, err := LoadDatabase(path)
		if err != nil {
			return nil, fmt.Errorf("load magic database: %w", err)
		}
		for _, r := range rules {
			e.registry.Add(r)
		}
		e.rules = append(e.rules, rules...)
	}
	return e, nil
}

// Buffer classifies the given bytes and returns a textual MIME identifier.
// Custom rules are consulted first, longest signature match winning; the
// built-in set is the fallback. The built-in set classifies any input,
// bottoming out at application/octet-stream, so Buffer only fails if a
// future rule source does.
func (e *Engine) Buffer(buf []byte) (string, error) {
	if rule, ok := e.registry.Match(buf); ok {
		return rule.MIME, nil
	}
	return mimetype.Detect(buf).String(), nil
}

// File classifies the file at path. The engine performs its own I/O: a
// missing or unreadable path surfaces here as an engine error.
func (e *Engine) File(path string) (string, error) {
	if e.registry.Signatures() > 0 {
		hdr, err := readHeader(path, e.registry.MaxSignatureLen())
		if err != nil {
			return "", err
		}
		if rule, ok := e.registry.Match(hdr); ok {
			return rule.MIME, nil
		}
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	return mt.String(), nil
}

// Rules returns the custom rules in load order. The returned slice is
// shared; callers must not modify it.
func (e *Engine) Rules() []Rule {
	return e.rules
}

func readHeader(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hdr := make([]byte, n)
	read, err := io.ReadFull(f, hdr)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		err = nil
	}
	if err != nil {
		return nil, err
	}
	return hdr[:read], nil
}
