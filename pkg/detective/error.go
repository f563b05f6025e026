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
package detective

import (
	"errors"
	"fmt"
)

// Kind identifies which of the three failure domains produced an Error.
// The set is closed: no other error sources exist in this package.
type Kind int

const (
	// KindDatabase covers engine failures: a database could not be
	// opened or parsed, or a query against a path failed.
	KindDatabase Kind = iota
	// KindParse covers engine output that is not valid MIME grammar.
	KindParse
	// KindIO covers failed or short reads from a caller-supplied reader.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindDatabase:
		return "database"
	case KindParse:
		return "parse"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by every Detector operation.
// It tags the originating failure with its Kind and carries the cause
// unmodified.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("detective: %s: %v", e.Kind, e.Err)
}

// Unwrap returns the originating error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsDatabase reports whether err is a detective error of database kind.
func IsDatabase(err error) bool {
	return hasKind(err, KindDatabase)
}

// IsParse reports whether err is a detective error of parse kind.
func IsParse(err error) bool {
	return hasKind(err, KindParse)
}

// IsIO reports whether err is a detective error of I/O kind.
func IsIO(err error) bool {
	return hasKind(err, KindIO)
}

func hasKind(err error, kind Kind) bool {
	var derr *Error
	return errors.As(err, &derr) && derr.Kind == kind
}
