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

// Package mediatype provides a structured, validated representation of
// MIME media type strings.
package mediatype

import (
	"fmt"
	"mime"
	"strings"
)

// MediaType is a parsed MIME media type. A MediaType is only ever produced
// by Parse, so any value held by a caller has already passed grammar
// validation.
type MediaType struct {
	Type    string            // e.g. "text"
	Subtype string            // e.g. "plain"
	Params  map[string]string // e.g. {"charset": "utf-8"}
}

// Well-known media types.
var (
	TextPlain       = MediaType{Type: "text", Subtype: "plain"}
	TextHTML        = MediaType{Type: "text", Subtype: "html"}
	ApplicationJSON = MediaType{Type: "application", Subtype: "json"}
	ApplicationPDF  = MediaType{Type: "application", Subtype: "pdf"}
	ApplicationZip  = MediaType{Type: "application", Subtype: "zip"}
	ImagePNG        = MediaType{Type: "image", Subtype: "png"}
	ImageJPEG       = MediaType{Type: "image", Subtype: "jpeg"}
	OctetStream     = MediaType{Type: "application", Subtype: "octet-stream"}
)

// Parse validates and parses a media type string such as
// "text/plain; charset=utf-8". It returns an error for any string that does
// not conform to MIME grammar, including a missing or empty subtype.
func Parse(s string) (MediaType, error) {
	mt, params, err := mime.ParseMediaType(s)
	if err != nil {
		return MediaType{}, fmt.Errorf("invalid media type %q: %w", s, err)
	}

	typ, subtype, found := strings.Cut(mt, "/")
	if !found || typ == "" || subtype == "" {
		return MediaType{}, fmt.Errorf("invalid media type %q: missing subtype", s)
	}

	return MediaType{
		Type:    typ,
		Subtype: subtype,
		Params:  params,
	}, nil
}

// MIME returns the type/subtype pair without parameters.
func (m MediaType) MIME() string {
	return m.Type + "/" + m.Subtype
}

// String returns the canonical rendering of the media type, including
// parameters sorted in the order produced by mime.FormatMediaType.
func (m MediaType) String() string {
	if len(m.Params) == 0 {
		return m.MIME()
	}
	return mime.FormatMediaType(m.MIME(), m.Params)
}

// Equal reports whether two media types have the same type, subtype and
// parameters. Parameter order is irrelevant.
func (m MediaType) Equal(other MediaType) bool {
	if m.Type != other.Type || m.Subtype != other.Subtype {
		return false
	}
	if len(m.Params) != len(other.Params) {
		return false
	}
	for k, v := range m.Params {
		if ov, ok := other.Params[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Is reports whether the media type's type/subtype pair matches mimeStr,
// ignoring parameters on both sides.
func (m MediaType) Is(mimeStr string) bool {
	base, _, _ := strings.Cut(mimeStr, ";")
	return m.MIME() == strings.TrimSpace(base)
}

// IsText reports whether the media type denotes textual content.
func (m MediaType) IsText() bool {
	return m.Type == "text" ||
		m.MIME() == "application/json" ||
		m.MIME() == "application/xml" ||
		m.MIME() == "application/javascript"
}

// IsImage reports whether the media type denotes an image.
func (m MediaType) IsImage() bool {
	return m.Type == "image"
}

// IsAudio reports whether the media type denotes audio content.
func (m MediaType) IsAudio() bool {
	return m.Type == "audio"
}

// IsVideo reports whether the media type denotes video content.
func (m MediaType) IsVideo() bool {
	return m.Type == "video"
}

// IsArchive reports whether the media type denotes a compressed archive.
func (m MediaType) IsArchive() bool {
	switch m.MIME() {
	case "application/zip",
		"application/gzip",
		"application/x-tar",
		"application/x-7z-compressed",
		"application/x-rar-compressed":
		return true
	}
	return false
}
