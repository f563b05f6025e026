package report

import (
	"encoding/xml"
	"io"
)

// Writer streams a detection report: one header, then any number of
// fileobject elements. Close finishes the document.
type Writer struct {
	w   io.Writer
	enc *xml.Encoder
}

// NewWriter returns a Writer producing indented XML on w.
func NewWriter(w io.Writer) *Writer {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	return &Writer{
		w:   w,
		enc: enc,
	}
}

// WriteHeader writes the XML declaration, the opening root tag and the
// header elements. It must be called exactly once, before any fileobject.
func (w *Writer) WriteHeader(hdr Header) error {
	if _, err := w.w.Write([]byte(xml.Header)); err != nil {
		return err
	}

	// The root tag is opened by hand so it can carry the version attribute
	// while remaining open for the fileobjects that follow.
	start := xml.StartElement{
		Name: xml.Name{Local: "detection_report"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "version"}, Value: hdr.Version},
		},
	}
	if err := w.enc.EncodeToken(start); err != nil {
		return err
	}

	creator := xml.StartElement{Name: xml.Name{Local: "creator"}}
	if err := w.enc.EncodeElement(hdr.Creator, creator); err != nil {
		return err
	}
	source := xml.StartElement{Name: xml.Name{Local: "source"}}
	return w.enc.EncodeElement(hdr.Source, source)
}

// WriteFileObject appends one fileobject element.
func (w *Writer) WriteFileObject(obj FileObject) error {
	return w.enc.Encode(obj)
}

// Close writes the closing root tag and flushes the encoder.
func (w *Writer) Close() error {
	if err := w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: "detection_report"}}); err != nil {
		return err
	}
	return w.enc.Flush()
}
