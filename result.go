package reportpdf

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
)

// Result holds a generated PDF together with the name it was saved under.
//
// Its methods never modify the underlying bytes, so they may be called any
// number of times.
type Result struct {
	id       string
	filename string
	pages    int
	data     []byte
}

// ID is the export id used in log entries for this export.
func (r *Result) ID() string {
	return r.id
}

// Filename is the name the document was saved as.
func (r *Result) Filename() string {
	return r.filename
}

// Pages is the page count of the document.
func (r *Result) Pages() int {
	return r.pages
}

// Bytes returns the raw PDF content.
func (r *Result) Bytes() []byte {
	return r.data
}

// Base64 returns the PDF encoded as a standard base64 string (RFC 4648).
func (r *Result) Base64() string {
	return base64.StdEncoding.EncodeToString(r.data)
}

// Reader returns an [*bytes.Reader] over the PDF content.
func (r *Result) Reader() *bytes.Reader {
	return bytes.NewReader(r.data)
}

// WriteTo writes the full PDF content to w. It implements [io.WriterTo].
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	return int64(n), err
}

// WriteToFile writes a further copy of the PDF to path.
func (r *Result) WriteToFile(path string, perm os.FileMode) error {
	return os.WriteFile(path, r.data, perm)
}

// Len returns the size of the PDF in bytes.
func (r *Result) Len() int {
	return len(r.data)
}
