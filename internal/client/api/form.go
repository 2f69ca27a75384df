package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Form accumulates multipart/form-data for upload endpoints. Methods
// record the first error encountered; Dispatch refuses a form whose Err is
// non-nil.
type Form struct {
	buf    bytes.Buffer
	mw     *multipart.Writer
	err    error
	closed bool
}

func NewForm() *Form {
	f := &Form{}
	f.mw = multipart.NewWriter(&f.buf)
	return f
}

// AddField appends a plain text field.
func (f *Form) AddField(name, value string) *Form {
	if f.err != nil || f.closed {
		return f
	}
	if err := f.mw.WriteField(name, value); err != nil {
		f.err = fmt.Errorf("write field %s: %w", name, err)
	}
	return f
}

// AddFile appends a file part read from r.
func (f *Form) AddFile(field, filename string, r io.Reader) *Form {
	if f.err != nil || f.closed {
		return f
	}
	part, err := f.mw.CreateFormFile(field, filename)
	if err != nil {
		f.err = fmt.Errorf("create file part %s: %w", field, err)
		return f
	}
	if _, err := io.Copy(part, r); err != nil {
		f.err = fmt.Errorf("copy file part %s: %w", field, err)
	}
	return f
}

// ContentType returns the multipart content type including the boundary.
func (f *Form) ContentType() string {
	return f.mw.FormDataContentType()
}

// Err returns the first error recorded while building the form.
func (f *Form) Err() error {
	return f.err
}

// Reader finalizes the form and returns the encoded body.
func (f *Form) Reader() io.Reader {
	if !f.closed {
		f.closed = true
		if err := f.mw.Close(); err != nil && f.err == nil {
			f.err = fmt.Errorf("close form: %w", err)
		}
	}
	return &f.buf
}
