package httpclient

import (
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// MultipartBody is a multipart/form-data request body. Pass it as the Body
// of a Request; parts are streamed to the server as they are written.
type MultipartBody struct {
	// Fields are simple key-value form fields.
	Fields map[string]string
	// Files are file upload fields.
	Files []FileField
}

// FileField is a file part of a multipart request.
type FileField struct {
	// FieldName is the form field name (e.g., "file", "audio").
	FieldName string
	// FileName is the file name sent to the server.
	FileName string
	// ContentType is the MIME type. Empty means application/octet-stream.
	ContentType string
	// Data is the file content. Used if Reader is nil.
	Data []byte
	// Reader streams the file content.
	Reader io.Reader
}

// encode returns a reader that produces the multipart body and its
// content-type header. Encoding runs in a goroutine feeding a pipe, so a
// large audio file is never held in memory.
func (m *MultipartBody) encode() (io.Reader, string, error) {
	pr, pw := io.Pipe()
	w := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(m.write(w))
	}()

	return pr, w.FormDataContentType(), nil
}

func (m *MultipartBody) write(w *multipart.Writer) error {
	for k, v := range m.Fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}

	for _, f := range m.Files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			`form-data; name="`+escapeQuotes(f.FieldName)+`"; filename="`+escapeQuotes(f.FileName)+`"`)
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return err
		}
		if f.Reader != nil {
			if _, err := io.Copy(part, f.Reader); err != nil {
				return err
			}
		} else if _, err := part.Write(f.Data); err != nil {
			return err
		}
	}

	return w.Close()
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
