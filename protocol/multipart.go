package protocol

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// Serializer writes named fields as a multipart/form-data stream using
// the fixed MIMEBoundary token.
//
// It is a two-state machine: nothing is emitted until the first field
// write, which prepends a single leading boundary line; after that every
// field is terminated by its own boundary line, never preceded by one.
// Field order is the caller's contract and is preserved exactly.
//
// Payloads are streamed one field at a time; the serializer never
// buffers the whole body, so memory stays bounded regardless of
// attachment size or count.
type Serializer struct {
	w       io.Writer
	started bool
}

// NewSerializer creates a serializer writing to w.
func NewSerializer(w io.Writer) *Serializer {
	return &Serializer{w: w}
}

// Boundary returns the boundary token in effect for this stream.
func (s *Serializer) Boundary() string {
	return MIMEBoundary
}

// WriteString writes a text field. The payload is followed by CRLF
// before the record boundary.
func (s *Serializer) WriteString(key, value string) error {
	if err := s.writeContentDisposition(key, "", ""); err != nil {
		return err
	}
	if err := s.writeLine(value); err != nil {
		return err
	}
	return s.writeRecordBoundary()
}

// WriteImage re-encodes img as PNG and writes it as a binary field
// declared image/png. The encode streams directly into the body.
func (s *Serializer) WriteImage(key string, img image.Image) error {
	if err := s.writeContentDisposition(key, key, ContentTypePNG); err != nil {
		return err
	}
	if err := png.Encode(s.w, img); err != nil {
		return err
	}
	return s.writeRecordBoundary()
}

// WriteBytes writes a raw binary field declared content/unknown. The
// payload is written as-is, with no trailing CRLF before the boundary.
func (s *Serializer) WriteBytes(key string, payload []byte) error {
	if err := s.writeContentDisposition(key, key, ContentTypeUnknown); err != nil {
		return err
	}
	if err := s.write(payload); err != nil {
		return err
	}
	return s.writeRecordBoundary()
}

func (s *Serializer) writeContentDisposition(name, filename, contentType string) error {
	if err := s.writeString(fmt.Sprintf(`Content-Disposition: form-data; name=%q`, name)); err != nil {
		return err
	}
	if filename != "" {
		if err := s.writeString(fmt.Sprintf(`; filename=%q`, filename)); err != nil {
			return err
		}
	}
	if err := s.writeLine(""); err != nil {
		return err
	}
	if contentType != "" {
		if err := s.writeLine("Content-Type: " + contentType); err != nil {
			return err
		}
	}
	return s.writeLine("")
}

func (s *Serializer) writeRecordBoundary() error {
	return s.writeLine("--" + MIMEBoundary)
}

func (s *Serializer) writeLine(str string) error {
	if err := s.writeString(str); err != nil {
		return err
	}
	return s.writeString("\r\n")
}

func (s *Serializer) writeString(str string) error {
	return s.write([]byte(str))
}

// write funnels every byte through the state machine so the leading
// boundary line is emitted exactly once, before any field content.
func (s *Serializer) write(p []byte) error {
	if !s.started {
		s.started = true
		if _, err := io.WriteString(s.w, "--"+MIMEBoundary+"\r\n"); err != nil {
			return err
		}
	}
	_, err := s.w.Write(p)
	return err
}
