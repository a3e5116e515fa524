package protocol

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestSerializerTextField(t *testing.T) {
	var buf bytes.Buffer
	s := NewSerializer(&buf)

	if err := s.WriteString("key", "value"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}

	expected := "--" + MIMEBoundary + "\r\n" +
		"Content-Disposition: form-data; name=\"key\"\r\n" +
		"\r\n" +
		"value\r\n" +
		"--" + MIMEBoundary + "\r\n"
	if buf.String() != expected {
		t.Errorf("WriteString() = %q, want %q", buf.String(), expected)
	}
}

func TestSerializerBytesField(t *testing.T) {
	var buf bytes.Buffer
	s := NewSerializer(&buf)

	payload := []byte{0x01, 0x02, 0x03}
	if err := s.WriteBytes("data", payload); err != nil {
		t.Fatalf("WriteBytes() error = %v", err)
	}

	expected := "--" + MIMEBoundary + "\r\n" +
		"Content-Disposition: form-data; name=\"data\"; filename=\"data\"\r\n" +
		"Content-Type: content/unknown\r\n" +
		"\r\n" +
		"\x01\x02\x03" +
		"--" + MIMEBoundary + "\r\n"
	if buf.String() != expected {
		t.Errorf("WriteBytes() = %q, want %q", buf.String(), expected)
	}
}

func TestSerializerImageField(t *testing.T) {
	var buf bytes.Buffer
	s := NewSerializer(&buf)

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})

	if err := s.WriteImage("picture", img); err != nil {
		t.Fatalf("WriteImage() error = %v", err)
	}

	out := buf.String()
	header := "--" + MIMEBoundary + "\r\n" +
		"Content-Disposition: form-data; name=\"picture\"; filename=\"picture\"\r\n" +
		"Content-Type: image/png\r\n" +
		"\r\n"
	if !strings.HasPrefix(out, header) {
		t.Fatalf("WriteImage() output does not start with expected header %q", header)
	}

	payload := out[len(header):]
	pngMagic := "\x89PNG\r\n\x1a\n"
	if !strings.HasPrefix(payload, pngMagic) {
		t.Errorf("WriteImage() payload does not start with PNG signature")
	}
	if !strings.HasSuffix(out, "--"+MIMEBoundary+"\r\n") {
		t.Errorf("WriteImage() field not terminated by boundary line")
	}
}

func TestSerializerLeadingBoundaryOnce(t *testing.T) {
	var buf bytes.Buffer
	s := NewSerializer(&buf)

	if err := s.WriteString("a", "1"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}
	if err := s.WriteString("b", "2"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}

	// One leading boundary plus one terminator per field.
	line := "--" + MIMEBoundary + "\r\n"
	if got := strings.Count(buf.String(), line); got != 3 {
		t.Errorf("boundary line count = %d, want 3", got)
	}
	if !strings.HasPrefix(buf.String(), line) {
		t.Errorf("stream does not start with boundary line")
	}
}

func TestSerializerDeterminism(t *testing.T) {
	encode := func() []byte {
		var buf bytes.Buffer
		s := NewSerializer(&buf)
		if err := s.WriteString("key", "value"); err != nil {
			t.Fatalf("WriteString() error = %v", err)
		}
		if err := s.WriteBytes("blob", []byte("payload")); err != nil {
			t.Fatalf("WriteBytes() error = %v", err)
		}
		return buf.Bytes()
	}

	if !bytes.Equal(encode(), encode()) {
		t.Errorf("identical writes produced different streams")
	}
}

func TestMIMEContentType(t *testing.T) {
	expected := "multipart/form-data; boundary=" + MIMEBoundary
	if got := MIMEContentType(); got != expected {
		t.Errorf("MIMEContentType() = %q, want %q", got, expected)
	}
}
