package testutil

import (
	"bytes"
	"fmt"
	"mime"
	"strings"
)

// Part is one decoded field of a multipart body.
type Part struct {
	Name        string
	Filename    string
	ContentType string

	// Payload is the raw field payload. Text fields carry a trailing
	// CRLF on the wire; use Text to read them stripped.
	Payload []byte
}

// Text returns the payload as a string with the trailing CRLF removed.
func (p Part) Text() string {
	return strings.TrimSuffix(string(p.Payload), "\r\n")
}

// ParseMultipartBody decodes a body written by the protocol serializer:
// a leading boundary line, then fields each terminated by a boundary
// line. It cannot use mime/multipart, which expects a closing
// "--boundary--" terminator this format never emits.
func ParseMultipartBody(body []byte, boundary string) ([]Part, error) {
	delim := []byte("--" + boundary + "\r\n")
	if !bytes.HasPrefix(body, delim) {
		return nil, fmt.Errorf("body does not start with boundary line %q", string(delim))
	}

	var parts []Part
	blocks := bytes.Split(body, delim)
	// First block is the empty prefix before the leading boundary; the
	// last is the empty tail after the final one.
	for i, block := range blocks {
		if len(block) == 0 {
			if i == 0 || i == len(blocks)-1 {
				continue
			}
			return nil, fmt.Errorf("empty field block at index %d", i)
		}

		sep := bytes.Index(block, []byte("\r\n\r\n"))
		if sep < 0 {
			return nil, fmt.Errorf("field block %d has no header terminator", i)
		}

		part := Part{Payload: block[sep+4:]}
		for _, line := range strings.Split(string(block[:sep]), "\r\n") {
			name, value, ok := strings.Cut(line, ":")
			if !ok {
				return nil, fmt.Errorf("malformed header line %q", line)
			}
			value = strings.TrimSpace(value)
			switch strings.ToLower(name) {
			case "content-disposition":
				_, params, err := mime.ParseMediaType(value)
				if err != nil {
					return nil, fmt.Errorf("malformed content disposition %q: %w", value, err)
				}
				part.Name = params["name"]
				part.Filename = params["filename"]
			case "content-type":
				part.ContentType = value
			}
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// PartByName returns the first part with the given field name.
func PartByName(parts []Part, name string) (Part, bool) {
	for _, p := range parts {
		if p.Name == name {
			return p, true
		}
	}
	return Part{}, false
}
