package protocol

import (
	"fmt"
	"image"
)

// BatchEntry is one operation's encoded representation inside a
// multi-operation request. The JSON field order matches the envelope
// the server expects; empty optional fields are omitted.
type BatchEntry struct {
	Name          string `json:"name,omitempty"`
	RelativeURL   string `json:"relative_url"`
	Method        string `json:"method"`
	AccessToken   string `json:"access_token,omitempty"`
	AttachedFiles string `json:"attached_files,omitempty"`
	Body          string `json:"body,omitempty"`
}

// Attachment is a binary payload carried out-of-line from the batch
// envelope, referenced from entries by its generated name. Exactly one
// of Image or Blob is set.
type Attachment struct {
	Name  string
	Image image.Image
	Blob  []byte
}

// Attachments accumulates the binary payloads of a whole batch in
// discovery order. Names are unique across the batch: a fixed prefix
// plus a monotonic counter. It is a pure per-encode accumulator, built
// once per call and discarded after the body is written.
type Attachments struct {
	list []Attachment
}

// NewAttachments creates an empty accumulator.
func NewAttachments() *Attachments {
	return &Attachments{}
}

// AddImage stores img and returns its generated batch-wide name.
func (a *Attachments) AddImage(img image.Image) string {
	name := a.nextName()
	a.list = append(a.list, Attachment{Name: name, Image: img})
	return name
}

// AddBlob stores payload and returns its generated batch-wide name.
func (a *Attachments) AddBlob(payload []byte) string {
	name := a.nextName()
	a.list = append(a.list, Attachment{Name: name, Blob: payload})
	return name
}

// Len returns the number of accumulated attachments.
func (a *Attachments) Len() int {
	return len(a.list)
}

// List returns the attachments in discovery order.
func (a *Attachments) List() []Attachment {
	return a.list
}

// WriteTo serializes every attachment, in discovery order, as a binary
// field under its generated name.
func (a *Attachments) WriteTo(s *Serializer) error {
	for _, att := range a.list {
		var err error
		if att.Image != nil {
			err = s.WriteImage(att.Name, att.Image)
		} else {
			err = s.WriteBytes(att.Name, att.Blob)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *Attachments) nextName() string {
	return fmt.Sprintf("%s%d", AttachmentNamePrefix, len(a.list))
}
