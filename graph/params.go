package graph

import (
	"image"
)

// ValueKind discriminates the closed set of parameter value variants.
type ValueKind int

const (
	// TextKind values are serialized into query strings or text fields.
	TextKind ValueKind = iota + 1
	// ImageKind values are re-encoded to PNG and carried as attachments.
	ImageKind
	// BlobKind values are carried as raw-byte attachments.
	BlobKind
)

// String returns the kind name for diagnostics.
func (k ValueKind) String() string {
	switch k {
	case TextKind:
		return "text"
	case ImageKind:
		return "image"
	case BlobKind:
		return "blob"
	default:
		return "invalid"
	}
}

// Value is a tagged parameter value: exactly one of text, image, or
// blob. The zero Value is invalid; construct values through TextValue,
// ImageValue, BlobValue, or ValueOf.
type Value struct {
	kind ValueKind
	text string
	img  image.Image
	blob []byte
}

// TextValue wraps a string parameter.
func TextValue(s string) Value {
	return Value{kind: TextKind, text: s}
}

// ImageValue wraps an image parameter.
func ImageValue(img image.Image) Value {
	return Value{kind: ImageKind, img: img}
}

// BlobValue wraps a raw-byte parameter.
func BlobValue(b []byte) Value {
	return Value{kind: BlobKind, blob: b}
}

// ValueOf converts a dynamically typed value into the closed variant
// set, rejecting anything else at construction time rather than during
// encoding.
func ValueOf(key string, v interface{}) (Value, error) {
	switch t := v.(type) {
	case string:
		return TextValue(t), nil
	case image.Image:
		return ImageValue(t), nil
	case []byte:
		return BlobValue(t), nil
	case Value:
		if t.kind == 0 {
			return Value{}, ErrUnsupportedValueType(key, t)
		}
		return t, nil
	default:
		return Value{}, ErrUnsupportedValueType(key, v)
	}
}

// Kind returns the value's variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// Text returns the string payload of a TextKind value.
func (v Value) Text() string { return v.text }

// Image returns the image payload of an ImageKind value.
func (v Value) Image() image.Image { return v.img }

// Blob returns the byte payload of a BlobKind value.
func (v Value) Blob() []byte { return v.blob }

// IsAttachment reports whether the value is carried out-of-line as a
// binary attachment rather than inline text.
func (v Value) IsAttachment() bool {
	return v.kind == ImageKind || v.kind == BlobKind
}

// Params is an ordered mapping of parameter name to Value. Keys are
// unique; setting an existing key replaces its value in place without
// changing its position.
type Params struct {
	keys   []string
	values map[string]Value
}

// NewParams creates an empty parameter list.
func NewParams() *Params {
	return &Params{values: make(map[string]Value)}
}

// Set stores v under key, preserving the key's original position when
// it already exists.
func (p *Params) Set(key string, v Value) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
}

// SetText stores a text value under key.
func (p *Params) SetText(key, value string) {
	p.Set(key, TextValue(value))
}

// SetImage stores an image value under key.
func (p *Params) SetImage(key string, img image.Image) {
	p.Set(key, ImageValue(img))
}

// SetBlob stores a raw-byte value under key.
func (p *Params) SetBlob(key string, b []byte) {
	p.Set(key, BlobValue(b))
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (Value, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.keys)
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Clone returns an independent copy preserving insertion order.
func (p *Params) Clone() *Params {
	c := &Params{
		keys:   make([]string, len(p.keys)),
		values: make(map[string]Value, len(p.values)),
	}
	copy(c.keys, p.keys)
	for k, v := range p.values {
		c.values[k] = v
	}
	return c
}
