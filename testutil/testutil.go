// Package testutil provides fixtures and helpers for testing request
// encoding: static sessions, deterministic images, and a parser for the
// multipart wire format.
package testutil

import (
	"image"
	"image/color"
)

// StaticSession is a Session with fixed credentials.
type StaticSession struct {
	Token string
	AppID string
}

// AccessToken returns the fixed token.
func (s *StaticSession) AccessToken() string { return s.Token }

// ApplicationID returns the fixed application id.
func (s *StaticSession) ApplicationID() string { return s.AppID }

// NewSession creates a static session with the given credentials.
func NewSession(token, appID string) *StaticSession {
	return &StaticSession{Token: token, AppID: appID}
}

// TestImage generates a deterministic gradient image, so repeated
// encodes of the same dimensions produce identical PNG bytes.
func TestImage(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 17),
				G: uint8(y * 31),
				B: uint8((x + y) * 7),
				A: 255,
			})
		}
	}
	return img
}
