// Package color converts between hex color strings and 8-bit RGB channels.
package color

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidColorFormat is returned when a string is not a 6-digit hex color.
var ErrInvalidColorFormat = errors.New("invalid color format")

const (
	// DefaultDarkenFactor is the darkening applied when no factor is given.
	DefaultDarkenFactor = 500

	// MaxDarkenFactor drives every channel to zero.
	MaxDarkenFactor = 1000

	// Black is returned for attributes that are not defined.
	Black = "#000000"
)

// RGB holds the three 8-bit channels of a color.
type RGB struct {
	R, G, B uint8
}

// Hex renders the color as #rrggbb.
func (c RGB) Hex() string {
	return Encode(c)
}

// Decode parses "#rrggbb" or "rrggbb" (case-insensitive).
func Decode(s string) (RGB, error) {
	digits := s
	if len(digits) > 0 && digits[0] == '#' {
		digits = digits[1:]
	}
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Encode renders channels as lowercase #rrggbb.
func Encode(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Normalize returns the canonical lowercase #rrggbb form of s.
func Normalize(s string) (string, error) {
	c, err := Decode(s)
	if err != nil {
		return "", err
	}
	return Encode(c), nil
}

// Darken scales every channel by (1000-factor)/1000, rounding down.
// The factor is clamped into [0, MaxDarkenFactor].
func Darken(s string, factor int) (string, error) {
	c, err := Decode(s)
	if err != nil {
		return "", err
	}

	factor = min(max(factor, 0), MaxDarkenFactor)
	keep := uint32(MaxDarkenFactor - factor)
	scale := func(v uint8) uint8 {
		return uint8(uint32(v) * keep / MaxDarkenFactor)
	}

	return Encode(RGB{R: scale(c.R), G: scale(c.G), B: scale(c.B)}), nil
}
