package color

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	c, err := Decode("#1a2B3c")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0x1a, G: 0x2b, B: 0x3c}, c)

	c, err = Decode("ffffff")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 255, G: 255, B: 255}, c)
}

func TestDecodeInvalid(t *testing.T) {
	for _, input := range []string{"", "#", "#fff", "#12345", "#1234567", "##123456", "#12345g", "red", "#+12345"} {
		_, err := Decode(input)
		if !errors.Is(err, ErrInvalidColorFormat) {
			t.Fatalf("Decode(%q): expected ErrInvalidColorFormat, got %v", input, err)
		}
	}
}

func TestEncodePadsLowercase(t *testing.T) {
	assert.Equal(t, "#0a00ff", Encode(RGB{R: 10, G: 0, B: 255}))
	assert.Equal(t, "#000000", RGB{}.Hex())
}

func TestRoundTripNormalizes(t *testing.T) {
	for input, want := range map[string]string{
		"#ABCDEF": "#abcdef",
		"abcdef":  "#abcdef",
		"#00Ff7F": "#00ff7f",
	} {
		c, err := Decode(input)
		require.NoError(t, err)
		assert.Equal(t, want, Encode(c))

		normalized, err := Normalize(input)
		require.NoError(t, err)
		assert.Equal(t, want, normalized)
	}
}

func TestDarken(t *testing.T) {
	tests := []struct {
		color  string
		factor int
		want   string
	}{
		{"#ffffff", 500, "#7f7f7f"},
		{"#ffffff", 0, "#ffffff"},
		{"#ABCDEF", 0, "#abcdef"},
		{"#123456", 1000, "#000000"},
		{"#123456", 5000, "#000000"},
		{"#0a0a0a", 900, "#010101"},
		{"#ff8000", 300, "#b25900"},
		{"#123456", -10, "#123456"},
	}

	for _, tt := range tests {
		got, err := Darken(tt.color, tt.factor)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Darken(%q, %d)", tt.color, tt.factor)
	}
}

func TestDarkenInvalidColor(t *testing.T) {
	_, err := Darken("not-a-color", DefaultDarkenFactor)
	require.ErrorIs(t, err, ErrInvalidColorFormat)
}
