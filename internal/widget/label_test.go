package widget

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclarations(t *testing.T) {
	decls := ParseDeclarations("Label { Color: #ffffff; background: #000000;; junk; bold:true }")
	require.Len(t, decls, 3)
	assert.Equal(t, Declaration{Property: "color", Value: "#ffffff"}, decls[0])
	assert.Equal(t, Declaration{Property: "background", Value: "#000000"}, decls[1])
	assert.Equal(t, Declaration{Property: "bold", Value: "true"}, decls[2])
}

func TestParseDeclarationsWithoutBlock(t *testing.T) {
	decls := ParseDeclarations("color: #123456")
	require.Len(t, decls, 1)
	assert.Equal(t, "#123456", decls[0].Value)
	assert.Empty(t, ParseDeclarations(""))
}

func TestBuildStyle(t *testing.T) {
	s := BuildStyle("color: #ff0000; background: #00ff00; bold: true; italic: yes; padding: 1 2")

	assert.Equal(t, lipgloss.Color("#ff0000"), s.GetForeground())
	assert.Equal(t, lipgloss.Color("#00ff00"), s.GetBackground())
	assert.True(t, s.GetBold())
	assert.False(t, s.GetItalic())
	assert.Equal(t, 1, s.GetPaddingTop())
	assert.Equal(t, 2, s.GetPaddingRight())
}

func TestBuildStyleBorder(t *testing.T) {
	s := BuildStyle("border-color: #abcdef")
	assert.True(t, s.GetBorderTop())
	assert.Equal(t, lipgloss.Color("#abcdef"), s.GetBorderTopForeground())
}

func TestParsePaddingRejectsInvalid(t *testing.T) {
	assert.Nil(t, parsePadding("a b"))
	assert.Nil(t, parsePadding("1 2 3 4 5"))
	assert.Nil(t, parsePadding("-1"))
	assert.Equal(t, []int{3}, parsePadding("3px"))
}

func TestLabelApplyStyle(t *testing.T) {
	l := NewLabel("hello")
	assert.Contains(t, l.Render(), "hello")

	l.ApplyStyle("color: #ffffff; padding: 0 1")
	assert.Equal(t, "color: #ffffff; padding: 0 1", l.StyleString())
	assert.Equal(t, lipgloss.Color("#ffffff"), l.Style().GetForeground())

	l.SetText("world")
	rendered := l.Render()
	assert.Contains(t, rendered, "world")
	assert.True(t, strings.HasPrefix(rendered, " ") || strings.Contains(rendered, " world"))
}
