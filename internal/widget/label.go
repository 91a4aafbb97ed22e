// Package widget provides terminal widgets that accept themed style strings.
package widget

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Label is a text widget rendered with lipgloss. It implements
// binding.Styler: the style string is a list of "property: value;"
// declarations, optionally wrapped in a "selector { ... }" block.
//
// Supported properties: color, background, border-color, bold, italic,
// underline, padding. Unknown properties are ignored.
type Label struct {
	mu    sync.RWMutex
	text  string
	raw   string
	style lipgloss.Style
}

// NewLabel creates an unstyled label.
func NewLabel(text string) *Label {
	return &Label{text: text, style: lipgloss.NewStyle()}
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	l.mu.Lock()
	l.text = text
	l.mu.Unlock()
}

// ApplyStyle parses style and uses it for subsequent renders.
func (l *Label) ApplyStyle(style string) {
	built := BuildStyle(style)

	l.mu.Lock()
	l.raw = style
	l.style = built
	l.mu.Unlock()
}

// StyleString returns the last style string applied.
func (l *Label) StyleString() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.raw
}

// Style returns the lipgloss style built from the last applied style string.
func (l *Label) Style() lipgloss.Style {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.style
}

// Render returns the styled text.
func (l *Label) Render() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.style.Render(l.text)
}

// Declaration is one "property: value" pair from a style string.
type Declaration struct {
	Property string
	Value    string
}

// ParseDeclarations splits a style string into declarations. Property names
// are lowercased; empty or malformed entries are skipped.
func ParseDeclarations(style string) []Declaration {
	body := style
	if open := strings.Index(body, "{"); open >= 0 {
		body = body[open+1:]
		if end := strings.LastIndex(body, "}"); end >= 0 {
			body = body[:end]
		}
	}

	decls := make([]Declaration, 0)
	for _, part := range strings.Split(body, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		if prop == "" || value == "" {
			continue
		}
		decls = append(decls, Declaration{Property: prop, Value: value})
	}
	return decls
}

// BuildStyle converts a style string into a lipgloss style.
func BuildStyle(style string) lipgloss.Style {
	s := lipgloss.NewStyle()
	for _, decl := range ParseDeclarations(style) {
		switch decl.Property {
		case "color", "foreground":
			s = s.Foreground(lipgloss.Color(decl.Value))
		case "background", "background-color":
			s = s.Background(lipgloss.Color(decl.Value))
		case "border-color":
			s = s.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(decl.Value))
		case "bold":
			s = s.Bold(parseBool(decl.Value))
		case "italic":
			s = s.Italic(parseBool(decl.Value))
		case "underline":
			s = s.Underline(parseBool(decl.Value))
		case "padding":
			if sides := parsePadding(decl.Value); len(sides) > 0 {
				s = s.Padding(sides...)
			}
		}
	}
	return s
}

func parseBool(value string) bool {
	v, err := strconv.ParseBool(value)
	return err == nil && v
}

func parsePadding(value string) []int {
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 4 {
		return nil
	}
	sides := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSuffix(f, "px"))
		if err != nil || n < 0 {
			return nil
		}
		sides = append(sides, n)
	}
	return sides
}
