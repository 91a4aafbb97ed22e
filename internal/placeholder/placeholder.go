// Package placeholder substitutes theme attribute references in style
// templates.
//
// A placeholder is "theme.<key>" or "theme.<key>[<factor>]", where key is one
// or more Unicode letters, digits or underscores and factor is one or more
// decimal digits of any script. Everything else in a template is copied
// through unchanged.
package placeholder

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
)

var pattern = regexp.MustCompile(`theme\.([\p{L}\p{N}_]+)(?:\[(\p{Nd}+)\])?`)

// LookupFunc resolves a key, darkened by *modifier when it is non-nil.
type LookupFunc func(key string, modifier *int) (string, error)

// Match is one placeholder found in a template.
type Match struct {
	Key      string
	Modifier *int
	Start    int
	End      int
}

// Find returns the placeholders in template, left to right, non-overlapping.
func Find(template string) []Match {
	indices := pattern.FindAllStringSubmatchIndex(template, -1)
	matches := make([]Match, 0, len(indices))
	for _, loc := range indices {
		m := Match{
			Key:   template[loc[2]:loc[3]],
			Start: loc[0],
			End:   loc[1],
		}
		if loc[4] >= 0 {
			factor := parseFactor(template[loc[4]:loc[5]])
			m.Modifier = &factor
		}
		matches = append(matches, m)
	}
	return matches
}

// Resolve replaces every placeholder in template with the value returned by
// lookup. The first lookup error stops resolution.
func Resolve(template string, lookup LookupFunc) (string, error) {
	if lookup == nil {
		return "", fmt.Errorf("lookup is required")
	}

	matches := Find(template)
	if len(matches) == 0 {
		return template, nil
	}

	var out strings.Builder
	out.Grow(len(template))
	last := 0
	for _, m := range matches {
		value, err := lookup(m.Key, m.Modifier)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", template[m.Start:m.End], err)
		}
		out.WriteString(template[last:m.Start])
		out.WriteString(value)
		last = m.End
	}
	out.WriteString(template[last:])

	return out.String(), nil
}

// Keys returns the distinct attribute keys referenced by template, in order
// of first appearance.
func Keys(template string) []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0)
	for _, m := range Find(template) {
		if _, ok := seen[m.Key]; ok {
			continue
		}
		seen[m.Key] = struct{}{}
		keys = append(keys, m.Key)
	}
	return keys
}

// parseFactor parses a digit string; values too large for int saturate.
func parseFactor(digits string) int {
	v := 0
	for _, r := range digits {
		d := digitValue(r)
		if v > (math.MaxInt-d)/10 {
			return math.MaxInt
		}
		v = v*10 + d
	}
	return v
}

// digitValue returns the value of a decimal digit rune. Every Nd block in
// Unicode is a run of ten code points starting at zero.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	for _, rg := range unicode.Nd.R16 {
		if r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10
		}
	}
	return 0
}
