// Package theme provides named color themes and the registry that tracks the
// active one.
package theme

// BaseThemeName names the theme holding shared defaults.
const BaseThemeName = "_base_"

// Theme is a named, immutable set of attributes. A changed theme is a new
// Theme value.
type Theme struct {
	name  string
	attrs Attributes
}

// New creates a Theme. When base is non-nil its attributes sit beneath attrs,
// and attrs wins on conflicting keys. Colors are not validated here.
func New(name string, attrs Attributes, base *Attributes) *Theme {
	merged := attrs.Clone()
	if base != nil {
		merged = attrs.Overlay(*base)
	}
	return &Theme{name: name, attrs: merged}
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// Lookup returns the value stored for key.
func (t *Theme) Lookup(key string) (string, bool) {
	return t.attrs.Get(key)
}

// Keys returns attribute keys in order.
func (t *Theme) Keys() []string {
	return t.attrs.Keys()
}

// Len returns the number of attributes.
func (t *Theme) Len() int {
	return t.attrs.Len()
}

// Attributes returns a copy of the theme's attributes.
func (t *Theme) Attributes() Attributes {
	return t.attrs.Clone()
}

func (t *Theme) String() string {
	return t.name
}
