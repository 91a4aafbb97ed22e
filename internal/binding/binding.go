// Package binding keeps a widget's style in sync with the active theme.
package binding

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/themekit/internal/placeholder"
	"github.com/opencode-ai/themekit/internal/theme"
)

// Styler is anything that can apply a resolved style string.
type Styler interface {
	ApplyStyle(style string)
}

// Registry is the part of theme.Registry a binding needs.
type Registry interface {
	ResolveAttribute(key string, modifier *int) (string, error)
	AddObserver(fn theme.Observer) theme.ObserverID
	RemoveObserver(id theme.ObserverID) bool
}

// Binding couples one widget to one style template. Call Unbind when the
// widget goes away; the registry keeps calling Refresh until then.
type Binding struct {
	registry Registry
	widget   Styler
	logger   zerolog.Logger

	mu       sync.Mutex
	template string
	id       theme.ObserverID
	bound    bool
}

// Bind registers widget for theme changes and styles it from template right
// away. If the initial refresh fails (for example with
// theme.ErrNoActiveTheme) the registration is undone and an error returned.
func Bind(registry Registry, widget Styler, template string, logger zerolog.Logger) (*Binding, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if widget == nil {
		return nil, fmt.Errorf("widget is required")
	}

	b := &Binding{
		registry: registry,
		widget:   widget,
		template: template,
		logger:   logger,
	}

	// Registered first so no theme change is missed before the first refresh.
	b.mu.Lock()
	b.id = registry.AddObserver(b.Refresh)
	b.bound = true
	b.mu.Unlock()

	if err := b.Refresh(); err != nil {
		registry.RemoveObserver(b.id)
		return nil, err
	}

	b.logger.Debug().Str("observer", string(b.id)).Msg("widget bound")
	return b, nil
}

// Template returns the current template.
func (b *Binding) Template() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.template
}

// SetTemplate replaces the template. The widget is restyled on the next
// theme change or Refresh call.
func (b *Binding) SetTemplate(template string) {
	b.mu.Lock()
	b.template = template
	b.mu.Unlock()
}

// Refresh resolves the template against the active theme and applies it.
func (b *Binding) Refresh() error {
	style, err := placeholder.Resolve(b.Template(), b.registry.ResolveAttribute)
	if err != nil {
		return err
	}
	b.widget.ApplyStyle(style)
	return nil
}

// Bound reports whether the binding is still registered.
func (b *Binding) Bound() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bound
}

// Unbind stops theme change notifications. It is safe to call more than once.
func (b *Binding) Unbind() {
	b.mu.Lock()
	if !b.bound {
		b.mu.Unlock()
		return
	}
	id := b.id
	b.bound = false
	b.mu.Unlock()

	b.registry.RemoveObserver(id)
	b.logger.Debug().Str("observer", string(id)).Msg("widget unbound")
}
