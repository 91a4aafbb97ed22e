package theme

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themekit/internal/color"
	"github.com/opencode-ai/themekit/internal/metrics"
)

func intPtr(v int) *int { return &v }

func newTestRegistry(opts ...Option) *Registry {
	return NewRegistry(zerolog.Nop(), opts...)
}

func threeThemes() *Registry {
	r := newTestRegistry()
	r.AddTheme("light", NewAttributes(Attr{"bg", "#ffffff"}))
	r.AddTheme("dark", NewAttributes(Attr{"bg", "#222222"}))
	r.AddTheme("solarized", NewAttributes(Attr{"bg", "#002b36"}))
	return r
}

func TestResolveAttribute(t *testing.T) {
	r := newTestRegistry()
	r.AddTheme("dark", NewAttributes(Attr{"bg", "#222222"}))
	require.NoError(t, r.SetTheme("dark"))

	got, err := r.ResolveAttribute("bg", nil)
	require.NoError(t, err)
	assert.Equal(t, "#222222", got)

	got, err = r.ResolveAttribute("missing", nil)
	require.NoError(t, err)
	assert.Equal(t, color.Black, got)
}

func TestResolveAttributeWithModifier(t *testing.T) {
	r := newTestRegistry()
	r.AddTheme("light", NewAttributes(Attr{"bg", "#ffffff"}, Attr{"bad", "nope"}))
	require.NoError(t, r.SetTheme("light"))

	got, err := r.ResolveAttribute("bg", intPtr(500))
	require.NoError(t, err)
	assert.Equal(t, "#7f7f7f", got)

	got, err = r.ResolveAttribute("missing", intPtr(500))
	require.NoError(t, err)
	assert.Equal(t, "#000000", got)

	_, err = r.ResolveAttribute("bad", intPtr(100))
	require.ErrorIs(t, err, color.ErrInvalidColorFormat)

	// Without a modifier, stored values are returned as-is.
	got, err = r.ResolveAttribute("bad", nil)
	require.NoError(t, err)
	assert.Equal(t, "nope", got)
}

func TestResolveAttributeNoActiveTheme(t *testing.T) {
	r := newTestRegistry()
	r.AddTheme("dark", NewAttributes(Attr{"bg", "#222222"}))

	_, err := r.ResolveAttribute("bg", nil)
	require.ErrorIs(t, err, ErrNoActiveTheme)

	_, err = r.ActiveTheme()
	require.ErrorIs(t, err, ErrNoActiveTheme)
}

func TestStrictAttributes(t *testing.T) {
	r := newTestRegistry(WithStrictAttributes())
	r.AddTheme("dark", NewAttributes(Attr{"bg", "#222222"}))
	require.NoError(t, r.SetTheme("dark"))

	_, err := r.ResolveAttribute("missing", nil)
	require.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestOverlayPrecedence(t *testing.T) {
	r := newTestRegistry()
	r.SetBase(NewAttributes(Attr{"bg", "#ffffff"}, Attr{"fg", "#000000"}))
	r.AddTheme("dark", NewAttributes(Attr{"bg", "#222222"}))
	require.NoError(t, r.SetTheme("dark"))

	bg, err := r.ResolveAttribute("bg", nil)
	require.NoError(t, err)
	assert.Equal(t, "#222222", bg)

	fg, err := r.ResolveAttribute("fg", nil)
	require.NoError(t, err)
	assert.Equal(t, "#000000", fg)
}

func TestSetBaseIsNotRetroactive(t *testing.T) {
	r := newTestRegistry()
	r.AddTheme("plain", NewAttributes(Attr{"bg", "#111111"}))
	r.SetBase(NewAttributes(Attr{"fg", "#eeeeee"}))
	r.AddTheme("layered", NewAttributes(Attr{"bg", "#333333"}))

	plain, _ := r.Theme("plain")
	_, ok := plain.Lookup("fg")
	assert.False(t, ok)

	layered, _ := r.Theme("layered")
	fg, ok := layered.Lookup("fg")
	assert.True(t, ok)
	assert.Equal(t, "#eeeeee", fg)

	base, ok := r.Base()
	require.True(t, ok)
	assert.Equal(t, BaseThemeName, base.Name())
}

func TestAddThemeOverwrites(t *testing.T) {
	r := threeThemes()
	require.NoError(t, r.SetTheme("dark"))

	r.AddTheme("dark", NewAttributes(Attr{"bg", "#010101"}))

	assert.Equal(t, []string{"light", "dark", "solarized"}, r.ThemeNames())
	active, err := r.ActiveTheme()
	require.NoError(t, err)
	got, _ := active.Lookup("bg")
	assert.Equal(t, "#010101", got)
}

func TestSetThemeUnknown(t *testing.T) {
	r := threeThemes()
	require.NoError(t, r.SetTheme("dark"))

	err := r.SetTheme("nope")
	require.ErrorIs(t, err, ErrUnknownTheme)

	active, err := r.ActiveTheme()
	require.NoError(t, err)
	assert.Equal(t, "dark", active.Name())
}

func TestNextThemeCycles(t *testing.T) {
	r := threeThemes()
	require.NoError(t, r.SetTheme("dark"))

	require.NoError(t, r.NextTheme())
	active, _ := r.ActiveTheme()
	assert.Equal(t, "solarized", active.Name())

	require.NoError(t, r.NextTheme())
	active, _ = r.ActiveTheme()
	assert.Equal(t, "light", active.Name())
}

func TestNextThemeErrors(t *testing.T) {
	r := newTestRegistry()
	require.ErrorIs(t, r.NextTheme(), ErrEmptyRegistry)

	r.AddTheme("light", NewAttributes())
	require.ErrorIs(t, r.NextTheme(), ErrNoActiveTheme)
}

func TestThemeNamesInsertionOrder(t *testing.T) {
	r := threeThemes()
	assert.Equal(t, []string{"light", "dark", "solarized"}, r.ThemeNames())
}

func TestObserversNotifiedInOrder(t *testing.T) {
	r := threeThemes()

	var calls []string
	r.AddObserver(func() error { calls = append(calls, "first"); return nil })
	r.AddObserver(func() error { calls = append(calls, "second"); return nil })
	r.AddObserver(func() error { calls = append(calls, "third"); return nil })

	require.NoError(t, r.SetTheme("dark"))
	assert.Equal(t, []string{"first", "second", "third"}, calls)

	calls = nil
	require.NoError(t, r.NextTheme())
	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestFailedSetThemeDoesNotNotify(t *testing.T) {
	r := threeThemes()
	called := 0
	r.AddObserver(func() error { called++; return nil })

	require.Error(t, r.SetTheme("missing"))
	assert.Zero(t, called)
}

func TestRemoveObserver(t *testing.T) {
	r := threeThemes()
	called := 0
	id := r.AddObserver(func() error { called++; return nil })

	assert.True(t, r.RemoveObserver(id))
	assert.False(t, r.RemoveObserver(id))
	assert.Equal(t, 0, r.ObserverCount())

	require.NoError(t, r.SetTheme("dark"))
	assert.Zero(t, called)
}

func TestObserverRemovedDuringNotificationIsSkipped(t *testing.T) {
	r := threeThemes()

	var secondID ObserverID
	secondCalled := false
	r.AddObserver(func() error {
		r.RemoveObserver(secondID)
		return nil
	})
	secondID = r.AddObserver(func() error { secondCalled = true; return nil })

	require.NoError(t, r.SetTheme("dark"))
	assert.False(t, secondCalled)
}

func TestObserverErrorStopsNotification(t *testing.T) {
	r := threeThemes()
	boom := errors.New("boom")

	lastCalled := false
	r.AddObserver(func() error { return boom })
	r.AddObserver(func() error { lastCalled = true; return nil })

	err := r.SetTheme("dark")
	require.ErrorIs(t, err, boom)
	assert.False(t, lastCalled)

	active, err := r.ActiveTheme()
	require.NoError(t, err)
	assert.Equal(t, "dark", active.Name())
}

func TestReentrantThemeChangeRejected(t *testing.T) {
	r := threeThemes()

	var inner error
	r.AddObserver(func() error {
		inner = r.SetTheme("light")
		return nil
	})

	require.NoError(t, r.SetTheme("dark"))
	require.ErrorIs(t, inner, ErrReentrantThemeChange)

	active, _ := r.ActiveTheme()
	assert.Equal(t, "dark", active.Name())

	// The guard is released once notification completes.
	inner = nil
	r.AddObserver(func() error { return nil })
	require.NoError(t, r.SetTheme("solarized"))
	require.ErrorIs(t, inner, ErrReentrantThemeChange)
	require.NoError(t, r.NextTheme())
}

func TestObserverMayReadRegistry(t *testing.T) {
	r := threeThemes()

	var seen string
	r.AddObserver(func() error {
		v, err := r.ResolveAttribute("bg", nil)
		seen = v
		return err
	})

	require.NoError(t, r.SetTheme("solarized"))
	assert.Equal(t, "#002b36", seen)
}

func TestRegistryMetrics(t *testing.T) {
	promRegistry := prometheus.NewRegistry()
	r := newTestRegistry(WithMetrics(metrics.NewRegistry(promRegistry)))
	r.AddTheme("dark", NewAttributes(Attr{"bg", "#222222"}))
	r.AddObserver(func() error { return nil })

	require.NoError(t, r.SetTheme("dark"))
	_, err := r.ResolveAttribute("missing", nil)
	require.NoError(t, err)
	_, err = r.ResolveAttribute("also_missing", intPtr(500))
	require.NoError(t, err)

	expected := `
# HELP themekit_attribute_fallbacks_total Number of lookups of undefined attributes answered with the fallback color, by theme name.
# TYPE themekit_attribute_fallbacks_total counter
themekit_attribute_fallbacks_total{theme="dark"} 2
# HELP themekit_observer_notifications_total Number of observer callbacks invoked after a theme change.
# TYPE themekit_observer_notifications_total counter
themekit_observer_notifications_total 1
# HELP themekit_theme_changes_total Number of times the active theme was set, by theme name.
# TYPE themekit_theme_changes_total counter
themekit_theme_changes_total{theme="dark"} 1
`
	require.NoError(t, testutil.GatherAndCompare(promRegistry, strings.NewReader(expected),
		"themekit_attribute_fallbacks_total",
		"themekit_observer_notifications_total",
		"themekit_theme_changes_total",
	))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := threeThemes()
	require.NoError(t, r.SetTheme("light"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = r.ResolveAttribute("bg", nil)
		}()
		go func() {
			defer wg.Done()
			_ = r.ThemeNames()
		}()
	}
	wg.Wait()
}

func TestDarkenDelegates(t *testing.T) {
	r := newTestRegistry()
	got, err := r.Darken("#ffffff", color.MaxDarkenFactor)
	require.NoError(t, err)
	assert.Equal(t, "#000000", got)
}
