// Package tui implements the themekit theme preview.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/themekit/internal/binding"
	"github.com/opencode-ai/themekit/internal/theme"
	"github.com/opencode-ai/themekit/internal/widget"
)

// Config configures the preview program.
type Config struct {
	Registry *theme.Registry
	Logger   zerolog.Logger

	// Samples overrides the default widget samples.
	Samples []Sample
}

// Sample is one themed widget shown in the preview.
type Sample struct {
	Text     string
	Template string
}

// DefaultSamples exercises the attributes defined by the builtin themes.
var DefaultSamples = []Sample{
	{Text: "themekit preview", Template: "color: theme.text; bold: true"},
	{Text: "Panel text on a bordered panel", Template: "color: theme.text; background: theme.panel; border-color: theme.border; padding: 0 1"},
	{Text: "Muted secondary text", Template: "color: theme.text_muted"},
	{Text: "Accent", Template: "color: theme.accent; bold: true"},
	{Text: " Button ", Template: "color: theme.background; background: theme.accent; padding: 0 1"},
	{Text: " Button (pressed) ", Template: "color: theme.background; background: theme.accent[300]; padding: 0 1"},
	{Text: "Focused", Template: "color: theme.focus; underline: true"},
	{Text: "Success", Template: "color: theme.success"},
	{Text: "Warning", Template: "color: theme.warning"},
	{Text: "Error", Template: "color: theme.error"},
	{Text: "Info", Template: "color: theme.info; italic: true"},
}

// Run launches the preview and tears down every binding on exit.
func Run(cfg Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	defer m.close()

	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type model struct {
	registry *theme.Registry
	logger   zerolog.Logger
	labels   []*widget.Label
	bindings []*binding.Binding
	status   *widget.Label
	hint     *widget.Label
	width    int
	height   int
	err      error
}

func newModel(cfg Config) (model, error) {
	if cfg.Registry == nil {
		return model{}, errors.New("registry is required")
	}

	samples := cfg.Samples
	if len(samples) == 0 {
		samples = DefaultSamples
	}

	m := model{
		registry: cfg.Registry,
		logger:   cfg.Logger,
		status:   widget.NewLabel(""),
		hint:     widget.NewLabel("t/n next theme | q quit"),
	}

	chrome := []struct {
		label    *widget.Label
		template string
	}{
		{m.status, "color: theme.accent; bold: true"},
		{m.hint, "color: theme.text_muted"},
	}
	for _, c := range chrome {
		b, err := binding.Bind(cfg.Registry, c.label, c.template, cfg.Logger)
		if err != nil {
			m.close()
			return model{}, err
		}
		m.bindings = append(m.bindings, b)
	}

	for _, sample := range samples {
		label := widget.NewLabel(sample.Text)
		b, err := binding.Bind(cfg.Registry, label, sample.Template, cfg.Logger)
		if err != nil {
			m.close()
			return model{}, fmt.Errorf("bind sample %q: %w", sample.Text, err)
		}
		m.labels = append(m.labels, label)
		m.bindings = append(m.bindings, b)
	}

	m.updateStatus()
	return m, nil
}

func (m model) close() {
	for _, b := range m.bindings {
		b.Unbind()
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "t", "n", "tab":
			m.err = m.registry.NextTheme()
			if m.err != nil {
				m.logger.Error().Err(m.err).Msg("switch theme")
			}
			m.updateStatus()
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) updateStatus() {
	active, err := m.registry.ActiveTheme()
	if err != nil {
		m.status.SetText("No theme active")
		return
	}
	names := m.registry.ThemeNames()
	pos := 0
	for i, name := range names {
		if name == active.Name() {
			pos = i + 1
			break
		}
	}
	m.status.SetText(fmt.Sprintf("Theme: %s (%d/%d)", active.Name(), pos, len(names)))
}

func (m model) View() string {
	lines := []string{m.status.Render(), ""}
	for _, label := range m.labels {
		lines = append(lines, label.Render())
	}
	if m.err != nil {
		lines = append(lines, "", "Error: "+m.err.Error())
	}
	lines = append(lines, "", m.hint.Render())
	return strings.Join(lines, "\n") + "\n"
}
