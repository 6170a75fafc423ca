package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/colourpush/internal/config"
	"github.com/san-kum/colourpush/internal/experiment"
)

const (
	stateMenu = iota
	stateOptions
	stateSim
)

type option struct {
	name  string
	value func(*config.Config) string
	cycle func(*config.Config, *experiment.Registry)
}

var options = []option{
	{
		name:  "integrator",
		value: func(c *config.Config) string { return c.Integrator },
		cycle: func(c *config.Config, reg *experiment.Registry) {
			names := reg.ListIntegrators()
			for i, n := range names {
				if n == c.Integrator {
					c.Integrator = names[(i+1)%len(names)]
					return
				}
			}
			c.Integrator = names[0]
		},
	},
	{
		name:  "walls",
		value: func(c *config.Config) string { return onOff(c.Walls) },
		cycle: func(c *config.Config, _ *experiment.Registry) { c.Walls = !c.Walls },
	},
	{
		name:  "self pull",
		value: func(c *config.Config) string { return onOff(c.SelfPull) },
		cycle: func(c *config.Config, _ *experiment.Registry) { c.SelfPull = !c.SelfPull },
	},
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// picker chooses a preset and a few switches before opening the live view.
type picker struct {
	state, cursor int
	presets       []string
	cfg           *config.Config
	registry      *experiment.Registry
	optCursor     int
	err           error
	live          Model
}

func NewPicker(base *config.Config) *picker {
	cfg := *base
	cfg.Anchors, cfg.Movable = nil, nil
	return &picker{
		state:    stateMenu,
		presets:  config.ListPresets(),
		cfg:      &cfg,
		registry: experiment.NewRegistry(),
	}
}

func (m picker) Init() tea.Cmd { return nil }

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case stateMenu:
			return m.menuKey(key)
		case stateOptions:
			return m.optionsKey(key)
		}
	}
	if m.state == stateSim {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}
	return m, nil
}

func (m picker) menuKey(msg tea.KeyMsg) (picker, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.cfg.Scheme = m.presets[m.cursor]
		m.state, m.optCursor, m.err = stateOptions, 0, nil
	}
	return m, nil
}

func (m picker) optionsKey(msg tea.KeyMsg) (picker, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.optCursor > 0 {
			m.optCursor--
		}
	case "down", "j":
		if m.optCursor < len(options)-1 {
			m.optCursor++
		}
	case "enter", " ", "left", "right", "h", "l":
		options[m.optCursor].cycle(m.cfg, m.registry)
	case "s":
		return m.start()
	}
	return m, nil
}

func (m picker) start() (picker, tea.Cmd) {
	exp := experiment.New(m.cfg, nil)
	if err := exp.Setup(m.registry); err != nil {
		m.err = err
		return m, nil
	}
	m.live = NewModel(exp.GetSimulator(), m.cfg.Scheme, m.cfg.Period)
	m.state = stateSim
	return m, m.live.Init()
}

func (m picker) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateOptions:
		return m.viewOptions()
	case stateSim:
		return m.live.View()
	}
	return ""
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	idleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

func keys(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(keyStyle.Render(pairs[i]) + idleStyle.Render(" "+pairs[i+1]+"  "))
	}
	return b.String()
}

func (m picker) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + titleStyle.Render("COLOURPUSH") + "\n    " + subStyle.Render("palettes that keep their distance") + "\n    " + subStyle.Render("─────────────────────────") + "\n\n")
	for i, name := range m.presets {
		p := config.GetPreset(name)
		strip := ""
		for _, pc := range p.Movable {
			strip += Swatch(pc.Point().Home, 2)
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s %s  %s\n", cursorStyle.Render("▸"), selectedStyle.Render(fmt.Sprintf("%-10s", name)), strip, subStyle.Render(p.Description)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", idleStyle.Render(fmt.Sprintf("%-10s", name)), strip))
		}
	}
	b.WriteString("\n    " + keys("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

func (m picker) viewOptions() string {
	var b strings.Builder
	b.WriteString("\n\n    " + titleStyle.Render(strings.ToUpper(m.cfg.Scheme)) + "\n    " + subStyle.Render("─────────────────────────") + "\n\n")
	for i, o := range options {
		if i == m.optCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", cursorStyle.Render("▸"), selectedStyle.Render(fmt.Sprintf("%-12s", o.name)), selectedStyle.Render(o.value(m.cfg))))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", idleStyle.Render(fmt.Sprintf("%-12s", o.name)), idleStyle.Render(o.value(m.cfg))))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + errStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + keys("j/k", "select", "h/l", "change", "s", "start", "esc", "back") + "\n")
	return b.String()
}

// RunInteractive opens the preset picker full screen.
func RunInteractive(base *config.Config) error {
	_, err := tea.NewProgram(NewPicker(base), tea.WithAltScreen()).Run()
	return err
}
