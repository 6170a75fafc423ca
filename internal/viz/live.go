package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/colourpush/internal/dynamo"
	"github.com/san-kum/colourpush/internal/metrics"
)

const (
	canvasWidth     = 48
	canvasHeight    = 22
	swatchWidth     = 8
	historyCapacity = 300
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(44)
)

type TickMsg time.Time

// Model drives a simulator from the bubbletea event loop. The simulator
// ticks once per TickMsg while running.
type Model struct {
	sim          *dynamo.Simulator
	name         string
	period       time.Duration
	running      bool
	canvas       *Canvas
	displacement *metrics.Displacement
	spread       *metrics.Spread
	speed        *metrics.Speed
	history      []float64
	spreads      []float64
	showHelp     bool
}

func NewModel(sim *dynamo.Simulator, name string, period time.Duration) Model {
	if period <= 0 {
		period = dynamo.DefaultPeriod
	}
	m := Model{
		sim:          sim,
		name:         name,
		period:       period,
		running:      true,
		canvas:       NewCanvas(canvasWidth, canvasHeight),
		displacement: metrics.NewDisplacement(),
		spread:       metrics.NewSpread(),
		speed:        metrics.NewSpeed(),
		history:      make([]float64, 0, historyCapacity),
		spreads:      make([]float64, 0, historyCapacity),
	}
	m.observe()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.period, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Running() bool { return m.running }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case ".":
			if !m.running && m.sim.Tick(true) {
				m.observe()
			}
		case "r":
			m.reset()
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.sim.Tick(m.running) {
			m.observe()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) observe() {
	f := m.sim.Frame()
	m.displacement.Observe(f)
	m.spread.Observe(f)
	m.speed.Observe(f)

	m.history = appendCapped(m.history, m.displacement.Last())
	m.spreads = appendCapped(m.spreads, m.spread.Value())
}

func appendCapped(s []float64, v float64) []float64 {
	s = append(s, v)
	if len(s) > historyCapacity {
		s = s[1:]
	}
	return s
}

func (m *Model) reset() {
	m.sim.Reset()
	m.displacement.Reset()
	m.spread.Reset()
	m.speed.Reset()
	m.history = m.history[:0]
	m.spreads = m.spreads[:0]
	m.observe()
}

// draw paints the cube wireframe and every point onto the canvas.
func (m Model) draw() {
	m.canvas.Clear()
	w, h := m.canvas.Dots()
	scale := float64(min(w, h)) / (2*ProjectionExtent + 20)
	cx, cy := float64(w)/2, float64(h)/2
	at := func(v dynamo.Vec3) (int, int) {
		x, y := Project(v, 0, 0)
		return int(math.Round(cx + x*scale)), int(math.Round(cy + y*scale))
	}

	wire := string(CurrentTheme.Wire)
	for _, e := range CubeEdges() {
		x0, y0 := at(e[0])
		x1, y1 := at(e[1])
		m.canvas.DrawLine(x0, y0, x1, y1, wire)
	}

	for _, mk := range Arrange(m.sim.Frame().Points, 0, 0) {
		x, y := at(mk.Point.Pos)
		r := int(math.Max(1, mk.Size*scale/2))
		m.canvas.Fill(x, y, r, mk.Shape == Disc, mk.Fill.Hex())
	}
}

func (m Model) View() string {
	m.draw()
	f := m.sim.Frame()

	status := fg(CurrentTheme.Running).Bold(true).Render("RUNNING")
	if !m.running {
		status = fg(CurrentTheme.Paused).Bold(true).Render("PAUSED")
	}

	var s strings.Builder
	s.WriteString(header().Render(strings.ToUpper(m.name)) + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(SwatchStrip(f.Slots, swatchWidth) + "\n\n")

	s.WriteString(label().Render("Tick") + value().Render(fmt.Sprintf("%d", f.Tick)) + "\n")
	s.WriteString(label().Render("Displacement") + value().Render(fmt.Sprintf("%.2f", m.displacement.Last())) + "\n")
	s.WriteString(label().Render("Spread") + value().Render(fmt.Sprintf("%.2f", m.spread.Value())) + "\n")
	s.WriteString(label().Render("Speed") + value().Render(fmt.Sprintf("%.4f", m.speed.Value())) + "\n")
	s.WriteString(label().Render("Theme") + value().Render(CurrentTheme.Name) + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("displacement"))
		s.WriteString(fg(CurrentTheme.Secondary).Render(chart) + "\n")
	}
	s.WriteString(label().Render("spread") + SparklineChart(m.spreads, 24) + "\n")

	s.WriteString("\n" + Separator(36) + "\n")
	s.WriteString(hint().Render("SP:Pause  .:Step  R:Reset\nT:Theme   ?:Help  Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(m.canvas.String()), statsStyle.Render(s.String()))
	if m.showHelp {
		return helpText + "\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  .        - Single tick while paused ║
║  R        - Reset to home colours    ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
`

// RunLive opens the live view full screen until the user quits.
func RunLive(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
