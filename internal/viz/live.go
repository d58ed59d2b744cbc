package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/engine"
)

const (
	frameRate       = 60
	historyCapacity = 600
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type param struct {
	name   string
	get    func(*config.Config) float32
	adjust func(*config.Config, float32)
}

var params = []param{
	{"sigma", func(c *config.Config) float32 { return c.Sigma }, func(c *config.Config, f float32) { c.Sigma *= f }},
	{"rho", func(c *config.Config) float32 { return c.Rho }, func(c *config.Config, f float32) { c.Rho *= f }},
	{"beta", func(c *config.Config) float32 { return c.Beta }, func(c *config.Config, f float32) { c.Beta *= f }},
	{"lifetime", func(c *config.Config) float32 { return c.LifetimeSeconds() }, func(c *config.Config, f float32) {
		v := int(float32(c.TrailLifetime) * f)
		if v < 1 {
			v = 1
		}
		c.TrailLifetime = v
	}},
}

// Model drives the simulation in the terminal, plotting a head trajectory
// coordinate and the trail segment count over time.
type Model struct {
	cfg *config.Config
	eng *engine.Engine

	running       bool
	selected      int
	accumulator   float32
	xHistory      []float64
	countHistory  []float64
	lastFrameTime time.Time
}

func NewModel(cfg *config.Config) Model {
	return Model{
		cfg:          cfg,
		eng:          engine.New(cfg),
		running:      true,
		xHistory:     make([]float64, 0, historyCapacity),
		countHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and steps the simulation on each frame tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "c":
			m.eng.Clear()
			m.xHistory = m.xHistory[:0]
			m.countHistory = m.countHistory[:0]
		case "s", "enter":
			m.eng.Start()
			m.xHistory = m.xHistory[:0]
			m.countHistory = m.countHistory[:0]
		case "tab":
			m.selected = (m.selected + 1) % len(params)
		case "up", "k":
			params[m.selected].adjust(m.cfg, 1.05)
			m.cfg.Touch()
		case "down", "j":
			params[m.selected].adjust(m.cfg, 0.95)
			m.cfg.Touch()
		}
	case TickMsg:
		if m.running {
			m.step(time.Time(msg))
		} else {
			m.lastFrameTime = time.Time(msg)
		}
		return m, tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step runs as many physics ticks as the elapsed frame time covers.
func (m *Model) step(now time.Time) {
	frame := float32(1.0 / frameRate)
	if !m.lastFrameTime.IsZero() {
		frame = float32(now.Sub(m.lastFrameTime).Seconds())
		if frame > 0.25 {
			frame = 0.25
		}
	}
	m.lastFrameTime = now

	m.accumulator += frame
	step := m.cfg.TickSeconds()
	for m.accumulator >= step {
		m.eng.Tick()
		m.accumulator -= step
		step = m.cfg.TickSeconds()
	}

	head := m.eng.Head(0)
	m.xHistory = appendBounded(m.xHistory, float64(head.X()))
	m.countHistory = appendBounded(m.countHistory, float64(m.eng.SegmentCount()))
}

func appendBounded(hist []float64, v float64) []float64 {
	hist = append(hist, v)
	if len(hist) > historyCapacity {
		hist = hist[1:]
	}
	return hist
}

// View renders the TUI interface.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("LORENZ ATTRACTOR") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n")

	if len(m.xHistory) > 1 {
		chart := asciigraph.Plot(m.xHistory, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("head x"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if len(m.countHistory) > 1 {
		chart := asciigraph.Plot(m.countHistory, asciigraph.Height(4), asciigraph.Width(60), asciigraph.Caption("trail segments"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	head := m.eng.Head(0)
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.eng.Now())) + "\n")
	s.WriteString(labelStyle.Render("Ticks") + valueStyle.Render(fmt.Sprintf("%d", m.eng.Ticks())) + "\n")
	s.WriteString(labelStyle.Render("Head") + valueStyle.Render(fmt.Sprintf("(%.2f, %.2f, %.2f)", head.X(), head.Y(), head.Z())) + "\n")
	s.WriteString(labelStyle.Render("Segments") + valueStyle.Render(fmt.Sprintf("%d", m.eng.SegmentCount())) + "\n")

	s.WriteString("\nPARAMETERS\n")
	for i, p := range params {
		line := fmt.Sprintf("%-10s %.3f", p.name, p.get(m.cfg))
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + line + "\n")
		}
	}

	s.WriteString(helpStyle.Render("space pause | c clear | s restart | tab select | up/down adjust | q quit"))
	return s.String()
}

// Run starts the live terminal visualization and blocks until quit.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg))
	_, err := p.Run()
	return err
}
