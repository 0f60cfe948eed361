package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/calanor/fieldrig/internal/sim"
)

const (
	DefaultFPS           = 30
	DefaultStepsPerFrame = 1

	plotWidth  = 72
	plotHeight = 16
	traceLen   = 256
)

type TickMsg time.Time

// Model steps a prepared simulation a fixed number of clock ticks per
// frame. When the clock runs out it finalizes the diagnostics once and
// keeps the last frame on screen until quit.
type Model struct {
	sim           *sim.Simulation
	field         []float64
	position      []float64
	momentum      []float64
	history       []float64
	fps           int
	stepsPerFrame int
	running       bool
	finalized     bool
	err           error
}

// NewModel wraps an already prepared simulation. The particle and field
// buffers are picked up when published; a rig without one of them still
// renders the rest.
func NewModel(s *sim.Simulation, fps, stepsPerFrame int) Model {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if stepsPerFrame <= 0 {
		stepsPerFrame = DefaultStepsPerFrame
	}
	m := Model{
		sim:           s,
		fps:           fps,
		stepsPerFrame: stepsPerFrame,
		running:       true,
	}
	if field, err := s.Resource("EMField:E"); err == nil {
		m.field = field
	}
	if pos, err := s.Resource("ChargedParticle:position"); err == nil {
		m.position = pos
	}
	if mom, err := s.Resource("ChargedParticle:momentum"); err == nil {
		m.momentum = mom
	}
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running && m.err == nil {
			for i := 0; i < m.stepsPerFrame && m.sim.Clock().Running(); i++ {
				if err := m.sim.Step(); err != nil {
					m.err = err
					break
				}
				if m.momentum != nil {
					m.history = append(m.history, m.momentum[1])
					if len(m.history) > traceLen {
						m.history = m.history[1:]
					}
				}
			}
			if m.err == nil && !m.sim.Clock().Running() && !m.finalized {
				m.finalized = true
				if err := m.sim.Finalize(); err != nil {
					m.err = err
				}
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var plot string
	if len(m.field) > 1 {
		plot = asciigraph.Plot(m.field,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("EMField:E"))
	} else {
		plot = "(no field published)"
	}

	clock := m.sim.Clock()
	var s strings.Builder
	s.WriteString(headerStyle.Render("FIELDRIG") + "\n")
	switch {
	case m.err != nil:
		s.WriteString(errorStyle.Render("ERROR") + "\n\n")
	case !clock.Running():
		s.WriteString("DONE\n\n")
	case !m.running:
		s.WriteString("PAUSED\n\n")
	default:
		s.WriteString("RUNNING\n\n")
	}
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.4g", clock.Time())) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d/%d", clock.Step(), clock.NumSteps())) + "\n")
	s.WriteString(labelStyle.Render("Dt") + valueStyle.Render(fmt.Sprintf("%.4g", clock.Dt())) + "\n")
	s.WriteString(labelStyle.Render("Progress") + progressBar(clock.Step(), clock.NumSteps(), 24) + "\n")
	if m.position != nil {
		s.WriteString(labelStyle.Render("Position y") + valueStyle.Render(fmt.Sprintf("%.6g", m.position[1])) + "\n")
	}
	if m.momentum != nil {
		s.WriteString(labelStyle.Render("Momentum y") + valueStyle.Render(fmt.Sprintf("%.6g", m.momentum[1])) + "\n")
	}
	if len(m.history) > 1 {
		s.WriteString(labelStyle.Render("Trace") + sparkline(m.history, 24) + "\n")
	}
	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render("\nSPACE:Pause  Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		plotStyle.Render(plot),
		statsStyle.Render(s.String()))
}
