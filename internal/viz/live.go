// Package viz renders the simulation live in the terminal. It is the host
// UI layer: it owns the stepping cadence, and every state mutation goes
// through the simulation's control operations.
package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/chargesim/internal/engine"
	"github.com/san-kum/chargesim/internal/metrics"
)

const (
	canvasWidth     = 80
	canvasHeight    = 28
	historyCapacity = 400
	trailDrawLimit  = 240
)

type TickMsg time.Time

// BuildFunc constructs a fresh simulation for a named preset. The CLI wires
// it up so the view never touches configuration directly.
type BuildFunc func(preset string) (*engine.Simulation, error)

type Model struct {
	build     BuildFunc
	presets   []string
	presetIdx int

	sim  *engine.Simulation
	snap *engine.Snapshot

	canvas  *Canvas
	camera  *Camera
	metrics []metrics.Metric
	history []float64

	fps       int
	stepsTick int
	showGraph bool
	showHelp  bool
	err       error
}

// NewModel builds the live view. The metric list is displayed in the stats
// panel; the first metric's history feeds the strip chart.
func NewModel(build BuildFunc, presets []string, start string, ms []metrics.Metric, fps, stepsPerTick int) (Model, error) {
	idx := 0
	for i, p := range presets {
		if p == start {
			idx = i
		}
	}
	sim, err := build(presets[idx])
	if err != nil {
		return Model{}, err
	}
	if fps <= 0 {
		fps = 30
	}
	if stepsPerTick <= 0 {
		stepsPerTick = 4
	}
	return Model{
		build:     build,
		presets:   presets,
		presetIdx: idx,
		sim:       sim,
		snap:      sim.Snapshot(),
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		camera:    NewCamera(engine.Vec3{X: 5, Y: 5, Z: 5}),
		metrics:   ms,
		fps:       fps,
		stepsTick: stepsPerTick,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if m.sim.Running() {
			for i := 0; i < m.stepsTick; i++ {
				m.snap = m.sim.Step()
			}
			m.observe()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) observe() {
	for _, metric := range m.metrics {
		metric.Observe(m.snap)
	}
	if len(m.metrics) > 0 {
		m.history = append(m.history, m.metrics[0].Value())
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		if m.sim.Running() {
			m.sim.Pause()
		} else {
			m.sim.Resume()
		}
	case "r":
		m.sim.Reset()
		m.snap = m.sim.Snapshot()
		m.resetMetrics()
	case "tab":
		m.presetIdx = (m.presetIdx + 1) % len(m.presets)
		sim, err := m.build(m.presets[m.presetIdx])
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.sim = sim
		m.snap = sim.Snapshot()
		m.resetMetrics()
	case "+", "=":
		m.err = m.sim.SetDt(m.sim.Dt() * 1.25)
	case "-", "_":
		m.err = m.sim.SetDt(m.sim.Dt() / 1.25)
	case "left":
		m.camera.RotateY(-0.1)
	case "right":
		m.camera.RotateY(0.1)
	case "up":
		m.camera.RotateX(-0.1)
	case "down":
		m.camera.RotateX(0.1)
	case "z":
		m.camera.ZoomIn()
	case "x":
		m.camera.ZoomOut()
	case "g":
		m.showGraph = !m.showGraph
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) resetMetrics() {
	for _, metric := range m.metrics {
		metric.Reset()
	}
	m.history = nil
}

func (m Model) View() string {
	m.drawScene()

	left := canvasStyle.Render(m.canvas.String())
	right := statsStyle.Render(m.statsPanel())
	view := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var b strings.Builder
	b.WriteString(" " + headerStyle.Render("CHARGESIM") + "  " +
		subStyle.Render("coulomb particle simulator") + "\n")
	b.WriteString(view)
	if m.showGraph && len(m.history) > 1 {
		caption := "metric"
		if len(m.metrics) > 0 {
			caption = m.metrics[0].Name()
		}
		b.WriteString("\n" + graphStyle.Render(
			asciigraph.Plot(m.history, asciigraph.Height(8), asciigraph.Caption(caption))))
	}
	b.WriteString("\n" + helpStyle.Render(m.helpLine()))
	return b.String()
}

// drawScene projects trails then particles, far to near.
func (m Model) drawScene() {
	m.canvas.Clear()
	m.drawAxes()

	type point struct {
		x, y  int
		depth float64
		big   bool
	}
	points := make([]point, 0, len(m.snap.Particles))

	for i := range m.snap.Particles {
		p := &m.snap.Particles[i]

		trail := p.Trail
		if len(trail) > trailDrawLimit {
			trail = trail[len(trail)-trailDrawLimit:]
		}
		// Fade by thinning: older halves are drawn every other point.
		for k, pos := range trail {
			if k < len(trail)/2 && k%2 == 1 {
				continue
			}
			if x, y, _, ok := m.camera.Project(pos, m.canvas); ok {
				m.canvas.Set(x, y)
			}
		}

		if x, y, depth, ok := m.camera.Project(p.Position, m.canvas); ok {
			points = append(points, point{x, y, depth, p.Size > 40})
		}
	}

	sort.Slice(points, func(i, j int) bool { return points[i].depth < points[j].depth })
	for _, pt := range points {
		m.canvas.Set(pt.x, pt.y)
		if pt.big {
			m.canvas.Set(pt.x+1, pt.y)
			m.canvas.Set(pt.x, pt.y+1)
			m.canvas.Set(pt.x+1, pt.y+1)
		}
	}
}

func (m Model) drawAxes() {
	origin := m.camera.Center
	axes := []engine.Vec3{{X: 3}, {Y: 3}, {Z: 3}}
	ox, oy, _, ook := m.camera.Project(origin, m.canvas)
	if !ook {
		return
	}
	for _, a := range axes {
		if x, y, _, ok := m.camera.Project(origin.Add(a), m.canvas); ok {
			m.canvas.DrawLine(ox, oy, x, y)
		}
	}
}

func (m Model) statsPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.presets[m.presetIdx]) + "\n\n")

	state := "running"
	if !m.sim.Running() {
		state = pausedStyle.Render("paused")
	}
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("state", state)
	row("t", fmt.Sprintf("%.3fs", m.snap.Time))
	row("steps", fmt.Sprintf("%d", m.snap.Step))
	row("dt", fmt.Sprintf("%.5f", m.sim.Dt()))
	row("active", fmt.Sprintf("%d / %d", m.snap.ActiveCount(), len(m.snap.Particles)))

	for _, metric := range m.metrics {
		row(metric.Name(), fmt.Sprintf("%.4g", metric.Value()))
	}

	if m.err != nil {
		b.WriteString("\n" + warnStyle.Render(m.err.Error()) + "\n")
	}
	return b.String()
}

func (m Model) helpLine() string {
	if m.showHelp {
		return " space pause/resume · r reset · tab preset · +/- dt · arrows rotate · z/x zoom · g graph · q quit"
	}
	return " ? help · q quit"
}

// Run starts the live view in the alternate screen.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
