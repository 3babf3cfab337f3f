package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/phaseflow/internal/engine"
)

const (
	canvasCols = 60
	canvasRows = 22
	frameRate  = 30
	historyCap = 240

	// Padding applied by canvasStyle, needed to map mouse cells back to
	// canvas dots.
	padTop  = 1
	padLeft = 2
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).Width(44)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the bubbletea host for one engine instance. It owns the frame
// callback: exactly one tick is in flight at a time, rescheduled at the
// end of each update.
type Model struct {
	eng       *engine.Engine
	static    *Canvas
	dynamic   *Canvas
	theme     Theme
	modelName string

	paramKeys []string
	selected  int
	history   []float64
	showHelp  bool
}

// NewModel wires an engine to a fresh pair of canvases, one per render
// layer.
func NewModel(eng *engine.Engine, modelName, themeName string) Model {
	theme := GetTheme(themeName)
	eng.SetStyle(theme.Style())

	static := NewCanvas(canvasCols, canvasRows)
	dynamic := NewCanvas(canvasCols, canvasRows)
	w, h := static.Size()
	eng.SetSize(w, h)

	keys := make([]string, 0, len(eng.Params()))
	for k := range eng.Params() {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return Model{
		eng:       eng,
		static:    static,
		dynamic:   dynamic,
		theme:     theme,
		modelName: modelName,
		paramKeys: keys,
		history:   make([]float64, 0, historyCap),
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			px := float64((msg.X - padLeft) * 2)
			py := float64((msg.Y - padTop) * 4)
			m.eng.OnPointerDown(px, py)
		}
		return m, nil

	case TickMsg:
		if m.eng.StaticDirty() {
			m.eng.RedrawStatic(m.static)
		}
		m.eng.Step(m.dynamic)
		m.record()
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		if m.eng.Running() {
			m.eng.Pause()
		} else {
			m.eng.Start()
		}
	case "r":
		m.eng.Reset()
		m.dynamic.Clear(nil)
		m.history = m.history[:0]
	case "tab":
		if len(m.paramKeys) > 0 {
			m.selected = (m.selected + 1) % len(m.paramKeys)
		}
	case "up", "k":
		m.adjustParam(1.05)
	case "down", "j":
		m.adjustParam(0.95)
	case "+", "=":
		m.eng.SetSpeed(m.eng.Speed() * 1.25)
	case "-", "_":
		m.eng.SetSpeed(m.eng.Speed() / 1.25)
	case "g":
		t := m.eng.Toggles()
		t.Grid = !t.Grid
		m.eng.SetToggles(t)
	case "f":
		t := m.eng.Toggles()
		t.Field = !t.Field
		m.eng.SetToggles(t)
	case "n":
		t := m.eng.Toggles()
		t.Nullclines = !t.Nullclines
		m.eng.SetToggles(t)
	case "t":
		names := ThemeNames()
		for i, name := range names {
			if name == m.theme.Name {
				m.theme = GetTheme(names[(i+1)%len(names)])
				m.eng.SetStyle(m.theme.Style())
				break
			}
		}
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	m.eng.SetParam(key, m.eng.Params().Get(key, 1)*factor)
}

// record tracks the first seeded particle's x coordinate for the
// telemetry sparkline.
func (m *Model) record() {
	seeded := m.eng.Manager().Seeded()
	if len(seeded) == 0 {
		return
	}
	m.history = append(m.history, seeded[0].X)
	if len(m.history) > historyCap {
		m.history = m.history[1:]
	}
}

func (m Model) View() string {
	if m.showHelp {
		return helpView
	}

	canvasView := canvasStyle.Render(m.composite())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.modelName)) + "\n")
	s.WriteString(m.status() + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("x(t)"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2fx", m.eng.Speed())) + "\n")
	s.WriteString(labelStyle.Render("Seeded") + valueStyle.Render(fmt.Sprintf("%d", len(m.eng.Manager().Seeded()))) + "\n")

	if !m.eng.IsValidSystem() {
		s.WriteString(labelStyle.Render("Equations") + errorStyle.Render(m.eng.ErrorMessage()) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	if len(m.paramKeys) == 0 {
		s.WriteString(labelStyle.Render("  (none)") + "\n")
	}
	for i, k := range m.paramKeys {
		line := fmt.Sprintf("%-8s %.3f", k, m.eng.Params().Get(k, 0))
		if i == m.selected {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString("\nEQUILIBRIA\n")
	eq := m.eng.Equilibria()
	if len(eq) == 0 {
		s.WriteString(labelStyle.Render("  (none)") + "\n")
	}
	for _, e := range eq {
		s.WriteString("  " + valueStyle.Render(
			fmt.Sprintf("(%.2f, %.2f) %s", e.Point.X, e.Point.Y, e.Class)) + "\n")
	}

	s.WriteString(helpStyle.Render("\nclick:seed SP:run/pause R:reset\n↑↓:tune tab:param +-:speed\ng/f/n:layers T:theme ?:help Q:quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

func (m Model) status() string {
	switch {
	case m.eng.Running():
		return "RUNNING"
	case m.eng.Active():
		return "SEEDED"
	default:
		return "IDLE"
	}
}

// composite overlays the dynamic layer on the static one cell-wise.
func (m Model) composite() string {
	var b strings.Builder
	for row := 0; row < m.static.Rows; row++ {
		for col := 0; col < m.static.Cols; col++ {
			r := m.static.cells[row][col] | m.dynamic.cells[row][col]
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

const helpView = `
  PHASEFLOW

  click      seed a trajectory at the cursor
  space      start / pause the field simulation
  r          reset (clears all particles)
  tab        cycle parameters
  up/down    adjust selected parameter
  +/-        simulation speed
  g, f, n    toggle grid / field arrows / nullclines
  t          cycle themes
  q          quit

  Press ? to return.
`
