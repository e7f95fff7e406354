// Package tui hosts a zoompan.Controller in a terminal. One cell is one unit
// of viewport space; the last line holds the status bar.
package tui

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/VictorDenisov/zoompan/zoompan"
)

const statusHeight = 1

// ConfigMsg carries a configuration to apply between gestures.
type ConfigMsg struct {
	Config zoompan.Config
}

// screen is shared by every copy of the model and answers the controller's
// re-measure requests.
type screen struct {
	content  zoompan.Size
	viewport zoompan.Size
}

func (s *screen) Measure() (zoompan.Size, zoompan.Size) {
	return s.content, s.viewport
}

type Model struct {
	ctrl   *zoompan.Controller
	screen *screen
}

// New builds a model over content of the given size. The controller is created
// with cfg and measures its geometry from the terminal.
func New(content zoompan.Size, cfg zoompan.Config) Model {
	s := &screen{content: content}
	return Model{
		ctrl:   zoompan.NewController(zoompan.WithConfig(cfg), zoompan.WithLayout(s)),
		screen: s,
	}
}

func (m Model) Controller() *zoompan.Controller {
	return m.ctrl
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := msg.Height - statusHeight
		if h < 0 {
			h = 0
		}
		m.screen.viewport = zoompan.Size{Width: float64(msg.Width), Height: float64(h)}
		m.ctrl.Bind(m.screen.content, m.screen.viewport)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.ctrl.ResetView()
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case ConfigMsg:
		if err := m.ctrl.SetConfig(msg.Config); err != nil {
			log.Warnf("Ignoring config: %v", err)
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	p := zoompan.Point{X: float64(msg.X), Y: float64(msg.Y)}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.ctrl.Wheel(m.ctrl.Transform().Inverse(p), 1)
		return
	case tea.MouseButtonWheelDown:
		m.ctrl.Wheel(m.ctrl.Transform().Inverse(p), -1)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.ctrl.PointerDown(p)
	case tea.MouseActionMotion:
		m.ctrl.PointerMove(p, m.ctrl.Transform().Contains(p, m.screen.content))
	case tea.MouseActionRelease:
		m.ctrl.PointerUp(button(msg.Button))
	}
}

// button maps terminal buttons onto controller buttons. Terminals that do not
// report which button was released send none, which counts as left.
func button(b tea.MouseButton) zoompan.Button {
	switch b {
	case tea.MouseButtonMiddle:
		return zoompan.ButtonMiddle
	case tea.MouseButtonRight:
		return zoompan.ButtonRight
	}
	return zoompan.ButtonLeft
}

func (m Model) View() string {
	w := int(m.screen.viewport.Width)
	h := int(m.screen.viewport.Height)
	t := m.ctrl.Transform()

	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.WriteRune(m.cell(t, x, y))
		}
		b.WriteByte('\n')
	}
	b.WriteString(status(t, m.ctrl.Cursor(), w))
	return b.String()
}

// cell samples the content at the centre of a terminal cell.
func (m Model) cell(t zoompan.Transform, x, y int) rune {
	p := t.Inverse(zoompan.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	c := m.screen.content
	if p.X < 0 || p.Y < 0 || p.X >= c.Width || p.Y >= c.Height {
		return ' '
	}
	if (int(math.Floor(p.X/8))+int(math.Floor(p.Y/4)))%2 == 0 {
		return '█'
	}
	return '░'
}

// NewProgram wraps a model into a full screen program with mouse reporting.
func NewProgram(m Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
}
