package termview

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/spotlight/pkg/animation"
	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/overlay"
	"github.com/go-drift/spotlight/pkg/platform"
	"github.com/go-drift/spotlight/pkg/spotlight"
)

// frameInterval is the preview frame rate.
const frameInterval = time.Second / 30

type frameMsg time.Time

// PresentFunc creates a controller and highlights something on screen.
type PresentFunc func(screen *overlay.Screen) (*spotlight.Controller, error)

var statusStyle = lipgloss.NewStyle().Faint(true)

// Model is a Bubble Tea model that drives an overlay.Screen: it forwards
// mouse input, drains the interaction loop and steps animations each frame.
// The screen is sized in overlay units; each cell covers DefaultCellSize.
type Model struct {
	screen  *overlay.Screen
	loop    *platform.Loop
	present PresentFunc
	ctrl    *spotlight.Controller
	err     error
}

// NewModel presents the first session immediately.
func NewModel(screen *overlay.Screen, loop *platform.Loop, present PresentFunc) Model {
	m := Model{screen: screen, loop: loop, present: present}
	m.ctrl, m.err = present(screen)
	return m
}

// Controller returns the current controller.
func (m Model) Controller() *spotlight.Controller {
	return m.ctrl
}

// Err returns the last presentation error.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return nextFrame()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.loop.RunPending()
		animation.StepTickers()
		return m, nextFrame()

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		pos := graphics.Offset{
			X: (float64(msg.X) + 0.5) * DefaultCellSize.Width,
			Y: (float64(msg.Y) + 0.5) * DefaultCellSize.Height,
		}
		switch msg.Action {
		case tea.MouseActionPress:
			m.screen.PointerDown(pos)
		case tea.MouseActionRelease:
			m.screen.PointerUp(pos)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "d":
			if m.ctrl != nil {
				m.ctrl.Dismiss(nil)
			}
		case " ", "enter":
			if m.ctrl == nil || m.ctrl.Visibility() == spotlight.Hidden {
				// Controllers are single use; present with a new one.
				m.ctrl, m.err = m.present(m.screen)
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	cols := int(m.screen.Size.Width / DefaultCellSize.Width)
	rows := int(m.screen.Size.Height / DefaultCellSize.Height)
	canvas := NewCanvas(cols, rows, DefaultCellSize)
	m.screen.Paint(canvas)
	return canvas.Render() + "\n" + statusStyle.Render(m.status())
}

func (m Model) status() string {
	if m.err != nil {
		return "error: " + m.err.Error()
	}
	vis := spotlight.Hidden
	if m.ctrl != nil {
		vis = m.ctrl.Visibility()
	}
	return fmt.Sprintf("overlay %s · click the button · space: present · d: dismiss · q: quit", vis)
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Run starts the preview on the terminal and blocks until it exits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
