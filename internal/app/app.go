package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/factdrill/internal/curriculum"
	"github.com/abhisek/factdrill/internal/router"
	"github.com/abhisek/factdrill/internal/screen"
	"github.com/abhisek/factdrill/internal/screens/home"
	"github.com/abhisek/factdrill/internal/session"
	"github.com/abhisek/factdrill/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Controller *session.Controller
	Logger     *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx    context.Context
	ctrl   *session.Controller
	bridge *snapshotBridge
	router *router.Router
	last   session.Snapshot
	width  int
	height int
}

// newAppModel creates the root model with the home screen and routes
// controller renders through a snapshot bridge.
func newAppModel(ctx context.Context, ctrl *session.Controller) AppModel {
	bridge := newSnapshotBridge()
	ctrl.SetRender(bridge.Publish)
	return AppModel{
		ctx:    ctx,
		ctrl:   ctrl,
		bridge: bridge,
		router: router.New(home.New(ctrl)),
		last:   ctrl.Snapshot(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.bridge.Wait(m.ctx))
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.ctrl.ReturnToMenu()
			return m, tea.Quit
		}

	case screen.SnapshotMsg:
		m.last = msg.Snapshot
		return m, tea.Batch(m.router.Update(msg), m.bridge.Wait(m.ctx))
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, headerStatus(m.last), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// headerStatus shows the active curriculum and timer limit.
func headerStatus(s session.Snapshot) string {
	if s.Curriculum == "" {
		return ""
	}
	return fmt.Sprintf("%s · %ds", curriculum.DisplayName(s.Curriculum), s.TimerLimit)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	if opts.Controller == nil {
		return fmt.Errorf("app: controller is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newAppModel(ctx, opts.Controller), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("running tui: %w", err)
	}
	logger.Info("tui exited")
	return nil
}
