package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/catalog"
	"github.com/careercompass/compass/internal/quiz"
	"github.com/careercompass/compass/internal/router"
	"github.com/careercompass/compass/internal/screen"
	wizscreen "github.com/careercompass/compass/internal/screens/wizard"
	"github.com/careercompass/compass/internal/ui/layout"
	"github.com/careercompass/compass/internal/wizard"
)

// Options holds the collaborators the TUI needs.
type Options struct {
	Controller *wizard.Controller
	Backend    quiz.Backend
	Catalog    *catalog.Catalog
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	wizard *wizscreen.WizardScreen
	width  int
	height int
}

// newAppModel creates a new AppModel with the assessment screen.
func newAppModel(ctx context.Context, opts Options) AppModel {
	ws := wizscreen.New(ctx, opts.Controller, opts.Backend, opts.Catalog)
	return AppModel{
		router: router.New(ws),
		wizard: ws,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
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
	title, status := "", ""
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and reports how the assessment
// screen was left.
func Run(ctx context.Context, opts Options) (wizscreen.Outcome, error) {
	if opts.Controller == nil || opts.Backend == nil {
		return wizscreen.OutcomeAbandoned, fmt.Errorf("app: controller and backend are required")
	}
	m := newAppModel(ctx, opts)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return m.wizard.Outcome(), err
	}
	return m.wizard.Outcome(), nil
}
