// Package app wires the TUI together: it restores the player from the
// latest snapshot, builds the screen stack, and runs the Bubble Tea
// program.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/halvden/grimoire/internal/arbiter"
	"github.com/halvden/grimoire/internal/router"
	"github.com/halvden/grimoire/internal/screen"
	"github.com/halvden/grimoire/internal/screens/home"
	"github.com/halvden/grimoire/internal/session"
	"github.com/halvden/grimoire/internal/srs"
	"github.com/halvden/grimoire/internal/store"
	"github.com/halvden/grimoire/internal/ui/layout"
)

// DefaultHeroName is used when no snapshot exists yet.
const DefaultHeroName = "Apprentice"

// Options carries the wiring the TUI needs. Store and Arbiter may be
// nil; the game then runs in-memory and self-graded.
type Options struct {
	Store     *store.Store
	Arbiter   *arbiter.Arbiter
	Scheduler srs.Scheduler
	Retention srs.Retention
	HeroName  string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	player *session.Player
	width  int
	height int
}

// newAppModel restores or creates the player and builds the screen stack.
func newAppModel(opts Options) (AppModel, error) {
	player, err := loadPlayer(opts)
	if err != nil {
		return AppModel{}, err
	}

	homeScreen := home.New(player, opts.Store, opts.Arbiter, opts.Scheduler, opts.Retention)
	return AppModel{
		router: router.New(homeScreen),
		player: player,
	}, nil
}

// loadPlayer restores the player from the latest snapshot, or starts a
// fresh one.
func loadPlayer(opts Options) (*session.Player, error) {
	name := opts.HeroName
	if name == "" {
		name = DefaultHeroName
	}
	if opts.Store == nil {
		return session.NewPlayer(name), nil
	}

	snap, err := opts.Store.SnapshotRepo().Latest(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load latest snapshot: %w", err)
	}
	if snap == nil {
		return session.NewPlayer(name), nil
	}

	player, err := session.PlayerFromSnapshot(snap.Data)
	if err != nil {
		return nil, fmt.Errorf("restore player: %w", err)
	}
	return player, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
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
			return m, nil
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
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.player.Hero.Level, m.player.Hero.Gold, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

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

// footerHints prefers the active screen's own hints over the defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); hints != nil {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
