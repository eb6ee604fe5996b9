// Package home is the tower hall: hero status, deck roster with due
// counts, and the way into battle.
package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/halvden/grimoire/internal/arbiter"
	"github.com/halvden/grimoire/internal/router"
	"github.com/halvden/grimoire/internal/screen"
	"github.com/halvden/grimoire/internal/screens/battle"
	"github.com/halvden/grimoire/internal/session"
	"github.com/halvden/grimoire/internal/srs"
	"github.com/halvden/grimoire/internal/store"
	"github.com/halvden/grimoire/internal/ui/components"
	"github.com/halvden/grimoire/internal/ui/theme"
)

// HomeScreen is the main screen: hero status and deck selection.
type HomeScreen struct {
	player    *session.Player
	st        *store.Store
	arb       *arbiter.Arbiter
	scheduler srs.Scheduler
	retention srs.Retention

	menu     components.Menu
	dueCount map[string]int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The store and arbiter may be nil; battles
// then run without persistence or LLM judging.
func New(player *session.Player, st *store.Store, arb *arbiter.Arbiter, scheduler srs.Scheduler, retention srs.Retention) *HomeScreen {
	h := &HomeScreen{
		player:    player,
		st:        st,
		arb:       arb,
		scheduler: scheduler,
		retention: retention,
		dueCount:  make(map[string]int),
	}

	now := time.Now()
	var items []components.MenuItem
	for i := range player.Decks {
		d := player.Decks[i]
		due := countDue(player, d.ID, now)
		h.dueCount[d.ID] = due

		label := fmt.Sprintf("Battle: %s", d.Name)
		if due > 0 {
			label = fmt.Sprintf("%s  (%d due)", label, due)
		}
		deckID := d.ID
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: battle.New(player, deckID, st, arb, scheduler, retention),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Close the Grimoire",
		Action: func() tea.Cmd { return tea.Quit },
	})

	h.menu = components.NewMenu(items)
	return h
}

func countDue(p *session.Player, deckID string, now time.Time) int {
	d, ok := p.Deck(deckID)
	if !ok {
		return 0
	}
	due := 0
	for _, c := range d.Cards {
		if d.Legacy {
			if s, ok := p.LegacySchedules[c.ID]; ok && s.IsDue(now) {
				due++
			}
		} else if s, ok := p.Schedules[c.ID]; ok && s.IsDue(now) {
			due++
		}
	}
	return due
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	hero := h.player.Hero

	title := theme.Title.Render("GRIMOIRE")
	subtitle := theme.Subtitle.Render("every spell is a thing you chose to remember")

	status := fmt.Sprintf("%s  ·  Level %d  ·  %d XP (%d to next)  ·  %s",
		hero.Name, hero.Level, hero.XP, hero.XPToNext(),
		theme.Gold.Render(fmt.Sprintf("%d gold", hero.Gold)))

	statusBox := theme.Card.Render(status)

	var sections []string
	sections = append(sections, title, subtitle, "", statusBox, "", h.menu.View())

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Tower Hall"
}
