package session

import (
	"sort"
	"time"

	"github.com/halvden/grimoire/internal/deck"
	"github.com/halvden/grimoire/internal/srs"
)

// QueueCategory is the reason a card was included in the battle queue.
type QueueCategory string

const (
	CategoryDue   QueueCategory = "due"   // schedule says review now
	CategoryWeak  QueueCategory = "weak"  // low lifetime accuracy
	CategoryFresh QueueCategory = "fresh" // never reviewed
)

// Queue size limits. A battle should be winnable in one sitting, so due
// cards get most of the queue and fresh cards trickle in.
const (
	MaxQueueLen  = 12
	MaxWeakCards = 3
	MaxNewCards  = 4
)

// QueueEntry is one card slotted into a battle.
type QueueEntry struct {
	Card     deck.Card
	DeckID   string
	Legacy   bool
	Category QueueCategory
}

// Plan is the ordered card queue for one battle.
type Plan struct {
	DeckID  string
	Entries []QueueEntry
}

// BuildPlan assembles the battle queue for a deck: due cards first
// (most overdue leading), then the weakest cards by recall history,
// then fresh cards, bounded by the queue limits.
func BuildPlan(p *Player, deckID string, now time.Time) (*Plan, error) {
	d, ok := p.Deck(deckID)
	if !ok {
		return nil, ErrNoSuchDeck
	}

	plan := &Plan{DeckID: deckID}
	queued := make(map[string]bool)

	// Due cards, most overdue first.
	type dueCard struct {
		card    deck.Card
		overdue float64
	}
	var due []dueCard
	for _, c := range d.Cards {
		if isDue(p, d, c.ID, now) {
			due = append(due, dueCard{card: c, overdue: overdueDays(p, d, c.ID, now)})
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].overdue > due[j].overdue })
	for _, dc := range due {
		if len(plan.Entries) >= MaxQueueLen {
			return plan, nil
		}
		plan.Entries = append(plan.Entries, QueueEntry{
			Card: dc.card, DeckID: deckID, Legacy: d.Legacy, Category: CategoryDue,
		})
		queued[dc.card.ID] = true
	}

	// Weakest cards by lifetime accuracy, even when not due.
	weak := 0
	for _, id := range p.Tracker.Weakest(MaxWeakCards + len(queued)) {
		if weak >= MaxWeakCards || len(plan.Entries) >= MaxQueueLen {
			break
		}
		c, ok := d.Card(id)
		if !ok || queued[id] {
			continue
		}
		plan.Entries = append(plan.Entries, QueueEntry{
			Card: c, DeckID: deckID, Legacy: d.Legacy, Category: CategoryWeak,
		})
		queued[id] = true
		weak++
	}

	// Fresh cards with no schedule yet, in deck order.
	fresh := 0
	for _, c := range d.Cards {
		if fresh >= MaxNewCards || len(plan.Entries) >= MaxQueueLen {
			break
		}
		if queued[c.ID] || hasSchedule(p, d, c.ID) {
			continue
		}
		plan.Entries = append(plan.Entries, QueueEntry{
			Card: c, DeckID: deckID, Legacy: d.Legacy, Category: CategoryFresh,
		})
		queued[c.ID] = true
		fresh++
	}

	return plan, nil
}

func isDue(p *Player, d *deck.Deck, cardID string, now time.Time) bool {
	if d.Legacy {
		s, ok := p.LegacySchedules[cardID]
		return ok && s.IsDue(now)
	}
	s, ok := p.Schedules[cardID]
	return ok && s.IsDue(now)
}

func overdueDays(p *Player, d *deck.Deck, cardID string, now time.Time) float64 {
	if d.Legacy {
		s, ok := p.LegacySchedules[cardID]
		if !ok || s.NextReview.IsZero() {
			return 0
		}
		return now.Sub(s.NextReview).Hours() / 24
	}
	s, ok := p.Schedules[cardID]
	if !ok {
		return 0
	}
	return s.OverdueDays(now)
}

func hasSchedule(p *Player, d *deck.Deck, cardID string) bool {
	if d.Legacy {
		_, ok := p.LegacySchedules[cardID]
		return ok
	}
	_, ok := p.Schedules[cardID]
	return ok
}

// scheduleState returns the lifecycle state driving mode eligibility.
// Legacy decks and fresh cards count as New.
func scheduleState(p *Player, legacy bool, cardID string) srs.CardState {
	if legacy {
		return srs.StateNew
	}
	if s, ok := p.Schedules[cardID]; ok {
		return s.State
	}
	return srs.StateNew
}
