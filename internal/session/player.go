// Package session owns a running battle: planning the card queue,
// grading answers, and threading results through the scheduler, the
// recall tracker and the combat math. It owns the wall clock and the
// production RNG; the core packages stay deterministic.
package session

import (
	"fmt"
	"time"

	"github.com/halvden/grimoire/internal/deck"
	"github.com/halvden/grimoire/internal/game"
	"github.com/halvden/grimoire/internal/recall"
	"github.com/halvden/grimoire/internal/retrieval"
	"github.com/halvden/grimoire/internal/srs"
	"github.com/halvden/grimoire/internal/store"
)

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = 1

// Player is the full mutable player state: the hero, the decks, every
// card's schedule and the recall history. It is loaded from the latest
// snapshot at startup and written back after each battle.
type Player struct {
	Hero            game.Hero
	Decks           []deck.Deck
	Schedules       map[string]srs.Schedule
	LegacySchedules map[string]srs.LegacySchedule
	Tracker         *recall.Tracker
	ModeHistory     map[string]retrieval.History
}

// NewPlayer creates a fresh player with the starter deck and no history.
func NewPlayer(heroName string) *Player {
	return &Player{
		Hero:            game.NewHero(heroName),
		Decks:           []deck.Deck{deck.StarterDeck()},
		Schedules:       make(map[string]srs.Schedule),
		LegacySchedules: make(map[string]srs.LegacySchedule),
		Tracker:         recall.NewTracker(),
		ModeHistory:     make(map[string]retrieval.History),
	}
}

// Deck returns the deck with the given ID, or false.
func (p *Player) Deck(id string) (*deck.Deck, bool) {
	for i := range p.Decks {
		if p.Decks[i].ID == id {
			return &p.Decks[i], true
		}
	}
	return nil, false
}

// AddDeck appends an imported deck, rejecting duplicate IDs.
func (p *Player) AddDeck(d deck.Deck) error {
	if _, ok := p.Deck(d.ID); ok {
		return fmt.Errorf("deck %q already exists", d.ID)
	}
	p.Decks = append(p.Decks, d)
	return nil
}

// ToSnapshot converts the player to its persisted form.
func (p *Player) ToSnapshot() store.SnapshotData {
	data := store.SnapshotData{
		Version: SnapshotVersion,
		Hero: &store.HeroData{
			Name:  p.Hero.Name,
			Level: p.Hero.Level,
			XP:    p.Hero.XP,
			Gold:  p.Hero.Gold,
		},
		Schedules:       make(map[string]store.ScheduleData, len(p.Schedules)),
		LegacySchedules: make(map[string]store.LegacyScheduleData, len(p.LegacySchedules)),
		Recall:          make(map[string]store.RecallStatsData),
		ModeHistory:     make(map[string][]string, len(p.ModeHistory)),
	}

	for _, d := range p.Decks {
		data.Decks = append(data.Decks, deckToData(d))
	}
	for id, s := range p.Schedules {
		data.Schedules[id] = scheduleToData(s)
	}
	for id, s := range p.LegacySchedules {
		data.LegacySchedules[id] = legacyToData(s)
	}
	for id, stats := range p.Tracker.Snapshot() {
		data.Recall[id] = store.RecallStatsData{
			Attempts:       stats.Attempts,
			Correct:        stats.Correct,
			Streak:         stats.Streak,
			BestStreak:     stats.BestStreak,
			TotalElapsedMs: stats.TotalElapsed.Milliseconds(),
		}
	}
	for id, hist := range p.ModeHistory {
		var tokens []string
		for _, m := range hist.Slice() {
			tokens = append(tokens, m.String())
		}
		data.ModeHistory[id] = tokens
	}

	return data
}

// PlayerFromSnapshot restores a player from persisted form.
func PlayerFromSnapshot(data store.SnapshotData) (*Player, error) {
	p := &Player{
		Schedules:       make(map[string]srs.Schedule, len(data.Schedules)),
		LegacySchedules: make(map[string]srs.LegacySchedule, len(data.LegacySchedules)),
		ModeHistory:     make(map[string]retrieval.History, len(data.ModeHistory)),
	}

	if data.Hero != nil {
		p.Hero = game.Hero{
			Name:  data.Hero.Name,
			Level: data.Hero.Level,
			XP:    data.Hero.XP,
			Gold:  data.Hero.Gold,
		}
	}

	for _, dd := range data.Decks {
		p.Decks = append(p.Decks, deckFromData(dd))
	}

	for id, sd := range data.Schedules {
		s, err := scheduleFromData(sd)
		if err != nil {
			return nil, fmt.Errorf("schedule %s: %w", id, err)
		}
		p.Schedules[id] = s
	}
	for id, sd := range data.LegacySchedules {
		s, err := legacyFromData(sd)
		if err != nil {
			return nil, fmt.Errorf("legacy schedule %s: %w", id, err)
		}
		p.LegacySchedules[id] = s
	}

	stats := make(map[string]recall.Stats, len(data.Recall))
	for id, rd := range data.Recall {
		stats[id] = recall.Stats{
			Attempts:     rd.Attempts,
			Correct:      rd.Correct,
			Streak:       rd.Streak,
			BestStreak:   rd.BestStreak,
			TotalElapsed: time.Duration(rd.TotalElapsedMs) * time.Millisecond,
		}
	}
	p.Tracker = recall.FromSnapshot(stats)

	for id, tokens := range data.ModeHistory {
		var modes []retrieval.Mode
		for _, tok := range tokens {
			var m retrieval.Mode
			if err := m.UnmarshalText([]byte(tok)); err != nil {
				return nil, fmt.Errorf("mode history %s: %w", id, err)
			}
			modes = append(modes, m)
		}
		p.ModeHistory[id] = retrieval.HistoryFrom(modes)
	}

	return p, nil
}

func deckToData(d deck.Deck) store.DeckData {
	dd := store.DeckData{
		DeckID:      d.ID,
		Name:        d.Name,
		Description: d.Description,
		Legacy:      d.Legacy,
	}
	for _, c := range d.Cards {
		dd.Cards = append(dd.Cards, store.CardData{
			CardID: c.ID,
			Front:  c.Front,
			Back:   c.Back,
			Lore:   c.Lore,
			Tags:   c.Tags,
		})
	}
	return dd
}

func deckFromData(dd store.DeckData) deck.Deck {
	d := deck.Deck{
		ID:          dd.DeckID,
		Name:        dd.Name,
		Description: dd.Description,
		Legacy:      dd.Legacy,
	}
	for _, c := range dd.Cards {
		d.Cards = append(d.Cards, deck.Card{
			ID:    c.CardID,
			Front: c.Front,
			Back:  c.Back,
			Lore:  c.Lore,
			Tags:  c.Tags,
		})
	}
	return d
}

func scheduleToData(s srs.Schedule) store.ScheduleData {
	sd := store.ScheduleData{
		CardID:      s.CardID,
		Difficulty:  s.Difficulty,
		Stability:   s.Stability,
		Repetitions: s.Repetitions,
		Lapses:      s.Lapses,
		State:       s.State.String(),
		Due:         s.Due.UTC().Format(time.RFC3339),
	}
	if !s.LastReview.IsZero() {
		sd.LastReview = s.LastReview.UTC().Format(time.RFC3339)
	}
	return sd
}

func scheduleFromData(sd store.ScheduleData) (srs.Schedule, error) {
	s := srs.Schedule{
		CardID:      sd.CardID,
		Difficulty:  sd.Difficulty,
		Stability:   sd.Stability,
		Repetitions: sd.Repetitions,
		Lapses:      sd.Lapses,
	}
	if err := s.State.UnmarshalText([]byte(sd.State)); err != nil {
		return srs.Schedule{}, err
	}
	due, err := time.Parse(time.RFC3339, sd.Due)
	if err != nil {
		return srs.Schedule{}, fmt.Errorf("due: %w", err)
	}
	s.Due = due
	if sd.LastReview != "" {
		last, err := time.Parse(time.RFC3339, sd.LastReview)
		if err != nil {
			return srs.Schedule{}, fmt.Errorf("last_review: %w", err)
		}
		s.LastReview = last
	}
	return s, nil
}

func legacyToData(s srs.LegacySchedule) store.LegacyScheduleData {
	sd := store.LegacyScheduleData{
		CardID:       s.CardID,
		EaseFactor:   s.EaseFactor,
		IntervalDays: s.IntervalDays,
		Repetitions:  s.Repetitions,
	}
	if !s.NextReview.IsZero() {
		sd.NextReview = s.NextReview.UTC().Format(time.RFC3339)
	}
	return sd
}

func legacyFromData(sd store.LegacyScheduleData) (srs.LegacySchedule, error) {
	s := srs.LegacySchedule{
		CardID:       sd.CardID,
		EaseFactor:   sd.EaseFactor,
		IntervalDays: sd.IntervalDays,
		Repetitions:  sd.Repetitions,
	}
	if sd.NextReview != "" {
		next, err := time.Parse(time.RFC3339, sd.NextReview)
		if err != nil {
			return srs.LegacySchedule{}, fmt.Errorf("next_review: %w", err)
		}
		s.NextReview = next
	}
	return s, nil
}
