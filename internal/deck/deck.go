// Package deck holds the card and deck model plus JSON import/export.
// Deck files are validated against an embedded JSON Schema before
// decoding, so malformed files fail with a useful error instead of a
// half-loaded deck.
package deck

import (
	"fmt"

	"github.com/google/uuid"
)

// Card is a single flashcard. Front carries the cue, Back the expected
// recall; Lore is optional flavor text shown in battle.
type Card struct {
	ID    string   `json:"id"`
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Lore  string   `json:"lore,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// Deck is a named collection of cards. Legacy marks decks that keep the
// SM-2 scheduling strategy instead of the forgetting-curve model.
type Deck struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Legacy      bool   `json:"legacy,omitempty"`
	Cards       []Card `json:"cards"`
}

// NewCard creates a card with a fresh uuid.
func NewCard(front, back string) Card {
	return Card{
		ID:    uuid.NewString(),
		Front: front,
		Back:  back,
	}
}

// Card returns the card with the given ID, or false.
func (d *Deck) Card(id string) (Card, bool) {
	for _, c := range d.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// normalize assigns uuids to the deck and any cards missing one, and
// rejects duplicate card IDs.
func (d *Deck) normalize() error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	seen := make(map[string]bool, len(d.Cards))
	for i := range d.Cards {
		if d.Cards[i].ID == "" {
			d.Cards[i].ID = uuid.NewString()
		}
		id := d.Cards[i].ID
		if seen[id] {
			return fmt.Errorf("duplicate card id %q", id)
		}
		seen[id] = true
	}
	return nil
}

// StarterDeck returns the small deck bundled with the binary so a new
// player has something to battle with before importing their own.
func StarterDeck() Deck {
	d := Deck{
		Name:        "Apprentice's Primer",
		Description: "A handful of starting spells every apprentice learns.",
		Cards: []Card{
			{Front: "The spell word for light", Back: "lumen", Lore: "Scratched inside every tower stairwell."},
			{Front: "The spell word for fire", Back: "ignis", Lore: "Best practiced outdoors."},
			{Front: "The spell word for water", Back: "aqua"},
			{Front: "The spell word for wind", Back: "ventus"},
			{Front: "The spell word for stone", Back: "saxum", Lore: "Favored by bridge builders."},
			{Front: "The spell word for shadow", Back: "umbra"},
		},
	}
	// Stable IDs so progress on the starter deck survives restarts.
	d.ID = "starter"
	for i := range d.Cards {
		d.Cards[i].ID = fmt.Sprintf("starter-%02d", i+1)
	}
	return d
}
