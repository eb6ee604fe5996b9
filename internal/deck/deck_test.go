package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validDeck = `{
	"name": "Herbs of the Vale",
	"description": "Common herbs and their uses.",
	"cards": [
		{"front": "Herb that cures poison", "back": "silverleaf"},
		{"front": "Herb that restores mana", "back": "moonbud", "tags": ["rare"]}
	]
}`

func TestParseValidDeck(t *testing.T) {
	d, err := Parse([]byte(validDeck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Name != "Herbs of the Vale" {
		t.Errorf("name = %q", d.Name)
	}
	if len(d.Cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(d.Cards))
	}
	if d.ID == "" {
		t.Error("deck was not assigned an id")
	}
	for i, c := range d.Cards {
		if c.ID == "" {
			t.Errorf("card %d was not assigned an id", i)
		}
	}
}

func TestParseRejectsMalformedDecks(t *testing.T) {
	cases := map[string]string{
		"not json":      `{"name": "x", "cards": [`,
		"missing name":  `{"cards": [{"front": "a", "back": "b"}]}`,
		"empty cards":   `{"name": "x", "cards": []}`,
		"missing back":  `{"name": "x", "cards": [{"front": "a"}]}`,
		"unknown field": `{"name": "x", "power": 9, "cards": [{"front": "a", "back": "b"}]}`,
		"empty front":   `{"name": "x", "cards": [{"front": "", "back": "b"}]}`,
	}
	for label, raw := range cases {
		if _, err := Parse([]byte(raw)); err == nil {
			t.Errorf("%s: accepted", label)
		}
	}
}

func TestParseRejectsDuplicateCardIDs(t *testing.T) {
	raw := `{"name": "x", "cards": [
		{"id": "c1", "front": "a", "back": "b"},
		{"id": "c1", "front": "c", "back": "d"}
	]}`
	if _, err := Parse([]byte(raw)); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("duplicate ids: err = %v", err)
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "herbs.json")
	if err := os.WriteFile(path, []byte(validDeck), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Import(path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	out := filepath.Join(dir, "out.json")
	if err := Export(d, out); err != nil {
		t.Fatalf("Export: %v", err)
	}
	back, err := Import(out)
	if err != nil {
		t.Fatalf("re-Import: %v", err)
	}
	if back.ID != d.ID || len(back.Cards) != len(d.Cards) {
		t.Errorf("round-trip changed deck: %+v vs %+v", back, d)
	}
	for i := range d.Cards {
		if back.Cards[i].ID != d.Cards[i].ID {
			t.Errorf("card %d id changed", i)
		}
	}
}

func TestStarterDeckStableIDs(t *testing.T) {
	a := StarterDeck()
	b := StarterDeck()
	if a.ID != b.ID {
		t.Error("starter deck id not stable")
	}
	for i := range a.Cards {
		if a.Cards[i].ID != b.Cards[i].ID {
			t.Errorf("starter card %d id not stable", i)
		}
	}
	if _, ok := a.Card(a.Cards[0].ID); !ok {
		t.Error("Card lookup failed for starter card")
	}
}
