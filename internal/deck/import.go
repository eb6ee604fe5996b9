package deck

import (
	"encoding/json"
	"fmt"
	"os"
)

// Import reads a deck file, validates it against the deck schema and
// returns the normalized deck (every card carries a uuid, no duplicates).
func Import(path string) (Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read deck file: %w", err)
	}
	return Parse(raw)
}

// Parse validates and decodes raw deck JSON.
func Parse(raw []byte) (Deck, error) {
	if err := validateDeck(raw); err != nil {
		return Deck{}, err
	}

	var d Deck
	if err := json.Unmarshal(raw, &d); err != nil {
		return Deck{}, fmt.Errorf("decode deck: %w", err)
	}
	if err := d.normalize(); err != nil {
		return Deck{}, fmt.Errorf("normalize deck %q: %w", d.Name, err)
	}
	return d, nil
}

// Export writes the deck to path in the same format Import reads.
func Export(d Deck, path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write deck file: %w", err)
	}
	return nil
}
