package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/halvden/grimoire/internal/app"
	"github.com/halvden/grimoire/internal/deck"
	"github.com/halvden/grimoire/internal/session"
	"github.com/halvden/grimoire/internal/store"
	"github.com/spf13/cobra"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage spell decks",
}

var deckImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a deck from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := deck.Import(args[0])
		if err != nil {
			return fmt.Errorf("import deck: %w", err)
		}

		st, player, err := openPlayer(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := player.AddDeck(d); err != nil {
			return err
		}
		if err := savePlayer(st, player); err != nil {
			return err
		}

		fmt.Printf("Imported %q: %d cards. It awaits you in the tower hall.\n", d.Name, len(d.Cards))
		return nil
	},
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List decks and their card counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, player, err := openPlayer(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		now := time.Now()
		fmt.Printf("%-20s  %-24s  %6s  %4s\n", "ID", "Name", "Cards", "Due")
		for _, d := range player.Decks {
			due := 0
			for _, c := range d.Cards {
				if d.Legacy {
					if s, ok := player.LegacySchedules[c.ID]; ok && s.IsDue(now) {
						due++
					}
				} else if s, ok := player.Schedules[c.ID]; ok && s.IsDue(now) {
					due++
				}
			}
			fmt.Printf("%-20s  %-24s  %6d  %4d\n", d.ID, d.Name, len(d.Cards), due)
		}
		return nil
	},
}

// openPlayer opens the store and restores the player from the latest
// snapshot, creating a fresh one if none exists.
func openPlayer(cmd *cobra.Command) (*store.Store, *session.Player, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	snap, err := st.SnapshotRepo().Latest(context.Background())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load latest snapshot: %w", err)
	}
	if snap == nil {
		return st, session.NewPlayer(app.DefaultHeroName), nil
	}
	player, err := session.PlayerFromSnapshot(snap.Data)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("restore player: %w", err)
	}
	return st, player, nil
}

// savePlayer writes a new snapshot of the player state.
func savePlayer(st *store.Store, player *session.Player) error {
	ctx := context.Background()
	seq, err := st.NextSequence(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	snap := &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now(),
		Data:      player.ToSnapshot(),
	}
	if err := st.SnapshotRepo().Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func init() {
	deckCmd.AddCommand(deckImportCmd)
	deckCmd.AddCommand(deckListCmd)
}
