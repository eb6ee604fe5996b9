package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/halvden/grimoire/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent battle results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		battles, err := st.EventRepo().QueryBattleSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query battles: %w", err)
		}

		if len(battles) == 0 {
			fmt.Println("No battles fought yet.")
			return nil
		}

		fmt.Printf("%-19s  %-16s  %-18s  %6s  %4s  %5s  %5s  %-6s\n",
			"When", "Deck", "Monster", "Spells", "Hit", "XP", "Gold", "Result")
		fmt.Println(strings.Repeat("─", 92))

		for _, b := range battles {
			result := "fled"
			if b.Victory {
				result = "victory"
			}
			fmt.Printf("%-19s  %-16s  %-18s  %6d  %4d  %5d  %5d  %-6s\n",
				b.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(b.DeckID, 16),
				truncate(b.Monster, 18),
				b.CardsReviewed,
				b.CorrectAnswers,
				b.XPEarned,
				b.GoldEarned,
				result,
			)
		}
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func init() {
	statsCmd.Flags().Int("limit", 20, "Maximum number of battles to show")
}
