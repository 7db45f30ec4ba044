package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ouroboros/internal/storage"
)

var flagLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recent SSH sessions",
	Long: `Display the most recent connections recorded by 'ouroboros serve'.

Examples:
  ouroboros sessions
  ouroboros sessions --limit 50 --db ./sessions.db`,
	Args: cobra.NoArgs,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of sessions to show")
}

func runSessions(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening session log: %w", err)
	}
	defer store.Close()

	entries, err := store.RecentSessions(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving sessions: %w", err)
	}

	fmt.Println("Recent SSH sessions")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-22s  %-16s  %s\n", "User", "Remote", "Started", "Duration")
	fmt.Printf("  %-16s  %-22s  %-16s  %s\n", "----", "------", "-------", "--------")

	for _, e := range entries {
		duration := "active"
		if !e.Active() {
			duration = e.Duration().String()
		}
		fmt.Printf("  %-16s  %-22s  %-16s  %s\n",
			e.User, e.Remote, e.StartedAt.Format("2006-01-02 15:04"), duration)
	}

	open, err := store.OpenSessions()
	if err == nil {
		fmt.Println()
		fmt.Printf("Open now: %d\n", open)
	}
	return nil
}
