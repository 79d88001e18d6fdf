package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elliotskunk/stumble/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved stumbles",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		sessions := store.LoadHistory(st).All()
		if len(sessions) == 0 {
			fmt.Println("No stumbles yet.")
			return nil
		}

		fmt.Printf("%-19s  %-30s  %-16s  %-7s  %s\n",
			"When", "Challenge", "Location", "Private", "Note")
		fmt.Println(strings.Repeat("─", 100))

		// Newest first.
		for i := len(sessions) - 1; i >= 0; i-- {
			s := sessions[i]
			title, location := "(untitled)", ""
			if s.Challenge != nil {
				title = s.Challenge.Title
				location = s.Challenge.LocationIdentified
			}
			if len(title) > 30 {
				title = title[:30]
			}
			private := ""
			if s.IsPrivate {
				private = "yes"
			}
			note := s.Note
			if len(note) > 40 {
				note = note[:37] + "..."
			}
			fmt.Printf("%-19s  %-30s  %-16s  %-7s  %s\n",
				s.Timestamp.Local().Format("2006-01-02 15:04:05"),
				title, location, private, note)
		}
		return nil
	},
}
