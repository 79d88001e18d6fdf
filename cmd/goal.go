package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elliotskunk/stumble/internal/store"
)

var goalCmd = &cobra.Command{
	Use:   "goal [new goal...]",
	Short: "Show or set the goal that steers challenge generation",
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

		goals := store.LoadGoals(st)

		if len(args) == 0 {
			fmt.Println(goals.Goal())
			return nil
		}

		goal := strings.Join(args, " ")
		goals.SetGoal(goal)
		fmt.Println("Goal updated:", goal)
		return nil
	},
}
