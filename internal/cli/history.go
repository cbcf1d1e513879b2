package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent solves",
	Long:  `List recent solves recorded in the history database, newest first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println(statusStyle.Render("No solves recorded yet."))
		return nil
	}

	fmt.Println(titleStyle.Render("Solve history"))
	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-20s %-7s %5s %12s %9s  %s",
		"When", "Strat", "Moves", "Nodes", "Time", "Scramble")))

	for _, s := range solves {
		fmt.Printf("%-20s %-7s %5d %12d %9s  %s\n",
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.Strategy,
			s.MoveCount,
			s.Nodes,
			formatDuration(time.Duration(s.DurationMs)*time.Millisecond),
			moveStyle.Render(s.Scramble),
		)

		if verbose {
			fmt.Printf("%-20s %s\n", "", statusStyle.Render(s.SolveID+"  "+s.Solution))
		}
	}

	return nil
}
