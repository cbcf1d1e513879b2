package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver"
	"github.com/seamusw/cubesolver/internal/cube"
)

var (
	scrambleMoves int
	scrambleSeed  int64
	scrambleShow  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble in standard notation.

No two consecutive moves turn the same face, so the printed length is the
real length. Pass --seed for a reproducible scramble.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)

	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 25, "Number of moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time-based)")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "Print the scrambled cube")
}

func runScramble(cmd *cobra.Command, args []string) error {
	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	moves := cubesolver.Scramble(scrambleMoves, rand.New(rand.NewSource(seed)))
	fmt.Println(moveStyle.Render(cubesolver.FormatMoves(moves)))

	if scrambleShow {
		fmt.Println()
		fmt.Println(cube.New().ApplyMoves(moves))
	}
	return nil
}
