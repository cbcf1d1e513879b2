package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver"
	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/internal/cubie"
	"github.com/seamusw/cubesolver/internal/storage"
	"github.com/seamusw/cubesolver/pkg/pdb"
)

var (
	solveStrategy   string
	solveMaxDepth   int
	solveNodeBudget uint64
	solvePDBPath    string
	solvePDBDomain  string
	solveShow       bool
	solveNoRecord   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <scramble>",
	Short: "Solve a scrambled cube",
	Long: `Solve a scramble given in standard notation.

Strategies:
  bfs    - breadth-first search: optimal, but memory-hungry; shallow scrambles only
  dfs    - depth-first search: fast to something, not necessarily shortest
  iddfs  - iterative deepening: optimal, no heuristic
  ida    - IDA* with the corner pattern database (default, recommended)

The ida strategy loads the pattern database from disk, building and saving
it first when no valid copy exists.

Example:
  cubesolver solve "R U R' U' F2 D"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveStrategy, "strategy", "ida", "Search strategy: bfs, dfs, iddfs, ida")
	solveCmd.Flags().IntVar(&solveMaxDepth, "max-depth", 0, "Depth bound (0 = strategy default)")
	solveCmd.Flags().Uint64Var(&solveNodeBudget, "node-budget", 0, "Abort after visiting this many nodes (0 = unlimited)")
	solveCmd.Flags().StringVar(&solvePDBPath, "pdb", "", "Pattern database file (default: ~/.cubesolver/<domain>.pdb)")
	solveCmd.Flags().StringVar(&solvePDBDomain, "domain", "corners", "Pattern database domain: corners, orientations")
	solveCmd.Flags().BoolVar(&solveShow, "show", false, "Print the scrambled cube before solving")
	solveCmd.Flags().BoolVar(&solveNoRecord, "no-record", false, "Do not record the solve in the history database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble, err := cubesolver.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("invalid scramble: %w", err)
	}
	if len(scramble) == 0 {
		return fmt.Errorf("empty scramble")
	}

	start := cubie.Solved().ApplyMoves(scramble)

	if solveShow {
		fmt.Println(titleStyle.Render("Scrambled cube"))
		fmt.Println(cube.New().ApplyMoves(scramble))
	}

	var opts []cubesolver.Option
	if solveMaxDepth > 0 {
		opts = append(opts, cubesolver.WithMaxDepth(solveMaxDepth))
	}
	if solveNodeBudget > 0 {
		opts = append(opts, cubesolver.WithNodeBudget(solveNodeBudget))
	}

	began := time.Now()
	var solution *cubesolver.Solution

	switch solveStrategy {
	case "bfs":
		solution, err = cubesolver.SolveBFS(start, opts...)
	case "dfs":
		solution, err = cubesolver.SolveDFS(start, opts...)
	case "iddfs":
		solution, err = cubesolver.SolveIDDFS(start, opts...)
	case "ida":
		table, loadErr := openPatternDB()
		if loadErr != nil {
			return loadErr
		}
		began = time.Now() // exclude database load/build time
		solution, err = cubesolver.SolveIDAStar(start, table.Estimate, opts...)
	default:
		return fmt.Errorf("unknown strategy %q (use bfs, dfs, iddfs or ida)", solveStrategy)
	}

	took := time.Since(began)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("No solution: %v", err)))
		return err
	}

	fmt.Println(titleStyle.Render("Solution"))
	fmt.Printf("  %s\n", moveStyle.Render(solution.String()))
	fmt.Println()
	fmt.Printf("Strategy: %s\n", solveStrategy)
	fmt.Printf("Moves:    %d\n", solution.Length())
	fmt.Printf("Nodes:    %d\n", solution.Nodes)
	fmt.Printf("Time:     %s\n", formatDuration(took))

	if verbose {
		solved := start.ApplyMoves(solution.Moves)
		fmt.Println(statusStyle.Render(fmt.Sprintf("verified solved: %v", solved.IsSolved())))
	}

	if solveNoRecord {
		return nil
	}
	return recordSolve(scramble, solution, took)
}

// openPatternDB loads the configured pattern database, building it first
// when there is no usable copy on disk.
func openPatternDB() (*pdb.Table, error) {
	domain, err := domainFromFlag(solvePDBDomain)
	if err != nil {
		return nil, err
	}

	path := solvePDBPath
	if path == "" {
		path, err = defaultPDBPath(domain.Name())
		if err != nil {
			return nil, err
		}
	}

	table, err := pdb.Load(path, domain)
	if err == nil {
		return table, nil
	}

	fmt.Println(statusStyle.Render(fmt.Sprintf("no usable pattern database at %s, building (this can take a while)", path)))
	table, _, err = pdb.Open(path, domain, pdb.WithProgress(plainProgress))
	if err != nil {
		return nil, fmt.Errorf("failed to build pattern database: %w", err)
	}
	return table, nil
}

func domainFromFlag(name string) (pdb.Domain, error) {
	switch name {
	case "corners":
		return pdb.Corners(), nil
	case "orientations":
		return pdb.CornerOrientations(), nil
	default:
		return nil, fmt.Errorf("unknown pattern database domain %q (use corners or orientations)", name)
	}
}

func plainProgress(p pdb.Progress) {
	fmt.Printf("  depth %2d: %10d new, %10d total\n", p.Depth, p.Discovered, p.Total)
}

func recordSolve(scramble []cubesolver.Move, solution *cubesolver.Solution, took time.Duration) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	id, err := repo.Create(solveStrategy, cubesolver.FormatMoves(scramble), solution.String(),
		solution.Length(), solution.Nodes, took)
	if err != nil {
		return fmt.Errorf("failed to record solve: %w", err)
	}

	if verbose {
		fmt.Println(statusStyle.Render("recorded solve " + id))
	}
	return nil
}
