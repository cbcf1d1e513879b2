package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/pkg/pdb"
)

var (
	buildOut     string
	buildDomain  string
	buildWorkers int
	buildPlain   bool
)

var pdbCmd = &cobra.Command{
	Use:   "pdb",
	Short: "Manage the pattern database",
	Long:  `Commands for building and inspecting the corner pattern database used by IDA*.`,
}

var pdbBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the pattern database",
	Long: `Build the pattern database by exhaustive backward search from the solved
position and save it to disk.

The full corner domain has 88,179,840 entries and takes a few minutes on
commodity hardware; the orientations domain has 2,187 and builds instantly.`,
	RunE: runPdbBuild,
}

var pdbInfoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Inspect a pattern database file",
	Long:  `Validate a pattern database file and print its domain, size and distance distribution.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPdbInfo,
}

func init() {
	rootCmd.AddCommand(pdbCmd)

	pdbCmd.AddCommand(pdbBuildCmd)
	pdbBuildCmd.Flags().StringVar(&buildOut, "out", "", "Output file (default: ~/.cubesolver/<domain>.pdb)")
	pdbBuildCmd.Flags().StringVar(&buildDomain, "domain", "corners", "Domain: corners, orientations")
	pdbBuildCmd.Flags().IntVar(&buildWorkers, "workers", 0, "Expansion goroutines (0 = GOMAXPROCS)")
	pdbBuildCmd.Flags().BoolVar(&buildPlain, "plain", false, "Plain line-by-line progress instead of the TUI")

	pdbCmd.AddCommand(pdbInfoCmd)
}

func runPdbBuild(cmd *cobra.Command, args []string) error {
	domain, err := domainFromFlag(buildDomain)
	if err != nil {
		return err
	}

	out := buildOut
	if out == "" {
		out, err = defaultPDBPath(domain.Name())
		if err != nil {
			return err
		}
	}

	var opts []pdb.BuildOption
	if buildWorkers > 0 {
		opts = append(opts, pdb.WithWorkers(buildWorkers))
	}

	if buildPlain {
		fmt.Printf("Building %s database (%d entries)\n", domain.Name(), domain.Size())
		began := time.Now()
		table := pdb.Build(domain, append(opts, pdb.WithProgress(plainProgress))...)
		if err := pdb.Save(table, out); err != nil {
			return err
		}
		fmt.Printf("Done in %s, max distance %d, saved to %s\n",
			formatDuration(time.Since(began)), table.MaxDistance(), out)
		return nil
	}

	model := newBuildModel(domain, out, opts)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run progress UI: %w", err)
	}
	return model.err
}

// Messages
type buildProgressMsg pdb.Progress
type buildDoneMsg struct {
	maxDistance uint8
	err         error
}

// Model
type buildModel struct {
	domain  pdb.Domain
	out     string
	opts    []pdb.BuildOption
	started time.Time

	levels  []pdb.Progress
	maxDist uint8
	done    bool
	err     error

	msgChan chan tea.Msg
}

func newBuildModel(domain pdb.Domain, out string, opts []pdb.BuildOption) *buildModel {
	return &buildModel{
		domain:  domain,
		out:     out,
		opts:    opts,
		started: time.Now(),
		msgChan: make(chan tea.Msg, 32),
	}
}

func (m *buildModel) Init() tea.Cmd {
	return tea.Batch(
		m.startBuild(),
		m.listenForMessages(),
	)
}

func (m *buildModel) startBuild() tea.Cmd {
	return func() tea.Msg {
		go func() {
			opts := append(m.opts, pdb.WithProgress(func(p pdb.Progress) {
				m.msgChan <- buildProgressMsg(p)
			}))
			table := pdb.Build(m.domain, opts...)
			err := pdb.Save(table, m.out)
			m.msgChan <- buildDoneMsg{maxDistance: table.MaxDistance(), err: err}
		}()
		return nil
	}
}

func (m *buildModel) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		return <-m.msgChan
	}
}

func (m *buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.err = fmt.Errorf("build aborted")
			return m, tea.Quit
		}

	case buildProgressMsg:
		m.levels = append(m.levels, pdb.Progress(msg))
		return m, m.listenForMessages()

	case buildDoneMsg:
		m.done = true
		m.maxDist = msg.maxDistance
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m *buildModel) View() string {
	s := titleStyle.Render(fmt.Sprintf("Building %s pattern database", m.domain.Name())) + "\n\n"

	for _, p := range m.levels {
		s += fmt.Sprintf("  depth %2d  %10d new  %10d total\n", p.Depth, p.Discovered, p.Total)
	}

	if m.done {
		if m.err != nil {
			s += "\n" + errorStyle.Render(fmt.Sprintf("failed: %v", m.err)) + "\n"
		} else {
			s += "\n" + moveStyle.Render(fmt.Sprintf("done in %s, max distance %d, saved to %s",
				formatDuration(time.Since(m.started)), m.maxDist, m.out)) + "\n"
		}
	} else {
		s += "\n" + statusStyle.Render(fmt.Sprintf("running %s  (q to abort)", formatDuration(time.Since(m.started)))) + "\n"
	}

	return s
}

func runPdbInfo(cmd *cobra.Command, args []string) error {
	path := args[0]

	domain, err := pdb.ReadInfo(path)
	if err != nil {
		return err
	}

	table, err := pdb.Load(path, domain)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Pattern database"))
	fmt.Printf("File:         %s\n", path)
	fmt.Printf("Domain:       %s\n", domain.Name())
	fmt.Printf("Entries:      %d\n", table.Size())
	fmt.Printf("Max distance: %d\n", table.MaxDistance())
	fmt.Println()

	fmt.Println(headerStyle.Render("Distance  Entries"))
	for depth, count := range table.Histogram() {
		fmt.Printf("%8d  %d\n", depth, count)
	}
	return nil
}
