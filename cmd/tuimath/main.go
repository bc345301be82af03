// Package main provides the CLI entrypoint for tuimath.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuimath/internal/config"
	"github.com/verte-zerg/tuimath/internal/generator"
	"github.com/verte-zerg/tuimath/internal/model"
	"github.com/verte-zerg/tuimath/internal/tui"
)

const (
	defaultProblems  = 5
	defaultMinFactor = 0
	defaultMaxFactor = 10
)

var (
	drillProblems  int
	drillMinFactor int
	drillMaxFactor int
	drillSeed      int64
)

func main() {
	log.SetReportTimestamp(false)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuimath",
		Short:         "TUI multiplication trainer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDrillCmd,
	}

	rootCmd.Flags().IntVar(&drillProblems, "problems", defaultProblems, "problems per session")
	rootCmd.Flags().IntVar(&drillMinFactor, "min-factor", defaultMinFactor, "smallest factor")
	rootCmd.Flags().IntVar(&drillMaxFactor, "max-factor", defaultMaxFactor, "largest factor")
	rootCmd.Flags().Int64Var(&drillSeed, "seed", 0, "random seed (0 = time-based)")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runDrillCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "problems", &drillProblems, fileCfg.Drill.Problems)
	applyIntConfig(cmd, "min-factor", &drillMinFactor, fileCfg.Drill.MinFactor)
	applyIntConfig(cmd, "max-factor", &drillMaxFactor, fileCfg.Drill.MaxFactor)

	cfg := model.Config{
		Problems:  drillProblems,
		MinFactor: drillMinFactor,
		MaxFactor: drillMaxFactor,
		Seed:      drillSeed,
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tuimath requires a terminal")
	}

	gen := generator.New()
	if cfg.Seed != 0 {
		gen = generator.NewSeeded(cfg.Seed)
	}

	m := tui.NewModel(cfg, gen)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := m.Err(); err != nil {
		return fmt.Errorf("drill stopped: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	editCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editCmd.Stdin = os.Stdin
	editCmd.Stdout = os.Stdout
	editCmd.Stderr = os.Stderr
	if err := editCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuimath configuration
# Uncomment a value to enable it. CLI flags override config values.

[drill]
# problems = %d      # Problems per session
# min-factor = %d    # Smallest factor
# max-factor = %d    # Largest factor
`,
		defaultProblems,
		defaultMinFactor,
		defaultMaxFactor,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Problems <= 0 {
		return fmt.Errorf("--problems must be > 0")
	}
	if cfg.MinFactor > cfg.MaxFactor {
		return fmt.Errorf("--min-factor must be <= --max-factor")
	}
	return nil
}
