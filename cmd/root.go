// Package cmd provides the root command and CLI setup for propsmith.
package cmd

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/red-newt/propsmith/internal/adapter"
	"github.com/red-newt/propsmith/internal/config"
	"github.com/red-newt/propsmith/internal/controller"
	"github.com/red-newt/propsmith/internal/domain"
	m "github.com/red-newt/propsmith/internal/model"
)

var (
	cfg      *config.Config
	workflow domain.Workflow
	ui       controller.UI
)

var (
	configFlag  string
	verboseFlag bool
	noColorFlag bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propsmith",
		Short: "JSX/TSX component attribute rewriter and usage analyzer",
		Long: `Propsmith scans JSX and TSX source trees for configured target components,
identified by name or by the module they were imported from, and either
enforces configured attributes on them or aggregates usage statistics.

Supports path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./a ./b        scan multiple directories`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default .propsmith.yaml in CWD or $HOME)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")

	return cmd
}

// setup wires the adapters, workflow and UI once flags are parsed. Tests
// inject their own workflow and UI before executing; those are kept.
func setup(cmd *cobra.Command) error {
	if noColorFlag {
		color.NoColor = true
	}

	level := slog.LevelInfo
	if verboseFlag {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if workflow != nil {
		return nil
	}

	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	cfg = loaded

	fsAdapter := adapter.NewLocalSourceFSAdapter()
	markupParser := adapter.NewTreeSitterParser()
	reportStore := adapter.NewReportStore()
	orch := domain.NewOrchestrator(fsAdapter, markupParser, cfg, log)
	workflow = domain.NewWorkflow(fsAdapter, orch, reportStore, cfg, log)
	ui = controller.NewUI(cmd.Root(), controller.IsTTY(cmd.OutOrStdout()))

	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// reportsDir resolves the reports directory: an explicit flag wins, the
// configured default otherwise.
func reportsDir(flagValue string) m.Path {
	if flagValue != "" {
		return m.Path(flagValue)
	}

	if cfg != nil {
		return m.Path(cfg.ReportsDir)
	}

	return m.Path(config.DefaultReportsDir)
}
