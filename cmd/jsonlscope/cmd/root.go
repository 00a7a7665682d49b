package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"jsonlscope/internal/adapters/jsonl"
	"jsonlscope/internal/adapters/report"
	"jsonlscope/internal/adapters/storage"
	"jsonlscope/internal/application"
	"jsonlscope/internal/application/commands"
	"jsonlscope/internal/config"
	"jsonlscope/internal/logging"
)

// errReported marks a failure whose diagnostic was already printed
var errReported = errors.New("analysis failed")

var (
	listLabel string
	verbose   bool
	noColor   bool

	logger     *slog.Logger
	factory    *commands.AnalyzeFactory
	renderOpts report.Options
)

var rootCmd = &cobra.Command{
	Use:   "jsonlscope [file]",
	Short: "Inspect the structure and quality of a JSONL file",
	Long: `jsonlscope scans a newline-delimited JSON file and reports:

  - the tree of every field path seen, in order of first appearance
  - file statistics (size, total, valid, blank and invalid lines)
  - how many times each field was null, "", [] or {}

gzip, zstd and lz4 compressed files are read transparently.
Without a file argument the file name is asked interactively.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			p, err := askPath(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			path = p
		}
		return analyze(cmd, path, (*report.Renderer).Full)
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, err)
	}
	stop()
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&listLabel, "list-label", "", "display label of list segments in the tree (default \"[] (List of Objects)\")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped lines and failures to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
}

// setup resolves the configuration and wires the adapters.
// Flags override the environment, which overrides the config file.
func setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if listLabel != "" {
		cfg.ListLabel = listLabel
	}
	if err := application.ValidateListLabel(cfg.ListLabel); err != nil {
		return err
	}
	cfg.Debug = cfg.Debug || verbose
	cfg.NoColor = cfg.NoColor || noColor

	logger = logging.New(os.Stderr, cfg.Debug)
	factory = commands.NewAnalyzeFactory(storage.NewSource(), jsonl.NewCodecs(), jsonl.NewDecoder(), logger)
	renderOpts = report.Options{ListLabel: cfg.ListLabel, NoColor: cfg.NoColor}
	return nil
}

// analyze runs the analysis of path and writes the sections selected by write.
// On failure the diagnostic line is printed instead of any report.
func analyze(cmd *cobra.Command, path string, write func(*report.Renderer, *application.Report) error) error {
	r := report.NewRenderer(cmd.OutOrStdout(), renderOpts)

	rep, err := factory.Execute(cmd.Context(), path)
	if err != nil {
		logger.Debug("analysis aborted", "path", path, "error", err)
		if werr := r.Diagnostic(path, err); werr != nil {
			return werr
		}
		return errReported
	}
	return write(r, rep)
}
