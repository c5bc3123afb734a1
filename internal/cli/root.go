package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/roster/internal/config"
	"github.com/rshade/roster/internal/engine"
	"github.com/rshade/roster/internal/fetch"
	"github.com/rshade/roster/internal/logging"
	"github.com/rshade/roster/internal/tui"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

const rootCmdExample = `  # Browse interactively
  roster

  # Print the second page of male users sorted by age, oldest first
  roster --output table --query male --sort age:desc --page 2

  # Machine-readable page
  roster --output json --sort email`

// NewRootCmd creates the root Cobra command for the roster CLI. It wires
// up configuration, logging, and tracing, then launches either the
// interactive browser or the static one-page renderer.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "roster",
		Short:         "Browse a fetched user directory in the terminal",
		Long:          "Roster fetches a batch of users once and presents a searchable, sortable, paginated table over it.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	cmd.Flags().String("config", "", "path to a roster config file (default ~/.roster.yaml)")
	cmd.Flags().Bool("debug", false, "enable debug logging to the console")
	cmd.Flags().String("api-url", "", "user batch endpoint (overrides config)")
	cmd.Flags().Int("results", 0, "batch size to request (overrides config)")
	cmd.Flags().Int("page-size", 0, "rows per page (overrides config)")
	cmd.Flags().StringP("output", "o", "auto", "output mode: auto, table, or json")
	cmd.Flags().String("query", "", "search query for non-interactive output")
	cmd.Flags().String("sort", "", "sort expression for non-interactive output (field or field:order)")
	cmd.Flags().Int("page", 1, "page number for non-interactive output")

	return cmd
}

// runRoot resolves configuration and dispatches to the interactive or
// static renderer.
func runRoot(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, logErr := setupLogging(cmd, cfg)
	if logErr != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open log file: %v\n", logErr)
	}

	client := fetch.NewClient(cfg.API.URL, logging.ComponentLogger(logger, "fetch"))
	fetcher := func(fctx context.Context) ([]engine.Record, error) {
		return client.Users(fctx, cfg.API.Results)
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "auto", "table", "json":
	default:
		return fmt.Errorf("unsupported output mode: %s", output)
	}

	if output == "auto" && isTerminal(os.Stdout) {
		return runInteractive(ctx, fetcher, cfg.UI.PageSize)
	}

	query, _ := cmd.Flags().GetString("query")
	sortExpr, _ := cmd.Flags().GetString("sort")
	page, _ := cmd.Flags().GetInt("page")

	return runStatic(ctx, cmd.OutOrStdout(), fetcher, cfg.UI.PageSize, staticOptions{
		query:    query,
		sortExpr: sortExpr,
		page:     page,
		output:   output,
	})
}

// resolveConfig layers CLI flag overrides on top of the loaded config.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("api-url") {
		cfg.API.URL, _ = cmd.Flags().GetString("api-url")
	}
	if cmd.Flags().Changed("results") {
		cfg.API.Results, _ = cmd.Flags().GetInt("results")
	}
	if cmd.Flags().Changed("page-size") {
		cfg.UI.PageSize, _ = cmd.Flags().GetInt("page-size")
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = "console"
		cfg.Logging.File = ""
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupLogging initializes the package logger and returns a context
// carrying it plus a per-invocation trace ID. The returned error reports
// a degraded log file, never a fatal condition.
func setupLogging(cmd *cobra.Command, cfg config.Config) (context.Context, error) {
	base, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	traceID := logging.GetOrGenerateTraceID(ctx)
	logger = logging.WithTraceID(logging.ComponentLogger(base, "cli"), traceID)

	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	return ctx, err
}

// runInteractive launches the Bubble Tea browser.
func runInteractive(ctx context.Context, fetcher tui.UserFetcher, pageSize int) error {
	model := tui.NewBrowseModel(ctx, fetcher, pageSize)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
