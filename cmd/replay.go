package cmd

import (
	"errors"
	"io"
	"log"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/cli"
	"github.com/thenoetrevino/paso-board/internal/script"
)

// ReplayCmd returns the replay subcommand
func ReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Replay a YAML script against an empty board",
		Long: `Replay a YAML script of board operations and drag gestures, then print
the resulting board. Use - to read the script from stdin.

Examples:
  # Human-readable board
  paso-board replay board.yaml

  # JSON output for agents
  paso-board replay board.yaml --json

  # Final revision only ("columns/tasks")
  REV=$(paso-board replay board.yaml --quiet)
`,
		Args: cobra.ExactArgs(1),
		RunE: runReplay,
	}

	cmd.Flags().Bool("random", false, "Use random IDs and titles instead of a reproducible sequence")
	cmd.Flags().Bool("debug", false, "Check board invariants after every step")
	cmd.Flags().Bool("verbose", false, "Log every change to stderr")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (final revision only)")

	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	random, _ := cmd.Flags().GetBool("random")
	debug, _ := cmd.Flags().GetBool("debug")
	verbose, _ := cmd.Flags().GetBool("verbose")

	formatter := &cli.OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		reportError(formatter, "CONFIG_ERROR", err.Error(), "")
		return cli.WithExitCode(cli.ExitDataErr, err)
	}

	var s *script.Script
	if args[0] == "-" {
		s, err = script.Read(cmd.InOrStdin())
	} else {
		s, err = script.Load(args[0])
	}
	if err != nil {
		code, exit := classify(err)
		reportError(formatter, code, err.Error(), "Check the script against 'paso-board replay --help'")
		return cli.WithExitCode(exit, err)
	}

	columnPrefix, taskPrefix := cfg.Defaults.ColumnTitlePrefix, cfg.Defaults.TaskContentPrefix
	gen := func() board.Generator {
		if random {
			return board.NewRandomGenerator(columnPrefix, taskPrefix)
		}
		return board.NewSequenceGenerator(columnPrefix, taskPrefix)
	}

	logger := replayLogger(cmd.ErrOrStderr(), verbose)
	result, err := script.NewRunner(gen, logger, debug || cfg.Log.Debug).Run(s)
	if err != nil {
		code, exit := classify(err)
		reportError(formatter, code, err.Error(), "Bind an alias with 'as' before referencing it")
		return cli.WithExitCode(exit, err)
	}

	return formatter.Success(result)
}

// classify maps a script error to an error code and exit code
func classify(err error) (string, int) {
	switch {
	case errors.Is(err, script.ErrParse):
		return "PARSE_ERROR", cli.ExitDataErr
	case errors.Is(err, script.ErrUnknownAlias):
		return "ALIAS_NOT_FOUND", cli.ExitNotFound
	case errors.Is(err, script.ErrUnknownOp),
		errors.Is(err, script.ErrMissingField),
		errors.Is(err, script.ErrUnknownKind),
		errors.Is(err, script.ErrNoSteps),
		errors.Is(err, script.ErrDuplicateAlias):
		return "VALIDATION_ERROR", cli.ExitValidation
	default:
		return "REPLAY_ERROR", cli.ExitError
	}
}

func reportError(f *cli.OutputFormatter, code, message, suggestion string) {
	if err := f.ErrorWithSuggestion(code, message, suggestion); err != nil {
		log.Printf("Error formatting error message: %v", err)
	}
}

// replayLogger discards logs unless --verbose, which shows every change
func replayLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
