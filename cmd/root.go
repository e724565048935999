package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso-board/internal/cli"
	"github.com/thenoetrevino/paso-board/internal/config"
	"github.com/thenoetrevino/paso-board/internal/launcher"
)

// NewRootCmd builds the paso-board command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "paso-board",
		Short: "paso-board - an in-memory drag-and-drop kanban board",
		Long: `paso-board is a terminal kanban board that lives entirely in memory.

Create columns and tasks, edit them inline, and reorder both by picking an
element up, moving it with the cursor keys and dropping it. Nothing is saved
when the program exits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBoard,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/paso-board/config.yaml)")
	rootCmd.Flags().Bool("debug", false, "Check board invariants after every change")

	rootCmd.AddCommand(ReplayCmd())
	rootCmd.AddCommand(KeysCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return cli.WithExitCode(cli.ExitDataErr, err)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		// Without a resolvable path there is nothing to watch
		path, _ = config.Path()
	}

	return launcher.Launch(launcher.Options{Config: cfg, Debug: debug, ConfigPath: path})
}

// loadConfig reads --config when given, otherwise the default location
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

// ExitCode maps an error returned by Execute to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return cli.ExitSuccess
	}
	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return cli.ExitError
}
