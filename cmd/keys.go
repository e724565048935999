package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/paso-board/internal/cli"
	"github.com/thenoetrevino/paso-board/internal/config"
	"github.com/thenoetrevino/paso-board/internal/tui"
)

// KeysCmd returns the keys subcommand
func KeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the active key bindings",
		Args:  cobra.NoArgs,
		RunE:  runKeys,
	}

	cmd.Flags().Bool("raw", false, "Print markdown without rendering")
	cmd.Flags().Int("width", 80, "Wrap width for rendered output")
	cmd.Flags().Bool("write-defaults", false, "Write the resolved config, defaults filled in, to the config file")

	return cmd
}

func runKeys(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetBool("raw")
	width, _ := cmd.Flags().GetInt("width")

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return cli.WithExitCode(cli.ExitDataErr, err)
	}

	if write, _ := cmd.Flags().GetBool("write-defaults"); write {
		return writeConfig(cmd, cfg)
	}

	if raw {
		_, err = fmt.Fprint(cmd.OutOrStdout(), tui.KeymapMarkdown(cfg.KeyMappings))
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderHelp(cfg.KeyMappings, width))
	return err
}

// writeConfig saves cfg to --config when given, else the default location
func writeConfig(cmd *cobra.Command, cfg *config.Config) error {
	path, _ := cmd.Flags().GetString("config")
	var err error
	if path == "" {
		path, err = config.Path()
		if err == nil {
			err = cfg.Save()
		}
	} else {
		err = cfg.SaveFile(path)
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return cli.WithExitCode(cli.ExitError, err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", path)
	return err
}
