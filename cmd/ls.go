package cmd

import (
	"fmt"

	"github.com/PolarWolf314/manuka/internal/envfile"
	"github.com/PolarWolf314/manuka/internal/ui"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls [DIR]",
	Short: "List .env files under a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		files, err := envfile.Discover(dir)
		if err != nil {
			return fatal(Logger.ErrorfAndReturn("failed to list environment files: %v", err))
		}

		if len(files) == 0 {
			cmd.Println("No .env files found in " + ui.Path.Sprint(dir))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Found %d .env file(s):\n", len(files))
		for _, f := range files {
			cmd.Println("  " + f)
		}
		return nil
	},
}
