package cmd

import (
	"errors"
	"os"
	"os/exec"

	"github.com/PolarWolf314/manuka/internal/envfile"

	"github.com/spf13/cobra"
)

var (
	runFiles      []string
	runOverload   bool
	runNoCommands bool
	runPrivateKey string
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- COMMAND [ARGS...]",
	Short: "Run a command with the environment loaded from .env files",
	Long: `Loads the given .env files (default .env), decrypting encrypted values
and expanding the rest, then launches the command with the resulting
environment. Without --overload, variables already present in the process
environment keep their values. The child's exit code is propagated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dash := cmd.ArgsLenAtDash()
		if dash < 0 {
			dash = 0
		}
		command := args[dash:]
		if len(command) == 0 {
			return Logger.ErrorfAndReturn("no command given: use 'manuka run -- COMMAND [ARGS...]'")
		}

		files := runFiles
		if len(files) == 0 {
			files = []string{".env"}
		}

		opts := loadOptionsFromSettings()
		opts.Overload = runOverload
		opts.PrivateKeyOverride = runPrivateKey
		if runNoCommands {
			opts.AllowCommands = false
		}

		Logger.Infof("Loading %d environment file(s)", len(files))
		values, err := envfile.Load(files, opts)
		if err != nil {
			return fatal(Logger.ErrorfAndReturn("failed to load environment: %v", err))
		}
		Logger.Infof("Loaded %d variables", len(values))

		child := exec.Command(command[0], command[1:]...)
		child.Env = envfile.MergeWithEnviron(values, runOverload)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr

		if err := child.Run(); err != nil {
			var exit *exec.ExitError
			if errors.As(err, &exit) {
				return &ExitCodeError{Code: exit.ExitCode()}
			}
			return fatal(Logger.ErrorfAndReturn("failed to run %s: %v", command[0], err))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringSliceVarP(&runFiles, "env-file", "f", nil, "path to .env file (repeatable, later files win)")
	runCmd.Flags().BoolVar(&runOverload, "overload", false, "let loaded variables overwrite existing environment bindings")
	runCmd.Flags().BoolVar(&runNoCommands, "no-expand-commands", false, "disable $(...) command substitution")
	runCmd.Flags().StringVar(&runPrivateKey, "private-key", "", "additional private key to decrypt with (must match the file's DOTENV_PUBLIC_KEY)")
	runCmd.Flags().SetInterspersed(false)
}
