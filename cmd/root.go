package cmd

import (
	"errors"
	"fmt"

	logger "github.com/PolarWolf314/manuka/internal/logging"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "manuka",
		Short: "Manuka - encrypted .env files you can safely commit",
		Long: `Manuka manages environment variable files with per-value public-key
encryption. Values are encrypted against a secp256k1 public key kept in the
file itself; the matching private key lives in a sibling .env.keys file that
stays out of version control. At run time manuka decrypts transparently and
launches your command with the resulting environment.

Usage:
  manuka <command> [flags]

Run 'manuka help <command>' for more details on a specific command.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing manuka with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewFigure("manuka", "", true)
			banner.Print()
			fmt.Println("Run 'manuka --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(keypairCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(setCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(lsCmd)
	RootCmd.AddCommand(runCmd)
}

// ExitCodeError carries a child process exit code through cobra so main
// can propagate it untouched.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.Code)
}

// ExitCode classifies an error from Execute into the CLI contract:
// 0 success, 1 user error, 2 crypto or I/O failure. A child process exit
// code passes through unchanged.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exit *ExitCodeError
	if errors.As(err, &exit) {
		return exit.Code
	}
	var fatal *FatalError
	if errors.As(err, &fatal) {
		return 2
	}
	return 1
}

// FatalError marks crypto and I/O failures that exit with code 2.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
