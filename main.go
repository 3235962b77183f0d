package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/manuka/cmd"
)

func main() {
	err := cmd.RootCmd.Execute()

	var exit *cmd.ExitCodeError
	if err != nil && !errors.As(err, &exit) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cmd.ExitCode(err))
}
