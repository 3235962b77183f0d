package cmd

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/PolarWolf314/manuka/internal/configs"
	"github.com/PolarWolf314/manuka/internal/envfile"
	"github.com/PolarWolf314/manuka/internal/ui"

	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up. FinalMSG values do not need trailing newlines;
// the cleanup function normalises them.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}
		if finalMsg != "" {
			os.Stdout.WriteString(finalMsg)
		}
	}
	return s, cleanup
}

// loadOptionsFromSettings builds loader options from the user settings
// file, leaving room for flags to override.
func loadOptionsFromSettings() envfile.LoadOptions {
	settings, err := configs.LoadSettings()
	if err != nil {
		Logger.Warnf("Failed to load settings, using defaults: %v", err)
		settings = configs.DefaultSettings()
	}
	return envfile.LoadOptions{
		AllowCommands:  settings.AllowCommands,
		CommandTimeout: settings.CommandTimeout(),
		Diagnostics: func(d envfile.Diagnostic) {
			Logger.WarnfAlways("%s", d)
		},
	}
}

// fatal wraps crypto and I/O failures so Execute exits with code 2.
func fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}
