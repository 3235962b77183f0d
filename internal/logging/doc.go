// Package logger provides leveled logging for manuka CLI commands.
//
// The logger supports verbosity levels controlled by command-line flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug details
//
// Without flags, only critical warnings and errors are shown.
//
// Values loaded from or written to environment files are secrets; they must
// never be passed to any log method. Log key names, file paths, and counts
// instead.
//
// Commands create a logger in their PersistentPreRun:
//
//	Logger = logger.Logger{Verbose: verbose, Debug: debug}
//	Logger.Infof("encrypting %d entries in %s", n, path)
package logger
