// Package cli provides command-line interface functionality for errdoc.
package cli

import (
	"fmt"

	"github.com/bookrab/errdoc/internal/errors"
)

// Version is set at build time.
var Version = "dev"

// wantsHelp returns true if args contain -h or --help before any -- separator.
// Arguments after -- are passed through to commands, so help flags there are ignored.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
		if arg == "--" {
			return false
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 0
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return 0
	case "--version", "version":
		fmt.Printf("errdoc %s\n", Version)
		return 0
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	// Re-extract command after flag parsing
	if len(remaining) == 0 {
		printUsage()
		return 0
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	// Route to command handler
	switch cmd {
	case "help":
		printUsage()
		return 0
	case "version":
		fmt.Printf("errdoc %s\n", Version)
		return 0
	case "init":
		return cmdInit(cmdArgs)
	case "sync":
		return cmdSync(cmdArgs, opts)
	case "check":
		return cmdCheck(cmdArgs, opts)
	case "list":
		return cmdList(cmdArgs, opts)
	case "config":
		return cmdConfig(cmdArgs)
	default:
		out.ErrorPrefix("unknown command %q", cmd)
		out.Hint("run 'errdoc --help' for usage")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet   bool
	Verbose bool
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of stdlib flag package because:
// - Flags can appear anywhere in the argument list, not just before the command
// - Pass-through arguments after -- must be preserved verbatim
// - Custom error messages with usage hints are needed
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "--":
			// Everything after -- is passed through
			remaining = append(remaining, args[i:]...)
			i = len(args)
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	if opts.Quiet && opts.Verbose {
		return nil, nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}

	// Apply verbosity settings to the shared output writer so all commands
	// behave consistently.
	applyVerbosityToOutput(opts)

	return opts, remaining, nil
}
