package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bookrab/errdoc/internal/catalog"
	"github.com/bookrab/errdoc/internal/config"
	"github.com/bookrab/errdoc/internal/docsync"
	"github.com/bookrab/errdoc/internal/errors"
	"github.com/bookrab/errdoc/internal/output"
	"github.com/bookrab/errdoc/internal/project"
)

// out is the shared output writer for CLI commands.
var out = output.New()

// Help text alignment widths for consistent formatting.
const (
	helpCommandWidth    = 18 // Width for commands like "list [paths...]"
	helpFlagWidthShort  = 10 // Width for short flags like "-h, --help"
	helpFlagWidthGlobal = 14 // Width for global flags like "--format=<fmt>"
)

// applyVerbosityToOutput configures the output writer based on verbosity settings.
func applyVerbosityToOutput(opts *GlobalOptions) {
	out.SetQuiet(opts.Quiet)
	out.SetVerbose(opts.Verbose)
}

// loadProject loads the project configuration and handles errors uniformly.
// Returns the project and exit code 0 on success, or nil and appropriate exit
// code on failure. Exit codes: 1 for runtime errors, 2 for config errors.
func loadProject() (*project.Project, int) {
	proj, err := project.LoadProject()
	if err != nil {
		out.ErrorPrefix("%v", err)
		return nil, errors.GetExitCode(err)
	}
	return proj, 0
}

// resolveSync builds the syncer and target file list for sync/check/list.
//
// When run inside a project, the configured markers and pattern apply and the
// configured files are the default targets. Explicit path arguments override
// the target list. Outside a project the built-in defaults are used, matching
// the original single-file workflow.
func resolveSync(args []string) (*docsync.Syncer, []string, int) {
	var syncCfg *config.SyncConfig
	var files []string

	proj, err := project.LoadProject()
	switch {
	case err == nil:
		for _, w := range proj.Warnings {
			out.WarningSimple("%s", w)
		}
		syncCfg = proj.Config.Sync
		files = proj.SyncFiles()
	case err == project.ErrNoProjectRoot:
		// Not in a project; built-in defaults apply.
	default:
		out.ErrorPrefix("%v", err)
		return nil, nil, errors.GetExitCode(err)
	}

	if len(args) > 0 {
		files = args
	}
	if len(files) == 0 {
		files = []string{docsync.DefaultFile}
	}

	var syncOpts docsync.Options
	if syncCfg != nil {
		syncOpts = docsync.Options{
			Header:     syncCfg.Header,
			Footer:     syncCfg.Footer,
			LinePrefix: syncCfg.LinePrefix,
			Pattern:    syncCfg.Pattern,
		}
	}

	syncer, err := docsync.New(syncOpts)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return nil, nil, errors.ExitConfigError
	}

	return syncer, files, 0
}

// cmdSync regenerates the documentation block of the target files in place
// and echoes the rewritten content to stdout.
func cmdSync(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printFileCommandUsage("sync")
		return 0
	}

	syncer, files, exitCode := resolveSync(stripSeparator(args))
	if exitCode != 0 {
		return exitCode
	}

	for _, file := range files {
		res, err := syncer.SyncFile(file)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.GetExitCode(err)
		}

		if !opts.Quiet {
			out.Print("%s", res.Content)
		}
		out.Verbose("synced %s: %d entries, changed=%t", res.Path, len(res.Entries), res.Changed)
	}

	return 0
}

// cmdCheck verifies that documentation blocks are up to date without writing.
func cmdCheck(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printFileCommandUsage("check")
		return 0
	}

	syncer, files, exitCode := resolveSync(stripSeparator(args))
	if exitCode != 0 {
		return exitCode
	}

	stale := 0
	for _, file := range files {
		res, err := syncer.CheckFile(file)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.GetExitCode(err)
		}

		if res.Changed {
			out.FileStale(file)
			stale++
		} else {
			out.FileInSync(file)
		}
	}

	if stale > 0 {
		out.ErrorPrefix("%d file(s) out of date; run 'errdoc sync'", stale)
		return errors.ExitFailure
	}
	return 0
}

// listFormats are the accepted values for the list --format flag.
var listFormats = map[string]bool{
	"table": true,
	"json":  true,
	"yaml":  true,
}

// cmdList prints the extracted error catalog of the target files.
func cmdList(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printListUsage()
		return 0
	}

	format := "table"
	var paths []string
	i := 0
	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "--format":
			if i+1 >= len(args) {
				out.ErrorPrefix("--format requires a value")
				return errors.ExitConfigError
			}
			format = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--format="):
			format = strings.TrimPrefix(arg, "--format=")
			i++
		case arg == "--":
			paths = append(paths, args[i+1:]...)
			i = len(args)
		case strings.HasPrefix(arg, "-"):
			out.ErrorPrefix("list: unknown option %q", arg)
			return errors.ExitConfigError
		default:
			paths = append(paths, arg)
			i++
		}
	}

	if !listFormats[format] {
		out.ErrorPrefix("invalid --format value %q (valid: table, json, yaml)", format)
		return errors.ExitConfigError
	}

	syncer, files, exitCode := resolveSync(paths)
	if exitCode != 0 {
		return exitCode
	}

	var entries []catalog.Entry
	for _, file := range files {
		res, err := syncer.CheckFile(file)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.GetExitCode(err)
		}
		entries = append(entries, res.Entries...)
	}

	switch format {
	case "json":
		data, err := catalog.EncodeJSON(entries)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.ExitFailure
		}
		out.Print("%s", data)
	case "yaml":
		data, err := catalog.EncodeYAML(entries)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.ExitFailure
		}
		out.Print("%s", data)
	default:
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.Code, e.Message})
		}
		out.Table([]string{"CODE", "MESSAGE"}, rows)
	}

	return 0
}

// cmdConfig handles config subcommands.
func cmdConfig(args []string) int {
	if len(args) == 0 {
		out.ErrorPrefix("config: subcommand required (validate, show)")
		return errors.ExitConfigError
	}

	switch args[0] {
	case "validate":
		return cmdConfigValidate()
	case "show":
		return cmdConfigShow()
	case "-h", "--help":
		printConfigUsage()
		return 0
	default:
		out.ErrorPrefix("config: unknown subcommand %q", args[0])
		return errors.ExitConfigError
	}
}

func cmdConfigValidate() int {
	proj, exitCode := loadProject()
	if proj == nil {
		return exitCode
	}

	// Print warnings
	for _, w := range proj.Warnings {
		out.WarningSimple("%s", w)
	}

	out.ValidationSuccess("Configuration is valid.")
	out.SummaryItem("Project", proj.Config.Project.Name)
	out.SummaryItem("Files", fmt.Sprintf("%d", len(proj.Config.Sync.Files)))
	out.SummaryItem("Pattern", proj.Config.Sync.Pattern)
	if len(proj.Warnings) > 0 {
		out.SummaryItem("Warnings", fmt.Sprintf("%d", len(proj.Warnings)))
	}
	return 0
}

func cmdConfigShow() int {
	proj, exitCode := loadProject()
	if proj == nil {
		return exitCode
	}

	data, err := json.MarshalIndent(proj.Config, "", "  ")
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitFailure
	}
	out.Println("%s", data)
	return 0
}

// stripSeparator removes a leading -- pass-through separator from args.
func stripSeparator(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}

func printUsage() {
	w := output.New()

	w.HelpTitle("errdoc - error catalog documentation sync")

	w.HelpSection("Usage:")
	w.HelpUsage("errdoc <command> [paths...] [options]")

	w.HelpSection("Commands:")
	w.HelpCommand("sync [paths...]", "Regenerate the error listing in place", helpCommandWidth)
	w.HelpCommand("check [paths...]", "Verify the error listing is up to date", helpCommandWidth)
	w.HelpCommand("list [paths...]", "Print the extracted error catalog", helpCommandWidth)
	w.HelpCommand("config", "Validate or show the project configuration", helpCommandWidth)
	w.HelpCommand("init", "Initialize an errdoc project", helpCommandWidth)
	w.HelpCommand("version", "Print the errdoc version", helpCommandWidth)
	w.HelpCommand("help", "Show this help", helpCommandWidth)

	w.HelpSection("Global Options:")
	w.HelpFlag("-q, --quiet", "Minimal output (errors only)", helpFlagWidthGlobal)
	w.HelpFlag("-v, --verbose", "Maximum detail", helpFlagWidthGlobal)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidthGlobal)

	w.HelpSection("Examples:")
	w.HelpExample("errdoc sync", "Sync the configured files")
	w.HelpExample("errdoc check src/errors.rs", "Check a specific file")
	w.HelpExample("errdoc list --format=yaml", "Dump the catalog as YAML")
	w.Println("")
}

// printFileCommandUsage prints the help text for sync and check.
func printFileCommandUsage(cmd string) {
	w := output.New()

	if cmd == "check" {
		w.HelpTitle("errdoc check - verify the error listing is up to date")
	} else {
		w.HelpTitle("errdoc sync - regenerate the error listing in place")
	}

	w.HelpSection("Usage:")
	w.HelpUsage(fmt.Sprintf("errdoc %s [paths...] [options]", cmd))

	w.HelpSection("Description:")
	w.Println("  Scans each file for string literals of the shape \"E0000: message\"")
	w.Println("  and rebuilds the documentation block between the configured header")
	w.Println("  and end marker, one listing line per message, in source order.")
	if cmd == "check" {
		w.Println("  Nothing is written; a stale listing exits with code 1.")
	} else {
		w.Println("  Files are overwritten in place and echoed to stdout.")
	}

	w.HelpSection("Arguments:")
	w.HelpFlag("[paths...]", "Files to process (default: configured files)", helpFlagWidthShort)

	w.HelpSection("Examples:")
	titleCase := cases.Title(language.English)
	w.HelpExample(fmt.Sprintf("errdoc %s", cmd), fmt.Sprintf("%s all configured files", titleCase.String(cmd)))
	w.HelpExample(fmt.Sprintf("errdoc %s src/errors.rs", cmd), fmt.Sprintf("%s a specific file", titleCase.String(cmd)))
	w.Println("")
}

func printListUsage() {
	w := output.New()

	w.HelpTitle("errdoc list - print the extracted error catalog")

	w.HelpSection("Usage:")
	w.HelpUsage("errdoc list [paths...] [options]")

	w.HelpSection("Options:")
	w.HelpFlag("--format=<fmt>", "Output format: table, json, yaml (default: table)", helpFlagWidthGlobal)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidthGlobal)

	w.HelpSection("Examples:")
	w.HelpExample("errdoc list", "List entries from the configured files")
	w.HelpExample("errdoc list --format=json", "Dump the catalog as JSON")
	w.Println("")
}

func printConfigUsage() {
	w := output.New()

	w.HelpTitle("errdoc config - inspect the project configuration")

	w.HelpSection("Usage:")
	w.HelpUsage("errdoc config <subcommand>")

	w.HelpSection("Subcommands:")
	w.HelpCommand("validate", "Validate .errdoc/config.json", helpCommandWidth)
	w.HelpCommand("show", "Print the resolved configuration", helpCommandWidth)
	w.Println("")
}
