package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// rawArgs holds the raw command line for the unknown-option warning
// pass. Unknown flags are whitelisted during parsing (they must not
// abort the run), so they have to be detected from the original
// arguments. Tests that execute the root command set this to match the
// arguments they inject.
var rawArgs = os.Args[1:]

// NewRootCmd creates the root command for treelister.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treelister [directory]",
		Short: "Directory contents reporter",
		Long: `treelister enumerates a directory tree and writes a timestamped report
artifact plus item counts, mirroring a short summary to the console.

USAGE:
  treelister <directory>            flat sorted listing (default)
  treelister <directory> --tree     depth-indented tree view
  treelister <directory> --markdown markdown document

The report is written to the current working directory (not the target)
as directory_contents_<YYYYMMDD>_<HHMMSS>.txt. Hidden entries are
included; the tool's own executable never appears in the listing or the
counts. Unknown options produce a warning and are otherwise ignored.`,
		Version:       getVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: runRootCmd,
	}

	// Global flags that apply to all commands. Verbose has no shorthand
	// so that -v stays available for --version.
	cmd.PersistentFlags().Bool("verbose", false, "Enable verbose logging")

	// Report format flags
	cmd.Flags().Bool("tree", false,
		"Render the report body as a depth-indented tree")
	cmd.Flags().BoolP("markdown", "m", false,
		"Render the report as a markdown document (mutually exclusive with --tree)")
	cmd.Flags().Bool("external-tree", false,
		"Delegate tree rendering to an installed tree(1) binary when available")

	// Output flags
	cmd.Flags().StringP("output-dir", "o", ".",
		"Directory that receives the report artifact")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .treelister in current or home directory)")

	// History flags
	cmd.Flags().Bool("no-history", false,
		"Do not record this run in the scan history database")

	// Add subcommands
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// warnUnknownFlags prints a warning for every option in args that is not
// defined on the command. Unknown options are non-fatal: the warning is
// the only consequence and processing continues.
func warnUnknownFlags(cmd *cobra.Command, args []string) {
	for _, arg := range args {
		if arg == "--" {
			return
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if i := strings.Index(name, "="); i >= 0 {
			name = name[:i]
		}
		if name == "" {
			continue
		}

		if !flagKnown(cmd.Flags(), arg, name) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: ignoring unknown option %q\n", arg)
		}
	}
}

// flagKnown reports whether a raw option refers to a defined flag.
// Single-dash options may combine several shorthands, so each letter
// must be known.
func flagKnown(flags *pflag.FlagSet, arg, name string) bool {
	if strings.HasPrefix(arg, "--") {
		return flags.Lookup(name) != nil
	}
	for _, c := range name {
		if flags.ShorthandLookup(string(c)) == nil {
			return false
		}
	}
	return true
}

// recoverTarget re-derives the positional target from the raw command
// line. pflag consumes the token following a whitelisted unknown option
// as that option's presumed value, so a target placed right after one
// never reaches the parsed arguments. Unknown options are treated as
// valueless here; only known value-taking flags skip the next token.
func recoverTarget(flags *pflag.FlagSet, args []string) string {
	skipValue := false
	for i, arg := range args {
		if skipValue {
			skipValue = false
			continue
		}
		if arg == "--" {
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			return arg
		}

		name := strings.TrimLeft(arg, "-")
		if name == "" || strings.Contains(name, "=") {
			continue
		}
		skipValue = flagTakesValue(flags, arg, name)
	}
	return ""
}

// flagTakesValue reports whether a known flag consumes the next
// argument. In a combined shorthand group only the last letter can take
// a value.
func flagTakesValue(flags *pflag.FlagSet, arg, name string) bool {
	var f *pflag.Flag
	if strings.HasPrefix(arg, "--") {
		f = flags.Lookup(name)
	} else {
		f = flags.ShorthandLookup(string(name[len(name)-1]))
	}
	return f != nil && f.Value.Type() != "bool"
}
