package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: prose [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render prose files to HTML, JSON or YAML (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'prose help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: prose render <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render prose markup files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    File, directory, or - for stdin (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (stdin input defaults to stdout)")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: html, json, yaml")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --lite                Escape HTML, skip headers, nofollow links")
	fmt.Fprintln(w, "      --full                Full mode, overriding config")
	fmt.Fprintln(w, "      --id <s>              Document id: lowercase letters, digits, hyphens")
	fmt.Fprintln(w, "      --date <YYYY-MM-DD>   Date used for envelope id, uri and date fields")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page (html format):")
	fmt.Fprintln(w, "      --standalone          Wrap output in a complete HTML page")
	fmt.Fprintln(w, "      --style <name>        Page style (default, plain, or custom)")
	fmt.Fprintln(w, "      --no-style            Omit the page style")
	fmt.Fprintln(w, "      --layout <name>       Page layout (default page)")
	fmt.Fprintln(w, "      --lang <s>            Page language (default en)")
	fmt.Fprintln(w, "      --assets <dir>        Directory with styles/*.css and layouts/*.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Verbose output (-vv debug, -vvv trace)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	for _, name := range knownEnvNames() {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: prose version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: prose help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
