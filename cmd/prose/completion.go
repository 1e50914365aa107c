package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-prose"
	"github.com/alnah/go-prose/internal/config"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells in help order.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, comma separated
}

// takesValue reports whether the flag consumes the next word.
func (f flagDef) takesValue() bool {
	return f.Type != flagBool
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed argument values
	TakesFiles  bool     // accepts file arguments
	FilePattern string   // glob for file arguments, comma separated
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
// Style and layout names come from the built-in assets.
func flagCompletionMeta() map[string]completionMeta {
	formats := make([]string, len(prose.Formats))
	for i, f := range prose.Formats {
		formats[i] = string(f)
	}

	return map[string]completionMeta{
		// Enum flags
		"format": {Values: formats},
		"style":  {Values: append(prose.Styles(), prose.NoStyle)},
		"layout": {Values: prose.Layouts()},

		// File flags with glob patterns
		"config": {FileGlob: "*.yaml,*.yml"},

		// Directory flags
		"output": {IsDir: true},
		"assets": {IsDir: true},
	}
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	meta := flagCompletionMeta()
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool", "count":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if m, ok := meta[f.Name]; ok {
			switch {
			case len(m.Values) > 0:
				fd.Type = flagEnum
				fd.Values = m.Values
			case m.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = m.FileGlob
			case m.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Render flags are extracted from the render FlagSet.
func getCommands() []commandDef {
	patterns := make([]string, len(config.DefaultExtensions))
	for i, ext := range config.DefaultExtensions {
		patterns[i] = "*" + ext
	}

	commandNames := []string{"render", "version", "help", "completion"}
	shells := make([]string, len(Shells))
	for i, s := range Shells {
		shells[i] = string(s)
	}

	return []commandDef{
		{
			Name:        "render",
			Desc:        "Render prose files to HTML, JSON or YAML",
			Flags:       extractFlagsFromFlagSet(newRenderFlagSet(&renderFlags{})),
			TakesFiles:  true,
			FilePattern: strings.Join(patterns, ","),
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: commandNames,
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: shells,
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = bashScript(getCommands())
	case ShellZsh:
		script = zshScript(getCommands())
	case ShellFish:
		script = fishScript(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}

	if _, err := io.WriteString(w, script); err != nil {
		return fmt.Errorf("%w: completion script: %v", ErrWriteOutput, err)
	}
	return nil
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: completion takes one shell, got %d arguments", ErrUsage, len(args))
	}

	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: prose completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(prose completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(prose completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    prose completion fish > ~/.config/fish/completions/prose.fish")
}

// commandNameList joins the command names with spaces.
func commandNameList(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// flagWords lists every spelling of the flags, long first.
func flagWords(flags []flagDef) string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// flagAlternation returns "--output|-o" for a bash case pattern.
func flagAlternation(f flagDef) string {
	if f.Short == "" {
		return "--" + f.Long
	}
	return "--" + f.Long + "|-" + f.Short
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func bashScript(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# bash completion for prose\n\n")
	b.WriteString("_prose_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	// render is the default command, so the first word may also be a file.
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") $(compgen -f -- \"${cur}\") )\n", commandNameList(cmds))
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n")
	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 && len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		if len(c.Flags) > 0 {
			writeBashFlagValues(&b, c.Flags)
			b.WriteString("            if [[ ${cur} == -* ]]; then\n")
			fmt.Fprintf(&b, "                COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", flagWords(c.Flags))
			b.WriteString("                return 0\n")
			b.WriteString("            fi\n")
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(c.Args, " "))
		case c.TakesFiles:
			b.WriteString("            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n")
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -o filenames -F _prose_completions prose\n")

	return b.String()
}

// writeBashFlagValues completes the value after a flag that takes one.
func writeBashFlagValues(b *strings.Builder, flags []flagDef) {
	b.WriteString("            case \"${prev}\" in\n")
	for _, f := range flags {
		if !f.takesValue() {
			continue
		}
		fmt.Fprintf(b, "                %s)\n", flagAlternation(f))
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(b, "                    COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(f.Values, " "))
		case flagFile:
			b.WriteString("                    COMPREPLY=( $(compgen -f -- \"${cur}\") )\n")
		case flagDir:
			b.WriteString("                    COMPREPLY=( $(compgen -d -- \"${cur}\") )\n")
		}
		b.WriteString("                    return 0\n")
		b.WriteString("                    ;;\n")
	}
	b.WriteString("            esac\n")
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

// zshEscaper escapes characters special inside an _arguments spec.
var zshEscaper = strings.NewReplacer(`'`, `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)

func zshScript(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("#compdef prose\n\n")
	b.WriteString("_prose() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscaper.Replace(c.Desc))
	}
	b.WriteString("    )\n\n")

	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe -t commands 'prose command' commands\n")
	b.WriteString("        _files\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 && len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		b.WriteString("            _arguments \\\n")
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "                %s \\\n", zshFlagSpec(f))
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "                '1:%s:(%s)'\n", c.Name, strings.Join(c.Args, " "))
		case c.TakesFiles:
			globs := strings.ReplaceAll(c.FilePattern, ",", " ")
			fmt.Fprintf(&b, "                '*:input:_files -g \"%s\"'\n", globs)
		default:
			b.WriteString("                '*::'\n")
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _prose prose\n")

	return b.String()
}

// zshFlagSpec builds one _arguments spec, such as
// '(-o --output)'{-o,--output}'[output file or directory]:directory:_files -/'.
func zshFlagSpec(f flagDef) string {
	desc := "[" + zshEscaper.Replace(f.Desc) + "]"

	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":file:_files -g \"" + strings.ReplaceAll(f.FileGlob, ",", " ") + "\""
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":" + f.Long + ":"
	}

	if f.Short == "" {
		return "'--" + f.Long + desc + action + "'"
	}
	exclusion := "(-" + f.Short + " --" + f.Long + ")"
	if f.Long == "verbose" {
		exclusion = "*" // repeatable count flag
	}
	return "'" + exclusion + "'{-" + f.Short + ",--" + f.Long + "}'" + desc + action + "'"
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

// fishEscaper escapes a single-quoted fish string.
var fishEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func fishScript(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for prose\n\n")
	b.WriteString("function __fish_prose_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_prose_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")

	b.WriteString("complete -c prose -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c prose -n __fish_prose_needs_command -a %s -d '%s'\n", c.Name, fishEscaper.Replace(c.Desc))
	}
	b.WriteString("complete -c prose -n __fish_prose_needs_command -F\n")

	for _, c := range cmds {
		if len(c.Flags) == 0 && len(c.Args) == 0 {
			continue
		}
		b.WriteString("\n")
		cond := fmt.Sprintf("'__fish_prose_using_command %s'", c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c prose -n %s%s\n", cond, fishFlagSpec(f))
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "complete -c prose -n %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		case c.TakesFiles:
			fmt.Fprintf(&b, "complete -c prose -n %s -F\n", cond)
		}
	}

	return b.String()
}

// fishFlagSpec builds the flag part of a fish complete line.
func fishFlagSpec(f flagDef) string {
	var b strings.Builder
	if f.Short != "" {
		b.WriteString(" -s " + f.Short)
	}
	b.WriteString(" -l " + f.Long)
	b.WriteString(" -d '" + fishEscaper.Replace(f.Desc) + "'")

	switch f.Type {
	case flagEnum:
		b.WriteString(" -r -f -a '" + strings.Join(f.Values, " ") + "'")
	case flagFile:
		b.WriteString(" -r -F")
	case flagDir:
		b.WriteString(" -r -f -a '(__fish_complete_directories)'")
	case flagString, flagInt:
		b.WriteString(" -r")
	}
	return b.String()
}
