package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose int
}

// pageFlags holds standalone page flags.
type pageFlags struct {
	standalone bool
	style      string
	layout     string
	lang       string
	assetsDir  string
	noStyle    bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common  commonFlags
	output  string
	format  string
	lite    bool
	full    bool
	id      string
	date    string
	workers int
	page    pageFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.CountVarP(&f.verbose, "verbose", "v", "verbose output (repeat for more)")
}

// addPageFlags adds standalone page flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.BoolVar(&f.standalone, "standalone", false, "wrap HTML output in a complete page")
	fs.StringVar(&f.style, "style", "", "page style name")
	fs.StringVar(&f.layout, "layout", "", "page layout name")
	fs.StringVar(&f.lang, "lang", "", "page language")
	fs.StringVar(&f.assetsDir, "assets", "", "directory with custom styles/ and layouts/")
	fs.BoolVar(&f.noStyle, "no-style", false, "omit the page style")
}

// newRenderFlagSet registers every render flag into f. Parsing and shell
// completion share it.
func newRenderFlagSet(f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.format, "format", "f", "", "output format: html, json, yaml")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Document flags
	fs.BoolVar(&f.lite, "lite", false, "render untrusted input (escape HTML, no headers)")
	fs.BoolVar(&f.full, "full", false, "render in full mode, overriding config")
	fs.StringVar(&f.id, "id", "", "document id (single input only)")
	fs.StringVar(&f.date, "date", "", "envelope date as YYYY-MM-DD (default today)")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)

	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
// Usage and parse errors are written to stderr.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newRenderFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printRenderUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
