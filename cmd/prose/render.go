package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-prose"
	"github.com/alnah/go-prose/internal/config"
	"github.com/alnah/go-prose/internal/fileutil"
	"github.com/alnah/go-prose/internal/hints"
	"github.com/alnah/go-prose/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrNoInput          = errors.New("no input specified")
	ErrNoFiles          = errors.New("no prose files found")
	ErrReadInput        = errors.New("failed to read input")
	ErrWriteOutput      = errors.New("failed to write output")
	ErrCreateOutputDir  = errors.New("failed to create output directory")
	ErrInvalidDate      = errors.New("invalid date")
	ErrIDWithBatch      = errors.New("--id requires a single input file")
	ErrStandaloneFormat = errors.New("--standalone requires html format")

	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// stdinPath selects standard input as the source.
const stdinPath = "-"

// dateLayout is the --date flag layout.
const dateLayout = "2006-01-02"

// renderOptions groups parameters shared across batch/file rendering.
type renderOptions struct {
	mode   prose.Mode
	format prose.Format
	now    time.Time
	id     string
	page   []prose.PageOption // nil unless standalone
}

// runRender orchestrates the render command.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	logger := env.NewLogger(verbosity(flags.common))
	if env.SetMaxProcs != nil {
		env.SetMaxProcs(logging.Component(logger, "runtime"))
	}
	warnUnknownEnvVars(logger, os.Environ())

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(logger)
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := buildRenderOptions(flags, cfg, env.Now)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	outputPath := resolveOutputDir(flags.output, cfg)

	logger.Debug().
		Str("input", inputPath).
		Str("output", outputPath).
		Str("mode", opts.mode.String()).
		Str("format", string(opts.format)).
		Msg("resolved render settings")

	if inputPath == stdinPath {
		return renderStdin(env, outputPath, opts, flags.common.quiet)
	}

	files, err := discoverFiles(inputPath, outputPath, outputExtension(opts), cfg.Extensions())
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s (extensions %s)", ErrNoFiles, inputPath, strings.Join(cfg.Extensions(), ", "))
	}
	if opts.id != "" && len(files) > 1 {
		return fmt.Errorf("%w: %d files found in %s", ErrIDWithBatch, len(files), inputPath)
	}

	workers := resolveWorkers(cfg.Workers, len(files))
	done := logging.Operation(logger, "render batch")
	results := renderBatch(ctx, files, opts, workers, logging.Component(logger, "batch"))
	done()

	failed := printResults(results, flags.common.quiet, flags.common.verbose > 0, env)
	if failed > 0 {
		return fmt.Errorf("%d render(s) failed", failed)
	}
	return nil
}

// verbosity maps -q and -v to a logging verbosity.
func verbosity(f commonFlags) int {
	if f.quiet {
		return -1
	}
	return f.verbose
}

// loadConfig loads the named config, or the defaults when no name is given.
// The flag wins over PROSE_CONFIG.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		var searched []string
		if !fileutil.IsFilePath(name) {
			searched = config.SearchPaths(name)
		}
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searched))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over cfg.
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	if flags.lite {
		cfg.Mode = "lite"
	} else if flags.full {
		cfg.Mode = "full"
	}
	if flags.format != "" {
		cfg.Format = flags.format
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}

	if flags.page.standalone {
		cfg.Page.Standalone = true
	}
	if flags.page.style != "" {
		cfg.Page.Style = flags.page.style
	}
	if flags.page.noStyle {
		cfg.Page.Style = prose.NoStyle
	}
	if flags.page.layout != "" {
		cfg.Page.Layout = flags.page.layout
	}
	if flags.page.lang != "" {
		cfg.Page.Lang = flags.page.lang
	}
	if flags.page.assetsDir != "" {
		cfg.Page.AssetsDir = flags.page.assetsDir
	}
}

// buildRenderOptions resolves the merged config into render options.
func buildRenderOptions(flags *renderFlags, cfg *config.Config, now func() time.Time) (*renderOptions, error) {
	if flags.lite && flags.full {
		return nil, fmt.Errorf("%w: --lite and --full are mutually exclusive", ErrUsage)
	}

	opts := &renderOptions{mode: prose.Full, format: prose.FormatHTML, id: flags.id}

	var err error
	if cfg.Mode != "" {
		if opts.mode, err = prose.ParseMode(cfg.Mode); err != nil {
			return nil, err
		}
	}
	if cfg.Format != "" {
		if opts.format, err = prose.ParseFormat(cfg.Format); err != nil {
			return nil, err
		}
	}
	if opts.id != "" {
		if err := prose.ValidateID(opts.id); err != nil {
			return nil, err
		}
	}

	if opts.now, err = resolveDate(flags.date, now); err != nil {
		return nil, err
	}

	if cfg.Page.Standalone {
		if opts.format != prose.FormatHTML {
			return nil, fmt.Errorf("%w: got %s", ErrStandaloneFormat, opts.format)
		}
		opts.page, err = buildPageOptions(cfg.Page)
		if err != nil {
			return nil, err
		}
	}

	return opts, nil
}

// buildPageOptions converts page config into prose page options.
func buildPageOptions(pc config.PageConfig) ([]prose.PageOption, error) {
	loader, err := prose.NewAssetLoader(pc.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: --assets: %v", ErrUsage, err)
	}

	opts := []prose.PageOption{prose.WithAssets(loader)}
	if pc.Style != "" {
		opts = append(opts, prose.WithStyle(pc.Style))
	}
	if pc.Layout != "" {
		opts = append(opts, prose.WithLayout(pc.Layout))
	}
	if pc.Lang != "" {
		opts = append(opts, prose.WithLang(pc.Lang))
	}
	return opts, nil
}

// resolveDate parses --date, or returns the current time.
func resolveDate(date string, now func() time.Time) (time.Time, error) {
	if date == "" {
		return now(), nil
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidDate, date)
	}
	return t, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(args))
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output path from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// outputExtension returns the file extension written for opts.
func outputExtension(opts *renderOptions) string {
	return opts.format.Extension()
}

// renderDocument produces the output bytes for doc.
func renderDocument(doc *prose.Document, opts *renderOptions) ([]byte, error) {
	if opts.id != "" {
		if err := doc.SetID(opts.id); err != nil {
			return nil, err
		}
	}
	if opts.page != nil {
		return doc.Page(opts.mode, opts.page...)
	}
	return doc.Encode(opts.format, opts.mode, opts.now)
}

// renderStdin renders standard input to stdout, or to outputPath when set.
func renderStdin(env *Environment, outputPath string, opts *renderOptions, quiet bool) error {
	doc, err := prose.ReadDocument(env.Stdin)
	if err != nil {
		if errors.Is(err, prose.ErrEmptyInput) || errors.Is(err, prose.ErrInputTooLarge) {
			return err
		}
		return fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
	}

	out, err := renderDocument(doc, opts)
	if err != nil {
		return err
	}

	if outputPath == "" || outputPath == stdinPath {
		if _, err := env.Stdout.Write(out); err != nil {
			return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := writeOutput(outputPath, out); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}
	return nil
}
