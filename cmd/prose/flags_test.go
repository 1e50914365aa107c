package main

import (
	"errors"
	"io"
	"slices"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseRenderFlags(t *testing.T) {
	t.Parallel()

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()

		f, args, err := parseRenderFlags([]string{
			"post.prose",
			"-o", "out",
			"-f", "json",
			"--lite",
			"--id", "my-post",
			"--date", "2026-10-14",
			"-w", "4",
			"-c", "blog",
			"-vv",
			"--standalone", "--style", "plain", "--layout", "page", "--lang", "fr", "--assets", "theme",
		}, io.Discard)
		if err != nil {
			t.Fatalf("parseRenderFlags() error = %v", err)
		}

		if !slices.Equal(args, []string{"post.prose"}) {
			t.Errorf("args = %v, want [post.prose]", args)
		}
		if f.output != "out" || f.format != "json" || !f.lite || f.id != "my-post" || f.date != "2026-10-14" || f.workers != 4 {
			t.Errorf("flags = %+v", f)
		}
		if f.common.config != "blog" || f.common.verbose != 2 || f.common.quiet {
			t.Errorf("common = %+v, want config blog, verbose 2", f.common)
		}
		want := pageFlags{standalone: true, style: "plain", layout: "page", lang: "fr", assetsDir: "theme"}
		if f.page != want {
			t.Errorf("page = %+v, want %+v", f.page, want)
		}
	})

	t.Run("verbose counts repeats", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseRenderFlags([]string{"-v", "-v", "--verbose"}, io.Discard)
		if err != nil {
			t.Fatalf("parseRenderFlags() error = %v", err)
		}
		if f.common.verbose != 3 {
			t.Errorf("verbose = %d, want 3", f.common.verbose)
		}
	})

	t.Run("unknown flag fails", func(t *testing.T) {
		t.Parallel()

		if _, _, err := parseRenderFlags([]string{"--nope"}, io.Discard); err == nil {
			t.Error("parseRenderFlags(--nope) error = nil, want error")
		}
	})

	t.Run("help returns ErrHelp", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseRenderFlags([]string{"-h"}, io.Discard)
		if !errors.Is(err, flag.ErrHelp) {
			t.Errorf("parseRenderFlags(-h) error = %v, want ErrHelp", err)
		}
	})
}

func TestVerbosity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags commonFlags
		want  int
	}{
		{"default", commonFlags{}, 0},
		{"verbose", commonFlags{verbose: 2}, 2},
		{"quiet wins", commonFlags{quiet: true, verbose: 2}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := verbosity(tt.flags); got != tt.want {
				t.Errorf("verbosity(%+v) = %d, want %d", tt.flags, got, tt.want)
			}
		})
	}
}
