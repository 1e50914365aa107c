package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
	}{
		{"no topic", nil, "Run 'prose help <command>'", ""},
		{"render", []string{"render"}, "Usage: prose render <input> [flags]", ""},
		{"version", []string{"version"}, "Usage: prose version", ""},
		{"help", []string{"help"}, "Usage: prose help [command]", ""},
		{"unknown topic", []string{"publish"}, "", "Unknown command: publish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv("")
			runHelp(tt.args, env)

			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want containing %q", stdout, tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want containing %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestPrintRenderUsage_ListsEnv(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printRenderUsage(&buf)

	for _, name := range knownEnvNames() {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("render usage missing %s", name)
		}
	}
	for _, flag := range []string{"--standalone", "--lite", "--date", "--assets"} {
		if !strings.Contains(buf.String(), flag) {
			t.Errorf("render usage missing %s", flag)
		}
	}
}
