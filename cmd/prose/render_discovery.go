package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-prose/internal/config"
	"github.com/alnah/go-prose/internal/fileutil"
)

// FileToRender represents a single file to process.
type FileToRender struct {
	InputPath  string
	OutputPath string
}

// discoverFiles lists the files to render. A file input is taken as-is,
// whatever its extension. A directory is walked for files matching exts.
func discoverFiles(inputPath, output, outExt string, exts []string) ([]FileToRender, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		outPath := resolveOutputPath(inputPath, output, "", outExt)
		return []FileToRender{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToRender
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.HasExtension(path, exts) {
			return nil
		}
		outPath := resolveOutputPath(path, output, inputPath, outExt)
		files = append(files, FileToRender{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the output path for an input file.
// Without output, the result sits next to the input. An output ending in
// outExt names the file itself. Otherwise output is a directory and the
// layout below baseInputDir is mirrored into it.
func resolveOutputPath(inputPath, output, baseInputDir, outExt string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	if output == "" {
		return filepath.Join(filepath.Dir(inputPath), base+outExt)
	}

	if baseInputDir == "" && strings.HasSuffix(strings.ToLower(output), outExt) {
		return output
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(output, filepath.Dir(relPath), base+outExt)
		}
	}

	return filepath.Join(output, base+outExt)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the worker count.
// Priority: explicit value > GOMAXPROCS (adjusted by automaxprocs for
// containers), capped at 8 and at the number of files.
func resolveWorkers(configured, files int) int {
	n := configured
	if n <= 0 {
		n = min(runtime.GOMAXPROCS(0), 8)
	}
	return max(min(n, files), 1)
}
