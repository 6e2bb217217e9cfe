package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	handout "github.com/bcarden/go-handout"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingInput     = errors.New("missing input file")
	ErrUnsupportedInput = errors.New("input must be .pdf, .ppt, .pptx, or .odp")
	ErrWriteOutput      = errors.New("failed to write output file")
)

// supportedInputExts mirrors the formats the pipeline accepts.
var supportedInputExts = map[string]bool{
	".pdf":  true,
	".ppt":  true,
	".pptx": true,
	".odp":  true,
}

// optimizer is the slice of the handout service the CLI needs.
type optimizer interface {
	Optimize(ctx context.Context, input handout.Input) ([]byte, error)
}

// runSettings are the effective settings after merging config file and flags.
type runSettings struct {
	tiles handout.TilingMode
	dpi   int
}

// run converts a single deck: it resolves paths, calls the service, and
// writes the result.
func run(ctx context.Context, args []string, settings runSettings, svc optimizer, logger *log.Logger) error {
	if len(args) < 1 {
		return ErrMissingInput
	}

	inputPath := args[0]
	if !supportedInputExts[strings.ToLower(filepath.Ext(inputPath))] {
		return fmt.Errorf("%w: got %q", ErrUnsupportedInput, filepath.Ext(inputPath))
	}

	outputPath := defaultOutputPath(inputPath)
	if len(args) > 1 {
		outputPath = args[1]
	}

	logger.Debug("optimizing", "input", inputPath, "tiles", string(settings.tiles), "dpi", settings.dpi)

	pdf, err := svc.Optimize(ctx, handout.Input{
		Path:   inputPath,
		Tiling: settings.tiles,
		DPI:    settings.dpi,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, pdf, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	fmt.Printf("Created %s\n", outputPath)
	return nil
}

// defaultOutputPath derives the output name from the input:
// lecture.pptx -> lecture_handout.pdf, in the same directory.
func defaultOutputPath(inputPath string) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + "_handout.pdf"
}
