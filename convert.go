package handout

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bcarden/go-handout/internal/fileutil"
)

// DocConverter converts a presentation file to a page-addressable PDF
// before the core pipeline runs. Implementations must place the PDF at
// the returned path; any failure aborts the run before rasterization.
type DocConverter interface {
	ConvertToPDF(ctx context.Context, inputPath string) (pdfPath string, err error)
}

// CommandRunner abstracts command execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// presentationExts are the source formats that require conversion.
var presentationExts = map[string]bool{
	".ppt":  true,
	".pptx": true,
	".odp":  true,
}

// needsConversion reports whether path is a presentation format rather
// than a page-addressable PDF.
func needsConversion(path string) bool {
	return presentationExts[strings.ToLower(filepath.Ext(path))]
}

// SofficeConverter converts presentations to PDF by invoking the
// LibreOffice CLI in headless mode.
type SofficeConverter struct {
	Runner CommandRunner
	OutDir string // conversion output directory ("" = temp dir)
}

// NewSofficeConverter creates a SofficeConverter with a real command runner.
func NewSofficeConverter() *SofficeConverter {
	return &SofficeConverter{Runner: ExecRunner{}}
}

// ConvertToPDF runs soffice --headless --convert-to pdf on inputPath and
// returns the path of the produced PDF. LibreOffice names the output
// after the input basename, so the result is <outdir>/<base>.pdf.
func (c *SofficeConverter) ConvertToPDF(ctx context.Context, inputPath string) (string, error) {
	outDir := c.OutDir
	if outDir == "" {
		outDir = os.TempDir()
	}

	_, stderr, err := c.Runner.Run(ctx, "soffice",
		"--headless", "--convert-to", "pdf", "--outdir", outDir, inputPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrConversion, strings.TrimSpace(stderr), err)
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	pdfPath := filepath.Join(outDir, base+".pdf")
	if !fileutil.FileExists(pdfPath) {
		return "", fmt.Errorf("%w: expected output %s not found", ErrConversion, pdfPath)
	}
	return pdfPath, nil
}
