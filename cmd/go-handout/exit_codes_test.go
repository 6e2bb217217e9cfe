package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	handout "github.com/bcarden/go-handout"
	"github.com/bcarden/go-handout/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "unknown error", err: errors.New("boom"), want: ExitGeneral},
		{name: "wrapped unknown error", err: fmt.Errorf("outer: %w", errors.New("boom")), want: ExitGeneral},

		{name: "conversion failure", err: handout.ErrConversion, want: ExitConvert},
		{name: "corrupt source", err: handout.ErrOpenSource, want: ExitConvert},
		{name: "render failure", err: handout.ErrRenderPage, want: ExitConvert},
		{name: "compose failure", err: handout.ErrCompose, want: ExitConvert},
		{name: "invalid output", err: handout.ErrOutputInvalid, want: ExitConvert},
		{name: "wrapped pipeline error", err: fmt.Errorf("composing handout: %w", handout.ErrCompose), want: ExitConvert},

		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "permission denied", err: os.ErrPermission, want: ExitIO},
		{name: "write failure", err: ErrWriteOutput, want: ExitIO},

		{name: "missing input", err: ErrMissingInput, want: ExitUsage},
		{name: "unsupported input", err: ErrUnsupportedInput, want: ExitUsage},
		{name: "invalid tiling", err: handout.ErrInvalidTiling, want: ExitUsage},
		{name: "invalid dpi", err: handout.ErrInvalidDPI, want: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse error", err: config.ErrConfigParse, want: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
