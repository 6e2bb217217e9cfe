package handout

import (
	"errors"
	"testing"
)

func TestParseTilingMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    TilingMode
		wantErr error
	}{
		{name: "auto", in: "auto", want: TilesAuto},
		{name: "empty defaults to auto", in: "", want: TilesAuto},
		{name: "one", in: "1", want: Tiles1},
		{name: "two", in: "2", want: Tiles2},
		{name: "four", in: "4", want: Tiles4},
		{name: "six", in: "6", want: Tiles6},
		{name: "nine", in: "9", want: Tiles9},
		{name: "unknown count", in: "3", wantErr: ErrInvalidTiling},
		{name: "garbage", in: "many", wantErr: ErrInvalidTiling},
		{name: "uppercase rejected", in: "AUTO", wantErr: ErrInvalidTiling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTilingMode(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseTilingMode(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseTilingMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTileCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode TilingMode
		want int
	}{
		{mode: Tiles1, want: 1},
		{mode: Tiles2, want: 2},
		{mode: Tiles4, want: 4},
		{mode: Tiles6, want: 6},
		{mode: Tiles9, want: 9},
	}

	for _, tt := range tests {
		if got := tt.mode.tileCount(); got != tt.want {
			t.Errorf("%q.tileCount() = %d, want %d", tt.mode, got, tt.want)
		}
	}
}

func TestDefaultLayoutConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultLayoutConfig()
	if cfg.PageWidth != 612 || cfg.PageHeight != 792 {
		t.Errorf("page = %.0fx%.0f, want 612x792 (US Letter)", cfg.PageWidth, cfg.PageHeight)
	}
	if cfg.Margin != 36 {
		t.Errorf("Margin = %v, want 36", cfg.Margin)
	}
	if cfg.Gap != 12 {
		t.Errorf("Gap = %v, want 12", cfg.Gap)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultLayoutConfig().Validate() = %v, want nil", err)
	}
}

func TestLayoutConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*LayoutConfig)
		wantErr error
	}{
		{
			name:    "zero page width",
			mutate:  func(c *LayoutConfig) { c.PageWidth = 0 },
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "negative page height",
			mutate:  func(c *LayoutConfig) { c.PageHeight = -1 },
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "negative margin",
			mutate:  func(c *LayoutConfig) { c.Margin = -5 },
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "margins consume page",
			mutate:  func(c *LayoutConfig) { c.Margin = 320 },
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "negative gap",
			mutate:  func(c *LayoutConfig) { c.Gap = -1 },
			wantErr: ErrInvalidGap,
		},
		{
			name:    "gap leaves no room",
			mutate:  func(c *LayoutConfig) { c.Gap = 300 },
			wantErr: ErrInvalidGap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultLayoutConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
