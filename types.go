package handout

import (
	"fmt"
	"time"
)

// TilingMode selects how many slides are placed on each output page.
type TilingMode string

// Supported tiling modes.
const (
	TilesAuto TilingMode = "auto"
	Tiles1    TilingMode = "1"
	Tiles2    TilingMode = "2"
	Tiles4    TilingMode = "4"
	Tiles6    TilingMode = "6"
	Tiles9    TilingMode = "9"
)

// ParseTilingMode converts a user-supplied string to a TilingMode.
// An empty string resolves to TilesAuto.
func ParseTilingMode(s string) (TilingMode, error) {
	switch TilingMode(s) {
	case "":
		return TilesAuto, nil
	case TilesAuto, Tiles1, Tiles2, Tiles4, Tiles6, Tiles9:
		return TilingMode(s), nil
	}
	return "", fmt.Errorf("%w: %q (must be auto, 1, 2, 4, 6, or 9)", ErrInvalidTiling, s)
}

// tileCount returns the numeric slides-per-page for an explicit mode.
// Must not be called with TilesAuto; auto is resolved against the first
// rasterized slide before planning.
func (m TilingMode) tileCount() int {
	switch m {
	case Tiles1:
		return 1
	case Tiles2:
		return 2
	case Tiles4:
		return 4
	case Tiles6:
		return 6
	case Tiles9:
		return 9
	}
	return defaultTileCount
}

// DPI bounds. MaxDPI caps rasterization resolution before it reaches the
// rasterizer, which trusts its input.
const (
	DefaultDPI = 200
	MaxDPI     = 300
)

// LayoutConfig holds the fixed page geometry used by the layout planner
// and page composer. All values are in PDF points (1/72 inch).
type LayoutConfig struct {
	PageWidth  float64 // output page width
	PageHeight float64 // output page height
	Margin     float64 // outer margin on all sides
	Gap        float64 // gap between adjacent tiles
}

// DefaultLayoutConfig returns the US Letter layout: 612x792pt page,
// half-inch margin, 12pt inter-tile gap.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		PageWidth:  612,
		PageHeight: 792,
		Margin:     36,
		Gap:        12,
	}
}

// Validate checks that the layout leaves usable space for at least the
// widest supported grid (3x3).
func (c LayoutConfig) Validate() error {
	if c.PageWidth <= 0 || c.PageHeight <= 0 {
		return fmt.Errorf("%w: %.1fx%.1f", ErrInvalidPageSize, c.PageWidth, c.PageHeight)
	}
	if c.Margin < 0 || 2*c.Margin >= c.PageWidth || 2*c.Margin >= c.PageHeight {
		return fmt.Errorf("%w: %.1f", ErrInvalidMargin, c.Margin)
	}
	if c.Gap < 0 {
		return fmt.Errorf("%w: %.1f", ErrInvalidGap, c.Gap)
	}
	maxDivisions := 3.0
	if c.PageWidth-2*c.Margin-(maxDivisions-1)*c.Gap <= 0 ||
		c.PageHeight-2*c.Margin-(maxDivisions-1)*c.Gap <= 0 {
		return fmt.Errorf("%w: %.1fpt gap leaves no room for tiles", ErrInvalidGap, c.Gap)
	}
	return nil
}

// Input contains optimization parameters for a single run.
type Input struct {
	Path   string     // source document: .pdf, .ppt, .pptx, or .odp (required)
	Tiling TilingMode // slides per page ("" = auto)
	DPI    int        // rasterization resolution (0 = DefaultDPI, capped at MaxDPI)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	layout  LayoutConfig
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 2 * time.Minute

// WithTimeout sets the per-run timeout covering conversion, rasterization,
// and composition. Panics if d <= 0 (programmer error, similar to
// time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("handout: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithLayout overrides the default US Letter page geometry.
func WithLayout(layout LayoutConfig) Option {
	return func(s *Service) {
		s.cfg.layout = layout
	}
}

// WithDocConverter replaces the LibreOffice-based presentation converter,
// e.g. to use a remote conversion service or a test stub.
func WithDocConverter(c DocConverter) Option {
	return func(s *Service) {
		s.converter = c
	}
}
