package handout

import (
	"context"
	"fmt"
)

// Compile-time interface implementation checks.
var (
	_ rasterizer    = fitzRasterizer{}
	_ composer      = fpdfComposer{}
	_ DocConverter  = (*SofficeConverter)(nil)
	_ CommandRunner = ExecRunner{}
)

// Service orchestrates the slide-to-handout pipeline.
type Service struct {
	cfg        serviceConfig
	rasterizer rasterizer
	composer   composer
	converter  DocConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithLayout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			layout:  DefaultLayoutConfig(),
		},
		rasterizer: fitzRasterizer{},
		composer:   fpdfComposer{},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.converter == nil {
		s.converter = NewSofficeConverter()
	}

	return s
}

// withRasterizer injects a rasterizer (tests only).
func withRasterizer(r rasterizer) Option {
	return func(s *Service) {
		s.rasterizer = r
	}
}

// withComposer injects a composer (tests only).
func withComposer(c composer) Option {
	return func(s *Service) {
		s.composer = c
	}
}

// Optimize runs the full pipeline and returns the finished handout PDF
// as bytes. The run is atomic: it yields either a fully sealed document
// or an error, never partial output. There are no retries; every failure
// is terminal for the run.
func (s *Service) Optimize(ctx context.Context, input Input) ([]byte, error) {
	dpi, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	if s.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.timeout)
		defer cancel()
	}

	// Presentation sources are converted to PDF before the core runs.
	path := input.Path
	if needsConversion(path) {
		path, err = s.converter.ConvertToPDF(ctx, path)
		if err != nil {
			return nil, err
		}
	}

	images, err := s.rasterizer.Rasterize(ctx, path, dpi)
	if err != nil {
		return nil, err
	}

	// Grid geometry is derived once, from the first slide only. The same
	// scale applies to every tile even in mixed-aspect decks.
	var grid GridSpec
	if len(images) > 0 {
		bounds := images[0].Bounds()
		tiles := resolveTileCount(input.Tiling, bounds.Dx(), bounds.Dy())
		grid = planGrid(s.cfg.layout, tiles, bounds.Dx(), bounds.Dy())
	}

	pdf, err := s.composer.Compose(ctx, images, grid, s.cfg.layout)
	if err != nil {
		return nil, fmt.Errorf("composing handout: %w", err)
	}

	return pdf, nil
}

// validateInput checks required fields and resolves the effective DPI:
// zero defaults to DefaultDPI, values above MaxDPI are clamped. The
// rasterizer trusts this value and performs no clamping of its own.
func (s *Service) validateInput(input Input) (dpi int, err error) {
	if input.Path == "" {
		return 0, ErrEmptyPath
	}
	if _, err := ParseTilingMode(string(input.Tiling)); err != nil {
		return 0, err
	}
	if err := s.cfg.layout.Validate(); err != nil {
		return 0, err
	}

	dpi = input.DPI
	switch {
	case dpi == 0:
		dpi = DefaultDPI
	case dpi < 0:
		return 0, fmt.Errorf("%w: %d", ErrInvalidDPI, dpi)
	case dpi > MaxDPI:
		dpi = MaxDPI
	}
	return dpi, nil
}
