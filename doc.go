// Package handout converts slide-deck documents into print-optimized
// handout PDFs by tiling multiple slides per US Letter page.
//
// # Quick Start
//
// Create a service, optimize a deck, and write the result:
//
//	svc := handout.New()
//	pdf, err := svc.Optimize(ctx, handout.Input{
//	    Path:   "lecture.pdf",
//	    Tiling: handout.TilesAuto,
//	    DPI:    200,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("lecture_handout.pdf", pdf, 0644)
//
// # Pipeline
//
// Optimization is a single-pass pipeline:
//
//  1. Presentation sources (.ppt, .pptx, .odp) are converted to PDF via
//     LibreOffice (headless), skipped for PDF input
//  2. Every page is rasterized to an image via MuPDF (go-fitz) at the
//     requested DPI
//  3. A tiling grid is planned from the tile count and the first slide's
//     pixel dimensions
//  4. Slides are composed onto new Letter pages with gofpdf, each tile
//     scaled uniformly and outlined with a thin border
//
// The grid geometry, including the uniform image scale, is derived once
// per run from the first rasterized slide and reused for every tile.
//
// # Tiling Modes
//
// Tiling is either an explicit slides-per-page count (1, 2, 4, 6, 9) or
// TilesAuto, which picks 2-up for landscape decks and 4-up otherwise
// based on the first slide alone.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := handout.New(
//	    handout.WithTimeout(2 * time.Minute),
//	    handout.WithLayout(handout.LayoutConfig{...}),
//	)
//
// # External Requirements
//
// Rasterization uses MuPDF through go-fitz. Converting presentation
// formats requires a LibreOffice (soffice) binary on PATH; plain PDF
// input has no such requirement.
package handout
