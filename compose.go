package handout

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// composer abstracts output document assembly to enable testing without
// real PDF generation.
type composer interface {
	Compose(ctx context.Context, images []image.Image, grid GridSpec, cfg LayoutConfig) ([]byte, error)
}

// Tile border stroke: light gray, hairline.
const (
	borderGray      = 204
	borderLineWidth = 0.5
)

// fpdfComposer builds the output PDF with gofpdf, placing rasterized
// slides into the grid row by row and sealing the document once at the
// end. The finished bytes are validated with pdfcpu before being
// returned, so callers never see a partially written document.
type fpdfComposer struct{}

func (fpdfComposer) Compose(ctx context.Context, images []image.Image, grid GridSpec, cfg LayoutConfig) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetDrawColor(borderGray, borderGray, borderGray)
	pdf.SetLineWidth(borderLineWidth)

	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// j is the 0-based tile index within the current page.
		j := i % grid.TilesPerPage()
		if j == 0 {
			pdf.AddPage()
		}
		col := j % grid.Columns
		row := j / grid.Columns

		// gofpdf places from the top-left corner with y growing downward.
		x := cfg.Margin + float64(col)*(grid.CellWidth+cfg.Gap) + (grid.CellWidth-grid.ScaledWidth)/2
		y := cfg.Margin + float64(row)*(grid.CellHeight+cfg.Gap) + (grid.CellHeight-grid.ScaledHeight)/2

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("%w: encoding slide %d: %v", ErrCompose, i+1, err)
		}

		name := fmt.Sprintf("slide-%d", i+1)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		pdf.ImageOptions(name, x, y, grid.ScaledWidth, grid.ScaledHeight, false, opts, 0, "")
		pdf.Rect(x, y, grid.ScaledWidth, grid.ScaledHeight, "D")
	}

	// Seal exactly once; a zero-slide run yields a valid zero-page document.
	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompose, err)
	}

	if len(images) > 0 {
		conf := model.NewDefaultConfiguration()
		if err := pdfapi.Validate(bytes.NewReader(out.Bytes()), conf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOutputInvalid, err)
		}
	}

	return out.Bytes(), nil
}
