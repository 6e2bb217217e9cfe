package handout

import (
	"context"
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// rasterizer abstracts PDF page rendering to enable testing without MuPDF.
type rasterizer interface {
	Rasterize(ctx context.Context, path string, dpi int) ([]image.Image, error)
}

// fitzRasterizer renders PDF pages to images using MuPDF via go-fitz.
// DPI maps to a uniform zoom of dpi/72 in both axes, 72 being the
// reference resolution of the point unit.
type fitzRasterizer struct{}

// Rasterize renders every page of the document at path to an image,
// preserving page order. The document is opened once and closed after
// all pages are rendered. The caller is responsible for clamping dpi;
// no clamping happens here.
//
// All images are held in memory for the duration of the run, bounding
// peak memory by pages x image size.
func (fitzRasterizer) Rasterize(ctx context.Context, path string, dpi int) ([]image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenSource, path, err)
	}
	defer doc.Close()

	images := make([]image.Image, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := doc.ImageDPI(n, float64(dpi))
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrRenderPage, n+1, err)
		}
		images = append(images, img)
	}
	return images, nil
}
