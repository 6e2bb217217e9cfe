package handout

// GridSpec describes the tiling geometry for one run: the grid shape,
// the size of each cell, and the uniform scaled image size placed in
// every cell. It is computed once per run and never modified.
type GridSpec struct {
	Columns int
	Rows    int

	CellWidth  float64 // cell size in points
	CellHeight float64

	ScaledWidth  float64 // image size after scale-to-fit, in points
	ScaledHeight float64
}

// TilesPerPage returns the number of grid cells on one output page.
func (g GridSpec) TilesPerPage() int {
	return g.Columns * g.Rows
}

// defaultTileCount is the grid used for tile counts outside the shape
// table. An unsupported count is a defined fallback, not an error.
const defaultTileCount = 4

// gridShapes maps slides-per-page to a columns x rows grid.
var gridShapes = map[int][2]int{
	1: {1, 1},
	2: {1, 2},
	4: {2, 2},
	6: {2, 3},
	9: {3, 3},
}

// gridShape resolves a tile count to its grid shape. Counts without a
// table entry fall back to the 2x2 grid.
func gridShape(tiles int) (cols, rows int) {
	if shape, ok := gridShapes[tiles]; ok {
		return shape[0], shape[1]
	}
	return gridShapes[defaultTileCount][0], gridShapes[defaultTileCount][1]
}

// chooseTileCount picks a slides-per-page count from the first slide's
// pixel dimensions: 2-up for landscape slides, 4-up otherwise. This is a
// first-sample heuristic, evaluated exactly once per run; later slides
// never influence it.
func chooseTileCount(imgW, imgH int) int {
	if imgW > imgH {
		return 2
	}
	return 4
}

// resolveTileCount turns a TilingMode into a concrete slides-per-page
// count, consulting the first slide's dimensions only in auto mode.
func resolveTileCount(mode TilingMode, imgW, imgH int) int {
	if mode == TilesAuto || mode == "" {
		return chooseTileCount(imgW, imgH)
	}
	return mode.tileCount()
}

// planGrid computes the grid geometry for the whole run from the page
// layout, the tile count, and the first slide's pixel dimensions.
//
// The scale is uniform and aspect-preserving, chosen so the first slide
// fits its cell. It is reused for every tile in the run even when later
// slides have different native dimensions; mixed-aspect decks are not
// re-scaled per slide.
func planGrid(cfg LayoutConfig, tiles int, imgW, imgH int) GridSpec {
	cols, rows := gridShape(tiles)

	availableWidth := cfg.PageWidth - 2*cfg.Margin - float64(cols-1)*cfg.Gap
	availableHeight := cfg.PageHeight - 2*cfg.Margin - float64(rows-1)*cfg.Gap

	cellWidth := availableWidth / float64(cols)
	cellHeight := availableHeight / float64(rows)

	scale := cellWidth / float64(imgW)
	if s := cellHeight / float64(imgH); s < scale {
		scale = s
	}

	return GridSpec{
		Columns:      cols,
		Rows:         rows,
		CellWidth:    cellWidth,
		CellHeight:   cellHeight,
		ScaledWidth:  float64(imgW) * scale,
		ScaledHeight: float64(imgH) * scale,
	}
}
