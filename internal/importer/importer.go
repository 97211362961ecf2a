// Package importer turns raster images into color grids.
package importer

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/san-kum/pixed/internal/grid"
)

// AlphaThreshold is the minimum alpha for a pixel to become a painted cell.
const AlphaThreshold = 128

// ErrEmptyImage indicates a source image with no pixels.
var ErrEmptyImage = errors.New("importer: empty image")

// Load opens the image at path and samples it onto a cols × rows grid.
func Load(path string, cols, rows int) (*grid.Store, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return FromImage(img, cols, rows)
}

// FromImage resizes img to cols × rows with nearest-neighbour sampling and
// keys every sufficiently opaque pixel as "#RRGGBB".
func FromImage(img image.Image, cols, rows int) (*grid.Store, error) {
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	st, err := grid.New(cols, rows)
	if err != nil {
		return nil, err
	}

	small := imaging.Resize(img, cols, rows, imaging.NearestNeighbor)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			i := small.PixOffset(x, y)
			p := small.Pix[i : i+4 : i+4]
			if p[3] < AlphaThreshold {
				continue
			}
			st.Set(x, y, grid.Color(fmt.Sprintf("#%02X%02X%02X", p[0], p[1], p[2])))
		}
	}
	return st, nil
}
