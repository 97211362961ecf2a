package importer

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/pixed/internal/grid"
)

// quadrants builds a 4x4 image: red top-left, blue top-right, transparent
// bottom-left, white bottom-right.
func quadrants() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			var c color.NRGBA
			switch {
			case x < 2 && y < 2:
				c = color.NRGBA{R: 255, A: 255}
			case y < 2:
				c = color.NRGBA{B: 255, A: 255}
			case x < 2:
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 10}
			default:
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	st, err := FromImage(quadrants(), 2, 2)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	want := map[[2]int]grid.Color{
		{0, 0}: "#FF0000",
		{1, 0}: "#0000FF",
		{0, 1}: grid.Unpainted,
		{1, 1}: "#FFFFFF",
	}
	for xy, c := range want {
		got, _ := st.Get(xy[0], xy[1])
		if got != c {
			t.Errorf("cell %v: expected %q, got %q", xy, c, got)
		}
	}
}

func TestFromImageInvalidSize(t *testing.T) {
	if _, err := FromImage(quadrants(), 0, 2); err == nil {
		t.Error("expected error for zero columns")
	}
}

func TestFromImageEmpty(t *testing.T) {
	_, err := FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 4, 4)
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("expected ErrEmptyImage, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, quadrants()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	st, err := Load(path, 4, 4)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if st.Painted() != 12 {
		t.Errorf("expected 12 painted cells, got %d", st.Painted())
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png"), 2, 2); err == nil {
		t.Error("expected error for missing file")
	}
}
