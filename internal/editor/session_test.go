package editor_test

import (
	"bytes"
	"image/png"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pixed/internal/editor"
	"github.com/san-kum/pixed/internal/grid"
	"github.com/san-kum/pixed/internal/render"
	"github.com/san-kum/pixed/internal/viewport"
)

const (
	red   grid.Color = "#FF0000"
	green grid.Color = "#00FF00"
	blue  grid.Color = "#0000FF"
)

func colorAt(s *editor.Session, x, y int) grid.Color {
	c, err := s.Grid().Get(x, y)
	Expect(err).NotTo(HaveOccurred())
	return c
}

var _ = Describe("Session", func() {
	var s *editor.Session

	newSession := func(w, h int) *editor.Session {
		sess, err := editor.NewSession(editor.Options{
			CanvasWidth:   w * 10,
			CanvasHeight:  h * 10,
			BasePixelSize: 10,
		})
		Expect(err).NotTo(HaveOccurred())
		return sess
	}

	BeforeEach(func() {
		s = newSession(3, 3)
	})

	Describe("construction", func() {
		It("derives grid dimensions from the canvas and base pixel size", func() {
			sess, err := editor.NewSession(editor.Options{CanvasWidth: 1680, CanvasHeight: 1050, BasePixelSize: 10})
			Expect(err).NotTo(HaveOccurred())
			w, h := sess.Grid().Dimensions()
			Expect(w).To(Equal(168))
			Expect(h).To(Equal(105))
			Expect(sess.Grid().Painted()).To(BeZero())
		})

		It("starts in paint mode with the default color", func() {
			Expect(s.Tool()).To(Equal(editor.Paint))
			Expect(s.Color()).To(Equal(editor.DefaultColor))
			Expect(s.Viewport().Zoom()).To(Equal(viewport.DefaultZoom))
		})

		It("rejects a non-positive base pixel size", func() {
			_, err := editor.NewSession(editor.Options{CanvasWidth: 100, CanvasHeight: 100})
			Expect(err).To(MatchError(editor.ErrInvalidOptions))
		})

		It("rejects a canvas smaller than one cell", func() {
			_, err := editor.NewSession(editor.Options{CanvasWidth: 5, CanvasHeight: 100, BasePixelSize: 10})
			Expect(err).To(MatchError(editor.ErrInvalidOptions))
		})

		It("treats a negative recent limit as no recent colors", func() {
			sess, err := editor.NewSession(editor.Options{CanvasWidth: 30, CanvasHeight: 30, BasePixelSize: 10, RecentLimit: -3})
			Expect(err).NotTo(HaveOccurred())
			Expect(sess.PaintCell(1, 1, blue)).To(BeTrue())
			Expect(colorAt(sess, 1, 1)).To(Equal(blue))
			Expect(sess.RecentColors()).To(BeEmpty())
		})

		It("adopts a preloaded grid", func() {
			cells, _ := grid.New(4, 2)
			cells.Set(3, 1, blue)
			sess, err := editor.NewSession(editor.Options{BasePixelSize: 10, Cells: cells})
			Expect(err).NotTo(HaveOccurred())
			Expect(colorAt(sess, 3, 1)).To(Equal(blue))
			w, h := sess.ExportSize()
			Expect([]int{w, h}).To(Equal([]int{40, 20}))
		})
	})

	Describe("paint and erase", func() {
		It("reads back a painted color", func() {
			for y := 0; y < 3; y++ {
				for x := 0; x < 3; x++ {
					Expect(s.PaintCell(x, y, green)).To(BeTrue())
					Expect(colorAt(s, x, y)).To(Equal(green))
				}
			}
		})

		It("erases idempotently", func() {
			s.PaintCell(1, 1, red)
			Expect(s.EraseCell(1, 1)).To(BeTrue())
			once := s.Grid().Clone()
			Expect(s.EraseCell(1, 1)).To(BeTrue())
			Expect(s.Grid().Equal(once)).To(BeTrue())
			Expect(colorAt(s, 1, 1)).To(Equal(grid.Unpainted))
		})

		It("ignores out-of-bounds coordinates", func() {
			s.PaintCell(0, 0, red)
			before := s.Grid().Clone()

			Expect(s.PaintCell(-1, 0, blue)).To(BeFalse())
			Expect(s.PaintCell(3, 0, blue)).To(BeFalse())
			Expect(s.EraseCell(0, 3)).To(BeFalse())
			Expect(s.FloodFill(5, 5, blue)).To(BeZero())
			Expect(s.Grid().Equal(before)).To(BeTrue())
		})
	})

	Describe("flood fill", func() {
		It("follows the three-by-three scenario", func() {
			Expect(s.FloodFill(1, 1, red)).To(Equal(9))

			s.PaintCell(0, 0, green)
			Expect(colorAt(s, 0, 0)).To(Equal(green))

			Expect(s.FloodFill(2, 2, green)).To(Equal(8))
			s.Grid().Each(func(x, y int, c grid.Color) {
				Expect(c).To(Equal(green))
			})
		})

		It("is a no-op when the seed already has the fill color", func() {
			s.FloodFill(0, 0, red)
			before := s.Grid().Clone()
			Expect(s.FloodFill(1, 2, red)).To(BeZero())
			Expect(s.Grid().Equal(before)).To(BeTrue())
		})

		It("treats unpainted as a fillable color", func() {
			s.PaintCell(1, 0, red)
			s.PaintCell(1, 1, red)
			s.PaintCell(1, 2, red)

			Expect(s.FloodFill(0, 0, blue)).To(Equal(3))
			Expect(colorAt(s, 2, 0)).To(Equal(grid.Unpainted))
		})
	})

	Describe("recent colors", func() {
		It("records new colors at the front without duplicates", func() {
			s.PaintCell(0, 0, red)
			s.PaintCell(0, 1, green)
			s.PaintCell(0, 2, red)
			Expect(s.RecentColors()).To(Equal([]grid.Color{green, red}))
		})

		It("keeps at most five colors", func() {
			for i, c := range []grid.Color{"#000001", "#000002", "#000003", "#000004", "#000005", "#000006"} {
				s.PaintCell(i%3, i/3, c)
			}
			Expect(s.RecentColors()).To(HaveLen(5))
			Expect(s.RecentColors()[0]).To(Equal(grid.Color("#000006")))
			Expect(s.RecentColors()).NotTo(ContainElement(grid.Color("#000001")))
		})

		It("skips erases and no-op fills", func() {
			s.EraseCell(0, 0)
			s.FloodFill(0, 0, grid.Unpainted)
			Expect(s.RecentColors()).To(BeEmpty())

			s.FloodFill(0, 0, blue)
			Expect(s.RecentColors()).To(Equal([]grid.Color{blue}))
		})
	})

	Describe("tools", func() {
		It("toggles erase and fill back to paint", func() {
			s.ToggleTool(editor.Erase)
			Expect(s.Tool()).To(Equal(editor.Erase))
			s.ToggleTool(editor.Fill)
			Expect(s.Tool()).To(Equal(editor.Fill))
			s.ToggleTool(editor.Fill)
			Expect(s.Tool()).To(Equal(editor.Paint))
		})

		It("returns to paint when a color is selected", func() {
			s.SetTool(editor.Erase)
			s.SelectColor(blue)
			Expect(s.Tool()).To(Equal(editor.Paint))
			Expect(s.Color()).To(Equal(blue))
		})
	})

	Describe("pointer input", func() {
		It("paints the cell under the pointer", func() {
			s.SelectColor(red)
			Expect(s.PointerDown(15, 25)).To(BeTrue())
			Expect(colorAt(s, 1, 2)).To(Equal(red))
			Expect(s.Drawing()).To(BeTrue())
		})

		It("maps pointer positions through the zoom level", func() {
			s.SelectColor(red)
			s.SetZoom(2)
			s.PointerDown(45, 5)
			Expect(colorAt(s, 2, 0)).To(Equal(red))
		})

		It("continues a stroke only while the pointer is down", func() {
			s.SelectColor(green)
			Expect(s.PointerMove(5, 5)).To(BeFalse())

			s.PointerDown(5, 5)
			Expect(s.PointerMove(15, 5)).To(BeTrue())
			Expect(s.PointerMove(16, 6)).To(BeTrue())
			s.PointerUp()
			Expect(s.PointerMove(25, 5)).To(BeFalse())

			Expect(colorAt(s, 1, 0)).To(Equal(green))
			Expect(colorAt(s, 2, 0)).To(Equal(grid.Unpainted))
		})

		It("stops drawing when the pointer leaves", func() {
			s.PointerDown(5, 5)
			s.PointerLeave()
			Expect(s.Drawing()).To(BeFalse())
		})

		It("erases along a stroke in erase mode", func() {
			s.FloodFill(0, 0, red)
			s.SetTool(editor.Erase)
			s.PointerDown(5, 5)
			s.PointerMove(15, 5)
			Expect(colorAt(s, 0, 0)).To(Equal(grid.Unpainted))
			Expect(colorAt(s, 1, 0)).To(Equal(grid.Unpainted))
			Expect(colorAt(s, 2, 0)).To(Equal(red))
		})

		It("fills on press but not on drag in fill mode", func() {
			s.SelectColor(blue)
			s.SetTool(editor.Fill)
			Expect(s.PointerDown(5, 5)).To(BeTrue())
			Expect(s.Grid().Painted()).To(Equal(9))

			s.Grid().Set(2, 2, grid.Unpainted)
			Expect(s.PointerMove(25, 25)).To(BeFalse())
			Expect(colorAt(s, 2, 2)).To(Equal(grid.Unpainted))
		})

		It("ignores presses outside the grid", func() {
			Expect(s.PointerDown(-1, 5)).To(BeFalse())
			Expect(s.PointerDown(30, 5)).To(BeFalse())
			Expect(s.Grid().Painted()).To(BeZero())
		})
	})

	Describe("zoom", func() {
		It("clamps to the supported range", func() {
			Expect(s.SetZoom(0.1)).To(Equal(viewport.MinZoom))
			Expect(s.SetZoom(12)).To(Equal(viewport.MaxZoom))
			Expect(s.Viewport().EffectivePixelSize()).To(Equal(50.0))
		})

		It("zooms in on negative wheel delta and out otherwise", func() {
			Expect(s.Wheel(-1)).To(Equal(1.5))
			Expect(s.Wheel(3)).To(Equal(1.0))
			Expect(s.Wheel(0)).To(Equal(0.5))
		})

		It("never changes the grid", func() {
			s.PaintCell(1, 1, red)
			before := s.Grid().Clone()
			s.ZoomIn()
			s.ZoomOut()
			s.SetZoom(4)
			s.ResetZoom()
			Expect(s.Grid().Equal(before)).To(BeTrue())
		})

		It("scales the frame size", func() {
			s.SetZoom(2.5)
			w, h := s.FrameSize()
			Expect([]int{w, h}).To(Equal([]int{75, 75}))
		})
	})

	Describe("export", func() {
		It("produces a base-resolution PNG", func() {
			s.PaintCell(0, 0, red)
			s.SetZoom(3)

			data, err := s.ExportPNG()
			Expect(err).NotTo(HaveOccurred())

			img, err := png.Decode(bytes.NewReader(data))
			Expect(err).NotTo(HaveOccurred())
			Expect(img.Bounds().Dx()).To(Equal(30))
			Expect(img.Bounds().Dy()).To(Equal(30))

			r, _, _, a := img.At(5, 5).RGBA()
			Expect(r >> 8).To(Equal(uint32(255)))
			Expect(a >> 8).To(Equal(uint32(255)))
		})

		It("is identical at every zoom level", func() {
			s.FloodFill(0, 0, blue)
			s.PaintCell(1, 1, red)

			s.SetZoom(0.5)
			low, err := s.ExportPNG()
			Expect(err).NotTo(HaveOccurred())

			s.SetZoom(5)
			high, err := s.ExportPNG()
			Expect(err).NotTo(HaveOccurred())

			Expect(bytes.Equal(low, high)).To(BeTrue())
		})

		It("writes the artwork to disk", func() {
			path := filepath.Join(GinkgoT().TempDir(), "pixel-art.png")
			s.PaintCell(2, 2, green)
			Expect(s.SaveExport(path)).To(Succeed())
			Expect(path).To(BeAnExistingFile())
		})
	})

	Describe("rendering", func() {
		It("renders the display frame at the zoomed size", func() {
			s.PaintCell(1, 1, red)
			s.SetZoom(2)

			c := render.NewCanvas(s.FrameSize())
			defer c.Close()
			s.RenderFrame(c)

			r, g, b, _ := c.Image().At(30, 30).RGBA()
			Expect([]uint32{r >> 8, g >> 8, b >> 8}).To(Equal([]uint32{255, 0, 0}))
			Expect(c.Err()).NotTo(HaveOccurred())
		})
	})
})
