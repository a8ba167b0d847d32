// canvas_test.go
package rurtle

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func Test_Canvas_PixelMapping(t *testing.T) {
	c := NewCanvas(100, 80)
	cases := []struct {
		p    Point
		x, y int
	}{
		{Point{0, 0}, 50, 40},
		{Point{10, 0}, 60, 40},
		{Point{0, 10}, 50, 30}, // +y is up
		{Point{-50, -40}, 0, 80},
	}
	for _, cse := range cases {
		x, y := c.pixel(cse.p)
		if x != cse.x || y != cse.y {
			t.Fatalf("pixel(%+v): want (%d, %d), got (%d, %d)", cse.p, cse.x, cse.y, x, y)
		}
	}
}

func Test_Canvas_RenderBackground(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Background = Color{1, 0, 0}
	img := c.Render()
	want := color.RGBA{R: 255, A: 255}
	if got := img.RGBAAt(0, 0); got != want {
		t.Fatalf("corner: want %v, got %v", want, got)
	}
	if got := img.RGBAAt(5, 5); got != want {
		t.Fatalf("center: want %v, got %v", want, got)
	}
}

func Test_Canvas_RenderLine(t *testing.T) {
	c := NewCanvas(20, 20)
	c.AddLine(Point{0, 0}, Point{5, 0}, ColorBlack)
	img := c.Render()
	black := color.RGBA{A: 255}
	// The line runs from the center (10, 10) to (15, 10).
	for x := 10; x <= 15; x++ {
		if got := img.RGBAAt(x, 10); got != black {
			t.Fatalf("pixel (%d, 10): want black, got %v", x, got)
		}
	}
	if got := img.RGBAAt(10, 9); got == black {
		t.Fatalf("pixel above the line should stay background")
	}
}

func Test_Canvas_LinesClipAtEdges(t *testing.T) {
	c := NewCanvas(10, 10)
	c.AddLine(Point{0, 0}, Point{100, 0}, ColorBlack)
	// Rendering must not panic on out-of-bounds spans.
	img := c.Render()
	if got := img.RGBAAt(9, 5); got != (color.RGBA{A: 255}) {
		t.Fatalf("edge pixel: want black, got %v", got)
	}
}

func Test_Canvas_ClearKeepsTurtleRecords(t *testing.T) {
	c := NewCanvas(10, 10)
	id := c.addTurtle()
	c.turtle(id).position = Point{3, 4}
	c.AddLine(Point{0, 0}, Point{1, 1}, ColorBlack)
	c.Clear()
	if len(c.ops) != 0 {
		t.Fatalf("ops not cleared")
	}
	if c.turtle(id).position != (Point{3, 4}) {
		t.Fatalf("turtle record lost by clear")
	}
}

func Test_Canvas_TurtleMarkerRendering(t *testing.T) {
	c := NewCanvas(40, 40)
	id := c.addTurtle()
	countBlack := func() int {
		img := c.Render()
		n := 0
		for y := 0; y < 40; y++ {
			for x := 0; x < 40; x++ {
				if img.RGBAAt(x, y) == (color.RGBA{A: 255}) {
					n++
				}
			}
		}
		return n
	}
	if countBlack() == 0 {
		t.Fatalf("visible turtle should render a marker")
	}
	c.turtle(id).hidden = true
	if countBlack() != 0 {
		t.Fatalf("hidden turtle must not render")
	}
}

func Test_Canvas_Screenshot(t *testing.T) {
	c := NewCanvas(16, 16)
	c.AddLine(Point{-5, 0}, Point{5, 0}, ColorBlack)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.Screenshot(path); err != nil {
		t.Fatalf("Screenshot error: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Fatalf("bounds: got %v", img.Bounds())
	}
}

func Test_Canvas_ScreenshotBadPath(t *testing.T) {
	c := NewCanvas(4, 4)
	if err := c.Screenshot(filepath.Join(t.TempDir(), "no", "such", "dir.png")); err == nil {
		t.Fatalf("want error for unwritable path")
	}
}

func Test_Canvas_ColorClamping(t *testing.T) {
	cases := []struct {
		in   Color
		want color.RGBA
	}{
		{Color{0, 0, 0}, color.RGBA{A: 255}},
		{Color{1, 1, 1}, color.RGBA{255, 255, 255, 255}},
		{Color{-0.5, 2, 0.5}, color.RGBA{0, 255, 128, 255}},
	}
	for _, c := range cases {
		if got := c.in.RGBA(); got != c.want {
			t.Fatalf("%+v: want %v, got %v", c.in, c.want, got)
		}
	}
}
