// floodfill_test.go
package rurtle

import (
	"image"
	"image/color"
	"testing"
)

func newFillImage(w, h int, bg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, bg)
		}
	}
	return img
}

func Test_FloodFill_StaysInsideClosedRegion(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{A: 255}
	red := color.RGBA{R: 255, A: 255}

	img := newFillImage(20, 20, white)
	// A closed box from (5,5) to (15,15).
	for i := 5; i <= 15; i++ {
		img.SetRGBA(i, 5, black)
		img.SetRGBA(i, 15, black)
		img.SetRGBA(5, i, black)
		img.SetRGBA(15, i, black)
	}

	floodFill(img, 10, 10, red)

	if img.RGBAAt(10, 10) != red || img.RGBAAt(6, 6) != red || img.RGBAAt(14, 14) != red {
		t.Fatalf("inside of the box not filled")
	}
	if img.RGBAAt(5, 10) != black {
		t.Fatalf("border overwritten")
	}
	if img.RGBAAt(2, 2) != white || img.RGBAAt(16, 10) != white {
		t.Fatalf("fill leaked outside the box")
	}
}

func Test_FloodFill_FillsWholeBackground(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	blue := color.RGBA{B: 255, A: 255}
	img := newFillImage(8, 8, white)
	floodFill(img, 0, 0, blue)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if img.RGBAAt(x, y) != blue {
				t.Fatalf("pixel (%d, %d) not filled", x, y)
			}
		}
	}
}

func Test_FloodFill_NoOps(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	img := newFillImage(4, 4, white)
	// Out-of-bounds seeds and same-color fills change nothing.
	floodFill(img, -1, 0, color.RGBA{A: 255})
	floodFill(img, 0, 99, color.RGBA{A: 255})
	floodFill(img, 1, 1, white)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if img.RGBAAt(x, y) != white {
				t.Fatalf("pixel (%d, %d) changed", x, y)
			}
		}
	}
}

func Test_FloodFill_DiagonalGapsDoNotLeak(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{A: 255}
	green := color.RGBA{G: 255, A: 255}
	img := newFillImage(6, 6, white)
	// A diagonal wall: four-way connectivity must not cross it.
	for i := 0; i < 6; i++ {
		img.SetRGBA(i, i, black)
	}
	floodFill(img, 4, 1, green)
	if img.RGBAAt(4, 1) != green || img.RGBAAt(5, 0) != green {
		t.Fatalf("upper triangle not filled")
	}
	if img.RGBAAt(0, 5) != white {
		t.Fatalf("fill crossed the diagonal wall")
	}
}
