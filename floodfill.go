// floodfill.go — four-way flood fill on a rasterized image.
package rurtle

import (
	"image"
	"image/color"
)

// floodFill recolors the connected region around (x, y) that shares
// that pixel's exact color. Seeding outside the image or on a pixel
// that already has the fill color does nothing.
func floodFill(img *image.RGBA, x, y int, fill color.RGBA) {
	bounds := img.Bounds()
	if !image.Pt(x, y).In(bounds) {
		return
	}
	target := img.RGBAAt(x, y)
	if target == fill {
		return
	}
	width := bounds.Dx()
	visited := make([]bool, width*bounds.Dy())
	index := func(x, y int) int {
		return (y-bounds.Min.Y)*width + (x - bounds.Min.X)
	}

	queue := []image.Point{{X: x, Y: y}}
	visited[index(x, y)] = true
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		img.SetRGBA(p.X, p.Y, fill)
		for _, n := range [4]image.Point{
			{X: p.X + 1, Y: p.Y},
			{X: p.X - 1, Y: p.Y},
			{X: p.X, Y: p.Y + 1},
			{X: p.X, Y: p.Y - 1},
		} {
			if !n.In(bounds) || visited[index(n.X, n.Y)] {
				continue
			}
			if img.RGBAAt(n.X, n.Y) != target {
				continue
			}
			visited[index(n.X, n.Y)] = true
			queue = append(queue, n)
		}
	}
}
