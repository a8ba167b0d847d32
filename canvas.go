// canvas.go — the software drawing surface shared by all turtles.
//
// The canvas is a pure in-memory model: an ordered list of draw
// operations (lines, text, flood fills) plus an arena of turtle
// records. Render rasterizes the model into an image.RGBA; Screenshot
// writes that image as a PNG. Keeping the model as operations instead
// of pixels means CLEAR and BGCOLOR behave like the windowed original:
// a background change recolors everything on the next render, and
// flood fills replay in drawing order.
//
// The coordinate system has its origin at the canvas center, positive
// x to the right and positive y up. An orientation of 0 degrees points
// north, positive degrees count counter-clockwise.
package rurtle

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Color is an RGB triple with channels in [0, 1], the same range the
// COLOR and BGCOLOR natives take.
type Color struct {
	R, G, B float32
}

// Predefined colors.
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{1, 1, 1}
)

func clampChannel(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

// RGBA converts to a premultiplied 8-bit color with full opacity.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: clampChannel(c.R), G: clampChannel(c.G), B: clampChannel(c.B), A: 255}
}

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float32
}

// drawOp is one replayable drawing operation.
type drawOp interface {
	raster(c *Canvas, img *image.RGBA)
}

type lineOp struct {
	from, to Point
	color    Color
}

type textOp struct {
	pos Point
	// orientation is recorded for renderer backends that can rotate
	// text; the software rasterizer draws horizontally.
	orientation float32
	color       Color
	text        string
}

type fillOp struct {
	pos   Point
	color Color
}

// turtleRecord is the canvas-owned state of one turtle. Turtles refer
// to their record by id only; the arena never hands out pointers that
// outlive a removal.
type turtleRecord struct {
	position    Point
	color       Color
	orientation float32 // degrees, 0 = north, positive ccw
	hidden      bool
}

// Canvas models the drawing surface.
type Canvas struct {
	width, height int
	// Background is the fill color applied before any operation is
	// replayed.
	Background Color

	ops []drawOp

	turtles map[int]*turtleRecord
	nextID  int
}

// NewCanvas creates an empty canvas of the given pixel size with a
// white background.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:      width,
		height:     height,
		Background: ColorWhite,
		turtles:    make(map[int]*turtleRecord),
	}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// AddLine records a line between two canvas points.
func (c *Canvas) AddLine(from, to Point, col Color) {
	c.ops = append(c.ops, &lineOp{from: from, to: to, color: col})
}

// AddText records a text item anchored at pos.
func (c *Canvas) AddText(pos Point, orientation float32, col Color, text string) {
	c.ops = append(c.ops, &textOp{pos: pos, orientation: orientation, color: col, text: text})
}

// AddFlood records a flood fill seeded at pos.
func (c *Canvas) AddFlood(pos Point, col Color) {
	c.ops = append(c.ops, &fillOp{pos: pos, color: col})
}

// Clear drops every drawing operation. Turtle records (position,
// orientation, color) are untouched.
func (c *Canvas) Clear() {
	c.ops = nil
}

// addTurtle allocates a new turtle record and returns its id.
func (c *Canvas) addTurtle() int {
	id := c.nextID
	c.nextID++
	c.turtles[id] = &turtleRecord{color: ColorBlack}
	return id
}

func (c *Canvas) turtle(id int) *turtleRecord {
	return c.turtles[id]
}

func (c *Canvas) removeTurtle(id int) {
	delete(c.turtles, id)
}

// pixel maps canvas coordinates to image pixels.
func (c *Canvas) pixel(p Point) (int, int) {
	x := int(math.Round(float64(p.X))) + c.width/2
	y := c.height/2 - int(math.Round(float64(p.Y)))
	return x, y
}

// Render rasterizes the canvas: background, then every recorded
// operation in order, then the visible turtles.
func (c *Canvas) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	bg := c.Background.RGBA()
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetRGBA(x, y, bg)
		}
	}
	for _, op := range c.ops {
		op.raster(c, img)
	}
	for _, t := range c.turtles {
		if !t.hidden {
			c.rasterTurtle(img, t)
		}
	}
	return img
}

// Screenshot renders the canvas and writes it as a PNG file.
func (c *Canvas) Screenshot(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, c.Render()); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	return nil
}

func (op *lineOp) raster(c *Canvas, img *image.RGBA) {
	x0, y0 := c.pixel(op.from)
	x1, y1 := c.pixel(op.to)
	drawLine(img, x0, y0, x1, y1, op.color.RGBA())
}

// drawLine steps along the longer axis, one pixel at a time.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	dx, dy := x1-x0, y1-y0
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		setPixel(img, x0, y0, col)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		setPixel(img, x, y, col)
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, col)
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func (op *textOp) raster(c *Canvas, img *image.RGBA) {
	x, y := c.pixel(op.pos)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(op.color.RGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(op.text)
}

func (op *fillOp) raster(c *Canvas, img *image.RGBA) {
	x, y := c.pixel(op.pos)
	floodFill(img, x, y, op.color.RGBA())
}

// rasterTurtle draws the turtle marker: a small triangle pointing in
// the turtle's heading.
func (c *Canvas) rasterTurtle(img *image.RGBA, t *turtleRecord) {
	const size = 10
	tip := movePoint(t.position, t.orientation, size)
	left := movePoint(t.position, t.orientation+120, size*2/3)
	right := movePoint(t.position, t.orientation-120, size*2/3)
	col := t.color.RGBA()
	x0, y0 := c.pixel(tip)
	x1, y1 := c.pixel(left)
	x2, y2 := c.pixel(right)
	drawLine(img, x0, y0, x1, y1, col)
	drawLine(img, x1, y1, x2, y2, col)
	drawLine(img, x2, y2, x0, y0, col)
}

// movePoint walks from p along the heading (degrees, 0 = north,
// positive ccw) by the given distance.
func movePoint(p Point, orientation, distance float32) Point {
	rad := float64(orientation) * math.Pi / 180
	dx := float32(math.Sin(rad)) * distance
	dy := float32(math.Cos(rad)) * distance
	return Point{X: p.X - dx, Y: p.Y + dy}
}
