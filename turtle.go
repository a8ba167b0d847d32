// turtle.go — the turtle handle used by the builtin functions.
//
// A Turtle is a thin handle: the actual record (position, color,
// orientation, visibility) lives in the canvas arena and is addressed
// by id, so any number of turtles can share one canvas without
// ownership cycles. The turtle starts at the origin facing north with
// the pen down and drawing in black.
package rurtle

import "math"

// Turtle drives drawing on a shared canvas.
type Turtle struct {
	canvas *Canvas
	id     int
	pen    bool
}

// NewTurtle registers a fresh turtle on the canvas.
func NewTurtle(canvas *Canvas) *Turtle {
	return &Turtle{canvas: canvas, id: canvas.addTurtle(), pen: true}
}

func (t *Turtle) record() *turtleRecord {
	return t.canvas.turtle(t.id)
}

// remove drops the turtle's record from the canvas arena. Its drawn
// lines stay.
func (t *Turtle) remove() {
	t.canvas.removeTurtle(t.id)
}

// goTo moves the turtle to the given position, drawing a line when the
// pen is down. Everything else is built on this.
func (t *Turtle) goTo(x, y float32) {
	rec := t.record()
	if t.pen {
		t.canvas.AddLine(rec.position, Point{X: x, Y: y}, rec.color)
	}
	rec.position = Point{X: x, Y: y}
}

// headingVector converts a walk of the given length along the current
// heading into a coordinate delta.
func (t *Turtle) headingVector(length float32) (dx, dy float32) {
	rad := float64(t.record().orientation) * math.Pi / 180
	return -float32(math.Sin(rad)) * length, float32(math.Cos(rad)) * length
}

// Forward moves the turtle ahead by the given length.
func (t *Turtle) Forward(length float32) {
	rec := t.record()
	dx, dy := t.headingVector(length)
	t.goTo(rec.position.X+dx, rec.position.Y+dy)
}

// Backward moves the turtle back by the given length without turning.
func (t *Turtle) Backward(length float32) {
	rec := t.record()
	dx, dy := t.headingVector(length)
	t.goTo(rec.position.X-dx, rec.position.Y-dy)
}

// Left turns counter-clockwise by the given degrees.
func (t *Turtle) Left(deg float32) {
	t.SetOrientation(t.record().orientation + deg)
}

// Right turns clockwise by the given degrees.
func (t *Turtle) Right(deg float32) {
	t.SetOrientation(t.record().orientation - deg)
}

// PenUp lifts the pen; movement stops drawing lines.
func (t *Turtle) PenUp() { t.pen = false }

// PenDown lowers the pen again.
func (t *Turtle) PenDown() { t.pen = true }

// SetColor sets the drawing color. Channels are in [0, 1]. Existing
// lines keep the color they were drawn with.
func (t *Turtle) SetColor(r, g, b float32) {
	t.record().color = Color{R: r, G: g, B: b}
}

// SetBackgroundColor changes the shared canvas background.
func (t *Turtle) SetBackgroundColor(r, g, b float32) {
	t.canvas.Background = Color{R: r, G: g, B: b}
}

// Clear removes all drawings from the canvas. The turtle's position
// and orientation are untouched.
func (t *Turtle) Clear() {
	t.canvas.Clear()
}

// Teleport moves directly to the given point without changing the
// heading. Draws a line if the pen is down.
func (t *Turtle) Teleport(x, y float32) {
	t.goTo(x, y)
}

// SetOrientation sets the absolute heading in degrees, 0 being north
// and positive degrees counting counter-clockwise.
func (t *Turtle) SetOrientation(deg float32) {
	t.record().orientation = float32(math.Mod(float64(deg), 360))
}

// Home moves the turtle to the origin facing north.
func (t *Turtle) Home() {
	t.Teleport(0, 0)
	t.SetOrientation(0)
}

// Position returns the turtle's canvas coordinates.
func (t *Turtle) Position() (x, y float32) {
	rec := t.record()
	return rec.position.X, rec.position.Y
}

// Orientation returns the turtle's heading in degrees.
func (t *Turtle) Orientation() float32 {
	return t.record().orientation
}

// Hide stops the turtle marker from being rendered.
func (t *Turtle) Hide() { t.record().hidden = true }

// Show renders the turtle marker again.
func (t *Turtle) Show() { t.record().hidden = false }

// IsHidden reports whether the marker is hidden.
func (t *Turtle) IsHidden() bool { return t.record().hidden }

// Write places text on the canvas anchored at the turtle's position,
// in the turtle's color.
func (t *Turtle) Write(text string) {
	rec := t.record()
	t.canvas.AddText(rec.position, rec.orientation, rec.color, text)
}

// Flood performs a flood fill seeded at the turtle's position with the
// turtle's color.
func (t *Turtle) Flood() {
	rec := t.record()
	t.canvas.AddFlood(rec.position, rec.color)
}
