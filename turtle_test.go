// turtle_test.go
package rurtle

import "testing"

func Test_Turtle_TeleportDrawsWithPenDown(t *testing.T) {
	c := NewCanvas(50, 50)
	tu := NewTurtle(c)
	tu.Teleport(10, -10)
	if x, y := tu.Position(); x != 10 || y != -10 {
		t.Fatalf("position: got (%v, %v)", x, y)
	}
	if len(c.ops) != 1 {
		t.Fatalf("want 1 line, got %d ops", len(c.ops))
	}
	tu.PenUp()
	tu.Teleport(0, 0)
	if len(c.ops) != 1 {
		t.Fatalf("pen-up teleport must not draw")
	}
}

func Test_Turtle_RemoveKeepsDrawings(t *testing.T) {
	c := NewCanvas(50, 50)
	tu := NewTurtle(c)
	tu.Forward(10)
	tu.remove()
	if len(c.turtles) != 0 {
		t.Fatalf("record not removed")
	}
	if len(c.ops) != 1 {
		t.Fatalf("drawings should survive removal")
	}
}

func Test_Turtle_SharedCanvas(t *testing.T) {
	c := NewCanvas(50, 50)
	a := NewTurtle(c)
	b := NewTurtle(c)
	a.Forward(5)
	b.Forward(7)
	if len(c.ops) != 2 {
		t.Fatalf("want 2 lines, got %d", len(c.ops))
	}
	if _, y := a.Position(); y != 5 {
		t.Fatalf("turtle a moved wrong: %v", y)
	}
	if _, y := b.Position(); y != 7 {
		t.Fatalf("turtle b moved wrong: %v", y)
	}
}
