// builtin_turtle_test.go
package rurtle

import (
	"math"
	"testing"
)

func wantPos(t *testing.T, env *Environment, x, y float32) {
	t.Helper()
	gx, gy := env.Turtle().Position()
	if math.Abs(float64(gx-x)) > 1e-3 || math.Abs(float64(gy-y)) > 1e-3 {
		t.Fatalf("want position (%v, %v), got (%v, %v)", x, y, gx, gy)
	}
}

func Test_Builtin_Movement(t *testing.T) {
	env, _ := newTestEnv(t)
	// 0 degrees is north, so FORWARD moves up.
	evalStr(t, env, "forward 100")
	wantPos(t, env, 0, 100)
	evalStr(t, env, "backward 30")
	wantPos(t, env, 0, 70)

	// RIGHT turns clockwise; heading east means +x.
	evalStr(t, env, "right 90 forward 10")
	wantPos(t, env, 10, 70)
	evalStr(t, env, "left 90 forward 5")
	wantPos(t, env, 10, 75)

	wantRuntimeError(t, env, `forward "far"`, "invalid argument: far")
}

func Test_Builtin_SquareReturnsHome(t *testing.T) {
	env, _ := newTestEnv(t)
	evalStr(t, env, "repeat 4 do forward 50 right 90 end")
	wantPos(t, env, 0, 0)
	if len(env.Canvas().ops) != 4 {
		t.Fatalf("want 4 lines, got %d ops", len(env.Canvas().ops))
	}
}

func Test_Builtin_PenUpDown(t *testing.T) {
	env, _ := newTestEnv(t)
	evalStr(t, env, "penup forward 10 pendown forward 10")
	if got := len(env.Canvas().ops); got != 1 {
		t.Fatalf("want 1 line, got %d ops", got)
	}
	wantPos(t, env, 0, 20)
}

func Test_Builtin_Colors(t *testing.T) {
	env, _ := newTestEnv(t)
	evalStr(t, env, "color 1 0.5 0")
	evalStr(t, env, "forward 10")
	line := env.Canvas().ops[0].(*lineOp)
	if line.color != (Color{1, 0.5, 0}) {
		t.Fatalf("line color: got %+v", line.color)
	}
	evalStr(t, env, "bgcolor 0 0 0")
	if env.Canvas().Background != ColorBlack {
		t.Fatalf("background: got %+v", env.Canvas().Background)
	}
	wantRuntimeError(t, env, "color 0 0 2", "invalid argument: 2")
	wantRuntimeError(t, env, "bgcolor -1 0 0", "invalid argument: -1")
}

func Test_Builtin_ClearAndHome(t *testing.T) {
	env, _ := newTestEnv(t)
	evalStr(t, env, "forward 10 right 45 clear")
	if len(env.Canvas().ops) != 0 {
		t.Fatalf("clear left %d ops", len(env.Canvas().ops))
	}
	// CLEAR keeps the turtle state.
	wantPos(t, env, 0, 10)
	if env.Turtle().Orientation() != -45 {
		t.Fatalf("orientation after clear: got %v", env.Turtle().Orientation())
	}
	// HOME moves without erasing but draws the way back.
	evalStr(t, env, "home")
	wantPos(t, env, 0, 0)
	if env.Turtle().Orientation() != 0 {
		t.Fatalf("orientation after home: got %v", env.Turtle().Orientation())
	}
	if len(env.Canvas().ops) != 1 {
		t.Fatalf("want the homeward line, got %d ops", len(env.Canvas().ops))
	}
}

func Test_Builtin_Realign(t *testing.T) {
	env, _ := newTestEnv(t)
	evalStr(t, env, "realign 90 forward 10")
	wantPos(t, env, -10, 0)
	evalStr(t, env, "realign 450")
	if env.Turtle().Orientation() != 90 {
		t.Fatalf("realign should wrap degrees, got %v", env.Turtle().Orientation())
	}
}

func Test_Builtin_HideShow(t *testing.T) {
	env, _ := newTestEnv(t)
	evalStr(t, env, "hide")
	if !env.Turtle().IsHidden() {
		t.Fatalf("turtle should be hidden")
	}
	evalStr(t, env, "show")
	if env.Turtle().IsHidden() {
		t.Fatalf("turtle should be visible")
	}
}

func Test_Builtin_WriteAndFlood(t *testing.T) {
	env, _ := newTestEnv(t)
	evalStr(t, env, `write "hi" write 42`)
	ops := env.Canvas().ops
	if len(ops) != 2 {
		t.Fatalf("want 2 ops, got %d", len(ops))
	}
	if txt := ops[0].(*textOp); txt.text != "hi" {
		t.Fatalf("text op: got %q", txt.text)
	}
	if txt := ops[1].(*textOp); txt.text != "42" {
		t.Fatalf("stringified text op: got %q", txt.text)
	}
	evalStr(t, env, "flood")
	if _, ok := env.Canvas().ops[2].(*fillOp); !ok {
		t.Fatalf("want a fill op, got %#v", env.Canvas().ops[2])
	}
}

func Test_Builtin_TurtleHerd(t *testing.T) {
	env, _ := newTestEnv(t)
	evalStr(t, env, `procreate "leonardo"`)
	wantRuntimeError(t, env, `procreate "leonardo"`, "turtle leonardo already exists")

	evalStr(t, env, `select "leonardo" forward 25`)
	wantPos(t, env, 0, 25)
	evalStr(t, env, `select "default"`)
	wantPos(t, env, 0, 0)

	wantRuntimeError(t, env, `select "raphael"`, "turtle raphael not found")
	wantRuntimeError(t, env, `select "leonardo" delete "leonardo"`, "can't delete the current turtle")
	evalStr(t, env, `select "default" delete "leonardo"`)
	wantRuntimeError(t, env, `delete "leonardo"`, "turtle leonardo not found")
}
