// builtin_turtle.go — natives that drive the currently selected
// turtle, plus turtle management (PROCREATE/SELECT/DELETE).
package rurtle

func registerTurtleBuiltins(fns map[string]Function) {
	fns["FORWARD"] = native(1, builtinForward)
	fns["BACKWARD"] = native(1, builtinBackward)
	fns["LEFT"] = native(1, builtinLeft)
	fns["RIGHT"] = native(1, builtinRight)
	fns["COLOR"] = native(3, builtinColor)
	fns["BGCOLOR"] = native(3, builtinBgColor)
	fns["CLEAR"] = native(0, builtinClear)
	fns["PENDOWN"] = native(0, builtinPenDown)
	fns["PENUP"] = native(0, builtinPenUp)
	fns["HOME"] = native(0, builtinHome)
	fns["REALIGN"] = native(1, builtinRealign)
	fns["HIDE"] = native(0, builtinHide)
	fns["SHOW"] = native(0, builtinShow)
	fns["WRITE"] = native(1, builtinWrite)
	fns["FLOOD"] = native(0, builtinFlood)
	fns["PROCREATE"] = native(1, builtinProcreate)
	fns["SELECT"] = native(1, builtinSelect)
	fns["DELETE"] = native(1, builtinDelete)
}

func builtinForward(env *Environment, args []Value) (Value, error) {
	length, err := argNumber(args, 0)
	if err != nil {
		return Nothing, err
	}
	env.Turtle().Forward(length)
	return Nothing, nil
}

func builtinBackward(env *Environment, args []Value) (Value, error) {
	length, err := argNumber(args, 0)
	if err != nil {
		return Nothing, err
	}
	env.Turtle().Backward(length)
	return Nothing, nil
}

func builtinLeft(env *Environment, args []Value) (Value, error) {
	deg, err := argNumber(args, 0)
	if err != nil {
		return Nothing, err
	}
	env.Turtle().Left(deg)
	return Nothing, nil
}

func builtinRight(env *Environment, args []Value) (Value, error) {
	deg, err := argNumber(args, 0)
	if err != nil {
		return Nothing, err
	}
	env.Turtle().Right(deg)
	return Nothing, nil
}

// argChannel reads a color channel and rejects values outside [0, 1].
func argChannel(args []Value, i int) (float32, error) {
	f, err := argNumber(args, i)
	if err != nil {
		return 0, err
	}
	if f < 0 || f > 1 {
		return 0, invalidArgument(args[i])
	}
	return f, nil
}

func builtinColor(env *Environment, args []Value) (Value, error) {
	r, err := argChannel(args, 0)
	if err != nil {
		return Nothing, err
	}
	g, err := argChannel(args, 1)
	if err != nil {
		return Nothing, err
	}
	b, err := argChannel(args, 2)
	if err != nil {
		return Nothing, err
	}
	env.Turtle().SetColor(r, g, b)
	return Nothing, nil
}

func builtinBgColor(env *Environment, args []Value) (Value, error) {
	r, err := argChannel(args, 0)
	if err != nil {
		return Nothing, err
	}
	g, err := argChannel(args, 1)
	if err != nil {
		return Nothing, err
	}
	b, err := argChannel(args, 2)
	if err != nil {
		return Nothing, err
	}
	env.Turtle().SetBackgroundColor(r, g, b)
	return Nothing, nil
}

func builtinClear(env *Environment, _ []Value) (Value, error) {
	env.Turtle().Clear()
	return Nothing, nil
}

func builtinPenDown(env *Environment, _ []Value) (Value, error) {
	env.Turtle().PenDown()
	return Nothing, nil
}

func builtinPenUp(env *Environment, _ []Value) (Value, error) {
	env.Turtle().PenUp()
	return Nothing, nil
}

func builtinHome(env *Environment, _ []Value) (Value, error) {
	env.Turtle().Home()
	return Nothing, nil
}

// builtinRealign sets the absolute heading in degrees.
func builtinRealign(env *Environment, args []Value) (Value, error) {
	deg, err := argNumber(args, 0)
	if err != nil {
		return Nothing, err
	}
	env.Turtle().SetOrientation(deg)
	return Nothing, nil
}

func builtinHide(env *Environment, _ []Value) (Value, error) {
	env.Turtle().Hide()
	return Nothing, nil
}

func builtinShow(env *Environment, _ []Value) (Value, error) {
	env.Turtle().Show()
	return Nothing, nil
}

// builtinWrite places the argument's display text on the canvas at the
// turtle's position.
func builtinWrite(env *Environment, args []Value) (Value, error) {
	env.Turtle().Write(args[0].String())
	return Nothing, nil
}

func builtinFlood(env *Environment, _ []Value) (Value, error) {
	env.Turtle().Flood()
	return Nothing, nil
}

// builtinProcreate creates a new named turtle on the shared canvas.
func builtinProcreate(env *Environment, args []Value) (Value, error) {
	name, err := argString(args, 0)
	if err != nil {
		return Nothing, err
	}
	if !env.AddTurtle(name) {
		return Nothing, runtimeErrorf("turtle %s already exists", name)
	}
	return Nothing, nil
}

// builtinSelect makes the named turtle the target of all subsequent
// turtle commands.
func builtinSelect(env *Environment, args []Value) (Value, error) {
	name, err := argString(args, 0)
	if err != nil {
		return Nothing, err
	}
	if !env.SelectTurtle(name) {
		return Nothing, runtimeErrorf("turtle %s not found", name)
	}
	return Nothing, nil
}

// builtinDelete removes the named turtle. The currently selected
// turtle cannot be deleted.
func builtinDelete(env *Environment, args []Value) (Value, error) {
	name, err := argString(args, 0)
	if err != nil {
		return Nothing, err
	}
	if name == env.current {
		return Nothing, runtimeErrorf("can't delete the current turtle")
	}
	if !env.DeleteTurtle(name) {
		return Nothing, runtimeErrorf("turtle %s not found", name)
	}
	return Nothing, nil
}
