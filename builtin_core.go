// builtin_core.go — builtin registration and the core natives.
//
// Native functions receive the environment and the already-evaluated
// arguments. The parser guarantees that the argument count matches the
// declared arity, so natives only check types. Type failures read
// "invalid argument: <value>" across the whole builtin library.
package rurtle

import (
	"fmt"
	"io"
	"strings"
)

// native wraps an implementation with its fixed arity.
func native(arity int, f NativeFunc) Function {
	return Function{Arity: arity, Native: f}
}

func invalidArgument(v Value) error {
	return runtimeErrorf("invalid argument: %s", v)
}

// argNumber extracts args[i] as a Number.
func argNumber(args []Value, i int) (float32, error) {
	if args[i].Tag != VNumber {
		return 0, invalidArgument(args[i])
	}
	return args[i].Num, nil
}

// argString extracts args[i] as a String.
func argString(args []Value, i int) (string, error) {
	if args[i].Tag != VString {
		return "", invalidArgument(args[i])
	}
	return args[i].Str, nil
}

// argList extracts args[i] as a List.
func argList(args []Value, i int) ([]Value, error) {
	if args[i].Tag != VList {
		return nil, invalidArgument(args[i])
	}
	return args[i].List, nil
}

// defaultFunctions returns the builtin function table registered into
// every new Environment's global frame.
func defaultFunctions() map[string]Function {
	fns := make(map[string]Function)
	registerCoreBuiltins(fns)
	registerTypeBuiltins(fns)
	registerStringBuiltins(fns)
	registerTurtleBuiltins(fns)
	return fns
}

func registerCoreBuiltins(fns map[string]Function) {
	fns["PRINT"] = native(1, builtinPrint)
	fns["MAKE"] = native(2, builtinMake)
	fns["GLOBAL"] = native(2, builtinGlobal)
	fns["SCREENSHOT"] = native(1, builtinScreenshot)
	fns["PROMPT"] = native(1, builtinPrompt)
	fns["THROW"] = native(1, builtinThrow)
}

func builtinPrint(env *Environment, args []Value) (Value, error) {
	fmt.Fprintln(env.stdout, args[0])
	return Nothing, nil
}

// builtinMake binds a variable in the current frame, like an
// assignment with a computed name.
func builtinMake(env *Environment, args []Value) (Value, error) {
	name, err := argString(args, 0)
	if err != nil {
		return Nothing, err
	}
	env.CurrentFrame().Locals[name] = args[1]
	return Nothing, nil
}

// builtinGlobal binds a variable in the global frame regardless of the
// calling frame.
func builtinGlobal(env *Environment, args []Value) (Value, error) {
	name, err := argString(args, 0)
	if err != nil {
		return Nothing, err
	}
	env.GlobalFrame().Locals[name] = args[1]
	return Nothing, nil
}

func builtinScreenshot(env *Environment, args []Value) (Value, error) {
	path, err := argString(args, 0)
	if err != nil {
		return Nothing, err
	}
	if err := env.canvas.Screenshot(path); err != nil {
		return Nothing, &RuntimeError{Msg: err.Error()}
	}
	return Nothing, nil
}

// builtinPrompt writes the prompt, reads one line from the input and
// returns it without the trailing newline.
func builtinPrompt(env *Environment, args []Value) (Value, error) {
	prompt, err := argString(args, 0)
	if err != nil {
		return Nothing, err
	}
	fmt.Fprint(env.stdout, prompt)
	line, err := env.stdin.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return Nothing, runtimeErrorf("prompt: %v", err)
	}
	line = strings.TrimRight(line, "\r\n")
	return StringValue(line), nil
}

// builtinThrow raises a runtime error described by its argument. The
// argument may be any value; its display string becomes the message.
func builtinThrow(_ *Environment, args []Value) (Value, error) {
	return Nothing, &RuntimeError{Msg: args[0].String()}
}
