// builtin_types.go — natives for inspecting and converting values.
package rurtle

import (
	"strconv"
	"unicode/utf8"
)

func registerTypeBuiltins(fns map[string]Function) {
	fns["HEAD"] = native(1, builtinHead)
	fns["FIRST"] = native(1, builtinHead)
	fns["TAIL"] = native(1, builtinTail)
	fns["BUTFIRST"] = native(1, builtinTail)
	fns["LENGTH"] = native(1, builtinLength)
	fns["ISEMPTY"] = native(1, builtinIsEmpty)
	fns["GETINDEX"] = native(2, builtinGetIndex)
	fns["FIND"] = native(2, builtinFind)
	fns["NOT"] = native(1, builtinNot)
	fns["TONUMBER"] = native(1, builtinToNumber)
	fns["TOSTRING"] = native(1, builtinToString)
	fns["NOTHING"] = native(0, builtinNothing)
}

// builtinHead returns the first element of a list, or Nothing for an
// empty list.
func builtinHead(_ *Environment, args []Value) (Value, error) {
	list, err := argList(args, 0)
	if err != nil {
		return Nothing, err
	}
	if len(list) == 0 {
		return Nothing, nil
	}
	return list[0], nil
}

// builtinTail returns everything but the first element. The tail of an
// empty list is the empty list.
func builtinTail(_ *Environment, args []Value) (Value, error) {
	list, err := argList(args, 0)
	if err != nil {
		return Nothing, err
	}
	if len(list) == 0 {
		return ListValue(), nil
	}
	return ListValue(list[1:]...), nil
}

// builtinLength counts list elements or string characters.
func builtinLength(_ *Environment, args []Value) (Value, error) {
	switch args[0].Tag {
	case VList:
		return NumberValue(float32(len(args[0].List))), nil
	case VString:
		return NumberValue(float32(utf8.RuneCountInString(args[0].Str))), nil
	}
	return Nothing, invalidArgument(args[0])
}

func builtinIsEmpty(_ *Environment, args []Value) (Value, error) {
	switch args[0].Tag {
	case VList:
		return boolNumber(len(args[0].List) == 0), nil
	case VString:
		return boolNumber(args[0].Str == ""), nil
	}
	return Nothing, invalidArgument(args[0])
}

// builtinGetIndex returns the list element at a zero-based index.
func builtinGetIndex(_ *Environment, args []Value) (Value, error) {
	list, err := argList(args, 0)
	if err != nil {
		return Nothing, err
	}
	idx, err := argNumber(args, 1)
	if err != nil {
		return Nothing, err
	}
	i := int(idx)
	if i < 0 || i >= len(list) {
		return Nothing, runtimeErrorf("index out of bounds: %d", i)
	}
	return list[i], nil
}

// builtinFind returns the zero-based index of the first element equal
// to the needle, or -1.
func builtinFind(_ *Environment, args []Value) (Value, error) {
	list, err := argList(args, 0)
	if err != nil {
		return Nothing, err
	}
	for i, element := range list {
		if element.Equal(args[1]) {
			return NumberValue(float32(i)), nil
		}
	}
	return NumberValue(-1), nil
}

// builtinNot inverts the truthiness of any value.
func builtinNot(_ *Environment, args []Value) (Value, error) {
	return boolNumber(!args[0].Boolean()), nil
}

// builtinToNumber parses a string into a Number. Numbers pass through
// unchanged.
func builtinToNumber(_ *Environment, args []Value) (Value, error) {
	switch args[0].Tag {
	case VNumber:
		return args[0], nil
	case VString:
		f, err := strconv.ParseFloat(args[0].Str, 32)
		if err != nil {
			return Nothing, runtimeErrorf("can't convert %q to a number", args[0].Str)
		}
		return NumberValue(float32(f)), nil
	}
	return Nothing, invalidArgument(args[0])
}

// builtinToString renders any value as its display string.
func builtinToString(_ *Environment, args []Value) (Value, error) {
	return StringValue(args[0].String()), nil
}

func builtinNothing(_ *Environment, _ []Value) (Value, error) {
	return Nothing, nil
}

// boolNumber maps a Go bool to the 1/0 Numbers Rurtle conditionals use.
func boolNumber(b bool) Value {
	if b {
		return NumberValue(1)
	}
	return NumberValue(0)
}
