// builtin_strings.go — natives for working with strings.
package rurtle

import "strings"

func registerStringBuiltins(fns map[string]Function) {
	fns["REPLACE"] = native(3, builtinReplace)
	fns["CONTAINS"] = native(2, builtinContains)
	fns["CHARS"] = native(1, builtinChars)
	fns["SPLIT"] = native(2, builtinSplit)
}

// builtinReplace substitutes every occurrence of the pattern in the
// original string.
func builtinReplace(_ *Environment, args []Value) (Value, error) {
	original, err := argString(args, 0)
	if err != nil {
		return Nothing, err
	}
	pattern, err := argString(args, 1)
	if err != nil {
		return Nothing, err
	}
	replacement, err := argString(args, 2)
	if err != nil {
		return Nothing, err
	}
	return StringValue(strings.ReplaceAll(original, pattern, replacement)), nil
}

// builtinContains reports whether the pattern occurs in the original
// string, as 1 or 0.
func builtinContains(_ *Environment, args []Value) (Value, error) {
	original, err := argString(args, 0)
	if err != nil {
		return Nothing, err
	}
	pattern, err := argString(args, 1)
	if err != nil {
		return Nothing, err
	}
	return boolNumber(strings.Contains(original, pattern)), nil
}

// builtinChars explodes a string into a list of its characters, each a
// one-character string.
func builtinChars(_ *Environment, args []Value) (Value, error) {
	s, err := argString(args, 0)
	if err != nil {
		return Nothing, err
	}
	chars := make([]Value, 0, len(s))
	for _, r := range s {
		chars = append(chars, StringValue(string(r)))
	}
	return ListValue(chars...), nil
}

// builtinSplit cuts the string around every occurrence of the
// separator. An empty separator splits into characters.
func builtinSplit(_ *Environment, args []Value) (Value, error) {
	s, err := argString(args, 0)
	if err != nil {
		return Nothing, err
	}
	sep, err := argString(args, 1)
	if err != nil {
		return Nothing, err
	}
	parts := strings.Split(s, sep)
	result := make([]Value, 0, len(parts))
	for _, part := range parts {
		result = append(result, StringValue(part))
	}
	return ListValue(result...), nil
}
