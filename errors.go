// errors.go — user-facing error wrapping and source-snippet rendering.
//
// The interpreter's error types carry a message and, for lex and parse
// errors, the 1-based line the problem was found on. WrapErrorWithSource
// turns such an error into a readable multi-line report:
//
//	PARSE ERROR on line 3: unexpected end of input, expected 'end'
//
//	   2 | learn square :size do
//	>  3 |     repeat 4 do forward :size right 90
//	   4 |
//
// It shows one line of context before and after and marks the offending
// line with '>'. Errors of any other kind pass through unchanged, so
// callers can wrap unconditionally.
package rurtle

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource augments a lex, parse or runtime error with a
// snippet of the source it came from. Other errors are returned
// untouched.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name (file
// name, "<repl>") included in the header.
func WrapErrorWithName(err error, srcName, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", snippet(src, "LEX ERROR", srcName, e.Line, e.Error()))
	case *ParseError:
		return fmt.Errorf("%s", snippet(src, "PARSE ERROR", srcName, e.Line, e.Error()))
	case *RuntimeError:
		// Runtime errors carry no position; header only.
		if srcName != "" {
			return fmt.Errorf("RUNTIME ERROR in %s: %s", srcName, e.Msg)
		}
		return fmt.Errorf("RUNTIME ERROR: %s", e.Msg)
	default:
		return err
	}
}

// snippet renders the labeled report. The line is 1-based and clamped
// to the source bounds so a stale position cannot crash rendering.
func snippet(src, header, name string, line int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s: %s\n\n", header, name, msg)
	} else {
		fmt.Fprintf(&b, "%s: %s\n\n", header, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "  %4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "> %4d | %s\n", line, lines[line-1])
	if line < len(lines) {
		fmt.Fprintf(&b, "  %4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
