// lexer.go — lexical analysis for Rurtle source text.
//
// The lexer turns a source string into a flat token stream. Every token
// carries the 1-based line it started on; the line counter advances on
// every '\n', including newlines inside strings and comments, so later
// stages can report accurate positions.
//
// Identifiers start with a (Unicode) letter or '_' and continue with
// letters, digits or '_'. Identifiers matching a keyword
// (case-insensitively) become keyword tokens, everything else becomes a
// Word with its original spelling preserved. Strings are delimited by
// double quotes and support backslash escapes. Comments run from ';' to
// the end of the line.
package rurtle

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Literals & identifiers
	TokWord TokenType = iota
	TokNumber
	TokString

	// Punctuation
	TokLBracket // "["
	TokRBracket // "]"
	TokLParen   // "("
	TokRParen   // ")"
	TokColon    // ":"
	TokDefine   // ":="

	// Operators
	TokOpEq // "="
	TokOpLt
	TokOpGt
	TokOpLe
	TokOpGe
	TokOpNe // "<>"
	TokOpPlus
	TokOpMinus
	TokOpMul
	TokOpDiv

	// Keywords
	TokKeyLearn
	TokKeyDo
	TokKeyElse
	TokKeyRepeat
	TokKeyWhile
	TokKeyIf
	TokKeyEnd
	TokKeyFor
	TokKeyReturn
	TokKeyTry
)

// keywords maps the uppercased spelling to the keyword token type.
var keywords = map[string]TokenType{
	"LEARN":  TokKeyLearn,
	"DO":     TokKeyDo,
	"ELSE":   TokKeyElse,
	"REPEAT": TokKeyRepeat,
	"WHILE":  TokKeyWhile,
	"IF":     TokKeyIf,
	"END":    TokKeyEnd,
	"FOR":    TokKeyFor,
	"RETURN": TokKeyReturn,
	"TRY":    TokKeyTry,
}

// Token is a single lexical token. Text holds the identifier spelling
// for TokWord and the decoded literal for TokString; Num holds the
// parsed value for TokNumber. Line is 1-based.
type Token struct {
	Type TokenType
	Text string
	Num  float32
	Line int
}

// String returns a short human-readable description of the token, used
// in parse error messages ("unexpected token ..., got 'word'").
func (t Token) String() string {
	switch t.Type {
	case TokWord:
		return "word"
	case TokNumber:
		return "number"
	case TokString:
		return "string literal"
	case TokLBracket:
		return "left bracket"
	case TokRBracket:
		return "right bracket"
	case TokLParen:
		return "left parenthesis"
	case TokRParen:
		return "right parenthesis"
	case TokColon:
		return "colon"
	case TokDefine:
		return ":="
	case TokOpEq:
		return "="
	case TokOpLt:
		return "<"
	case TokOpGt:
		return ">"
	case TokOpLe:
		return "<="
	case TokOpGe:
		return ">="
	case TokOpNe:
		return "<>"
	case TokOpPlus:
		return "+"
	case TokOpMinus:
		return "-"
	case TokOpMul:
		return "*"
	case TokOpDiv:
		return "/"
	case TokKeyLearn:
		return "LEARN"
	case TokKeyDo:
		return "DO"
	case TokKeyElse:
		return "ELSE"
	case TokKeyRepeat:
		return "REPEAT"
	case TokKeyWhile:
		return "WHILE"
	case TokKeyIf:
		return "IF"
	case TokKeyEnd:
		return "END"
	case TokKeyFor:
		return "FOR"
	case TokKeyReturn:
		return "RETURN"
	case TokKeyTry:
		return "TRY"
	}
	return "unknown token"
}

// LexErrorKind enumerates the ways lexing can fail.
type LexErrorKind int

const (
	// LexUnterminatedString means the closing quote is missing.
	LexUnterminatedString LexErrorKind = iota
	// LexInvalidNumber means a digit run did not parse as a number.
	LexInvalidNumber
	// LexUnexpectedCharacter means a character outside the language.
	LexUnexpectedCharacter
)

// LexError describes a lexing failure. Lexing stops at the first error;
// there is no recovery.
type LexError struct {
	Line int
	Kind LexErrorKind
	Text string // offending number text or character
}

func (e *LexError) Error() string {
	switch e.Kind {
	case LexUnterminatedString:
		return fmt.Sprintf("line %d: unterminated string", e.Line)
	case LexInvalidNumber:
		return fmt.Sprintf("line %d: invalid number: %s", e.Line, e.Text)
	default:
		return fmt.Sprintf("line %d: unexpected character: %s", e.Line, e.Text)
	}
}

// lexer scans a Rurtle source string into tokens.
type lexer struct {
	src    string
	cur    int // byte index into src
	line   int // 1-based
	tokens []Token
}

// Tokenize splits the input into tokens. Strings in the input source
// are returned as single tokens with their escapes already decoded.
func Tokenize(src string) ([]Token, error) {
	l := &lexer{src: src, line: 1}
	if err := l.scan(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

func (l *lexer) isAtEnd() bool { return l.cur >= len(l.src) }

// peek returns the next byte without consuming it.
func (l *lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

// advance consumes and returns the next byte, tracking lines.
func (l *lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
	}
	return ch, true
}

// advanceRune consumes a full UTF-8 rune. Only identifiers may contain
// multi-byte runes, everything else in the language is ASCII.
func (l *lexer) advanceRune() (rune, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(l.src[l.cur:])
	l.cur += size
	if r == '\n' {
		l.line++
	}
	return r, true
}

func (l *lexer) peekRune() (rune, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.cur:])
	return r, true
}

func (l *lexer) add(tt TokenType, line int) {
	l.tokens = append(l.tokens, Token{Type: tt, Line: line})
}

// matchNext consumes the next byte if it equals want.
func (l *lexer) matchNext(want byte) bool {
	if c, ok := l.peek(); ok && c == want {
		l.cur++
		return true
	}
	return false
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func (l *lexer) scan() error {
	for !l.isAtEnd() {
		line := l.line
		r, _ := l.advanceRune()
		switch r {
		case '(':
			l.add(TokLParen, line)
		case ')':
			l.add(TokRParen, line)
		case '[':
			l.add(TokLBracket, line)
		case ']':
			l.add(TokRBracket, line)
		case '+':
			l.add(TokOpPlus, line)
		case '-':
			l.add(TokOpMinus, line)
		case '*':
			l.add(TokOpMul, line)
		case '/':
			l.add(TokOpDiv, line)
		case '=':
			l.add(TokOpEq, line)
		case ':':
			if l.matchNext('=') {
				l.add(TokDefine, line)
			} else {
				l.add(TokColon, line)
			}
		case '<':
			switch {
			case l.matchNext('='):
				l.add(TokOpLe, line)
			case l.matchNext('>'):
				l.add(TokOpNe, line)
			default:
				l.add(TokOpLt, line)
			}
		case '>':
			if l.matchNext('=') {
				l.add(TokOpGe, line)
			} else {
				l.add(TokOpGt, line)
			}
		case ';':
			// Comment until end of line. The newline itself still
			// counts for line tracking (consumed by advance).
			for {
				c, ok := l.advance()
				if !ok || c == '\n' {
					break
				}
			}
		case '"':
			if err := l.scanString(line); err != nil {
				return err
			}
		default:
			switch {
			case unicode.IsSpace(r):
				// skip
			case isIdentStart(r):
				l.scanWord(r, line)
			case r >= '0' && r <= '9':
				if err := l.scanNumber(byte(r), line); err != nil {
					return err
				}
			default:
				return &LexError{Line: line, Kind: LexUnexpectedCharacter, Text: string(r)}
			}
		}
	}
	return nil
}

// scanWord consumes an identifier or keyword starting with first.
func (l *lexer) scanWord(first rune, line int) {
	word := []rune{first}
	for {
		r, ok := l.peekRune()
		if !ok || !isIdentCont(r) {
			break
		}
		l.advanceRune()
		word = append(word, r)
	}
	text := string(word)
	if tt, ok := keywords[strings.ToUpper(text)]; ok {
		l.add(tt, line)
		return
	}
	l.tokens = append(l.tokens, Token{Type: TokWord, Text: text, Line: line})
}

// scanNumber consumes a run of digits and decimal points and parses it
// as a 32-bit float.
func (l *lexer) scanNumber(first byte, line int) error {
	text := []byte{first}
	for {
		c, ok := l.peek()
		if !ok || !(c >= '0' && c <= '9' || c == '.') {
			break
		}
		l.advance()
		text = append(text, c)
	}
	f, err := strconv.ParseFloat(string(text), 32)
	if err != nil {
		return &LexError{Line: line, Kind: LexInvalidNumber, Text: string(text)}
	}
	l.tokens = append(l.tokens, Token{Type: TokNumber, Num: float32(f), Line: line})
	return nil
}

// scanString consumes a double-quoted string literal. Recognized
// escapes: \n (newline), \r (carriage return) and backslash-newline
// (line continuation, dropped from the literal). Any other escaped
// character is taken literally, so \" and \\ work as expected.
func (l *lexer) scanString(line int) error {
	var out []byte
	for {
		c, ok := l.advance()
		if !ok {
			return &LexError{Line: l.line, Kind: LexUnterminatedString}
		}
		switch c {
		case '"':
			l.tokens = append(l.tokens, Token{Type: TokString, Text: string(out), Line: line})
			return nil
		case '\\':
			e, ok := l.advance()
			if !ok {
				return &LexError{Line: l.line, Kind: LexUnterminatedString}
			}
			switch e {
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case '\n':
				// line continuation, nothing stored
			default:
				out = append(out, e)
			}
		default:
			out = append(out, c)
		}
	}
}
