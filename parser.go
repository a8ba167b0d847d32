// parser.go — recursive-descent parser for Rurtle programs.
//
// Parsing needs one piece of context beyond the tokens: the arity of
// every callable function. Rurtle calls take neither parentheses nor
// delimiters, so
//
//	FUNCA FUNCB 10
//
// parses as either funca(funcb(10)) or funca(funcb(), 10) depending on
// how many arguments each function takes. The parser therefore keeps a
// stack of scopes, each mapping function names to arities. A LEARN
// definition registers its arity as soon as its header is parsed,
// before the body, so functions are forward-referenceable (including
// recursively) from anywhere in their scope. Control-flow bodies push
// a fresh scope on entry and pop it on exit, giving LEARNs inside a
// block the same scoping discipline the evaluator applies at run time.
//
// Grammar, informally (precedence low to high):
//
//	root       := {statement}
//	statement  := learn-def | if-stmt | repeat-stmt | while-stmt |
//	              return-stmt | try-stmt | expression
//	learn-def  := 'LEARN' word {':' word} 'DO' {statement} 'END'
//	if-stmt    := 'IF' expression 'DO' {statement}
//	              ['ELSE' {statement}] 'END'
//	repeat-stmt:= 'REPEAT' expression 'DO' {statement} 'END'
//	while-stmt := 'WHILE' expression 'DO' {statement} 'END'
//	return-stmt:= 'RETURN' expression
//	try-stmt   := 'TRY' {statement} 'ELSE' {statement} 'END'
//	expression := comparison
//	comparison := additive [comp-op additive]
//	additive   := product {('+' | '-') product}
//	product    := factor {('*' | '/') factor}
//	factor     := '(' expression ')' | list | variable-or-assignment |
//	              string | number | signed number |
//	              word {expression}  (as many as the word's arity)
//	list       := '[' {expression} ']'
//
// Parse errors abort the whole parse; there is no resynchronization.
package rurtle

import (
	"fmt"
	"strings"
)

// FuncMap maps an uppercased function name to the number of arguments
// it takes.
type FuncMap map[string]int

// ParseErrorKind enumerates the ways parsing can fail.
type ParseErrorKind int

const (
	// ParseUnexpectedToken means the token stream did not match the
	// grammar.
	ParseUnexpectedToken ParseErrorKind = iota
	// ParseUnexpectedEnd means the tokens ran out mid-construct.
	ParseUnexpectedEnd
	// ParseUnknownFunction means a word in call position has no known
	// arity.
	ParseUnknownFunction
)

// ParseError describes a parse failure. Line is the line of the last
// consumed token.
type ParseError struct {
	Line     int
	Kind     ParseErrorKind
	Expected string // ParseUnexpectedToken: what the grammar wanted
	Got      Token  // ParseUnexpectedToken: what it found
	Name     string // ParseUnknownFunction: the unresolved word
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseUnexpectedToken:
		return fmt.Sprintf("line %d: unexpected token, expected '%s', got '%s'",
			e.Line, e.Expected, e.Got)
	case ParseUnexpectedEnd:
		return fmt.Sprintf("line %d: unexpected end", e.Line)
	default:
		return fmt.Sprintf("line %d: unknown function: %s", e.Line, e.Name)
	}
}

// IsIncomplete reports whether the error means the input simply
// stopped too early rather than being wrong. REPLs use it to decide
// between a continuation prompt and an error report.
func IsIncomplete(err error) bool {
	if pe, ok := err.(*ParseError); ok {
		return pe.Kind == ParseUnexpectedEnd
	}
	if le, ok := err.(*LexError); ok {
		return le.Kind == LexUnterminatedString
	}
	return false
}

// Parser builds a syntax tree from a token stream. A Parser is used
// for a single Parse call and consumes its tokens destructively.
type Parser struct {
	tokens   []Token
	pos      int
	scopes   []FuncMap
	lastLine int
}

// NewParser constructs a Parser over the tokens. The functions map
// seeds the outermost scope with the already-known arities (builtins
// and previously defined functions); it is copied, not retained.
func NewParser(tokens []Token, functions FuncMap) *Parser {
	global := make(FuncMap, len(functions))
	for name, arity := range functions {
		global[name] = arity
	}
	return &Parser{tokens: tokens, scopes: []FuncMap{global}}
}

// Parse consumes all tokens and returns the root node. The returned
// tree is not yet flattened.
func (p *Parser) Parse() (Node, error) {
	return p.parseStatementList()
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.tokens) }

// peek returns the next token without consuming it. Callers must have
// checked atEnd.
func (p *Parser) peek() Token { return p.tokens[p.pos] }

// popLeft consumes the next token and remembers its line for error
// reporting.
func (p *Parser) popLeft() (Token, error) {
	if p.atEnd() {
		return Token{}, &ParseError{Line: p.lastLine, Kind: ParseUnexpectedEnd}
	}
	tok := p.tokens[p.pos]
	p.pos++
	p.lastLine = tok.Line
	return tok, nil
}

// expect consumes the next token and fails unless it has the wanted
// type. desc names the expectation in the error message.
func (p *Parser) expect(tt TokenType, desc string) error {
	tok, err := p.popLeft()
	if err != nil {
		return err
	}
	if tok.Type != tt {
		return &ParseError{Line: p.lastLine, Kind: ParseUnexpectedToken, Expected: desc, Got: tok}
	}
	return nil
}

func (p *Parser) pushScope() {
	p.scopes = append(p.scopes, make(FuncMap))
}

func (p *Parser) popScope() {
	p.scopes = p.scopes[:len(p.scopes)-1]
}

// registerFunction records the arity in the innermost scope.
func (p *Parser) registerFunction(name string, arity int) {
	p.scopes[len(p.scopes)-1][name] = arity
}

// findArity walks the scope stack innermost to outermost; the first
// match wins.
func (p *Parser) findArity(name string) (int, bool) {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if arity, ok := p.scopes[i][name]; ok {
			return arity, true
		}
	}
	return 0, false
}

func (p *Parser) parseStatementList() (Node, error) {
	var statements []Node
	for !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return &StatementList{Statements: statements}, nil
}

// parseLoopBody parses statements up to the closing ELSE or END, which
// is left in the stream. Bodies introduce a new function scope.
func (p *Parser) parseLoopBody() (Node, error) {
	p.pushScope()
	defer p.popScope()
	var statements []Node
	for !p.atEnd() {
		switch p.peek().Type {
		case TokKeyElse, TokKeyEnd:
			return &StatementList{Statements: statements}, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return &StatementList{Statements: statements}, nil
}

func (p *Parser) parseStatement() (Node, error) {
	switch p.peek().Type {
	case TokKeyLearn:
		return p.parseLearn()
	case TokKeyIf:
		return p.parseIf()
	case TokKeyRepeat:
		return p.parseRepeat()
	case TokKeyWhile:
		return p.parseWhile()
	case TokKeyReturn:
		return p.parseReturn()
	case TokKeyTry:
		return p.parseTry()
	default:
		return p.parseExpression()
	}
}

func (p *Parser) parseLearn() (Node, error) {
	if err := p.expect(TokKeyLearn, "LEARN"); err != nil {
		return nil, err
	}
	tok, err := p.popLeft()
	if err != nil {
		return nil, err
	}
	if tok.Type != TokWord {
		return nil, &ParseError{Line: p.lastLine, Kind: ParseUnexpectedToken, Expected: "word", Got: tok}
	}
	name := strings.ToUpper(tok.Text)
	var params []string
	for {
		tok, err := p.popLeft()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokKeyDo {
			break
		}
		if tok.Type != TokColon {
			return nil, &ParseError{Line: p.lastLine, Kind: ParseUnexpectedToken, Expected: "DO", Got: tok}
		}
		param, err := p.popLeft()
		if err != nil {
			return nil, err
		}
		if param.Type != TokWord {
			return nil, &ParseError{Line: p.lastLine, Kind: ParseUnexpectedToken, Expected: "word", Got: param}
		}
		params = append(params, param.Text)
	}
	// Register the arity before parsing the body so the function can
	// be called recursively and referenced forward within this scope.
	p.registerFunction(name, len(params))
	body, err := p.parseLoopBody()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokKeyEnd, "END"); err != nil {
		return nil, err
	}
	return &LearnStatement{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseIf() (Node, error) {
	if err := p.expect(TokKeyIf, "IF"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokKeyDo, "DO"); err != nil {
		return nil, err
	}
	trueBody, err := p.parseLoopBody()
	if err != nil {
		return nil, err
	}
	var falseBody Node
	if !p.atEnd() && p.peek().Type == TokKeyElse {
		if _, err := p.popLeft(); err != nil {
			return nil, err
		}
		if falseBody, err = p.parseLoopBody(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(TokKeyEnd, "END"); err != nil {
		return nil, err
	}
	return &IfStatement{Cond: cond, True: trueBody, False: falseBody}, nil
}

func (p *Parser) parseRepeat() (Node, error) {
	if err := p.expect(TokKeyRepeat, "REPEAT"); err != nil {
		return nil, err
	}
	count, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokKeyDo, "DO"); err != nil {
		return nil, err
	}
	body, err := p.parseLoopBody()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokKeyEnd, "END"); err != nil {
		return nil, err
	}
	return &RepeatStatement{Count: count, Body: body}, nil
}

func (p *Parser) parseWhile() (Node, error) {
	if err := p.expect(TokKeyWhile, "WHILE"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokKeyDo, "DO"); err != nil {
		return nil, err
	}
	body, err := p.parseLoopBody()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokKeyEnd, "END"); err != nil {
		return nil, err
	}
	return &WhileStatement{Cond: cond, Body: body}, nil
}

func (p *Parser) parseReturn() (Node, error) {
	if err := p.expect(TokKeyReturn, "RETURN"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ReturnStatement{Value: value}, nil
}

func (p *Parser) parseTry() (Node, error) {
	if err := p.expect(TokKeyTry, "TRY"); err != nil {
		return nil, err
	}
	body, err := p.parseLoopBody()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokKeyElse, "ELSE"); err != nil {
		return nil, err
	}
	fallback, err := p.parseLoopBody()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokKeyEnd, "END"); err != nil {
		return nil, err
	}
	return &TryStatement{Body: body, Fallback: fallback}, nil
}

func (p *Parser) parseExpression() (Node, error) {
	return p.parseComparison()
}

func (p *Parser) parseComparison() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if p.atEnd() {
		return left, nil
	}
	var op CompOp
	switch p.peek().Type {
	case TokOpEq:
		op = CompEqual
	case TokOpLt:
		op = CompLess
	case TokOpGt:
		op = CompGreater
	case TokOpLe:
		op = CompLessEqual
	case TokOpGe:
		op = CompGreaterEqual
	case TokOpNe:
		op = CompNotEqual
	default:
		return left, nil
	}
	if _, err := p.popLeft(); err != nil {
		return nil, err
	}
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &Comparison{Left: left, Op: op, Right: right}, nil
}

func (p *Parser) parseAdditive() (Node, error) {
	first, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	var terms []AddTerm
	for !p.atEnd() {
		var op AddOp
		switch p.peek().Type {
		case TokOpPlus:
			op = OpAdd
		case TokOpMinus:
			op = OpSub
		default:
			return &Addition{First: first, Terms: terms}, nil
		}
		if _, err := p.popLeft(); err != nil {
			return nil, err
		}
		operand, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		terms = append(terms, AddTerm{Op: op, Operand: operand})
	}
	return &Addition{First: first, Terms: terms}, nil
}

func (p *Parser) parseProduct() (Node, error) {
	first, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	var terms []MulTerm
	for !p.atEnd() {
		var op MulOp
		switch p.peek().Type {
		case TokOpMul:
			op = OpMul
		case TokOpDiv:
			op = OpDiv
		default:
			return &Multiplication{First: first, Terms: terms}, nil
		}
		if _, err := p.popLeft(); err != nil {
			return nil, err
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		terms = append(terms, MulTerm{Op: op, Operand: operand})
	}
	return &Multiplication{First: first, Terms: terms}, nil
}

func (p *Parser) parseFactor() (Node, error) {
	tok, err := p.popLeft()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case TokLParen:
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokRParen, "right parenthesis"); err != nil {
			return nil, err
		}
		return inner, nil

	case TokLBracket:
		var elements []Node
		for !p.atEnd() && p.peek().Type != TokRBracket {
			element, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)
		}
		if err := p.expect(TokRBracket, "right bracket"); err != nil {
			return nil, err
		}
		return &ListLiteral{Elements: elements}, nil

	case TokColon:
		name, err := p.popLeft()
		if err != nil {
			return nil, err
		}
		if name.Type != TokWord {
			return nil, &ParseError{Line: p.lastLine, Kind: ParseUnexpectedToken, Expected: "word", Got: name}
		}
		if !p.atEnd() && p.peek().Type == TokDefine {
			if _, err := p.popLeft(); err != nil {
				return nil, err
			}
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			return &Assignment{Name: name.Text, Value: value}, nil
		}
		return &Variable{Name: name.Text}, nil

	case TokWord:
		arity, ok := p.findArity(strings.ToUpper(tok.Text))
		if !ok {
			return nil, &ParseError{Line: p.lastLine, Kind: ParseUnknownFunction, Name: tok.Text}
		}
		args := make([]Node, 0, arity)
		for i := 0; i < arity; i++ {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return &FuncCall{Name: tok.Text, Args: args}, nil

	case TokString:
		return &StringLiteral{Value: tok.Text}, nil

	case TokNumber:
		return &NumberLiteral{Value: tok.Num}, nil

	case TokOpMinus:
		num, err := p.popLeft()
		if err != nil {
			return nil, err
		}
		if num.Type != TokNumber {
			return nil, &ParseError{Line: p.lastLine, Kind: ParseUnexpectedToken, Expected: "number", Got: num}
		}
		return &NumberLiteral{Value: -num.Num}, nil

	case TokOpPlus:
		num, err := p.popLeft()
		if err != nil {
			return nil, err
		}
		if num.Type != TokNumber {
			return nil, &ParseError{Line: p.lastLine, Kind: ParseUnexpectedToken, Expected: "number", Got: num}
		}
		return &NumberLiteral{Value: num.Num}, nil

	default:
		return nil, &ParseError{Line: p.lastLine, Kind: ParseUnexpectedToken, Expected: "expression", Got: tok}
	}
}
