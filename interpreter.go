// interpreter.go — the Rurtle execution environment.
//
// The Environment is a tree-walking interpreter over the flattened
// syntax tree. It owns a call stack of frames; every frame holds the
// local variables of one function invocation plus a stack of function
// scopes for LEARN definitions made inside control-flow blocks.
//
// Scoping is dynamic and stack-based, not lexical: variable lookup
// checks the current frame and then the global frame (two levels,
// nothing in between), function lookup walks the frame stack from the
// innermost frame outwards and, inside a frame, from the innermost
// function scope outwards. There are no closures.
//
// Evaluation is single-threaded and non-reentrant with respect to one
// Environment. Nothing here suspends or times out; an infinite WHILE
// loop runs forever.
package rurtle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// RuntimeError is the single, flat error kind produced during
// evaluation. It carries a human-readable description and nothing
// else; TRY is the only in-language way to recover from one.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return e.Msg }

func runtimeErrorf(format string, args ...any) error {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}

// NativeFunc is the signature host functions must have. The argument
// slice length always equals the function's declared arity; the parser
// enforces that, so natives only validate types.
type NativeFunc func(env *Environment, args []Value) (Value, error)

// Function is something callable from Rurtle code: either a native
// host function or a procedure defined in-language via LEARN.
type Function struct {
	Arity  int
	Native NativeFunc     // nil for defined functions
	Def    *LearnStatement // nil for natives
}

// Frame is one call stack entry.
type Frame struct {
	// Locals maps variable names to their values.
	Locals map[string]Value
	// funcScopes is the stack of function-definition scopes; the
	// outermost entry lives as long as the frame, inner ones are
	// pushed and popped around control-flow bodies.
	funcScopes []map[string]Function
	// ShouldReturn short-circuits all statement evaluation in this
	// frame once a RETURN has executed.
	ShouldReturn bool
	// ReturnValue is what the frame's function call yields.
	ReturnValue Value
	// FnName is the name of the function this frame belongs to.
	FnName string
	// IsGlobal marks the bottom frame, which is never popped.
	IsGlobal bool
}

func newFrame(name string) *Frame {
	return &Frame{
		Locals:      make(map[string]Value),
		funcScopes:  []map[string]Function{make(map[string]Function)},
		ReturnValue: Nothing,
		FnName:      name,
	}
}

func (f *Frame) pushFuncScope() {
	f.funcScopes = append(f.funcScopes, make(map[string]Function))
}

func (f *Frame) popFuncScope() {
	f.funcScopes = f.funcScopes[:len(f.funcScopes)-1]
}

// Environment holds everything a running Rurtle program can touch: the
// frame stack, the turtles and their shared canvas, and the host I/O
// hooks used by PRINT and PROMPT.
type Environment struct {
	stack   []*Frame
	canvas  *Canvas
	turtles map[string]*Turtle
	current string

	stdout io.Writer
	stdin  *bufio.Reader
}

// DefaultTurtleName is the name of the turtle every Environment starts
// with. It is always selectable and can never be deleted while
// selected.
const DefaultTurtleName = "default"

// NewEnvironment constructs an Environment drawing on the given
// canvas, with the builtin functions registered in the global frame
// and a single turtle selected.
func NewEnvironment(canvas *Canvas) *Environment {
	global := newFrame("<global>")
	global.IsGlobal = true
	global.funcScopes[0] = defaultFunctions()
	env := &Environment{
		stack:   []*Frame{global},
		canvas:  canvas,
		turtles: map[string]*Turtle{DefaultTurtleName: NewTurtle(canvas)},
		current: DefaultTurtleName,
		stdout:  os.Stdout,
		stdin:   bufio.NewReader(os.Stdin),
	}
	return env
}

// SetOutput redirects PRINT output (default os.Stdout).
func (env *Environment) SetOutput(w io.Writer) { env.stdout = w }

// SetInput redirects PROMPT input (default os.Stdin).
func (env *Environment) SetInput(r io.Reader) { env.stdin = bufio.NewReader(r) }

// CurrentFrame returns the top of the frame stack.
func (env *Environment) CurrentFrame() *Frame {
	return env.stack[len(env.stack)-1]
}

// GlobalFrame returns the bottom frame, which always exists.
func (env *Environment) GlobalFrame() *Frame {
	return env.stack[0]
}

// GetVariable looks the name up in the current frame's locals and then
// in the global frame's locals. There is no lookup in intermediate
// frames.
func (env *Environment) GetVariable(name string) (Value, bool) {
	if v, ok := env.CurrentFrame().Locals[name]; ok {
		return v, true
	}
	if v, ok := env.GlobalFrame().Locals[name]; ok {
		return v, true
	}
	return Nothing, false
}

// lookupFunction resolves a function name (already uppercased) by
// walking frames innermost to outermost and, within each frame, the
// function scopes innermost to outermost.
func (env *Environment) lookupFunction(name string) (Function, bool) {
	for i := len(env.stack) - 1; i >= 0; i-- {
		frame := env.stack[i]
		for j := len(frame.funcScopes) - 1; j >= 0; j-- {
			if fn, ok := frame.funcScopes[j][name]; ok {
				return fn, true
			}
		}
	}
	return Function{}, false
}

// defineFunction binds the function in the current frame's innermost
// scope, overwriting an existing binding of the same name there.
func (env *Environment) defineFunction(name string, fn Function) {
	frame := env.CurrentFrame()
	frame.funcScopes[len(frame.funcScopes)-1][name] = fn
}

// FunctionArity returns a name→arity map of every currently visible
// function, suitable for seeding a Parser. Outer scopes are written
// first so inner definitions win.
func (env *Environment) FunctionArity() FuncMap {
	result := make(FuncMap)
	for _, frame := range env.stack {
		for _, scope := range frame.funcScopes {
			for name, fn := range scope {
				result[name] = fn.Arity
			}
		}
	}
	return result
}

// EvalSource runs a complete source unit against the environment:
// tokenize, parse (seeded with the currently visible function
// arities), flatten, evaluate. The result is the value of the last
// top-level statement, or Nothing for empty input.
func (env *Environment) EvalSource(src string) (Value, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return Nothing, err
	}
	parser := NewParser(tokens, env.FunctionArity())
	root, err := parser.Parse()
	if err != nil {
		return Nothing, err
	}
	return env.Eval(root.Flatten())
}

// Eval evaluates a single (flattened) node.
func (env *Environment) Eval(node Node) (Value, error) {
	// A pending return skips everything until the frame is popped.
	if env.CurrentFrame().ShouldReturn {
		return Nothing, nil
	}
	switch n := node.(type) {
	case *StatementList:
		values, err := env.evalStatements(n.Statements)
		if err != nil {
			return Nothing, err
		}
		if len(values) == 0 {
			return Nothing, nil
		}
		return values[len(values)-1], nil
	case *IfStatement:
		return env.evalIf(n)
	case *RepeatStatement:
		return env.evalRepeat(n)
	case *WhileStatement:
		return env.evalWhile(n)
	case *LearnStatement:
		env.defineFunction(n.Name, Function{Arity: len(n.Params), Def: n})
		return Nothing, nil
	case *TryStatement:
		return env.evalTry(n)
	case *Comparison:
		return env.evalComparison(n)
	case *Addition:
		return env.evalAddition(n)
	case *Multiplication:
		return env.evalMultiplication(n)
	case *FuncCall:
		return env.evalFuncCall(n)
	case *ReturnStatement:
		return env.evalReturn(n)
	case *Assignment:
		value, err := env.Eval(n.Value)
		if err != nil {
			return Nothing, err
		}
		env.CurrentFrame().Locals[n.Name] = value
		return value, nil
	case *ListLiteral:
		return env.evalList(n)
	case *StringLiteral:
		return StringValue(n.Value), nil
	case *NumberLiteral:
		return NumberValue(n.Value), nil
	case *Variable:
		if value, ok := env.GetVariable(n.Name); ok {
			return value, nil
		}
		return Nothing, runtimeErrorf("variable %s not found", n.Name)
	default:
		return Nothing, runtimeErrorf("cannot evaluate node %T", node)
	}
}

// EvalMulti is the list-producing evaluation mode: a statement list
// yields the ordered values of all its statements, any other node
// yields a single-element sequence. List literals use it to splice a
// statement-list element into the enclosing list instead of nesting
// it.
func (env *Environment) EvalMulti(node Node) ([]Value, error) {
	if list, ok := node.(*StatementList); ok {
		return env.evalStatements(list.Statements)
	}
	value, err := env.Eval(node)
	if err != nil {
		return nil, err
	}
	return []Value{value}, nil
}

// evalStatements runs the statements in order and collects every
// statement's result. Evaluation halts at the first error.
func (env *Environment) evalStatements(statements []Node) ([]Value, error) {
	values := make([]Value, 0, len(statements))
	for _, stmt := range statements {
		value, err := env.Eval(stmt)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// evalBody evaluates a control-flow body inside a fresh function
// scope, mirroring the scope the parser pushed around the same body.
func (env *Environment) evalBody(body Node) (Value, error) {
	frame := env.CurrentFrame()
	frame.pushFuncScope()
	defer frame.popFuncScope()
	return env.Eval(body)
}

func (env *Environment) evalIf(n *IfStatement) (Value, error) {
	cond, err := env.Eval(n.Cond)
	if err != nil {
		return Nothing, err
	}
	if cond.Boolean() {
		if _, err := env.evalBody(n.True); err != nil {
			return Nothing, err
		}
	} else if n.False != nil {
		if _, err := env.evalBody(n.False); err != nil {
			return Nothing, err
		}
	}
	return Nothing, nil
}

func (env *Environment) evalRepeat(n *RepeatStatement) (Value, error) {
	count, err := env.Eval(n.Count)
	if err != nil {
		return Nothing, err
	}
	if count.Tag != VNumber {
		return Nothing, runtimeErrorf("repeat count has to be a number, got %s", count.TypeString())
	}
	for i := 0; i < int(count.Num); i++ {
		if _, err := env.evalBody(n.Body); err != nil {
			return Nothing, err
		}
	}
	return Nothing, nil
}

func (env *Environment) evalWhile(n *WhileStatement) (Value, error) {
	for {
		cond, err := env.Eval(n.Cond)
		if err != nil {
			return Nothing, err
		}
		if !cond.Boolean() {
			return Nothing, nil
		}
		if _, err := env.evalBody(n.Body); err != nil {
			return Nothing, err
		}
	}
}

// evalTry runs the normal body and, if that fails with a runtime
// error, the fallback body instead. The error text is discarded; lex
// or parse stages cannot fail here since the tree is already built.
func (env *Environment) evalTry(n *TryStatement) (Value, error) {
	value, err := env.evalBody(n.Body)
	if err == nil {
		return value, nil
	}
	if _, ok := err.(*RuntimeError); !ok {
		return Nothing, err
	}
	return env.evalBody(n.Fallback)
}

func (env *Environment) evalComparison(n *Comparison) (Value, error) {
	left, err := env.Eval(n.Left)
	if err != nil {
		return Nothing, err
	}
	right, err := env.Eval(n.Right)
	if err != nil {
		return Nothing, err
	}
	order, ok := left.Compare(right)
	if !ok {
		return Nothing, runtimeErrorf("can't compare %s and %s",
			left.TypeString(), right.TypeString())
	}
	if n.Op.Matches(order) {
		return NumberValue(1), nil
	}
	return NumberValue(0), nil
}

func (env *Environment) evalAddition(n *Addition) (Value, error) {
	accum, err := env.Eval(n.First)
	if err != nil {
		return Nothing, err
	}
	for _, term := range n.Terms {
		operand, err := env.Eval(term.Operand)
		if err != nil {
			return Nothing, err
		}
		var ok bool
		var result Value
		if term.Op == OpAdd {
			result, ok = accum.Add(operand)
		} else {
			result, ok = accum.Sub(operand)
		}
		if !ok {
			return Nothing, runtimeErrorf("can't add/subtract %s and %s",
				accum.TypeString(), operand.TypeString())
		}
		accum = result
	}
	return accum, nil
}

func (env *Environment) evalMultiplication(n *Multiplication) (Value, error) {
	accum, err := env.Eval(n.First)
	if err != nil {
		return Nothing, err
	}
	for _, term := range n.Terms {
		operand, err := env.Eval(term.Operand)
		if err != nil {
			return Nothing, err
		}
		var ok bool
		var result Value
		if term.Op == OpMul {
			result, ok = accum.Mul(operand)
		} else {
			result, ok = accum.Div(operand)
		}
		if !ok {
			return Nothing, runtimeErrorf("can't multiply/divide %s and %s",
				accum.TypeString(), operand.TypeString())
		}
		accum = result
	}
	return accum, nil
}

func (env *Environment) evalFuncCall(n *FuncCall) (Value, error) {
	name := strings.ToUpper(n.Name)
	fn, ok := env.lookupFunction(name)
	if !ok {
		return Nothing, runtimeErrorf("function %s not found", n.Name)
	}
	args := make([]Value, 0, len(n.Args))
	for _, argNode := range n.Args {
		arg, err := env.Eval(argNode)
		if err != nil {
			return Nothing, err
		}
		args = append(args, arg)
	}
	if fn.Native != nil {
		return fn.Native(env, args)
	}
	return env.callDefined(fn.Def, args)
}

// callDefined pushes a frame binding the parameters positionally,
// evaluates the body and yields the frame's captured return value
// (Nothing if no RETURN executed).
func (env *Environment) callDefined(def *LearnStatement, args []Value) (Value, error) {
	frame := newFrame(def.Name)
	for i, param := range def.Params {
		frame.Locals[param] = args[i]
	}
	env.stack = append(env.stack, frame)
	_, err := env.Eval(def.Body)
	env.stack = env.stack[:len(env.stack)-1]
	if err != nil {
		return Nothing, err
	}
	return frame.ReturnValue, nil
}

func (env *Environment) evalReturn(n *ReturnStatement) (Value, error) {
	frame := env.CurrentFrame()
	if frame.IsGlobal {
		return Nothing, runtimeErrorf("return not in a function")
	}
	value, err := env.Eval(n.Value)
	if err != nil {
		return Nothing, err
	}
	frame.ReturnValue = value
	frame.ShouldReturn = true
	return Nothing, nil
}

func (env *Environment) evalList(n *ListLiteral) (Value, error) {
	result := make([]Value, 0, len(n.Elements))
	for _, element := range n.Elements {
		// Statement-list elements splice their values into the
		// enclosing list rather than nesting.
		if _, ok := element.(*StatementList); ok {
			values, err := env.EvalMulti(element)
			if err != nil {
				return Nothing, err
			}
			result = append(result, values...)
			continue
		}
		value, err := env.Eval(element)
		if err != nil {
			return Nothing, err
		}
		result = append(result, value)
	}
	return ListValue(result...), nil
}

// Turtle returns the currently selected turtle.
func (env *Environment) Turtle() *Turtle {
	return env.turtles[env.current]
}

// Canvas returns the shared drawing canvas.
func (env *Environment) Canvas() *Canvas {
	return env.canvas
}

// AddTurtle creates a named turtle on the shared canvas. It reports
// false if a turtle of that name already exists.
func (env *Environment) AddTurtle(name string) bool {
	if _, exists := env.turtles[name]; exists {
		return false
	}
	env.turtles[name] = NewTurtle(env.canvas)
	return true
}

// SelectTurtle switches the current turtle. It reports false if no
// turtle of that name exists.
func (env *Environment) SelectTurtle(name string) bool {
	if _, exists := env.turtles[name]; !exists {
		return false
	}
	env.current = name
	return true
}

// DeleteTurtle removes a named turtle. The currently selected turtle
// cannot be deleted; its drawings stay on the canvas either way.
func (env *Environment) DeleteTurtle(name string) bool {
	if name == env.current {
		return false
	}
	if _, exists := env.turtles[name]; !exists {
		return false
	}
	env.turtles[name].remove()
	delete(env.turtles, name)
	return true
}
