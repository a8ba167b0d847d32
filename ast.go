// ast.go — the Rurtle syntax tree and its flatten normalization.
//
// The parser produces a Node tree; Flatten then collapses trivial
// wrapper nodes (single-statement lists, additive/multiplicative chains
// with no trailing operations) so the evaluator only ever sees the
// canonical shape. Flatten is pure and idempotent.
package rurtle

// Node is a single element of the syntax tree. Nodes are immutable
// after Flatten; the evaluator never rewrites them.
type Node interface {
	// Flatten returns the normalized form of the node with all
	// children flattened recursively.
	Flatten() Node
}

// CompOp enumerates the comparison operators.
type CompOp int

const (
	CompEqual CompOp = iota
	CompLess
	CompGreater
	CompLessEqual
	CompGreaterEqual
	CompNotEqual
)

func (op CompOp) String() string {
	switch op {
	case CompEqual:
		return "="
	case CompLess:
		return "<"
	case CompGreater:
		return ">"
	case CompLessEqual:
		return "<="
	case CompGreaterEqual:
		return ">="
	default:
		return "<>"
	}
}

// Matches reports whether the given ordering satisfies the operator,
// e.g. CompLessEqual accepts both orderLess and orderEqual.
func (op CompOp) Matches(o ordering) bool {
	switch op {
	case CompEqual:
		return o == orderEqual
	case CompLess:
		return o == orderLess
	case CompGreater:
		return o == orderGreater
	case CompLessEqual:
		return o == orderLess || o == orderEqual
	case CompGreaterEqual:
		return o == orderGreater || o == orderEqual
	default:
		return o == orderLess || o == orderGreater
	}
}

// AddOp is either addition or subtraction.
type AddOp int

const (
	OpAdd AddOp = iota
	OpSub
)

// MulOp is either multiplication or division.
type MulOp int

const (
	OpMul MulOp = iota
	OpDiv
)

// StatementList holds a sequence of statements, e.g. a loop body or a
// whole program.
type StatementList struct {
	Statements []Node
}

// IfStatement is the conditional. False is nil when there is no ELSE
// branch.
type IfStatement struct {
	Cond  Node
	True  Node
	False Node
}

// RepeatStatement executes Body Count times.
type RepeatStatement struct {
	Count Node
	Body  Node
}

// WhileStatement is the pre-condition loop.
type WhileStatement struct {
	Cond Node
	Body Node
}

// LearnStatement defines the named procedure. Name is stored
// uppercased; Params keep their written spelling.
type LearnStatement struct {
	Name   string
	Params []string
	Body   Node
}

// TryStatement evaluates Body and falls back to Fallback if Body fails
// with a runtime error.
type TryStatement struct {
	Body     Node
	Fallback Node
}

// Comparison of two expressions; always a single operator, comparisons
// do not chain.
type Comparison struct {
	Left  Node
	Op    CompOp
	Right Node
}

// AddTerm is one trailing "+ x" or "- x" in an Addition.
type AddTerm struct {
	Op      AddOp
	Operand Node
}

// Addition is a left-folded chain of additions and subtractions. A
// chain without terms flattens away to its first operand.
type Addition struct {
	First Node
	Terms []AddTerm
}

// MulTerm is one trailing "* x" or "/ x" in a Multiplication.
type MulTerm struct {
	Op      MulOp
	Operand Node
}

// Multiplication is a left-folded chain of multiplications and
// divisions.
type Multiplication struct {
	First Node
	Terms []MulTerm
}

// FuncCall calls the function Name with the given argument
// expressions. The argument count always equals the function's arity;
// the parser guarantees this.
type FuncCall struct {
	Name string
	Args []Node
}

// ReturnStatement returns Value from the enclosing function.
type ReturnStatement struct {
	Value Node
}

// Assignment binds Value to Name in the current frame and yields the
// assigned value, making assignment usable as an expression.
type Assignment struct {
	Name  string
	Value Node
}

// ListLiteral is the bracketed list expression.
type ListLiteral struct {
	Elements []Node
}

// StringLiteral is a string constant with escapes already decoded.
type StringLiteral struct {
	Value string
}

// NumberLiteral is a numeric constant.
type NumberLiteral struct {
	Value float32
}

// Variable reads the variable Name.
type Variable struct {
	Name string
}

func flattenAll(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Flatten()
	}
	return out
}

// Flatten collapses a single-statement list down to its sole statement.
func (n *StatementList) Flatten() Node {
	if len(n.Statements) == 1 {
		return n.Statements[0].Flatten()
	}
	return &StatementList{Statements: flattenAll(n.Statements)}
}

func (n *IfStatement) Flatten() Node {
	out := &IfStatement{Cond: n.Cond.Flatten(), True: n.True.Flatten()}
	if n.False != nil {
		out.False = n.False.Flatten()
	}
	return out
}

func (n *RepeatStatement) Flatten() Node {
	return &RepeatStatement{Count: n.Count.Flatten(), Body: n.Body.Flatten()}
}

func (n *WhileStatement) Flatten() Node {
	return &WhileStatement{Cond: n.Cond.Flatten(), Body: n.Body.Flatten()}
}

func (n *LearnStatement) Flatten() Node {
	return &LearnStatement{Name: n.Name, Params: n.Params, Body: n.Body.Flatten()}
}

func (n *TryStatement) Flatten() Node {
	return &TryStatement{Body: n.Body.Flatten(), Fallback: n.Fallback.Flatten()}
}

func (n *Comparison) Flatten() Node {
	return &Comparison{Left: n.Left.Flatten(), Op: n.Op, Right: n.Right.Flatten()}
}

// Flatten unwraps an addition without trailing terms to its operand.
func (n *Addition) Flatten() Node {
	if len(n.Terms) == 0 {
		return n.First.Flatten()
	}
	terms := make([]AddTerm, len(n.Terms))
	for i, t := range n.Terms {
		terms[i] = AddTerm{Op: t.Op, Operand: t.Operand.Flatten()}
	}
	return &Addition{First: n.First.Flatten(), Terms: terms}
}

// Flatten unwraps a multiplication without trailing terms to its
// operand.
func (n *Multiplication) Flatten() Node {
	if len(n.Terms) == 0 {
		return n.First.Flatten()
	}
	terms := make([]MulTerm, len(n.Terms))
	for i, t := range n.Terms {
		terms[i] = MulTerm{Op: t.Op, Operand: t.Operand.Flatten()}
	}
	return &Multiplication{First: n.First.Flatten(), Terms: terms}
}

func (n *FuncCall) Flatten() Node {
	return &FuncCall{Name: n.Name, Args: flattenAll(n.Args)}
}

func (n *ReturnStatement) Flatten() Node {
	return &ReturnStatement{Value: n.Value.Flatten()}
}

func (n *Assignment) Flatten() Node {
	return &Assignment{Name: n.Name, Value: n.Value.Flatten()}
}

func (n *ListLiteral) Flatten() Node {
	return &ListLiteral{Elements: flattenAll(n.Elements)}
}

func (n *StringLiteral) Flatten() Node { return n }

func (n *NumberLiteral) Flatten() Node { return n }

func (n *Variable) Flatten() Node { return n }
