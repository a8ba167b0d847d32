// ast_test.go
package rurtle

import (
	"reflect"
	"testing"
)

func Test_Ast_FlattenCollapsesSingletonLists(t *testing.T) {
	tree := &StatementList{Statements: []Node{
		&StatementList{Statements: []Node{
			&StatementList{Statements: []Node{
				&NumberLiteral{Value: 7},
			}},
		}},
	}}
	got := tree.Flatten()
	want := &NumberLiteral{Value: 7}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %#v, got %#v", want, got)
	}
}

func Test_Ast_FlattenUnwrapsTermlessChains(t *testing.T) {
	// The parser always wraps factors in Addition/Multiplication; a
	// plain literal therefore comes out double-wrapped.
	tree := &Addition{First: &Multiplication{First: &NumberLiteral{Value: 3}}}
	got := tree.Flatten()
	want := &NumberLiteral{Value: 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %#v, got %#v", want, got)
	}
}

func Test_Ast_FlattenKeepsRealChains(t *testing.T) {
	tree := &Addition{
		First: &Multiplication{First: &NumberLiteral{Value: 1}},
		Terms: []AddTerm{
			{Op: OpSub, Operand: &Multiplication{First: &NumberLiteral{Value: 2}}},
		},
	}
	got := tree.Flatten()
	want := &Addition{
		First: &NumberLiteral{Value: 1},
		Terms: []AddTerm{
			{Op: OpSub, Operand: &NumberLiteral{Value: 2}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %#v, got %#v", want, got)
	}
}

func Test_Ast_FlattenRecursesIntoStatements(t *testing.T) {
	tree := &IfStatement{
		Cond: &Addition{First: &NumberLiteral{Value: 1}},
		True: &StatementList{Statements: []Node{
			&Addition{First: &Variable{Name: "x"}},
		}},
		False: &StatementList{Statements: []Node{
			&ReturnStatement{Value: &Multiplication{First: &StringLiteral{Value: "no"}}},
		}},
	}
	got := tree.Flatten()
	want := &IfStatement{
		Cond:  &NumberLiteral{Value: 1},
		True:  &Variable{Name: "x"},
		False: &ReturnStatement{Value: &StringLiteral{Value: "no"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %#v, got %#v", want, got)
	}
}

func Test_Ast_FlattenIsIdempotent(t *testing.T) {
	trees := []Node{
		&StatementList{Statements: []Node{
			&StatementList{Statements: []Node{&NumberLiteral{Value: 1}}},
			&Addition{First: &NumberLiteral{Value: 2}},
		}},
		&WhileStatement{
			Cond: &Comparison{
				Left:  &Addition{First: &Variable{Name: "i"}},
				Op:    CompLess,
				Right: &Addition{First: &NumberLiteral{Value: 10}},
			},
			Body: &StatementList{Statements: []Node{
				&Assignment{Name: "i", Value: &Addition{
					First: &Variable{Name: "i"},
					Terms: []AddTerm{{Op: OpAdd, Operand: &NumberLiteral{Value: 1}}},
				}},
			}},
		},
		&ListLiteral{Elements: []Node{
			&TryStatement{
				Body:     &StatementList{Statements: []Node{&NumberLiteral{Value: 1}}},
				Fallback: &StatementList{Statements: []Node{&NumberLiteral{Value: 2}}},
			},
		}},
	}
	for i, tree := range trees {
		once := tree.Flatten()
		twice := once.Flatten()
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("tree %d: flatten not idempotent:\nonce:  %#v\ntwice: %#v", i, once, twice)
		}
	}
}

func Test_Ast_CompOpMatches(t *testing.T) {
	cases := []struct {
		op   CompOp
		want [3]bool // less, equal, greater
	}{
		{CompEqual, [3]bool{false, true, false}},
		{CompLess, [3]bool{true, false, false}},
		{CompGreater, [3]bool{false, false, true}},
		{CompLessEqual, [3]bool{true, true, false}},
		{CompGreaterEqual, [3]bool{false, true, true}},
		{CompNotEqual, [3]bool{true, false, true}},
	}
	orders := []ordering{orderLess, orderEqual, orderGreater}
	for _, c := range cases {
		for i, o := range orders {
			if c.op.Matches(o) != c.want[i] {
				t.Fatalf("%s.Matches(%d): want %v", c.op, o, c.want[i])
			}
		}
	}
}
