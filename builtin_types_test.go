// builtin_types_test.go
package rurtle

import "testing"

func Test_Builtin_HeadTail(t *testing.T) {
	env, _ := newTestEnv(t)
	wantNumber(t, evalStr(t, env, "head [3 1 4]"), 3)
	wantNumber(t, evalStr(t, env, "first [3 1 4]"), 3)
	if v := evalStr(t, env, "head []"); !v.Equal(Nothing) {
		t.Fatalf("head of empty list: want nothing, got %s", v)
	}

	v := evalStr(t, env, "tail [3 1 4]")
	if !v.Equal(ListValue(NumberValue(1), NumberValue(4))) {
		t.Fatalf("tail: got %s", v)
	}
	if v := evalStr(t, env, "butfirst []"); !v.Equal(ListValue()) {
		t.Fatalf("tail of empty list: want [], got %s", v)
	}

	wantRuntimeError(t, env, `head "abc"`, "invalid argument: abc")
}

func Test_Builtin_LengthAndIsEmpty(t *testing.T) {
	env, _ := newTestEnv(t)
	wantNumber(t, evalStr(t, env, "length [1 2 3]"), 3)
	wantNumber(t, evalStr(t, env, `length "hällo"`), 5)
	wantNumber(t, evalStr(t, env, "isempty []"), 1)
	wantNumber(t, evalStr(t, env, "isempty [0]"), 0)
	wantNumber(t, evalStr(t, env, `isempty ""`), 1)
	wantRuntimeError(t, env, "length 5", "invalid argument: 5")
}

func Test_Builtin_GetIndex(t *testing.T) {
	env, _ := newTestEnv(t)
	wantNumber(t, evalStr(t, env, `getindex [10 20 30] 1`), 20)
	wantRuntimeError(t, env, "getindex [10] 1", "index out of bounds: 1")
	wantRuntimeError(t, env, "getindex [10] -1", "index out of bounds: -1")
	wantRuntimeError(t, env, `getindex "abc" 0`, "invalid argument: abc")
}

func Test_Builtin_Find(t *testing.T) {
	env, _ := newTestEnv(t)
	wantNumber(t, evalStr(t, env, `find [1 "two" [3]] "two"`), 1)
	wantNumber(t, evalStr(t, env, "find [1 [2 3]] [2 3]"), 1)
	wantNumber(t, evalStr(t, env, "find [1 2] 9"), -1)
}

func Test_Builtin_Not(t *testing.T) {
	env, _ := newTestEnv(t)
	wantNumber(t, evalStr(t, env, "not 0"), 1)
	wantNumber(t, evalStr(t, env, "not 3"), 0)
	wantNumber(t, evalStr(t, env, `not ""`), 1)
	wantNumber(t, evalStr(t, env, "not nothing"), 1)
}

func Test_Builtin_Conversions(t *testing.T) {
	env, _ := newTestEnv(t)
	wantNumber(t, evalStr(t, env, `tonumber "2.5"`), 2.5)
	wantNumber(t, evalStr(t, env, "tonumber 7"), 7)
	wantRuntimeError(t, env, `tonumber "seven"`, `can't convert "seven" to a number`)

	if v := evalStr(t, env, "tostring 2.5"); v.Str != "2.5" {
		t.Fatalf("tostring 2.5: got %s", v)
	}
	if v := evalStr(t, env, "tostring [1 2]"); v.Str != "[1 2]" {
		t.Fatalf("tostring list: got %s", v)
	}

	if v := evalStr(t, env, "nothing"); !v.Equal(Nothing) {
		t.Fatalf("nothing: got %s", v)
	}
}
