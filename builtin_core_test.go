// builtin_core_test.go
package rurtle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_Builtin_Print(t *testing.T) {
	env, out := newTestEnv(t)
	evalStr(t, env, `print "hello"`)
	evalStr(t, env, "print 1 + 2")
	evalStr(t, env, "print [1 [2 3]]")
	want := "hello\n3\n[1 [2 3]]\n"
	if out.String() != want {
		t.Fatalf("want %q, got %q", want, out.String())
	}
}

func Test_Builtin_MakeAndGlobal(t *testing.T) {
	env, _ := newTestEnv(t)
	evalStr(t, env, `make "answer" 42`)
	wantNumber(t, evalStr(t, env, ":answer"), 42)

	// MAKE inside a function binds locally, GLOBAL escapes the frame.
	evalStr(t, env, `
learn setlocal do make "loc" 1 end
learn setglobal do global "glob" 2 end
setlocal
setglobal
`)
	wantRuntimeError(t, env, ":loc", "variable loc not found")
	wantNumber(t, evalStr(t, env, ":glob"), 2)

	wantRuntimeError(t, env, "make 1 2", "invalid argument: 1")
}

func Test_Builtin_Throw(t *testing.T) {
	env, _ := newTestEnv(t)
	wantRuntimeError(t, env, `throw "kaboom"`, "kaboom")
	// Non-string arguments are stringified.
	wantRuntimeError(t, env, "throw [1 2]", "[1 2]")
}

func Test_Builtin_Prompt(t *testing.T) {
	env, out := newTestEnv(t)
	env.SetInput(strings.NewReader("turtle\n"))
	v := evalStr(t, env, `prompt "name? "`)
	if v.Str != "turtle" {
		t.Fatalf("want turtle, got %s", v)
	}
	if !strings.Contains(out.String(), "name? ") {
		t.Fatalf("prompt text not written: %q", out.String())
	}
	// A final line without a newline still counts.
	env.SetInput(strings.NewReader("last"))
	if v := evalStr(t, env, `prompt ""`); v.Str != "last" {
		t.Fatalf("want last, got %s", v)
	}
}

func Test_Builtin_Screenshot(t *testing.T) {
	env, _ := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "shot.png")
	evalStr(t, env, "forward 50")
	evalStr(t, env, `screenshot "`+path+`"`)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("screenshot is empty")
	}
	wantRuntimeError(t, env, "screenshot 5", "invalid argument: 5")
}
