package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	rurtle "github.com/Kingdread/Rurtle"
)

var (
	styleBanner = lipgloss.NewStyle().Bold(true)
	styleValue  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// repl runs the interactive loop on the given environment until EOF.
func repl(env *rurtle.Environment, cfg config) int {
	fmt.Println(styleBanner.Render(fmt.Sprintf("Rurtle %s", rurtle.Version)))
	fmt.Println("Ctrl+C cancels input, Ctrl+D exits.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.History); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer saveHistory(ln, cfg.History)

	for {
		src, ok := readInput(ln, env, cfg.Prompt)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(src) == "" {
			continue
		}

		value, err := env.EvalSource(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, styleError.Render(rurtle.WrapErrorWithName(err, "<repl>", src).Error()))
			continue
		}
		if !value.Equal(rurtle.Nothing) {
			fmt.Println(styleValue.Render(value.String()))
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// readInput collects lines until they lex and parse as a complete unit,
// showing the continuation prompt for input that merely stopped early
// (an open LEARN body, an unterminated string). Ctrl+C drops the
// pending input; EOF on an empty buffer ends the REPL.
func readInput(ln *liner.State, env *rurtle.Environment, prompt string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = promptCont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			if b.Len() == 0 {
				return "", false
			}
			return b.String(), true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if rurtle.IsIncomplete(probe(env, b.String())) {
			continue
		}
		return b.String(), true
	}
}

// probe lexes and parses without evaluating, to decide whether more
// input is needed.
func probe(env *rurtle.Environment, src string) error {
	tokens, err := rurtle.Tokenize(src)
	if err != nil {
		return err
	}
	_, err = rurtle.NewParser(tokens, env.FunctionArity()).Parse()
	return err
}

func saveHistory(ln *liner.State, path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		slog.Debug("cannot create history directory", "error", err)
		return
	}
	f, err := os.Create(path)
	if err != nil {
		slog.Debug("cannot write history", "error", err)
		return
	}
	defer f.Close()
	_, _ = ln.WriteHistory(f)
}
