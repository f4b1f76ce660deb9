// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop. Connects a line-editing input stream to the interpreter
//          pipeline (lexer -> parser -> eval) and manages the session's persistent environment,
//          following the REPL protocol of spec §6. Grounded on the teacher's repl.Start(in, out)
//          shape and its .debug toggle, with bufio.Scanner replaced by peterh/liner and the debug
//          trace routed through zap instead of ad hoc fmt.Fprintln.
// ==============================================================================================

package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"go.uber.org/zap"

	"schemego/eval"
	"schemego/lexer"
	"schemego/parser"
	"schemego/value"
)

const (
	primaryPrompt      = ">>> "
	continuationPrompt = "... "
)

// Start launches the REPL, reading from a liner-managed line editor and
// writing results to out. It returns when the line editor reports EOF
// (spec §6: "End of input terminates the process with status 0").
// Ctrl-C abandons the logical input being read and shows a fresh prompt.
// historyPath, when non-empty, is read at startup and rewritten with the
// session's full history on exit;
// an empty historyPath disables history entirely (the --no-history flag).
func Start(out io.Writer, errOut io.Writer, log *zap.Logger, historyPath string) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				line.WriteHistory(f)
				f.Close()
			}
		}()
	}

	env := eval.NewRootEnv()
	debug := false

	for {
		buf, err := readLogicalInput(line)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			return
		}
		trimmed := strings.TrimSpace(buf)
		if trimmed == "" {
			continue
		}

		if trimmed == ".debug" {
			debug = !debug
			fmt.Fprintf(out, "debug mode: %v\n", debug)
			continue
		}
		if trimmed == ".exit" {
			return
		}

		line.AppendHistory(trimmed)

		if debug {
			log.Debug("evaluating logical input", zap.String("input", trimmed))
		}

		result, err := evalSource(trimmed, env)
		if err != nil {
			fmt.Fprintf(errOut, "Error: %s\n", err.Error())
			continue
		}
		fmt.Fprintf(out, "%s\n", result.String())
	}
}

// readLogicalInput accumulates lines from the editor until the running
// paren balance returns to zero, switching from the primary prompt to the
// continuation prompt while it stays positive (spec §6).
func readLogicalInput(line *liner.State) (string, error) {
	var buf strings.Builder
	balance := 0
	prompt := primaryPrompt

	for {
		text, err := line.Prompt(prompt)
		if err != nil {
			return "", err
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(text)
		balance += parenDelta(text)

		if balance <= 0 {
			return buf.String(), nil
		}
		prompt = continuationPrompt
	}
}

// parenDelta counts unescaped '(' minus ')' outside string literals, so a
// paren inside a string or after a line comment doesn't confuse the
// balance tracker.
func parenDelta(text string) int {
	delta := 0
	inString := false
	escaped := false
	for _, r := range text {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case ';':
			return delta
		case '"':
			inString = true
		case '(':
			delta++
		case ')':
			delta--
		}
	}
	return delta
}

// evalSource tokenizes, parses, and evaluates every top-level form in src
// in order, returning the last value (spec §6: "the last value is printed
// canonically").
func evalSource(src string, env *value.Environment) (*value.Value, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	forms, err := parser.ParseAll(toks)
	if err != nil {
		return nil, err
	}

	result := value.Nil
	for _, form := range forms {
		result, err = eval.Eval(form, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
