// ==============================================================================================
// FILE: wasm/wasm_main.go
// BUILD: GOOS=js GOARCH=wasm go build -o main.wasm wasm/wasm_main.go
// ==============================================================================================
package main

import (
	"fmt"
	"strings"
	"syscall/js"

	"schemego/eval"
	"schemego/lexer"
	"schemego/parser"
)

// outputBuffer captures display/displayln/print output for the current run
// so it can be returned to the browser instead of going to a real stdout.
var outputBuffer strings.Builder

func main() {
	c := make(chan struct{}, 0)

	js.Global().Set("runScheme", js.FuncOf(runCode))

	fmt.Println("schemego WASM engine loaded.")
	<-c
}

// runCode is the bridge between JS and Go: it runs one script's top-level
// forms against a fresh environment and reports either the printed output
// plus result, or the error message.
func runCode(this js.Value, p []js.Value) interface{} {
	code := p[0].String()

	outputBuffer.Reset()
	eval.Stdout = &outputBuffer

	toks, err := lexer.Tokenize(code)
	if err != nil {
		return map[string]interface{}{"error": []interface{}{err.Error()}}
	}
	forms, err := parser.ParseAll(toks)
	if err != nil {
		return map[string]interface{}{"error": []interface{}{err.Error()}}
	}

	env := eval.NewRootEnv()
	finalResult := ""
	for _, form := range forms {
		result, err := eval.Eval(form, env)
		if err != nil {
			return map[string]interface{}{"error": []interface{}{err.Error()}}
		}
		finalResult = result.String()
	}

	return map[string]interface{}{
		"logs":   outputBuffer.String(),
		"result": finalResult,
	}
}
