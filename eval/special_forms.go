// ==============================================================================================
// FILE: eval/special_forms.go
// ==============================================================================================
// PACKAGE: eval
// PURPOSE: The special-form dispatch table (spec §4.6). Special forms see their argument
//          expressions unevaluated — a distinct dispatch arm resolved by symbol name before the
//          operator is ever evaluated, never modeled as procedures with lazy arguments (spec §9).
// ==============================================================================================

package eval

import (
	"schemego/lerr"
	"schemego/value"
)

type specialForm func(args []*value.Value, env *value.Environment) (*value.Value, error)

var specialForms = map[string]specialForm{
	"quote":        evalQuote,
	"quasiquote":   evalQuasiquoteForm,
	"if":           evalIf,
	"and":          evalAnd,
	"or":           evalOr,
	"cond":         evalCond,
	"begin":        evalBegin,
	"let":          evalLet,
	"lambda":       evalLambda,
	"define":       evalDefine,
	"define-macro": evalDefineMacro,
}

func evalQuote(args []*value.Value, _ *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, lerr.Arityf("quote expects exactly 1 argument, got %d", len(args))
	}
	return args[0], nil
}

func evalQuasiquoteForm(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, lerr.Arityf("quasiquote expects exactly 1 argument, got %d", len(args))
	}
	return expandQuasiquote(args[0], env)
}

// expandQuasiquote is the structural recursion of spec §4.5.
func expandQuasiquote(template *value.Value, env *value.Environment) (*value.Value, error) {
	if !template.IsPair() {
		return template, nil
	}

	car := template.Car()
	if car.IsSymbol() && car.SymbolName() == "unquote" {
		rest, err := template.Cdr().ToSlice()
		if err != nil || len(rest) != 1 {
			return nil, lerr.Syntaxf("unquote expects exactly 1 argument")
		}
		return Eval(rest[0], env)
	}

	expandedCar, err := expandQuasiquote(car, env)
	if err != nil {
		return nil, err
	}
	expandedCdr, err := expandQuasiquote(template.Cdr(), env)
	if err != nil {
		return nil, err
	}
	return value.Cons(expandedCar, expandedCdr), nil
}

func evalIf(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, lerr.Arityf("if expects 2 or 3 arguments, got %d", len(args))
	}
	test, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	if test.IsTruthy() {
		return Eval(args[1], env)
	}
	if len(args) == 3 {
		return Eval(args[2], env)
	}
	return value.Nil, nil
}

func evalAnd(args []*value.Value, env *value.Environment) (*value.Value, error) {
	result := value.True
	for _, a := range args {
		v, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		if !v.IsTruthy() {
			return value.False, nil
		}
		result = v
	}
	return result, nil
}

func evalOr(args []*value.Value, env *value.Environment) (*value.Value, error) {
	for _, a := range args {
		v, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		if v.IsTruthy() {
			return v, nil
		}
	}
	return value.False, nil
}

func evalCond(clauses []*value.Value, env *value.Environment) (*value.Value, error) {
	for i, clause := range clauses {
		parts, err := clause.ToSlice()
		if err != nil || len(parts) == 0 {
			return nil, lerr.Syntaxf("malformed cond clause: %s", clause.String())
		}

		test := parts[0]
		isElse := test.IsSymbol() && test.SymbolName() == "else"
		if isElse && i != len(clauses)-1 {
			return nil, lerr.Syntaxf("else clause must be last in cond")
		}

		var testVal *value.Value
		if isElse {
			testVal = value.True
		} else {
			testVal, err = Eval(test, env)
			if err != nil {
				return nil, err
			}
		}
		if !testVal.IsTruthy() {
			continue
		}

		body := parts[1:]
		if len(body) == 0 {
			return testVal, nil
		}
		return evalBody(body, env)
	}
	return value.Nil, nil
}

func evalBegin(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) == 0 {
		return nil, lerr.Arityf("begin expects at least 1 argument")
	}
	return evalBody(args, env)
}

func evalBody(exprs []*value.Value, env *value.Environment) (*value.Value, error) {
	var result *value.Value
	var err error
	for _, e := range exprs {
		result, err = Eval(e, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func evalLet(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) < 1 {
		return nil, lerr.Arityf("let expects a binding list and a body")
	}
	bindingForms, err := args[0].ToSlice()
	if err != nil {
		return nil, lerr.Syntaxf("let bindings must be a proper list")
	}

	names := make([]string, len(bindingForms))
	values := make([]*value.Value, len(bindingForms))
	for i, b := range bindingForms {
		parts, err := b.ToSlice()
		if err != nil || len(parts) != 2 || !parts[0].IsSymbol() {
			return nil, lerr.Syntaxf("malformed let binding: %s", b.String())
		}
		names[i] = parts[0].SymbolName()
		v, err := Eval(parts[1], env)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	letEnv := env.Child()
	for i, name := range names {
		letEnv.Define(name, values[i])
	}

	body := args[1:]
	if len(body) == 0 {
		return value.Nil, nil
	}
	return evalBody(body, letEnv)
}

func evalLambda(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) < 2 {
		return nil, lerr.Arityf("lambda expects a parameter list and a non-empty body")
	}
	params, err := parseParamList(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewLambda("", params, args[1:], env), nil
}

func parseParamList(paramsExpr *value.Value) ([]string, error) {
	if !paramsExpr.IsProperList() {
		return nil, lerr.Syntaxf("parameter list must be a proper list of symbols: %s", paramsExpr.String())
	}
	elements, _ := paramsExpr.ToSlice()
	names := make([]string, len(elements))
	for i, e := range elements {
		if !e.IsSymbol() {
			return nil, lerr.Syntaxf("parameter must be a symbol: %s", e.String())
		}
		names[i] = e.SymbolName()
	}
	return names, nil
}

func evalDefine(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) < 1 {
		return nil, lerr.Arityf("define expects at least 1 argument")
	}

	if args[0].IsPair() {
		// (define (f p ...) body ...) sugar for (define f (lambda (p ...) body ...))
		sig, err := args[0].ToSlice()
		if err != nil || len(sig) == 0 || !sig[0].IsSymbol() {
			return nil, lerr.Syntaxf("malformed function define: %s", args[0].String())
		}
		name := sig[0].SymbolName()
		params, err := parseParamList(value.List(sig[1:]...))
		if err != nil {
			return nil, err
		}
		if len(args) < 2 {
			return nil, lerr.Arityf("define of %s requires a non-empty body", name)
		}
		env.Define(name, value.NewLambda(name, params, args[1:], env))
		return value.Nil, nil
	}

	if !args[0].IsSymbol() {
		return nil, lerr.Syntaxf("define target must be a symbol or a function signature: %s", args[0].String())
	}
	if len(args) != 2 {
		return nil, lerr.Arityf("define of a variable expects exactly 2 arguments, got %d", len(args))
	}
	v, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	env.Define(args[0].SymbolName(), v)
	return value.Nil, nil
}

func evalDefineMacro(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 3 {
		return nil, lerr.Arityf("define-macro expects exactly 3 arguments, got %d", len(args))
	}
	if !args[0].IsSymbol() {
		return nil, lerr.Syntaxf("define-macro name must be a symbol: %s", args[0].String())
	}
	params, err := parseParamList(args[1])
	if err != nil {
		return nil, err
	}
	env.Define(args[0].SymbolName(), value.NewMacro(params, args[2]))
	return value.Nil, nil
}
