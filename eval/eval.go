// ==============================================================================================
// FILE: eval/eval.go
// ==============================================================================================
// PACKAGE: eval
// PURPOSE: The runtime execution engine. Walks Values directly — there is no separate AST, so
//          Eval dispatches on Value.Kind() the way the teacher's evaluator dispatches on AST node
//          type — and produces side effects (I/O) or results (Values).
// ==============================================================================================

package eval

import (
	"fmt"

	"schemego/lerr"
	"schemego/value"
)

// Eval is the heart of the interpreter (spec §4.5).
func Eval(expr *value.Value, env *value.Environment) (*value.Value, error) {
	switch expr.Kind() {
	case value.KindSymbol:
		return env.Lookup(expr.SymbolName())

	case value.KindNil:
		return value.Nil, nil

	case value.KindPair:
		return evalPair(expr, env)

	default:
		if expr.IsSelfEvaluating() {
			return expr, nil
		}
		return nil, lerr.Typef("cannot evaluate %s", expr.String())
	}
}

// evalPair handles every application form (op . args) (spec §4.5 rule 4).
func evalPair(expr *value.Value, env *value.Environment) (*value.Value, error) {
	elements, err := expr.ToSlice()
	if err != nil {
		return nil, lerr.Syntaxf("improper application form: %s", expr.String())
	}
	if len(elements) == 0 {
		return nil, lerr.Typef("cannot evaluate %s", expr.String())
	}

	op := elements[0]
	args := elements[1:]

	if op.IsSymbol() {
		if form, ok := specialForms[op.SymbolName()]; ok {
			return form(args, env)
		}
	}

	proc, err := Eval(op, env)
	if err != nil {
		return nil, err
	}

	if proc.IsMacro() {
		expanded, err := expandMacro(proc, args, env)
		if err != nil {
			return nil, err
		}
		return Eval(expanded, env)
	}

	evaluated, err := evalList(args, env)
	if err != nil {
		return nil, err
	}
	return Apply(proc, evaluated, env)
}

// Apply invokes proc with already-evaluated args (spec §4.5's apply()). env
// is the environment in effect at the call site; builtins that need to
// evaluate further expressions (`eval`, `apply`) receive it verbatim.
func Apply(proc *value.Value, args []*value.Value, env *value.Environment) (result *value.Value, err error) {
	switch proc.Kind() {
	case value.KindBuiltin:
		builtin := proc.Builtin()
		defer func() {
			if r := recover(); r != nil {
				result, err = nil, wrapBuiltinError(builtin.Name, fmt.Errorf("panic: %v", r))
			}
		}()
		result, err = builtin.Fn(args, env)
		if err != nil {
			return nil, wrapBuiltinError(builtin.Name, err)
		}
		return result, nil

	case value.KindLambda:
		return applyLambda(proc.Lambda(), args)

	default:
		return nil, lerr.Applyf("cannot apply non-procedure: %s", proc.String())
	}
}

func applyLambda(lambda *value.Lambda, args []*value.Value) (*value.Value, error) {
	if len(args) != len(lambda.Params) {
		return nil, lerr.Arityf(
			"procedure %s expects %d argument(s), got %d",
			procDisplayName(lambda.Name), len(lambda.Params), len(args),
		)
	}

	callEnv := lambda.Env.Child()
	for i, name := range lambda.Params {
		callEnv.Define(name, args[i])
	}

	if len(lambda.Body) == 0 {
		return value.Nil, nil
	}

	var result *value.Value
	var err error
	for _, expr := range lambda.Body {
		result, err = Eval(expr, callEnv)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func procDisplayName(name string) string {
	if name == "" {
		return "#<procedure>"
	}
	return name
}

// evalList evaluates a proper list of argument expressions left-to-right
// (spec §4.5's eval_list()).
func evalList(exprs []*value.Value, env *value.Environment) ([]*value.Value, error) {
	out := make([]*value.Value, len(exprs))
	for i, e := range exprs {
		v, err := Eval(e, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// wrapBuiltinError wraps a recovered host-level failure from inside a
// builtin into an interpreter error naming the procedure (spec §7
// propagation policy), while passing interpreter errors through unchanged.
func wrapBuiltinError(name string, err error) error {
	if _, ok := err.(*lerr.Error); ok {
		return err
	}
	return lerr.Wrap(lerr.Apply, err, "builtin %q failed", name)
}

func expandMacro(macroVal *value.Value, args []*value.Value, callerEnv *value.Environment) (*value.Value, error) {
	macro := macroVal.Macro()
	if len(args) != len(macro.Params) {
		return nil, lerr.Arityf("macro expects %d argument(s), got %d", len(macro.Params), len(args))
	}
	expandEnv := callerEnv.Child()
	for i, name := range macro.Params {
		expandEnv.Define(name, args[i])
	}
	return Eval(macro.Body, expandEnv)
}
