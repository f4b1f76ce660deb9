// ==============================================================================================
// FILE: value/value.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: The polymorphic value model that is simultaneously the parsed AST and the runtime
//          datum space (spec §3.2). Modeled as a single closed tagged variant rather than an
//          open interface hierarchy, per spec §9's design note: "avoid an open class hierarchy
//          so pattern matching on kind is total and exhaustive."
// ==============================================================================================

package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind discriminates the variant a Value holds.
type Kind uint8

const (
	KindNil Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindSymbol
	KindPair
	KindBuiltin
	KindLambda
	KindMacro
	// KindRational is carried but never produced by the reader and never
	// accepted by an arithmetic builtin — see SPEC_FULL.md §3.1.
	KindRational
)

// Pair is a cons cell. Both Car and Cdr are always non-nil *Value pointers
// (spec §3.2 invariant); the empty list is represented by the Nil singleton,
// never by a nil pointer.
type Pair struct {
	Car *Value
	Cdr *Value
}

// Builtin is a native procedure registered in the root environment.
type Builtin struct {
	Name string
	Fn   func(args []*Value, env *Environment) (*Value, error)
}

// Lambda is a user-defined procedure: parameter names, an ordered body of
// expressions, and the environment captured at its definition site (spec
// §3.2 invariant: lexical scope).
type Lambda struct {
	Name   string
	Params []string
	Body   []*Value
	Env    *Environment
}

// Macro is the minimal fexpr-style macro: raw argument expressions are bound
// to Params in a child of the caller's environment and Body is evaluated
// there to produce a new expression (spec §9).
type Macro struct {
	Params []string
	Body   *Value
}

// Value is the tagged union of every runtime datum and every AST node: there
// is no separate parse tree, the reader builds this same structure (spec §3.2).
type Value struct {
	kind     Kind
	num      float64
	boolean  bool
	str      string // String payload, or Symbol name
	pair     *Pair
	builtin  *Builtin
	lambda   *Lambda
	macro    *Macro
	rational decimal.Decimal
}

// Singletons. Nil, True, and False are shared instances; every other Value
// is allocated fresh (Pairs must be individually mutable by cons-style
// builders).
var (
	Nil   = &Value{kind: KindNil}
	True  = &Value{kind: KindBoolean, boolean: true}
	False = &Value{kind: KindBoolean, boolean: false}
)

// Bool returns the shared True/False singleton for b.
func Bool(b bool) *Value {
	if b {
		return True
	}
	return False
}

// Num constructs a Number.
func Num(n float64) *Value { return &Value{kind: KindNumber, num: n} }

// Str constructs a String.
func Str(s string) *Value { return &Value{kind: KindString, str: s} }

// Sym constructs a Symbol.
func Sym(name string) *Value { return &Value{kind: KindSymbol, str: name} }

// Cons constructs a Pair.
func Cons(car, cdr *Value) *Value {
	return &Value{kind: KindPair, pair: &Pair{Car: car, Cdr: cdr}}
}

// NewBuiltin wraps a native function as a callable Value.
func NewBuiltin(name string, fn func(args []*Value, env *Environment) (*Value, error)) *Value {
	return &Value{kind: KindBuiltin, builtin: &Builtin{Name: name, Fn: fn}}
}

// NewLambda constructs a user-defined procedure closing over env.
func NewLambda(name string, params []string, body []*Value, env *Environment) *Value {
	return &Value{kind: KindLambda, lambda: &Lambda{Name: name, Params: params, Body: body, Env: env}}
}

// NewMacro constructs a fexpr-style macro.
func NewMacro(params []string, body *Value) *Value {
	return &Value{kind: KindMacro, macro: &Macro{Params: params, Body: body}}
}

// NewRational constructs the deliberately-inert Rational variant (SPEC_FULL
// §3.1). No reader syntax produces one and no arithmetic builtin accepts one;
// it exists only to be printed.
func NewRational(d decimal.Decimal) *Value {
	return &Value{kind: KindRational, rational: d}
}

// Kind reports which variant this Value holds.
func (v *Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the empty list.
func (v *Value) IsNil() bool { return v.kind == KindNil }

// IsBoolean, IsNumber, IsString, IsSymbol, IsPair, IsBuiltin, IsLambda,
// IsMacro report the variant directly.
func (v *Value) IsBoolean() bool { return v.kind == KindBoolean }
func (v *Value) IsNumber() bool  { return v.kind == KindNumber }
func (v *Value) IsString() bool  { return v.kind == KindString }
func (v *Value) IsSymbol() bool  { return v.kind == KindSymbol }
func (v *Value) IsPair() bool    { return v.kind == KindPair }
func (v *Value) IsBuiltin() bool { return v.kind == KindBuiltin }
func (v *Value) IsLambda() bool  { return v.kind == KindLambda }
func (v *Value) IsMacro() bool   { return v.kind == KindMacro }

// IsProcedure reports whether v can be applied (builtin or lambda). Macros
// are deliberately excluded — apply rejects macros per spec §9.
func (v *Value) IsProcedure() bool { return v.kind == KindBuiltin || v.kind == KindLambda }

// IsAtom reports whether v is anything other than a Pair.
func (v *Value) IsAtom() bool { return v.kind != KindPair }

// IsSelfEvaluating reports whether eval returns v unchanged (spec §3.2/§4.5).
func (v *Value) IsSelfEvaluating() bool {
	switch v.kind {
	case KindBoolean, KindNumber, KindString, KindBuiltin, KindLambda, KindMacro, KindRational:
		return true
	default:
		return false
	}
}

// IsTruthy reports whether v counts as true in a conditional context. Only
// the Boolean #f is false (spec §3.2).
func (v *Value) IsTruthy() bool {
	return !(v.kind == KindBoolean && !v.boolean)
}

// IsProperList reports whether v is Nil or a Pair whose cdr chain terminates
// in Nil (spec §3.2).
func (v *Value) IsProperList() bool {
	cur := v
	for {
		if cur.IsNil() {
			return true
		}
		if !cur.IsPair() {
			return false
		}
		cur = cur.pair.Cdr
	}
}

// NumberValue returns the underlying float64. Callers must have already
// checked IsNumber.
func (v *Value) NumberValue() float64 { return v.num }

// BooleanValue returns the underlying bool. Callers must have already
// checked IsBoolean.
func (v *Value) BooleanValue() bool { return v.boolean }

// StringValue returns the underlying string. Callers must have already
// checked IsString.
func (v *Value) StringValue() string { return v.str }

// SymbolName returns the underlying symbol name. Callers must have already
// checked IsSymbol.
func (v *Value) SymbolName() string { return v.str }

// Pair returns the underlying Pair. Callers must have already checked
// IsPair.
func (v *Value) Pair() *Pair { return v.pair }

// Car and Cdr return the components of a Pair. Callers must have already
// checked IsPair.
func (v *Value) Car() *Value { return v.pair.Car }
func (v *Value) Cdr() *Value { return v.pair.Cdr }

// Builtin returns the underlying *Builtin. Callers must have already
// checked IsBuiltin.
func (v *Value) Builtin() *Builtin { return v.builtin }

// Lambda returns the underlying *Lambda. Callers must have already checked
// IsLambda.
func (v *Value) Lambda() *Lambda { return v.lambda }

// Macro returns the underlying *Macro. Callers must have already checked
// IsMacro.
func (v *Value) Macro() *Macro { return v.macro }

// List builds a proper list from the given elements, terminated in Nil.
func List(elements ...*Value) *Value {
	result := Nil
	for i := len(elements) - 1; i >= 0; i-- {
		result = Cons(elements[i], result)
	}
	return result
}

// ToSlice flattens a proper list into a slice of its elements. It returns an
// error if v is not Nil or a proper-list Pair chain (spec §3.2, mirroring
// the original source's Value::toVector).
func (v *Value) ToSlice() ([]*Value, error) {
	var out []*Value
	cur := v
	for {
		if cur.IsNil() {
			return out, nil
		}
		if !cur.IsPair() {
			return nil, fmt.Errorf("cannot convert improper list to vector: %s", cur.String())
		}
		out = append(out, cur.pair.Car)
		cur = cur.pair.Cdr
	}
}

// Eq implements eq?: identity for pairs/procedures/symbols, value equality
// for numbers within 1e-9 (spec §3.2).
func (v *Value) Eq(other *Value) bool {
	if v == other {
		return true
	}
	if v.kind == KindNumber && other.kind == KindNumber {
		return math.Abs(v.num-other.num) < 1e-9
	}
	return false
}

// Equal implements equal?: structural recursive equality (spec §3.2).
func (v *Value) Equal(other *Value) bool {
	if v == other {
		return true
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBoolean:
		return v.boolean == other.boolean
	case KindNumber:
		return math.Abs(v.num-other.num) < 1e-9
	case KindString:
		return v.str == other.str
	case KindSymbol:
		return v.str == other.str
	case KindPair:
		return v.pair.Car.Equal(other.pair.Car) && v.pair.Cdr.Equal(other.pair.Cdr)
	default:
		return false
	}
}

// String renders the canonical printed form of v (spec §4.3).
func (v *Value) String() string {
	switch v.kind {
	case KindNil:
		return "()"
	case KindBoolean:
		if v.boolean {
			return "#t"
		}
		return "#f"
	case KindNumber:
		return formatNumber(v.num)
	case KindString:
		return quoteString(v.str)
	case KindSymbol:
		return v.str
	case KindPair:
		return v.printPair()
	case KindBuiltin, KindLambda:
		return "#<procedure>"
	case KindMacro:
		return "#<macro>"
	case KindRational:
		return v.rational.String()
	default:
		return "#<unknown>"
	}
}

// Display renders v the way the display/displayln builtins do: a String
// prints without surrounding quotes; every other value prints canonically
// (spec §4.3).
func (v *Value) Display() string {
	if v.kind == KindString {
		return v.str
	}
	return v.String()
}

func (v *Value) printPair() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(v.pair.Car.String())
	cur := v.pair.Cdr
	for {
		if cur.IsNil() {
			b.WriteByte(')')
			return b.String()
		}
		if cur.IsPair() {
			b.WriteByte(' ')
			b.WriteString(cur.pair.Car.String())
			cur = cur.pair.Cdr
			continue
		}
		b.WriteString(" . ")
		b.WriteString(cur.String())
		b.WriteByte(')')
		return b.String()
	}
}

func formatNumber(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
