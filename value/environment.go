// ==============================================================================================
// FILE: value/environment.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: Lexically-scoped variable binding, chained through a parent pointer (spec §3.3/§4.4).
//          Grounded on the teacher's object/environment.go enclosed-environment design.
// ==============================================================================================

package value

import "schemego/lerr"

// Environment is a single scope frame: a table of bindings plus a pointer to
// the enclosing scope. Lookup walks outward; Define always writes to the
// local frame.
type Environment struct {
	table  map[string]*Value
	parent *Environment
}

// NewEnvironment constructs a fresh top-level (parentless) environment.
func NewEnvironment() *Environment {
	return &Environment{table: make(map[string]*Value)}
}

// Child constructs a new scope enclosed by env, the shape every lambda call
// and let-form creates (spec §4.4).
func (env *Environment) Child() *Environment {
	return &Environment{table: make(map[string]*Value), parent: env}
}

// Define binds name to val in env's own frame, shadowing any outer binding
// of the same name.
func (env *Environment) Define(name string, val *Value) {
	env.table[name] = val
}

// Lookup resolves name by walking env and its ancestors. It returns an
// *lerr.Error of Kind Unbound if no frame defines the name.
func (env *Environment) Lookup(name string) (*Value, error) {
	for e := env; e != nil; e = e.parent {
		if v, ok := e.table[name]; ok {
			return v, nil
		}
	}
	return nil, lerr.Unboundf("Variable %s not defined", name)
}
