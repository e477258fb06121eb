// Copyright 2024 The Supercapacitors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements the equation assembler: it declares the state
// variables of a supercapacitor model, attaches their governing equations,
// boundary and initial conditions, and validates the closure of the resulting
// differential-algebraic system before handing it to an external
// discretization/solver engine
package mdl

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mmsg-warwick/supercapacitors/prm"
	"github.com/mmsg-warwick/supercapacitors/sym"
)

// Role tells whether a state variable is governed by a time derivative or by
// an algebraic residual constraint
type Role int

// variable roles
const (
	Differential Role = iota
	Algebraic
)

// String returns the role name
func (o Role) String() string {
	if o == Differential {
		return "differential"
	}
	return "algebraic"
}

// BCKind is the type of a boundary condition
type BCKind int

// boundary condition kinds
const (
	Dirichlet BCKind = iota // fixes the variable value at the edge
	Neumann                 // fixes the spatial flux at the edge
)

// String returns the kind name
func (o BCKind) String() string {
	if o == Dirichlet {
		return "Dirichlet"
	}
	return "Neumann"
}

// StateVariable is one unknown of the solved system. Its name doubles as the
// output-channel key. Symbol is the node equations reference it by: a plain
// variable, or a concatenation of three per-region component variables for a
// whole-cell field. Read-only after assembly.
type StateVariable struct {
	Name   string
	Role   Role
	Dom    []sym.Region
	Symbol sym.Expr
}

// Components returns the variable names the engine must allocate for this
// state: the per-region component names for a concatenated field, or the
// state name itself
func (o *StateVariable) Components() []string {
	if cat, ok := o.Symbol.(*sym.Concatenation); ok {
		names := make([]string, 3)
		for i, part := range cat.Parts {
			names[i] = part.(*sym.Variable).Name
		}
		return names
	}
	return []string{o.Name}
}

// BoundaryCondition closes a spatial variable at one domain edge
type BoundaryCondition struct {
	Value sym.Expr
	Kind  BCKind
}

// ModelClosureError indicates that an assembled system is not well posed:
// missing initial condition, wrong boundary-condition count, duplicate state
// variable name, or a singular Neumann-only closure
type ModelClosureError struct {
	Var    string // offending variable (or output) name
	Reason string
}

// Error returns the error message
func (o *ModelClosureError) Error() string {
	return io.Sf("cannot close model: variable %q: %s", o.Var, o.Reason)
}

// closurePanic raises a *ModelClosureError during assembly; New recovers it
func closurePanic(name, reason string, args ...interface{}) {
	panic(&ModelClosureError{Var: name, Reason: io.Sf(reason, args...)})
}

// Model is a complete, immutable description of one supercapacitor DAE
// system: state variables with roles and domains, equations (rhs for
// differential variables, residual for algebraic ones), boundary and initial
// conditions, and derived output expressions. External engines only read it.
type Model struct {
	name      string
	vars      []*StateVariable
	index     map[string]*StateVariable
	eqs       map[string]sym.Expr
	bcs       map[string]map[sym.Side]*BoundaryCondition
	ics       map[string]sym.Expr
	outputs   map[string]sym.Expr
	plotVars  []string
	condScale sym.Expr
}

// newModel starts an empty model
func newModel(name string) *Model {
	return &Model{
		name:    name,
		index:   make(map[string]*StateVariable),
		eqs:     make(map[string]sym.Expr),
		bcs:     make(map[string]map[sym.Side]*BoundaryCondition),
		ics:     make(map[string]sym.Expr),
		outputs: make(map[string]sym.Expr),
	}
}

// register adds a state variable, enforcing global name uniqueness
func (o *Model) register(name string, role Role, dom []sym.Region, symbol sym.Expr) {
	if _, ok := o.index[name]; ok {
		closurePanic(name, "duplicate state variable name")
	}
	v := &StateVariable{Name: name, Role: role, Dom: dom, Symbol: symbol}
	o.vars = append(o.vars, v)
	o.index[name] = v
}

// scalarVar declares a state variable that depends on time only
func (o *Model) scalarVar(name string, role Role) *sym.Variable {
	v := sym.NewVariable(name)
	o.register(name, role, nil, v)
	return v
}

// regionVar declares a state variable over one region
func (o *Model) regionVar(name string, role Role, r sym.Region) *sym.Variable {
	v := sym.NewVariable(name, r)
	o.register(name, role, []sym.Region{r}, v)
	return v
}

// fieldVar declares a whole-cell state variable as the concatenation of three
// per-region components, named compNames in cell order
func (o *Model) fieldVar(name string, role Role, compNames [3]string) *sym.Concatenation {
	regions := sym.Regions()
	parts := make([]sym.Expr, 3)
	for i, comp := range compNames {
		parts[i] = sym.NewVariable(comp, regions[i])
	}
	cat, err := sym.Concatenate(parts[0], parts[1], parts[2])
	if err != nil {
		panic(err)
	}
	o.register(name, role, sym.WholeCell(), cat)
	return cat
}

// setEquation attaches the governing equation of a state variable: the rhs of
// d(var)/dt for a differential variable, the residual for an algebraic one
func (o *Model) setEquation(name string, role Role, e sym.Expr) {
	v, ok := o.index[name]
	if !ok {
		closurePanic(name, "equation given for undeclared variable")
	}
	if v.Role != role {
		closurePanic(name, "%s equation given for %s variable", role.String(), v.Role.String())
	}
	if _, ok := o.eqs[name]; ok {
		closurePanic(name, "duplicate equation")
	}
	if sym.DomainString(e.Domain()) != sym.DomainString(v.Dom) {
		panic(&sym.DomainMismatchError{
			Op:   io.Sf("equation of %q", name),
			Got:  sym.DomainString(e.Domain()),
			Want: sym.DomainString(v.Dom),
		})
	}
	o.eqs[name] = e
}

// setBC attaches one boundary condition to a spatial state variable
func (o *Model) setBC(name string, s sym.Side, kind BCKind, value sym.Expr) {
	v, ok := o.index[name]
	if !ok {
		closurePanic(name, "boundary condition given for undeclared variable")
	}
	if v.Dom == nil {
		closurePanic(name, "boundary condition given for variable without spatial domain")
	}
	if _, ok := o.bcs[name][s]; ok {
		closurePanic(name, "duplicate %s boundary condition", s.String())
	}
	if o.bcs[name] == nil {
		o.bcs[name] = make(map[sym.Side]*BoundaryCondition)
	}
	o.bcs[name][s] = &BoundaryCondition{Value: value, Kind: kind}
}

// setIC attaches the initial condition of a state variable
func (o *Model) setIC(name string, e sym.Expr) {
	if _, ok := o.index[name]; !ok {
		closurePanic(name, "initial condition given for undeclared variable")
	}
	if _, ok := o.ics[name]; ok {
		closurePanic(name, "duplicate initial condition")
	}
	o.ics[name] = e
}

// addOutput registers a derived output expression under a unique name
func (o *Model) addOutput(name string, e sym.Expr) {
	if _, ok := o.outputs[name]; ok {
		closurePanic(name, "duplicate output name")
	}
	o.outputs[name] = e
}

// setPlotVars records the ordered default visualization channels; every name
// must be a registered output
func (o *Model) setPlotVars(names ...string) {
	for _, name := range names {
		if _, ok := o.outputs[name]; !ok {
			closurePanic(name, "default plot variable is not a registered output")
		}
	}
	o.plotVars = names
}

// checkClosure validates the assembled system: every differential variable
// has exactly one equation and one initial condition; every spatial variable
// whose equation differentiates it in space has both boundary conditions;
// algebraic spatial variables additionally reject a Neumann-only closure when
// their residual is purely flux-conservative
func (o *Model) checkClosure() error {
	for _, v := range o.vars {
		eq, ok := o.eqs[v.Name]
		if !ok {
			return &ModelClosureError{Var: v.Name, Reason: "missing equation"}
		}
		if v.Role == Differential {
			if _, ok := o.ics[v.Name]; !ok {
				return &ModelClosureError{Var: v.Name, Reason: "missing initial condition"}
			}
		}
		if v.Dom == nil {
			continue
		}
		names := v.Components()
		needBCs := v.Role == Algebraic || sym.OccursUnderGrad(eq, names...)
		if !needBCs {
			continue
		}
		left, lok := o.bcs[v.Name][sym.Left]
		right, rok := o.bcs[v.Name][sym.Right]
		if !lok || !rok {
			return &ModelClosureError{Var: v.Name,
				Reason: io.Sf("wrong boundary condition count: need left and right, have %d", len(o.bcs[v.Name]))}
		}
		if v.Role == Algebraic && sym.OccursOnlyUnderGrad(eq, names...) {
			if left.Kind == Neumann && right.Kind == Neumann {
				return &ModelClosureError{Var: v.Name,
					Reason: "Neumann-only boundary conditions leave a flux-conservative residual singular"}
			}
		}
	}
	return nil
}

// Name returns the model name
func (o *Model) Name() string { return o.name }

// Vars returns the state variables in declaration order
func (o *Model) Vars() []*StateVariable {
	out := make([]*StateVariable, len(o.vars))
	copy(out, o.vars)
	return out
}

// Var returns one state variable by name
func (o *Model) Var(name string) (*StateVariable, bool) {
	v, ok := o.index[name]
	return v, ok
}

// Equation returns the governing equation of a state variable: the rhs of
// d(var)/dt for a differential variable, the residual for an algebraic one
func (o *Model) Equation(name string) (sym.Expr, bool) {
	e, ok := o.eqs[name]
	return e, ok
}

// BoundCond returns the boundary condition of a variable at one edge
func (o *Model) BoundCond(name string, s sym.Side) (*BoundaryCondition, bool) {
	bc, ok := o.bcs[name][s]
	return bc, ok
}

// InitCond returns the initial condition of a state variable
func (o *Model) InitCond(name string) (sym.Expr, bool) {
	e, ok := o.ics[name]
	return e, ok
}

// ConditioningScale returns the factor folded into the electrolyte-potential
// residual for numerical conditioning (nil when the model applies none); an
// engine may divide it back out
func (o *Model) ConditioningScale() sym.Expr { return o.condScale }

// String prints a summary of the system
func (o *Model) String() string {
	l := io.Sf("model %q\n", o.name)
	for _, v := range o.vars {
		nbcs := len(o.bcs[v.Name])
		l += io.Sf("  %-52q %-12s over %s (%d bcs)\n", v.Name, v.Role.String(), sym.DomainString(v.Dom), nbcs)
	}
	l += io.Sf("  outputs: %d, default plots: %d", len(o.outputs), len(o.plotVars))
	return l
}

// allocators holds all available models
var allocators = map[string]func(reg *prm.Registry) *Model{}

// New assembles the named model against a parameter registry and validates
// its closure. All construction failures (unknown parameters, domain
// mismatches, closure violations) surface here; nothing is deferred to the
// solving stage.
func New(name string, reg *prm.Registry) (model *Model, err error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mdl' database", name)
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				model, err = nil, e
				return
			}
			panic(r)
		}
	}()
	model = alloc(reg)
	if err = model.checkClosure(); err != nil {
		model = nil
	}
	return
}

// Models returns the names of all registered models, sorted
func Models() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
