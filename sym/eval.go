// Copyright 2024 The Supercapacitors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// children returns the direct sub-expressions of a node
func children(e Expr) []Expr {
	switch n := e.(type) {
	case *Param:
		return n.Args
	case *Binary:
		return []Expr{n.L, n.R}
	case *Grad:
		return []Expr{n.Arg}
	case *Divergence:
		return []Expr{n.Arg}
	case *BoundaryValue:
		return []Expr{n.Arg}
	case *Concatenation:
		return n.Parts[:]
	case *Broadcast:
		return []Expr{n.Arg}
	}
	return nil
}

// Walk traverses e in preorder, calling visit on every node. Returning false
// from visit skips the node's children.
func Walk(e Expr, visit func(Expr) bool) {
	if !visit(e) {
		return
	}
	for _, c := range children(e) {
		Walk(c, visit)
	}
}

// VarsIn returns the sorted names of all variables referenced by e
func VarsIn(e Expr) (names []string) {
	seen := make(map[string]bool)
	Walk(e, func(n Expr) bool {
		if v, ok := n.(*Variable); ok {
			seen[v.Name] = true
		}
		return true
	})
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// OccursUnderGrad tells whether any of the named variables appears inside a
// gradient somewhere in e
func OccursUnderGrad(e Expr, names ...string) bool {
	wanted := make(map[string]bool)
	for _, n := range names {
		wanted[n] = true
	}
	found := false
	var walk func(Expr, bool)
	walk = func(n Expr, under bool) {
		if g, ok := n.(*Grad); ok {
			walk(g.Arg, true)
			return
		}
		if v, ok := n.(*Variable); ok {
			if under && wanted[v.Name] {
				found = true
			}
			return
		}
		for _, c := range children(n) {
			walk(c, under)
		}
	}
	walk(e, false)
	return found
}

// OccursOnlyUnderGrad tells whether every occurrence of the named variables in
// e sits inside a gradient. A residual with this property constrains the
// variable only up to an additive constant, so a Neumann-only closure leaves
// the system singular.
func OccursOnlyUnderGrad(e Expr, names ...string) bool {
	wanted := make(map[string]bool)
	for _, n := range names {
		wanted[n] = true
	}
	occurs, bare := false, false
	var walk func(Expr, bool)
	walk = func(n Expr, under bool) {
		if g, ok := n.(*Grad); ok {
			walk(g.Arg, true)
			return
		}
		if v, ok := n.(*Variable); ok {
			if wanted[v.Name] {
				occurs = true
				if !under {
					bare = true
				}
			}
			return
		}
		for _, c := range children(n) {
			walk(c, under)
		}
	}
	walk(e, false)
	return occurs && !bare
}

// Env supplies the data needed to evaluate a mesh-free expression: the time,
// values for scalar variables, boundary samples for spatial variables, and a
// resolver for parameter entries (constant or callable, uniformly).
type Env struct {
	Time     float64
	Vars     map[string]float64            // scalar-in-time variable values
	Boundary map[Side]map[string]float64   // per-edge samples of spatial variables
	Params   func(name string, args []float64) (float64, error)
}

// Eval evaluates an expression without a mesh: constants, time, parameters,
// scalar variables, arithmetic, and boundary values of spatial expressions.
// Interior values of spatial fields need the external discretization engine
// and return an error here.
func Eval(e Expr, env *Env) (float64, error) {
	switch n := e.(type) {
	case *Scalar:
		return n.V, nil
	case *Time:
		return env.Time, nil
	case *Variable:
		if n.Dom != nil {
			return 0, chk.Err("cannot evaluate spatial variable %q without discretization", n.Name)
		}
		v, ok := env.Vars[n.Name]
		if !ok {
			return 0, chk.Err("no value given for variable %q", n.Name)
		}
		return v, nil
	case *Param:
		return evalParam(n, env, nil)
	case *Binary:
		return evalBinary(n, env, nil)
	case *BoundaryValue:
		return evalAt(n.Arg, n.S, env)
	}
	return 0, chk.Err("cannot evaluate %q without discretization", e.String())
}

// evalAt evaluates an expression restricted to one edge of its domain
func evalAt(e Expr, s Side, env *Env) (float64, error) {
	switch n := e.(type) {
	case *Scalar:
		return n.V, nil
	case *Time:
		return env.Time, nil
	case *Variable:
		if n.Dom == nil {
			return Eval(n, env)
		}
		edge, ok := env.Boundary[s]
		if !ok {
			return 0, chk.Err("no %s boundary samples given", s.String())
		}
		v, ok := edge[n.Name]
		if !ok {
			return 0, chk.Err("no %s boundary sample given for variable %q", s.String(), n.Name)
		}
		return v, nil
	case *Param:
		return evalParam(n, env, &s)
	case *Binary:
		return evalBinary(n, env, &s)
	case *Broadcast:
		return evalAt(n.Arg, s, env)
	case *Concatenation:
		if s == Left {
			return evalAt(n.Parts[0], s, env)
		}
		return evalAt(n.Parts[2], s, env)
	case *BoundaryValue:
		return evalAt(n.Arg, n.S, env)
	}
	return 0, chk.Err("cannot evaluate %q at a boundary without discretization", e.String())
}

// evalParam resolves a parameter entry, evaluating its arguments first (at a
// boundary when side is given)
func evalParam(n *Param, env *Env, side *Side) (float64, error) {
	if env.Params == nil {
		return 0, chk.Err("no parameter resolver given for %q", n.Name)
	}
	args := make([]float64, len(n.Args))
	for i, a := range n.Args {
		var v float64
		var err error
		if side != nil {
			v, err = evalAt(a, *side, env)
		} else {
			v, err = Eval(a, env)
		}
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return env.Params(n.Name, args)
}

// evalBinary applies an arithmetic operator to evaluated operands
func evalBinary(n *Binary, env *Env, side *Side) (float64, error) {
	ev := func(e Expr) (float64, error) {
		if side != nil {
			return evalAt(e, *side, env)
		}
		return Eval(e, env)
	}
	l, err := ev(n.L)
	if err != nil {
		return 0, err
	}
	r, err := ev(n.R)
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case OpAdd:
		return l + r, nil
	case OpSub:
		return l - r, nil
	case OpMul:
		return l * r, nil
	case OpDiv:
		return l / r, nil
	case OpPow:
		return math.Pow(l, r), nil
	}
	return 0, chk.Err("invalid operator (%d)", int(n.Op))
}
