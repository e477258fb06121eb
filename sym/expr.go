// Copyright 2024 The Supercapacitors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import "github.com/cpmech/gosl/io"

// Expr is one node of an expression tree. The set of node kinds is closed:
// Scalar, Time, Variable, Param, Binary, Grad, Divergence, BoundaryValue,
// Concatenation and Broadcast. Engines discretize trees by switching on the
// concrete type; Walk provides the traversal.
type Expr interface {
	Domain() []Region // nil means scalar in space
	String() string
}

// Op is a binary arithmetic operator
type Op int

// binary operators
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// String returns the operator symbol
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	}
	return io.Sf("invalid op (%d)", int(o))
}

// Side identifies a domain edge
type Side int

// domain edges
const (
	Left Side = iota
	Right
)

// String returns the side name
func (o Side) String() string {
	if o == Left {
		return "left"
	}
	return "right"
}

// Scalar is a constant value
type Scalar struct {
	V float64
}

// NewScalar returns a constant node
func NewScalar(v float64) *Scalar { return &Scalar{V: v} }

// Domain of a constant is scalar
func (o *Scalar) Domain() []Region { return nil }

// String returns the value
func (o *Scalar) String() string { return io.Sf("%g", o.V) }

// Time is the independent time variable
type Time struct{}

// Domain of time is scalar
func (o *Time) Domain() []Region { return nil }

// String returns "t"
func (o *Time) String() string { return "t" }

// Variable references a state variable (or one region component of a
// concatenated state variable) by name
type Variable struct {
	Name string
	Dom  []Region
}

// NewVariable returns a variable node over the given regions (none for a
// variable that depends on time only)
func NewVariable(name string, regions ...Region) *Variable {
	return &Variable{Name: name, Dom: regions}
}

// Domain returns the regions this variable lives on
func (o *Variable) Domain() []Region { return o.Dom }

// String returns the variable name
func (o *Variable) String() string { return io.Sf("{%s}", o.Name) }

// Param references an entry of the active parameter set. Args carry the local
// field values a callable entry is applied to (e.g. concentration and
// temperature for a conductivity function); constants ignore them. Both kinds
// are represented uniformly so the registry can resolve either.
type Param struct {
	Name string
	Args []Expr
	dom  []Region
}

// NewParam returns a parameter node, optionally applied to field arguments.
// All non-scalar arguments must share one domain; the node takes that domain.
func NewParam(name string, args ...Expr) *Param {
	var dom []Region
	for _, a := range args {
		d := a.Domain()
		if d == nil {
			continue
		}
		if dom == nil {
			dom = d
			continue
		}
		if !sameDomain(dom, d) {
			domainPanic(io.Sf("parameter %q", name), DomainString(d), DomainString(dom))
		}
	}
	return &Param{Name: name, Args: args, dom: dom}
}

// Domain returns the common domain of the arguments (nil for constants)
func (o *Param) Domain() []Region { return o.dom }

// String returns the parameter name and its arguments
func (o *Param) String() string {
	if len(o.Args) == 0 {
		return io.Sf("'%s'", o.Name)
	}
	l := ""
	for i, a := range o.Args {
		if i > 0 {
			l += ", "
		}
		l += a.String()
	}
	return io.Sf("'%s'(%s)", o.Name, l)
}

// Binary combines two expressions with an arithmetic operator
type Binary struct {
	Op   Op
	L, R Expr
	dom  []Region
}

// newBinary builds a binary node, checking domain compatibility: a scalar
// combines with anything; two fields must share the same domain
func newBinary(op Op, l, r Expr) *Binary {
	dl, dr := l.Domain(), r.Domain()
	dom := dl
	switch {
	case dl == nil:
		dom = dr
	case dr == nil:
		dom = dl
	case !sameDomain(dl, dr):
		domainPanic(op.String(), DomainString(dl)+" vs "+DomainString(dr), "equal or scalar operands")
	}
	return &Binary{Op: op, L: l, R: r, dom: dom}
}

// Add returns l + r
func Add(l, r Expr) Expr { return newBinary(OpAdd, l, r) }

// Sub returns l - r
func Sub(l, r Expr) Expr { return newBinary(OpSub, l, r) }

// Mul returns l * r
func Mul(l, r Expr) Expr { return newBinary(OpMul, l, r) }

// Div returns l / r
func Div(l, r Expr) Expr { return newBinary(OpDiv, l, r) }

// Pow returns l ^ r
func Pow(l, r Expr) Expr { return newBinary(OpPow, l, r) }

// Neg returns -e
func Neg(e Expr) Expr { return newBinary(OpMul, NewScalar(-1), e) }

// Domain returns the combined domain
func (o *Binary) Domain() []Region { return o.dom }

// String returns the infix form
func (o *Binary) String() string {
	return io.Sf("(%s %s %s)", o.L.String(), o.Op.String(), o.R.String())
}

// Grad is the spatial gradient of a field
type Grad struct {
	Arg Expr
}

// GradOf returns grad(e); e must be a spatial field
func GradOf(e Expr) *Grad {
	if e.Domain() == nil {
		domainPanic("grad", "scalar", "spatial field")
	}
	return &Grad{Arg: e}
}

// Domain is preserved by the gradient
func (o *Grad) Domain() []Region { return o.Arg.Domain() }

// String returns grad(...)
func (o *Grad) String() string { return io.Sf("grad(%s)", o.Arg.String()) }

// Divergence is the spatial divergence of a flux field
type Divergence struct {
	Arg Expr
}

// DivergenceOf returns div(e); e must be a spatial field
func DivergenceOf(e Expr) *Divergence {
	if e.Domain() == nil {
		domainPanic("div", "scalar", "spatial field")
	}
	return &Divergence{Arg: e}
}

// Domain is preserved by the divergence
func (o *Divergence) Domain() []Region { return o.Arg.Domain() }

// String returns div(...)
func (o *Divergence) String() string { return io.Sf("div(%s)", o.Arg.String()) }

// BoundaryValue samples a field at one edge of its domain
type BoundaryValue struct {
	Arg Expr
	S   Side
}

// BoundaryValueOf returns the value of e at the given edge. Sampling a
// spatially constant expression is the expression itself.
func BoundaryValueOf(e Expr, s Side) Expr {
	if e.Domain() == nil {
		return e
	}
	return &BoundaryValue{Arg: e, S: s}
}

// Domain of a boundary sample is scalar
func (o *BoundaryValue) Domain() []Region { return nil }

// String returns boundary_value(..., side)
func (o *BoundaryValue) String() string {
	return io.Sf("boundary_value(%s, %s)", o.Arg.String(), o.S.String())
}

// Concatenation joins three per-region fields into one whole-cell field,
// negative electrode first, then separator, then positive electrode
type Concatenation struct {
	Parts [3]Expr
}

// Concatenate joins the fields a, b, c defined over the negative electrode,
// separator and positive electrode respectively. Supplying parts out of order
// or over unexpected domains fails with a *DomainMismatchError.
func Concatenate(a, b, c Expr) (*Concatenation, error) {
	parts := [3]Expr{a, b, c}
	for i, r := range Regions() {
		d := parts[i].Domain()
		if len(d) != 1 || d[0] != r {
			return nil, &DomainMismatchError{
				Op:   "concatenation",
				Got:  DomainString(d),
				Want: io.Sf("part %d over [%s]", i, r.String()),
			}
		}
	}
	return &Concatenation{Parts: parts}, nil
}

// Domain of a concatenation is the whole cell
func (o *Concatenation) Domain() []Region { return WholeCell() }

// Part returns the restriction of the concatenated field to one region
func (o *Concatenation) Part(r Region) Expr { return o.Parts[int(r)] }

// String returns concat(...; ...; ...)
func (o *Concatenation) String() string {
	return io.Sf("concat(%s; %s; %s)", o.Parts[0].String(), o.Parts[1].String(), o.Parts[2].String())
}

// Broadcast promotes a spatially constant expression to a field over one
// region, for elementwise arithmetic with region-indexed fields. Purely
// symbolic: the engine performs the numeric replication.
type Broadcast struct {
	Arg Expr
	R   Region
}

// NewBroadcast promotes the scalar e to a field over region r; e must not
// already be a field
func NewBroadcast(e Expr, r Region) (*Broadcast, error) {
	if d := e.Domain(); d != nil {
		return nil, &DomainMismatchError{
			Op:   "broadcast",
			Got:  DomainString(d),
			Want: "scalar",
		}
	}
	return &Broadcast{Arg: e, R: r}, nil
}

// Domain of a broadcast is its target region
func (o *Broadcast) Domain() []Region { return []Region{o.R} }

// String returns broadcast(..., region)
func (o *Broadcast) String() string {
	return io.Sf("broadcast(%s, %s)", o.Arg.String(), o.R.String())
}
