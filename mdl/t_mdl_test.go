// Copyright 2024 The Supercapacitors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mmsg-warwick/supercapacitors/inp"
	"github.com/mmsg-warwick/supercapacitors/prm"
	"github.com/mmsg-warwick/supercapacitors/sym"
)

// capture runs f and returns the typed error it panics with
func capture(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(error)
		}
	}()
	f()
	return
}

func loadIamrod(tst *testing.T) *prm.Registry {
	set, err := inp.Load("Iamrod2024")
	if err != nil {
		tst.Fatalf("load failed: %v\n", err)
	}
	return prm.NewRegistry(set)
}

func Test_closure01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("closure01. duplicate names and misplaced conditions")

	m := newModel("test")
	m.scalarVar("Discharge capacity [A.h]", Differential)
	err := capture(func() { m.scalarVar("Discharge capacity [A.h]", Differential) })
	if err == nil {
		tst.Errorf("duplicate state variable name must fail\n")
		return
	}
	if _, ok := err.(*ModelClosureError); !ok {
		tst.Errorf("wrong error type: %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)

	// boundary conditions make no sense on a variable without spatial domain
	err = capture(func() {
		m.setBC("Discharge capacity [A.h]", sym.Left, Neumann, sym.NewScalar(0))
	})
	if err == nil {
		tst.Errorf("boundary condition on a scalar variable must fail\n")
		return
	}

	// equations for undeclared variables are rejected immediately
	err = capture(func() { m.setEquation("Porosity", Differential, sym.NewScalar(0)) })
	if err == nil {
		tst.Errorf("equation for undeclared variable must fail\n")
	}
}

func Test_closure02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("closure02. missing pieces are caught before handover")

	// missing equation
	m := newModel("test")
	q := m.scalarVar("q", Differential)
	err := m.checkClosure()
	if err == nil {
		tst.Errorf("missing equation must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// missing initial condition
	m.setEquation(q.Name, Differential, sym.NewScalar(1))
	err = m.checkClosure()
	cerr, ok := err.(*ModelClosureError)
	if !ok {
		tst.Errorf("wrong error type: %v\n", err)
		return
	}
	chk.String(tst, cerr.Var, "q")
	io.Pforan("err = %v\n", err)

	// complete
	m.setIC(q.Name, sym.NewScalar(0))
	if err = m.checkClosure(); err != nil {
		tst.Errorf("closed system reported as open: %v\n", err)
	}
}

func Test_closure03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("closure03. boundary-condition count for spatial variables")

	m := newModel("test")
	v := m.regionVar("u", Differential, sym.Separator)
	m.setEquation(v.Name, Differential, sym.DivergenceOf(sym.GradOf(v)))
	m.setIC(v.Name, sym.NewScalar(0))

	// the equation differentiates u in space: both edges must be closed
	err := m.checkClosure()
	if err == nil {
		tst.Errorf("missing boundary conditions must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	m.setBC(v.Name, sym.Left, Neumann, sym.NewScalar(0))
	if err = m.checkClosure(); err == nil {
		tst.Errorf("one boundary condition is not enough\n")
		return
	}

	m.setBC(v.Name, sym.Right, Neumann, sym.NewScalar(0))
	if err = m.checkClosure(); err != nil {
		tst.Errorf("closed system reported as open: %v\n", err)
	}

	// duplicates are rejected at assembly
	err = capture(func() { m.setBC(v.Name, sym.Right, Neumann, sym.NewScalar(0)) })
	if err == nil {
		tst.Errorf("duplicate boundary condition must fail\n")
	}
}

func Test_closure04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("closure04. Neumann-only closure of a flux-conservative residual")

	build := func(leftKind BCKind) *Model {
		m := newModel("test")
		phi := m.fieldVar("phi", Algebraic, [3]string{"phi_n", "phi_s", "phi_p"})
		m.setEquation("phi", Algebraic, sym.DivergenceOf(sym.Neg(sym.GradOf(phi))))
		m.setBC("phi", sym.Left, leftKind, sym.NewScalar(0))
		m.setBC("phi", sym.Right, Neumann, sym.NewScalar(0))
		return m
	}

	// defined only up to an additive constant: singular
	err := build(Neumann).checkClosure()
	if err == nil {
		tst.Errorf("Neumann-only closure must fail\n")
		return
	}
	if _, ok := err.(*ModelClosureError); !ok {
		tst.Errorf("wrong error type: %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)

	// pinning one face makes it well posed
	if err = build(Dirichlet).checkClosure(); err != nil {
		tst.Errorf("pinned system reported as open: %v\n", err)
	}
}

func Test_new01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("new01. model database")

	chk.Strings(tst, "models", Models(), []string{"VerbruggeLiu"})

	_, err := New("Newman1975", loadIamrod(tst))
	if err == nil {
		tst.Errorf("unknown model name must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_new02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("new02. construction failures surface typed errors")

	// a set missing most entries: assembly must fail at the first lookup,
	// without handing back a partial model
	set := inp.NewSet("empty", "supercapacitor", nil, nil)
	model, err := New("VerbruggeLiu", prm.NewRegistry(set))
	if model != nil {
		tst.Errorf("failed construction must not return a partial model\n")
		return
	}
	if _, ok := err.(*inp.UnknownParameterError); !ok {
		tst.Errorf("wrong error type: %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)
}
