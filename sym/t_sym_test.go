// Copyright 2024 The Supercapacitors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
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

func Test_domain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain01. regions and ordering")

	chk.String(tst, NegativeElectrode.String(), "negative electrode")
	chk.String(tst, Separator.String(), "separator")
	chk.String(tst, PositiveElectrode.String(), "positive electrode")

	regions := Regions()
	if len(regions) != 3 {
		tst.Errorf("wrong number of regions: %d\n", len(regions))
		return
	}
	for i, r := range []Region{NegativeElectrode, Separator, PositiveElectrode} {
		if regions[i] != r {
			tst.Errorf("region %d out of order: %v\n", i, regions[i])
		}
	}

	chk.String(tst, DomainString(nil), "scalar")
	chk.String(tst, DomainString(WholeCell()), "[negative electrode, separator, positive electrode]")
}

func Test_concat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("concat01. concatenation contract")

	a := NewVariable("a", NegativeElectrode)
	b := NewVariable("b", Separator)
	c := NewVariable("c", PositiveElectrode)

	field, err := Concatenate(a, b, c)
	if err != nil {
		tst.Errorf("concatenate failed: %v\n", err)
		return
	}
	chk.String(tst, DomainString(field.Domain()), DomainString(WholeCell()))

	// restriction to each sub-domain equals the corresponding input
	if field.Part(NegativeElectrode) != Expr(a) {
		tst.Errorf("negative electrode restriction is not the input field\n")
	}
	if field.Part(Separator) != Expr(b) {
		tst.Errorf("separator restriction is not the input field\n")
	}
	if field.Part(PositiveElectrode) != Expr(c) {
		tst.Errorf("positive electrode restriction is not the input field\n")
	}

	// out of order
	_, err = Concatenate(b, a, c)
	if err == nil {
		tst.Errorf("out-of-order concatenation must fail\n")
		return
	}
	if _, ok := err.(*DomainMismatchError); !ok {
		tst.Errorf("wrong error type: %v\n", err)
	}
	io.Pforan("err = %v\n", err)

	// wrong domain
	_, err = Concatenate(a, NewVariable("w"), c)
	if err == nil {
		tst.Errorf("scalar part must fail\n")
	}
}

func Test_binary01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("binary01. domain algebra of arithmetic")

	s := NewScalar(2)
	fn := NewVariable("f", NegativeElectrode)
	fs := NewVariable("g", Separator)

	// scalar with field takes the field domain
	e := Mul(s, fn)
	chk.String(tst, DomainString(e.Domain()), "[negative electrode]")
	e = Add(fn, s)
	chk.String(tst, DomainString(e.Domain()), "[negative electrode]")

	// fields over different regions must not combine elementwise
	err := capture(func() { Add(fn, fs) })
	if err == nil {
		tst.Errorf("mixed-domain addition must fail\n")
		return
	}
	if _, ok := err.(*DomainMismatchError); !ok {
		tst.Errorf("wrong error type: %v\n", err)
	}
	io.Pforan("err = %v\n", err)
}

func Test_broadcast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("broadcast01. scalar promotion")

	b, err := NewBroadcast(NewScalar(0.67), Separator)
	if err != nil {
		tst.Errorf("broadcast failed: %v\n", err)
		return
	}
	chk.String(tst, DomainString(b.Domain()), "[separator]")

	// broadcasting a field is a mismatch
	_, err = NewBroadcast(NewVariable("f", Separator), Separator)
	if err == nil {
		tst.Errorf("broadcasting a field must fail\n")
		return
	}
	if _, ok := err.(*DomainMismatchError); !ok {
		tst.Errorf("wrong error type: %v\n", err)
	}

	// broadcast fields combine with same-region fields
	f := NewVariable("f", Separator)
	e := Pow(b, NewScalar(1.5))
	chk.String(tst, DomainString(Mul(e, f).Domain()), "[separator]")
}

func Test_grad01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grad01. spatial operators and occurrence checks")

	err := capture(func() { GradOf(NewScalar(1)) })
	if err == nil {
		tst.Errorf("gradient of a scalar must fail\n")
	}

	v := NewVariable("v", NegativeElectrode)
	flux := Mul(NewScalar(-1), GradOf(v))
	residual := DivergenceOf(flux)
	if !OccursUnderGrad(residual, "v") {
		tst.Errorf("v must occur under grad\n")
	}
	if !OccursOnlyUnderGrad(residual, "v") {
		tst.Errorf("residual is purely flux-conservative in v\n")
	}

	// adding a reaction term breaks flux-conservativity
	withSource := Add(residual, v)
	if OccursOnlyUnderGrad(withSource, "v") {
		tst.Errorf("residual with a bare v is not flux-conservative\n")
	}

	chk.Strings(tst, "vars", VarsIn(withSource), []string{"v"})
}

func Test_eval01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval01. mesh-free evaluation")

	env := &Env{
		Time: 7.5,
		Vars: map[string]float64{"q": 4.0},
		Params: func(name string, args []float64) (float64, error) {
			switch name {
			case "I":
				return 300.0, nil
			case "kappa":
				return 0.1 * args[0], nil
			}
			return 0, chk.Err("unknown parameter %q", name)
		},
	}

	// arithmetic over scalars, time, variables and parameters
	e := Div(NewParam("I"), NewScalar(3600))
	res, err := Eval(e, env)
	if err != nil {
		tst.Errorf("eval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "I/3600", 1e-15, res, 300.0/3600.0)

	res, err = Eval(Add(&Time{}, NewVariable("q")), env)
	if err != nil {
		tst.Errorf("eval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "t+q", 1e-15, res, 11.5)

	res, err = Eval(Pow(NewScalar(2), NewScalar(10)), env)
	if err != nil {
		tst.Errorf("eval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "2^10", 1e-15, res, 1024)

	// interior values of spatial fields need the engine
	f := NewVariable("f", Separator)
	if _, err = Eval(f, env); err == nil {
		tst.Errorf("evaluating a spatial field without a mesh must fail\n")
	}
}

func Test_eval02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval02. boundary values")

	a := NewVariable("a", NegativeElectrode)
	b := NewVariable("b", Separator)
	c := NewVariable("c", PositiveElectrode)
	field, err := Concatenate(a, b, c)
	if err != nil {
		tst.Errorf("concatenate failed: %v\n", err)
		return
	}

	env := &Env{
		Boundary: map[Side]map[string]float64{
			Left:  {"a": 1.5},
			Right: {"c": -0.5},
		},
		Params: func(name string, args []float64) (float64, error) {
			return 2 * args[0], nil // doubles its first argument
		},
	}

	// a concatenation samples its outermost parts
	res, err := Eval(BoundaryValueOf(field, Left), env)
	if err != nil {
		tst.Errorf("eval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "left", 1e-15, res, 1.5)

	res, err = Eval(BoundaryValueOf(field, Right), env)
	if err != nil {
		tst.Errorf("eval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "right", 1e-15, res, -0.5)

	// arithmetic and parameter applications distribute over the sample
	e := BoundaryValueOf(Add(Mul(NewScalar(2), a), NewParam("k", a)), Left)
	res, err = Eval(e, env)
	if err != nil {
		tst.Errorf("eval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "2a+k(a) at left", 1e-15, res, 2*1.5+2*1.5)

	// sampling a spatially constant expression is the identity
	if BoundaryValueOf(NewScalar(3), Right).String() != "3" {
		tst.Errorf("boundary value of a scalar must be the scalar\n")
	}

	// missing sample
	if _, err = Eval(BoundaryValueOf(a, Right), env); err == nil {
		tst.Errorf("missing boundary sample must fail\n")
	}
}
