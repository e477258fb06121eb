// Copyright 2024 The Supercapacitors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"

	"github.com/mmsg-warwick/supercapacitors/sym"
)

// System is the read-only view an external discretization/solver engine needs
// of an assembled model. *Model satisfies it; the engine holds the interface,
// never a framework base type.
type System interface {
	Name() string
	Vars() []*StateVariable
	Equation(name string) (sym.Expr, bool)
	BoundCond(name string, s sym.Side) (*BoundaryCondition, bool)
	InitCond(name string) (sym.Expr, bool)
	Outputs() []string
	Output(name string) (sym.Expr, bool)
	DefaultPlotVars() []string
	ConditioningScale() sym.Expr
}

var _ System = (*Model)(nil)

// Solution is the interchange an engine returns: for each point of an
// external time grid, numeric values for every state and derived variable,
// keyed by output-channel name
type Solution struct {
	Time     []float64
	Channels map[string][]float64
}

// Channel returns the trajectory of one named channel
func (o *Solution) Channel(name string) ([]float64, error) {
	c, ok := o.Channels[name]
	if !ok {
		return nil, chk.Err("solution has no channel %q", name)
	}
	return c, nil
}

// At returns the value of one channel at time index k
func (o *Solution) At(name string, k int) (float64, error) {
	c, err := o.Channel(name)
	if err != nil {
		return 0, err
	}
	if k < 0 || k >= len(c) {
		return 0, chk.Err("time index %d out of range for channel %q (%d points)", k, name, len(c))
	}
	return c[k], nil
}
