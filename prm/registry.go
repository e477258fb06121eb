// Copyright 2024 The Supercapacitors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prm implements the parameter registry: it resolves entry names of
// the active parameter set into expression nodes usable inside equations, at
// model-construction time
package prm

import (
	"github.com/mmsg-warwick/supercapacitors/inp"
	"github.com/mmsg-warwick/supercapacitors/sym"
)

// Registry resolves parameter names against one active parameter set.
// Constant and function entries come back uniformly as parameter nodes; the
// distinction only matters when the engine (or Resolve) evaluates them.
type Registry struct {
	set *inp.Set
}

// NewRegistry wraps a loaded parameter set
func NewRegistry(set *inp.Set) *Registry {
	return &Registry{set: set}
}

// SetName returns the name of the active parameter set
func (o *Registry) SetName() string { return o.set.Name() }

// Lookup returns a node referencing the named entry, failing with
// *inp.UnknownParameterError if the name is absent from the active set
func (o *Registry) Lookup(name string) (sym.Expr, error) {
	if !o.set.Has(name) {
		return nil, &inp.UnknownParameterError{Set: o.set.Name(), Name: name}
	}
	return sym.NewParam(name), nil
}

// Apply returns a node referencing the named entry applied to local field
// values (e.g. a diffusivity of concentration and temperature). Constant
// entries carry the arguments but ignore them on evaluation.
func (o *Registry) Apply(name string, args ...sym.Expr) (sym.Expr, error) {
	if !o.set.Has(name) {
		return nil, &inp.UnknownParameterError{Set: o.set.Name(), Name: name}
	}
	return sym.NewParam(name, args...), nil
}

// Value returns the concrete constant behind the named entry, for scalars
// needed at construction time
func (o *Registry) Value(name string) (float64, error) {
	return o.set.Value(name)
}

// Broadcast replicates a spatially constant expression into a field over the
// given region. Purely symbolic; no mesh is materialized here.
func (o *Registry) Broadcast(scalar sym.Expr, r sym.Region) (sym.Expr, error) {
	return sym.NewBroadcast(scalar, r)
}

// Resolve evaluates the named entry for the given argument values: property
// functions are called, constants are returned as-is. Matches the resolver
// signature of sym.Env.
func (o *Registry) Resolve(name string, args []float64) (float64, error) {
	if fn, ok := o.set.Fn(name); ok {
		return fn(args...), nil
	}
	return o.set.Value(name)
}

// Env returns an evaluation environment wired to this registry
func (o *Registry) Env() *sym.Env {
	return &sym.Env{Params: o.Resolve}
}

// thicknessKeys maps each region to its thickness entry
var thicknessKeys = map[sym.Region]string{
	sym.NegativeElectrode: "Negative electrode thickness [m]",
	sym.Separator:         "Separator thickness [m]",
	sym.PositiveElectrode: "Positive electrode thickness [m]",
}

// Thickness returns the thickness of one region
func (o *Registry) Thickness(r sym.Region) (float64, error) {
	return o.set.Value(thicknessKeys[r])
}

// CellLength returns the total domain length: the sum of the three region
// thicknesses
func (o *Registry) CellLength() (sum float64, err error) {
	for _, r := range sym.Regions() {
		l, err := o.Thickness(r)
		if err != nil {
			return 0, err
		}
		sum += l
	}
	return
}
