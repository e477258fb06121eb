// Copyright 2024 The Supercapacitors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the database of named parameter sets: immutable,
// string-keyed tables of physical values that instantiate the supercapacitor
// model. Keys carry their units, e.g. "Electrode height [m]".
package inp

import (
	"sort"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// PropFn is a property function: a parameter entry whose value depends on
// local field values and temperature, e.g. a conductivity as a function of
// concentration and temperature
type PropFn func(args ...float64) float64

// Set is an immutable table of parameter values. Entries are either scalar
// constants or property functions; the loader performs no semantic validation
// beyond returning the literal table.
type Set struct {
	name      string
	chemistry string
	prms      dbf.Params
	fns       map[string]PropFn
}

// NewSet builds a parameter set from constants and property functions. The
// inputs are copied; the returned set never changes.
func NewSet(name, chemistry string, prms dbf.Params, fns map[string]PropFn) *Set {
	o := &Set{
		name:      name,
		chemistry: chemistry,
		prms:      make(dbf.Params, len(prms)),
		fns:       make(map[string]PropFn, len(fns)),
	}
	for i, p := range prms {
		q := *p
		o.prms[i] = &q
	}
	for key, fn := range fns {
		o.fns[key] = fn
	}
	return o
}

// Name returns the set name
func (o *Set) Name() string { return o.name }

// Chemistry returns the chemistry marker, e.g. "supercapacitor"
func (o *Set) Chemistry() string { return o.chemistry }

// Has tells whether the set defines the named entry (constant or function)
func (o *Set) Has(name string) bool {
	if _, ok := o.fns[name]; ok {
		return true
	}
	return o.find(name) != nil
}

// Value returns the named constant. Asking for an absent name fails with
// *UnknownParameterError; asking for a function entry fails too, because a
// function has no single value.
func (o *Set) Value(name string) (float64, error) {
	if p := o.find(name); p != nil {
		return p.V, nil
	}
	return 0, &UnknownParameterError{Set: o.name, Name: name}
}

// Fn returns the named property function, if the entry is one
func (o *Set) Fn(name string) (PropFn, bool) {
	fn, ok := o.fns[name]
	return fn, ok
}

// Keys returns all entry names, sorted
func (o *Set) Keys() (keys []string) {
	for _, p := range o.prms {
		keys = append(keys, p.N)
	}
	for name := range o.fns {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return
}

// NumParams returns the number of entries
func (o *Set) NumParams() int { return len(o.prms) + len(o.fns) }

// find locates a constant by name
func (o *Set) find(name string) *dbf.P {
	for _, p := range o.prms {
		if p.N == name {
			return p
		}
	}
	return nil
}

// String prints the table
func (o *Set) String() string {
	l := io.Sf("%q (%s) {\n", o.name, o.chemistry)
	for _, key := range o.Keys() {
		if _, ok := o.fns[key]; ok {
			l += io.Sf("  %q : <function>\n", key)
			continue
		}
		l += io.Sf("  %q : %v\n", key, o.find(key).V)
	}
	return l + "}"
}

// sets holds all available parameter sets
var sets = map[string]func() *Set{
	"Iamrod2024": iamrod2024,
}

// Load returns the parameter set registered under the given name, failing
// with *UnknownParameterSetError otherwise
func Load(setName string) (*Set, error) {
	alloc, ok := sets[setName]
	if !ok {
		return nil, &UnknownParameterSetError{Name: setName}
	}
	return alloc(), nil
}

// Sets returns the names of all registered parameter sets, sorted
func Sets() (names []string) {
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
