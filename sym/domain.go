// Copyright 2024 The Supercapacitors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sym implements the symbolic layer of the supercapacitor model: the
// three-region cell geometry and the expression trees that equations,
// boundary conditions and output variables are written in. Nothing here is
// discretized; a downstream engine traverses the trees and turns them into
// numbers.
package sym

import "github.com/cpmech/gosl/io"

// Region identifies one of the three physical zones of the cell
type Region int

// cell regions, ordered left to right
const (
	NegativeElectrode Region = iota
	Separator
	PositiveElectrode
	nregions // sentinel
)

// String returns the region name as used in parameter keys
func (o Region) String() string {
	switch o {
	case NegativeElectrode:
		return "negative electrode"
	case Separator:
		return "separator"
	case PositiveElectrode:
		return "positive electrode"
	}
	return io.Sf("invalid region (%d)", int(o))
}

// Regions returns the three regions in cell order
func Regions() []Region {
	return []Region{NegativeElectrode, Separator, PositiveElectrode}
}

// WholeCell returns the domain spanning all three regions, in cell order.
// An expression domain is an ordered list of regions; nil means the
// expression is a scalar in space (a function of time only).
func WholeCell() []Region {
	return Regions()
}

// DomainString formats a domain for error messages
func DomainString(dom []Region) string {
	if len(dom) == 0 {
		return "scalar"
	}
	l := ""
	for i, r := range dom {
		if i > 0 {
			l += ", "
		}
		l += r.String()
	}
	return "[" + l + "]"
}

// sameDomain tells whether two domains are identical, region by region
func sameDomain(a, b []Region) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// DomainMismatchError indicates that an operation was given expressions over
// incompatible domains; e.g. concatenation parts out of order, or elementwise
// arithmetic between fields living on different regions
type DomainMismatchError struct {
	Op   string // offending operation
	Got  string // domains actually given
	Want string // what the operation requires
}

// Error returns the error message
func (o *DomainMismatchError) Error() string {
	return io.Sf("domain mismatch in %q: got %s, want %s", o.Op, o.Got, o.Want)
}

// domainPanic raises a *DomainMismatchError; model constructors recover it
// into an error return
func domainPanic(op, got, want string) {
	panic(&DomainMismatchError{Op: op, Got: got, Want: want})
}
