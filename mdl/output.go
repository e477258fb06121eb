// Copyright 2024 The Supercapacitors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"sort"

	"github.com/mmsg-warwick/supercapacitors/sym"
)

// The derived-variable registry exposes every expression that may be useful
// for inspecting a solution. Derived variables never participate in the
// solved system; engines and visualization tooling read them only.

// Outputs returns the names of all derived output expressions, sorted
func (o *Model) Outputs() (names []string) {
	for name := range o.outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Output returns one derived output expression by name
func (o *Model) Output(name string) (sym.Expr, bool) {
	e, ok := o.outputs[name]
	return e, ok
}

// DefaultPlotVars returns the ordered shortlist of output names recommended
// as default visualization channels
func (o *Model) DefaultPlotVars() []string {
	out := make([]string, len(o.plotVars))
	copy(out, o.plotVars)
	return out
}
