// Copyright 2024 The Supercapacitors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/fun/dbf"

// iamrod2024 returns the parameter set from the Iamrod et al (2024) paper.
// It currently carries the Verbrugge & Liu supercapacitor parameters.
func iamrod2024() *Set {
	return NewSet("Iamrod2024", "supercapacitor", dbf.Params{

		// cell
		&dbf.P{N: "Negative electrode thickness [m]", V: 5e-05},
		&dbf.P{N: "Separator thickness [m]", V: 2.5e-05},
		&dbf.P{N: "Positive electrode thickness [m]", V: 5e-05},
		&dbf.P{N: "Electrode height [m]", V: 2.747},
		&dbf.P{N: "Electrode width [m]", V: 1},
		&dbf.P{N: "Nominal cell capacity [A.h]", V: 5.0},
		&dbf.P{N: "Current function [A]", V: 300.0},

		// negative electrode
		&dbf.P{N: "Negative electrode conductivity [S.m-1]", V: 0.0521},
		&dbf.P{N: "Negative electrode porosity", V: 0.67},
		&dbf.P{N: "Negative electrode active material volume fraction", V: 0.33},
		&dbf.P{N: "Negative particle radius [m]", V: 0.99},
		&dbf.P{N: "Negative electrode Bruggeman coefficient (electrolyte)", V: 1.5},
		&dbf.P{N: "Negative electrode Bruggeman coefficient (electrode)", V: 0},
		&dbf.P{N: "Negative electrode double-layer capacity [F.m-2]", V: 42e6},

		// positive electrode
		&dbf.P{N: "Positive electrode conductivity [S.m-1]", V: 0.0521},
		&dbf.P{N: "Positive electrode porosity", V: 0.67},
		&dbf.P{N: "Positive electrode active material volume fraction", V: 0.33},
		&dbf.P{N: "Positive particle radius [m]", V: 0.99},
		&dbf.P{N: "Positive electrode Bruggeman coefficient (electrolyte)", V: 1.5},
		&dbf.P{N: "Positive electrode Bruggeman coefficient (electrode)", V: 0},
		&dbf.P{N: "Positive electrode double-layer capacity [F.m-2]", V: 42e6},

		// separator
		&dbf.P{N: "Separator porosity", V: 0.6},
		&dbf.P{N: "Separator Bruggeman coefficient (electrolyte)", V: 1.5},

		// electrolyte
		&dbf.P{N: "Initial concentration in electrolyte [mol.m-3]", V: 930},
		&dbf.P{N: "Cation transference number", V: 0.5},
		&dbf.P{N: "Thermodynamic factor", V: 1.0},
		&dbf.P{N: "Electrolyte diffusivity [m2.s-1]", V: 3.5e-11},
		&dbf.P{N: "Electrolyte conductivity [S.m-1]", V: 0.067},

		// experiment
		&dbf.P{N: "Reference temperature [K]", V: 298.15},
		&dbf.P{N: "Ambient temperature [K]", V: 298.15},
		&dbf.P{N: "Initial temperature [K]", V: 298.15},
		&dbf.P{N: "Number of electrodes connected in parallel to make a cell", V: 1.0},
		&dbf.P{N: "Number of cells connected in series to make a battery", V: 1.0},
		&dbf.P{N: "Lower voltage cut-off [V]", V: 0},
		&dbf.P{N: "Upper voltage cut-off [V]", V: 10},
	}, nil)
}
