// Copyright 2024 The Supercapacitors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/mmsg-warwick/supercapacitors/prm"
	"github.com/mmsg-warwick/supercapacitors/sym"
)

// Faraday constant [C.mol-1]
const faraday = 96485.33212331001

// add model to database
func init() {
	allocators["VerbruggeLiu"] = verbruggeLiu
}

// helpers to keep the assembly readable; errors panic and are recovered by New

func lookup(reg *prm.Registry, name string) sym.Expr {
	e, err := reg.Lookup(name)
	if err != nil {
		panic(err)
	}
	return e
}

func apply(reg *prm.Registry, name string, args ...sym.Expr) sym.Expr {
	e, err := reg.Apply(name, args...)
	if err != nil {
		panic(err)
	}
	return e
}

func bcast(reg *prm.Registry, scalar sym.Expr, r sym.Region) sym.Expr {
	e, err := reg.Broadcast(scalar, r)
	if err != nil {
		panic(err)
	}
	return e
}

func cat(a, b, c sym.Expr) sym.Expr {
	e, err := sym.Concatenate(a, b, c)
	if err != nil {
		panic(err)
	}
	return e
}

// verbruggeLiu assembles the supercapacitor model from the Verbrugge & Liu
// (2005) paper: conservation of charge with double-layer charging in both
// electrodes, charge conservation in the electrolyte, and electrolyte species
// transport, over the negative electrode / separator / positive electrode
// sandwich
func verbruggeLiu(reg *prm.Registry) *Model {
	m := newModel("Verbrugge & Liu (2005)")

	// state variables; variables that depend on time only have no domain
	q := m.scalarVar("Discharge capacity [A.h]", Differential)

	// electrolyte concentration over the whole cell
	ce := m.fieldVar("Electrolyte concentration [mol.m-3]", Differential, [3]string{
		"Negative electrolyte concentration [mol.m-3]",
		"Separator electrolyte concentration [mol.m-3]",
		"Positive electrolyte concentration [mol.m-3]",
	})
	cen := ce.Part(sym.NegativeElectrode)
	ces := ce.Part(sym.Separator)
	cep := ce.Part(sym.PositiveElectrode)

	// electrolyte potential over the whole cell
	phie := m.fieldVar("Electrolyte potential [V]", Algebraic, [3]string{
		"Negative electrolyte potential [V]",
		"Separator electrolyte potential [V]",
		"Positive electrolyte potential [V]",
	})
	phien := phie.Part(sym.NegativeElectrode)
	phies := phie.Part(sym.Separator)
	phiep := phie.Part(sym.PositiveElectrode)

	// the double-layer capacitance couples electrode and electrolyte, so the
	// electrode potential cannot be defined directly; the unknown is the
	// potential difference between electrode and electrolyte
	dphin := m.regionVar("Negative electrode potential difference [V]", Differential, sym.NegativeElectrode)
	dphip := m.regionVar("Positive electrode potential difference [V]", Differential, sym.PositiveElectrode)

	// constant temperature
	temp := lookup(reg, "Initial temperature [K]")

	// applied current and current density per unit cross-section
	current := lookup(reg, "Current function [A]")
	area := sym.Mul(lookup(reg, "Electrode height [m]"), lookup(reg, "Electrode width [m]"))
	npar := lookup(reg, "Number of electrodes connected in parallel to make a cell")
	icell := sym.Div(current, sym.Mul(npar, area))

	// porosity, broadcast to a per-region field for elementwise products
	epsn := bcast(reg, lookup(reg, "Negative electrode porosity"), sym.NegativeElectrode)
	epss := bcast(reg, lookup(reg, "Separator porosity"), sym.Separator)
	epsp := bcast(reg, lookup(reg, "Positive electrode porosity"), sym.PositiveElectrode)
	eps := cat(epsn, epss, epsp)

	// active material volume fractions (eps + eps_s + eps_inactive = 1)
	epssn := lookup(reg, "Negative electrode active material volume fraction")
	epssp := lookup(reg, "Positive electrode active material volume fraction")

	// transport efficiency (tortuosity correction) per region
	torn := sym.Pow(epsn, lookup(reg, "Negative electrode Bruggeman coefficient (electrolyte)"))
	tors := sym.Pow(epss, lookup(reg, "Separator Bruggeman coefficient (electrolyte)"))
	torp := sym.Pow(epsp, lookup(reg, "Positive electrode Bruggeman coefficient (electrolyte)"))
	tor := cat(torn, tors, torp)

	// interfacial area density a = 3 eps_s / R
	an := sym.Div(sym.Mul(sym.NewScalar(3), epssn), lookup(reg, "Negative particle radius [m]"))
	ap := sym.Div(sym.Mul(sym.NewScalar(3), epssp), lookup(reg, "Positive particle radius [m]"))

	// state of charge
	m.setEquation(q.Name, Differential, sym.Div(current, sym.NewScalar(3600)))
	m.setIC(q.Name, sym.NewScalar(0))

	// effective electrode conductivities
	sigeffn := sym.Mul(
		apply(reg, "Negative electrode conductivity [S.m-1]", temp),
		sym.Pow(epssn, lookup(reg, "Negative electrode Bruggeman coefficient (electrode)")))
	sigeffp := sym.Mul(
		apply(reg, "Positive electrode conductivity [S.m-1]", temp),
		sym.Pow(epssp, lookup(reg, "Positive electrode Bruggeman coefficient (electrode)")))

	// charge conservation per electrode: electrode-phase plus electrolyte-phase
	// divergence contributions
	chargen := sym.Add(
		sym.DivergenceOf(sym.Mul(sigeffn, sym.GradOf(dphin))),
		sym.DivergenceOf(sym.Mul(sigeffn, sym.GradOf(phien))))
	chargep := sym.Add(
		sym.DivergenceOf(sym.Mul(sigeffp, sym.GradOf(dphip))),
		sym.DivergenceOf(sym.Mul(sigeffp, sym.GradOf(phiep))))

	// electrode potential difference: double-layer charging
	cdln := apply(reg, "Negative electrode double-layer capacity [F.m-2]", temp)
	cdlp := apply(reg, "Positive electrode double-layer capacity [F.m-2]", temp)
	m.setEquation(dphin.Name, Differential, sym.Div(chargen, sym.Mul(an, cdln)))
	m.setEquation(dphip.Name, Differential, sym.Div(chargep, sym.Mul(ap, cdlp)))

	// applied-current continuity at the current collectors, ionic-current
	// continuity at the separator interfaces
	kapn := apply(reg, "Electrolyte conductivity [S.m-1]", cen, temp)
	kapp := apply(reg, "Electrolyte conductivity [S.m-1]", cep, temp)
	m.setBC(dphin.Name, sym.Left, Neumann,
		sym.Div(icell, sym.BoundaryValueOf(sym.Neg(sigeffn), sym.Left)))
	m.setBC(dphin.Name, sym.Right, Neumann,
		sym.Div(icell, sym.BoundaryValueOf(sym.Mul(kapn, torn), sym.Right)))
	m.setBC(dphip.Name, sym.Left, Neumann,
		sym.Div(icell, sym.BoundaryValueOf(sym.Mul(kapp, torp), sym.Left)))
	m.setBC(dphip.Name, sym.Right, Neumann,
		sym.Div(icell, sym.BoundaryValueOf(sym.Neg(sigeffp), sym.Right)))
	m.setIC(dphin.Name, sym.NewScalar(-0.1))
	m.setIC(dphip.Name, sym.NewScalar(0.1))

	// interfacial current density is derived, not independently solved: minus
	// the divergence of the phase currents, zero in the separator (no reaction)
	ajn := sym.Neg(chargen)
	ajs := bcast(reg, sym.NewScalar(0), sym.Separator)
	ajp := sym.Neg(chargep)
	aj := cat(ajn, ajs, ajp)

	// charge conservation in the electrolyte; the residual is multiplied by
	// Lx^2 to improve conditioning of the downstream solve (see
	// ConditioningScale)
	kap := apply(reg, "Electrolyte conductivity [S.m-1]", ce, temp)
	ie := sym.Mul(sym.Neg(sym.Mul(kap, tor)), sym.GradOf(phie))
	lx := sym.Add(sym.Add(
		lookup(reg, "Negative electrode thickness [m]"),
		lookup(reg, "Separator thickness [m]")),
		lookup(reg, "Positive electrode thickness [m]"))
	scale := sym.Pow(lx, sym.NewScalar(2))
	m.condScale = scale
	m.setEquation("Electrolyte potential [V]", Algebraic,
		sym.Mul(scale, sym.Add(sym.DivergenceOf(ie), aj)))

	// the residual only fixes phi_e up to an additive constant; pin the left
	// face to a zero reference
	m.setBC("Electrolyte potential [V]", sym.Left, Dirichlet, sym.NewScalar(0))
	m.setBC("Electrolyte potential [V]", sym.Right, Neumann, sym.NewScalar(0))
	m.setIC("Electrolyte potential [V]", sym.NewScalar(0))

	// electrolyte species transport: diffusive+migrative flux plus the
	// interfacial source, scaled by the local porosity
	de := apply(reg, "Electrolyte diffusivity [m2.s-1]", ce, temp)
	tplus := apply(reg, "Cation transference number", ce, temp)
	ne := sym.Mul(sym.Neg(sym.Mul(tor, de)), sym.GradOf(ce))
	m.setEquation("Electrolyte concentration [mol.m-3]", Differential,
		sym.Mul(sym.Div(sym.NewScalar(1), eps),
			sym.Sub(
				sym.Neg(sym.DivergenceOf(ne)),
				sym.Div(sym.Mul(sym.Sub(sym.NewScalar(1), tplus), aj), sym.NewScalar(faraday)))))

	// no species leave the cell
	m.setBC("Electrolyte concentration [mol.m-3]", sym.Left, Neumann, sym.NewScalar(0))
	m.setBC("Electrolyte concentration [mol.m-3]", sym.Right, Neumann, sym.NewScalar(0))
	m.setIC("Electrolyte concentration [mol.m-3]",
		lookup(reg, "Initial concentration in electrolyte [mol.m-3]"))

	// derived outputs
	phisn := sym.Add(dphin, phien)
	phisp := sym.Add(dphip, phiep)
	voltage := sym.Sub(
		sym.BoundaryValueOf(phisp, sym.Right),
		sym.BoundaryValueOf(phisn, sym.Left))
	ncells := lookup(reg, "Number of cells connected in series to make a battery")

	m.addOutput("Time [s]", &sym.Time{})
	m.addOutput("Discharge capacity [A.h]", q)
	m.addOutput("Current [A]", current)
	m.addOutput("Current variable [A]", current) // experiment-protocol compatibility
	m.addOutput("Electrolyte concentration [mol.m-3]", ce)
	m.addOutput("Negative electrode potential [V]", phisn)
	m.addOutput("Electrolyte potential [V]", phie)
	m.addOutput("Positive electrode potential [V]", phisp)
	m.addOutput("Voltage [V]", voltage)
	m.addOutput("Battery voltage [V]", sym.Mul(voltage, ncells))
	m.addOutput("Negative electrolyte concentration [mol.m-3]", cen)
	m.addOutput("Separator electrolyte concentration [mol.m-3]", ces)
	m.addOutput("Positive electrolyte concentration [mol.m-3]", cep)
	m.addOutput("Negative electrode potential difference [V]", dphin)
	m.addOutput("Positive electrode potential difference [V]", dphip)
	m.addOutput("Negative electrolyte potential [V]", phien)
	m.addOutput("Separator electrolyte potential [V]", phies)
	m.addOutput("Positive electrolyte potential [V]", phiep)
	m.addOutput("Negative electrode interfacial current density [A.m-3]", ajn)
	m.addOutput("Positive electrode interfacial current density [A.m-3]", ajp)

	m.setPlotVars(
		"Current [A]",
		"Voltage [V]",
		"Electrolyte concentration [mol.m-3]",
		"Electrolyte potential [V]",
		"Negative electrode potential [V]",
		"Positive electrode potential [V]",
		"Negative electrode interfacial current density [A.m-3]",
		"Positive electrode interfacial current density [A.m-3]",
	)
	return m
}
