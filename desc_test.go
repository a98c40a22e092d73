/*
 * desc_test.go, part of godesc.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package desc

import (
	"gonum.org/v1/gonum/mat"
)

//Helpers shared by the tests: small hand-built molecules, since molecule
//parsing is out of the scope of this library.

func mkMol(name string, ats []*Atom, coords []float64) *Mol {
	var c *mat.Dense
	if len(ats) > 0 {
		c = mat.NewDense(len(ats), 3, coords)
	}
	mol, err := NewMol(name, ats, c)
	if err != nil {
		panic(err.Error())
	}
	return mol
}

//The protein from the contact-counting scenarios: a carbon at the origin and a
//nitrogen 5 A above it.
func scenarioProtein() *Mol {
	ats := []*Atom{
		{Name: "C1", AtomicNum: 6, Symbol: "C", Type: "C.3"},
		{Name: "N1", AtomicNum: 7, Symbol: "N", Type: "N.am"},
	}
	return mkMol("prot", ats, []float64{
		0, 0, 0,
		0, 0, 5,
	})
}

//The matching ligand: a single carbon at (0,0,1): 1 A from the protein carbon,
//4 A from the protein nitrogen.
func scenarioLigand() *Mol {
	ats := []*Atom{
		{Name: "C1", AtomicNum: 6, Symbol: "C", Type: "C.3"},
	}
	return mkMol("lig", ats, []float64{0, 0, 1})
}
