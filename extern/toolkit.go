/*
 * toolkit.go, part of godesc.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package extern

import (
	"fmt"
	"strconv"

	desc "github.com/rmera/godesc"
)

//Toolkit is the cheminformatics black box: given a ligand structure file (SDF or
//MOL2), it reports the rotatable-bond count and the number of rings flagged
//aromatic.
type Toolkit interface {
	NumRotors(file string) (int, error)
	NumAromaticRings(file string) (int, error)
}

//RotorsRings is a Provider reporting the rotatable-bond and aromatic-ring counts of
//each ligand. The caller supplies the mapping from a ligand to its structure file.
type RotorsRings struct {
	tk    Toolkit
	files func(*desc.Mol) string
}

//NewRotorsRings returns the Provider over the given toolkit.
func NewRotorsRings(tk Toolkit, files func(*desc.Mol) string) (*RotorsRings, error) {
	if tk == nil || files == nil {
		return nil, Error{message: ErrNilAnalyzer, tool: "toolkit", critical: true, deco: []string{"NewRotorsRings"}}
	}
	return &RotorsRings{tk: tk, files: files}, nil
}

//Titles returns the two column labels.
func (R *RotorsRings) Titles() []string {
	return []string{"num_rotors", "num_aromatic_rings"}
}

//Len returns the dimensionality of the provider.
func (R *RotorsRings) Len() int {
	return 2
}

//Single returns the rotatable-bond and aromatic-ring counts for one ligand.
func (R *RotorsRings) Single(lig *desc.Mol) ([]float64, error) {
	file := R.files(lig)
	rotors, err := R.tk.NumRotors(file)
	if err != nil {
		return nil, err
	}
	rings, err := R.tk.NumAromaticRings(file)
	if err != nil {
		return nil, err
	}
	return []float64{float64(rotors), float64(rings)}, nil
}

//BFactorSource reports per-atom thermal displacement (B-factor) values for a
//structure file. It is a black box; goChem's PDB reader, among others, can
//provide them.
type BFactorSource interface {
	BFactors(structure string) ([]float64, error)
}

//BFactors is a Provider reporting the per-atom B-factors of the protein structure,
//one column per atom. The width (the atom count of the structure) must be declared
//up front so the descriptor has a fixed dimensionality; a source returning a
//different number of values is a fatal consistency error. Protein-side feature,
//computed once.
type BFactors struct {
	src       BFactorSource
	structure string
	width     int
	vals      []float64
}

//NewBFactors returns the Provider for the given structure with width atoms.
func NewBFactors(src BFactorSource, structure string, width int) (*BFactors, error) {
	if src == nil {
		return nil, Error{message: ErrNilAnalyzer, tool: "bfactor", critical: true, deco: []string{"NewBFactors"}}
	}
	if width <= 0 {
		return nil, Error{message: "Nonpositive atom count declared", tool: "bfactor", critical: true, deco: []string{"NewBFactors"}}
	}
	return &BFactors{src: src, structure: structure, width: width}, nil
}

//Titles returns one label per structure atom.
func (B *BFactors) Titles() []string {
	ret := make([]string, 0, B.width)
	for i := 0; i < B.width; i++ {
		ret = append(ret, "bfactor."+strconv.Itoa(i))
	}
	return ret
}

//Len returns the dimensionality of the provider.
func (B *BFactors) Len() int {
	return B.width
}

//Single returns the B-factor values. The ligand is ignored.
func (B *BFactors) Single(lig *desc.Mol) ([]float64, error) {
	if B.vals == nil {
		vals, err := B.src.BFactors(B.structure)
		if err != nil {
			return nil, err
		}
		if len(vals) != B.width {
			return nil, Error{message: fmt.Sprintf("%s: %d values for %d declared", ErrBadWidth, len(vals), B.width),
				tool: "bfactor", critical: true, deco: []string{"Single"}}
		}
		B.vals = vals
	}
	ret := make([]float64, len(B.vals))
	copy(ret, B.vals)
	return ret, nil
}
