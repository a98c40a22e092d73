/*
 * atoms.go, part of godesc.
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

package desc

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/**Note: Several functions here panic instead of returning errors. This is because they are "fundamental"
 * functions: if something goes wrong here, the program is way-most likely wrong and should crash.
 * The panics are related to using a function on a nil object or accessing out-of-bounds fields.**/

//Atom contains the per-atom attributes needed for classification. The coordinates are kept
//separately, in a matrix owned by Mol. Atoms are produced by an upstream molecule parser
//and are never mutated by this library, only filtered.
type Atom struct {
	Name      string //PDB/SDF atom name, if any
	ID        int
	AtomicNum int
	Symbol    string
	Type      string //Sybyl-like atom type label, e.g. "C.ar", "N.am"
	Aromatic  bool
	Donor     bool
	Acceptor  bool
	DonorH    bool //is this a donor hydrogen?
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	*Newat = *A
	return Newat
}

//Mol is an immutable atom attribute table with Cartesian coordinates: one Atom
//per row of an Nx3 coordinate matrix. The name identifies the molecule in logs,
//caches and failure reports, so it should be unique within a batch.
type Mol struct {
	name   string
	atoms  []*Atom
	coords *mat.Dense //Nx3, nil only for the empty molecule
}

//NewMol makes a molecule with the given atoms and coordinates and returns it. It returns an
//error if the coordinate matrix doesn't have one row of 3 columns per atom. An empty
//atom slice with nil coordinates is a valid (empty) molecule.
func NewMol(name string, atoms []*Atom, coords *mat.Dense) (*Mol, error) {
	M := new(Mol)
	M.name = name
	M.atoms = atoms
	M.coords = coords
	if len(atoms) == 0 {
		if coords != nil {
			return nil, fmt.Errorf("godesc.NewMol: coordinates given for a molecule with no atoms")
		}
		return M, nil
	}
	if coords == nil {
		return nil, fmt.Errorf("godesc.NewMol: nil coordinates for %d atoms", len(atoms))
	}
	r, c := coords.Dims()
	if r != len(atoms) || c != 3 {
		return nil, fmt.Errorf("godesc.NewMol: inconsistent coordinates/atoms: atoms %d, coords %dx%d", len(atoms), r, c)
	}
	return M, nil
}

//Name returns the identifier of the molecule.
func (M *Mol) Name() string {
	return M.name
}

//Len returns the number of atoms in the molecule.
func (M *Mol) Len() int {
	return len(M.atoms)
}

//Atom returns the Atom corresponding to the index i.
//Panics if out of range.
func (M *Mol) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("Mol: Requested Atom out of bounds")
	}
	return M.atoms[i]
}

//Coords returns the Nx3 coordinate matrix of the molecule. It is nil
//for an empty molecule. The returned matrix is the one owned by the
//molecule, not a copy.
func (M *Mol) Coords() *mat.Dense {
	return M.coords
}

//Coord returns a copy of the 3D coordinates for the atom i.
//Panics if out of range.
func (M *Mol) Coord(i int) []float64 {
	if i >= M.Len() {
		panic("Mol: Requested coordinate out of bounds")
	}
	return mat.Row(nil, i, M.coords)
}

//Filter returns a new molecule with the atoms for which pred is true, in their
//original order. The atoms themselves are shared with M, the coordinate rows
//are copied. Filtering to zero atoms returns a valid empty molecule.
func (M *Mol) Filter(pred func(*Atom) bool) *Mol {
	indexes := make([]int, 0, M.Len())
	for i, at := range M.atoms {
		if pred(at) {
			indexes = append(indexes, i)
		}
	}
	sub, err := M.Select(indexes)
	if err != nil {
		panic("cant happen: Filter built an out-of-range index") //the indexes come from the range above
	}
	return sub
}

//Select, given a list of indexes, returns a new molecule with the atoms in the
//corresponding positions of M, in the given order. The atoms are shared with M,
//the coordinate rows are copied. It returns an error if an index is out of range.
func (M *Mol) Select(indexes []int) (*Mol, error) {
	if len(indexes) == 0 {
		return &Mol{name: M.name}, nil
	}
	ats := make([]*Atom, 0, len(indexes))
	data := make([]float64, 0, 3*len(indexes))
	for k, j := range indexes {
		if j < 0 || j > M.Len()-1 {
			return nil, fmt.Errorf("godesc: Atom requested (number: %d, value: %d) out of range", k, j)
		}
		ats = append(ats, M.atoms[j])
		data = append(data, M.coords.RawRowView(j)...)
	}
	return &Mol{name: M.name, atoms: ats, coords: mat.NewDense(len(indexes), 3, data)}, nil
}
