/*
 * universal.go, part of godesc.
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
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

//DescribeFunc computes a feature vector for a ligand. The protein is the configured
//reference, or nil when the wrapping Universal has none.
type DescribeFunc func(lig, protein *Mol) ([]float64, error)

//Universal converts an arbitrary feature function into a descriptor with the same
//build contract as the close-contacts engine, so caller-supplied scoring functions
//and fingerprinters can be batched and composed in a Pipeline. The label names the
//output columns; it is required, there is no runtime function-name introspection.
type Universal struct {
	fn      DescribeFunc
	label   string
	protein *Mol
	width   int
	sparse  bool
}

//NewUniversal wraps fn under the given column label. protein may be nil for
//protein-independent functions. width declares the output dimensionality; it may be
//0 for dense output (the first built row then defines the width), but sparse output
//and Len require it. With sp true, Build produces a CSR matrix and fn is expected to
//return the indexes of the nonzero (one-valued) columns rather than a dense row.
func NewUniversal(fn DescribeFunc, label string, protein *Mol, width int, sp bool) (*Universal, error) {
	if fn == nil {
		return nil, ConfError{message: "No function to wrap", deco: []string{"NewUniversal"}}
	}
	if label == "" {
		return nil, ConfError{message: ErrNoLabel, deco: []string{"NewUniversal"}}
	}
	U := new(Universal)
	U.fn = fn
	U.label = label
	U.protein = protein
	U.width = width
	U.sparse = sp
	return U, nil
}

//Len returns the declared dimensionality of the descriptor. If no width was
//declared, the length is not defined and a ConfError is returned.
func (U *Universal) Len() (int, error) {
	if U.width <= 0 {
		return 0, ConfError{message: ErrNoWidth, key: U.label, deco: []string{"Len"}}
	}
	return U.width, nil
}

//Titles returns the column labels "label.0" ... "label.n-1", or nil if no width
//was declared.
func (U *Universal) Titles() []string {
	if U.width <= 0 {
		return nil
	}
	ret := make([]string, 0, U.width)
	for i := 0; i < U.width; i++ {
		ret = append(ret, fmt.Sprintf("%s.%d", U.label, i))
	}
	return ret
}

//SetProtein rebinds the default protein reference used by subsequent builds.
func (U *Universal) SetProtein(protein *Mol) {
	U.protein = protein
}

//Single calls the wrapped function on one ligand, passing the configured protein
//reference (nil if none was configured).
func (U *Universal) Single(lig *Mol) ([]float64, error) {
	return U.fn(lig, U.protein)
}

//Build maps the wrapped function over the ligands and stacks the results, one row
//per ligand, in input order. Dense mode returns a *mat.Dense. Sparse mode returns a
//*sparse.CSR with the declared width, where each value returned by the function is
//taken as the index of a one-valued column; a non-integer or out-of-width index is
//a ConfError. If a protein is given it rebinds the configured reference, as in
//CloseContacts.Build.
func (U *Universal) Build(ligands []*Mol, protein ...*Mol) (mat.Matrix, error) {
	if len(protein) > 0 && protein[0] != nil {
		U.protein = protein[0]
	}
	if !U.sparse {
		return buildRows(U, ligands)
	}
	if U.width <= 0 {
		return nil, ConfError{message: ErrNoWidth, key: U.label, deco: []string{"Build"}}
	}
	dok := sparse.NewDOK(len(ligands), U.width)
	for i, lig := range ligands {
		indexes, err := U.fn(lig, U.protein)
		if err != nil {
			if err2, ok := err.(Error); ok {
				err2.Decorate(fmt.Sprintf("Build: failed on the %d th ligand (%s)", i, lig.Name()))
			}
			return nil, err
		}
		for _, v := range indexes {
			j := int(v)
			if float64(j) != v || math.Signbit(v) || j >= U.width {
				return nil, ConfError{message: ErrBadSparseRow,
					key:  fmt.Sprintf("%g in row %d (%s), width %d", v, i, lig.Name(), U.width),
					deco: []string{"Build"}}
			}
			dok.Set(i, j, 1)
		}
	}
	return dok.ToCSR(), nil
}
