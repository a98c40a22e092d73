/*
 * nma.go, part of godesc.
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

	desc "github.com/rmera/godesc"
)

//NormalMode is one mode from an elastic-network/normal-mode analysis.
type NormalMode interface {
	Eigenvalue() float64
}

//ModeAnalyzer is the structural-dynamics black box. Modes computes the first n normal
//modes of the structure identified by structure (typically a PDB file or identifier);
//Counts reports the total number of eigenvalues and eigenvectors such an analysis
//produces for n requested modes.
type ModeAnalyzer interface {
	Modes(structure string, n int) ([]NormalMode, error)
	Counts(structure string, n int) (eigvals, eigvecs int, err error)
}

//Eigenvalues is a Provider reporting the eigenvalues of the first n normal modes of
//the protein structure. The values are protein-side features: they are constant
//across the ligands of a batch, and are computed once, on first use.
type Eigenvalues struct {
	an        ModeAnalyzer
	structure string
	n         int
	vals      []float64 //nil until first computed
}

//NewEigenvalues returns the Provider for the first n modes of the given structure.
func NewEigenvalues(an ModeAnalyzer, structure string, n int) (*Eigenvalues, error) {
	if an == nil {
		return nil, Error{message: ErrNilAnalyzer, tool: "nma", critical: true, deco: []string{"NewEigenvalues"}}
	}
	if n <= 0 {
		return nil, Error{message: fmt.Sprintf("Nonpositive mode count %d", n), tool: "nma", critical: true, deco: []string{"NewEigenvalues"}}
	}
	return &Eigenvalues{an: an, structure: structure, n: n}, nil
}

//Titles returns one label per mode eigenvalue.
func (E *Eigenvalues) Titles() []string {
	ret := make([]string, 0, E.n)
	for i := 0; i < E.n; i++ {
		ret = append(ret, fmt.Sprintf("nma_eigval.%d", i))
	}
	return ret
}

//Len returns the dimensionality of the provider.
func (E *Eigenvalues) Len() int {
	return E.n
}

//Single returns the mode eigenvalues. The ligand is ignored: these are features of
//the protein structure.
func (E *Eigenvalues) Single(lig *desc.Mol) ([]float64, error) {
	if E.vals == nil {
		modes, err := E.an.Modes(E.structure, E.n)
		if err != nil {
			return nil, err
		}
		if len(modes) != E.n {
			return nil, Error{message: fmt.Sprintf("%s: %d modes for %d requested", ErrBadWidth, len(modes), E.n),
				tool: "nma", critical: true, deco: []string{"Single"}}
		}
		E.vals = make([]float64, 0, E.n)
		for _, m := range modes {
			E.vals = append(E.vals, m.Eigenvalue())
		}
	}
	ret := make([]float64, len(E.vals))
	copy(ret, E.vals)
	return ret, nil
}

//ModeCounts is a Provider reporting the total eigenvalue and eigenvector counts of a
//normal-mode analysis with n requested modes. Like Eigenvalues, it is a protein-side
//feature, computed once.
type ModeCounts struct {
	an        ModeAnalyzer
	structure string
	n         int
	vals      []float64
}

//NewModeCounts returns the Provider for the given structure and mode count.
func NewModeCounts(an ModeAnalyzer, structure string, n int) (*ModeCounts, error) {
	if an == nil {
		return nil, Error{message: ErrNilAnalyzer, tool: "nma", critical: true, deco: []string{"NewModeCounts"}}
	}
	return &ModeCounts{an: an, structure: structure, n: n}, nil
}

//Titles returns the two column labels.
func (M *ModeCounts) Titles() []string {
	return []string{"nma_num_eigvals", "nma_num_eigvecs"}
}

//Len returns the dimensionality of the provider.
func (M *ModeCounts) Len() int {
	return 2
}

//Single returns the eigenvalue and eigenvector counts. The ligand is ignored.
func (M *ModeCounts) Single(lig *desc.Mol) ([]float64, error) {
	if M.vals == nil {
		eigvals, eigvecs, err := M.an.Counts(M.structure, M.n)
		if err != nil {
			return nil, err
		}
		M.vals = []float64{float64(eigvals), float64(eigvecs)}
	}
	ret := make([]float64, len(M.vals))
	copy(ret, M.vals)
	return ret, nil
}
