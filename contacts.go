/*
 * contacts.go, part of godesc.
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
	"runtime"

	"gonum.org/v1/gonum/mat"
)

//CloseContacts tallies atoms of protein type X within a distance cutoff (or a set
//of distance shells) from ligand atoms of type Y, one integer count per
//(protein type, ligand type, shell) combination, in a fixed column order:
//protein type outermost, ligand type next, shell innermost.
type CloseContacts struct {
	protein      *Mol
	shells       *Shells
	mode         Mode
	ligandTypes  []string
	proteinTypes []string
	aligned      bool
	titles       []string
	cpus         int
}

//NewCloseContacts builds a close-contacts descriptor. protein is the default reference
//and may be nil, in which case it must be supplied before building (see SetProtein).
//shells may be nil for the classic 4 A single cutoff. proteinTypes defaults to
//ligandTypes when nil. With aligned true, the i-th protein type is paired only with
//the i-th ligand type, and both lists must have the same length; otherwise every
//protein type is paired with every ligand type. All configuration is validated here:
//unknown modes or type keys, malformed cutoffs and mismatched aligned lists return
//a ConfError, and never get to see a ligand.
func NewCloseContacts(protein *Mol, shells *Shells, mode Mode, ligandTypes, proteinTypes []string, aligned bool) (*CloseContacts, error) {
	if len(ligandTypes) == 0 {
		return nil, ConfError{message: ErrNoTypes, deco: []string{"NewCloseContacts"}}
	}
	if shells == nil {
		shells = SingleCutoff(4)
	}
	if proteinTypes == nil {
		proteinTypes = ligandTypes
	}
	if aligned && len(ligandTypes) != len(proteinTypes) {
		return nil, ConfError{message: ErrAlignedLists,
			key:  fmt.Sprintf("%d ligand vs %d protein types", len(ligandTypes), len(proteinTypes)),
			deco: []string{"NewCloseContacts"}}
	}
	if err := ValidateTypes(ligandTypes, mode); err != nil {
		err.(ConfError).Decorate("NewCloseContacts")
		return nil, err
	}
	if err := ValidateTypes(proteinTypes, mode); err != nil {
		err.(ConfError).Decorate("NewCloseContacts")
		return nil, err
	}
	C := new(CloseContacts)
	C.protein = protein
	C.shells = shells
	C.mode = mode
	C.ligandTypes = make([]string, len(ligandTypes))
	copy(C.ligandTypes, ligandTypes)
	C.proteinTypes = make([]string, len(proteinTypes))
	copy(C.proteinTypes, proteinTypes)
	C.aligned = aligned
	C.cpus = runtime.NumCPU()
	C.titles = C.buildTitles()
	return C, nil
}

//A protein-type/ligand-type pair, in pairing order.
type typePair struct {
	prot, lig string
}

//pairs returns the type pairs in the fixed enumeration order: element-wise for
//aligned pairing, protein type outer and ligand type inner for the cross product.
func (C *CloseContacts) pairs() []typePair {
	if C.aligned {
		ret := make([]typePair, 0, len(C.ligandTypes))
		for i, l := range C.ligandTypes {
			ret = append(ret, typePair{prot: C.proteinTypes[i], lig: l})
		}
		return ret
	}
	ret := make([]typePair, 0, len(C.ligandTypes)*len(C.proteinTypes))
	for _, p := range C.proteinTypes {
		for _, l := range C.ligandTypes {
			ret = append(ret, typePair{prot: p, lig: l})
		}
	}
	return ret
}

func (C *CloseContacts) buildTitles() []string {
	pairs := C.pairs()
	if C.shells.Single() {
		ret := make([]string, 0, len(pairs))
		for _, pr := range pairs {
			ret = append(ret, fmt.Sprintf("%s.%s", pr.prot, pr.lig))
		}
		return ret
	}
	ret := make([]string, 0, len(pairs)*C.shells.Count())
	for _, pr := range pairs {
		for i := 0; i < C.shells.Count(); i++ {
			lo, hi := C.shells.Interval(i)
			ret = append(ret, fmt.Sprintf("%s.%s_%g-%g", pr.prot, pr.lig, lo, hi))
		}
	}
	return ret
}

//Len returns the dimensionality of the descriptor, derived from the configuration alone:
//len(ligandTypes)*shells for aligned pairing, len(proteinTypes)*len(ligandTypes)*shells
//for the cross product. Every row built by Build has exactly this many columns.
func (C *CloseContacts) Len() int {
	if C.aligned {
		return len(C.ligandTypes) * C.shells.Count()
	}
	return len(C.ligandTypes) * len(C.proteinTypes) * C.shells.Count()
}

//Titles returns one label per output column, in column order: "p.l" for a single
//cutoff, "p.l_lo-hi" per shell otherwise.
func (C *CloseContacts) Titles() []string {
	ret := make([]string, len(C.titles))
	copy(ret, C.titles)
	return ret
}

//SetProtein rebinds the default protein reference used by subsequent builds.
func (C *CloseContacts) SetProtein(protein *Mol) {
	C.protein = protein
}

//Protein returns the current protein reference, which may be nil.
func (C *CloseContacts) Protein() *Mol {
	return C.protein
}

//Shells returns the distance shells of the descriptor.
func (C *CloseContacts) Shells() *Shells {
	return C.shells
}

//Cpus returns the number of goroutines used to process a ligand batch,
//and sets it, if a valid value is given.
func (C *CloseContacts) Cpus(cpus ...int) int {
	ret := C.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		C.cpus = cpus[0]
	}
	return ret
}

//dist returns the Euclidean distance between row i of a and row j of b.
func dist(a, b *mat.Dense, i, j int) float64 {
	ra := a.RawRowView(i)
	rb := b.RawRowView(j)
	dx := ra[0] - rb[0]
	dy := ra[1] - rb[1]
	dz := ra[2] - rb[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

//neighborhood returns the protein atoms within maxcut of any ligand atom. This is a
//performance reduction, not a semantic filter: atoms farther than the global maximum
//cutoff from every ligand atom cannot fall inside any shell, so classifying only the
//local set cannot change the counts.
func neighborhood(protein, lig *Mol, maxcut float64) *Mol {
	if lig.Len() == 0 || protein.Len() == 0 {
		return protein.Filter(func(*Atom) bool { return false })
	}
	pc := protein.Coords()
	lc := lig.Coords()
	indexes := make([]int, 0, protein.Len())
	for i := 0; i < protein.Len(); i++ {
		for j := 0; j < lig.Len(); j++ {
			if dist(pc, lc, i, j) <= maxcut {
				indexes = append(indexes, i)
				break
			}
		}
	}
	local, err := protein.Select(indexes)
	if err != nil {
		panic("cant happen: neighborhood built an out-of-range index")
	}
	return local
}

//Single computes the close-contacts count vector for one ligand against the configured
//protein reference. The returned slice always has Len() elements; the counts are
//integer-valued. It returns an error if no protein is configured or if the ligand
//can't be classified under the configured types.
func (C *CloseContacts) Single(lig *Mol) ([]float64, error) {
	if C.protein == nil {
		return nil, ConfError{message: ErrNoProtein, deco: []string{"Single"}}
	}
	ligByType, err := AtomsByType(lig, C.ligandTypes, C.mode)
	if err != nil {
		err.(Error).Decorate("Single")
		return nil, err
	}
	local := neighborhood(C.protein, lig, C.shells.Max())
	protByType, err := AtomsByType(local, C.proteinTypes, C.mode)
	if err != nil {
		err.(Error).Decorate("Single")
		return nil, err
	}
	out := make([]float64, 0, C.Len())
	for _, pr := range C.pairs() {
		pm := protByType[typeKey(pr.prot, C.mode)]
		lm := ligByType[typeKey(pr.lig, C.mode)]
		out = C.countPair(out, pm, lm)
	}
	if len(out) != C.Len() {
		panic(fmt.Sprintf("godesc: vector length %d doesn't match descriptor dimensionality %d", len(out), C.Len()))
	}
	return out, nil
}

//countPair appends the per-shell counts for one type pair to out and returns it.
//Either group may be empty, in which case every count for the pair is zero.
func (C *CloseContacts) countPair(out []float64, pm, lm *Mol) []float64 {
	if C.shells.Single() {
		max := C.shells.Max()
		count := 0.0
		for i := 0; i < pm.Len(); i++ {
			for j := 0; j < lm.Len(); j++ {
				if dist(pm.Coords(), lm.Coords(), i, j) <= max {
					count++
				}
			}
		}
		return append(out, count)
	}
	counts := make([]float64, C.shells.Count())
	for i := 0; i < pm.Len(); i++ {
		for j := 0; j < lm.Len(); j++ {
			d := dist(pm.Coords(), lm.Coords(), i, j)
			for s := 0; s < C.shells.Count(); s++ {
				if C.shells.Contains(s, d) {
					counts[s]++
				}
			}
		}
	}
	return append(out, counts...)
}

//Build computes the descriptor for a series of ligands and stacks the results into a
//matrix with one row per ligand, in input order, and Len() columns. If a protein is
//given, it replaces the configured reference for this and subsequent builds: this is
//a deliberate rebind of shared configuration state, not a copy. Ligands are processed
//concurrently (see Cpus); the row order always matches the input order.
func (C *CloseContacts) Build(ligands []*Mol, protein ...*Mol) (*mat.Dense, error) {
	if len(protein) > 0 && protein[0] != nil {
		C.protein = protein[0]
	}
	return buildRows(C, ligands)
}

//BuildOne computes the descriptor matrix for a single ligand (one row).
func (C *CloseContacts) BuildOne(ligand *Mol, protein ...*Mol) (*mat.Dense, error) {
	return C.Build([]*Mol{ligand}, protein...)
}

//buildRows runs p.Single over the ligands, cpus at a time, and stacks the rows in
//input order. Workers communicate through per-ligand channels, so collecting the
//results in channel order keeps the row order equal to the ligand order no matter
//which worker finishes first.
func buildRows(p Provider, ligands []*Mol) (*mat.Dense, error) {
	if len(ligands) == 0 {
		return nil, fmt.Errorf("godesc: no ligands to build")
	}
	cpus := runtime.NumCPU()
	if c, ok := p.(interface{ Cpus(...int) int }); ok {
		cpus = c.Cpus()
	}
	if cpus > len(ligands) {
		cpus = len(ligands)
	}
	type unit struct {
		row []float64
		err error
	}
	results := make([]chan unit, len(ligands))
	sem := make(chan struct{}, cpus)
	for i, lig := range ligands {
		results[i] = make(chan unit, 1)
		sem <- struct{}{}
		go func(lig *Mol, out chan unit) {
			row, err := p.Single(lig)
			out <- unit{row: row, err: err}
			<-sem
		}(lig, results[i])
	}
	var ret *mat.Dense
	for i, k := range results {
		u := <-k
		if u.err != nil {
			if err, ok := u.err.(Error); ok {
				err.Decorate(fmt.Sprintf("Build: failed on the %d th ligand (%s)", i, ligands[i].Name()))
			}
			return nil, u.err
		}
		if ret == nil {
			ret = mat.NewDense(len(ligands), len(u.row), nil)
		}
		ret.SetRow(i, u.row)
	}
	return ret, nil
}
