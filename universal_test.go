/*
 * universal_test.go, part of godesc.
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
	"testing"

	"gonum.org/v1/gonum/mat"
)

//counts atoms and heavy atoms: a 2-column dense feature.
func sizeFeatures(lig, protein *Mol) ([]float64, error) {
	heavy := 0.0
	for i := 0; i < lig.Len(); i++ {
		if lig.Atom(i).AtomicNum > 1 {
			heavy++
		}
	}
	return []float64{float64(lig.Len()), heavy}, nil
}

func TestUniversalDense(Te *testing.T) {
	u, err := NewUniversal(sizeFeatures, "size", nil, 2, false)
	if err != nil {
		Te.Fatal(err)
	}
	if n, err := u.Len(); err != nil || n != 2 {
		Te.Fatalf("wrong length: %d (%v)", n, err)
	}
	if t := u.Titles(); t[0] != "size.0" || t[1] != "size.1" {
		Te.Errorf("wrong titles: %v", t)
	}
	m, err := u.Build([]*Mol{classifyMol(), scenarioLigand()})
	if err != nil {
		Te.Fatal(err)
	}
	want := mat.NewDense(2, 2, []float64{9, 7, 1, 1})
	if !mat.Equal(m, want) {
		Te.Errorf("wrong dense matrix:\n%v", mat.Formatted(m))
	}
}

func TestUniversalSparse(Te *testing.T) {
	//a toy fingerprint: the set bit is the atom count modulo the width
	fp := func(lig, protein *Mol) ([]float64, error) {
		return []float64{float64(lig.Len() % 8)}, nil
	}
	u, err := NewUniversal(fp, "fp", nil, 8, true)
	if err != nil {
		Te.Fatal(err)
	}
	m, err := u.Build([]*Mol{classifyMol(), scenarioLigand()})
	if err != nil {
		Te.Fatal(err)
	}
	r, c := m.Dims()
	if r != 2 || c != 8 {
		Te.Fatalf("wrong sparse shape: %dx%d", r, c)
	}
	if m.At(0, 1) != 1 || m.At(1, 1) != 1 || m.At(0, 0) != 0 {
		Te.Error("wrong sparse entries")
	}
}

func TestUniversalSparseBadIndex(Te *testing.T) {
	bad := func(lig, protein *Mol) ([]float64, error) {
		return []float64{2.5}, nil
	}
	u, err := NewUniversal(bad, "fp", nil, 8, true)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := u.Build([]*Mol{scenarioLigand()}); err == nil {
		Te.Error("a fractional column index should have been rejected")
	}
	toowide := func(lig, protein *Mol) ([]float64, error) {
		return []float64{8}, nil
	}
	u, err = NewUniversal(toowide, "fp", nil, 8, true)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := u.Build([]*Mol{scenarioLigand()}); err == nil {
		Te.Error("an out-of-width column index should have been rejected")
	}
}

func TestUniversalConf(Te *testing.T) {
	if _, err := NewUniversal(nil, "x", nil, 0, false); err == nil {
		Te.Error("a nil function should have been rejected")
	}
	if _, err := NewUniversal(sizeFeatures, "", nil, 0, false); err == nil {
		Te.Error("an empty label should have been rejected")
	}
	u, err := NewUniversal(sizeFeatures, "size", nil, 0, false)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := u.Len(); err == nil {
		Te.Error("Len without a declared width should fail")
	}
	if _, err := u.Build([]*Mol{scenarioLigand()}); err != nil {
		Te.Error("dense building should not need a declared width:", err)
	}
}
