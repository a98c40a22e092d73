/*
 * extern_test.go, part of godesc.
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

package extern

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	desc "github.com/rmera/godesc"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func testMol(name string) *desc.Mol {
	ats := []*desc.Atom{{Name: "C1", AtomicNum: 6, Symbol: "C"}}
	mol, err := desc.NewMol(name, ats, mat.NewDense(1, 3, []float64{0, 0, 0}))
	if err != nil {
		panic(err.Error())
	}
	return mol
}

//The property CSV parser tolerates extra columns and arbitrary column order.
func TestPropCSV(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "lig1.CSV")
	data := "molecule,QPlogPo/w,FOSA,FISA,WPSA,QPlogHERG,QPlogKhsa,QPPMDCK,QPlogKp\n" +
		"lig1,2.5,310.2,50.1,0.0,-4.4,0.1,212.8,-2.1\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		Te.Fatal(err)
	}
	props, err := readPropCSV(path)
	if err != nil {
		Te.Fatal(err)
	}
	if props["QPlogPo/w"] != "2.5" || props["FOSA"] != "310.2" {
		Te.Errorf("wrong fields: %v", props)
	}
	tool := NewPropTool()
	tool.SetFailLog(filepath.Join(dir, "propFail.txt"))
	vals := tool.Values("lig1", props)
	want := []float64{310.2, 50.1, 0.0, 2.5, -4.4, 0.1, 212.8, -2.1}
	if !floats.Equal(vals, want) {
		Te.Errorf("wrong values: %v", vals)
	}
}

//A failed prediction zero-fills the missing fields and records the ligand in the
//failure log, without stopping the batch.
func TestPropFailureLog(Te *testing.T) {
	dir := Te.TempDir()
	faillog := filepath.Join(dir, "propFail.txt")
	tool := NewPropTool()
	tool.SetFailLog(faillog)
	props := map[string]string{"FOSA": "310.2", "FISA": "", "WPSA": "bogus"}
	vals := tool.Values("badlig", props)
	if len(vals) != len(PropNames) {
		Te.Fatalf("wrong value count: %d", len(vals))
	}
	if vals[0] != 310.2 || vals[1] != 0 || vals[2] != 0 {
		Te.Errorf("wrong zero-filling: %v", vals)
	}
	logged, err := os.ReadFile(faillog)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(string(logged), "badlig") {
		Te.Errorf("failure log doesn't name the ligand: %q", string(logged))
	}
	if strings.Count(string(logged), "badlig") != 1 {
		Te.Error("the ligand should be logged once, not once per failed field")
	}
}

//fakeAnalyzer is a canned normal-mode analysis.
type fakeMode float64

func (F fakeMode) Eigenvalue() float64 { return float64(F) }

type fakeAnalyzer struct {
	vals  []float64
	calls int
}

func (F *fakeAnalyzer) Modes(structure string, n int) ([]NormalMode, error) {
	F.calls++
	modes := make([]NormalMode, 0, len(F.vals))
	for _, v := range F.vals {
		modes = append(modes, fakeMode(v))
	}
	return modes, nil
}

func (F *fakeAnalyzer) Counts(structure string, n int) (int, int, error) {
	return 3 * n, n, nil
}

func TestEigenvalues(Te *testing.T) {
	an := &fakeAnalyzer{vals: []float64{0.1, 0.5, 1.2}}
	e, err := NewEigenvalues(an, "prot.pdb", 3)
	if err != nil {
		Te.Fatal(err)
	}
	if e.Titles()[2] != "nma_eigval.2" {
		Te.Errorf("wrong titles: %v", e.Titles())
	}
	v, err := e.Single(testMol("lig1"))
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.Equal(v, an.vals) {
		Te.Errorf("wrong eigenvalues: %v", v)
	}
	//protein-side features are computed once per batch, not per ligand
	if _, err := e.Single(testMol("lig2")); err != nil {
		Te.Fatal(err)
	}
	if an.calls != 1 {
		Te.Errorf("analyzer invoked %d times", an.calls)
	}
	//an analyzer returning the wrong number of modes must be caught
	bad, err := NewEigenvalues(&fakeAnalyzer{vals: []float64{0.1}}, "prot.pdb", 3)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := bad.Single(testMol("lig1")); err == nil {
		Te.Error("a mode-count mismatch should have been rejected")
	}
}

func TestModeCounts(Te *testing.T) {
	m, err := NewModeCounts(&fakeAnalyzer{}, "prot.pdb", 5)
	if err != nil {
		Te.Fatal(err)
	}
	v, err := m.Single(testMol("lig1"))
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.Equal(v, []float64{15, 5}) {
		Te.Errorf("wrong counts: %v", v)
	}
}

type fakeToolkit struct{}

func (F fakeToolkit) NumRotors(file string) (int, error) {
	return len(file), nil //makes the output depend visibly on the input file
}

func (F fakeToolkit) NumAromaticRings(file string) (int, error) {
	return 2, nil
}

func TestRotorsRings(Te *testing.T) {
	r, err := NewRotorsRings(fakeToolkit{}, func(m *desc.Mol) string { return m.Name() + ".sdf" })
	if err != nil {
		Te.Fatal(err)
	}
	v, err := r.Single(testMol("lig1"))
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.Equal(v, []float64{8, 2}) {
		Te.Errorf("wrong counts: %v", v)
	}
	if r.Titles()[0] != "num_rotors" {
		Te.Errorf("wrong titles: %v", r.Titles())
	}
	if _, err := NewRotorsRings(nil, nil); err == nil {
		Te.Error("a nil toolkit should have been rejected")
	}
}

type fakeBFactors []float64

func (F fakeBFactors) BFactors(structure string) ([]float64, error) {
	return F, nil
}

func TestBFactors(Te *testing.T) {
	vals := fakeBFactors{10.1, 12.3, 9.8}
	b, err := NewBFactors(vals, "prot.pdb", 3)
	if err != nil {
		Te.Fatal(err)
	}
	if b.Len() != 3 || b.Titles()[0] != "bfactor.0" {
		Te.Errorf("wrong shape: %d, %v", b.Len(), b.Titles())
	}
	v, err := b.Single(testMol("lig1"))
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.Equal(v, []float64(vals)) {
		Te.Errorf("wrong values: %v", v)
	}
	//a source disagreeing with the declared width is a consistency error
	short, err := NewBFactors(vals, "prot.pdb", 5)
	if err != nil {
		Te.Fatal(err)
	}
	_, err = short.Single(testMol("lig1"))
	if err == nil {
		Te.Fatal("a width mismatch should have been rejected")
	}
	if eerr, ok := err.(Error); !ok || !eerr.Critical() {
		Te.Errorf("a width mismatch should be a critical extern.Error, got %T", err)
	}
}
