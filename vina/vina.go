/*
 * vina.go, part of godesc.
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

//Package vina exposes the force-field terms of an AutoDock-Vina-style pose-scoring
//engine as a descriptor Provider. The engine itself is a black box: this package only
//defines the contract it must satisfy and the bookkeeping around it (term schema,
//affinity combination, memoization).
package vina

import (
	"encoding/json"
	"fmt"

	desc "github.com/rmera/godesc"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//The term vocabulary, in schema order: the combined affinity, the five
//inter-molecular terms, the five intra-molecular terms and the rotor count.
var AllTerms = []string{
	"vina_affinity",
	//inter-molecular interactions
	"vina_gauss1",
	"vina_gauss2",
	"vina_repulsion",
	"vina_hydrophobic",
	"vina_hydrogen",
	//intra-molecular interactions
	"vina_intra_gauss1",
	"vina_intra_gauss2",
	"vina_intra_repulsion",
	"vina_intra_hydrophobic",
	"vina_intra_hydrogen",
	"vina_num_rotors",
}

//InterTerms is the term subset produced by scoring engines that only report the
//combined affinity and the inter-molecular terms.
var InterTerms = AllTerms[:6]

//Engine is the pose-scoring black box. Inter and Intra return the five
//inter-molecular and intra-molecular force-field terms for a ligand against the
//protein set with SetProtein; Weights returns the six linear-combination weights
//(five term weights plus the rotor penalty weight).
type Engine interface {
	SetProtein(protein *desc.Mol) error
	Inter(lig *desc.Mol) ([]float64, error)
	Intra(lig *desc.Mol) ([]float64, error)
	NumRotors(lig *desc.Mol) (int, error)
	Weights() []float64
}

//Error is the error type for the vina package. It fulfills desc.Error.
type Error struct {
	message  string
	ligand   string //the ligand being scored, or empty
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.ligand != "" {
		return fmt.Sprintf("godesc/vina: ligand %s: %s", err.ligand, err.message)
	}
	return "godesc/vina: " + err.message
}

//Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true for errors that should abort the batch (engine/schema
//inconsistencies), false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	ErrUnknownTerm = "Unknown vina term requested"
	ErrNoEngine    = "No scoring engine given"
	ErrSchema      = "Engine term set disagrees with the declared schema"
	ErrWeights     = "Engine returned fewer than 6 weights"
)

//scoreKey identifies one memoized scoring: the scores of a ligand pose are only
//valid against one protein.
type scoreKey struct {
	ligand, protein string
}

//Descriptor builds fixed-length vectors of pose-scoring terms, one row per ligand.
//Scores are memoized in an explicit cache keyed by (ligand name, protein name), owned
//by the Descriptor rather than spliced into the molecule data, so repeated builds on
//the same ligand don't re-invoke the engine.
type Descriptor struct {
	engine  Engine
	protein *desc.Mol
	terms   []string
	cache   map[scoreKey]map[string]float64
}

//NewDescriptor returns a Descriptor over the given engine, reporting the requested
//terms in order. terms defaults to AllTerms when nil; a term outside the AllTerms
//vocabulary is a configuration error. protein may be nil and supplied later.
func NewDescriptor(engine Engine, protein *desc.Mol, terms []string) (*Descriptor, error) {
	if engine == nil {
		return nil, Error{message: ErrNoEngine, deco: []string{"NewDescriptor"}, critical: true}
	}
	if terms == nil {
		terms = AllTerms
	}
	for _, t := range terms {
		if !isInString(AllTerms, t) {
			return nil, Error{message: ErrUnknownTerm + ": " + t, deco: []string{"NewDescriptor"}, critical: true}
		}
	}
	D := new(Descriptor)
	D.engine = engine
	D.terms = make([]string, len(terms))
	copy(D.terms, terms)
	D.cache = make(map[scoreKey]map[string]float64)
	if protein != nil {
		if err := D.SetProtein(protein); err != nil {
			return nil, err
		}
	}
	return D, nil
}

//SetProtein rebinds the protein reference on the descriptor and the engine.
//Memoized scores for other proteins stay valid, as the cache is keyed by protein.
func (D *Descriptor) SetProtein(protein *desc.Mol) error {
	if err := D.engine.SetProtein(protein); err != nil {
		return err
	}
	D.protein = protein
	return nil
}

//Titles returns the requested term names, which are also the column labels.
func (D *Descriptor) Titles() []string {
	ret := make([]string, len(D.terms))
	copy(ret, D.terms)
	return ret
}

//Len returns the dimensionality of the descriptor.
func (D *Descriptor) Len() int {
	return len(D.terms)
}

//needsIntra returns whether any requested term requires the intra-molecular scores.
func (D *Descriptor) needsIntra() bool {
	for _, t := range D.terms {
		if isInString(AllTerms[6:11], t) {
			return true
		}
	}
	return false
}

//score computes (or recalls) the full term map for a ligand. The affinity is the
//weighted sum of the five inter-molecular terms, damped by the rotor count:
//sum(w[:5]*inter) / (1 + w[5]*rotors). A term count that disagrees with the schema
//is a fatal consistency error carrying the computed sub-scores.
func (D *Descriptor) score(lig *desc.Mol) (map[string]float64, error) {
	protname := ""
	if D.protein != nil {
		protname = D.protein.Name()
	}
	key := scoreKey{ligand: lig.Name(), protein: protname}
	if s, ok := D.cache[key]; ok {
		return s, nil
	}
	inter, err := D.engine.Inter(lig)
	if err != nil {
		return nil, err
	}
	rotors, err := D.engine.NumRotors(lig)
	if err != nil {
		return nil, err
	}
	var intra []float64
	if D.needsIntra() {
		if intra, err = D.engine.Intra(lig); err != nil {
			return nil, err
		}
	} else {
		intra = make([]float64, 5) //zero-filled placeholders for the unrequested terms
	}
	if len(inter)+len(intra)+2 != len(AllTerms) {
		return nil, Error{message: fmt.Sprintf("%s: inter %v, intra %v, rotors %d", ErrSchema, inter, intra, rotors),
			ligand: lig.Name(), deco: []string{"score"}, critical: true}
	}
	w := D.engine.Weights()
	if len(w) < 6 {
		return nil, Error{message: ErrWeights, ligand: lig.Name(), deco: []string{"score"}, critical: true}
	}
	affinity := floats.Dot(w[:5], inter) / (1 + w[5]*float64(rotors))
	s := make(map[string]float64, len(AllTerms))
	s[AllTerms[0]] = affinity
	for i, v := range inter {
		s[AllTerms[1+i]] = v
	}
	for i, v := range intra {
		s[AllTerms[6+i]] = v
	}
	s[AllTerms[11]] = float64(rotors)
	D.cache[key] = s
	return s, nil
}

//Single computes the requested term vector for one ligand.
func (D *Descriptor) Single(lig *desc.Mol) ([]float64, error) {
	s, err := D.score(lig)
	if err != nil {
		if err2, ok := err.(desc.Error); ok {
			err2.Decorate("Single")
		}
		return nil, err
	}
	out := make([]float64, 0, len(D.terms))
	for _, t := range D.terms {
		out = append(out, s[t])
	}
	return out, nil
}

//Build computes the term vectors for a series of ligands, one row per ligand, in
//input order. If a protein is given it rebinds the configured reference.
func (D *Descriptor) Build(ligands []*desc.Mol, protein ...*desc.Mol) (*mat.Dense, error) {
	if len(protein) > 0 && protein[0] != nil {
		if err := D.SetProtein(protein[0]); err != nil {
			return nil, err
		}
	}
	if len(ligands) == 0 {
		return nil, fmt.Errorf("godesc/vina: no ligands to build")
	}
	ret := mat.NewDense(len(ligands), D.Len(), nil)
	for i, lig := range ligands {
		row, err := D.Single(lig)
		if err != nil {
			if err2, ok := err.(desc.Error); ok {
				err2.Decorate(fmt.Sprintf("Build: failed on the %d th ligand (%s)", i, lig.Name()))
			}
			return nil, err
		}
		ret.SetRow(i, row)
	}
	return ret, nil
}

//MarshalJSON serializes the configuration of the descriptor: the requested term
//names. The engine and the protein are live state and are excluded; see
//UnmarshalJSON.
func (D *Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Terms []string `json:"terms"`
	}{Terms: D.terms})
}

//UnmarshalJSON reconstructs the descriptor configuration. The caller must re-supply
//the engine with SetEngine and the protein with SetProtein before building.
func (D *Descriptor) UnmarshalJSON(b []byte) error {
	var j struct {
		Terms []string `json:"terms"`
	}
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	for _, t := range j.Terms {
		if !isInString(AllTerms, t) {
			return Error{message: ErrUnknownTerm + ": " + t, deco: []string{"UnmarshalJSON"}, critical: true}
		}
	}
	D.terms = j.Terms
	if D.terms == nil {
		D.terms = AllTerms
	}
	D.cache = make(map[scoreKey]map[string]float64)
	return nil
}

//SetEngine rebinds the scoring engine, typically after reconstructing a serialized
//descriptor. The memo cache is dropped: scores from another engine are not trusted.
func (D *Descriptor) SetEngine(engine Engine) {
	D.engine = engine
	D.cache = make(map[scoreKey]map[string]float64)
}

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, v := range container {
		if v == test {
			return true
		}
	}
	return false
}
