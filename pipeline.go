/*
 * pipeline.go, part of godesc.
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

//Provider is the uniform contract for anything that computes named numeric features
//for a ligand, optionally relative to a configured protein reference: the
//close-contacts engine, wrapped functions, pose-scoring terms, external prediction
//tools. A Provider must return one value per title, in title order, for every ligand.
type Provider interface {
	//Titles returns one label per feature, in the order Single emits them.
	Titles() []string

	//Single computes the feature vector for one ligand.
	Single(lig *Mol) ([]float64, error)
}

//Pipeline concatenates the output of several Providers into a single feature vector
//per ligand. It replaces per-combination descriptor variants: instead of a dedicated
//"close contacts plus property X" descriptor for every X, configure one Pipeline with
//the close-contacts engine and a Provider per extra source. Pipeline is itself a
//Provider, so pipelines compose.
type Pipeline struct {
	providers []Provider
	cpus      int
}

//NewPipeline returns a Pipeline over the given providers, in order. At least one
//provider is required, and every provider must know its own dimensionality: a
//provider with no titles (e.g. a dense Universal built without a declared width)
//can't be concatenated and is rejected here, with a ConfError.
func NewPipeline(providers ...Provider) (*Pipeline, error) {
	if len(providers) == 0 {
		return nil, fmt.Errorf("godesc: a Pipeline needs at least one provider")
	}
	for i, p := range providers {
		if len(p.Titles()) == 0 {
			return nil, ConfError{message: ErrNoWidth, key: fmt.Sprintf("provider %d", i), deco: []string{"NewPipeline"}}
		}
	}
	P := new(Pipeline)
	P.providers = providers
	return P, nil
}

//Titles returns the concatenated titles of all providers, in provider order.
func (P *Pipeline) Titles() []string {
	var ret []string
	for _, p := range P.providers {
		ret = append(ret, p.Titles()...)
	}
	return ret
}

//Len returns the total dimensionality: the sum of the providers' column counts.
func (P *Pipeline) Len() int {
	return len(P.Titles())
}

//Cpus returns the number of goroutines used to process a ligand batch,
//and sets it, if a valid value is given.
func (P *Pipeline) Cpus(cpus ...int) int {
	if P.cpus == 0 {
		P.cpus = 1 //external-tool providers are rarely safe to run concurrently, so the pipeline defaults to sequential batches
	}
	ret := P.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		P.cpus = cpus[0]
	}
	return ret
}

//Single computes and concatenates the feature vectors of every provider for one
//ligand, in provider order. A provider returning a vector whose length disagrees
//with its own titles is a programming error and panics.
func (P *Pipeline) Single(lig *Mol) ([]float64, error) {
	out := make([]float64, 0, P.Len())
	for _, p := range P.providers {
		v, err := p.Single(lig)
		if err != nil {
			if err2, ok := err.(Error); ok {
				err2.Decorate("Pipeline.Single")
			}
			return nil, err
		}
		if len(v) != len(p.Titles()) {
			panic(fmt.Sprintf("godesc: provider emitted %d values for %d titles", len(v), len(p.Titles())))
		}
		out = append(out, v...)
	}
	return out, nil
}

//Build computes the concatenated features for a series of ligands, one row per
//ligand, in input order.
func (P *Pipeline) Build(ligands []*Mol) (*mat.Dense, error) {
	P.Cpus() //makes sure the default is set
	return buildRows(P, ligands)
}
