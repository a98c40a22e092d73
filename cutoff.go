/*
 * cutoff.go, part of godesc.
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

import "fmt"

//Shells is a normalized cutoff specification: an ordered table of distance
//intervals, each lower-exclusive and upper-inclusive, used to bin interatomic
//distances. It also remembers the original, pre-normalization argument, so a
//descriptor serialized with it re-derives the same expanded form.
type Shells struct {
	ivs  [][2]float64
	orig []float64 //nil when built from an explicit interval table
}

//SingleCutoff returns the one-shell specification (0,r]: the classic single
//upper bound with an implicit lower bound of zero.
func SingleCutoff(r float64) *Shells {
	return &Shells{ivs: [][2]float64{{0, r}}, orig: []float64{r}}
}

//NewShells normalizes a flat cutoff argument. A single value r is the single
//cutoff (0,r]. A sequence of N+1 strictly increasing boundaries (0,2,4,6...)
//is auto-expanded into N contiguous intervals. Anything else is a ConfError.
func NewShells(bounds []float64) (*Shells, error) {
	if len(bounds) == 0 {
		return nil, ConfError{message: ErrBadCutoff, key: "empty boundary list", deco: []string{"NewShells"}}
	}
	if len(bounds) == 1 {
		return SingleCutoff(bounds[0]), nil
	}
	S := new(Shells)
	S.orig = make([]float64, len(bounds))
	copy(S.orig, bounds)
	S.ivs = make([][2]float64, 0, len(bounds)-1)
	for i := 0; i < len(bounds)-1; i++ {
		if bounds[i+1] <= bounds[i] {
			return nil, ConfError{message: ErrBadCutoff,
				key:  fmt.Sprintf("boundaries not strictly increasing at position %d (%g, %g)", i, bounds[i], bounds[i+1]),
				deco: []string{"NewShells"}}
		}
		S.ivs = append(S.ivs, [2]float64{bounds[i], bounds[i+1]})
	}
	return S, nil
}

//ShellsFromIntervals builds a cutoff from an explicit (N,2) interval table.
//Each interval must have its lower bound strictly below its upper bound;
//otherwise a ConfError is returned. The intervals need not be contiguous.
func ShellsFromIntervals(ivs [][2]float64) (*Shells, error) {
	if len(ivs) == 0 {
		return nil, ConfError{message: ErrBadCutoff, key: "empty interval table", deco: []string{"ShellsFromIntervals"}}
	}
	S := new(Shells)
	S.ivs = make([][2]float64, len(ivs))
	for i, iv := range ivs {
		if iv[1] <= iv[0] {
			return nil, ConfError{message: ErrBadCutoff,
				key:  fmt.Sprintf("interval %d not increasing (%g, %g)", i, iv[0], iv[1]),
				deco: []string{"ShellsFromIntervals"}}
		}
		S.ivs[i] = iv
	}
	return S, nil
}

//Count returns the number of shells.
func (S *Shells) Count() int {
	return len(S.ivs)
}

//Single returns whether this is a single-cutoff specification, i.e. one
//shell given as a plain scalar upper bound.
func (S *Shells) Single() bool {
	return len(S.ivs) == 1 && len(S.orig) == 1
}

//Max returns the largest upper boundary across all shells. Nothing farther
//than Max from every ligand atom can fall inside any shell.
func (S *Shells) Max() float64 {
	max := S.ivs[0][1]
	for _, iv := range S.ivs[1:] {
		if iv[1] > max {
			max = iv[1]
		}
	}
	return max
}

//Interval returns the (lower, upper) boundaries of shell i.
//Panics if out of range.
func (S *Shells) Interval(i int) (float64, float64) {
	if i >= len(S.ivs) {
		panic("Shells: Requested interval out of bounds")
	}
	return S.ivs[i][0], S.ivs[i][1]
}

//Contains returns whether the distance d falls in shell i, with the lower
//boundary exclusive and the upper inclusive.
func (S *Shells) Contains(i int, d float64) bool {
	lo, hi := S.Interval(i)
	return d > lo && d <= hi
}

//Original returns the flat cutoff argument this specification was built from,
//or nil if it was built from an explicit interval table.
func (S *Shells) Original() []float64 {
	if S.orig == nil {
		return nil
	}
	ret := make([]float64, len(S.orig))
	copy(ret, S.orig)
	return ret
}

//Intervals returns a copy of the normalized interval table.
func (S *Shells) Intervals() [][2]float64 {
	ret := make([][2]float64, len(S.ivs))
	copy(ret, S.ivs)
	return ret
}
