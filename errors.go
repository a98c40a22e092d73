/*
 * errors.go, part of godesc.
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

//This error predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package). We should avoid
//using the Decorate method and/or make it use the "%w" directive internally.

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Allows adding information when passing the error up. Each call also returns the current "decoration" slice of strings. If passed an empty string, it should just return the current value, not add the empty string to the slice. The slice should contain a list of functions in the calling stack, plus, for each function, any relevant information, or nothing.
}

// ConfError is the error returned for invalid descriptor configurations: malformed
// cutoffs, unknown classification modes, unknown type keys, sparse output without a
// declared width. It is always critical: configuration errors abort the whole batch
// and are raised at construction, or at first use for what can't be known earlier.
type ConfError struct {
	message string
	key     string //the offending configuration value, or empty
	deco    []string
}

func (err ConfError) Error() string {
	if err.key != "" {
		return fmt.Sprintf("godesc: %s: %s", err.message, err.key)
	}
	return "godesc: " + err.message
}

//Decorate adds new information to the error
func (err ConfError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true. A bad configuration always aborts the batch.
func (err ConfError) Critical() bool { return true }

//Key returns the offending configuration value, if the error is tied to one,
//or an empty string.
func (err ConfError) Key() string { return err.key }

const (
	ErrUnknownMode  = "Unsupported atom selection mode"
	ErrUnknownType  = "Unsupported atom type"
	ErrBadCutoff    = "Unsupported shape of cutoff"
	ErrNoTypes      = "No ligand types given"
	ErrAlignedLists = "Aligned pairs requested for type lists of unequal length"
	ErrNoProtein    = "No protein reference configured"
	ErrNoWidth      = "The length of the descriptor is not defined"
	ErrNoLabel      = "No label given for the wrapped function"
	ErrBadSparseRow = "Sparse rows must contain integer column indexes within the declared width"
)
