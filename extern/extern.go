/*
 * extern.go, part of godesc.
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

//Package extern exposes external domain tools as descriptor Providers: an
//out-of-process molecular property predictor, a cheminformatics toolkit, an
//elastic-network/normal-mode analyzer and a structure B-factor source. The tools
//themselves are black boxes (most of them proprietary programs that must be obtained
//independently from their distributors); this package only defines the contracts and
//the glue around them.
package extern

import "fmt"

//Error is the error type for the extern package. It fulfills desc.Error. Non-critical
//errors represent a tool failing on one ligand; they are absorbed by the providers
//(the value defaults to zero and the ligand is recorded in the failure log) so a
//batch keeps going.
type Error struct {
	message  string
	tool     string //the external program involved
	ligand   string //the ligand being processed, or empty
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.ligand != "" {
		return fmt.Sprintf("godesc/extern: %s: ligand %s: %s", err.tool, err.ligand, err.message)
	}
	return fmt.Sprintf("godesc/extern: %s: %s", err.tool, err.message)
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

//Critical returns true for errors that should abort the batch, false for per-ligand
//degradation that the providers absorb.
func (err Error) Critical() bool { return err.critical }

//Tool returns the name of the external program involved.
func (err Error) Tool() string { return err.tool }

const (
	ErrNotRunning  = "Couldn't run the external program"
	ErrNoOutput    = "The external program produced no readable output"
	ErrEmptyField  = "The external program left a property field empty"
	ErrBadWidth    = "The external source returned a vector of unexpected length"
	ErrNilAnalyzer = "No analyzer/toolkit/source given"
)
