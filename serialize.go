/*
 * serialize.go, part of godesc.
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

import "encoding/json"

/*Every descriptor in this library is reconstructible from a compact configuration
tuple, independent of any live protein/ligand state, so it survives process
boundaries. The live protein reference is deliberately excluded from the serialized
state: the caller re-supplies it with SetProtein after reconstruction. The cutoff is
stored as originally given, pre-normalization, so reconstruction re-derives the same
expanded interval table deterministically.*/

type closeContactsJSON struct {
	Mode            Mode         `json:"mode"`
	Cutoff          []float64    `json:"cutoff,omitempty"`
	CutoffIntervals [][2]float64 `json:"cutoff_intervals,omitempty"`
	LigandTypes     []string     `json:"ligand_types"`
	ProteinTypes    []string     `json:"protein_types"`
	AlignedPairs    bool         `json:"aligned_pairs"`
}

//MarshalJSON serializes the configuration of the descriptor: classification mode,
//the cutoff argument as originally given, both type lists and the pairing policy.
func (C *CloseContacts) MarshalJSON() ([]byte, error) {
	j := closeContactsJSON{
		Mode:         C.mode,
		Cutoff:       C.shells.Original(),
		LigandTypes:  C.ligandTypes,
		ProteinTypes: C.proteinTypes,
		AlignedPairs: C.aligned,
	}
	if j.Cutoff == nil {
		j.CutoffIntervals = C.shells.Intervals()
	}
	return json.Marshal(j)
}

//UnmarshalJSON reconstructs the descriptor from a serialized configuration, going
//through NewCloseContacts so the cutoff normalization and the eager validation are
//re-applied. The protein reference is not part of the serialized state and must be
//re-supplied with SetProtein before building.
func (C *CloseContacts) UnmarshalJSON(b []byte) error {
	var j closeContactsJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	var shells *Shells
	var err error
	if j.Cutoff != nil {
		shells, err = NewShells(j.Cutoff)
	} else {
		shells, err = ShellsFromIntervals(j.CutoffIntervals)
	}
	if err != nil {
		err.(Error).Decorate("UnmarshalJSON")
		return err
	}
	nc, err := NewCloseContacts(nil, shells, j.Mode, j.LigandTypes, j.ProteinTypes, j.AlignedPairs)
	if err != nil {
		err.(Error).Decorate("UnmarshalJSON")
		return err
	}
	*C = *nc
	return nil
}
