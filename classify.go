/*
 * classify.go, part of godesc.
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
	"strconv"
	"strings"
)

//Mode selects the atom classification vocabulary used by AtomsByType.
type Mode string

const (
	//AtomicNums selects atoms by atomic number. Type keys are decimal strings ("6" for carbon).
	AtomicNums Mode = "atomic_nums"
	//Sybyl selects atoms whose Sybyl-like type label matches the key exactly (case-sensitive).
	Sybyl Mode = "atom_types_sybyl"
	//AD4 selects atoms by AutoDock4 force-field type, with chemical refinements on top of
	//the element match (see http://autodock.scripps.edu for the type vocabulary).
	AD4 Mode = "atom_types_ad4"
)

//The AutoDock4 type vocabulary. All AD4 keys are capitalized.
var ad4ToAtomicNum = map[string]int{
	"HD": 1, "C": 6, "CD": 6, "A": 6, "N": 7, "NA": 7, "OA": 8, "F": 9,
	"MG": 12, "P": 15, "SA": 16, "S": 16, "CL": 17, "CA": 20, "MN": 25,
	"FE": 26, "CU": 29, "ZN": 30, "BR": 35, "I": 53,
}

//ad4Match returns whether the atom belongs to the (already validated) AD4 type key,
//whose plain element match is against num. On top of the element, the more specific
//types constrain donor/acceptor/aromatic character.
func ad4Match(at *Atom, key string, num int) bool {
	if at.AtomicNum != num {
		return false
	}
	switch key {
	case "HD":
		return at.DonorH
	case "C":
		return !at.Aromatic
	case "CD":
		//not a canonical AD4 type, although used by NNScore: aliphatic carbon excluding donors
		return !at.Donor
	case "A":
		return at.Aromatic
	case "N", "S":
		return !at.Acceptor
	case "NA", "OA", "SA":
		return at.Acceptor
	}
	return true
}

//ValidateTypes checks that every type key in types is legal under the given mode, so
//descriptor constructors can reject bad configurations before any ligand is seen.
//An unrecognized AD4 key, a non-numeric key in atomic-number mode, or an unknown
//mode return a ConfError naming the offender.
func ValidateTypes(types []string, mode Mode) error {
	switch mode {
	case AtomicNums:
		for _, t := range types {
			if _, err := strconv.Atoi(t); err != nil {
				return ConfError{message: ErrUnknownType, key: t}
			}
		}
	case Sybyl:
		//any label is legal; unmatched ones give legitimately empty subsets
	case AD4:
		for _, t := range types {
			if _, ok := ad4ToAtomicNum[strings.ToUpper(t)]; !ok {
				return ConfError{message: ErrUnknownType, key: t}
			}
		}
	default:
		return ConfError{message: ErrUnknownMode, key: string(mode)}
	}
	return nil
}

//AtomsByType partitions the atoms of mol by the requested type keys, returning a map
//from each distinct key to the sub-molecule of matching atoms. Keys are de-duplicated
//first; in AD4 mode they are also upper-cased, and the returned map is keyed by the
//upper-cased form. A known key matching no atom maps to a valid empty molecule. An
//unknown AD4 key or an unknown mode returns a ConfError naming the offender.
func AtomsByType(mol *Mol, types []string, mode Mode) (map[string]*Mol, error) {
	out := make(map[string]*Mol, len(types))
	switch mode {
	case AtomicNums:
		for _, t := range types {
			if _, ok := out[t]; ok {
				continue
			}
			num, err := strconv.Atoi(t)
			if err != nil {
				return nil, ConfError{message: ErrUnknownType, key: t, deco: []string{"AtomsByType"}}
			}
			out[t] = mol.Filter(func(at *Atom) bool { return at.AtomicNum == num })
		}
	case Sybyl:
		for _, t := range types {
			if _, ok := out[t]; ok {
				continue
			}
			label := t
			out[t] = mol.Filter(func(at *Atom) bool { return at.Type == label })
		}
	case AD4:
		for _, t := range types {
			key := strings.ToUpper(t)
			if _, ok := out[key]; ok {
				continue
			}
			num, ok := ad4ToAtomicNum[key]
			if !ok {
				return nil, ConfError{message: ErrUnknownType, key: t, deco: []string{"AtomsByType"}}
			}
			out[key] = mol.Filter(func(at *Atom) bool { return ad4Match(at, key, num) })
		}
	default:
		return nil, ConfError{message: ErrUnknownMode, key: string(mode), deco: []string{"AtomsByType"}}
	}
	return out, nil
}

//typeKey returns the key under which AtomsByType files the given type in the given
//mode (the upper-cased form for AD4, the type itself otherwise).
func typeKey(t string, mode Mode) string {
	if mode == AD4 {
		return strings.ToUpper(t)
	}
	return t
}
