/*
 * command.go, part of godesc.
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

package vina

import (
	"bufio"
	"os"
	"os/exec"
	"strconv"
	"strings"

	desc "github.com/rmera/godesc"
)

//The inter-molecular term labels in the executable's score report, in schema order.
var interLabels = []string{"gauss 1", "gauss 2", "repulsion", "hydrophobic", "Hydrogen"}

//The standard weights of the Vina scoring function: the five term weights and the
//rotor penalty weight.
var StandardWeights = []float64{-0.035579, -0.005156, 0.840245, -0.035069, -0.587439, 0.05846}

//CommandEngine scores poses through an external AutoDock-Vina-style executable,
//invoked once per ligand in score-only mode. The program only reports the
//inter-molecular terms, so this engine pairs with a Descriptor over InterTerms;
//asking it for intra-molecular terms is an error. The rotor count is read from the
//TORSDOF record of the ligand PDBQT file. The caller supplies the mapping from a
//molecule to its PDBQT file on disk, as molecules arrive already parsed.
type CommandEngine struct {
	command  string
	args     []string
	files    func(*desc.Mol) string
	weights  []float64
	protfile string
}

//NewCommandEngine returns an engine scoring through an external program, with the
//defaults set (see SetDefaults). files maps a molecule, protein or ligand, to its
//PDBQT file.
func NewCommandEngine(files func(*desc.Mol) string) (*CommandEngine, error) {
	if files == nil {
		return nil, Error{message: "No molecule-to-file mapping given", deco: []string{"NewCommandEngine"}, critical: true}
	}
	E := new(CommandEngine)
	E.files = files
	E.SetDefaults()
	return E, nil
}

//SetDefaults sets the defaults for scoring with AutoDock Vina: the "vina" program in
//the PATH, score-only mode, and the standard Vina weights.
func (E *CommandEngine) SetDefaults() {
	E.command = "vina"
	E.args = []string{"--score_only"}
	E.weights = StandardWeights
}

//SetCommand sets the name (or full path) of the scoring executable and the arguments
//prepended to every invocation.
func (E *CommandEngine) SetCommand(name string, args ...string) {
	E.command = name
	E.args = args
}

//SetWeights replaces the linear-combination weights reported by the engine. Needed
//when the executable was built with non-standard weights; len(w) must be at least 6.
func (E *CommandEngine) SetWeights(w []float64) error {
	if len(w) < 6 {
		return Error{message: ErrWeights, deco: []string{"SetWeights"}, critical: true}
	}
	E.weights = w
	return nil
}

//SetProtein points the engine at the receptor for subsequent scorings.
func (E *CommandEngine) SetProtein(protein *desc.Mol) error {
	if protein == nil {
		return Error{message: "No receptor given", deco: []string{"SetProtein"}, critical: true}
	}
	E.protfile = E.files(protein)
	return nil
}

//Inter invokes the program on the ligand against the configured receptor and parses
//the five inter-molecular terms from its score report.
func (E *CommandEngine) Inter(lig *desc.Mol) ([]float64, error) {
	if E.protfile == "" {
		return nil, Error{message: "No receptor given", ligand: lig.Name(), deco: []string{"Inter"}, critical: true}
	}
	args := append(append([]string{}, E.args...), "--receptor", E.protfile, "--ligand", E.files(lig))
	out, err := exec.Command(E.command, args...).Output()
	if err != nil {
		return nil, Error{message: "Scoring program failed: " + err.Error(), ligand: lig.Name(), deco: []string{"Inter"}, critical: true}
	}
	inter, err := parseInterTerms(out)
	if err != nil {
		return nil, Error{message: err.Error(), ligand: lig.Name(), deco: []string{"Inter"}, critical: true}
	}
	return inter, nil
}

//parseInterTerms extracts the five inter-molecular terms from a score-only report,
//matching lines like "gauss 1 : 70.30694". Vina prints the terms indented under the
//affinity; label casing follows the program's output.
func parseInterTerms(report []byte) ([]float64, error) {
	out := make([]float64, 0, len(interLabels))
	for _, label := range interLabels {
		found := false
		for _, line := range strings.Split(string(report), "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, label) {
				continue
			}
			fields := strings.SplitN(line, ":", 2)
			if len(fields) != 2 || strings.TrimSpace(fields[1]) == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.Fields(fields[1])[0], 64)
			if err != nil {
				return nil, Error{message: "Can't parse the " + label + " term: " + err.Error()}
			}
			out = append(out, v)
			found = true
			break
		}
		if !found {
			return nil, Error{message: "No " + label + " term in the score report"}
		}
	}
	return out, nil
}

//Intra is not available from a score-only executable run. Always returns an error:
//build the Descriptor over InterTerms when scoring with a CommandEngine.
func (E *CommandEngine) Intra(lig *desc.Mol) ([]float64, error) {
	return nil, Error{message: "The scoring program reports inter-molecular terms only", ligand: lig.Name(), deco: []string{"Intra"}, critical: true}
}

//NumRotors reads the rotatable-bond count from the TORSDOF record of the ligand
//PDBQT file.
func (E *CommandEngine) NumRotors(lig *desc.Mol) (int, error) {
	f, err := os.Open(E.files(lig))
	if err != nil {
		return 0, Error{message: "Can't open the ligand file: " + err.Error(), ligand: lig.Name(), deco: []string{"NumRotors"}, critical: true}
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) >= 2 && fields[0] == "TORSDOF" {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return 0, Error{message: "Can't parse the TORSDOF record: " + err.Error(), ligand: lig.Name(), deco: []string{"NumRotors"}, critical: true}
			}
			return n, nil
		}
	}
	return 0, Error{message: "No TORSDOF record in the ligand file", ligand: lig.Name(), deco: []string{"NumRotors"}, critical: true}
}

//Weights returns the configured linear-combination weights.
func (E *CommandEngine) Weights() []float64 {
	return E.weights
}
