/*
 * props.go, part of godesc.
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

package extern

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	desc "github.com/rmera/godesc"
)

//PropNames are the predicted molecular properties read from the tool's output, in
//column order.
var PropNames = []string{"FOSA", "FISA", "WPSA", "QPlogPo/w", "QPlogHERG", "QPlogKhsa", "QPPMDCK", "QPlogKp"}

//PropTool runs a proprietary property-prediction program on a ligand structure file
//and reads the properties back from the CSV table the program writes next to the
//input file. A failed prediction (an empty field in the output) is not fatal: the
//value defaults to zero and the ligand identifier is appended to the failure log, so
//batch processing continues.
type PropTool struct {
	command string
	args    []string
	faillog string
}

//NewPropTool returns a handle with the default settings. The command defaults to
//"qikprop" from the PATH and the failure log to "propFail.txt" in the working
//directory.
func NewPropTool() *PropTool {
	T := new(PropTool)
	T.SetDefaults()
	return T
}

func (T *PropTool) SetDefaults() {
	T.command = os.ExpandEnv("qikprop")
	T.args = []string{"-NOJOBID"}
	T.faillog = "./propFail.txt"
}

//SetCommand sets the program (and its fixed arguments) invoked on each ligand file.
func (T *PropTool) SetCommand(name string, args ...string) {
	T.command = name
	T.args = args
}

func (T *PropTool) Command() string {
	return T.command
}

//SetFailLog sets the path of the append-only failure log.
func (T *PropTool) SetFailLog(path string) {
	T.faillog = path
}

//Run invokes the program on the ligand file and parses the resulting CSV, returning
//the raw field values keyed by property name. The CSV is expected at the input path
//with the extension replaced by .CSV, with a header row naming the properties.
func (T *PropTool) Run(ligfile string) (map[string]string, error) {
	args := append(append([]string{}, T.args...), ligfile)
	if err := exec.Command(T.command, args...).Run(); err != nil {
		return nil, Error{message: ErrNotRunning + ": " + err.Error(), tool: T.command, ligand: ligfile, critical: true, deco: []string{"Run"}}
	}
	csvfile := strings.TrimSuffix(ligfile, filepath.Ext(ligfile)) + ".CSV"
	props, err := readPropCSV(csvfile)
	if err != nil {
		return nil, Error{message: ErrNoOutput + ": " + err.Error(), tool: T.command, ligand: ligfile, critical: true, deco: []string{"Run"}}
	}
	return props, nil
}

//readPropCSV reads the first data row of the tool's CSV output and returns the
//fields named in PropNames, as strings. Missing columns read as empty fields.
func readPropCSV(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}
	header := records[0]
	row := records[1]
	props := make(map[string]string, len(PropNames))
	for _, name := range PropNames {
		for i, h := range header {
			if h == name && i < len(row) {
				props[name] = row[i]
				break
			}
		}
	}
	return props, nil
}

//Values converts the raw fields to numbers, in PropNames order. Every empty field
//becomes zero; if there was at least one, the ligand identifier is appended to the
//failure log (once per ligand) and processing continues.
func (T *PropTool) Values(ligand string, props map[string]string) []float64 {
	out := make([]float64, 0, len(PropNames))
	failed := false
	for _, name := range PropNames {
		field := props[name]
		if field == "" { //the prediction failed for this ligand
			if !failed {
				T.logFailure(ligand)
				failed = true
			}
			out = append(out, 0)
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			if !failed {
				T.logFailure(ligand)
				failed = true
			}
			out = append(out, 0)
			continue
		}
		out = append(out, v)
	}
	return out
}

//logFailure appends the ligand identifier to the failure log. Trouble writing the
//log itself is only logged to stderr: it must not take the batch down.
func (T *PropTool) logFailure(ligand string) {
	f, err := os.OpenFile(T.faillog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("godesc/extern: can't open failure log %s: %s", T.faillog, err.Error())
		return
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s \n", ligand); err != nil {
		log.Printf("godesc/extern: can't write failure log %s: %s", T.faillog, err.Error())
	}
}

//Props adapts a PropTool into a descriptor Provider. The caller supplies the mapping
//from a ligand to its structure file on disk, since molecules arrive already parsed.
type Props struct {
	tool  *PropTool
	files func(*desc.Mol) string
}

//NewProps returns a Provider running tool on the file that files returns for
//each ligand.
func NewProps(tool *PropTool, files func(*desc.Mol) string) (*Props, error) {
	if tool == nil || files == nil {
		return nil, Error{message: ErrNilAnalyzer, tool: "props", critical: true, deco: []string{"NewProps"}}
	}
	return &Props{tool: tool, files: files}, nil
}

//Titles returns the property names, which are also the column labels.
func (P *Props) Titles() []string {
	ret := make([]string, len(PropNames))
	copy(ret, PropNames)
	return ret
}

//Len returns the dimensionality of the provider.
func (P *Props) Len() int {
	return len(PropNames)
}

//Single runs the prediction for one ligand and returns the property values, with
//failed fields zero-filled and recorded as per the PropTool contract.
func (P *Props) Single(lig *desc.Mol) ([]float64, error) {
	props, err := P.tool.Run(P.files(lig))
	if err != nil {
		if err2, ok := err.(desc.Error); ok {
			err2.Decorate("Single")
		}
		return nil, err
	}
	return P.tool.Values(lig.Name(), props), nil
}
