/*
 * persist.go, part of godesc.
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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

/*A built descriptor matrix can be stored in a small zstd-compressed text container,
with the column titles in the header, so the expensive part of a batch survives the
process that computed it. The format is a sequence of "key=value" header lines, a
"** rows cols" line, and one space-separated text row per ligand.*/

//WriteMatrix stores the matrix m with its column titles in the file path,
//zstd-compressed. The number of titles must match the column count.
func WriteMatrix(path string, titles []string, m *mat.Dense) error {
	r, c := m.Dims()
	if len(titles) != c {
		return fmt.Errorf("godesc.WriteMatrix: %d titles for %d columns", len(titles), c)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return err
	}
	defer zw.Close() //harmless on the normal path, stops the encoder goroutines on the error ones
	h := bufio.NewWriter(zw)
	if _, err := fmt.Fprintf(h, "titles=%s\n", strings.Join(titles, "|")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(h, "** %d %d\n", r, c); err != nil {
		return err
	}
	for i := 0; i < r; i++ {
		fields := make([]string, c)
		for j := 0; j < c; j++ {
			fields[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if _, err := fmt.Fprintln(h, strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	if err := h.Flush(); err != nil {
		return err
	}
	return zw.Close()
}

//ReadMatrix reads back a matrix written by WriteMatrix, returning the column
//titles and the matrix.
func ReadMatrix(path string) ([]string, *mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, nil, err
	}
	defer zr.Close()
	h := bufio.NewReader(zr)
	var titles []string
	var rows, cols int
	for {
		str, err := h.ReadString('\n')
		if err != nil {
			return nil, nil, fmt.Errorf("godesc.ReadMatrix: can't read header of %s: %s", path, err.Error())
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			dims := strings.Fields(str)
			if len(dims) != 3 {
				return nil, nil, fmt.Errorf("godesc.ReadMatrix: malformed dimension line in %s: %s", path, str)
			}
			if rows, err = strconv.Atoi(dims[1]); err != nil {
				return nil, nil, fmt.Errorf("godesc.ReadMatrix: can't read row count from '%s': %s", dims[1], err.Error())
			}
			if cols, err = strconv.Atoi(dims[2]); err != nil {
				return nil, nil, fmt.Errorf("godesc.ReadMatrix: can't read column count from '%s': %s", dims[2], err.Error())
			}
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			return nil, nil, fmt.Errorf("godesc.ReadMatrix: malformed header line in %s: %s", path, str)
		}
		if kv[0] == "titles" {
			titles = strings.Split(kv[1], "|")
		}
	}
	if len(titles) != cols {
		return nil, nil, fmt.Errorf("godesc.ReadMatrix: %d titles for %d columns in %s", len(titles), cols, path)
	}
	ret := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		str, err := h.ReadString('\n')
		if err != nil {
			return nil, nil, fmt.Errorf("godesc.ReadMatrix: can't read the %d th row of %s: %s", i, path, err.Error())
		}
		fields := strings.Fields(str)
		if len(fields) != cols {
			return nil, nil, fmt.Errorf("godesc.ReadMatrix: row %d of %s has %d fields, want %d", i, path, len(fields), cols)
		}
		for j, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("godesc.ReadMatrix: bad value '%s' at %d,%d of %s", field, i, j, path)
			}
			ret.Set(i, j, v)
		}
	}
	return titles, ret, nil
}
