/*
 * plot_test.go, part of godesc.
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

package descplot

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRowPlot(Te *testing.T) {
	base := filepath.Join(Te.TempDir(), "contacts")
	v := []float64{3, 0, 1, 7, 2, 0}
	titles := []string{"6.6_0-2", "6.6_2-4", "7.6_0-2", "7.6_2-4", "8.6_0-2", "8.6_2-4"}
	if err := RowPlot(v, titles, "close contacts", base); err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat(base + ".png"); err != nil {
		Te.Error("no plot file produced:", err)
	}
	if err := RowPlot(nil, nil, "empty", base); err == nil {
		Te.Error("an empty vector should have been rejected")
	}
	if err := RowPlot(v, titles[:2], "mismatch", base); err == nil {
		Te.Error("a title/value mismatch should have been rejected")
	}
}

func TestMatrixRowPlot(Te *testing.T) {
	base := filepath.Join(Te.TempDir(), "row1")
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	titles := []string{"a", "b", "c"}
	if err := MatrixRowPlot(m, 1, titles, "second ligand", base); err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat(base + ".png"); err != nil {
		Te.Error("no plot file produced:", err)
	}
}
