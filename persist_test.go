/*
 * persist_test.go, part of godesc.
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

package desc

import (
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMatrixIO(Te *testing.T) {
	titles := []string{"6.6", "7.6", "size.0"}
	m := mat.NewDense(3, 3, []float64{
		1, 0, 9,
		0, 2, 1.5,
		1e-7, 0, -3.25,
	})
	path := filepath.Join(Te.TempDir(), "descs.zst")
	if err := WriteMatrix(path, titles, m); err != nil {
		Te.Fatal(err)
	}
	rtitles, rm, err := ReadMatrix(path)
	if err != nil {
		Te.Fatal(err)
	}
	for i, t := range titles {
		if rtitles[i] != t {
			Te.Errorf("title %d: got %s, want %s", i, rtitles[i], t)
		}
	}
	if !mat.Equal(m, rm) {
		Te.Errorf("matrices differ after the round trip:\n%v", mat.Formatted(rm))
	}
}

func TestMatrixIOBad(Te *testing.T) {
	m := mat.NewDense(1, 2, []float64{1, 2})
	path := filepath.Join(Te.TempDir(), "descs.zst")
	if err := WriteMatrix(path, []string{"only-one"}, m); err == nil {
		Te.Error("a title/column mismatch should have been rejected")
	}
	if _, _, err := ReadMatrix(filepath.Join(Te.TempDir(), "nope.zst")); err == nil {
		Te.Error("reading a missing file should fail")
	}
}
