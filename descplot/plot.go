/*
 * plot.go, part of godesc.
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

/*Package descplot draws quick diagnostic plots of computed descriptor vectors,
using the gonum plot library.*/
package descplot

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//RowPlot draws the values of one descriptor vector as a bar chart, one bar per
//column, labeled with the column titles, and saves it in png format as
//plotname.png. Returns an error or nil.
func RowPlot(v []float64, titles []string, title, plotname string) error {
	if len(v) == 0 {
		return fmt.Errorf("godesc/descplot: empty descriptor vector")
	}
	if len(titles) != len(v) {
		return fmt.Errorf("godesc/descplot: %d titles for %d values", len(titles), len(v))
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.Y.Label.Text = "value"
	bars, err := plotter.NewBarChart(plotter.Values(v), vg.Points(12))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(titles...)
	p.X.Tick.Label.Rotation = 1.2 //radians; the titles are long enough to collide otherwise
	p.X.Tick.Label.XAlign = -0.9
	width := vg.Length(len(v)) * vg.Points(20)
	if width < 4*vg.Inch {
		width = 4 * vg.Inch
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(width, 4*vg.Inch, filename)
}

//MatrixRowPlot draws row i of a built descriptor matrix (see the Build methods of
//the desc package) as a bar chart, as RowPlot does.
func MatrixRowPlot(m mat.Matrix, i int, titles []string, title, plotname string) error {
	_, c := m.Dims()
	v := make([]float64, c)
	for j := 0; j < c; j++ {
		v[j] = m.At(i, j)
	}
	return RowPlot(v, titles, title, plotname)
}
