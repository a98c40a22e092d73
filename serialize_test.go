/*
 * serialize_test.go, part of godesc.
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
	"encoding/json"
	"fmt"
	"testing"

	"gonum.org/v1/gonum/floats"
)

//A descriptor serialized, deserialized and rebound to the same protein must
//produce the same vectors as the original.
func TestJSONRoundTrip(Te *testing.T) {
	sh, err := NewShells([]float64{0, 2, 4, 6})
	if err != nil {
		Te.Fatal(err)
	}
	cc, err := NewCloseContacts(scenarioProtein(), sh, AtomicNums, []string{"6", "7"}, []string{"6", "7", "8"}, false)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := json.Marshal(cc)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("serialized descriptor:", string(b))
	nc := new(CloseContacts)
	if err := json.Unmarshal(b, nc); err != nil {
		Te.Fatal(err)
	}
	nc.SetProtein(scenarioProtein())
	if nc.Len() != cc.Len() {
		Te.Fatalf("lengths differ after the round trip: %d vs %d", nc.Len(), cc.Len())
	}
	for i, t := range cc.Titles() {
		if nc.Titles()[i] != t {
			Te.Fatalf("title %d differs after the round trip: %s vs %s", i, nc.Titles()[i], t)
		}
	}
	lig := scenarioLigand()
	v1, err := cc.Single(lig)
	if err != nil {
		Te.Fatal(err)
	}
	v2, err := nc.Single(lig)
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.Equal(v1, v2) {
		Te.Errorf("vectors differ after the round trip: %v vs %v", v1, v2)
	}
}

//Interval-built shells survive serialization through the interval field.
func TestJSONIntervals(Te *testing.T) {
	sh, err := ShellsFromIntervals([][2]float64{{0, 2}, {4, 6}})
	if err != nil {
		Te.Fatal(err)
	}
	cc, err := NewCloseContacts(nil, sh, Sybyl, []string{"C.3", "N.am"}, nil, true)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := json.Marshal(cc)
	if err != nil {
		Te.Fatal(err)
	}
	nc := new(CloseContacts)
	if err := json.Unmarshal(b, nc); err != nil {
		Te.Fatal(err)
	}
	ivs := nc.Shells().Intervals()
	if len(ivs) != 2 || ivs[1] != [2]float64{4, 6} {
		Te.Errorf("intervals lost in the round trip: %v", ivs)
	}
}
