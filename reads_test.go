/* Copyright (C) 2020 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package tsrtools

/* -------------------------------------------------------------------------- */

import "testing"

/* -------------------------------------------------------------------------- */

func TestReadEnds1(t *testing.T) {
  g := NewGRanges(
    []string{"chrI", "chrI"},
    []int   {100, 200},
    []int   {150, 250},
    []byte  {'+', '-'})

  reads, err := FivePrimeReadEnds(g)
  if err != nil {
    t.Error("TestReadEnds1 failed!")
  }
  if reads[0].Position != 100 || reads[0].Strand != '+' {
    t.Error("TestReadEnds1 failed!")
  }
  if reads[1].Position != 250 || reads[1].Strand != '-' {
    t.Error("TestReadEnds1 failed!")
  }
  if reads[0].Weight != 1.0 || reads[1].Weight != 1.0 {
    t.Error("TestReadEnds1 failed!")
  }
}

func TestReadEnds2(t *testing.T) {
  // reads without strand information cannot be converted
  g := NewGRanges([]string{"chrI"}, []int{100}, []int{150}, nil)

  if _, err := FivePrimeReadEnds(g); err == nil {
    t.Error("TestReadEnds2 failed!")
  }
}
