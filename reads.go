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

import "fmt"

/* -------------------------------------------------------------------------- */

// Convert aligned reads to their 5'-ends, i.e. the start of the range
// for reads on the plus strand and the end of the range for reads on
// the minus strand. All reads are assigned unit weight.
func FivePrimeReadEnds(g GRanges) ([]ReadEnd, error) {
  reads := make([]ReadEnd, g.Length())
  for i := 0; i < g.Length(); i++ {
    switch g.Strand[i] {
    case '+':
      reads[i] = ReadEnd{g.Seqnames[i], g.Ranges[i].From, '+', 1.0}
    case '-':
      reads[i] = ReadEnd{g.Seqnames[i], g.Ranges[i].To, '-', 1.0}
    default:
      return nil, fmt.Errorf("FivePrimeReadEnds(): read %d has no strand information", i)
    }
  }
  return reads, nil
}

// Import read 5'-ends from a bed file with at least six columns, one
// read per row.
func ImportBedReadEnds(filename string) ([]ReadEnd, error) {
  g := GRanges{}
  if err := g.ImportBed6(filename); err != nil {
    return nil, err
  }
  return FivePrimeReadEnds(g)
}
