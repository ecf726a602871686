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

import "sort"

/* -------------------------------------------------------------------------- */

type grangesSort struct {
  GRanges
  indices []int
}

func newGRangesSort(g GRanges) grangesSort {
  indices := make([]int, g.Length())
  for i := 0; i < len(indices); i++ {
    indices[i] = i
  }
  return grangesSort{g, indices}
}

/* -------------------------------------------------------------------------- */

// Order seqnames first by length so that e.g. chr2 comes
// before chr10.
func seqnameLess(si, sj string) bool {
  if len(si) != len(sj) {
    return len(si) < len(sj)
  }
  return si < sj
}

func strandRank(s byte) int {
  switch s {
  case '+': return 0
  case '-': return 1
  default : return 2
  }
}

func (r grangesSort) Len() int {
  return r.Length()
}

func (r grangesSort) Less(i, j int) bool {
  si := r.Seqnames[r.indices[i]]
  sj := r.Seqnames[r.indices[j]]
  if si != sj {
    return seqnameLess(si, sj)
  }
  fi := r.Ranges[r.indices[i]].From
  fj := r.Ranges[r.indices[j]].From
  if fi != fj {
    return fi < fj
  }
  ti := r.Ranges[r.indices[i]].To
  tj := r.Ranges[r.indices[j]].To
  if ti != tj {
    return ti < tj
  }
  return strandRank(r.Strand[r.indices[i]]) < strandRank(r.Strand[r.indices[j]])
}

func (r grangesSort) Swap(i, j int) {
  r.indices[i], r.indices[j] = r.indices[j], r.indices[i]
}

/* -------------------------------------------------------------------------- */

// Sort rows by genomic location, i.e. by seqname, start, end,
// and strand.
func (g *GRanges) SortByLocation() GRanges {
  s := newGRangesSort(*g)
  sort.Stable(s)
  return g.Subset(s.indices)
}
