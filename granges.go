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
import "sort"

/* -------------------------------------------------------------------------- */

// GRanges is a table of scored genomic positions or intervals. Each row
// consists of a sequence name, a range, a strand, and the meta columns
// attached to the table. Transcription start sites are represented as
// width-one ranges with a `score' meta column; transcription start
// regions carry `score', `nTSS', `width', and `shape' columns.
type GRanges struct {
  Seqnames   []string
  Ranges     []Range
  Strand     []byte
  Meta
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewGRanges(seqnames []string, from, to []int, strand []byte) GRanges {
  n := len(seqnames)
  if len(  from) != n || len(    to) != n ||
    (len(strand) != 0 && len(strand) != n) {
    panic("NewGRanges(): invalid arguments!")
  }
  if len(strand) == 0 {
    strand = make([]byte, n)
    for i := 0; i < n; i++ {
      strand[i] = '*'
    }
  }
  ranges := make([]Range, n)
  for i := 0; i < n; i++ {
    ranges[i] = NewRange(from[i], to[i])
    if strand[i] != '+' && strand[i] != '-' && strand[i] != '*' {
      panic("NewGRanges(): invalid strand!")
    }
  }
  return GRanges{seqnames, ranges, strand, Meta{}}
}

func NewEmptyGRanges(n int) GRanges {
  seqnames := make([]string, n)
  ranges   := make([]Range, n)
  strand   := make([]byte, n)
  for i := 0; i < n; i++ {
    ranges[i] = Range{1, 1}
    strand[i] = '*'
  }
  return GRanges{seqnames, ranges, strand, Meta{}}
}

func (r *GRanges) Clone() GRanges {
  result := GRanges{}
  n := r.Length()
  result.Seqnames = make([]string, n)
  result.Ranges   = make([]Range, n)
  result.Strand   = make([]byte, n)
  copy(result.Seqnames, r.Seqnames)
  copy(result.Ranges,   r.Ranges)
  copy(result.Strand,   r.Strand)
  result.Meta = r.Meta.Clone()
  return result
}

/* -------------------------------------------------------------------------- */

func (r *GRanges) Length() int {
  return len(r.Ranges)
}

func (r1 *GRanges) Append(r2 GRanges) GRanges {
  result := GRanges{}

  result.Seqnames = append(append([]string{}, r1.Seqnames...), r2.Seqnames...)
  result.Ranges   = append(append([]Range {}, r1.Ranges  ...), r2.Ranges  ...)
  result.Strand   = append(append([]byte  {}, r1.Strand  ...), r2.Strand  ...)

  result.Meta = r1.Meta.Append(r2.Meta)

  return result
}

func (r *GRanges) Subset(indices []int) GRanges {
  n := len(indices)
  seqnames := make([]string, n)
  from     := make([]int, n)
  to       := make([]int, n)
  strand   := make([]byte, n)

  for i := 0; i < n; i++ {
    seqnames[i] = r.Seqnames[indices[i]]
    from    [i] = r.Ranges  [indices[i]].From
    to      [i] = r.Ranges  [indices[i]].To
    strand  [i] = r.Strand  [indices[i]]
  }
  result := NewGRanges(seqnames, from, to, strand)
  result.Meta = r.Meta.Subset(indices)

  return result
}

func (r *GRanges) Remove(indices []int) GRanges {
  if len(indices) == 0 {
    return r.Clone()
  }
  indices = removeDuplicatesInt(indices)
  sort.Ints(indices)

  n := r.Length()
  m := n - len(indices)
  // convert indices to subset indices
  idx := make([]int, m)
  for i, j, k := 0, 0, 0; i < r.Length(); i++ {
    for k < len(indices)-1 && i > indices[k] {
      k++
    }
    if i != indices[k] {
      idx[j] = i
      j++
    }
  }
  return r.Subset(idx)
}

func (r *GRanges) Slice(ifrom, ito int) GRanges {
  indices := make([]int, ito-ifrom)
  for i := ifrom; i < ito; i++ {
    indices[i-ifrom] = i
  }
  return r.Subset(indices)
}

func (r *GRanges) Sort(name string, reverse bool) (GRanges, error) {
  j, err := r.Meta.sortedIndices(name, reverse)
  if err != nil {
    return GRanges{}, err
  }
  return r.Subset(j), nil
}

/* -------------------------------------------------------------------------- */

// Row keys of the form `chrIV:100-200,+' used to match features
// across samples.
func (r *GRanges) RowKey(i int) string {
  return fmt.Sprintf("%s:%d-%d,%c", r.Seqnames[i], r.Ranges[i].From, r.Ranges[i].To, r.Strand[i])
}
