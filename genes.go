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

// Container for gene models. The ranges cover the transcript from
// start to end; Names points to the `names' meta column.
type Genes struct {
  GRanges
  Names []string
  index map[string]int
}

/* constructors
 * -------------------------------------------------------------------------- */

func newGenes(granges GRanges) Genes {
  names := granges.GetMetaStr("names")
  if len(names) != granges.Length() {
    panic("newGenes(): names column is missing!")
  }
  index := map[string]int{}
  for i := 0; i < granges.Length(); i++ {
    if granges.Strand[i] != '+' && granges.Strand[i] != '-' {
      panic("newGenes(): invalid strand!")
    }
    index[names[i]] = i
  }
  return Genes{granges, names, index}
}

func NewGenes(names, seqnames []string, txFrom, txTo []int, strand []byte) Genes {
  granges := NewGRanges(seqnames, txFrom, txTo, strand)
  granges.AddMeta("names", names)
  return newGenes(granges)
}

/* -------------------------------------------------------------------------- */

func (genes *Genes) FindGene(name string) (int, bool) {
  i, ok := genes.index[name]
  return i, ok
}

// Annotated transcription start position of gene i, i.e. the start
// of the transcript on the plus strand and its end on the minus
// strand.
func (genes *Genes) AnnotatedTSS(i int) int {
  if genes.Strand[i] == '-' {
    return genes.Ranges[i].To
  }
  return genes.Ranges[i].From
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import gene models from a table with columns seqnames, from, to,
// strand, and names.
func ImportGenesFromTable(filename string) (Genes, error) {
  granges := GRanges{}
  if err := granges.ImportTable(filename, []string{"names"}, []string{"[]string"}); err != nil {
    return Genes{}, err
  }
  if len(granges.GetMetaStr("names")) != granges.Length() {
    return Genes{}, fmt.Errorf("ImportGenesFromTable(): names column is missing")
  }
  return newGenes(granges), nil
}
