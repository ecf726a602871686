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

// A single read 5'-end observed in some alignment, i.e. a candidate
// transcription start site with an optional per-read weight.
type ReadEnd struct {
  Seqname  string
  Position int
  Strand   byte
  Weight   float64
}

/* -------------------------------------------------------------------------- */

type tssKey struct {
  seqname  string
  position int
  strand   byte
}

// Collapse read 5'-ends into a table of unique transcription start
// sites. Each (seqname, position, strand) triple appears exactly once
// with the summed weight of all reads mapping there as its score. Rows
// are returned in genomic sort order. An empty read set yields an
// empty table.
func AggregateReadEnds(reads []ReadEnd) (GRanges, error) {
  // check contract violations before any computation
  for i := 0; i < len(reads); i++ {
    if reads[i].Strand != '+' && reads[i].Strand != '-' {
      return GRanges{}, fmt.Errorf("AggregateReadEnds(): read %d has invalid strand `%c'", i, reads[i].Strand)
    }
    if reads[i].Weight < 0.0 {
      return GRanges{}, fmt.Errorf("AggregateReadEnds(): read %d has negative weight", i)
    }
    if reads[i].Position < 1 {
      return GRanges{}, fmt.Errorf("AggregateReadEnds(): read %d has invalid position %d", i, reads[i].Position)
    }
  }
  scores := make(map[tssKey]float64)
  for i := 0; i < len(reads); i++ {
    key := tssKey{reads[i].Seqname, reads[i].Position, reads[i].Strand}
    scores[key] += reads[i].Weight
  }
  seqnames := make([]string,  0, len(scores))
  from     := make([]int,     0, len(scores))
  to       := make([]int,     0, len(scores))
  strand   := make([]byte,    0, len(scores))
  score    := make([]float64, 0, len(scores))
  for key, value := range scores {
    seqnames = append(seqnames, key.seqname)
    from     = append(from,     key.position)
    to       = append(to,       key.position)
    strand   = append(strand,   key.strand)
    score    = append(score,    value)
  }
  result := NewGRanges(seqnames, from, to, strand)
  result.AddMeta("score", score)
  result = result.SortByLocation()

  return result, nil
}

/* -------------------------------------------------------------------------- */

// Source of genomic sequences, e.g. a set of fasta sequences or a
// remote sequence service.
type SequenceSource interface {
  GetSlice(seqname string, r Range) ([]byte, error)
}

// Template-free additions during reverse transcription bias CAGE-like
// protocols towards G-rich positions. CorrectBaseComposition rescales
// the score of every position by the ratio of the expected G frequency
// (0.25) to the observed G frequency in a window of the given length
// starting at the position and extending in transcription direction.
// G frequencies are estimated with add-one smoothing. The score column
// is overwritten; on error the table is left unchanged.
func CorrectBaseComposition(g *GRanges, source SequenceSource, window int) error {
  if window < 1 {
    return ConfigurationError{fmt.Sprintf("invalid window length `%d'", window)}
  }
  score := g.GetMetaFloat("score")
  if g.Length() > 0 && len(score) != g.Length() {
    return ColumnNotFoundError{"score"}
  }
  corrected := make([]float64, g.Length())
  for i := 0; i < g.Length(); i++ {
    var r Range
    // base whose frequency is counted; on the minus strand the
    // transcript G corresponds to a C on the reference
    var base byte
    if g.Strand[i] == '-' {
      r    = NewRange(iMax(1, g.Ranges[i].To-window+1), g.Ranges[i].To)
      base = 'C'
    } else {
      r    = NewRange(g.Ranges[i].From, g.Ranges[i].From+window-1)
      base = 'G'
    }
    sequence, err := source.GetSlice(g.Seqnames[i], r)
    if err != nil {
      return err
    }
    n := 0
    for j := 0; j < len(sequence); j++ {
      c := sequence[j]
      if c == base || c == base+'a'-'A' {
        n++
      }
    }
    p := (float64(n)+1.0)/(float64(len(sequence))+4.0)
    corrected[i] = score[i]*0.25/p
  }
  g.AddMeta("score", corrected)

  return nil
}
