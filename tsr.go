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
import "math"
import "sort"

/* -------------------------------------------------------------------------- */

type tsrGroup struct {
  seqname string
  strand  byte
  rows    []int
}

// Partition rows by (seqname, strand) and sort every partition by
// position. Partitions are returned in genomic seqname order with the
// plus strand first.
func partitionStrands(g GRanges) []tsrGroup {
  index := make(map[string]map[byte][]int)
  for i := 0; i < g.Length(); i++ {
    if index[g.Seqnames[i]] == nil {
      index[g.Seqnames[i]] = make(map[byte][]int)
    }
    index[g.Seqnames[i]][g.Strand[i]] = append(index[g.Seqnames[i]][g.Strand[i]], i)
  }
  seqnames := []string{}
  for seqname, _ := range index {
    seqnames = append(seqnames, seqname)
  }
  sort.Slice(seqnames, func(i, j int) bool {
    return seqnameLess(seqnames[i], seqnames[j])
  })
  groups := []tsrGroup{}
  for _, seqname := range seqnames {
    strands := []byte{}
    for strand, _ := range index[seqname] {
      strands = append(strands, strand)
    }
    sort.Slice(strands, func(i, j int) bool {
      return strandRank(strands[i]) < strandRank(strands[j])
    })
    for _, strand := range strands {
      rows := index[seqname][strand]
      sort.SliceStable(rows, func(i, j int) bool {
        return g.Ranges[rows[i]].From < g.Ranges[rows[j]].From
      })
      groups = append(groups, tsrGroup{seqname, strand, rows})
    }
  }
  return groups
}

/* -------------------------------------------------------------------------- */

// Normalized Shannon entropy of the score fractions of a region's
// member positions. Singleton regions have shape zero; a region whose
// score is spread uniformly across its members has shape one.
func shapeIndex(scores []float64) float64 {
  if len(scores) <= 1 {
    return 0.0
  }
  sum := 0.0
  for _, v := range scores {
    sum += v
  }
  if sum <= 0.0 {
    return 0.0
  }
  h := 0.0
  for _, v := range scores {
    if v > 0.0 {
      p := v/sum
      h -= p*math.Log2(p)
    }
  }
  return h/math.Log2(float64(len(scores)))
}

/* -------------------------------------------------------------------------- */

type tsrBuilder struct {
  seqnames []string
  from     []int
  to       []int
  strand   []byte
  score    []float64
  nTSS     []int
  width    []int
  shape    []float64
}

func (b *tsrBuilder) flush(seqname string, strand byte, positions []int, scores []float64) {
  if len(positions) == 0 {
    return
  }
  sum := 0.0
  for _, v := range scores {
    sum += v
  }
  from := positions[0]
  to   := positions[len(positions)-1]
  b.seqnames = append(b.seqnames, seqname)
  b.from     = append(b.from,     from)
  b.to       = append(b.to,       to)
  b.strand   = append(b.strand,   strand)
  b.score    = append(b.score,    sum)
  b.nTSS     = append(b.nTSS,     len(positions))
  b.width    = append(b.width,    to-from+1)
  b.shape    = append(b.shape,    shapeIndex(scores))
}

/* -------------------------------------------------------------------------- */

// Cluster transcription start sites into transcription start regions.
// Positions with score below minScore are not eligible for membership.
// Walking every (seqname, strand) partition left to right, a region is
// extended as long as the number of positions strictly between two
// consecutive eligible sites does not exceed maxGap; otherwise a new
// region starts. Region score is the sum of the member scores, width
// covers the first to the last member, and shape is the normalized
// entropy of the member score fractions. Regions within one partition
// are non-overlapping and emitted in ascending start order; partitions
// are concatenated in genomic order with the plus strand first. An
// empty input yields an empty table.
func ClusterTSS(g GRanges, maxGap int, minScore float64) (GRanges, error) {
  if maxGap < 0 {
    return GRanges{}, ConfigurationError{fmt.Sprintf("invalid maximum gap `%d'", maxGap)}
  }
  score := g.GetMetaFloat("score")
  if g.Length() > 0 && len(score) != g.Length() {
    return GRanges{}, ColumnNotFoundError{"score"}
  }
  builder := tsrBuilder{}

  for _, group := range partitionStrands(g) {
    positions := []int{}
    scores    := []float64{}
    for _, i := range group.rows {
      if score[i] < minScore {
        continue
      }
      position := g.Ranges[i].From
      if len(positions) > 0 && position-positions[len(positions)-1]-1 > maxGap {
        builder.flush(group.seqname, group.strand, positions, scores)
        positions = []int{}
        scores    = []float64{}
      }
      positions = append(positions, position)
      scores    = append(scores,    score[i])
    }
    builder.flush(group.seqname, group.strand, positions, scores)
  }
  result := NewGRanges(builder.seqnames, builder.from, builder.to, builder.strand)
  result.AddMeta("score", builder.score)
  result.AddMeta("nTSS",  builder.nTSS)
  result.AddMeta("width", builder.width)
  result.AddMeta("shape", builder.shape)

  return result, nil
}

/* -------------------------------------------------------------------------- */

// Assign every transcription start site the row index of the region
// that contains it. Sites not covered by any region on the same
// seqname and strand are assigned -1. The assignment is attached as an
// int meta column named `tsrId'; row count and order are unchanged.
func AssignTSR(tss *GRanges, tsr GRanges) error {
  type partition struct {
    seqname string
    strand  byte
  }
  regions := make(map[partition][]int)
  for i := 0; i < tsr.Length(); i++ {
    key := partition{tsr.Seqnames[i], tsr.Strand[i]}
    regions[key] = append(regions[key], i)
  }
  for _, rows := range regions {
    sort.SliceStable(rows, func(i, j int) bool {
      return tsr.Ranges[rows[i]].From < tsr.Ranges[rows[j]].From
    })
  }
  tsrId := make([]int, tss.Length())
  for i := 0; i < tss.Length(); i++ {
    tsrId[i] = -1
    rows := regions[partition{tss.Seqnames[i], tss.Strand[i]}]
    position := tss.Ranges[i].From
    // regions within a partition are non-overlapping and sorted,
    // hence a binary search finds the only candidate
    k := sort.Search(len(rows), func(j int) bool {
      return tsr.Ranges[rows[j]].To >= position
    })
    if k < len(rows) && tsr.Ranges[rows[k]].From <= position {
      tsrId[i] = rows[k]
    }
  }
  tss.AddMeta("tsrId", tsrId)

  return nil
}
