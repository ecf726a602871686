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

type annotationPoint struct {
  position int
  gene     int
}

// Sorted gene transcription start positions per seqname.
type annotationIndex map[string][]annotationPoint

func newAnnotationIndex(genes Genes) annotationIndex {
  index := make(annotationIndex)
  for i := 0; i < genes.Length(); i++ {
    index[genes.Seqnames[i]] = append(index[genes.Seqnames[i]],
      annotationPoint{genes.AnnotatedTSS(i), i})
  }
  for _, points := range index {
    sort.SliceStable(points, func(i, j int) bool {
      return points[i].position < points[j].position
    })
  }
  return index
}

// Gene with the annotated TSS closest to the given position. Of two
// genes at equal distance the one with the smaller position is
// returned.
func (index annotationIndex) nearest(seqname string, position int) (int, bool) {
  points := index[seqname]
  if len(points) == 0 {
    return -1, false
  }
  k := sort.Search(len(points), func(i int) bool {
    return points[i].position >= position
  })
  if k == 0 {
    return points[0].gene, true
  }
  if k == len(points) {
    return points[len(points)-1].gene, true
  }
  if position-points[k-1].position <= points[k].position-position {
    return points[k-1].gene, true
  }
  return points[k].gene, true
}

/* -------------------------------------------------------------------------- */

// 5' boundary of a feature on its own strand; this is the position
// used to measure the distance to annotated transcription starts.
func fivePrimePosition(g *GRanges, i int) int {
  if g.Strand[i] == '-' {
    return g.Ranges[i].To
  }
  return g.Ranges[i].From
}

// Attach nearest-gene annotation to a TSS or TSR table. Three meta
// columns are added or overwritten: `geneId' with the name of the
// nearest gene, `distanceToTSS' with the signed distance between the
// feature's 5' boundary and the gene's annotated transcription start
// (positive in transcription direction of the gene), and `featureType'
// with one of promoter, upstream, or downstream, where the promoter
// spans promoterWindow positions on either side of the annotated
// start. Features on seqnames without any gene are annotated with an
// empty geneId. Row count and order are unchanged.
func AnnotateNearest(g *GRanges, genes Genes, promoterWindow int) error {
  if promoterWindow < 0 {
    return ConfigurationError{"promoter window must be non-negative"}
  }
  index := newAnnotationIndex(genes)

  geneId      := make([]string, g.Length())
  distance    := make([]int,    g.Length())
  featureType := make([]string, g.Length())

  for i := 0; i < g.Length(); i++ {
    j, ok := index.nearest(g.Seqnames[i], fivePrimePosition(g, i))
    if !ok {
      continue
    }
    d := fivePrimePosition(g, i) - genes.AnnotatedTSS(j)
    if genes.Strand[j] == '-' {
      d = -d
    }
    geneId  [i] = genes.Names[j]
    distance[i] = d
    switch {
    case d < -promoterWindow: featureType[i] = "upstream"
    case d >  promoterWindow: featureType[i] = "downstream"
    default                 : featureType[i] = "promoter"
    }
  }
  g.AddMeta("geneId",        geneId)
  g.AddMeta("distanceToTSS", distance)
  g.AddMeta("featureType",   featureType)

  return nil
}
