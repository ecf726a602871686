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

func annotationGenes() Genes {
  return NewGenes(
    []string{"geneA", "geneB"},
    []string{"chrI", "chrI"},
    []int   {1000, 5000},
    []int   {2000, 6000},
    []byte  {'+', '-'})
}

/* -------------------------------------------------------------------------- */

func TestAnnotate1(t *testing.T) {
  // geneA starts at 1000 on the plus strand, geneB at 6000 on the
  // minus strand
  g := NewGRanges(
    []string{"chrI", "chrI", "chrI", "chrII"},
    []int   { 990, 1150, 6200, 100},
    []int   { 990, 1150, 6200, 100},
    []byte  {'+', '+', '+', '+'})
  g.AddMeta("score", []float64{1.0, 1.0, 1.0, 1.0})

  if err := AnnotateNearest(&g, annotationGenes(), 100); err != nil {
    t.Error("TestAnnotate1 failed!")
  }
  geneId      := g.GetMetaStr("geneId")
  distance    := g.GetMetaInt("distanceToTSS")
  featureType := g.GetMetaStr("featureType")

  if geneId[0] != "geneA" || distance[0] != -10 || featureType[0] != "promoter" {
    t.Error("TestAnnotate1 failed!")
  }
  if geneId[1] != "geneA" || distance[1] != 150 || featureType[1] != "downstream" {
    t.Error("TestAnnotate1 failed!")
  }
  // on the minus strand positive distances point downstream of the
  // gene start, i.e. towards smaller positions
  if geneId[2] != "geneB" || distance[2] != -200 || featureType[2] != "upstream" {
    t.Error("TestAnnotate1 failed!")
  }
  // no gene on chrII
  if geneId[3] != "" || featureType[3] != "" {
    t.Error("TestAnnotate1 failed!")
  }
}

func TestAnnotate2(t *testing.T) {
  // the 5' boundary of a minus strand feature is its end position
  g := NewGRanges(
    []string{"chrI"},
    []int   {5900},
    []int   {5990},
    []byte  {'-'})

  if err := AnnotateNearest(&g, annotationGenes(), 100); err != nil {
    t.Error("TestAnnotate2 failed!")
  }
  if g.GetMetaStr("geneId")[0] != "geneB" {
    t.Error("TestAnnotate2 failed!")
  }
  if g.GetMetaInt("distanceToTSS")[0] != 10 {
    t.Error("TestAnnotate2 failed!")
  }
  if g.GetMetaStr("featureType")[0] != "promoter" {
    t.Error("TestAnnotate2 failed!")
  }
}

func TestAnnotate3(t *testing.T) {
  // of two genes at equal distance the one with the smaller
  // annotated start wins
  genes := NewGenes(
    []string{"geneA", "geneB"},
    []string{"chrI", "chrI"},
    []int   {1000, 1200},
    []int   {1100, 1300},
    []byte  {'+', '+'})

  g := NewGRanges([]string{"chrI"}, []int{1100}, []int{1100}, []byte{'+'})

  if err := AnnotateNearest(&g, genes, 50); err != nil {
    t.Error("TestAnnotate3 failed!")
  }
  if g.GetMetaStr("geneId")[0] != "geneA" {
    t.Error("TestAnnotate3 failed!")
  }
  if g.GetMetaInt("distanceToTSS")[0] != 100 {
    t.Error("TestAnnotate3 failed!")
  }
  if g.GetMetaStr("featureType")[0] != "downstream" {
    t.Error("TestAnnotate3 failed!")
  }
}

func TestGenes1(t *testing.T) {
  genes := annotationGenes()
  if genes.Length() != 2 {
    t.Error("TestGenes1 failed!")
  }
  if i, ok := genes.FindGene("geneB"); !ok || i != 1 {
    t.Error("TestGenes1 failed!")
  }
  if _, ok := genes.FindGene("geneC"); ok {
    t.Error("TestGenes1 failed!")
  }
  if genes.AnnotatedTSS(0) != 1000 || genes.AnnotatedTSS(1) != 6000 {
    t.Error("TestGenes1 failed!")
  }
}
