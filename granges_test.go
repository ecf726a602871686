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

import "bytes"
import "testing"

/* -------------------------------------------------------------------------- */

func TestGRanges1(t *testing.T) {
  g := NewGRanges(
    []string{"chrI", "chrII"},
    []int   {100, 200},
    []int   {150, 200},
    []byte  {'+', '-'})

  if g.Length() != 2 {
    t.Error("TestGRanges1 failed!")
  }
  if g.Ranges[0].Width() != 51 || g.Ranges[1].Width() != 1 {
    t.Error("TestGRanges1 failed!")
  }
  if g.RowKey(0) != "chrI:100-150,+" {
    t.Error("TestGRanges1 failed!")
  }
  // default strand
  h := NewGRanges([]string{"chrI"}, []int{1}, []int{1}, nil)
  if h.Strand[0] != '*' {
    t.Error("TestGRanges1 failed!")
  }
}

func TestGRanges2(t *testing.T) {
  g := scenarioTSS()

  subset := g.Subset([]int{2, 0})
  if subset.Length() != 2 {
    t.Error("TestGRanges2 failed!")
  }
  if subset.Ranges[0].From != 105 || subset.Ranges[1].From != 100 {
    t.Error("TestGRanges2 failed!")
  }
  score := subset.GetMetaFloat("score")
  if score[0] != 1.0 || score[1] != 2.0 {
    t.Error("TestGRanges2 failed!")
  }
  appended := subset.Append(g)
  if appended.Length() != 5 {
    t.Error("TestGRanges2 failed!")
  }
  if len(appended.GetMetaFloat("score")) != 5 {
    t.Error("TestGRanges2 failed!")
  }
}

func TestGRanges3(t *testing.T) {
  // genomic sort order: shorter seqnames first, then
  // lexicographic, then position, then strand
  g := NewGRanges(
    []string{"chrX", "chrII", "chrI", "chrI", "chrI"},
    []int   {100, 100, 200, 100, 100},
    []int   {100, 100, 200, 100, 100},
    []byte  {'+', '+', '+', '-', '+'})
  g.AddMeta("score", []float64{1.0, 2.0, 3.0, 4.0, 5.0})

  sorted := g.SortByLocation()
  if sorted.Seqnames[0] != "chrI" || sorted.Seqnames[3] != "chrX" || sorted.Seqnames[4] != "chrII" {
    t.Error("TestGRanges3 failed!")
  }
  if sorted.Ranges[0].From != 100 || sorted.Strand[0] != '+' {
    t.Error("TestGRanges3 failed!")
  }
  if sorted.Ranges[1].From != 100 || sorted.Strand[1] != '-' {
    t.Error("TestGRanges3 failed!")
  }
  if sorted.Ranges[2].From != 200 {
    t.Error("TestGRanges3 failed!")
  }
  // meta columns follow the rows
  if sorted.GetMetaFloat("score")[0] != 5.0 {
    t.Error("TestGRanges3 failed!")
  }
}

func TestGRangesTable1(t *testing.T) {
  g := scenarioTSS()
  g.AddMeta("nTSS", []int{1, 1, 1})

  buffer := bytes.Buffer{}
  if err := g.WriteTable(&buffer, true); err != nil {
    t.Error("TestGRangesTable1 failed!")
  }
  h := GRanges{}
  if err := h.ReadTable(&buffer, []string{"score", "nTSS"}, []string{"[]float64", "[]int"}); err != nil {
    t.Error("TestGRangesTable1 failed!")
  }
  if h.Length() != g.Length() {
    t.Error("TestGRangesTable1 failed!")
  }
  for i := 0; i < g.Length(); i++ {
    if g.RowKey(i) != h.RowKey(i) {
      t.Error("TestGRangesTable1 failed!")
    }
  }
  score := h.GetMetaFloat("score")
  if score[0] != 2.0 || score[1] != 1.0 || score[2] != 1.0 {
    t.Error("TestGRangesTable1 failed!")
  }
  if h.GetMetaInt("nTSS")[2] != 1 {
    t.Error("TestGRangesTable1 failed!")
  }
}

func TestGRangesBedGraph1(t *testing.T) {
  // bedGraph coordinates are 0-based half-open on disk
  g := scenarioTSS()

  buffer := bytes.Buffer{}
  if err := g.WriteBedGraph(&buffer); err != nil {
    t.Error("TestGRangesBedGraph1 failed!")
  }
  if buffer.String() != "chrI\t99\t100\t2\nchrI\t100\t101\t1\nchrI\t104\t105\t1\n" {
    t.Error("TestGRangesBedGraph1 failed!")
  }
  h := GRanges{}
  if err := h.ReadBedGraph(&buffer); err != nil {
    t.Error("TestGRangesBedGraph1 failed!")
  }
  if h.Length() != 3 {
    t.Error("TestGRangesBedGraph1 failed!")
  }
  if h.Ranges[0].From != 100 || h.Ranges[0].To != 100 {
    t.Error("TestGRangesBedGraph1 failed!")
  }
  if h.GetMetaFloat("score")[0] != 2.0 {
    t.Error("TestGRangesBedGraph1 failed!")
  }
  // tables without a score column cannot be exported
  h.DeleteMeta("score")
  if err := h.WriteBedGraph(&buffer); err == nil {
    t.Error("TestGRangesBedGraph1 failed!")
  }
}

func TestGRangesBed1(t *testing.T) {
  g := scenarioTSS()

  buffer := bytes.Buffer{}
  if err := g.WriteBed6(&buffer); err != nil {
    t.Error("TestGRangesBed1 failed!")
  }
  h := GRanges{}
  if err := h.ReadBed6(&buffer); err != nil {
    t.Error("TestGRangesBed1 failed!")
  }
  if h.Length() != 3 {
    t.Error("TestGRangesBed1 failed!")
  }
  for i := 0; i < 3; i++ {
    if g.RowKey(i) != h.RowKey(i) {
      t.Error("TestGRangesBed1 failed!")
    }
  }
  if h.GetMetaFloat("score")[0] != 2.0 {
    t.Error("TestGRangesBed1 failed!")
  }
}
