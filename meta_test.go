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
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestMeta1(t *testing.T) {
  meta := NewMeta(
    []string     {"score", "geneId"},
    []interface{}{
      []float64{2.0, 1.0, 3.0},
      []string {"a", "b", "a"}})

  if meta.Length() != 3 || meta.MetaLength() != 2 {
    t.Error("TestMeta1 failed!")
  }
  // adding a column under an existing name replaces it
  meta.AddMeta("score", []float64{1.0, 1.0, 1.0})
  if meta.MetaLength() != 2 || meta.GetMetaFloat("score")[0] != 1.0 {
    t.Error("TestMeta1 failed!")
  }
  clone := meta.Clone()
  clone.GetMetaFloat("score")[0] = 99.0
  if meta.GetMetaFloat("score")[0] != 1.0 {
    t.Error("TestMeta1 failed!")
  }
}

func TestMeta2(t *testing.T) {
  meta := NewMeta(
    []string     {"score"},
    []interface{}{[]float64{1.0, 2.0, 3.0, 4.0}})

  merged := meta.Merge([]int{0, 0, 1, 1})
  merged.ReduceFloat("score", "", func(v []float64) float64 {
    sum := 0.0
    for _, x := range v {
      sum += x
    }
    return sum
  })
  score := merged.GetMetaFloat("score")
  if len(score) != 2 || score[0] != 3.0 || score[1] != 7.0 {
    t.Error("TestMeta2 failed!")
  }
}

func TestMeta3(t *testing.T) {
  meta := NewMeta(
    []string     {"score"},
    []interface{}{[]float64{2.0, 1.0, 3.0}})

  sorted, err := meta.Sort("score", false)
  if err != nil {
    t.Error("TestMeta3 failed!")
  }
  score := sorted.GetMetaFloat("score")
  if score[0] != 1.0 || score[1] != 2.0 || score[2] != 3.0 {
    t.Error("TestMeta3 failed!")
  }
  if _, err := meta.Sort("foo", false); err == nil {
    t.Error("TestMeta3 failed!")
  }
}

func TestMetaTable1(t *testing.T) {
  meta := NewMeta(
    []string     {"score", "nTSS", "geneId"},
    []interface{}{
      []float64{2.5, 1.0},
      []int    {3, 1},
      []string {"a", "b"}})

  buffer := bytes.Buffer{}
  if err := meta.WriteTableRow(&buffer, -1); err != nil {
    t.Error("TestMetaTable1 failed!")
  }
  if buffer.String() != "\tscore\tnTSS\tgeneId" {
    t.Error("TestMetaTable1 failed!")
  }
  buffer.Reset()
  if err := meta.WriteTableRow(&buffer, 0); err != nil {
    t.Error("TestMetaTable1 failed!")
  }
  if buffer.String() != "\t2.5\t3\ta" {
    t.Error("TestMetaTable1 failed!")
  }
  table := "score\tnTSS\tgeneId\n" +
           "2.5\t3\ta\n"           +
           "1\t1\tb\n"
  result, err := ReadMetaFromTable(strings.NewReader(table),
    []string{"score", "nTSS", "geneId"},
    []string{"[]float64", "[]int", "[]string"})
  if err != nil {
    t.Error("TestMetaTable1 failed!")
  }
  if result.Length() != 2 {
    t.Error("TestMetaTable1 failed!")
  }
  if result.GetMetaFloat("score")[0] != 2.5 || result.GetMetaInt("nTSS")[1] != 1 {
    t.Error("TestMetaTable1 failed!")
  }
  if result.GetMetaStr("geneId")[1] != "b" {
    t.Error("TestMetaTable1 failed!")
  }
}
