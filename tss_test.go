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

//import "fmt"
import   "math"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestAggregate1(t *testing.T) {

  reads := []ReadEnd{
    {"chrI", 100, '+', 1.0},
    {"chrI", 100, '+', 1.0},
    {"chrI", 101, '+', 1.0},
    {"chrI", 105, '+', 1.0} }

  tss, err := AggregateReadEnds(reads)
  if err != nil {
    t.Error("TestAggregate1 failed!")
  }
  if tss.Length() != 3 {
    t.Error("TestAggregate1 failed!")
  }
  from  := []int{100, 101, 105}
  score := []float64{2.0, 1.0, 1.0}

  for i := 0; i < tss.Length(); i++ {
    if tss.Seqnames[i] != "chrI" {
      t.Error("TestAggregate1 failed!")
    }
    if tss.Ranges[i].From != from[i] || tss.Ranges[i].To != from[i] {
      t.Error("TestAggregate1 failed!")
    }
    if tss.Strand[i] != '+' {
      t.Error("TestAggregate1 failed!")
    }
    if tss.GetMetaFloat("score")[i] != score[i] {
      t.Error("TestAggregate1 failed!")
    }
  }
}

func TestAggregate2(t *testing.T) {
  // scores must sum to the total input weight and keys must
  // be unique
  reads := []ReadEnd{
    {"chrII",  20, '-', 0.5},
    {"chrI",  100, '+', 1.0},
    {"chrII",  20, '-', 2.0},
    {"chrI",  100, '-', 1.0},
    {"chrI",  100, '+', 0.5} }

  tss, err := AggregateReadEnds(reads)
  if err != nil {
    t.Error("TestAggregate2 failed!")
  }
  if tss.Length() != 3 {
    t.Error("TestAggregate2 failed!")
  }
  sum := 0.0
  for _, v := range tss.GetMetaFloat("score") {
    sum += v
  }
  if math.Abs(sum - 5.0) > 1e-12 {
    t.Error("TestAggregate2 failed!")
  }
  keys := map[string]bool{}
  for i := 0; i < tss.Length(); i++ {
    if keys[tss.RowKey(i)] {
      t.Error("TestAggregate2 failed!")
    }
    keys[tss.RowKey(i)] = true
  }
}

func TestAggregate3(t *testing.T) {
  // empty input yields an empty table
  tss, err := AggregateReadEnds([]ReadEnd{})
  if err != nil {
    t.Error("TestAggregate3 failed!")
  }
  if tss.Length() != 0 {
    t.Error("TestAggregate3 failed!")
  }
}

func TestAggregate4(t *testing.T) {
  // contract violations
  if _, err := AggregateReadEnds([]ReadEnd{{"chrI", 100, '*', 1.0}}); err == nil {
    t.Error("TestAggregate4 failed!")
  }
  if _, err := AggregateReadEnds([]ReadEnd{{"chrI", 100, '+', -1.0}}); err == nil {
    t.Error("TestAggregate4 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestBaseComposition1(t *testing.T) {

  sequences := NewStringSet(
    []string  {"chrI"},
    [][]byte  {[]byte("ACGTGGGGGGTTTTATTTTA")})

  reads := []ReadEnd{
    {"chrI",  5, '+', 1.0},
    {"chrI", 15, '+', 1.0} }

  tss, err := AggregateReadEnds(reads)
  if err != nil {
    t.Error("TestBaseComposition1 failed!")
  }
  if err := CorrectBaseComposition(&tss, sequences, 5); err != nil {
    t.Error("TestBaseComposition1 failed!")
  }
  score := tss.GetMetaFloat("score")
  // position 5 looks at GGGGG: pG = 6/9, position 15 looks
  // at ATTTT: pG = 1/9
  if math.Abs(score[0] - 0.25/(6.0/9.0)) > 1e-12 {
    t.Error("TestBaseComposition1 failed!")
  }
  if math.Abs(score[1] - 0.25/(1.0/9.0)) > 1e-12 {
    t.Error("TestBaseComposition1 failed!")
  }
}

func TestBaseComposition2(t *testing.T) {
  // a failing correction must leave the table unchanged
  sequences := NewStringSet(
    []string{"chrI"},
    [][]byte{[]byte("ACGTACGTACGT")})

  reads := []ReadEnd{
    {"chrI",   5, '+', 1.0},
    {"chrXII", 5, '+', 1.0} }

  tss, _ := AggregateReadEnds(reads)

  if err := CorrectBaseComposition(&tss, sequences, 5); err == nil {
    t.Error("TestBaseComposition2 failed!")
  }
  score := tss.GetMetaFloat("score")
  for i := 0; i < len(score); i++ {
    if score[i] != 1.0 {
      t.Error("TestBaseComposition2 failed!")
    }
  }
}
