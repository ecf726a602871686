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

func conditionsTable(scores []float64) GRanges {
  n        := len(scores)
  seqnames := make([]string, n)
  from     := make([]int, n)
  to       := make([]int, n)
  strand   := make([]byte, n)
  for i := 0; i < n; i++ {
    seqnames[i] = "chrI"
    from    [i] = 100 + 10*i
    to      [i] = 100 + 10*i
    strand  [i] = '+'
  }
  g := NewGRanges(seqnames, from, to, strand)
  g.AddMeta("score", scores)
  return g
}

/* -------------------------------------------------------------------------- */

func TestConditions1(t *testing.T) {
  // two equal-population bins over four distinct scores
  conditions := DataConditions{
    QuantileBy: "score",
    Quantiles : 2,
  }
  result, err := conditions.Apply(conditionsTable([]float64{1.0, 2.0, 3.0, 4.0}))
  if err != nil {
    t.Error("TestConditions1 failed!")
  }
  quantile := result.GetMetaInt("quantile")
  grouping := result.GetMetaStr("grouping")
  if quantile[0] != 1 || quantile[1] != 1 || quantile[2] != 2 || quantile[3] != 2 {
    t.Error("TestConditions1 failed!")
  }
  if grouping[0] != "Q1" || grouping[3] != "Q2" {
    t.Error("TestConditions1 failed!")
  }
  // plot_order ranks within bins, descending by default
  plotOrder := result.GetMetaInt("plot_order")
  if plotOrder[0] != 2 || plotOrder[1] != 1 {
    t.Error("TestConditions1 failed!")
  }
  if plotOrder[2] != 2 || plotOrder[3] != 1 {
    t.Error("TestConditions1 failed!")
  }
}

func TestConditions2(t *testing.T) {
  // rows tied at the column maximum all land in the top bin
  conditions := DataConditions{
    QuantileBy: "score",
    Quantiles : 2,
  }
  result, err := conditions.Apply(conditionsTable([]float64{5.0, 5.0, 5.0, 1.0}))
  if err != nil {
    t.Error("TestConditions2 failed!")
  }
  quantile := result.GetMetaInt("quantile")
  if quantile[0] != 2 || quantile[1] != 2 || quantile[2] != 2 || quantile[3] != 1 {
    t.Error("TestConditions2 failed!")
  }
}

func TestConditions3(t *testing.T) {
  // with distinct values bin populations differ by at most one
  conditions := DataConditions{
    QuantileBy: "score",
    Quantiles : 2,
  }
  result, err := conditions.Apply(conditionsTable([]float64{10.0, 20.0, 30.0, 40.0, 50.0}))
  if err != nil {
    t.Error("TestConditions3 failed!")
  }
  counts := map[int]int{}
  for _, bin := range result.GetMetaInt("quantile") {
    counts[bin] += 1
  }
  if counts[1] != 3 || counts[2] != 2 {
    t.Error("TestConditions3 failed!")
  }
}

func TestConditions4(t *testing.T) {
  // filters form a conjunction and never modify the input table
  g := conditionsTable([]float64{1.0, 2.0, 3.0, 4.0})
  g.AddMeta("featureType", []string{"promoter", "promoter", "upstream", "promoter"})

  conditions := DataConditions{
    Filters: []Filter{
      {"score",       FilterGe, 2.0},
      {"featureType", FilterEq, "promoter"},
    },
  }
  result, err := conditions.Apply(g)
  if err != nil {
    t.Error("TestConditions4 failed!")
  }
  if result.Length() != 2 {
    t.Error("TestConditions4 failed!")
  }
  score := result.GetMetaFloat("score")
  if score[0] != 2.0 || score[1] != 4.0 {
    t.Error("TestConditions4 failed!")
  }
  if g.Length() != 4 || g.MetaLength() != 2 {
    t.Error("TestConditions4 failed!")
  }
}

func TestConditions5(t *testing.T) {
  // grouping by a categorical column
  g := conditionsTable([]float64{1.0, 4.0, 2.0, 3.0})
  g.AddMeta("featureType", []string{"a", "a", "b", "b"})

  conditions := DataConditions{
    GroupBy: "featureType",
  }
  result, err := conditions.Apply(g)
  if err != nil {
    t.Error("TestConditions5 failed!")
  }
  grouping  := result.GetMetaStr("grouping")
  plotOrder := result.GetMetaInt("plot_order")
  if grouping[0] != "a" || grouping[2] != "b" {
    t.Error("TestConditions5 failed!")
  }
  if plotOrder[0] != 2 || plotOrder[1] != 1 {
    t.Error("TestConditions5 failed!")
  }
  if plotOrder[2] != 2 || plotOrder[3] != 1 {
    t.Error("TestConditions5 failed!")
  }
}

func TestConditions6(t *testing.T) {
  // applying the same conditions twice yields the same result
  conditions := DataConditions{
    QuantileBy: "score",
    Quantiles : 2,
  }
  result1, err := conditions.Apply(conditionsTable([]float64{1.0, 2.0, 3.0, 4.0}))
  if err != nil {
    t.Error("TestConditions6 failed!")
  }
  result2, err := conditions.Apply(result1)
  if err != nil {
    t.Error("TestConditions6 failed!")
  }
  if result1.Length() != result2.Length() {
    t.Error("TestConditions6 failed!")
  }
  quantile1 := result1.GetMetaInt("quantile")
  quantile2 := result2.GetMetaInt("quantile")
  order1    := result1.GetMetaInt("plot_order")
  order2    := result2.GetMetaInt("plot_order")
  for i := 0; i < result1.Length(); i++ {
    if quantile1[i] != quantile2[i] || order1[i] != order2[i] {
      t.Error("TestConditions6 failed!")
    }
  }
}

func TestConditions7(t *testing.T) {
  // validation errors carry their type
  g := conditionsTable([]float64{1.0, 2.0})

  conditions := DataConditions{
    QuantileBy: "score",
    Quantiles : 5,
  }
  if _, err := conditions.Apply(g); err == nil {
    t.Error("TestConditions7 failed!")
  } else
  if _, ok := err.(ConfigurationError); !ok {
    t.Error("TestConditions7 failed!")
  }
  conditions = DataConditions{
    Filters: []Filter{{"foo", FilterEq, 1.0}},
  }
  if _, err := conditions.Apply(g); err == nil {
    t.Error("TestConditions7 failed!")
  } else
  if _, ok := err.(ColumnNotFoundError); !ok {
    t.Error("TestConditions7 failed!")
  }
  conditions = DataConditions{
    Filters: []Filter{{"score", FilterLt, "foo"}},
  }
  if _, err := conditions.Apply(g); err == nil {
    t.Error("TestConditions7 failed!")
  } else
  if _, ok := err.(ConfigurationError); !ok {
    t.Error("TestConditions7 failed!")
  }
}

func TestConditions8(t *testing.T) {
  // an empty post-filter table is a valid result
  conditions := DataConditions{
    Filters: []Filter{{"score", FilterGt, 100.0}},
  }
  result, err := conditions.Apply(conditionsTable([]float64{1.0, 2.0}))
  if err != nil {
    t.Error("TestConditions8 failed!")
  }
  if result.Length() != 0 {
    t.Error("TestConditions8 failed!")
  }
}
