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

import "gonum.org/v1/gonum/mat"
import "gonum.org/v1/gonum/stat"

/* -------------------------------------------------------------------------- */

// A numeric count matrix with one row per feature and one column per
// sample. Features are identified by their row keys, i.e. strings of
// the form `chrIV:100-200,+'.
type CountMatrix struct {
  Values   *mat.Dense
  Features []string
  Samples  []string
}

/* -------------------------------------------------------------------------- */

// Assemble a count matrix across all samples holding a table of the
// given data type and variant. The feature set is the union over all
// samples; features absent from a sample count zero. Features appear
// in the order in which they are first encountered when visiting
// samples in sorted order.
func (store *SampleStore) CountMatrix(dtype DataType, variant Variant) (CountMatrix, error) {
  samples := store.Samples(dtype, variant)
  if len(samples) == 0 {
    return CountMatrix{}, fmt.Errorf("no %s %s tables in store", variant, dtype)
  }
  features := []string{}
  rows     := make(map[string]int)
  counts   := []map[string]float64{}

  for _, sample := range samples {
    g, err := store.Get(sample, dtype, variant)
    if err != nil {
      return CountMatrix{}, err
    }
    score := g.GetMetaFloat("score")
    if g.Length() > 0 && len(score) != g.Length() {
      return CountMatrix{}, ColumnNotFoundError{"score"}
    }
    c := make(map[string]float64)
    for i := 0; i < g.Length(); i++ {
      key := g.RowKey(i)
      if _, ok := rows[key]; !ok {
        rows[key] = len(features)
        features  = append(features, key)
      }
      c[key] += score[i]
    }
    counts = append(counts, c)
  }
  if len(features) == 0 {
    // all tables are empty; gonum does not allow matrices
    // without rows
    return CountMatrix{nil, features, samples}, nil
  }
  values := mat.NewDense(len(features), len(samples), nil)
  for j := 0; j < len(samples); j++ {
    for key, v := range counts[j] {
      values.Set(rows[key], j, v)
    }
  }
  return CountMatrix{values, features, samples}, nil
}

/* -------------------------------------------------------------------------- */

// Pairwise Pearson correlation of the sample columns of a count
// matrix.
func CountCorrelation(counts CountMatrix) *mat.SymDense {
  m := len(counts.Samples)
  n := len(counts.Features)

  if counts.Values == nil {
    return mat.NewSymDense(m, nil)
  }

  columns := make([][]float64, m)
  for j := 0; j < m; j++ {
    columns[j] = make([]float64, n)
    mat.Col(columns[j], j, counts.Values)
  }
  result := mat.NewSymDense(m, nil)
  for i := 0; i < m; i++ {
    for j := i; j < m; j++ {
      result.SetSym(i, j, stat.Correlation(columns[i], columns[j], nil))
    }
  }
  return result
}
