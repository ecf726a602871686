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
import "sort"
import "strconv"

/* -------------------------------------------------------------------------- */

type FilterOp int

const (
  FilterEq FilterOp = iota
  FilterNe
  FilterLt
  FilterLe
  FilterGt
  FilterGe
)

func (op FilterOp) String() string {
  switch op {
  case FilterEq: return "=="
  case FilterNe: return "!="
  case FilterLt: return "<"
  case FilterLe: return "<="
  case FilterGt: return ">"
  case FilterGe: return ">="
  default      : return "invalid"
  }
}

// A single column predicate. Numeric columns support all operators
// with an int or float64 value; string columns support equality and
// inequality with a string value.
type Filter struct {
  Column string
  Op     FilterOp
  Value  interface{}
}

/* -------------------------------------------------------------------------- */

// DataConditions shapes a table before it is consumed by downstream
// analyses. The pipeline order is fixed: first all filters are applied
// as a conjunction, then surviving rows are either binned into
// equal-population quantiles of the QuantileBy column or grouped by
// the GroupBy column, and finally a `plot_order' rank column is
// computed from the OrderBy column within each group. DataConditions
// objects are transient; Apply never mutates its input.
type DataConditions struct {
  Filters        []Filter
  // row ordering used for the plot_order column; score,
  // descending if empty
  OrderBy        string
  OrderAscending bool
  // quantile binning of a numeric column; takes precedence
  // over GroupBy
  QuantileBy     string
  Quantiles      int
  // categorical column attached as grouping
  GroupBy        string
}

/* -------------------------------------------------------------------------- */

func filterValueFloat(value interface{}) (float64, bool) {
  switch v := value.(type) {
  case float64: return v, true
  case int    : return float64(v), true
  default     : return 0.0, false
  }
}

func (filter Filter) validate(g *GRanges) error {
  column := g.GetMeta(filter.Column)
  if column == nil {
    return ColumnNotFoundError{filter.Column}
  }
  switch column.(type) {
  case []float64, []int:
    if _, ok := filterValueFloat(filter.Value); !ok {
      return ConfigurationError{fmt.Sprintf("filter on numeric column `%s' requires a numeric value", filter.Column)}
    }
    if filter.Op < FilterEq || filter.Op > FilterGe {
      return ConfigurationError{fmt.Sprintf("invalid filter operator on column `%s'", filter.Column)}
    }
  case []string:
    if _, ok := filter.Value.(string); !ok {
      return ConfigurationError{fmt.Sprintf("filter on string column `%s' requires a string value", filter.Column)}
    }
    if filter.Op != FilterEq && filter.Op != FilterNe {
      return ConfigurationError{fmt.Sprintf("string column `%s' supports only equality filters", filter.Column)}
    }
  default:
    return ConfigurationError{fmt.Sprintf("cannot filter on column `%s'", filter.Column)}
  }
  return nil
}

func compareFloat(a float64, op FilterOp, b float64) bool {
  switch op {
  case FilterEq: return a == b
  case FilterNe: return a != b
  case FilterLt: return a <  b
  case FilterLe: return a <= b
  case FilterGt: return a >  b
  case FilterGe: return a >= b
  }
  return false
}

func (filter Filter) passes(g *GRanges, i int) bool {
  switch v := g.GetMeta(filter.Column).(type) {
  case []float64:
    value, _ := filterValueFloat(filter.Value)
    return compareFloat(v[i], filter.Op, value)
  case []int:
    value, _ := filterValueFloat(filter.Value)
    return compareFloat(float64(v[i]), filter.Op, value)
  case []string:
    if filter.Op == FilterEq {
      return v[i] == filter.Value.(string)
    }
    return v[i] != filter.Value.(string)
  }
  return false
}

/* -------------------------------------------------------------------------- */

func (conditions DataConditions) orderColumn() string {
  if conditions.OrderBy == "" {
    return "score"
  }
  return conditions.OrderBy
}

// Validate everything that does not depend on the number of surviving
// rows. Apply raises all validation errors before producing any output.
func (conditions DataConditions) validate(g *GRanges) error {
  for _, filter := range conditions.Filters {
    if err := filter.validate(g); err != nil {
      return err
    }
  }
  if conditions.QuantileBy != "" {
    if conditions.Quantiles < 1 {
      return ConfigurationError{fmt.Sprintf("invalid quantile count `%d'", conditions.Quantiles)}
    }
    switch g.GetMeta(conditions.QuantileBy).(type) {
    case []float64, []int:
    case nil:
      return ColumnNotFoundError{conditions.QuantileBy}
    default:
      return ConfigurationError{fmt.Sprintf("quantile column `%s' must be numeric", conditions.QuantileBy)}
    }
  } else
  if conditions.GroupBy != "" {
    switch g.GetMeta(conditions.GroupBy).(type) {
    case []string, []int:
    case nil:
      return ColumnNotFoundError{conditions.GroupBy}
    default:
      return ConfigurationError{fmt.Sprintf("grouping column `%s' must be of type []string or []int", conditions.GroupBy)}
    }
  }
  switch g.GetMeta(conditions.orderColumn()).(type) {
  case []float64, []int, []string:
  default:
    return ColumnNotFoundError{conditions.orderColumn()}
  }
  return nil
}

/* -------------------------------------------------------------------------- */

func columnAsFloat(g *GRanges, name string) []float64 {
  switch v := g.GetMeta(name).(type) {
  case []float64:
    return v
  case []int:
    r := make([]float64, len(v))
    for i := 0; i < len(v); i++ {
      r[i] = float64(v[i])
    }
    return r
  }
  return nil
}

// Rank-based equal-population binning. Rows are sorted by value with a
// stable sort, so that rows with equal values keep their input order,
// and the row of ascending rank r is assigned to bin r*q/n + 1. Rows
// whose value equals the column maximum are forced into the top bin,
// which keeps the binning well-defined when a large fraction of rows
// ties at the maximum.
func quantileBins(values []float64, q int) []int {
  n := len(values)

  indices := make([]int, n)
  for i := 0; i < n; i++ {
    indices[i] = i
  }
  sort.SliceStable(indices, func(i, j int) bool {
    return values[indices[i]] < values[indices[j]]
  })
  bins := make([]int, n)
  for r := 0; r < n; r++ {
    bins[indices[r]] = r*q/n + 1
  }
  max := values[indices[n-1]]
  for i := 0; i < n; i++ {
    if values[i] == max {
      bins[i] = q
    }
  }
  return bins
}

/* -------------------------------------------------------------------------- */

// Apply the conditioning pipeline to a table and return the shaped
// copy. The input table is never modified. An empty post-filter table
// is a valid result; callers are expected to handle zero rows
// gracefully.
func (conditions DataConditions) Apply(g GRanges) (GRanges, error) {
  if err := conditions.validate(&g); err != nil {
    return GRanges{}, err
  }
  // step 1: filters, applied as a conjunction
  indices := []int{}
  for i := 0; i < g.Length(); i++ {
    passes := true
    for _, filter := range conditions.Filters {
      if !filter.passes(&g, i) {
        passes = false
        break
      }
    }
    if passes {
      indices = append(indices, i)
    }
  }
  result := g.Subset(indices)

  // step 2: quantile binning or direct grouping
  if conditions.QuantileBy != "" {
    n := result.Length()
    if conditions.Quantiles > n {
      return GRanges{}, ConfigurationError{fmt.Sprintf("cannot form %d quantile bins from %d rows", conditions.Quantiles, n)}
    }
    bins     := quantileBins(columnAsFloat(&result, conditions.QuantileBy), conditions.Quantiles)
    grouping := make([]string, n)
    for i := 0; i < n; i++ {
      grouping[i] = fmt.Sprintf("Q%d", bins[i])
    }
    result.AddMeta("quantile", bins)
    result.AddMeta("grouping", grouping)
  } else
  if conditions.GroupBy != "" {
    var grouping []string
    switch v := result.GetMeta(conditions.GroupBy).(type) {
    case []string:
      grouping = make([]string, len(v))
      copy(grouping, v)
    case []int:
      grouping = make([]string, len(v))
      for i := 0; i < len(v); i++ {
        grouping[i] = strconv.Itoa(v[i])
      }
    }
    result.AddMeta("grouping", grouping)
  }
  // step 3: plot_order, a rank annotation that never reorders rows
  order, err := result.Meta.sortedIndices(conditions.orderColumn(), !conditions.OrderAscending)
  if err != nil {
    return GRanges{}, err
  }
  grouping  := result.GetMetaStr("grouping")
  plotOrder := make([]int, result.Length())
  rank      := make(map[string]int)
  for _, i := range order {
    key := ""
    if len(grouping) > 0 {
      key = grouping[i]
    }
    rank[key]   += 1
    plotOrder[i] = rank[key]
  }
  result.AddMeta("plot_order", plotOrder)

  return result, nil
}
