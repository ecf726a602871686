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

// Names of the dominance flag columns for per-region and per-gene
// grouping.
const (
  DominantTSR  = "dominantTSR"
  DominantGene = "dominantGene"
)

/* -------------------------------------------------------------------------- */

// Mark the single highest-scoring row of every group with a 1 in an
// int meta column named flagName; all other rows receive a 0. The
// groupBy column may be of type []string or []int, e.g. `geneId' for
// per-gene and `tsrId' for per-region grouping. Rows with an empty
// string or a negative int as group key are unassigned and never
// dominant. Only rows with score >= threshold qualify; a group where
// no row meets the threshold has no dominant row. If several rows tie
// at the group maximum the first one in the current row order is
// marked, hence callers must pre-sort if a different tie-break is
// desired. Row count and order are unchanged.
func MarkDominant(g *GRanges, groupBy, flagName string, threshold float64) error {
  score := g.GetMetaFloat("score")
  if g.Length() > 0 && len(score) != g.Length() {
    return ColumnNotFoundError{"score"}
  }
  groups := make(map[string][]int)
  order  := []string{}

  switch v := g.GetMeta(groupBy).(type) {
  case []string:
    for i := 0; i < len(v); i++ {
      if v[i] == "" {
        continue
      }
      if _, ok := groups[v[i]]; !ok {
        order = append(order, v[i])
      }
      groups[v[i]] = append(groups[v[i]], i)
    }
  case []int:
    for i := 0; i < len(v); i++ {
      if v[i] < 0 {
        continue
      }
      key := fmt.Sprintf("%d", v[i])
      if _, ok := groups[key]; !ok {
        order = append(order, key)
      }
      groups[key] = append(groups[key], i)
    }
  case nil:
    if g.Length() > 0 {
      return ColumnNotFoundError{groupBy}
    }
  default:
    return ConfigurationError{fmt.Sprintf("grouping column `%s' must be of type []string or []int", groupBy)}
  }
  flags := make([]int, g.Length())
  for _, key := range order {
    best := -1
    for _, i := range groups[key] {
      if score[i] < threshold {
        continue
      }
      if best == -1 || score[i] > score[best] {
        best = i
      }
    }
    if best != -1 {
      flags[best] = 1
    }
  }
  g.AddMeta(flagName, flags)

  return nil
}
