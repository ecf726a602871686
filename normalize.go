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

// Return a copy of the table with the score column scaled to counts
// per million. Rows and row order are identical to the input, which
// keeps raw and normalized variants in lockstep. A table with zero
// total score is returned unchanged.
func NormalizeCPM(g GRanges) (GRanges, error) {
  score := g.GetMetaFloat("score")
  if g.Length() > 0 && len(score) != g.Length() {
    return GRanges{}, ColumnNotFoundError{"score"}
  }
  result := g.Clone()

  total := 0.0
  for i := 0; i < len(score); i++ {
    total += score[i]
  }
  if total == 0.0 {
    return result, nil
  }
  normalized := result.GetMetaFloat("score")
  for i := 0; i < len(normalized); i++ {
    normalized[i] = normalized[i]/total*1e6
  }
  return result, nil
}
