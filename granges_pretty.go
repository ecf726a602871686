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
import "fmt"

/* -------------------------------------------------------------------------- */

func (g GRanges) prettyPrintRow(buffer *bytes.Buffer, i int) {
  fmt.Fprintf(buffer, "%8d %10s [%10d, %10d] %6c", i+1,
    g.Seqnames[i], g.Ranges[i].From, g.Ranges[i].To, g.Strand[i])
  for k := 0; k < g.MetaLength(); k++ {
    switch v := g.MetaData[k].(type) {
    case []string : fmt.Fprintf(buffer, " %12s", v[i])
    case []int    : fmt.Fprintf(buffer, " %12d", v[i])
    case []float64: fmt.Fprintf(buffer, " %12f", v[i])
    default       : fmt.Fprintf(buffer, " %12s", "...")
    }
  }
  fmt.Fprintf(buffer, "\n")
}

// Print the first and last n/2 rows of the table.
func (g GRanges) PrettyPrint(n int) string {
  var buffer bytes.Buffer

  fmt.Fprintf(&buffer, "%8s %10s %25s %6s", "", "seqnames", "ranges", "strand")
  for k := 0; k < g.MetaLength(); k++ {
    fmt.Fprintf(&buffer, " %12s", g.MetaName[k])
  }
  fmt.Fprintf(&buffer, "\n")

  if g.Length() <= n+1 {
    for i := 0; i < g.Length(); i++ {
      g.prettyPrintRow(&buffer, i)
    }
  } else {
    for i := 0; i < n/2; i++ {
      g.prettyPrintRow(&buffer, i)
    }
    fmt.Fprintf(&buffer, "%8s %10s\n", "", "...")
    for i := g.Length() - n/2; i < g.Length(); i++ {
      g.prettyPrintRow(&buffer, i)
    }
  }
  return buffer.String()
}

func (g GRanges) String() string {
  return g.PrettyPrint(10)
}
