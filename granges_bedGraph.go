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

import "bufio"
import "bytes"
import "fmt"
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Write the table as a bedGraph file with the `score' meta column as
// values. BedGraph files are 0-based with half-open ranges.
func (g GRanges) WriteBedGraph(w io.Writer) error {
  score := g.GetMetaFloat("score")

  if len(score) != g.Length() {
    return ColumnNotFoundError{"score"}
  }
  for i := 0; i < g.Length(); i++ {
    if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
      g.Seqnames[i], g.Ranges[i].From-1, g.Ranges[i].To,
      strconv.FormatFloat(score[i], 'f', -1, 64)); err != nil {
      return err
    }
  }
  return nil
}

func (g GRanges) ExportBedGraph(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := g.WriteBedGraph(w); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}

/* -------------------------------------------------------------------------- */

// Read a bedGraph file. Values are attached as a float64 meta column
// named `score'. BedGraph files carry no strand information, hence all
// rows have strand '*'.
func (g *GRanges) ReadBedGraph(r io.Reader) error {
  scanner := bufio.NewScanner(r)

  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  score    := []float64{}

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != 4 {
      return fmt.Errorf("ReadBedGraph(): bedGraph file must have four columns")
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return err
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64)
    if err != nil {
      return err
    }
    t3, err := strconv.ParseFloat(fields[3], 64)
    if err != nil {
      return err
    }
    seqnames = append(seqnames, fields[0])
    from     = append(from,     int(t1)+1)
    to       = append(to,       int(t2))
    score    = append(score,    t3)
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  *g = NewGRanges(seqnames, from, to, nil)
  g.AddMeta("score", score)

  return nil
}

func (g *GRanges) ImportBedGraph(filename string) error {
  f, err := openFile(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  return g.ReadBedGraph(f)
}
