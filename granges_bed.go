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

// Write the table as a bed file with six columns. Bed files are 0-based
// with half-open ranges, i.e. a range [from, to] is written as
// (from-1, to). The name column is filled with the row key and the
// score column with the `score' meta column if present.
func (g GRanges) WriteBed6(w io.Writer) error {
  score := g.GetMetaFloat("score")

  for i := 0; i < g.Length(); i++ {
    s := 0.0
    if len(score) > 0 {
      s = score[i]
    }
    strand := g.Strand[i]
    if strand == '*' {
      strand = '.'
    }
    if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%c\n",
      g.Seqnames[i], g.Ranges[i].From-1, g.Ranges[i].To, g.RowKey(i),
      strconv.FormatFloat(s, 'f', -1, 64), strand); err != nil {
      return err
    }
  }
  return nil
}

func (g GRanges) ExportBed6(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := g.WriteBed6(w); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}

/* -------------------------------------------------------------------------- */

// Read a bed file with at least six columns. The score column is
// attached as a float64 meta column named `score'.
func (g *GRanges) ReadBed6(r io.Reader) error {
  scanner := bufio.NewScanner(r)

  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  strand   := []byte{}
  score    := []float64{}

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 6 {
      return fmt.Errorf("ReadBed6(): bed file must have at least six columns")
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return err
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64)
    if err != nil {
      return err
    }
    t3, err := strconv.ParseFloat(fields[4], 64)
    if err != nil {
      return err
    }
    s := fields[5][0]
    if s == '.' {
      s = '*'
    }
    seqnames = append(seqnames, fields[0])
    from     = append(from,     int(t1)+1)
    to       = append(to,       int(t2))
    strand   = append(strand,   s)
    score    = append(score,    t3)
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  *g = NewGRanges(seqnames, from, to, strand)
  g.AddMeta("score", score)

  return nil
}

func (g *GRanges) ImportBed6(filename string) error {
  f, err := openFile(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  return g.ReadBed6(f)
}
