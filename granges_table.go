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

// Write the table as tab separated values. The first line lists the
// column names if header is true. Coordinates are 1-based with closed
// ranges.
func (g GRanges) WriteTable(w io.Writer, header bool) error {
  if header {
    if _, err := fmt.Fprintf(w, "seqnames\tfrom\tto\tstrand"); err != nil {
      return err
    }
    if err := g.Meta.WriteTableRow(w, -1); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, "\n"); err != nil {
      return err
    }
  }
  for i := 0; i < g.Length(); i++ {
    if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%c",
      g.Seqnames[i], g.Ranges[i].From, g.Ranges[i].To, g.Strand[i]); err != nil {
      return err
    }
    if err := g.Meta.WriteTableRow(w, i); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, "\n"); err != nil {
      return err
    }
  }
  return nil
}

func (g GRanges) ExportTable(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := g.WriteTable(w, true); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}

/* -------------------------------------------------------------------------- */

// Read a table of genomic positions or intervals. The first four
// columns must be seqnames, from, to, and strand. Meta columns given
// by names and types are imported as well.
func (g *GRanges) ReadTable(r io.Reader, names, types []string) error {
  var buffer bytes.Buffer

  scanner := bufio.NewScanner(io.TeeReader(r, &buffer))

  // scan header
  if scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) < 4          ||
       fields[0]  != "seqnames" || fields[1] != "from" ||
       fields[2]  != "to"       || fields[3] != "strand" {
      return fmt.Errorf("ReadTable(): invalid table header")
    }
  }
  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  strand   := []byte{}

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 4 {
      return fmt.Errorf("ReadTable(): invalid table row")
    }
    v1, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return err
    }
    v2, err := strconv.ParseInt(fields[2], 10, 64)
    if err != nil {
      return err
    }
    seqnames = append(seqnames, fields[0])
    from     = append(from,     int(v1))
    to       = append(to,       int(v2))
    strand   = append(strand,   fields[3][0])
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  *g = NewGRanges(seqnames, from, to, strand)

  meta, err := ReadMetaFromTable(&buffer, names, types)
  if err != nil {
    return err
  }
  g.Meta = meta

  return nil
}

func (g *GRanges) ImportTable(filename string, names, types []string) error {
  f, err := openFile(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  return g.ReadTable(f, names, types)
}
