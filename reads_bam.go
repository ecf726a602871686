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

import "io"
import "os"

import "github.com/biogo/hts/bam"
import "github.com/biogo/hts/sam"

/* -------------------------------------------------------------------------- */

// Import read 5'-ends from a bam file. Unmapped, secondary, and
// supplementary alignments are skipped; duplicates are kept. Reads
// on the minus strand contribute their rightmost aligned position.
func ImportBamReadEnds(filename string) ([]ReadEnd, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  reader, err := bam.NewReader(f, 1)
  if err != nil {
    return nil, err
  }
  defer reader.Close()

  reads := []ReadEnd{}

  for {
    record, err := reader.Read()
    if err == io.EOF {
      break
    }
    if err != nil {
      return nil, err
    }
    if record.Flags & sam.Unmapped      != 0 ||
       record.Flags & sam.Secondary     != 0 ||
       record.Flags & sam.Supplementary != 0 {
      continue
    }
    if record.Ref == nil {
      continue
    }
    if record.Flags & sam.Reverse != 0 {
      // record.End() is the 0-based exclusive end, which equals the
      // 1-based position of the last aligned base
      reads = append(reads, ReadEnd{record.Ref.Name(), record.End(), '-', 1.0})
    } else {
      reads = append(reads, ReadEnd{record.Ref.Name(), record.Pos+1, '+', 1.0})
    }
  }
  return reads, nil
}
