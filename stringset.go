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
import "fmt"
import "io"
import "strings"

/* -------------------------------------------------------------------------- */

// A set of named sequences, e.g. the chromosomes of a genome assembly
// read from a fasta file. StringSet implements the SequenceSource
// interface.
type StringSet map[string][]byte

/* constructors
 * -------------------------------------------------------------------------- */

func NewStringSet(seqnames []string, sequences [][]byte) StringSet {
  if len(seqnames) != len(sequences) {
    panic("NewStringSet(): invalid arguments!")
  }
  s := make(StringSet)
  for i := 0; i < len(seqnames); i++ {
    s[seqnames[i]] = sequences[i]
  }
  return s
}

func EmptyStringSet() StringSet {
  return make(StringSet)
}

/* -------------------------------------------------------------------------- */

// Extract the subsequence covered by r. If the range reaches beyond
// the end of the sequence the result is truncated.
func (s StringSet) GetSlice(seqname string, r Range) ([]byte, error) {
  sequence, ok := s[seqname]
  if !ok {
    return nil, fmt.Errorf("GetSlice(): sequence `%s' not found", seqname)
  }
  if r.From > len(sequence) {
    return nil, fmt.Errorf("GetSlice(): range %v is outside of sequence `%s'", r, seqname)
  }
  to := iMin(r.To, len(sequence))

  return sequence[r.From-1:to], nil
}

/* i/o
 * -------------------------------------------------------------------------- */

func (s StringSet) ReadFasta(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)

  seqname  := ""
  sequence := []byte{}

  flush := func() {
    if seqname != "" {
      s[seqname] = sequence
    }
  }
  for scanner.Scan() {
    line := strings.TrimSpace(scanner.Text())
    if len(line) == 0 {
      continue
    }
    if line[0] == '>' {
      flush()
      fields  := strings.Fields(line[1:])
      if len(fields) == 0 {
        return fmt.Errorf("ReadFasta(): sequence has no name")
      }
      seqname  = fields[0]
      sequence = []byte{}
      if _, ok := s[seqname]; ok {
        return fmt.Errorf("ReadFasta(): sequence `%s' occurs multiple times", seqname)
      }
    } else {
      if seqname == "" {
        return fmt.Errorf("ReadFasta(): file does not start with a sequence header")
      }
      sequence = append(sequence, line...)
    }
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  flush()

  return nil
}

func (s StringSet) ImportFasta(filename string) error {
  f, err := openFile(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  return s.ReadFasta(f)
}
