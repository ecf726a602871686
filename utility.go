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

import "compress/gzip"
import "io"
import "os"
import "path/filepath"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  }
  return b
}

func iMax(a, b int) int {
  if a > b {
    return a
  }
  return b
}

func removeDuplicatesInt(s []int) []int {
  m := map[int]bool{}
  r := []int{}

  for _, v := range s {
    if m[v] != true {
      m[v] = true
      r    = append(r, v)
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

func isGzip(filename string) bool {
  return filepath.Ext(filename) == ".gz"
}

// Write the contents of the reader r to a file. If compress is true
// the output is gzipped.
func writeFile(filename string, r io.Reader, compress bool) error {
  var w io.Writer

  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  if compress {
    z := gzip.NewWriter(f)
    defer z.Close()
    w = z
  } else {
    w = f
  }
  _, err = io.Copy(w, r)

  return err
}

// Open a file for reading; gzipped files are detected by their
// extension and decompressed on the fly. The returned closer must
// be closed by the caller.
func openFile(filename string) (io.ReadCloser, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      f.Close()
      return nil, err
    }
    return &gzipReadCloser{g, f}, nil
  }
  return f, nil
}

type gzipReadCloser struct {
  *gzip.Reader
  file *os.File
}

func (r *gzipReadCloser) Close() error {
  if err := r.Reader.Close(); err != nil {
    r.file.Close()
    return err
  }
  return r.file.Close()
}

