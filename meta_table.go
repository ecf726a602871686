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
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Write one table row as tab separated values. For i == -1 the column
// names are printed instead. Entries of two-dimensional columns are
// separated by commas.
func (meta *Meta) WriteTableRow(w io.Writer, i int) error {
  if i == -1 {
    for k := 0; k < meta.MetaLength(); k++ {
      if _, err := fmt.Fprintf(w, "\t%s", meta.MetaName[k]); err != nil {
        return err
      }
    }
    return nil
  }
  for k := 0; k < meta.MetaLength(); k++ {
    var err error
    switch v := meta.MetaData[k].(type) {
    case []string : _, err = fmt.Fprintf(w, "\t%s", v[i])
    case []int    : _, err = fmt.Fprintf(w, "\t%d", v[i])
    case []float64: _, err = fmt.Fprintf(w, "\t%s", strconv.FormatFloat(v[i], 'f', -1, 64))
    case [][]string:
      _, err = fmt.Fprintf(w, "\t%s", strings.Join(v[i], ","))
    case [][]int:
      s := make([]string, len(v[i]))
      for j := 0; j < len(v[i]); j++ {
        s[j] = strconv.Itoa(v[i][j])
      }
      _, err = fmt.Fprintf(w, "\t%s", strings.Join(s, ","))
    case [][]float64:
      s := make([]string, len(v[i]))
      for j := 0; j < len(v[i]); j++ {
        s[j] = strconv.FormatFloat(v[i][j], 'f', -1, 64)
      }
      _, err = fmt.Fprintf(w, "\t%s", strings.Join(s, ","))
    }
    if err != nil {
      return err
    }
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Read meta columns from a table. The header of the table determines
// the column order; names and types specify which columns to import,
// where admissible types are []string, []int, []float64, [][]string,
// [][]int, and [][]float64. Columns listed in names that do not appear
// in the table are silently skipped.
func ReadMetaFromTable(r io.Reader, names, types []string) (Meta, error) {
  if len(names) != len(types) {
    panic("ReadMetaFromTable(): invalid arguments!")
  }
  result  := Meta{}
   idxMap := make(map[string]int)
  metaMap := make(map[string]interface{})
  for i := 0; i < len(names); i++ {
    idxMap[names[i]] = -1
    switch types[i] {
    case   "[]string":  metaMap[names[i]] =   []string{}
    case   "[]int":     metaMap[names[i]] =   []int{}
    case   "[]float64": metaMap[names[i]] =   []float64{}
    case "[][]string":  metaMap[names[i]] = [][]string{}
    case "[][]int":     metaMap[names[i]] = [][]int{}
    case "[][]float64": metaMap[names[i]] = [][]float64{}
    default:
      panic("ReadMetaFromTable(): invalid types argument!")
    }
  }
  scanner := bufio.NewScanner(r)

  // scan header
  if scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    for i := 0; i < len(fields); i++ {
      if _, ok := idxMap[fields[i]]; ok {
        idxMap[fields[i]] = i
      }
    }
  }
  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    for name, idx := range idxMap {
      if idx == -1 {
        // column not found, skip
        continue
      }
      if idx >= len(fields) {
        return result, fmt.Errorf("ReadMetaFromTable(): invalid table")
      }
      switch entry := metaMap[name].(type) {
      case []string:
        metaMap[name] = append(entry, fields[idx])
      case []int:
        v, err := strconv.ParseInt(fields[idx], 10, 64)
        if err != nil {
          return result, err
        }
        metaMap[name] = append(entry, int(v))
      case []float64:
        v, err := strconv.ParseFloat(fields[idx], 64)
        if err != nil {
          return result, err
        }
        metaMap[name] = append(entry, v)
      case [][]string:
        metaMap[name] = append(entry, strings.Split(fields[idx], ","))
      case [][]int:
        data := strings.Split(fields[idx], ",")
        row  := make([]int, len(data))
        for i := 0; i < len(data); i++ {
          v, err := strconv.ParseInt(data[i], 10, 64)
          if err != nil {
            return result, err
          }
          row[i] = int(v)
        }
        metaMap[name] = append(entry, row)
      case [][]float64:
        data := strings.Split(fields[idx], ",")
        row  := make([]float64, len(data))
        for i := 0; i < len(data); i++ {
          v, err := strconv.ParseFloat(data[i], 64)
          if err != nil {
            return result, err
          }
          row[i] = v
        }
        metaMap[name] = append(entry, row)
      }
    }
  }
  if err := scanner.Err(); err != nil {
    return result, err
  }
  for i := 0; i < len(names); i++ {
    if idxMap[names[i]] != -1 {
      result.AddMeta(names[i], metaMap[names[i]])
    }
  }
  return result, nil
}
