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

import "sort"

/* -------------------------------------------------------------------------- */

// Meta holds the named data columns of a table. Admissible column types
// are []string, []int, []float64 and their two-dimensional variants,
// which result from merging rows.
type Meta struct {
  MetaName []string
  MetaData []interface{}
  rows int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewMeta(names []string, data []interface{}) Meta {
  meta := Meta{}
  if len(names) != len(data) {
    panic("NewMeta(): invalid parameters!")
  }
  for i := 0; i < len(names); i++ {
    meta.AddMeta(names[i], data[i])
  }
  return meta
}

// Deep copy the Meta object.
func (m *Meta) Clone() Meta {
  result := Meta{}
  for i := 0; i < m.MetaLength(); i++ {
    switch v := m.MetaData[i].(type) {
    case []string:
      r := make([]string, len(v))
      copy(r, v)
      result.AddMeta(m.MetaName[i], r)
    case []int:
      r := make([]int, len(v))
      copy(r, v)
      result.AddMeta(m.MetaName[i], r)
    case []float64:
      r := make([]float64, len(v))
      copy(r, v)
      result.AddMeta(m.MetaName[i], r)
    case [][]string:
      r := make([][]string, len(v))
      for j := 0; j < len(v); j++ {
        r[j] = make([]string, len(v[j]))
        copy(r[j], v[j])
      }
      result.AddMeta(m.MetaName[i], r)
    case [][]int:
      r := make([][]int, len(v))
      for j := 0; j < len(v); j++ {
        r[j] = make([]int, len(v[j]))
        copy(r[j], v[j])
      }
      result.AddMeta(m.MetaName[i], r)
    case [][]float64:
      r := make([][]float64, len(v))
      for j := 0; j < len(v); j++ {
        r[j] = make([]float64, len(v[j]))
        copy(r[j], v[j])
      }
      result.AddMeta(m.MetaName[i], r)
    default:
      panic("Clone(): invalid type!")
    }
  }
  return result
}

/* -------------------------------------------------------------------------- */

// Returns the number of rows.
func (m *Meta) Length() int {
  return m.rows
}

// Returns the number of columns.
func (m *Meta) MetaLength() int {
  return len(m.MetaName)
}

func metaColumnLength(data interface{}) int {
  switch v := data.(type) {
  case []string   : return len(v)
  case []int      : return len(v)
  case []float64  : return len(v)
  case [][]string : return len(v)
  case [][]int    : return len(v)
  case [][]float64: return len(v)
  default:
    panic("metaColumnLength(): invalid type!")
  }
}

// Add a column to the table. If a column with the same name exists
// already it is replaced. All columns must have the same number of
// rows.
func (m *Meta) AddMeta(name string, data interface{}) {
  n := metaColumnLength(data)
  if m.MetaLength() > 0 && n != m.rows {
    panic("AddMeta(): column has invalid length!")
  }
  m.DeleteMeta(name)
  if m.MetaLength() == 0 {
    m.rows = n
  }
  m.MetaName = append(m.MetaName, name)
  m.MetaData = append(m.MetaData, data)
}

func (m *Meta) DeleteMeta(name string) {
  for i := 0; i < m.MetaLength(); i++ {
    if m.MetaName[i] == name {
      m.MetaName = append(m.MetaName[:i], m.MetaName[i+1:]...)
      m.MetaData = append(m.MetaData[:i], m.MetaData[i+1:]...)
    }
  }
}

func (m *Meta) RenameMeta(nameOld, nameNew string) {
  for i := 0; i < m.MetaLength(); i++ {
    if m.MetaName[i] == nameOld {
      m.MetaName[i] = nameNew
    }
  }
}

func (m *Meta) GetMeta(name string) interface{} {
  for i := 0; i < m.MetaLength(); i++ {
    if m.MetaName[i] == name {
      return m.MetaData[i]
    }
  }
  return nil
}

func (m *Meta) GetMetaStr(name string) []string {
  if r := m.GetMeta(name); r != nil {
    return r.([]string)
  }
  return []string{}
}

func (m *Meta) GetMetaInt(name string) []int {
  if r := m.GetMeta(name); r != nil {
    return r.([]int)
  }
  return []int{}
}

func (m *Meta) GetMetaFloat(name string) []float64 {
  if r := m.GetMeta(name); r != nil {
    return r.([]float64)
  }
  return []float64{}
}

/* -------------------------------------------------------------------------- */

func (meta1 *Meta) Append(meta2 Meta) Meta {
  result := Meta{}

  // clone data so we do not have to deep copy
  // two-dimensional slices
  m1 := meta1.Clone()
  m2 := meta2.Clone()

  for j := 0; j < m1.MetaLength(); j++ {
    var t interface{}

    name := m1.MetaName[j]
    dat1 := m1.MetaData[j]
    dat2 := m2.GetMeta(name)

    switch v := dat1.(type) {
    case []string   : t = append(v, dat2.(  []string)...)
    case []int      : t = append(v, dat2.(  []int)...)
    case []float64  : t = append(v, dat2.(  []float64)...)
    case [][]string : t = append(v, dat2.([][]string)...)
    case [][]int    : t = append(v, dat2.([][]int)...)
    case [][]float64: t = append(v, dat2.([][]float64)...)
    }
    result.AddMeta(name, t)
  }
  return result
}

func (meta *Meta) Remove(indices []int) Meta {
  if len(indices) == 0 {
    return meta.Clone()
  }
  indices = removeDuplicatesInt(indices)
  sort.Ints(indices)

  n := meta.Length()
  m := n - len(indices)
  // convert indices to subset indices
  idx := make([]int, m)
  for i, j, k := 0, 0, 0; i < meta.Length(); i++ {
    for k < len(indices)-1 && i > indices[k] {
      k++
    }
    if i != indices[k] {
      idx[j] = i
      j++
    }
  }
  return meta.Subset(idx)
}

// Return a new Meta object with a subset of the rows from
// this object.
func (meta *Meta) Subset(indices []int) Meta {
  n := len(indices)
  m := meta.MetaLength()
  data := []interface{}{}

  for j := 0; j < m; j++ {
    switch v := meta.MetaData[j].(type) {
    case []string:
      l := make([]string, n)
      for i := 0; i < n; i++ {
        l[i] = v[indices[i]]
      }
      data = append(data, l)
    case []int:
      l := make([]int, n)
      for i := 0; i < n; i++ {
        l[i] = v[indices[i]]
      }
      data = append(data, l)
    case []float64:
      l := make([]float64, n)
      for i := 0; i < n; i++ {
        l[i] = v[indices[i]]
      }
      data = append(data, l)
    case [][]string:
      l := make([][]string, n)
      for i := 0; i < n; i++ {
        l[i] = v[indices[i]]
      }
      data = append(data, l)
    case [][]int:
      l := make([][]int, n)
      for i := 0; i < n; i++ {
        l[i] = v[indices[i]]
      }
      data = append(data, l)
    case [][]float64:
      l := make([][]float64, n)
      for i := 0; i < n; i++ {
        l[i] = v[indices[i]]
      }
      data = append(data, l)
    }
  }
  return NewMeta(meta.MetaName, data)
}

// Return a new Meta object containing rows given by the range
// [ifrom, ito).
func (meta *Meta) Slice(ifrom, ito int) Meta {
  indices := make([]int, ito-ifrom)
  for i := ifrom; i < ito; i++ {
    indices[i-ifrom] = i
  }
  return meta.Subset(indices)
}

// Return a new Meta object where a given set of rows has been merged. The
// argument indices should assign the same target index to all rows that
// should be merged, i.e.
//   indices := []int{0, 1, 1, 2, 3}
// merges rows 1 and 2 but leaves rows 0, 3 and 4 as they are. Rows are
// merged by replacing one-dimensional slices by two-dimensional slices.
// The Reduce{String,Float,Int} methods may be used afterwards to apply a
// function to the merged data. A Meta object that already contains
// two-dimensional slices cannot be merged.
func (meta *Meta) Merge(indices []int) Meta {
  n := 0
  for _, v := range indices {
    if v+1 > n {
      n = v+1
    }
  }
  m := meta.MetaLength()
  data := []interface{}{}

  for j := 0; j < m; j++ {
    switch v := meta.MetaData[j].(type) {
    case []string:
      l := make([][]string, n)
      for i := 0; i < len(v); i++ {
        l[indices[i]] = append(l[indices[i]], v[i])
      }
      data = append(data, l)
    case []int:
      l := make([][]int, n)
      for i := 0; i < len(v); i++ {
        l[indices[i]] = append(l[indices[i]], v[i])
      }
      data = append(data, l)
    case []float64:
      l := make([][]float64, n)
      for i := 0; i < len(v); i++ {
        l[indices[i]] = append(l[indices[i]], v[i])
      }
      data = append(data, l)
    default:
      panic("Merge(): cannot merge two-dimensional columns!")
    }
  }
  return NewMeta(meta.MetaName, data)
}

// Reduce a column with a two-dimensional string slice by applying
// the given function f. If nameNew != "" the old meta column
// is kept.
func (meta *Meta) ReduceString(name, nameNew string, f func([]string) string) {
  t := meta.GetMeta(name).([][]string)
  r := make([]string, len(t))
  for i := 0; i < len(t); i++ {
    r[i] = f(t[i])
  }
  if nameNew != "" && name != nameNew {
    meta.AddMeta(nameNew, r)
  } else {
    meta.DeleteMeta(name)
    meta.AddMeta(name, r)
  }
}

// Reduce a column with a two-dimensional int slice by applying
// the given function f. If nameNew != "" the old meta column
// is kept.
func (meta *Meta) ReduceInt(name, nameNew string, f func([]int) int) {
  t := meta.GetMeta(name).([][]int)
  r := make([]int, len(t))
  for i := 0; i < len(t); i++ {
    r[i] = f(t[i])
  }
  if nameNew != "" && name != nameNew {
    meta.AddMeta(nameNew, r)
  } else {
    meta.DeleteMeta(name)
    meta.AddMeta(name, r)
  }
}

// Reduce a column with a two-dimensional float64 slice by applying
// the given function f. If nameNew != "" the old meta column
// is kept.
func (meta *Meta) ReduceFloat(name, nameNew string, f func([]float64) float64) {
  t := meta.GetMeta(name).([][]float64)
  r := make([]float64, len(t))
  for i := 0; i < len(t); i++ {
    r[i] = f(t[i])
  }
  if nameNew != "" && name != nameNew {
    meta.AddMeta(nameNew, r)
  } else {
    meta.DeleteMeta(name)
    meta.AddMeta(name, r)
  }
}

/* sorting
 * -------------------------------------------------------------------------- */

type metaPair struct {
  Key   int
  Value interface{}
}

type metaPairList []metaPair

func (p metaPairList) Len() int {
  return len(p)
}

func (p metaPairList) Less(i, j int) bool {
  switch p[i].Value.(type) {
  case float64: return p[i].Value.(float64) < p[j].Value.(float64)
  case int    : return p[i].Value.(int)     < p[j].Value.(int)
  case string : return p[i].Value.(string)  < p[j].Value.(string)
  default:
    panic("Invalid type for sorting!")
  }
}

func (p metaPairList) Swap(i, j int) {
  p[i], p[j] = p[j], p[i]
}

func (meta *Meta) sortedIndices(name string, reverse bool) ([]int, error) {
  l := metaPairList{}
  if t := meta.GetMeta(name); t != nil {
    switch s := t.(type) {
    case []float64: for i, v := range s { l = append(l, metaPair{i, v}) }
    case []int    : for i, v := range s { l = append(l, metaPair{i, v}) }
    case []string : for i, v := range s { l = append(l, metaPair{i, v}) }
    default:
      panic("Invalid type for sorting!")
    }
  } else {
    return nil, ColumnNotFoundError{name}
  }
  // a stable sort keeps the input order of rows with
  // equal values
  if reverse {
    sort.Stable(sort.Reverse(l))
  } else {
    sort.Stable(l)
  }
  j := make([]int, len(l))
  for i := 0; i < len(l); i++ {
    j[i] = l[i].Key
  }
  return j, nil
}

func (meta *Meta) Sort(name string, reverse bool) (Meta, error) {
  j, err := meta.sortedIndices(name, reverse)
  if err != nil {
    return Meta{}, err
  }
  return meta.Subset(j), nil
}
