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

import "fmt"
import "sort"
import "sync"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// The data types held by a sample store. All types share the GRanges
// table schema and differ only in which meta columns are populated.
type DataType int

const (
  DataTSS DataType = iota
  DataTSR
  DataFeature
)

func (t DataType) String() string {
  switch t {
  case DataTSS    : return "tss"
  case DataTSR    : return "tsr"
  case DataFeature: return "feature"
  default         : return "invalid"
  }
}

// Score variants of a table. Raw and normalized tables always have
// identical rows and differ only in the semantics of the score column.
type Variant int

const (
  Raw Variant = iota
  Normalized
)

func (v Variant) String() string {
  switch v {
  case Raw       : return "raw"
  case Normalized: return "normalized"
  default        : return "invalid"
  }
}

/* -------------------------------------------------------------------------- */

type tableKey struct {
  sample  string
  dtype   DataType
  variant Variant
}

type sampleTable struct {
  mutex sync.RWMutex
  data  GRanges
}

// SampleStore maps (sample, data type, variant) to a table of scored
// genomic positions or intervals. Every table is guarded by its own
// read/write lock: reads may proceed concurrently, writes to one table
// are serialized, and writes to distinct tables are independent.
type SampleStore struct {
  mutex  sync.RWMutex
  tables map[tableKey]*sampleTable
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewSampleStore() *SampleStore {
  return &SampleStore{tables: make(map[tableKey]*sampleTable)}
}

/* -------------------------------------------------------------------------- */

func (store *SampleStore) table(key tableKey, create bool) *sampleTable {
  store.mutex.RLock()
  t := store.tables[key]
  store.mutex.RUnlock()
  if t != nil || !create {
    return t
  }
  store.mutex.Lock()
  defer store.mutex.Unlock()
  if t = store.tables[key]; t == nil {
    t = &sampleTable{}
    store.tables[key] = t
  }
  return t
}

// Insert a table, replacing any previous table under the same key. The
// table is deep copied on the way in.
func (store *SampleStore) Add(sample string, dtype DataType, variant Variant, g GRanges) {
  t := store.table(tableKey{sample, dtype, variant}, true)
  t.mutex.Lock()
  t.data = g.Clone()
  t.mutex.Unlock()
}

func (store *SampleStore) Has(sample string, dtype DataType, variant Variant) bool {
  return store.table(tableKey{sample, dtype, variant}, false) != nil
}

// Retrieve a deep copy of a table. Conditioning and all other
// downstream consumers operate on the copy, never on store state.
func (store *SampleStore) Get(sample string, dtype DataType, variant Variant) (GRanges, error) {
  t := store.table(tableKey{sample, dtype, variant}, false)
  if t == nil {
    return GRanges{}, fmt.Errorf("no %s %s table for sample `%s'", variant, dtype, sample)
  }
  t.mutex.RLock()
  defer t.mutex.RUnlock()
  return t.data.Clone(), nil
}

// Mutate a table in place, e.g. to attach annotation or dominance
// columns. The update is applied to a copy first and installed only if
// f succeeds, so a failing update leaves the store unchanged.
func (store *SampleStore) Update(sample string, dtype DataType, variant Variant, f func(g *GRanges) error) error {
  t := store.table(tableKey{sample, dtype, variant}, false)
  if t == nil {
    return fmt.Errorf("no %s %s table for sample `%s'", variant, dtype, sample)
  }
  t.mutex.Lock()
  defer t.mutex.Unlock()
  g := t.data.Clone()
  if err := f(&g); err != nil {
    return err
  }
  t.data = g
  return nil
}

// Names of all samples that have a table of the given data type and
// variant, in sorted order.
func (store *SampleStore) Samples(dtype DataType, variant Variant) []string {
  store.mutex.RLock()
  samples := []string{}
  for key, _ := range store.tables {
    if key.dtype == dtype && key.variant == variant {
      samples = append(samples, key.sample)
    }
  }
  store.mutex.RUnlock()
  sort.Strings(samples)
  return samples
}

/* -------------------------------------------------------------------------- */

// Run f once per sample on a fixed-size thread pool. Samples are
// independent of each other, hence jobs only synchronize on the store
// locks.
func (store *SampleStore) eachSample(samples []string, threads int, f func(sample string) error) error {
  if threads < 1 {
    threads = 1
  }
  pool := threadpool.New(threads, 100*threads)

  return pool.RangeJob(0, len(samples), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if erf() != nil {
      return nil
    }
    return f(samples[i])
  })
}

// Cluster the raw TSS table of every sample into a raw TSR table and
// record region membership in the TSS table.
func (store *SampleStore) ClusterAllTSS(maxGap int, minScore float64, threads int) error {
  return store.eachSample(store.Samples(DataTSS, Raw), threads, func(sample string) error {
    tss, err := store.Get(sample, DataTSS, Raw)
    if err != nil {
      return err
    }
    tsr, err := ClusterTSS(tss, maxGap, minScore)
    if err != nil {
      return err
    }
    store.Add(sample, DataTSR, Raw, tsr)
    return store.Update(sample, DataTSS, Raw, func(g *GRanges) error {
      return AssignTSR(g, tsr)
    })
  })
}

// Compute the counts-per-million normalized variant of every raw table
// of the given data type.
func (store *SampleStore) NormalizeAllCPM(dtype DataType, threads int) error {
  return store.eachSample(store.Samples(dtype, Raw), threads, func(sample string) error {
    raw, err := store.Get(sample, dtype, Raw)
    if err != nil {
      return err
    }
    normalized, err := NormalizeCPM(raw)
    if err != nil {
      return err
    }
    store.Add(sample, dtype, Normalized, normalized)
    return nil
  })
}

// Attach nearest-gene annotation to every table of the given data type
// and variant.
func (store *SampleStore) AnnotateAll(genes Genes, dtype DataType, variant Variant, promoterWindow, threads int) error {
  return store.eachSample(store.Samples(dtype, variant), threads, func(sample string) error {
    return store.Update(sample, dtype, variant, func(g *GRanges) error {
      return AnnotateNearest(g, genes, promoterWindow)
    })
  })
}
