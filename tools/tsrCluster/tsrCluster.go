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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "os"
import   "strconv"
import   "strings"

import   "github.com/pborman/getopt"
import   "github.com/pbenner/threadpool"

import . "github.com/pbenner/tsrtools"

/* -------------------------------------------------------------------------- */

type Config struct {
  Verbose  int
  MaxGap   int
  MinScore float64
  Threads  int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func outputName(filename string) string {
  if strings.HasSuffix(filename, ".gz") {
    filename = strings.TrimSuffix(filename, ".gz")
  }
  if i := strings.LastIndex(filename, "."); i != -1 {
    filename = filename[0:i]
  }
  return filename + ".tsr.table"
}

func clusterFile(config Config, filenameIn string) error {
  tss := GRanges{}

  PrintStderr(config, 1, "Importing TSS table `%s'\n", filenameIn)
  if err := tss.ImportTable(filenameIn, []string{"score"}, []string{"[]float64"}); err != nil {
    return err
  }
  tsr, err := ClusterTSS(tss, config.MaxGap, config.MinScore)
  if err != nil {
    return err
  }
  PrintStderr(config, 1, "Writing %d regions to `%s'\n", tsr.Length(), outputName(filenameIn))

  return tsr.ExportTable(outputName(filenameIn), false)
}

/* -------------------------------------------------------------------------- */

func tsrCluster(config Config, filenames []string) {
  pool := threadpool.New(config.Threads, 100*config.Threads)

  err := pool.RangeJob(0, len(filenames), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if erf() != nil {
      return nil
    }
    return clusterFile(config, filenames[i])
  })
  if err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optMaxGap   := options.    IntLong("max-gap",   0 ,  25, "maximum number of positions between consecutive TSSs in one region [default: 25]")
  optMinScore := options. StringLong("min-score", 0 , "1", "minimum TSS score required for region membership [default: 1]")
  optThreads  := options.    IntLong("threads",  't',   1, "number of threads [default: 1]")
  optHelp     := options.   BoolLong("help",     'h',      "print help")
  optVerbose  := options.CounterLong("verbose",  'v',      "be verbose")

  options.SetParameters("<INPUT.table>...")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) == 0 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  minScore, err := strconv.ParseFloat(*optMinScore, 64)
  if err != nil {
    log.Fatalf("parsing min-score failed: %v", err)
  }
  if *optThreads < 1 {
    log.Fatal("invalid number of threads")
  }
  config.Verbose  = *optVerbose
  config.MaxGap   = *optMaxGap
  config.MinScore =  minScore
  config.Threads  = *optThreads

  tsrCluster(config, options.Args())
}
