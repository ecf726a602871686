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
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/tsrtools"

/* -------------------------------------------------------------------------- */

type Config struct {
  Verbose   int
  Fasta     string
  Window    int
  BedGraph  bool
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importReadEnds(config Config, filename string) []ReadEnd {
  var reads []ReadEnd
  var err     error

  PrintStderr(config, 1, "Importing reads from `%s'... ", filename)
  if strings.HasSuffix(filename, ".bam") {
    reads, err = ImportBamReadEnds(filename)
  } else {
    reads, err = ImportBedReadEnds(filename)
  }
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  return reads
}

/* -------------------------------------------------------------------------- */

func tssAggregate(config Config, filenameIn, filenameOut string) {
  reads := importReadEnds(config, filenameIn)

  PrintStderr(config, 1, "Aggregating %d read ends... ", len(reads))
  tss, err := AggregateReadEnds(reads)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  if config.Fasta != "" {
    sequences := EmptyStringSet()
    PrintStderr(config, 1, "Importing sequences from `%s'... ", config.Fasta)
    if err := sequences.ImportFasta(config.Fasta); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")

    PrintStderr(config, 1, "Correcting base composition bias... ")
    if err := CorrectBaseComposition(&tss, sequences, config.Window); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
  PrintStderr(config, 1, "Writing table `%s'... ", filenameOut)
  if config.BedGraph {
    err = tss.ExportBedGraph(filenameOut, strings.HasSuffix(filenameOut, ".gz"))
  } else {
    err = tss.ExportTable(filenameOut, strings.HasSuffix(filenameOut, ".gz"))
  }
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optFasta    := options. StringLong("fasta",     0 , "", "fasta file used for base composition bias correction")
  optWindow   := options.    IntLong("window",    0 , 10, "window length for the G-content estimate")
  optBedGraph := options.   BoolLong("bedgraph",  0 ,     "write output as bedGraph instead of a table")
  optHelp     := options.   BoolLong("help",     'h',     "print help")
  optVerbose  := options.CounterLong("verbose",  'v',     "be verbose")

  options.SetParameters("<INPUT.{bed,bam}> <OUTPUT.table>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Verbose  = *optVerbose
  config.Fasta    = *optFasta
  config.Window   = *optWindow
  config.BedGraph = *optBedGraph

  tssAggregate(config, options.Args()[0], options.Args()[1])
}
