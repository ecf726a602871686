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

import . "github.com/pbenner/tsrtools"

/* -------------------------------------------------------------------------- */

type Config struct {
  Verbose int
  Columns string
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

// Parse a comma separated list of name:type pairs specifying which
// meta columns to import, e.g. "score:float64,geneId:string".
func parseColumns(spec string) ([]string, []string) {
  names := []string{}
  types := []string{}
  for _, field := range strings.Split(spec, ",") {
    if field == "" {
      continue
    }
    pair := strings.Split(field, ":")
    if len(pair) != 2 {
      log.Fatalf("invalid column specification `%s'", field)
    }
    switch pair[1] {
    case "string", "int", "float64":
    default:
      log.Fatalf("invalid column type `%s'", pair[1])
    }
    names = append(names, pair[0])
    types = append(types, "[]"+pair[1])
  }
  return names, types
}

/* -------------------------------------------------------------------------- */

func tableCondition(config Config, conditions DataConditions, filenameIn, filenameOut string) {
  g := GRanges{}

  names, types := parseColumns(config.Columns)

  PrintStderr(config, 1, "Importing table `%s'... ", filenameIn)
  if err := g.ImportTable(filenameIn, names, types); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  result, err := conditions.Apply(g)
  if err != nil {
    log.Fatal(err)
  }
  if result.Length() == 0 {
    // valid result, but downstream consumers have nothing to work with
    log.Printf("warning: no rows left after filtering `%s'", filenameIn)
  }
  PrintStderr(config, 1, "Writing %d rows to `%s'... ", result.Length(), filenameOut)
  if err := result.ExportTable(filenameOut, strings.HasSuffix(filenameOut, ".gz")); err != nil {
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

  optColumns    := options. StringLong("columns",     0 , "score:float64", "meta columns to import as name:type pairs [default: score:float64]")
  optMinScore   := options. StringLong("min-score",   0 , "",              "drop rows with a score below this threshold")
  optQuantileBy := options. StringLong("quantile-by", 0 , "",              "numeric column used for quantile binning")
  optQuantiles  := options.    IntLong("quantiles",   0 , 0,               "number of equal-population quantile bins")
  optGroupBy    := options. StringLong("group-by",    0 , "",              "categorical column used for grouping")
  optOrderBy    := options. StringLong("order-by",    0 , "",              "column determining the plot order [default: score]")
  optAscending  := options.   BoolLong("ascending",   0 ,                  "rank rows in ascending instead of descending order")
  optHelp       := options.   BoolLong("help",       'h',                  "print help")
  optVerbose    := options.CounterLong("verbose",    'v',                  "be verbose")

  options.SetParameters("<INPUT.table> <OUTPUT.table>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Verbose = *optVerbose
  config.Columns = *optColumns

  conditions := DataConditions{}
  conditions.OrderBy        = *optOrderBy
  conditions.OrderAscending = *optAscending
  conditions.QuantileBy     = *optQuantileBy
  conditions.Quantiles      = *optQuantiles
  conditions.GroupBy        = *optGroupBy

  if *optMinScore != "" {
    minScore, err := strconv.ParseFloat(*optMinScore, 64)
    if err != nil {
      log.Fatalf("parsing min-score failed: %v", err)
    }
    conditions.Filters = append(conditions.Filters, Filter{Column: "score", Op: FilterGe, Value: minScore})
  }
  tableCondition(config, conditions, options.Args()[0], options.Args()[1])
}
