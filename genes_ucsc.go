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

import "database/sql"
import "fmt"

import _ "github.com/go-sql-driver/mysql"

/* -------------------------------------------------------------------------- */

// Import gene models from the UCSC database, e.g. from the refGene
// table of the sacCer3 assembly. UCSC coordinates are 0-based with
// half-open ranges and are converted on import.
func ImportGenesFromUCSC(genome, table string) (Genes, error) {
  var iName, iSeqname, iStrand string
  var iTxFrom, iTxTo int

  names    := []string{}
  seqnames := []string{}
  txFrom   := []int{}
  txTo     := []int{}
  strand   := []byte{}

  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.cse.ucsc.edu:3306)/%s", genome))
  if err != nil {
    return Genes{}, err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return Genes{}, err
  }
  rows, err := db.Query(
    fmt.Sprintf("SELECT name, chrom, strand, txStart, txEnd FROM %s", table))
  if err != nil {
    return Genes{}, err
  }
  defer rows.Close()

  for rows.Next() {
    if err := rows.Scan(&iName, &iSeqname, &iStrand, &iTxFrom, &iTxTo); err != nil {
      return Genes{}, err
    }
    names    = append(names,    iName)
    seqnames = append(seqnames, iSeqname)
    txFrom   = append(txFrom,   iTxFrom+1)
    txTo     = append(txTo,     iTxTo)
    strand   = append(strand,   iStrand[0])
  }
  if err := rows.Err(); err != nil {
    return Genes{}, err
  }
  return NewGenes(names, seqnames, txFrom, txTo, strand), nil
}
