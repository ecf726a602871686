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

/* -------------------------------------------------------------------------- */

// Sample sheet for differential usage analysis: one condition label
// per sample column of the count matrix.
type Design struct {
  Samples   []string
  Condition []string
}

// A contrast between two condition labels of a design.
type Contrast struct {
  Numerator   string
  Denominator string
}

// Check the design against the dimensions of a count matrix before
// model fitting.
func (design Design) Check(counts CountMatrix) error {
  if len(design.Samples) != len(design.Condition) {
    return InputShapeError{fmt.Sprintf("%d samples but %d condition labels",
      len(design.Samples), len(design.Condition))}
  }
  if len(design.Samples) != len(counts.Samples) {
    return InputShapeError{fmt.Sprintf("design has %d samples but count matrix has %d columns",
      len(design.Samples), len(counts.Samples))}
  }
  for i := 0; i < len(design.Samples); i++ {
    if design.Samples[i] != counts.Samples[i] {
      return InputShapeError{fmt.Sprintf("design sample `%s' does not match count matrix column `%s'",
        design.Samples[i], counts.Samples[i])}
    }
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// An external statistical engine fitting a model to a count matrix.
// The fitted model is opaque to this package.
type DifferentialEngine interface {
  Fit(counts CountMatrix, design Design) (DifferentialModel, error)
}

// A fitted model producing one results table per contrast. Result
// tables are expected to carry the columns feature, log2FoldChange,
// pvalue, padj, and baseMean after NormalizeResultColumns.
type DifferentialModel interface {
  Results(contrast Contrast) (Meta, error)
}

/* -------------------------------------------------------------------------- */

var resultColumnAliases = map[string]string{
  "gene"          : "feature",
  "id"            : "feature",
  "log2FC"        : "log2FoldChange",
  "logFC"         : "log2FoldChange",
  "lfc"           : "log2FoldChange",
  "pval"          : "pvalue",
  "PValue"        : "pvalue",
  "p.value"       : "pvalue",
  "FDR"           : "padj",
  "qvalue"        : "padj",
  "adj.P.Val"     : "padj",
  "AveExpr"       : "baseMean",
  "mean"          : "baseMean",
  "meanExpression": "baseMean",
}

var resultColumns = []string{
  "feature", "log2FoldChange", "pvalue", "padj", "baseMean",
}

// Rename the columns of a results table to the canonical schema
// {feature, log2FoldChange, pvalue, padj, baseMean} regardless of
// which statistical engine produced the table. A canonical column
// that is neither present nor available under a known alias is an
// error.
func NormalizeResultColumns(meta *Meta) error {
  for alias, name := range resultColumnAliases {
    if meta.GetMeta(name) == nil && meta.GetMeta(alias) != nil {
      meta.RenameMeta(alias, name)
    }
  }
  for _, name := range resultColumns {
    if meta.GetMeta(name) == nil {
      return ColumnNotFoundError{name}
    }
  }
  return nil
}
