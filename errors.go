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

// ConfigurationError indicates an invalid DataConditions object or
// invalid engine parameters. It is returned before any partial
// computation is done.
type ConfigurationError struct {
  Reason string
}

func (err ConfigurationError) Error() string {
  return fmt.Sprintf("invalid configuration: %s", err.Reason)
}

/* -------------------------------------------------------------------------- */

// ColumnNotFoundError indicates that a configuration references a meta
// column that is not part of the table.
type ColumnNotFoundError struct {
  Column string
}

func (err ColumnNotFoundError) Error() string {
  return fmt.Sprintf("column `%s' not found", err.Column)
}

/* -------------------------------------------------------------------------- */

// InputShapeError indicates that the dimensions of a count matrix do
// not match the sample design it is combined with.
type InputShapeError struct {
  Reason string
}

func (err InputShapeError) Error() string {
  return fmt.Sprintf("input dimensions do not match: %s", err.Reason)
}
