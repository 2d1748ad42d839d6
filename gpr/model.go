/*
 * model.go, part of rosusc.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package gpr

import (
	"fmt"
	"io"
	"strings"

	"github.com/pputida/rosusc"
)

//ReadModelRules reads the tab-separated dump of a metabolic model and returns the
//distinct non-empty values of the given rule column, in first-seen order.
func ReadModelRules(r io.Reader, column string) ([]string, error) {
	rows, err := rosusc.ReadColumns(r, column)
	if err != nil {
		return nil, fmt.Errorf("reading model rules: %w", err)
	}
	seen := make(map[string]bool)
	var ret []string
	for _, row := range rows {
		rule := strings.TrimSpace(row[0])
		if rule == "" || seen[rule] {
			continue
		}
		seen[rule] = true
		ret = append(ret, rule)
	}
	return ret, nil
}
