/*
 * tsv.go, part of rosusc.
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

package rosusc

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

//ReadColumns reads a tab-separated table with a header line and returns, for each
//row, the values of the requested columns in the order given. Rows shorter than the
//header get empty values for the missing columns.
func ReadColumns(r io.Reader, columns ...string) ([][]string, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.LazyQuotes = true
	tsv.FieldsPerRecord = -1
	tsv.ReuseRecord = true
	header, err := tsv.Read()
	if err != nil {
		return nil, NewError("reading table header: "+err.Error(), "", "ReadColumns", true)
	}
	idx := make([]int, len(columns))
	for i, c := range columns {
		idx[i] = -1
		for j, h := range header {
			if h == c {
				idx[i] = j
				break
			}
		}
		if idx[i] < 0 {
			return nil, NewError(fmt.Sprintf("column %q not in table header", c), "", "ReadColumns", true)
		}
	}
	var ret [][]string
	for line := 2; ; line++ {
		rec, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, NewError(fmt.Sprintf("%s %d: %v", ErrMalformedLine, line, err), "", "ReadColumns", true)
		}
		row := make([]string, len(idx))
		for i, j := range idx {
			if j < len(rec) {
				row[i] = rec[j]
			}
		}
		ret = append(ret, row)
	}
	return ret, nil
}
