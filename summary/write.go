/*
 * write.go, part of rosusc.
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

package summary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

func format(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	}
	return fmt.Sprint(v)
}

//WriteTSV writes the table, with header, as tab separated values.
func WriteTSV(w io.Writer, rows []Row) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	if err := tsv.Write(Header); err != nil {
		return err
	}
	rec := make([]string, len(Header))
	for _, r := range rows {
		for i, v := range r.Values() {
			rec[i] = format(v)
		}
		if err := tsv.Write(rec); err != nil {
			return err
		}
	}
	tsv.Flush()
	return tsv.Error()
}

//WriteTSVFile writes the table to the file name.
func WriteTSVFile(name string, rows []Row) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := WriteTSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

//SheetName is the name of the worksheet in the Excel summary.
const SheetName = "ROS summary"

//WriteXLSX writes the table to an Excel workbook.
func WriteXLSX(name string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		vals := r.Values()
		if err := f.SetSheetRow(SheetName, cell, &vals); err != nil {
			return err
		}
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}
	return f.SaveAs(name)
}
