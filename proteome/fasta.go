/*
 * fasta.go, part of rosusc.
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

package proteome

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

//Entry is a FASTA record.
type Entry struct {
	Header   string
	Sequence string
}

//Writer writes FASTA records. Sequences are wrapped at Columns, or not at all
//if Columns <= 0 (the default, as the prediction program doesn't care).
type Writer struct {
	Columns int
	buf     *bufio.Writer
}

//NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

//Write writes one record. Call Flush when done.
func (w *Writer) Write(e Entry) error {
	if _, err := fmt.Fprintf(w.buf, ">%s\n", e.Header); err != nil {
		return err
	}
	s := e.Sequence
	for w.Columns > 0 && len(s) > w.Columns {
		if _, err := w.buf.WriteString(s[:w.Columns] + "\n"); err != nil {
			return err
		}
		s = s[w.Columns:]
	}
	_, err := w.buf.WriteString(s + "\n")
	return err
}

//Flush writes the buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

//WriteFile writes entries to the file name.
func WriteFile(name string, entries ...Entry) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := NewWriter(f)
	for _, e := range entries {
		if err := w.Write(e); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
