/*
 * files.go, part of rosusc.
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
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//OpenFile opens name for reading. Files ending in .gz are decompressed with gzip
//and files ending in .zst or .zstd with zstandard; anything else is read as is.
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, NewError(ErrUnableToOpen+": "+err.Error(), name, "OpenFile", false)
	}
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, NewError(err.Error(), name, "OpenFile", false)
		}
		return &readCloser{gz, []func() error{gz.Close, f.Close}}, nil
	case strings.HasSuffix(lower, ".zst") || strings.HasSuffix(lower, ".zstd"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, NewError(err.Error(), name, "OpenFile", false)
		}
		return &readCloser{zr, []func() error{func() error { zr.Close(); return nil }, f.Close}}, nil
	}
	return f, nil
}

//Exists returns true if name exists, whether it is a file or a directory.
func Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
