/*
 * pdbtest.go, part of rosusc.
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

//Package pdbtest builds small synthetic PDB files for the tests of the pipeline stages.
package pdbtest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//Builder accumulates ATOM records.
type Builder struct {
	header []string
	lines  []string
	serial int
}

//New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

//Title adds a TITLE record.
func (B *Builder) Title(t string) *Builder {
	B.header = append(B.header, fmt.Sprintf("TITLE     %s", t))
	return B
}

//Expdta adds an EXPDTA record.
func (B *Builder) Expdta(t string) *Builder {
	B.header = append(B.header, fmt.Sprintf("EXPDTA    %s", t))
	return B
}

//Atom adds one ATOM record.
func (B *Builder) Atom(name, resname, chain string, resnum int, x, y, z, bfac float64) *Builder {
	B.serial++
	aname := name
	if len(aname) < 4 {
		aname = " " + aname
	}
	B.lines = append(B.lines, fmt.Sprintf("ATOM  %5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s",
		B.serial, aname, resname, chain, resnum, x, y, z, 1.0, bfac, name[:1]))
	return B
}

//Residue adds a residue with N, CA and C atoms around (x,y,z). Cysteines also get CB and SG.
func (B *Builder) Residue(resname, chain string, resnum int, x, y, z, bfac float64) *Builder {
	B.Atom("N", resname, chain, resnum, x-1, y, z, bfac)
	B.Atom("CA", resname, chain, resnum, x, y, z, bfac)
	B.Atom("C", resname, chain, resnum, x+1, y, z, bfac)
	if resname == "CYS" {
		B.Atom("CB", resname, chain, resnum, x, y+1, z, bfac)
		B.Atom("SG", resname, chain, resnum, x, y+2, z, bfac)
	}
	return B
}

//Line adds residues for seq (one-letter codes) in chain, numbered from 1, spaced
//step angstroms along x, starting at x0.
func (B *Builder) Line(chain, seq string, x0, step, bfac float64) *Builder {
	for i, c := range seq {
		B.Residue(Three(byte(c)), chain, i+1, x0+float64(i)*step, 0, 0, bfac)
	}
	return B
}

func (B *Builder) String() string {
	all := append(append([]string{}, B.header...), B.lines...)
	return strings.Join(all, "\n") + "\nTER\nEND\n"
}

//Write writes the file to path, creating the parent directory.
func (B *Builder) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(B.String()), 0o644)
}

var one2three = map[byte]string{
	'A': "ALA", 'R': "ARG", 'N': "ASN", 'D': "ASP", 'C': "CYS", 'Q': "GLN", 'E': "GLU",
	'G': "GLY", 'H': "HIS", 'I': "ILE", 'L': "LEU", 'K': "LYS", 'M': "MET", 'F': "PHE",
	'P': "PRO", 'S': "SER", 'T': "THR", 'W': "TRP", 'Y': "TYR", 'V': "VAL",
}

//Three returns the three-letter name for the one-letter code c, "UNK" if unknown.
func Three(c byte) string {
	if r, ok := one2three[c]; ok {
		return r
	}
	return "UNK"
}
