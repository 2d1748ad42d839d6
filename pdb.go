/*
 * pdb.go, part of rosusc.
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	v3 "github.com/pputida/rosusc/v3"
)

//A map between 3-letters name for aminoacidic residues to the corresponding 1-letter names.
var three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"PYL": 'O',
	"CYS": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"PHE": 'F',
	"TYR": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"HIS": 'H',
	"HID": 'H',
	"HIE": 'H',
	"HIP": 'H',
	"LYS": 'K',
	"ASP": 'D',
	"GLU": 'E',
	"MSE": 'M', //Selenomethionine
}

//OneLetter returns the one letter code for the residue name, or 0 if unknown.
func OneLetter(resname string) byte {
	return three2OneLetter[strings.ToUpper(strings.TrimSpace(resname))]
}

//This tries to guess a chemical element symbol from a PDB atom name.
//It only deals with the common bio-elements.
func symbolFromName(name string) string {
	if name == "" {
		return ""
	}
	switch {
	case len(name) == 4 || name[0] == 'H':
		return "H"
	case name == "CU":
		return "Cu"
	case name == "CL":
		return "Cl"
	case name == "NA":
		return "Na"
	case name == "SE":
		return "Se"
	case strings.HasPrefix(name, "ZN"):
		return "Zn"
	case strings.HasPrefix(name, "FE"):
		return "Fe"
	case strings.HasPrefix(name, "MG"):
		return "Mg"
	}
	switch name[0] {
	case 'C', 'N', 'O', 'P', 'S':
		return name[0:1]
	}
	return ""
}

//field returns the trimmed columns [from,to) of line, tolerating short lines.
func field(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return strings.TrimSpace(line[from:to])
}

//Parses a valid ATOM or HETATM line of a PDB file, returns an Atom
//object with the info except for the coordinates, which are returned
//separately as an array of 3 float64.
func readPDBLine(line string) (*Atom, [3]float64, error) {
	var coords [3]float64
	var err error
	if len(line) < 54 {
		return nil, coords, fmt.Errorf("line too short (%d characters)", len(line))
	}
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	//Large files can overflow the serial column. We don't need it, so no error checking.
	atom.ID, _ = strconv.Atoi(field(line, 6, 11))
	atom.Name = field(line, 12, 16)
	atom.Molname = field(line, 17, 20)
	atom.Molname1 = three2OneLetter[atom.Molname]
	atom.Chain = field(line, 21, 22)
	atom.Molid, err = strconv.Atoi(field(line, 22, 26))
	if err != nil {
		return nil, coords, fmt.Errorf("residue number: %w", err)
	}
	atom.ICode = ' '
	if ic := field(line, 26, 27); ic != "" {
		atom.ICode = ic[0]
	}
	for i := 0; i < 3; i++ {
		coords[i], err = strconv.ParseFloat(field(line, 30+8*i, 38+8*i), 64)
		if err != nil {
			return nil, coords, fmt.Errorf("coordinate %d: %w", i, err)
		}
	}
	//occupancy and b-factor are optional, some programs don't write them.
	if o := field(line, 54, 60); o != "" {
		atom.Occupancy, _ = strconv.ParseFloat(o, 64)
	}
	if b := field(line, 60, 66); b != "" {
		atom.Bfactor, err = strconv.ParseFloat(b, 64)
		if err != nil {
			return nil, coords, fmt.Errorf("b-factor: %w", err)
		}
	}
	atom.Symbol = field(line, 76, 78)
	if len(atom.Symbol) == 2 {
		atom.Symbol = atom.Symbol[:1] + strings.ToLower(atom.Symbol[1:])
	}
	if atom.Symbol == "" {
		atom.Symbol = symbolFromName(atom.Name)
	}
	return atom, coords, nil
}

//PDBRead reads a PDB stream and returns the structure it contains. Only the first
//model is read. Alternate locations other than the first are discarded.
func PDBRead(r io.Reader) (*Structure, error) {
	S := new(Structure)
	coords := make([]float64, 0, 3000)
	var title []string
	pdb := bufio.NewScanner(r)
	pdb.Buffer(make([]byte, 0, 1024), 1024*1024)
	contlines := 0
	for pdb.Scan() {
		line := pdb.Text()
		contlines++
		if strings.HasPrefix(line, "ENDMDL") {
			break
		}
		switch {
		case strings.HasPrefix(line, "HEADER"):
			S.Header = field(line, 10, 50)
		case strings.HasPrefix(line, "TITLE"):
			title = append(title, field(line, 10, 80))
		case strings.HasPrefix(line, "EXPDTA"):
			S.ExpData = field(line, 10, 80)
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			if alt := field(line, 16, 17); alt != "" && alt != "A" && alt != "1" {
				continue
			}
			atom, c, err := readPDBLine(line)
			if err != nil {
				return nil, NewError(fmt.Sprintf("%s at line %d: %v", ErrMalformedLine, contlines, err), "", "PDBRead", false)
			}
			atom.index = len(S.Atoms)
			S.Atoms = append(S.Atoms, atom)
			coords = append(coords, c[:]...)
		}
	}
	if err := pdb.Err(); err != nil {
		return nil, NewError(err.Error(), "", "PDBRead", false)
	}
	if len(S.Atoms) == 0 {
		return nil, NewError(ErrNoAtoms, "", "PDBRead", false)
	}
	S.Title = strings.Join(title, " ")
	var err error
	S.Coords, err = v3.NewMatrix(coords)
	if err != nil {
		return nil, NewError(err.Error(), "", "PDBRead", false)
	}
	S.buildResidues()
	return S, nil
}

//PDBFileRead reads the PDB file pdbname, which can be gzip- or zstd-compressed
//(recognized by the .gz and .zst extensions).
func PDBFileRead(pdbname string) (*Structure, error) {
	f, err := OpenFile(pdbname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	S, err := PDBRead(f)
	if err != nil {
		var e Error
		if errors.As(err, &e) {
			e.filename = pdbname
			return nil, errDecorate(e, "PDBFileRead")
		}
		return nil, err
	}
	return S, nil
}
