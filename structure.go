/*
 * structure.go, part of rosusc.
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
	"strings"

	v3 "github.com/pputida/rosusc/v3"
)

//Atom contains the information read for one atom except for the coordinates,
//which are kept in the coordinate matrix of the Structure.
type Atom struct {
	Name      string
	ID        int
	Molname   string //residue name
	Molname1  byte   //the one letter name for residues
	Molid     int    //residue number
	ICode     byte   //insertion code, ' ' if none
	Chain     string
	Occupancy float64
	Bfactor   float64
	Symbol    string
	Het       bool // is hetatm in the pdb file?
	index     int  //row of the atom in the coordinate matrix
}

//Residue groups the atoms sharing chain, residue number and insertion code.
type Residue struct {
	Chain  string
	Number int
	ICode  byte
	Name   string
	Name1  byte
	Atoms  []*Atom
}

//Atom returns the atom of the residue with the given name, or nil.
func (R *Residue) Atom(name string) *Atom {
	for _, a := range R.Atoms {
		if a.Name == name {
			return a
		}
	}
	return nil
}

//Chain is an ordered list of residues.
type Chain struct {
	ID       string
	Residues []*Residue
}

//Sequence returns the one-letter sequence of the chain, in file order.
//Residues without a one-letter code are written as X.
func (C *Chain) Sequence() string {
	var b strings.Builder
	for _, r := range C.Residues {
		if r.Name1 == 0 {
			b.WriteByte('X')
			continue
		}
		b.WriteByte(r.Name1)
	}
	return b.String()
}

//ModelSource is the provenance of a structure.
type ModelSource int

const (
	AlphaFold ModelSource = iota
	SwissModel
	Experimental
)

func (M ModelSource) String() string {
	switch M {
	case SwissModel:
		return "SWISS-MODEL"
	case Experimental:
		return "experimental"
	default:
		return "AlphaFold"
	}
}

type resKey struct {
	num   int
	icode byte
}

//Structure is a protein structure: atoms, coordinates (first model only), chains and
//the header fields needed to know where the structure comes from.
type Structure struct {
	Header  string //HEADER classification
	Title   string //TITLE, concatenated
	ExpData string //EXPDTA
	Atoms   []*Atom
	Coords  *v3.Matrix
	Chains  []*Chain
	index   map[string]map[resKey]*Residue
}

//Coord returns a view of the coordinates of the atom a.
func (S *Structure) Coord(a *Atom) *v3.Matrix {
	return S.Coords.VecView(a.index)
}

//Chain returns the chain with the given ID, or nil.
func (S *Structure) Chain(id string) *Chain {
	for _, c := range S.Chains {
		if c.ID == id {
			return c
		}
	}
	return nil
}

//ChainIDs returns the chain identifiers in file order.
func (S *Structure) ChainIDs() []string {
	ret := make([]string, 0, len(S.Chains))
	for _, c := range S.Chains {
		ret = append(ret, c.ID)
	}
	return ret
}

//Sequence returns the one-letter sequence of the given chain, or an empty
//string if there is no such chain.
func (S *Structure) Sequence(chain string) string {
	c := S.Chain(chain)
	if c == nil {
		return ""
	}
	return c.Sequence()
}

//Residue returns the residue of the given chain with number num and no insertion
//code, or nil.
func (S *Structure) Residue(chain string, num int) *Residue {
	c, ok := S.index[chain]
	if !ok {
		return nil
	}
	return c[resKey{num, ' '}]
}

//ResidueAny returns the first residue, in chain order, with the number num.
func (S *Structure) ResidueAny(num int) *Residue {
	for _, c := range S.Chains {
		if r := S.Residue(c.ID, num); r != nil {
			return r
		}
	}
	return nil
}

//Residues returns all the residues of the structure with the given residue name,
//in file order.
func (S *Structure) Residues(name string) []*Residue {
	var ret []*Residue
	for _, c := range S.Chains {
		for _, r := range c.Residues {
			if r.Name == name {
				ret = append(ret, r)
			}
		}
	}
	return ret
}

//Source guesses the provenance of the structure from its header records.
//SWISS-MODEL writes its name in the TITLE, experimental structures carry an
//EXPDTA record, and AlphaFold models have neither (or a theoretical EXPDTA).
func (S *Structure) Source() ModelSource {
	title := strings.ToUpper(S.Title + " " + S.Header)
	if strings.Contains(title, "SWISS-MODEL") {
		return SwissModel
	}
	exp := strings.ToUpper(S.ExpData)
	if exp != "" && !strings.Contains(exp, "THEORETICAL") && !strings.Contains(exp, "PREDICTED") && !strings.Contains(title, "ALPHAFOLD") {
		return Experimental
	}
	return AlphaFold
}

//buildResidues groups the atoms in residues and chains. Atoms must already be
//in file order.
func (S *Structure) buildResidues() {
	S.index = make(map[string]map[resKey]*Residue)
	S.Chains = nil
	for _, a := range S.Atoms {
		c := S.Chain(a.Chain)
		if c == nil {
			c = &Chain{ID: a.Chain}
			S.Chains = append(S.Chains, c)
			S.index[a.Chain] = make(map[resKey]*Residue)
		}
		k := resKey{a.Molid, a.ICode}
		r, ok := S.index[a.Chain][k]
		if !ok {
			r = &Residue{Chain: a.Chain, Number: a.Molid, ICode: a.ICode, Name: a.Molname, Name1: a.Molname1}
			S.index[a.Chain][k] = r
			c.Residues = append(c.Residues, r)
		}
		r.Atoms = append(r.Atoms, a)
	}
}
