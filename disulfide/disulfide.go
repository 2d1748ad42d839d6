/*
 * disulfide.go, part of rosusc.
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

//Package disulfide finds the disulfide bonds of protein structures, combining those
//annotated in UniProt with those detected from the geometry of cysteine pairs.
package disulfide

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/config"
	"github.com/pputida/rosusc/uniprot"
)

//Bond is a disulfide bond between the cysteines with the given residue numbers.
type Bond struct {
	Cys1, Cys2 int
	Dist       float64 //SG-SG distance, 0 for bonds not detected in the structure
	Dihedral   float64 //CB-SG-SG-CB dihedral in degrees
}

//Key returns the "a_b" form used in bond lists.
func (B Bond) Key() string {
	return strconv.Itoa(B.Cys1) + "_" + strconv.Itoa(B.Cys2)
}

//Finder detects disulfide bonds.
type Finder struct {
	config.Disulfide
	Verbose bool //report the folders skipped
}

//NewFinder returns a Finder with the given criteria.
func NewFinder(c config.Disulfide) *Finder {
	return &Finder{Disulfide: c}
}

//passes returns true if the quality score of the cysteine, read from the b-factor
//column of its C atom, is good enough for the kind of model.
func (F *Finder) passes(src rosusc.ModelSource, bfac float64) bool {
	switch src {
	case rosusc.SwissModel:
		return bfac > F.MinQMEAN
	case rosusc.Experimental:
		return bfac < F.MaxBfactor
	}
	return bfac > F.MinPLDDT
}

//Detect returns the cysteine pairs of S with SG atoms within the distance range
//and a CB-SG-SG-CB dihedral (in absolute value) within the angle range.
func (F *Finder) Detect(S *rosusc.Structure) []Bond {
	src := S.Source()
	var cys []*rosusc.Residue
	for _, r := range S.Residues("CYS") {
		c := r.Atom("C")
		if c == nil || r.Atom("SG") == nil || r.Atom("CB") == nil {
			continue
		}
		if F.passes(src, c.Bfactor) {
			cys = append(cys, r)
		}
	}
	var ret []Bond
	for i, c1 := range cys {
		for _, c2 := range cys[i+1:] {
			sg1, sg2 := S.Coord(c1.Atom("SG")), S.Coord(c2.Atom("SG"))
			d := rosusc.Distance(sg1, sg2)
			if d < F.MinDist || d > F.MaxDist {
				continue
			}
			dih := rosusc.Dihedral(S.Coord(c1.Atom("CB")), sg1, sg2, S.Coord(c2.Atom("CB"))) * rosusc.Rad2Deg
			if math.Abs(dih) < F.MinDihedral || math.Abs(dih) > F.MaxDihedral {
				continue
			}
			ret = append(ret, Bond{Cys1: c1.Number, Cys2: c2.Number, Dist: d, Dihedral: dih})
		}
	}
	return ret
}

//Merge returns the annotated bond keys followed by the detected ones not already
//annotated.
func Merge(annotated []string, detected []Bond) []string {
	seen := make(map[string]bool)
	var ret []string
	for _, k := range annotated {
		if !seen[k] {
			seen[k] = true
			ret = append(ret, k)
		}
	}
	for _, b := range detected {
		if k := b.Key(); !seen[k] {
			seen[k] = true
			ret = append(ret, k)
		}
	}
	return ret
}

//FormatBondList renders keys as a list literal, ['a_b', 'c_d'].
func FormatBondList(keys []string) string {
	q := make([]string, len(keys))
	for i, k := range keys {
		q[i] = "'" + k + "'"
	}
	return "[" + strings.Join(q, ", ") + "]"
}

//ParseBondList reads the format written by FormatBondList.
func ParseBondList(s string) ([]Bond, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("malformed bond list %q", s)
	}
	s = strings.TrimSpace(s[1 : len(s)-1])
	if s == "" {
		return nil, nil
	}
	var ret []Bond
	for _, f := range strings.Split(s, ",") {
		f = strings.Trim(strings.TrimSpace(f), `'"`)
		a, b, ok := strings.Cut(f, "_")
		if !ok {
			return nil, fmt.Errorf("malformed bond %q", f)
		}
		c1, err1 := strconv.Atoi(a)
		c2, err2 := strconv.Atoi(b)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("malformed bond %q", f)
		}
		ret = append(ret, Bond{Cys1: c1, Cys2: c2})
	}
	return ret, nil
}

//ReadBondList reads a bond list file.
func ReadBondList(name string) ([]Bond, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	b, err := ParseBondList(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

//Report counts the proteins with disulfide bonds.
type Report struct {
	Folders  int
	WithBond int
	Written  int
}

func (R *Report) String() string {
	return fmt.Sprintf("%d proteins with disulfide bonds were found (%d folders, %d new files)", R.WithBond, R.Folders, R.Written)
}

//Run processes every folder under root, writing {name}_Disulfide_Bonds.txt for the
//proteins with at least one bond. Folders with results already are counted
//but not processed again.
func (F *Finder) Run(root string) (*Report, error) {
	subs, err := rosusc.Subdirs(root)
	if err != nil {
		return nil, err
	}
	L := rosusc.Layout{Root: root}
	R := &Report{Folders: len(subs)}
	for _, name := range subs {
		if !rosusc.Exists(L.Structure(name)) {
			log.Printf("Error: no %s.pdb file found for %s", name, name)
			continue
		}
		out := L.Disulfide(name)
		if rosusc.Exists(out) {
			if F.Verbose {
				log.Printf("Skipping folder %s: results already available", name)
			}
			R.WithBond++
			continue
		}
		upath := L.UniProt(name, name)
		if !rosusc.Exists(upath) {
			log.Printf("Error: no UniProt entry found in folder %s, retrieve the entries first", name)
			continue
		}
		entry, err := uniprot.ReadFile(upath)
		if err != nil {
			log.Printf("Error: %v", err)
			continue
		}
		S, err := rosusc.PDBFileRead(L.Structure(name))
		if err != nil {
			log.Printf("Error: %v", err)
			continue
		}
		bonds := Merge(entry.DisulfideBonds(), F.Detect(S))
		if len(bonds) == 0 {
			continue
		}
		R.WithBond++
		if err := os.WriteFile(out, []byte(FormatBondList(bonds)), 0o644); err != nil {
			return R, err
		}
		R.Written++
	}
	return R, nil
}
