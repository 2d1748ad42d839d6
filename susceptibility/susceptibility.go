/*
 * susceptibility.go, part of rosusc.
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

//Package susceptibility scores the functional sites of proteins by the residues
//prone to oxidation by reactive oxygen species (ROS) found in and around them.
package susceptibility

import (
	"log"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/uniprot"
)

//DefaultResidues are the one-letter codes of the residues considered susceptible.
const DefaultResidues = "CMYWHLRPT"

//Scorer computes site scores.
type Scorer struct {
	Residues string //susceptible residues, one-letter codes
	Verbose  bool   //report the residues and sites left out of the scores
}

func (sc *Scorer) susceptible(aa byte) bool {
	r := sc.Residues
	if r == "" {
		r = DefaultResidues
	}
	return strings.IndexByte(r, aa) >= 0
}

//sub returns s[start-1:end] with the bounds clamped to s.
func sub(s string, start, end int) string {
	from := start - 1
	if from < 0 {
		from = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if from >= end {
		return ""
	}
	return s[from:end]
}

//Score computes the scores of the given sites of entry, on the chain of S.
//Sites whose sequence in the structure differs from the UniProt one are skipped.
//Features with the same type and span (a binding site listed once per ligand) give
//one site, scored from the last of them, at the place of the first.
func (sc *Scorer) Score(S *rosusc.Structure, chain string, entry *uniprot.Entry, sites []uniprot.Feature) *Scores {
	seq := entry.Sequence.Value
	chseq := S.Sequence(chain)
	ret := new(Scores)
	index := make(map[string]int)
	for _, f := range sites {
		start, end := f.Location.Start.Value, f.Location.End.Value
		subseq := sub(seq, start, end)
		if subseq != sub(chseq, start, end) {
			log.Printf("Error: PDB and UniProt sequences of %s do not match!", f.Key())
			continue
		}
		site := Site{Type: f.Type, Start: start, End: end}
		var inside []int
		for i := 0; i < len(subseq); i++ {
			inside = append(inside, start+i)
			if sc.susceptible(subseq[i]) {
				site.Score1++
			}
			if subseq[i] == 'C' {
				site.Score3++
			}
		}
		var others []int
		for i := 0; i < len(seq); i++ {
			pos := i + 1
			if sc.susceptible(seq[i]) && (pos < start || pos > end) {
				others = append(others, pos)
			}
		}
		if len(others) == 0 {
			if sc.Verbose {
				log.Printf("No susceptible residues outside site %d-%d (chain %s)", start, end, chain)
			}
		} else {
			site.Score2 = sc.meanMinDistance(S, chain, inside, others)
		}
		if i, ok := index[site.Key()]; ok {
			ret.Sites[i] = site
			continue
		}
		index[site.Key()] = len(ret.Sites)
		ret.Sites = append(ret.Sites, site)
	}
	ret.Totals = totals(ret.Sites)
	return ret
}

//meanMinDistance returns the mean, over the residues in site, of the CA distance to
//the closest residue in others. Residues missing from the structure, or
//lacking a CA, are left out.
func (sc *Scorer) meanMinDistance(S *rosusc.Structure, chain string, site, others []int) float64 {
	ca := func(num int) *rosusc.Atom {
		r := S.Residue(chain, num)
		if r == nil {
			if sc.Verbose {
				log.Printf("Residue %d of chain %s left out: %s", num, chain, rosusc.ErrMissingResidue)
			}
			return nil
		}
		a := r.Atom("CA")
		if a == nil && sc.Verbose {
			log.Printf("Residue %d of chain %s left out: %s (CA)", num, chain, rosusc.ErrMissingAtom)
		}
		return a
	}
	var targets []*rosusc.Atom
	for _, q := range others {
		if b := ca(q); b != nil {
			targets = append(targets, b)
		}
	}
	var mins []float64
	row := make([]float64, 0, len(targets))
	for _, p := range site {
		a := ca(p)
		if a == nil {
			continue
		}
		row = row[:0]
		for _, b := range targets {
			row = append(row, S.AtomDistance(a, b))
		}
		if len(row) > 0 {
			mins = append(mins, floats.Min(row))
		}
	}
	if len(mins) == 0 {
		return 0
	}
	return stat.Mean(mins, nil)
}

func totals(sites []Site) Totals {
	var t Totals
	var as, other []float64
	for _, s := range sites {
		if s.Type == uniprot.ActiveSite {
			t.S1 += s.Score1
			t.S3 += s.Score3
			as = append(as, s.Score2)
		} else {
			t.S4 += s.Score1
			t.S6 += s.Score3
			other = append(other, s.Score2)
		}
	}
	if len(as) > 0 {
		t.S2 = stat.Mean(as, nil)
	}
	if len(other) > 0 {
		t.S5 = stat.Mean(other, nil)
	}
	return t
}
