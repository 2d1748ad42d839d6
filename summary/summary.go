/*
 * summary.go, part of rosusc.
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

//Package summary collects the per-protein results of the pipeline in one table.
package summary

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/cofactor"
	"github.com/pputida/rosusc/disulfide"
	"github.com/pputida/rosusc/idmap"
	"github.com/pputida/rosusc/susceptibility"
	"github.com/pputida/rosusc/uniprot"
)

//Header is the first line of the summary table.
var Header = []string{
	"KEGG ID", "UniProt ID", "Gene", "Protein",
	"# SR in AS", "Mean SR - AS minimum distance", "cys in AS",
	"# SR in BS", "Mean SR - BS minimum distance", "cys in BS",
	"# Disulfide bonds", "Mean S-S - AS/BS minimum distance", "Cofactor",
}

//Row is the summary of one protein.
type Row struct {
	KEGG     string
	UniProt  string
	Gene     string
	Protein  string
	SRinAS   int
	ASDist   float64
	CysInAS  int
	SRinBS   int
	BSDist   float64
	CysInBS  int
	Bonds    int
	BondDist float64
	Cofactor string
}

//Values returns the row in Header order.
func (R Row) Values() []interface{} {
	return []interface{}{
		R.KEGG, R.UniProt, R.Gene, R.Protein,
		R.SRinAS, R.ASDist, R.CysInAS,
		R.SRinBS, R.BSDist, R.CysInBS,
		R.Bonds, R.BondDist, R.Cofactor,
	}
}

//Round2 rounds x to two decimals. The exact binary value of x is rounded, with
//ties going to the even digit, so 0.125 gives 0.12 and 2.675 (really 2.67499...)
//gives 2.67.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return r
}

//Options for Build.
type Options struct {
	Root      string
	IDs       idmap.Map                      //KEGG to UniProt; the entry accession is used if missing
	Cofactors map[string][]cofactor.Cofactor //from the monomer cofactor file, can be nil
	Verbose   bool
}

//Build returns one row per monomer folder under Root, in name order. Folders lacking
//the UniProt entry, the susceptibility scores or the structure are logged and
//left out. The disulfide bond list is optional.
func Build(opts Options) ([]Row, error) {
	subs, err := rosusc.Subdirs(opts.Root)
	if err != nil {
		return nil, err
	}
	L := rosusc.Layout{Root: opts.Root}
	var rows []Row
	for _, prot := range subs {
		if opts.Verbose {
			log.Printf("Processing protein %s ...", prot)
		}
		entry, err := uniprot.ReadFile(L.UniProt(prot, prot))
		if err != nil {
			log.Printf("Error reading UniProt entry: %v", err)
			continue
		}
		scores, err := susceptibility.ReadFile(L.Scores(prot, prot))
		if err != nil {
			log.Printf("Error reading susceptibility scores: %v", err)
			continue
		}
		S, err := rosusc.PDBFileRead(L.Structure(prot))
		if err != nil {
			log.Printf("Error reading structure: %v", err)
			continue
		}
		var bonds []disulfide.Bond
		if rosusc.Exists(L.Disulfide(prot)) {
			bonds, err = disulfide.ReadBondList(L.Disulfide(prot))
			if err != nil {
				log.Printf("Error reading disulfide bonds, ignored: %v", err)
				bonds = nil
			}
		}
		acc := opts.IDs.Get(prot)
		if acc == "" {
			acc = entry.PrimaryAccession
		}
		var cofs []string
		for _, c := range opts.Cofactors[prot] {
			cofs = append(cofs, fmt.Sprintf("%s (%s)", c.Name, c.Formula))
		}
		t := scores.Totals
		rows = append(rows, Row{
			KEGG:     prot,
			UniProt:  acc,
			Gene:     entry.GeneName(),
			Protein:  entry.ProteinName(),
			SRinAS:   t.S1,
			ASDist:   Round2(t.S2),
			CysInAS:  t.S3,
			SRinBS:   t.S4,
			BSDist:   Round2(t.S5),
			CysInBS:  t.S6,
			Bonds:    len(bonds),
			BondDist: Round2(bondSiteDistance(S, bonds, scores.Sites, opts.Verbose)),
			Cofactor: strings.Join(cofs, " AND "),
		})
	}
	return rows, nil
}

//sgCA returns the mean of the distances from the SG atoms of c1 and c2 to the CA of r,
//or an error naming what is missing.
func sgCA(S *rosusc.Structure, c1, c2, r *rosusc.Residue) (float64, error) {
	if c1 == nil || c2 == nil || r == nil {
		return 0, rosusc.NewError(rosusc.ErrMissingResidue, "", "sgCA", false)
	}
	sg1, sg2, ca := c1.Atom("SG"), c2.Atom("SG"), r.Atom("CA")
	if sg1 == nil || sg2 == nil || ca == nil {
		return 0, rosusc.NewError(rosusc.ErrMissingAtom, "", "sgCA", false)
	}
	return (S.AtomDistance(sg1, ca) + S.AtomDistance(sg2, ca)) / 2, nil
}

//BondSiteDistance returns the mean, over the bonds, of the minimum over the sites of
//the mean distance between the sulfur atoms of the bond and the CAs of the site.
//It is 0 if there are no bonds or no sites.
func BondSiteDistance(S *rosusc.Structure, bonds []disulfide.Bond, sites []susceptibility.Site) float64 {
	return bondSiteDistance(S, bonds, sites, false)
}

func bondSiteDistance(S *rosusc.Structure, bonds []disulfide.Bond, sites []susceptibility.Site, verbose bool) float64 {
	var mins []float64
	for _, b := range bonds {
		c1, c2 := S.ResidueAny(b.Cys1), S.ResidueAny(b.Cys2)
		var persite []float64
		for _, s := range sites {
			var d []float64
			for pos := s.Start; pos <= s.End; pos++ {
				v, err := sgCA(S, c1, c2, S.ResidueAny(pos))
				if err != nil {
					if verbose {
						log.Printf("Bond %s and residue %d left out: %v", b.Key(), pos, err)
					}
					continue
				}
				d = append(d, v)
			}
			if len(d) > 0 {
				persite = append(persite, stat.Mean(d, nil))
			}
		}
		if len(persite) > 0 {
			mins = append(mins, floats.Min(persite))
		}
	}
	if len(mins) == 0 {
		return 0
	}
	return stat.Mean(mins, nil)
}
