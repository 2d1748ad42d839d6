/*
 * run.go, part of rosusc.
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

package susceptibility

import (
	"fmt"
	"log"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/uniprot"
)

//Report counts the proteins with sites among the folders processed.
type Report struct {
	Files     int
	WithSites int
	Written   int
}

func (R *Report) String() string {
	pct := 0.0
	if R.Files > 0 {
		pct = 100 * float64(R.WithSites) / float64(R.Files)
	}
	return fmt.Sprintf("%d susceptible sites found in %d files (%.2f%%)", R.WithSites, R.Files, pct)
}

//MonomerChain is the chain scored in monomer predictions.
const MonomerChain = "A"

//Run scores every prediction folder under root and writes
//{name}_Susceptibility_Scores.json in each. Folders without structure or UniProt
//entry are logged and skipped.
func (sc *Scorer) Run(root string, kind rosusc.Kind) (*Report, error) {
	subs, err := rosusc.Subdirs(root)
	if err != nil {
		return nil, err
	}
	R := new(Report)
	L := rosusc.Layout{Root: root}
	for _, name := range subs {
		R.Files++
		if !rosusc.Exists(L.Structure(name)) {
			log.Printf("No %s.pdb file found in folder %s", name, name)
			continue
		}
		var err error
		if kind == rosusc.Multimer {
			err = sc.runComplex(L, name, R)
		} else {
			err = sc.runMonomer(L, name, R)
		}
		if err != nil {
			log.Printf("Error processing %s: %v", name, err)
		}
	}
	return R, nil
}

func (sc *Scorer) runMonomer(L rosusc.Layout, name string, R *Report) error {
	upath := L.UniProt(name, name)
	if !rosusc.Exists(upath) {
		log.Printf("No %s file found, retrieve the UniProt entries first", upath)
		return nil
	}
	entry, err := uniprot.ReadFile(upath)
	if err != nil {
		return err
	}
	out := L.Scores(name, name)
	sites := entry.Sites()
	if len(sites) == 0 {
		if sc.Verbose {
			log.Printf("No Sites found for protein %s", name)
		}
		return writeJSON(out, &Scores{})
	}
	R.WithSites++
	S, err := rosusc.PDBFileRead(L.Structure(name))
	if err != nil {
		return err
	}
	if err := writeJSON(out, sc.Score(S, MonomerChain, entry, sites)); err != nil {
		return err
	}
	R.Written++
	return nil
}

//runComplex pairs the members of the complex with the chains of the structure, in
//order. A member without UniProt entry stops the pairing.
func (sc *Scorer) runComplex(L rosusc.Layout, name string, R *Report) error {
	S, err := rosusc.PDBFileRead(L.Structure(name))
	if err != nil {
		return err
	}
	chains := S.ChainIDs()
	members := rosusc.Members(name)
	results := make(map[string]*Scores)
	withSites := false
	for i, prot := range members {
		if i >= len(chains) {
			break
		}
		upath := L.UniProt(name, prot)
		if !rosusc.Exists(upath) {
			log.Printf("No %s file found in folder %s, retrieve the UniProt entries first", upath, name)
			break
		}
		entry, err := uniprot.ReadFile(upath)
		if err != nil {
			return err
		}
		sites := entry.Sites()
		if len(sites) == 0 {
			if sc.Verbose {
				log.Printf("No sites found for protein %s", prot)
			}
			continue
		}
		withSites = true
		results[prot] = sc.Score(S, chains[i], entry, sites)
	}
	if withSites {
		R.WithSites++
	}
	if len(results) == 0 {
		log.Printf("No results for complex %s", name)
		return nil
	}
	if err := writeJSON(L.Scores(name, name), results); err != nil {
		return err
	}
	R.Written++
	return nil
}
