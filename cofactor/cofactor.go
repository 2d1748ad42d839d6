/*
 * cofactor.go, part of rosusc.
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

//Package cofactor lists the cofactors of proteins that contain transition metals,
//using the UniProt cofactor annotations and the formulas of the ChEBI database.
package cofactor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/uniprot"
)

//Table maps ChEBI compound ids (the number, without the "CHEBI:" prefix) to formulas.
type Table map[string]string

//ReadTable reads a tab separated table with compound_id and formula columns. The
//file can be compressed. The first formula of each compound is kept.
func ReadTable(name string) (Table, error) {
	f, err := rosusc.OpenFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := rosusc.ReadColumns(f, "compound_id", "formula")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	T := make(Table, len(rows))
	for _, r := range rows {
		id := strings.TrimSpace(r[0])
		if _, ok := T[id]; !ok && id != "" {
			T[id] = strings.TrimSpace(r[1])
		}
	}
	return T, nil
}

var elementToken = regexp.MustCompile(`[A-Z][a-z]?`)

//Elements returns the element symbols present in a formula.
func Elements(formula string) []string {
	return elementToken.FindAllString(formula, -1)
}

//Cofactor is one entry of the cofactor files.
type Cofactor struct {
	Name    string `json:"Cofactor name"`
	ChEBI   string `json:"CheBI ID"`
	Formula string `json:"Formula"`
}

//Finder selects the cofactors with transition metals.
type Finder struct {
	Main   Table
	Aux    Table //used when a compound is not in Main, can be nil
	metals map[string]bool
	cache  map[string]string //cofactor name to formula, empty if no metal
}

//NewFinder returns a Finder looking for the given element symbols.
func NewFinder(main, aux Table, metals []string) *Finder {
	m := make(map[string]bool, len(metals))
	for _, e := range metals {
		m[e] = true
	}
	return &Finder{Main: main, Aux: aux, metals: m, cache: make(map[string]string)}
}

//formula returns the formula of the compound chebi ("CHEBI:nnn"), and whether it was found.
func (F *Finder) formula(chebi string) (string, bool) {
	id := strings.TrimPrefix(chebi, "CHEBI:")
	if f, ok := F.Main[id]; ok {
		return f, true
	}
	log.Printf("Error: ChEBI id %s not found in the chemical table, trying the auxiliary data", id)
	if f, ok := F.Aux[id]; ok {
		return f, true
	}
	return "", false
}

//HasMetal returns true if the formula contains one of the elements of F.
func (F *Finder) HasMetal(formula string) bool {
	for _, e := range Elements(formula) {
		if F.metals[e] {
			return true
		}
	}
	return false
}

//Find returns the cofactors of entry that contain a transition metal. Formulas are
//looked up once per cofactor name.
func (F *Finder) Find(entry *uniprot.Entry) []Cofactor {
	var ret []Cofactor
	for _, c := range entry.Cofactors() {
		formula, seen := F.cache[c.Name]
		if !seen {
			f, ok := F.formula(c.ChEBI)
			if !ok {
				log.Printf("Error: no formula for %s (%s)", c.Name, c.ChEBI)
			}
			if ok && F.HasMetal(f) {
				formula = f
			}
			F.cache[c.Name] = formula
		}
		if formula != "" {
			ret = append(ret, Cofactor{c.Name, c.ChEBI, formula})
		}
	}
	return ret
}

//Monomers returns, for each folder under root with a UniProt entry, the cofactors
//with transition metals. Proteins without such cofactors are left out.
func (F *Finder) Monomers(root string) (map[string][]Cofactor, error) {
	subs, err := rosusc.Subdirs(root)
	if err != nil {
		return nil, err
	}
	L := rosusc.Layout{Root: root}
	ret := make(map[string][]Cofactor)
	for _, prot := range subs {
		if c := F.protein(L.UniProt(prot, prot)); len(c) > 0 {
			ret[prot] = c
		}
	}
	return ret, nil
}

//Complexes returns, for each complex folder under root, the cofactors of each member.
//Every complex is present, even with no cofactors.
func (F *Finder) Complexes(root string) (map[string]map[string][]Cofactor, error) {
	subs, err := rosusc.Subdirs(root)
	if err != nil {
		return nil, err
	}
	L := rosusc.Layout{Root: root}
	ret := make(map[string]map[string][]Cofactor)
	for _, cplx := range subs {
		m := make(map[string][]Cofactor)
		for _, prot := range rosusc.Members(cplx) {
			if c := F.protein(L.UniProt(cplx, prot)); len(c) > 0 {
				m[prot] = c
			}
		}
		ret[cplx] = m
	}
	return ret, nil
}

func (F *Finder) protein(upath string) []Cofactor {
	entry, err := uniprot.ReadFile(upath)
	if err != nil {
		log.Printf("Error: %v", err)
		return nil
	}
	return F.Find(entry)
}

//WriteJSON writes v to name as indented JSON.
func WriteJSON(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err := json.Indent(&b, data, "", "    "); err != nil {
		return err
	}
	b.WriteByte('\n')
	return os.WriteFile(name, b.Bytes(), 0o644)
}

//ReadMonomers reads a monomer cofactor file.
func ReadMonomers(name string) (map[string][]Cofactor, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	ret := make(map[string][]Cofactor)
	if err := json.Unmarshal(data, &ret); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ret, nil
}
