/*
 * idmap.go, part of rosusc.
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

//Package idmap keeps the correspondence between KEGG locus tags and UniProt
//accessions, cached on disk as a flat JSON object.
package idmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//Map relates KEGG identifiers (keys) to UniProt accessions (values).
type Map map[string]string

//Load reads the map in name. A file that doesn't exist gives an empty map.
func Load(name string) (Map, error) {
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return make(Map), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading ID map: %w", err)
	}
	m := make(Map)
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding ID map %s: %w", name, err)
	}
	return m, nil
}

//Get returns the UniProt accession for the KEGG id, or an empty string.
func (m Map) Get(kegg string) string { return m[kegg] }

//Has returns true if kegg has an accession.
func (m Map) Has(kegg string) bool {
	_, ok := m[kegg]
	return ok
}

//Set records the accession for kegg.
func (m Map) Set(kegg, uniprot string) { m[kegg] = uniprot }

//Reverse returns the UniProt to KEGG map. When several KEGG ids share an accession
//the lexicographically smallest wins.
func (m Map) Reverse() Map {
	r := make(Map, len(m))
	for k, v := range m {
		if old, ok := r[v]; !ok || k < old {
			r[v] = k
		}
	}
	return r
}

//Save writes the map to name as indented JSON. Keys come out sorted.
func (m Map) Save(name string) error {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("saving ID map: %w", err)
	}
	return nil
}
