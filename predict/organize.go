/*
 * organize.go, part of rosusc.
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

package predict

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/idmap"
)

//RenameRanked renames {sub}/ranked_0.pdb to {sub}/{sub}.pdb for every folder under
//root. Existing targets are left alone. It returns the number of renamed files.
func RenameRanked(root string) (int, error) {
	subs, err := rosusc.Subdirs(root)
	if err != nil {
		return 0, err
	}
	L := rosusc.Layout{Root: root}
	n := 0
	for _, s := range subs {
		if !rosusc.Exists(L.Ranked(s)) {
			log.Printf("No %s file found in folder %s", rosusc.RankedModel, s)
			continue
		}
		if rosusc.Exists(L.Structure(s)) {
			log.Printf("File %s.pdb already exists in %s, skipping...", s, s)
			continue
		}
		if err := os.Rename(L.Ranked(s), L.Structure(s)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

//pdbFiles returns the names (without extension) of the PDB files directly in dir.
func pdbFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, rosusc.NewError(rosusc.ErrNotADirectory, dir, "pdbFiles", true)
	}
	var ret []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".pdb") {
			ret = append(ret, strings.TrimSuffix(e.Name(), ".pdb"))
		}
	}
	return ret, nil
}

//Subfolders moves every X.pdb in dir to dir/X/X.pdb.
func Subfolders(dir string) (int, error) {
	names, err := pdbFiles(dir)
	if err != nil {
		return 0, err
	}
	L := rosusc.Layout{Root: dir}
	n := 0
	for _, name := range names {
		if rosusc.Exists(L.Structure(name)) {
			log.Printf("%s already exists, skipping", L.Structure(name))
			continue
		}
		if err := os.MkdirAll(L.Dir(name), 0o755); err != nil {
			return n, err
		}
		if err := os.Rename(filepath.Join(dir, name+".pdb"), L.Structure(name)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

//RenameByUniProt renames the {UniProt}.pdb files in dir to {KEGG}.pdb, using ids
//(a KEGG to UniProt map). Files with unknown accessions, and renames that would
//overwrite a file, are skipped.
func RenameByUniProt(dir string, ids idmap.Map) (int, error) {
	names, err := pdbFiles(dir)
	if err != nil {
		return 0, err
	}
	rev := ids.Reverse()
	n := 0
	for _, uni := range names {
		kegg := rev.Get(uni)
		if kegg == "" {
			log.Printf("No correspondence found for UniProt ID %s", uni)
			continue
		}
		target := filepath.Join(dir, kegg+".pdb")
		if rosusc.Exists(target) {
			log.Printf("Warning: %s.pdb already exists. Skipping renaming of %s.pdb", kegg, uni)
			continue
		}
		if err := os.Rename(filepath.Join(dir, uni+".pdb"), target); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
