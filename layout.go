/*
 * layout.go, part of rosusc.
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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//Kind is the type of a prediction: a single chain or a complex.
type Kind int

const (
	Monomer Kind = iota
	Multimer
)

func (K Kind) String() string {
	if K == Multimer {
		return "multimer"
	}
	return "monomer"
}

//ParseKind recognizes "monomer" and "multimer" and their plurals, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monomer", "monomers":
		return Monomer, nil
	case "multimer", "multimers":
		return Multimer, nil
	}
	return Monomer, NewError(fmt.Sprintf("%s: %q (use monomer or multimer)", ErrUnknownKind, s), "", "ParseKind", true)
}

//Canonical file names used by every stage of the pipeline.
const (
	RankedModel     = "ranked_0.pdb"
	RankingDebug    = "ranking_debug.json"
	IDRelationships = "ID_relationships.json"
	MissesFile      = "err_MetabProc.txt"
	CofactorsFile   = "cofactors.json"
	ComplexCofFile  = "complex_cofactors.json"
	SummaryFile     = "ROS_summary"
)

const (
	uniprotSuffix   = "_UniProt_Features.json"
	scoresSuffix    = "_Susceptibility_Scores.json"
	disulfideSuffix = "_Disulfide_Bonds.txt"
	iptmSuffix      = "_ipTM.txt"
)

//Layout gives the paths of the per-protein files of a prediction folder.
//Each protein (or complex) lives in Root/{name}/.
type Layout struct {
	Root string
}

//Dir returns the folder of the protein name.
func (L Layout) Dir(name string) string { return filepath.Join(L.Root, name) }

//Structure returns the path of the structure of name, {name}/{name}.pdb.
func (L Layout) Structure(name string) string {
	return filepath.Join(L.Root, name, name+".pdb")
}

//UniProt returns the path of the UniProt entry of protein, stored in the folder of owner
//(which is the protein itself for monomers, or the complex it belongs to).
func (L Layout) UniProt(owner, protein string) string {
	return filepath.Join(L.Root, owner, protein+uniprotSuffix)
}

//Scores returns the path of the susceptibility scores of protein, in the folder of owner.
func (L Layout) Scores(owner, protein string) string {
	return filepath.Join(L.Root, owner, protein+scoresSuffix)
}

//Disulfide returns the path of the disulfide bond list of name.
func (L Layout) Disulfide(name string) string {
	return filepath.Join(L.Root, name, name+disulfideSuffix)
}

//IPTM returns the path of the interface confidence file of the complex name.
func (L Layout) IPTM(name string) string {
	return filepath.Join(L.Root, name, name+iptmSuffix)
}

//ErrorLog returns the path where the stderr of the prediction of name is kept.
func (L Layout) ErrorLog(name string) string {
	return filepath.Join(L.Root, name, "Error_"+name+".txt")
}

//Ranked returns the path of the best ranked model of name, as written by the predictor.
func (L Layout) Ranked(name string) string {
	return filepath.Join(L.Root, name, RankedModel)
}

//Subdirs returns the names of the directories directly under root, sorted.
func Subdirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, NewError(fmt.Sprintf("%s: %v", ErrNotADirectory, err), root, "Subdirs", true)
	}
	ret := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			ret = append(ret, e.Name())
		}
	}
	sort.Strings(ret)
	return ret, nil
}

//Members returns the proteins that form the complex name (members are joined by '-').
//For a monomer it returns a slice with name alone.
func Members(name string) []string {
	return strings.Split(name, "-")
}

//ComplexName joins the members of a complex in a folder name.
func ComplexName(members []string) string {
	return strings.Join(members, "-")
}
