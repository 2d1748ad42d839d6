/*
 * uniprot.go, part of rosusc.
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

//Package uniprot models the subset of a UniProtKB JSON entry used by the pipeline.
package uniprot

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

//Feature types used by the pipeline.
const (
	ActiveSite    = "Active site"
	BindingSite   = "Binding site"
	Site          = "Site"
	DisulfideBond = "Disulfide bond"
)

type value struct {
	Value string `json:"value"`
}

//Position is a feature boundary. UniProt sometimes gives unknown positions, which
//decode as 0.
type Position struct {
	Value    int    `json:"value"`
	Modifier string `json:"modifier,omitempty"`
}

//Location is the span of a feature, 1-based and inclusive.
type Location struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

//Feature is a sequence annotation.
type Feature struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Location    Location `json:"location"`
}

//Key returns the identifier of the feature used in score files, {Type}_{start}_{end}.
func (F Feature) Key() string {
	return F.Type + "_" + strconv.Itoa(F.Location.Start.Value) + "_" + strconv.Itoa(F.Location.End.Value)
}

//CrossReference points to another database.
type CrossReference struct {
	Database string `json:"database"`
	ID       string `json:"id"`
}

//Cofactor is a cofactor annotation of a COFACTOR comment.
type Cofactor struct {
	Name                   string          `json:"name"`
	CofactorCrossReference *CrossReference `json:"cofactorCrossReference,omitempty"`
}

//Comment is a free annotation. Only cofactor comments are modelled.
type Comment struct {
	CommentType string     `json:"commentType"`
	Cofactors   []Cofactor `json:"cofactors,omitempty"`
}

type name struct {
	FullName value `json:"fullName"`
}

//Entry is a UniProtKB entry.
type Entry struct {
	PrimaryAccession string `json:"primaryAccession"`
	Sequence         struct {
		Value  string `json:"value"`
		Length int    `json:"length"`
	} `json:"sequence"`
	Genes []struct {
		GeneName value `json:"geneName"`
	} `json:"genes"`
	ProteinDescription struct {
		RecommendedName *name  `json:"recommendedName"`
		SubmissionNames []name `json:"submissionNames"`
	} `json:"proteinDescription"`
	Features []Feature `json:"features"`
	Comments []Comment `json:"comments"`
}

//Parse decodes a JSON entry.
func Parse(data []byte) (*Entry, error) {
	e := new(Entry)
	if err := json.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("decoding UniProt entry: %w", err)
	}
	return e, nil
}

//ReadFile decodes the JSON entry in the file name.
func ReadFile(name string) (*Entry, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	e, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return e, nil
}

//IsSite returns true for the feature types that mark functional sites.
func IsSite(ftype string) bool {
	return ftype == ActiveSite || ftype == BindingSite || ftype == Site
}

//Sites returns the active, binding and plain sites of the entry, in entry order.
func (E *Entry) Sites() []Feature {
	var ret []Feature
	for _, f := range E.Features {
		if IsSite(f.Type) {
			ret = append(ret, f)
		}
	}
	return ret
}

//DisulfideBonds returns the annotated disulfide bonds as "start_end" strings,
//without repetitions, in entry order.
func (E *Entry) DisulfideBonds() []string {
	seen := make(map[string]bool)
	var ret []string
	for _, f := range E.Features {
		if f.Type != DisulfideBond {
			continue
		}
		k := strconv.Itoa(f.Location.Start.Value) + "_" + strconv.Itoa(f.Location.End.Value)
		if !seen[k] {
			seen[k] = true
			ret = append(ret, k)
		}
	}
	return ret
}

//GeneName returns the name of the first gene, or an empty string.
func (E *Entry) GeneName() string {
	if len(E.Genes) == 0 {
		return ""
	}
	return E.Genes[0].GeneName.Value
}

//ProteinName returns the recommended name of the protein or, lacking it, the
//first submission name.
func (E *Entry) ProteinName() string {
	pd := E.ProteinDescription
	if pd.RecommendedName != nil && pd.RecommendedName.FullName.Value != "" {
		return pd.RecommendedName.FullName.Value
	}
	if len(pd.SubmissionNames) > 0 {
		return pd.SubmissionNames[0].FullName.Value
	}
	return ""
}

//ChEBICofactor is a cofactor with a ChEBI identifier.
type ChEBICofactor struct {
	Name  string
	ChEBI string //the full "CHEBI:nnnn" identifier
}

//Cofactors returns the named cofactors of the entry that carry a ChEBI cross
//reference. Repeated cofactors are reported once.
func (E *Entry) Cofactors() []ChEBICofactor {
	var ret []ChEBICofactor
	seen := make(map[string]bool)
	for _, c := range E.Comments {
		for _, cf := range c.Cofactors {
			x := cf.CofactorCrossReference
			if cf.Name == "" || x == nil || x.Database != "ChEBI" || x.ID == "" {
				continue
			}
			if seen[cf.Name+x.ID] {
				continue
			}
			seen[cf.Name+x.ID] = true
			ret = append(ret, ChEBICofactor{cf.Name, x.ID})
		}
	}
	return ret
}
