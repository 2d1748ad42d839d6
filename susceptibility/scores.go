/*
 * scores.go, part of rosusc.
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
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

//TotalsKey is the key of the totals in a score file.
const TotalsKey = "Total scores"

//Site holds the scores of one functional site.
type Site struct {
	Type   string  `json:"type"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Score1 int     `json:"score1"` //susceptible residues in the site
	Score2 float64 `json:"score2"` //mean minimum CA distance to susceptible residues outside
	Score3 int     `json:"score3"` //cysteines in the site
}

//Key returns the identifier of the site, {Type}_{start}_{end}.
func (s Site) Key() string {
	return s.Type + "_" + strconv.Itoa(s.Start) + "_" + strconv.Itoa(s.End)
}

//Totals aggregates the sites of a protein. S1-S3 come from active sites and
//S4-S6 from binding sites and other sites. S2 and S5 are means, the rest sums.
type Totals struct {
	S1 int     `json:"s1"`
	S2 float64 `json:"s2"`
	S3 int     `json:"s3"`
	S4 int     `json:"s4"`
	S5 float64 `json:"s5"`
	S6 int     `json:"s6"`
}

//Scores are the site scores of one chain.
type Scores struct {
	Sites  []Site
	Totals Totals
}

//MarshalJSON writes an object with one member per site, in order, plus the totals.
func (S *Scores) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for _, s := range S.Sites {
		k, _ := json.Marshal(s.Key())
		v, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
		b.WriteByte(',')
	}
	t, err := json.Marshal(S.Totals)
	if err != nil {
		return nil, err
	}
	b.WriteString(`"` + TotalsKey + `":`)
	b.Write(t)
	b.WriteByte('}')
	return b.Bytes(), nil
}

//UnmarshalJSON reads the format written by MarshalJSON. Sites come out sorted by
//position.
func (S *Scores) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	S.Sites = S.Sites[:0]
	S.Totals = Totals{}
	for k, v := range raw {
		if k == TotalsKey {
			if err := json.Unmarshal(v, &S.Totals); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			continue
		}
		var s Site
		if err := json.Unmarshal(v, &s); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		S.Sites = append(S.Sites, s)
	}
	sort.Slice(S.Sites, func(i, j int) bool {
		a, b := S.Sites[i], S.Sites[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Type < b.Type
	})
	return nil
}

//writeJSON writes v as indented JSON to name.
func writeJSON(name string, v interface{}) error {
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

//ReadFile reads the monomer score file name.
func ReadFile(name string) (*Scores, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	S := new(Scores)
	if err := json.Unmarshal(data, S); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return S, nil
}

//ReadComplexFile reads the score file of a complex, which holds one set of
//scores per member protein.
func ReadComplexFile(name string) (map[string]*Scores, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]*Scores)
	if err := json.Unmarshal(data, &ret); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ret, nil
}
