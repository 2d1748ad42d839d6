/*
 * summary_test.go, part of rosusc.
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

package summary

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/cofactor"
	"github.com/pputida/rosusc/disulfide"
	"github.com/pputida/rosusc/idmap"
	"github.com/pputida/rosusc/internal/pdbtest"
	"github.com/pputida/rosusc/susceptibility"
)

const entryP1 = `{
 "primaryAccession": "Q00001",
 "sequence": {"value": "GCGGGCGG", "length": 8},
 "genes": [{"geneName": {"value": "rosA"}}],
 "proteinDescription": {"recommendedName": {"fullName": {"value": "Protein A"}}},
 "features": []
}`

//tree writes a folder for P1 with everything and one for P2 without scores.
func tree(Te *testing.T) string {
	root := Te.TempDir()
	L := rosusc.Layout{Root: root}
	//residues 3.8 A apart along x, SG of the cysteines 2 A off the CA.
	require.NoError(Te, pdbtest.New().Line("A", "GCGGGCGG", 0, 3.8, 90).Write(L.Structure("P1")))
	require.NoError(Te, os.WriteFile(L.UniProt("P1", "P1"), []byte(entryP1), 0o644))
	scores := &susceptibility.Scores{
		Sites: []susceptibility.Site{
			{Type: "Active site", Start: 4, End: 4, Score1: 0, Score2: 0, Score3: 0},
			{Type: "Binding site", Start: 8, End: 8},
		},
		Totals: susceptibility.Totals{S1: 2, S2: 5.456, S3: 1, S4: 0, S5: 0, S6: 0},
	}
	data, err := json.Marshal(scores)
	require.NoError(Te, err)
	require.NoError(Te, os.WriteFile(L.Scores("P1", "P1"), data, 0o644))
	require.NoError(Te, os.WriteFile(L.Disulfide("P1"), []byte(disulfide.FormatBondList([]string{"2_6"})), 0o644))

	require.NoError(Te, pdbtest.New().Line("A", "GG", 0, 3.8, 90).Write(L.Structure("P2")))
	require.NoError(Te, os.WriteFile(L.UniProt("P2", "P2"), []byte(entryP1), 0o644))
	return root
}

func TestBuild(Te *testing.T) {
	root := tree(Te)
	cofs := map[string][]cofactor.Cofactor{
		"P1": {{Name: "FAD", ChEBI: "CHEBI:57692", Formula: "C27H30N9O15P2"}, {Name: "Fe(2+)", ChEBI: "CHEBI:29033", Formula: "Fe"}},
	}
	rows, err := Build(Options{Root: root, IDs: idmap.Map{"P1": "Q99999"}, Cofactors: cofs})
	require.NoError(Te, err)
	require.Len(Te, rows, 1)
	r := rows[0]
	require.Equal(Te, "P1", r.KEGG)
	require.Equal(Te, "Q99999", r.UniProt)
	require.Equal(Te, "rosA", r.Gene)
	require.Equal(Te, "Protein A", r.Protein)
	require.Equal(Te, 2, r.SRinAS)
	require.Equal(Te, 5.46, r.ASDist)
	require.Equal(Te, 1, r.CysInAS)
	require.Equal(Te, 1, r.Bonds)
	require.Equal(Te, 7.86, r.BondDist)
	require.Equal(Te, "FAD (C27H30N9O15P2) AND Fe(2+) (Fe)", r.Cofactor)

	//without a mapping the accession of the entry is used.
	rows, err = Build(Options{Root: root})
	require.NoError(Te, err)
	require.Equal(Te, "Q00001", rows[0].UniProt)
	require.Equal(Te, "", rows[0].Cofactor)
}

//logged returns what f writes to the standard logger.
func logged(Te *testing.T, f func()) string {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	f()
	return buf.String()
}

func TestVerbose(Te *testing.T) {
	root := tree(Te)
	out := logged(Te, func() {
		_, err := Build(Options{Root: root})
		require.NoError(Te, err)
	})
	require.NotContains(Te, out, "Processing protein")
	//P2 has no scores, which is always reported.
	require.Contains(Te, out, "Error reading susceptibility scores")
	out = logged(Te, func() {
		_, err := Build(Options{Root: root, Verbose: true})
		require.NoError(Te, err)
	})
	require.Contains(Te, out, "Processing protein P1")

	S, err := rosusc.PDBRead(strings.NewReader(pdbtest.New().Line("A", "GCGGGCGG", 0, 3.8, 90).String()))
	require.NoError(Te, err)
	out = logged(Te, func() {
		bondSiteDistance(S, []disulfide.Bond{{Cys1: 2, Cys2: 6}}, []susceptibility.Site{{Start: 90, End: 90}}, true)
	})
	require.Contains(Te, out, rosusc.ErrMissingResidue)
	out = logged(Te, func() {
		bondSiteDistance(S, []disulfide.Bond{{Cys1: 2, Cys2: 4}}, []susceptibility.Site{{Start: 8, End: 8}}, true)
	})
	require.Contains(Te, out, rosusc.ErrMissingAtom)
}

func TestRound2(Te *testing.T) {
	for _, c := range [][2]float64{{0.125, 0.12}, {0.375, 0.38}, {2.675, 2.67}, {5.456, 5.46}, {-0.125, -0.12}, {7.8588, 7.86}, {3, 3}} {
		require.Equal(Te, c[1], Round2(c[0]), "%g", c[0])
	}
}

func TestBondSiteDistance(Te *testing.T) {
	S, err := rosusc.PDBRead(strings.NewReader(pdbtest.New().Line("A", "GCGGGCGG", 0, 3.8, 90).String()))
	require.NoError(Te, err)
	bonds := []disulfide.Bond{{Cys1: 2, Cys2: 6}}
	sites := []susceptibility.Site{{Start: 4, End: 4}, {Start: 8, End: 8}}
	require.InDelta(Te, 7.8588, BondSiteDistance(S, bonds, sites), 1e-3)
	require.Equal(Te, 0.0, BondSiteDistance(S, nil, sites))
	require.Equal(Te, 0.0, BondSiteDistance(S, bonds, nil))
	//residues outside the structure are ignored.
	require.InDelta(Te, 7.8588, BondSiteDistance(S, bonds, []susceptibility.Site{{Start: 4, End: 4}, {Start: 90, End: 95}}), 1e-3)
}

func TestWrite(Te *testing.T) {
	rows := []Row{{KEGG: "P1", UniProt: "Q1", Gene: "rosA", Protein: "Protein A", SRinAS: 2, ASDist: 5.5, Bonds: 1, BondDist: 7.86, Cofactor: "FAD (C27H30N9O15P2)"}}
	var buf bytes.Buffer
	require.NoError(Te, WriteTSV(&buf, rows))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(Te, lines, 2)
	require.Equal(Te, strings.Join(Header, "\t"), lines[0])
	require.Equal(Te, "P1\tQ1\trosA\tProtein A\t2\t5.5\t0\t0\t0.0\t0\t1\t7.86\tFAD (C27H30N9O15P2)", lines[1])

	name := filepath.Join(Te.TempDir(), rosusc.SummaryFile+".xlsx")
	require.NoError(Te, WriteXLSX(name, rows))
	f, err := excelize.OpenFile(name)
	require.NoError(Te, err)
	defer f.Close()
	got, err := f.GetRows(SheetName)
	require.NoError(Te, err)
	require.Len(Te, got, 2)
	require.Equal(Te, Header[0], got[0][0])
	require.Equal(Te, "P1", got[1][0])
	require.Equal(Te, "Protein A", got[1][3])
}
