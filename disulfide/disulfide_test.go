/*
 * disulfide_test.go, part of rosusc.
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

package disulfide

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/config"
	"github.com/pputida/rosusc/internal/pdbtest"
)

//cys adds a cysteine with SG at (x,y,z) and CB displaced by cb.
func cys(b *pdbtest.Builder, num int, x, y, z float64, cb [3]float64, bfac float64) {
	b.Atom("N", "CYS", "A", num, x+cb[0]-1, y+cb[1]+1, z+cb[2], bfac)
	b.Atom("CA", "CYS", "A", num, x+cb[0], y+cb[1]+1, z+cb[2], bfac)
	b.Atom("C", "CYS", "A", num, x+cb[0]+1, y+cb[1]+1, z+cb[2], bfac)
	b.Atom("CB", "CYS", "A", num, x+cb[0], y+cb[1], z+cb[2], bfac)
	b.Atom("SG", "CYS", "A", num, x, y, z, bfac)
}

//model has a good bond 10-25, a bond-like pair with low confidence 40-41 and an
//isolated cysteine 60.
func model(title string, good, bad float64) *pdbtest.Builder {
	b := pdbtest.New()
	if title != "" {
		b.Title(title)
	}
	cys(b, 10, 0, 0, 0, [3]float64{0, 1.8, 0}, good)
	cys(b, 25, 2.04, 0, 0, [3]float64{0, 0, 1.8}, good)
	cys(b, 40, 20, 0, 0, [3]float64{0, 1.8, 0}, bad)
	cys(b, 41, 22.04, 0, 0, [3]float64{0, 0, 1.8}, bad)
	cys(b, 60, 50, 0, 0, [3]float64{0, 1.8, 0}, good)
	return b
}

func TestDetect(Te *testing.T) {
	F := NewFinder(config.Default().Disulfide)
	S, err := rosusc.PDBRead(strings.NewReader(model("", 90, 30).String()))
	require.NoError(Te, err)
	require.Equal(Te, rosusc.AlphaFold, S.Source())
	bonds := F.Detect(S)
	require.Len(Te, bonds, 1)
	require.Equal(Te, "10_25", bonds[0].Key())
	require.InDelta(Te, 2.04, bonds[0].Dist, 1e-3)
	require.InDelta(Te, 90, math.Abs(bonds[0].Dihedral), 1e-3)

	//SWISS-MODEL quality scores are in [0,1]
	S, err = rosusc.PDBRead(strings.NewReader(model("SWISS-MODEL SERVER", 0.8, 0.5).String()))
	require.NoError(Te, err)
	require.Len(Te, F.Detect(S), 1)

	//for experimental structures low b-factors are good.
	S, err = rosusc.PDBRead(strings.NewReader(model("", 60, 20).Expdta("X-RAY DIFFRACTION").String()))
	require.NoError(Te, err)
	bonds = F.Detect(S)
	require.Len(Te, bonds, 1)
	require.Equal(Te, "40_41", bonds[0].Key())
}

func TestBondLists(Te *testing.T) {
	keys := Merge([]string{"3_40", "3_40"}, []Bond{{Cys1: 10, Cys2: 25}, {Cys1: 3, Cys2: 40}})
	require.Equal(Te, []string{"3_40", "10_25"}, keys)
	s := FormatBondList(keys)
	require.Equal(Te, "['3_40', '10_25']", s)
	b, err := ParseBondList(s)
	require.NoError(Te, err)
	require.Equal(Te, []Bond{{Cys1: 3, Cys2: 40}, {Cys1: 10, Cys2: 25}}, b)
	b, err = ParseBondList("[]")
	require.NoError(Te, err)
	require.Empty(Te, b)
	for _, bad := range []string{"3_40", "['3-40']", "['a_b']"} {
		_, err = ParseBondList(bad)
		require.Error(Te, err, bad)
	}
}

func TestRun(Te *testing.T) {
	root := Te.TempDir()
	L := rosusc.Layout{Root: root}
	write := func(name, content string) {
		require.NoError(Te, os.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(Te, os.WriteFile(name, []byte(content), 0o644))
	}
	require.NoError(Te, model("", 90, 30).Write(L.Structure("P1")))
	write(L.UniProt("P1", "P1"), `{"features": [{"type": "Disulfide bond", "location": {"start": {"value": 3}, "end": {"value": 40}}}]}`)
	require.NoError(Te, pdbtest.New().Line("A", "GGG", 0, 3.8, 90).Write(L.Structure("P2")))
	write(L.UniProt("P2", "P2"), `{"features": []}`)
	require.NoError(Te, pdbtest.New().Line("A", "GGG", 0, 3.8, 90).Write(L.Structure("P3")))
	write(L.Disulfide("P3"), "['1_2']")

	R, err := NewFinder(config.Default().Disulfide).Run(root)
	require.NoError(Te, err)
	require.Equal(Te, 3, R.Folders)
	require.Equal(Te, 2, R.WithBond)
	require.Equal(Te, 1, R.Written)
	b, err := ReadBondList(L.Disulfide("P1"))
	require.NoError(Te, err)
	require.Equal(Te, []Bond{{Cys1: 3, Cys2: 40}, {Cys1: 10, Cys2: 25}}, b)
	require.NoFileExists(Te, L.Disulfide("P2"))
}
