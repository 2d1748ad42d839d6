/*
 * structure_test.go, part of rosusc.
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
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/pputida/rosusc/internal/pdbtest"
	v3 "github.com/pputida/rosusc/v3"
)

func TestPDBRead(Te *testing.T) {
	b := pdbtest.New().Title("SWISS-MODEL homology model").Line("A", "MCYK", 0, 3.8, 80).Line("B", "GW", 20, 3.8, 70)
	S, err := PDBRead(strings.NewReader(b.String()))
	require.NoError(Te, err)
	require.Equal(Te, []string{"A", "B"}, S.ChainIDs())
	require.Equal(Te, "MCYK", S.Sequence("A"))
	require.Equal(Te, "GW", S.Sequence("B"))
	require.Equal(Te, SwissModel, S.Source())
	r := S.Residue("A", 2)
	require.NotNil(Te, r)
	require.Equal(Te, "CYS", r.Name)
	sg := r.Atom("SG")
	require.NotNil(Te, sg)
	require.Equal(Te, "S", sg.Symbol)
	require.InDelta(Te, 80.0, sg.Bfactor, 1e-9)
	c := S.Coord(sg)
	require.InDelta(Te, 3.8, c.At(0, 0), 1e-3)
	require.InDelta(Te, 2.0, c.At(0, 1), 1e-3)
	require.Nil(Te, S.Residue("A", 99))
	require.NotNil(Te, S.ResidueAny(1))
}

func TestSource(Te *testing.T) {
	S, err := PDBRead(strings.NewReader(pdbtest.New().Line("A", "G", 0, 1, 90).String()))
	require.NoError(Te, err)
	require.Equal(Te, AlphaFold, S.Source())
	S, err = PDBRead(strings.NewReader(pdbtest.New().Expdta("X-RAY DIFFRACTION").Line("A", "G", 0, 1, 20).String()))
	require.NoError(Te, err)
	require.Equal(Te, Experimental, S.Source())
	S, err = PDBRead(strings.NewReader(pdbtest.New().Expdta("THEORETICAL MODEL").Line("A", "G", 0, 1, 20).String()))
	require.NoError(Te, err)
	require.Equal(Te, AlphaFold, S.Source())
}

func TestPDBReadErrors(Te *testing.T) {
	_, err := PDBRead(strings.NewReader("HEADER    nothing here\nEND\n"))
	require.Error(Te, err)
	_, err = PDBRead(strings.NewReader("ATOM      1  CA  ALA A   1       a.000   0.000   0.000\n"))
	require.Error(Te, err)
	require.False(Te, IsCritical(err))
}

func TestPDBFileReadCompressed(Te *testing.T) {
	dir := Te.TempDir()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(pdbtest.New().Line("A", "HLR", 0, 3.8, 90).String()))
	require.NoError(Te, err)
	require.NoError(Te, gz.Close())
	name := filepath.Join(dir, "x.pdb.gz")
	require.NoError(Te, os.WriteFile(name, buf.Bytes(), 0o644))
	S, err := PDBFileRead(name)
	require.NoError(Te, err)
	require.Equal(Te, "HLR", S.Sequence("A"))
	_, err = PDBFileRead(filepath.Join(dir, "missing.pdb"))
	require.Error(Te, err)

	bad := filepath.Join(dir, "bad.pdb")
	require.NoError(Te, os.WriteFile(bad, []byte("HEADER    nothing here\nEND\n"), 0o644))
	_, err = PDBFileRead(bad)
	var e Error
	require.True(Te, errors.As(err, &e))
	require.Equal(Te, bad, e.FileName())
	require.Equal(Te, []string{"PDBRead", "PDBFileRead"}, e.Decorate(""))
	require.False(Te, e.Critical())
}

func TestGeometry(Te *testing.T) {
	p := func(x, y, z float64) *v3.Matrix {
		m, _ := v3.NewMatrix([]float64{x, y, z})
		return m
	}
	if d := Distance(p(0, 0, 0), p(3, 4, 0)); math.Abs(d-5) > 1e-12 {
		Te.Errorf("wrong distance %f", d)
	}
	d := Dihedral(p(1, 0, 0), p(0, 0, 0), p(0, 1, 0), p(0, 1, 1)) * Rad2Deg
	if math.Abs(math.Abs(d)-90) > 1e-9 {
		Te.Errorf("wrong dihedral %f", d)
	}
	d = Dihedral(p(1, 0, 0), p(0, 0, 0), p(0, 1, 0), p(1, 1, 0)) * Rad2Deg
	if math.Abs(d) > 1e-9 {
		Te.Errorf("cis dihedral should be 0, got %f", d)
	}
}

func TestLayout(Te *testing.T) {
	for _, s := range []string{"monomer", "Monomers", "multimer", "multimers"} {
		_, err := ParseKind(s)
		require.NoError(Te, err)
	}
	k, _ := ParseKind("multimers")
	require.Equal(Te, Multimer, k)
	_, err := ParseKind("dimer")
	require.Error(Te, err)
	L := Layout{Root: "/x"}
	require.Equal(Te, "/x/PP_0001/PP_0001.pdb", L.Structure("PP_0001"))
	require.Equal(Te, "/x/A-B/A_UniProt_Features.json", L.UniProt("A-B", "A"))
	require.Equal(Te, "/x/A-B/Error_A-B.txt", L.ErrorLog("A-B"))
	require.Equal(Te, []string{"A", "B"}, Members("A-B"))
	dir := Te.TempDir()
	require.NoError(Te, os.Mkdir(filepath.Join(dir, "b"), 0o755))
	require.NoError(Te, os.Mkdir(filepath.Join(dir, "a"), 0o755))
	require.NoError(Te, os.WriteFile(filepath.Join(dir, "c.txt"), nil, 0o644))
	subs, err := Subdirs(dir)
	require.NoError(Te, err)
	require.Equal(Te, []string{"a", "b"}, subs)
}
