/*
 * predict_test.go, part of rosusc.
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
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/config"
	"github.com/pputida/rosusc/idmap"
)

func write(Te *testing.T, name, content string) {
	Te.Helper()
	require.NoError(Te, os.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(Te, os.WriteFile(name, []byte(content), 0o644))
}

func TestDriverRun(Te *testing.T) {
	dir := Te.TempDir()
	in, out := filepath.Join(dir, "in"), filepath.Join(dir, "out")
	write(Te, filepath.Join(in, "A.fasta"), ">Q1\nMA\n")
	write(Te, filepath.Join(in, "bad.fasta"), ">Q2\nMB\n")
	write(Te, filepath.Join(in, "done.fasta"), ">Q3\nMC\n")
	write(Te, filepath.Join(in, "notes.txt"), "")
	write(Te, filepath.Join(out, "done", "done.pdb"), "")

	D := NewDriver(config.Default().Predict)
	D.Command = "sh"
	D.Args = []string{"-c", `test "$1" = bad && { echo broken >&2; exit 1; }; echo "$3" >&2; mkdir -p "$2/$1" && cp "$4" "$2/$1/ranked_0.pdb"`,
		"predict", "{{.Name}}", "{{.Output}}", "{{.Preset}}", "{{.Fasta}}"}
	R, err := D.Run(context.Background(), in, out, rosusc.Multimer)
	require.NoError(Te, err)
	require.Equal(Te, 3, R.Total)
	require.Equal(Te, 1, R.Skipped)
	require.Equal(Te, 1, R.Done)
	require.Equal(Te, []string{"bad"}, R.Failed)

	L := rosusc.Layout{Root: out}
	data, err := os.ReadFile(L.Ranked("A"))
	require.NoError(Te, err)
	require.Equal(Te, ">Q1\nMA\n", string(data))
	data, err = os.ReadFile(L.ErrorLog("A"))
	require.NoError(Te, err)
	require.Equal(Te, "multimer\n", string(data))
	data, err = os.ReadFile(L.ErrorLog("bad"))
	require.NoError(Te, err)
	require.Equal(Te, "broken\n", string(data))

	//the second time everything but the failure is skipped
	R, err = D.Run(context.Background(), in, out, rosusc.Monomer)
	require.NoError(Te, err)
	require.Equal(Te, 2, R.Skipped)
}

func TestDriverMisuse(Te *testing.T) {
	dir := Te.TempDir()
	D := NewDriver(config.Default().Predict)
	_, err := D.Run(context.Background(), filepath.Join(dir, "nope"), dir, rosusc.Monomer)
	require.Error(Te, err)
	D.Args = []string{"{{.Fasta"}
	_, err = D.Run(context.Background(), dir, dir, rosusc.Monomer)
	require.Error(Te, err)
}

func TestCollect(Te *testing.T) {
	root := Te.TempDir()
	cdir := filepath.Join(root, "A-B")
	write(Te, filepath.Join(cdir, "ranked_0.pdb"), "model")
	write(Te, filepath.Join(cdir, "ranked_1.pdb"), "model")
	write(Te, filepath.Join(cdir, "Error_A-B.txt"), "log")
	write(Te, filepath.Join(cdir, "msas", "a.sto"), "")
	write(Te, filepath.Join(cdir, "ranking_debug.json"), `{"iptm+ptm": {"m1": 0.5, "m2": 0.81}, "iptm": {"m1": 0.45, "m2": 0.78}, "order": ["m2", "m1"]}`)
	require.NoError(Te, Collect(cdir, rosusc.Multimer))
	entries, err := os.ReadDir(cdir)
	require.NoError(Te, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(Te, []string{"ranked_0.pdb", "Error_A-B.txt", "A-B_ipTM.txt"}, names)
	data, err := os.ReadFile(filepath.Join(cdir, "A-B_ipTM.txt"))
	require.NoError(Te, err)
	require.Equal(Te, "0.78", string(data))

	//the blended score is not an ipTM.
	bdir := filepath.Join(root, "C-D")
	write(Te, filepath.Join(bdir, "ranked_0.pdb"), "model")
	write(Te, filepath.Join(bdir, "ranking_debug.json"), `{"iptm+ptm": {"m1": 0.5, "m2": 0.81}, "order": ["m2", "m1"]}`)
	write(Te, filepath.Join(bdir, "result_m1.pkl"), "")
	write(Te, filepath.Join(bdir, "result_m2.pkl"), "")
	err = Collect(bdir, rosusc.Multimer)
	require.True(Te, errors.Is(err, ErrNoRanking))
	require.False(Te, rosusc.Exists(filepath.Join(bdir, "C-D_ipTM.txt")))
	require.True(Te, rosusc.Exists(filepath.Join(bdir, "ranked_0.pdb")))
	require.True(Te, rosusc.Exists(filepath.Join(bdir, "result_m2.pkl")))
	require.False(Te, rosusc.Exists(filepath.Join(bdir, "result_m1.pkl")))

	mdir := filepath.Join(root, "PP_0001")
	write(Te, filepath.Join(mdir, "ranked_1.pdb"), "model")
	err = Collect(mdir, rosusc.Monomer)
	require.True(Te, errors.Is(err, ErrNoRanked))
	entries, err = os.ReadDir(mdir)
	require.NoError(Te, err)
	require.Empty(Te, entries)

	n, err := CollectAll(root, rosusc.Multimer, false)
	require.NoError(Te, err)
	require.Equal(Te, 1, n)
}

func TestOrganize(Te *testing.T) {
	root := Te.TempDir()
	write(Te, filepath.Join(root, "P1", "ranked_0.pdb"), "1")
	write(Te, filepath.Join(root, "P2", "ranked_0.pdb"), "2")
	write(Te, filepath.Join(root, "P2", "P2.pdb"), "old")
	n, err := RenameRanked(root)
	require.NoError(Te, err)
	require.Equal(Te, 1, n)
	require.FileExists(Te, filepath.Join(root, "P1", "P1.pdb"))
	require.FileExists(Te, filepath.Join(root, "P2", "ranked_0.pdb"))

	flat := Te.TempDir()
	write(Te, filepath.Join(flat, "Q1.pdb"), "a")
	write(Te, filepath.Join(flat, "Q2.pdb"), "b")
	write(Te, filepath.Join(flat, "Q9.pdb"), "c")
	write(Te, filepath.Join(flat, "PP_0002.pdb"), "existing")
	n, err = RenameByUniProt(flat, idmap.Map{"PP_0001": "Q1", "PP_0002": "Q2"})
	require.NoError(Te, err)
	require.Equal(Te, 1, n)
	require.FileExists(Te, filepath.Join(flat, "PP_0001.pdb"))
	require.FileExists(Te, filepath.Join(flat, "Q2.pdb"))
	require.FileExists(Te, filepath.Join(flat, "Q9.pdb"))

	n, err = Subfolders(flat)
	require.NoError(Te, err)
	require.Equal(Te, 4, n)
	require.FileExists(Te, filepath.Join(flat, "PP_0001", "PP_0001.pdb"))
	require.NoFileExists(Te, filepath.Join(flat, "PP_0001.pdb"))
}
