/*
 * proteome_test.go, part of rosusc.
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

package proteome

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pputida/rosusc/config"
	"github.com/pputida/rosusc/idmap"
	"github.com/pputida/rosusc/remote"
)

func keggEntry(acc, seq string) string {
	return fmt.Sprintf("ENTRY       X\nDBLINKS     UniProt: %s\nAASEQ       %d\n            %s\n///\n", acc, len(seq), seq)
}

func fakeServices() http.Handler {
	mux := http.NewServeMux()
	entries := map[string]string{
		"PP_0001": keggEntry("Q1", "MAAA"),
		"PP_0002": keggEntry("Q2", "MBBB"),
		"PP_0003": keggEntry("Q3", "MCCC"),
	}
	mux.HandleFunc("/get/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/get/ppu:")
		e, ok := entries[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, e)
	})
	mux.HandleFunc("/efetch.fcgi", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "     CDS   1..90\n       /old_locus_tag=\"pWWO_p001\"\n       /protein_id=\"NP_1.1\"\n")
	})
	mux.HandleFunc("/uniprotkb/search", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[{"primaryAccession":"Q5","sequence":{"value":"MEEE"}}]}`)
	})
	mux.HandleFunc("/files/AF-Q1-F1-model_v4.pdb", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ATOM model\n")
	})
	return mux
}

func TestExtract(Te *testing.T) {
	srv := httptest.NewServer(fakeServices())
	defer srv.Close()
	rc := config.Default().Remote
	rc.KEGG, rc.UniProt, rc.NCBI, rc.AlphaFold = srv.URL, srv.URL, srv.URL, srv.URL
	rc.RatePerSecond = 1000
	client := remote.New(rc)

	dir := Te.TempDir()
	model := filepath.Join(dir, "model.txt")
	require.NoError(Te, os.WriteFile(model, []byte("ID\tGPR\nR1\tPP_0001 or PP_0002\nR2\tpWW0_001 and PP_0003\nR3\tPP_0004\nR4\t\n"), 0o644))
	out := filepath.Join(dir, "out")
	opts := Options{Model: model, OutDir: out, Config: config.Default().Extract}

	R, err := Extract(context.Background(), opts, client)
	require.NoError(Te, err)
	require.Equal(Te, 3, R.Rules)
	require.Equal(Te, 3, R.Monomers)
	require.Equal(Te, 1, R.Complexes)
	require.Equal(Te, 1, R.Structures)
	require.Equal(Te, 1, R.MonomerFastas)
	require.Equal(Te, 1, R.ComplexFastas)

	read := func(p ...string) string {
		data, err := os.ReadFile(filepath.Join(append([]string{out}, p...)...))
		require.NoError(Te, err)
		return string(data)
	}
	require.Equal(Te, "ATOM model\n", read(MonomerModels, "PP_0001", "PP_0001.pdb"))
	require.Equal(Te, ">Q2\nMBBB\n", read(MonomerFastas, "PP_0002.fasta"))
	require.Equal(Te, ">Q3\nMCCC\n>Q5\nMEEE\n", read(ComplexFastas, "PP_0003-pWW0_001.fasta"))
	require.Contains(Te, read("err_MetabProc.txt"), "PP_0004")

	ids, err := idmap.Load(filepath.Join(out, "ID_relationships.json"))
	require.NoError(Te, err)
	require.Equal(Te, idmap.Map{"PP_0001": "Q1", "PP_0002": "Q2", "PP_0003": "Q3", "pWW0_001": "Q5"}, ids)

	//everything is in place, a second run only retries the missing protein.
	R, err = Extract(context.Background(), opts, client)
	require.NoError(Te, err)
	require.Equal(Te, 3, R.Skipped)
	require.Equal(Te, 0, R.Structures+R.MonomerFastas+R.ComplexFastas)
	require.Len(Te, R.Misses, 1)
}

func TestExtractCancelled(Te *testing.T) {
	srv := httptest.NewServer(fakeServices())
	defer srv.Close()
	rc := config.Default().Remote
	rc.KEGG, rc.UniProt, rc.NCBI, rc.AlphaFold = srv.URL, srv.URL, srv.URL, srv.URL
	dir := Te.TempDir()
	model := filepath.Join(dir, "model.txt")
	require.NoError(Te, os.WriteFile(model, []byte("GPR\nPP_0001\n"), 0o644))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Extract(ctx, Options{Model: model, OutDir: dir, Config: config.Default().Extract}, remote.New(rc))
	require.ErrorIs(Te, err, context.Canceled)
}

func TestWriter(Te *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Columns = 4
	require.NoError(Te, w.Write(Entry{"Q1", "MKLVENF"}))
	require.NoError(Te, w.Flush())
	require.Equal(Te, ">Q1\nMKLV\nENF\n", buf.String())
}
