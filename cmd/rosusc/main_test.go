/*
 * main_test.go, part of rosusc.
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

package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pputida/rosusc/summary"
)

//run executes the command line args. Flag values survive between executions, so the
//global ones are reset.
func run(args ...string) error {
	cfgFile, verbose = "", false
	rootCmd.SetArgs(args)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	return rootCmd.ExecuteContext(context.Background())
}

func TestMisuse(Te *testing.T) {
	dir := Te.TempDir()
	require.Error(Te, run("predict", dir))
	require.Error(Te, run("predict", dir, dir, "trimer"))
	require.Error(Te, run("sites", dir, "dimer"))
	require.Error(Te, run("nosuchcommand"))
	require.Error(Te, run("summary", filepath.Join(dir, "missing")))
	require.Error(Te, run("--config", filepath.Join(dir, "missing.yaml"), "disulfide", dir))
}

func TestSummaryEmpty(Te *testing.T) {
	dir := Te.TempDir()
	out := filepath.Join(dir, "out")
	require.NoError(Te, run("summary", "--ids", filepath.Join(dir, "ids.json"), "-o", out, dir))
	data, err := os.ReadFile(out + ".tsv")
	require.NoError(Te, err)
	require.Equal(Te, strings.Join(summary.Header, "\t")+"\n", string(data))
}

func TestExplain(Te *testing.T) {
	missing := filepath.Join(Te.TempDir(), "missing")
	err := run("sites", missing, "monomer")
	require.Error(Te, err)
	require.Equal(Te, missing+": Subdirs [critical]", explain(err))
	require.Equal(Te, "", explain(errors.New("plain")))
}
