/*
 * idmap_test.go, part of rosusc.
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

package idmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSave(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "ID_relationships.json")
	m, err := Load(name)
	require.NoError(Te, err)
	require.Empty(Te, m)
	m.Set("PP_0002", "Q88RA9")
	m.Set("PP_0001", "Q88RB0")
	require.True(Te, m.Has("PP_0001"))
	require.False(Te, m.Has("PP_0003"))
	require.NoError(Te, m.Save(name))
	data, err := os.ReadFile(name)
	require.NoError(Te, err)
	require.Equal(Te, "{\n    \"PP_0001\": \"Q88RB0\",\n    \"PP_0002\": \"Q88RA9\"\n}\n", string(data))
	back, err := Load(name)
	require.NoError(Te, err)
	require.Equal(Te, "Q88RA9", back.Get("PP_0002"))
}

func TestReverse(Te *testing.T) {
	m := Map{"PP_0001": "A", "PP_0009": "B", "PP_0005": "B"}
	r := m.Reverse()
	require.Equal(Te, "PP_0001", r.Get("A"))
	require.Equal(Te, "PP_0005", r.Get("B"))
}

func TestLoadBad(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "bad.json")
	require.NoError(Te, os.WriteFile(name, []byte("[1,2]"), 0o644))
	_, err := Load(name)
	require.Error(Te, err)
}
