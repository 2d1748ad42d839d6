/*
 * uniprot_test.go, part of rosusc.
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

package uniprot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const entryJSON = `{
  "primaryAccession": "Q88RB0",
  "sequence": {"value": "MKCLVEN", "length": 7},
  "genes": [{"geneName": {"value": "mnmG"}}],
  "proteinDescription": {"submissionNames": [{"fullName": {"value": "Submitted name"}}]},
  "features": [
    {"type": "Active site", "location": {"start": {"value": 3}, "end": {"value": 3}}},
    {"type": "Binding site", "location": {"start": {"value": 4}, "end": {"value": 6}}, "description": ""},
    {"type": "Helix", "location": {"start": {"value": 1}, "end": {"value": 7}}},
    {"type": "Disulfide bond", "location": {"start": {"value": 3}, "end": {"value": 40}}},
    {"type": "Disulfide bond", "location": {"start": {"value": 3}, "end": {"value": 40}}}
  ],
  "comments": [
    {"commentType": "FUNCTION"},
    {"commentType": "COFACTOR", "cofactors": [
      {"name": "Fe(2+)", "cofactorCrossReference": {"database": "ChEBI", "id": "CHEBI:29033"}},
      {"name": "no reference"},
      {"name": "Fe(2+)", "cofactorCrossReference": {"database": "ChEBI", "id": "CHEBI:29033"}}
    ]}
  ]
}`

func TestEntry(Te *testing.T) {
	e, err := Parse([]byte(entryJSON))
	require.NoError(Te, err)
	require.Equal(Te, "Q88RB0", e.PrimaryAccession)
	require.Equal(Te, "MKCLVEN", e.Sequence.Value)
	require.Equal(Te, "mnmG", e.GeneName())
	require.Equal(Te, "Submitted name", e.ProteinName())
	sites := e.Sites()
	require.Len(Te, sites, 2)
	require.Equal(Te, "Active site_3_3", sites[0].Key())
	require.Equal(Te, "Binding site_4_6", sites[1].Key())
	require.Equal(Te, []string{"3_40"}, e.DisulfideBonds())
	require.Equal(Te, []ChEBICofactor{{"Fe(2+)", "CHEBI:29033"}}, e.Cofactors())
}

func TestProteinName(Te *testing.T) {
	e, err := Parse([]byte(`{"proteinDescription": {"recommendedName": {"fullName": {"value": "tRNA modification GTPase"}},
		"submissionNames": [{"fullName": {"value": "other"}}]}}`))
	require.NoError(Te, err)
	require.Equal(Te, "tRNA modification GTPase", e.ProteinName())
	require.Equal(Te, "", e.GeneName())
	_, err = Parse([]byte("{"))
	require.Error(Te, err)
}
