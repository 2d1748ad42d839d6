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

package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

//ErrNoResults is returned by searches with no hits.
var ErrNoResults = errors.New("no UniProt entries found")

//UniProtEntry returns the raw JSON entry for the accession acc.
func (C *Client) UniProtEntry(ctx context.Context, acc string) ([]byte, error) {
	u := fmt.Sprintf("%s/uniprotkb/%s.json", C.UniProtURL, url.PathEscape(acc))
	return C.get(ctx, u)
}

//UniProtFASTA returns the sequence of the accession acc, taken from its FASTA record.
func (C *Client) UniProtFASTA(ctx context.Context, acc string) (string, error) {
	u := fmt.Sprintf("%s/uniprotkb/%s.fasta", C.UniProtURL, url.PathEscape(acc))
	body, err := C.get(ctx, u)
	if err != nil {
		return "", err
	}
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) < 2 {
		return "", fmt.Errorf("%s: empty FASTA record", acc)
	}
	return strings.Join(lines[1:], ""), nil
}

//UniProtSearch returns the accession and sequence of the first hit of query.
func (C *Client) UniProtSearch(ctx context.Context, query string) (acc, seq string, err error) {
	u := fmt.Sprintf("%s/uniprotkb/search?query=%s&format=json", C.UniProtURL, url.QueryEscape(query))
	body, err := C.get(ctx, u)
	if err != nil {
		return "", "", err
	}
	var resp struct {
		Results []struct {
			PrimaryAccession string `json:"primaryAccession"`
			Sequence         struct {
				Value string `json:"value"`
			} `json:"sequence"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", "", fmt.Errorf("decoding UniProt search for %s: %w", query, err)
	}
	if len(resp.Results) == 0 || resp.Results[0].PrimaryAccession == "" {
		return "", "", fmt.Errorf("%s: %w", query, ErrNoResults)
	}
	return resp.Results[0].PrimaryAccession, resp.Results[0].Sequence.Value, nil
}
