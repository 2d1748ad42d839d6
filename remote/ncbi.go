/*
 * ncbi.go, part of rosusc.
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
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

//GenBank returns the GenBank flat file of a nucleotide accession, from NCBI efetch.
func (C *Client) GenBank(ctx context.Context, accession string) (string, error) {
	q := url.Values{}
	q.Set("db", "nuccore")
	q.Set("id", accession)
	q.Set("rettype", "gb")
	q.Set("retmode", "text")
	body, err := C.get(ctx, fmt.Sprintf("%s/efetch.fcgi?%s", C.NCBIURL, q.Encode()))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

var (
	oldLocusTag = regexp.MustCompile(`/old_locus_tag="([^"]+)"`)
	proteinID   = regexp.MustCompile(`/protein_id="([^"]+)"`)
)

//ParsePlasmidTags maps the old locus tag of each CDS in a GenBank record to its
//RefSeq protein id. CDS features lacking either qualifier are ignored.
func ParsePlasmidTags(record string) map[string]string {
	ret := make(map[string]string)
	for _, chunk := range strings.Split(record, "CDS") {
		l := oldLocusTag.FindStringSubmatch(chunk)
		p := proteinID.FindStringSubmatch(chunk)
		if l != nil && p != nil {
			ret[l[1]] = p[1]
		}
	}
	return ret
}

//PlasmidTag converts a model plasmid identifier (pWW0_123) to the locus tag
//used by the GenBank record (pWWO_p123).
func PlasmidTag(id string) string {
	return strings.Replace(id, "0_", "O_p", 1)
}
