/*
 * kegg.go, part of rosusc.
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
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var keggUniProt = regexp.MustCompile(`UniProt:\s+(\S+)`)

//ErrNoUniProt is returned when a KEGG entry has no UniProt cross reference.
var ErrNoUniProt = errors.New("no UniProt accession in KEGG entry")

//KEGGEntry is the part of a KEGG gene entry the pipeline uses.
type KEGGEntry struct {
	UniProt  string
	Sequence string
}

//KEGG returns the flat-file entry org:id from the KEGG REST API.
func (C *Client) KEGG(ctx context.Context, org, id string) (string, error) {
	u := fmt.Sprintf("%s/get/%s:%s", C.KEGGURL, url.PathEscape(org), url.PathEscape(id))
	body, err := C.get(ctx, u)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

//ParseKEGGEntry extracts the first UniProt accession of the DBLINKS section and
//the amino acid sequence of the AASEQ section. An entry without accession gives
//ErrNoUniProt; the sequence can be empty.
func ParseKEGGEntry(text string) (KEGGEntry, error) {
	var e KEGGEntry
	m := keggUniProt.FindStringSubmatch(text)
	if m == nil {
		return e, ErrNoUniProt
	}
	e.UniProt = m[1]
	var seq strings.Builder
	inSeq := false
	s := bufio.NewScanner(strings.NewReader(text))
	for s.Scan() {
		line := s.Text()
		if strings.HasPrefix(line, "AASEQ") {
			inSeq = true
			continue //the first line only has the length
		}
		if !inSeq {
			continue
		}
		if line == "" || (line[0] != ' ' && line[0] != '\t') {
			break
		}
		seq.WriteString(strings.TrimSpace(line))
	}
	e.Sequence = seq.String()
	return e, nil
}
