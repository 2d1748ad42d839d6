/*
 * resolve.go, part of rosusc.
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
	"context"

	"github.com/pputida/rosusc/idmap"
	"github.com/pputida/rosusc/remote"
)

//resolver finds the UniProt accession and sequence of genes, remembering the
//answers so genes shared by several complexes are queried once.
type resolver struct {
	client  *remote.Client
	ids     idmap.Map
	plasmid map[string]string //plasmid locus tag to RefSeq protein
	org     string
	seqs    map[string]string
	report  *Report
}

//resolve returns the accession and sequence of id. A gene that can't be resolved
//is recorded in the report and gives empty strings and a nil error. The error is
//only set when ctx is done.
func (r *resolver) resolve(ctx context.Context, id string) (acc, seq string, err error) {
	if s, ok := r.seqs[id]; ok {
		return r.ids.Get(id), s, nil
	}
	switch {
	case r.ids.Get(id) != "":
		acc = r.ids.Get(id)
		seq, err = r.client.UniProtFASTA(ctx, acc)
		if err != nil {
			if ctx.Err() != nil {
				return "", "", ctx.Err()
			}
			r.report.miss("No UniProt fasta was found for protein %s: %v", id, err)
			//the accession is still good for the AlphaFold DB.
			return acc, "", nil
		}
	case isPlasmid(id):
		tag := remote.PlasmidTag(id)
		refseq, ok := r.plasmid[tag]
		if !ok {
			r.report.miss("Error: protein %s not found in NCBI plasmid pWW0 database", tag)
			return "", "", nil
		}
		acc, seq, err = r.client.UniProtSearch(ctx, refseq)
		if err != nil {
			if ctx.Err() != nil {
				return "", "", ctx.Err()
			}
			r.report.miss("There was an error searching for protein %s in UniProt: %v", tag, err)
			return "", "", nil
		}
	default:
		text, err := r.client.KEGG(ctx, r.org, id)
		if err != nil {
			if ctx.Err() != nil {
				return "", "", ctx.Err()
			}
			r.report.miss("There was an error searching for protein %s in KEGG database: %v", id, err)
			return "", "", nil
		}
		e, err := remote.ParseKEGGEntry(text)
		if err != nil {
			r.report.miss("No UniProt ID was found for protein %s", id)
			return "", "", nil
		}
		acc, seq = e.UniProt, e.Sequence
		if seq == "" {
			r.report.miss("No sequence was found for protein %s", id)
		}
	}
	r.ids.Set(id, acc)
	if seq != "" {
		r.seqs[id] = seq
	}
	return acc, seq, nil
}
