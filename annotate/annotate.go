/*
 * annotate.go, part of rosusc.
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

//Package annotate downloads the UniProt entries of the predicted proteins and stores
//them next to their structures.
package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/idmap"
	"github.com/pputida/rosusc/remote"
)

//Report counts what Retrieve did.
type Report struct {
	Folders  int
	Written  int
	Skipped  int //entries already present
	Unmapped []string
	Failed   []string
}

func (R *Report) String() string {
	return fmt.Sprintf("%d folders: %d entries written, %d already present, %d without accession, %d failed",
		R.Folders, R.Written, R.Skipped, len(R.Unmapped), len(R.Failed))
}

//Retrieve writes {id}_UniProt_Features.json in each folder under root. For monomers
//the folder name is the KEGG id of the protein; for multimers the folder name is split
//on '-' and every member gets its own entry. ids maps KEGG ids to UniProt accessions.
//If verbose is true every folder is reported as it is processed.
func Retrieve(ctx context.Context, root string, kind rosusc.Kind, ids idmap.Map, client *remote.Client, verbose bool) (*Report, error) {
	subs, err := rosusc.Subdirs(root)
	if err != nil {
		return nil, err
	}
	L := rosusc.Layout{Root: root}
	R := &Report{Folders: len(subs)}
	for _, sub := range subs {
		members := []string{sub}
		if kind == rosusc.Multimer {
			members = rosusc.Members(sub)
		}
		if verbose {
			log.Printf("Processing %s ...", sub)
		}
		for _, id := range members {
			out := L.UniProt(sub, id)
			if rosusc.Exists(out) {
				R.Skipped++
				continue
			}
			acc := ids.Get(id)
			if acc == "" {
				log.Printf("Error with protein %s. No UniProt ID found.", id)
				R.Unmapped = append(R.Unmapped, id)
				continue
			}
			raw, err := client.UniProtEntry(ctx, acc)
			if err != nil {
				if ctx.Err() != nil {
					return R, ctx.Err()
				}
				log.Printf("There was an error when searching protein %s in UniProt: %v", acc, err)
				R.Failed = append(R.Failed, id)
				continue
			}
			var b bytes.Buffer
			if err := json.Indent(&b, raw, "", "    "); err != nil {
				log.Printf("Invalid UniProt entry for %s: %v", acc, err)
				R.Failed = append(R.Failed, id)
				continue
			}
			b.WriteByte('\n')
			if err := os.WriteFile(out, b.Bytes(), 0o644); err != nil {
				return R, err
			}
			R.Written++
		}
	}
	return R, nil
}
