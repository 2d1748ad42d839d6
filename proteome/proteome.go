/*
 * proteome.go, part of rosusc.
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

//Package proteome extracts the proteins of a metabolic model. It splits the
//gene-protein-reaction rules into monomers and complexes, resolves every gene to a
//UniProt accession and sequence, downloads the AlphaFold DB models available for
//monomers and writes FASTA files for everything that still has to be predicted.
package proteome

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/config"
	"github.com/pputida/rosusc/gpr"
	"github.com/pputida/rosusc/idmap"
	"github.com/pputida/rosusc/remote"
)

//Output folders, relative to the output directory.
const (
	MonomerModels = "Monomers_predictions"
	MonomerFastas = "Monomers_to_model"
	ComplexFastas = "Complex_fastas"
)

//Options for Extract.
type Options struct {
	Model   string //tab separated dump of the metabolic model
	OutDir  string
	IDCache string //defaults to OutDir/ID_relationships.json
	Config  config.Extract
	Verbose bool
}

//Report summarizes an extraction.
type Report struct {
	Rules         int
	Monomers      int
	Complexes     int
	Structures    int //AlphaFold DB models downloaded
	MonomerFastas int
	ComplexFastas int
	Skipped       int //outputs already present
	Misses        []string
}

func (R *Report) String() string {
	return fmt.Sprintf("%d rules, %d monomers, %d complexes: %d models downloaded, %d monomer and %d complex FASTA files written, %d already present, %d problems",
		R.Rules, R.Monomers, R.Complexes, R.Structures, R.MonomerFastas, R.ComplexFastas, R.Skipped, len(R.Misses))
}

//miss records a problem with one protein.
func (R *Report) miss(format string, args ...interface{}) {
	m := fmt.Sprintf(format, args...)
	log.Println(m)
	R.Misses = append(R.Misses, m)
}

//Extract runs the whole extraction. Proteins that can't be resolved are recorded in
//the report (and in err_MetabProc.txt); only problems with the inputs, the output
//folders or a cancelled context are returned as errors.
func Extract(ctx context.Context, opts Options, client *remote.Client) (*Report, error) {
	f, err := rosusc.OpenFile(opts.Model)
	if err != nil {
		return nil, err
	}
	rules, err := gpr.ReadModelRules(f, opts.Config.GPRColumn)
	f.Close()
	if err != nil {
		return nil, err
	}
	P, err := gpr.Split(rules, opts.Config.IDRegexp(), opts.Config.MaxClauses)
	if err != nil {
		return nil, err
	}
	R := &Report{Rules: len(rules), Monomers: len(P.Monomers), Complexes: len(P.Complexes)}
	log.Printf("Total entries: %d, monomers: %d, possible complexes: %d", R.Rules, R.Monomers, R.Complexes)

	for _, d := range []string{MonomerModels, MonomerFastas, ComplexFastas} {
		if err := os.MkdirAll(filepath.Join(opts.OutDir, d), 0o755); err != nil {
			return R, err
		}
	}
	cache := opts.IDCache
	if cache == "" {
		cache = filepath.Join(opts.OutDir, rosusc.IDRelationships)
	}
	ids, err := idmap.Load(cache)
	if err != nil {
		return R, err
	}
	res := &resolver{client: client, ids: ids, org: opts.Config.Organism, seqs: make(map[string]string), report: R}
	if needsPlasmid(P) {
		log.Println("Extracting plasmid dictionary...")
		gb, err := client.GenBank(ctx, opts.Config.Plasmid)
		if err != nil {
			if ctx.Err() != nil {
				return R, ctx.Err()
			}
			R.miss("Could not retrieve plasmid record %s: %v", opts.Config.Plasmid, err)
		}
		res.plasmid = remote.ParsePlasmidTags(gb)
	}

	err = extractMonomers(ctx, opts, P.Monomers, res)
	if err == nil {
		err = extractComplexes(ctx, opts, P.Complexes, res)
	}
	//whatever happened, keep what was learned.
	if serr := ids.Save(cache); serr != nil && err == nil {
		err = serr
	}
	if werr := writeMisses(filepath.Join(opts.OutDir, rosusc.MissesFile), R.Misses); werr != nil && err == nil {
		err = werr
	}
	return R, err
}

func needsPlasmid(P *gpr.Proteome) bool {
	for _, m := range P.Monomers {
		if isPlasmid(m) {
			return true
		}
	}
	for _, c := range P.Complexes {
		for _, m := range c {
			if isPlasmid(m) {
				return true
			}
		}
	}
	return false
}

func isPlasmid(id string) bool { return strings.HasPrefix(id, "pWW0") }

func extractMonomers(ctx context.Context, opts Options, monomers []string, res *resolver) error {
	R := res.report
	log.Println("Working on monomers...")
	for _, id := range monomers {
		fasta := filepath.Join(opts.OutDir, MonomerFastas, id+".fasta")
		pdb := filepath.Join(opts.OutDir, MonomerModels, id, id+".pdb")
		if rosusc.Exists(fasta) || rosusc.Exists(pdb) {
			if opts.Verbose {
				log.Printf("Outputs for %s already exist!", id)
			}
			R.Skipped++
			continue
		}
		acc, seq, err := res.resolve(ctx, id)
		if err != nil {
			return err
		}
		if acc == "" {
			continue
		}
		if opts.Config.UseAlphaFDB {
			model, err := res.client.AlphaFoldModel(ctx, acc)
			if err == nil {
				if err := os.MkdirAll(filepath.Dir(pdb), 0o755); err != nil {
					return err
				}
				if err := os.WriteFile(pdb, model, 0o644); err != nil {
					return err
				}
				R.Structures++
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			R.miss("There was an error searching for AlphaFold model %s (%s): %v", acc, id, err)
		}
		if seq == "" {
			R.miss("No sequence found for protein %s", id)
			continue
		}
		if err := WriteFile(fasta, Entry{acc, seq}); err != nil {
			return err
		}
		R.MonomerFastas++
	}
	return nil
}

func extractComplexes(ctx context.Context, opts Options, complexes [][]string, res *resolver) error {
	R := res.report
	log.Println("Working on complexes...")
CPLX:
	for _, c := range complexes {
		name := rosusc.ComplexName(c)
		fasta := filepath.Join(opts.OutDir, ComplexFastas, name+".fasta")
		if rosusc.Exists(fasta) {
			if opts.Verbose {
				log.Printf("File %s.fasta already exists!", name)
			}
			R.Skipped++
			continue
		}
		entries := make([]Entry, 0, len(c))
		for _, id := range c {
			acc, seq, err := res.resolve(ctx, id)
			if err != nil {
				return err
			}
			if acc == "" || seq == "" {
				R.miss("%s.fasta file could not be written: no information for protein %s found", name, id)
				continue CPLX
			}
			entries = append(entries, Entry{acc, seq})
		}
		if err := WriteFile(fasta, entries...); err != nil {
			return err
		}
		R.ComplexFastas++
	}
	return nil
}

func writeMisses(name string, misses []string) error {
	var b strings.Builder
	for _, m := range misses {
		b.WriteString(m + "\n")
	}
	return os.WriteFile(name, []byte(b.String()), 0o644)
}
