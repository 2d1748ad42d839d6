/*
 * extract.go, part of rosusc.
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
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/proteome"
	"github.com/pputida/rosusc/remote"
)

var extractFlags struct {
	out      string
	ids      string
	column   string
	noAFDB   bool
	organism string
}

//extractCmd writes the FASTA files of the proteins of a metabolic model.
var extractCmd = &cobra.Command{
	Use:   "extract MODEL",
	Short: "Extract the monomers and complexes of a metabolic model",
	Long: `
Reads the gene-protein-reaction rules of MODEL, a tab separated dump of the
metabolic model, and resolves every gene to its UniProt accession and sequence.
Monomers with a model in the AlphaFold database get it downloaded, the rest get a
FASTA file to be predicted. Complexes get a multi-FASTA file.`,
	Args:    cobra.ExactArgs(1),
	Example: "  rosusc extract -o proteome iJN1463_reactions.tsv",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := conf.Extract
		if extractFlags.column != "" {
			c.GPRColumn = extractFlags.column
		}
		if extractFlags.organism != "" {
			c.Organism = extractFlags.organism
		}
		if extractFlags.noAFDB {
			c.UseAlphaFDB = false
		}
		ids := extractFlags.ids
		if ids == "" {
			ids = filepath.Join(extractFlags.out, rosusc.IDRelationships)
		}
		opts := proteome.Options{
			Model:   args[0],
			OutDir:  extractFlags.out,
			IDCache: ids,
			Config:  c,
			Verbose: verbose,
		}
		R, err := proteome.Extract(cmd.Context(), opts, remote.New(conf.Remote))
		if err != nil {
			return err
		}
		log.Println(R)
		return nil
	},
}

func init() {
	f := extractCmd.Flags()
	f.StringVarP(&extractFlags.out, "out", "o", ".", "output directory")
	f.StringVar(&extractFlags.ids, "ids", "", "KEGG to UniProt cache (default OUT/"+rosusc.IDRelationships+")")
	f.StringVar(&extractFlags.column, "column", "", "column of the GPR rules in MODEL")
	f.StringVar(&extractFlags.organism, "organism", "", "KEGG organism code")
	f.BoolVar(&extractFlags.noAFDB, "no-alphafold-db", false, "do not download models from the AlphaFold database")
	rootCmd.AddCommand(extractCmd)
}
