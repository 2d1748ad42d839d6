/*
 * summary.go, part of rosusc.
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

	"github.com/spf13/cobra"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/cofactor"
	"github.com/pputida/rosusc/idmap"
	"github.com/pputida/rosusc/summary"
)

var summaryFlags struct {
	ids       string
	cofactors string
	out       string
	xlsx      bool
}

var summaryCmd = &cobra.Command{
	Use:   "summary ROOT",
	Short: "Write one table with the results for the monomers under ROOT",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return summarize(args[0])
	},
}

var pipelineFlags struct {
	skipRetrieve  bool
	skipCofactors bool
}

var pipelineCmd = &cobra.Command{
	Use:   "pipeline ROOT",
	Short: "Run retrieve, sites, disulfide, cofactors and summary on the monomers under ROOT",
	Long: `
Runs the feature stages in order on ROOT, a folder of monomer predictions, and
writes the summary. Stages skip the proteins they already processed, so the
command can be run again after an interruption.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]
		if !pipelineFlags.skipRetrieve {
			log.Println("Retrieving UniProt entries ...")
			if err := retrieve(cmd.Context(), root, rosusc.Monomer, summaryFlags.ids); err != nil {
				return err
			}
		}
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		log.Println("Scoring susceptible sites ...")
		if err := sites(root, rosusc.Monomer); err != nil {
			return err
		}
		log.Println("Finding disulfide bonds ...")
		if err := bonds(root); err != nil {
			return err
		}
		if !pipelineFlags.skipCofactors {
			log.Println("Looking for cofactors ...")
			if err := cofactors(root, rosusc.Monomer, summaryFlags.cofactors); err != nil {
				return err
			}
		}
		return summarize(root)
	},
}

func summarize(root string) error {
	ids, err := idmap.Load(summaryFlags.ids)
	if err != nil {
		return err
	}
	cfile := summaryFlags.cofactors
	if cfile == "" {
		cfile = cofactorsFile(root, rosusc.Monomer)
	}
	var cofs map[string][]cofactor.Cofactor
	if rosusc.Exists(cfile) {
		if cofs, err = cofactor.ReadMonomers(cfile); err != nil {
			return err
		}
	} else {
		log.Printf("No cofactor file %s, the cofactor column will be empty", cfile)
	}
	rows, err := summary.Build(summary.Options{Root: root, IDs: ids, Cofactors: cofs, Verbose: verbose})
	if err != nil {
		return err
	}
	out := summaryFlags.out
	if err := summary.WriteTSVFile(out+".tsv", rows); err != nil {
		return err
	}
	if summaryFlags.xlsx {
		if err := summary.WriteXLSX(out+".xlsx", rows); err != nil {
			return err
		}
	}
	log.Printf("Summary of %d proteins written to %s", len(rows), out)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{summaryCmd, pipelineCmd} {
		f := c.Flags()
		f.StringVar(&summaryFlags.ids, "ids", rosusc.IDRelationships, "KEGG to UniProt map")
		f.StringVar(&summaryFlags.cofactors, "cofactors", "", "monomer cofactor file (default ROOT/"+rosusc.CofactorsFile+")")
		f.StringVarP(&summaryFlags.out, "out", "o", rosusc.SummaryFile, "output name, without extension")
		f.BoolVar(&summaryFlags.xlsx, "xlsx", false, "also write an Excel workbook")
	}
	pipelineCmd.Flags().BoolVar(&pipelineFlags.skipRetrieve, "skip-retrieve", false, "do not download missing UniProt entries")
	pipelineCmd.Flags().BoolVar(&pipelineFlags.skipCofactors, "skip-cofactors", false, "do not run the cofactor stage")
	rootCmd.AddCommand(summaryCmd, pipelineCmd)
}
