/*
 * predict.go, part of rosusc.
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
	"os"

	"github.com/spf13/cobra"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/idmap"
	"github.com/pputida/rosusc/predict"
)

var predictCmd = &cobra.Command{
	Use:   "predict TARGET_DIR OUTPUT_DIR monomer|multimer",
	Short: "Predict the structures of the FASTA files in a directory",
	Long: `
Runs the configured prediction program once for every FASTA file in TARGET_DIR
whose prediction is not already in OUTPUT_DIR. The standard error of each run is
kept in OUTPUT_DIR/NAME/Error_NAME.txt.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := rosusc.ParseKind(args[2])
		if err != nil {
			return err
		}
		D := predict.NewDriver(conf.Predict)
		D.Verbose = verbose
		if verbose {
			D.Stdout = os.Stderr
		}
		R, err := D.Run(cmd.Context(), args[0], args[1], kind)
		if R != nil {
			log.Println(R)
		}
		return err
	},
}

var collectCmd = &cobra.Command{
	Use:   "collect ROOT monomer|multimer",
	Short: "Keep only the best ranked model (and its ipTM) of each prediction",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := rosusc.ParseKind(args[1])
		if err != nil {
			return err
		}
		n, err := predict.CollectAll(args[0], kind, verbose)
		if err != nil {
			return err
		}
		log.Printf("%d predictions collected", n)
		return nil
	},
}

var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Rename and move structure files into the per-protein layout",
}

var organizeRankedCmd = &cobra.Command{
	Use:   "ranked ROOT",
	Short: "Rename ROOT/NAME/ranked_0.pdb to ROOT/NAME/NAME.pdb",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := predict.RenameRanked(args[0])
		if err != nil {
			return err
		}
		log.Printf("%d models renamed", n)
		return nil
	},
}

var organizeSubfoldersCmd = &cobra.Command{
	Use:   "subfolders DIR",
	Short: "Move every DIR/NAME.pdb to DIR/NAME/NAME.pdb",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := predict.Subfolders(args[0])
		if err != nil {
			return err
		}
		log.Printf("%d structures moved", n)
		return nil
	},
}

var organizeIDs string

var organizeUniProtCmd = &cobra.Command{
	Use:   "uniprot DIR",
	Short: "Rename DIR/UNIPROT.pdb files to DIR/KEGG.pdb",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := idmap.Load(organizeIDs)
		if err != nil {
			return err
		}
		n, err := predict.RenameByUniProt(args[0], ids)
		if err != nil {
			return err
		}
		log.Printf("%d structures renamed", n)
		return nil
	},
}

func init() {
	organizeUniProtCmd.Flags().StringVar(&organizeIDs, "ids", rosusc.IDRelationships, "KEGG to UniProt map")
	organizeCmd.AddCommand(organizeRankedCmd, organizeSubfoldersCmd, organizeUniProtCmd)
	rootCmd.AddCommand(predictCmd, collectCmd, organizeCmd)
}
