/*
 * features.go, part of rosusc.
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
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/annotate"
	"github.com/pputida/rosusc/cofactor"
	"github.com/pputida/rosusc/disulfide"
	"github.com/pputida/rosusc/idmap"
	"github.com/pputida/rosusc/remote"
	"github.com/pputida/rosusc/susceptibility"
)

var retrieveIDs string

var retrieveCmd = &cobra.Command{
	Use:   "retrieve ROOT monomer|multimer",
	Short: "Download the UniProt entry of every protein under ROOT",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := rosusc.ParseKind(args[1])
		if err != nil {
			return err
		}
		return retrieve(cmd.Context(), args[0], kind, retrieveIDs)
	},
}

func retrieve(ctx context.Context, root string, kind rosusc.Kind, idfile string) error {
	ids, err := idmap.Load(idfile)
	if err != nil {
		return err
	}
	R, err := annotate.Retrieve(ctx, root, kind, ids, remote.New(conf.Remote), verbose)
	if err != nil {
		return err
	}
	log.Println(R)
	return nil
}

var sitesCmd = &cobra.Command{
	Use:   "sites ROOT monomer|multimer",
	Short: "Score the ROS susceptible residues near the functional sites",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := rosusc.ParseKind(args[1])
		if err != nil {
			return err
		}
		return sites(args[0], kind)
	},
}

func sites(root string, kind rosusc.Kind) error {
	sc := &susceptibility.Scorer{Residues: conf.Sites.Residues, Verbose: verbose}
	R, err := sc.Run(root, kind)
	if err != nil {
		return err
	}
	log.Println(R)
	return nil
}

var disulfideCmd = &cobra.Command{
	Use:   "disulfide ROOT",
	Short: "Find the disulfide bonds of the monomers under ROOT",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return bonds(args[0])
	},
}

func bonds(root string) error {
	F := disulfide.NewFinder(conf.Disulfide)
	F.Verbose = verbose
	R, err := F.Run(root)
	if err != nil {
		return err
	}
	log.Println(R)
	return nil
}

var cofactorsOut string

var cofactorsCmd = &cobra.Command{
	Use:   "cofactors ROOT monomer|multimer",
	Short: "List the transition metal cofactors of the proteins under ROOT",
	Long: `
Looks up the formula of every ChEBI cofactor in the UniProt entries and keeps
those with a transition metal. The chemical table is set in the configuration
(cofactor.chebi_table).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := rosusc.ParseKind(args[1])
		if err != nil {
			return err
		}
		return cofactors(args[0], kind, cofactorsOut)
	},
}

//cofactorsFile is the default output of the cofactor stage for root.
func cofactorsFile(root string, kind rosusc.Kind) string {
	if kind == rosusc.Multimer {
		return filepath.Join(root, rosusc.ComplexCofFile)
	}
	return filepath.Join(root, rosusc.CofactorsFile)
}

func cofactors(root string, kind rosusc.Kind, out string) error {
	chebi, err := cofactor.ReadTable(conf.Cofactor.ChEBITable)
	if err != nil {
		return fmt.Errorf("reading ChEBI table: %w", err)
	}
	var aux cofactor.Table
	if conf.Cofactor.ExtraTable != "" {
		if aux, err = cofactor.ReadTable(conf.Cofactor.ExtraTable); err != nil {
			return fmt.Errorf("reading auxiliary table: %w", err)
		}
	}
	F := cofactor.NewFinder(chebi, aux, conf.Cofactor.Metals)
	if out == "" {
		out = cofactorsFile(root, kind)
	}
	var v interface{}
	var n int
	if kind == rosusc.Multimer {
		m, err := F.Complexes(root)
		if err != nil {
			return err
		}
		v, n = m, len(m)
	} else {
		m, err := F.Monomers(root)
		if err != nil {
			return err
		}
		v, n = m, len(m)
	}
	if err := cofactor.WriteJSON(out, v); err != nil {
		return err
	}
	log.Printf("%d entries with transition metal cofactors written to %s", n, out)
	return nil
}

func init() {
	retrieveCmd.Flags().StringVar(&retrieveIDs, "ids", rosusc.IDRelationships, "KEGG to UniProt map")
	cofactorsCmd.Flags().StringVarP(&cofactorsOut, "out", "o", "", "output file (default ROOT/"+rosusc.CofactorsFile+" or ROOT/"+rosusc.ComplexCofFile+")")
	rootCmd.AddCommand(retrieveCmd, sitesCmd, disulfideCmd, cofactorsCmd)
}
