/*
 * root.go, part of rosusc.
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
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/config"
)

var (
	cfgFile string
	verbose bool
	conf    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "rosusc",
	Short: "ROS susceptibility of a proteome from its predicted structures",
	Long: `
rosusc extracts the proteome of a metabolic model, drives the structure
predictions and computes, for each protein, the susceptible residues near its
functional sites, its disulfide bonds and its transition metal cofactors.
Each command is one stage; stages communicate through files.`,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		//arguments were already checked, errors from here on are not usage errors.
		cmd.SilenceUsage = true
		var err error
		conf, err = config.Load(cfgFile)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML configuration file (built-in defaults if not given)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report every protein")
}

//explain returns the file and function trail of err if it comes from the rosusc
//packages, or an empty string.
func explain(err error) string {
	var e rosusc.Error
	if !errors.As(err, &e) {
		return ""
	}
	s := strings.Join(e.Decorate(""), " <- ")
	if e.FileName() != "" {
		s = e.FileName() + ": " + s
	}
	if e.Critical() {
		s += " [critical]"
	}
	return s
}
