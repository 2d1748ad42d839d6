/*
 * config.go, part of rosusc.
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

//Package config holds the tunable parameters of the pipeline. A Config starts from
//Default() and can be overridden by a YAML file, then by command line flags.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

//Config is the configuration of all the pipeline stages.
type Config struct {
	Extract   Extract   `yaml:"extract"`
	Remote    Remote    `yaml:"remote"`
	Predict   Predict   `yaml:"predict"`
	Sites     Sites     `yaml:"sites"`
	Disulfide Disulfide `yaml:"disulfide"`
	Cofactor  Cofactor  `yaml:"cofactor"`
}

//Extract configures the ID extractor.
type Extract struct {
	IDPattern   string `yaml:"id_pattern"`
	GPRColumn   string `yaml:"gpr_column"`
	Organism    string `yaml:"organism"`
	Plasmid     string `yaml:"plasmid"`
	MaxClauses  int    `yaml:"max_clauses"`
	UseAlphaFDB bool   `yaml:"use_alphafold_db"`
}

//Remote configures the REST clients.
type Remote struct {
	KEGG          string        `yaml:"kegg"`
	UniProt       string        `yaml:"uniprot"`
	NCBI          string        `yaml:"ncbi"`
	AlphaFold     string        `yaml:"alphafold"`
	AlphaFoldVer  int           `yaml:"alphafold_version"`
	RatePerSecond float64       `yaml:"rate_per_second"`
	Timeout       time.Duration `yaml:"timeout"`
}

//Predict configures the external structure prediction program.
//Command and Args are expanded as text/template strings with the fields
//Fasta, Output, Preset and Name.
type Predict struct {
	Command        string   `yaml:"command"`
	Args           []string `yaml:"args"`
	MonomerPreset  string   `yaml:"monomer_preset"`
	MultimerPreset string   `yaml:"multimer_preset"`
}

//Sites configures the susceptibility scores.
type Sites struct {
	Residues string `yaml:"residues"`
}

//Disulfide configures the geometric criteria for disulfide bonds, distances in
//angstroms and angles in degrees.
type Disulfide struct {
	MinDist     float64 `yaml:"min_dist"`
	MaxDist     float64 `yaml:"max_dist"`
	MinDihedral float64 `yaml:"min_dihedral"`
	MaxDihedral float64 `yaml:"max_dihedral"`
	MinPLDDT    float64 `yaml:"min_plddt"`
	MinQMEAN    float64 `yaml:"min_qmean"`
	MaxBfactor  float64 `yaml:"max_bfactor"`
}

//Cofactor configures the cofactor stage.
type Cofactor struct {
	ChEBITable string   `yaml:"chebi_table"`
	ExtraTable string   `yaml:"extra_table"`
	Metals     []string `yaml:"metals"`
}

//TransitionMetals are the elements of the d-block (plus lutetium and lawrencium).
var TransitionMetals = []string{
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
}

//Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Extract: Extract{
			IDPattern:   `PP_\d{4}|pWW0_\d+`,
			GPRColumn:   "GPR",
			Organism:    "ppu",
			Plasmid:     "NC_003350.1",
			MaxClauses:  4096,
			UseAlphaFDB: true,
		},
		Remote: Remote{
			KEGG:          "https://rest.kegg.jp",
			UniProt:       "https://rest.uniprot.org",
			NCBI:          "https://eutils.ncbi.nlm.nih.gov/entrez/eutils",
			AlphaFold:     "https://alphafold.ebi.ac.uk",
			AlphaFoldVer:  4,
			RatePerSecond: 3,
			Timeout:       60 * time.Second,
		},
		Predict: Predict{
			Command: "run_alphafold.sh",
			Args: []string{
				"--fasta_paths={{.Fasta}}",
				"--output_dir={{.Output}}",
				"--model_preset={{.Preset}}",
				"--max_template_date=2100-01-01",
			},
			MonomerPreset:  "monomer",
			MultimerPreset: "multimer",
		},
		Sites: Sites{Residues: "CMYWHLRPT"},
		Disulfide: Disulfide{
			MinDist:     1.5,
			MaxDist:     2.5,
			MinDihedral: 84,
			MaxDihedral: 96,
			MinPLDDT:    50,
			MinQMEAN:    0.7,
			MaxBfactor:  30,
		},
		Cofactor: Cofactor{
			ChEBITable: "chemical_data.tsv.gz",
			Metals:     append([]string(nil), TransitionMetals...),
		},
	}
}

//Load reads the YAML file name over the defaults. An empty name returns the defaults.
func Load(name string) (*Config, error) {
	c := Default()
	if name == "" {
		return c, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", name, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}
	return c, nil
}

//Validate checks that the values are usable.
func (c *Config) Validate() error {
	if _, err := regexp.Compile(c.Extract.IDPattern); err != nil {
		return fmt.Errorf("id_pattern: %w", err)
	}
	if c.Remote.RatePerSecond <= 0 {
		return fmt.Errorf("rate_per_second must be positive, got %g", c.Remote.RatePerSecond)
	}
	d := c.Disulfide
	if d.MinDist > d.MaxDist || d.MinDihedral > d.MaxDihedral {
		return fmt.Errorf("disulfide ranges are inverted")
	}
	if c.Sites.Residues == "" {
		return fmt.Errorf("no susceptible residues given")
	}
	return nil
}

//IDRegexp returns the compiled gene identifier pattern.
func (e Extract) IDRegexp() *regexp.Regexp {
	return regexp.MustCompile(e.IDPattern)
}

//Preset returns the model preset for a multimer or monomer prediction.
func (p Predict) Preset(multimer bool) string {
	if multimer {
		return p.MultimerPreset
	}
	return p.MonomerPreset
}
