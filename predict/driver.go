/*
 * driver.go, part of rosusc.
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

//Package predict drives the external structure prediction program over a folder of
//FASTA files and tidies up what it leaves behind: it keeps the best ranked model (and
//the interface confidence of complexes), and renames and moves structures into the
//one-folder-per-protein layout the feature stages expect.
package predict

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/pputida/rosusc"
	"github.com/pputida/rosusc/config"
)

//Job holds the values available to the command templates.
type Job struct {
	Fasta  string //path of the FASTA file
	Output string //output directory; the program writes in Output/Name
	Preset string //model preset for the kind of prediction
	Name   string //FASTA file name without extension
}

//Driver runs the prediction program once per FASTA file.
type Driver struct {
	Command string
	Args    []string
	Config  config.Predict
	Stdout  io.Writer //where the program output goes; nil discards it
	Verbose bool
}

//NewDriver returns a driver for the program configured in c.
func NewDriver(c config.Predict) *Driver {
	return &Driver{Command: c.Command, Args: c.Args, Config: c}
}

//RunReport counts what Run did.
type RunReport struct {
	Total   int
	Skipped int
	Done    int
	Failed  []string
}

func (R *RunReport) String() string {
	return fmt.Sprintf("%d FASTA files: %d predicted, %d already present, %d failed", R.Total, R.Done, R.Skipped, len(R.Failed))
}

func isDir(name string) bool {
	fi, err := os.Stat(name)
	return err == nil && fi.IsDir()
}

//Run predicts every FASTA file in targetDir whose result is not already in outDir.
//The standard error of each prediction is saved in outDir/{name}/Error_{name}.txt.
//A failed prediction is logged and the loop goes on; only bad arguments and a
//cancelled context stop it.
func (D *Driver) Run(ctx context.Context, targetDir, outDir string, kind rosusc.Kind) (*RunReport, error) {
	for _, d := range []string{targetDir, outDir} {
		if !isDir(d) {
			return nil, rosusc.NewError(rosusc.ErrNotADirectory, d, "Run", true)
		}
	}
	tmpls := make([]*template.Template, len(D.Args)+1)
	for i, a := range append([]string{D.Command}, D.Args...) {
		t, err := template.New("arg").Option("missingkey=error").Parse(a)
		if err != nil {
			return nil, rosusc.NewError(fmt.Sprintf("bad prediction command template %q: %v", a, err), "", "Run", true)
		}
		tmpls[i] = t
	}
	fastas, err := filepath.Glob(filepath.Join(targetDir, "*.fasta"))
	if err != nil {
		return nil, err
	}
	sort.Strings(fastas)
	R := &RunReport{Total: len(fastas)}
	L := rosusc.Layout{Root: outDir}
	for _, fasta := range fastas {
		if err := ctx.Err(); err != nil {
			return R, err
		}
		name := strings.TrimSuffix(filepath.Base(fasta), ".fasta")
		if rosusc.Exists(L.Ranked(name)) || rosusc.Exists(L.Structure(name)) {
			if D.Verbose {
				log.Printf("Prediction for %s already exists, skipping", name)
			}
			R.Skipped++
			continue
		}
		job := Job{Fasta: fasta, Output: outDir, Preset: D.Config.Preset(kind == rosusc.Multimer), Name: name}
		argv, err := expand(tmpls, job)
		if err != nil {
			return R, err
		}
		log.Printf("Predicting %s", name)
		if err := D.run(ctx, argv, L.ErrorLog(name)); err != nil {
			if ctx.Err() != nil {
				return R, ctx.Err()
			}
			log.Printf("Prediction of %s failed: %v (see %s)", name, err, L.ErrorLog(name))
			R.Failed = append(R.Failed, name)
			continue
		}
		R.Done++
	}
	return R, nil
}

func expand(tmpls []*template.Template, job Job) ([]string, error) {
	argv := make([]string, len(tmpls))
	for i, t := range tmpls {
		var b bytes.Buffer
		if err := t.Execute(&b, job); err != nil {
			return nil, err
		}
		argv[i] = b.String()
	}
	return argv, nil
}

//run executes argv with the standard error going to errlog.
func (D *Driver) run(ctx context.Context, argv []string, errlog string) error {
	if err := os.MkdirAll(filepath.Dir(errlog), 0o755); err != nil {
		return err
	}
	f, err := os.Create(errlog)
	if err != nil {
		return err
	}
	defer f.Close()
	command := exec.CommandContext(ctx, argv[0], argv[1:]...)
	command.Stderr = f
	command.Stdout = D.Stdout
	return command.Run()
}
