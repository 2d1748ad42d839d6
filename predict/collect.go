/*
 * collect.go, part of rosusc.
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

package predict

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pputida/rosusc"
)

//Errors returned by Collect. The prediction folder is cleaned up anyway.
var (
	ErrNoRanked  = errors.New("no " + rosusc.RankedModel + " in prediction")
	ErrNoRanking = errors.New("no usable " + rosusc.RankingDebug + " in prediction")
)

//ranking is the part of the prediction ranking file we need. Multimer
//predictions rank models by "iptm+ptm", a blend of the interface and global
//scores; only some versions also list the pure "iptm".
type ranking struct {
	Order []string           `json:"order"`
	IPTM  map[string]float64 `json:"iptm"`
}

//bestIPTM returns the best ranked model and its interface score. The model
//is also returned when its score is missing.
//TODO: read "iptm" from result_{model}.pkl when the ranking file lacks it.
func bestIPTM(name string) (string, float64, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrNoRanking, err)
	}
	var r ranking
	if err := json.Unmarshal(data, &r); err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrNoRanking, err)
	}
	if len(r.Order) == 0 {
		return "", 0, fmt.Errorf("%w: empty model order", ErrNoRanking)
	}
	best := r.Order[0]
	if v, ok := r.IPTM[best]; ok {
		return best, v, nil
	}
	return best, 0, fmt.Errorf("%w: no ipTM for model %s", ErrNoRanking, best)
}

//Collect reduces the prediction in dir to the best ranked model and the error log
//of the run. For multimers it also writes the interface score of the best model to
//{name}_ipTM.txt. Every other file or folder in dir is deleted, even when the
//ranked model or the score are missing, in which case the error says what was missing.
//A multimer whose ranking lacks the ipTM keeps the ranking and the results of its
//best model.
func Collect(dir string, kind rosusc.Kind) error {
	name := filepath.Base(filepath.Clean(dir))
	L := rosusc.Layout{Root: filepath.Dir(filepath.Clean(dir))}
	keep := map[string]bool{filepath.Base(L.ErrorLog(name)): true}
	var ret error
	if rosusc.Exists(L.Ranked(name)) {
		keep[rosusc.RankedModel] = true
	} else {
		ret = ErrNoRanked
	}
	ranking := filepath.Join(dir, rosusc.RankingDebug)
	if kind == rosusc.Multimer && ret == nil && !rosusc.Exists(ranking) && rosusc.Exists(L.IPTM(name)) {
		//already collected
		keep[filepath.Base(L.IPTM(name))] = true
	} else if kind == rosusc.Multimer && ret == nil {
		model, iptm, err := bestIPTM(ranking)
		if err != nil {
			ret = err
			if model != "" {
				//the score can still be read from the model results.
				keep[rosusc.RankingDebug] = true
				keep["result_"+model+".pkl"] = true
			}
		} else {
			if err := os.WriteFile(L.IPTM(name), []byte(strconv.FormatFloat(iptm, 'f', -1, 64)), 0o644); err != nil {
				return err
			}
			keep[filepath.Base(L.IPTM(name))] = true
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return rosusc.NewError(err.Error(), dir, "Collect", false)
	}
	for _, e := range entries {
		if keep[e.Name()] {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	if ret != nil {
		return fmt.Errorf("%s: %w", name, ret)
	}
	return nil
}

//CollectAll runs Collect on every folder under root. Problems with single
//predictions are logged; the number of complete predictions is returned.
func CollectAll(root string, kind rosusc.Kind, verbose bool) (int, error) {
	subs, err := rosusc.Subdirs(root)
	if err != nil {
		return 0, err
	}
	ok := 0
	for _, s := range subs {
		if verbose {
			log.Printf("Processing prediction %s", s)
		}
		if err := Collect(filepath.Join(root, s), kind); err != nil {
			log.Printf("Error: %v", err)
			continue
		}
		ok++
	}
	return ok, nil
}
