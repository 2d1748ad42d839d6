/*
 * alphafold.go, part of rosusc.
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

package remote

import (
	"context"
	"fmt"
	"net/url"
)

//AlphaFoldModel downloads the PDB file of the AlphaFold DB model for the accession acc.
func (C *Client) AlphaFoldModel(ctx context.Context, acc string) ([]byte, error) {
	ver := C.AlphaFoldVer
	if ver <= 0 {
		ver = 4
	}
	u := fmt.Sprintf("%s/files/AF-%s-F1-model_v%d.pdb", C.AlphaFoldURL, url.PathEscape(acc), ver)
	return C.get(ctx, u)
}
