/*
 * geometric.go, part of rosusc.
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

package rosusc

import (
	"math"

	v3 "github.com/pputida/rosusc/v3"
)

//Rad2Deg converts radians to degrees.
const Rad2Deg = 180 / math.Pi

//Distance returns the euclidean distance between the points a and b.
func Distance(a, b *v3.Matrix) float64 {
	d := v3.Zeros(1)
	d.SubVec(a, b)
	return d.Norm(2)
}

//AtomDistance returns the distance between two atoms of S.
func (S *Structure) AtomDistance(a, b *Atom) float64 {
	return Distance(S.Coord(a), S.Coord(b))
}

//Dihedral calculate the dihedral between the points a, b, c, d, where the first plane
//is defined by abc and the second by bcd. The result is in radians, in (-pi,pi].
func Dihedral(a, b, c, d *v3.Matrix) float64 {
	for _, point := range []*v3.Matrix{a, b, c, d} {
		if point == nil || point.NVecs() != 1 {
			panic(v3.ErrShape)
		}
	}
	//bma=b minus a
	bma := v3.Zeros(1)
	cmb := v3.Zeros(1)
	dmc := v3.Zeros(1)
	bmascaled := v3.Zeros(1)
	bma.SubVec(b, a)
	cmb.SubVec(c, b)
	dmc.SubVec(d, c)
	bmascaled.Scale(cmb.Norm(2), bma)
	v2 := v3.Zeros(1)
	v2.Cross(cmb, dmc)
	first := bmascaled.Dot(v2)
	v1 := v3.Zeros(1)
	v1.Cross(bma, cmb)
	second := v1.Dot(v2)
	return math.Atan2(first, second)
}
