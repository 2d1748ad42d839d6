/*
 * doc.go, part of rosusc.
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

/*Package rosusc is the root package of the rosusc toolkit, which annotates the
structural features of proteins that make them susceptible to Reactive Oxygen
Species (ROS) damage. It provides atom, residue and structure types, a PDB reader,
the geometric functions the feature extractors share, and the conventions used
to lay out per-protein files on disk.

	**Pipeline stages**

    extract:     reads the gene-protein-reaction rules of a metabolic model and
                 writes per-target sequence files (package proteome).

    predict:     runs an external structure predictor once per sequence file,
                 skipping finished work (package predict).

    retrieve:    downloads UniProtKB entries (package annotate).

    sites, disulfide, cofactors: per-protein structural features (packages
                 susceptibility, disulfide and cofactor).

    summary:     joins all the features in one table (package summary).

Every stage reads and writes plain files, so stages can be re-run independently.
*/
package rosusc
