/*
 * doc.go, part of godesc.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package desc computes fixed-length numerical descriptors for the 3D interaction
between a small-molecule ligand and a protein, to be fed to statistical scoring
functions that predict binding affinity.



	**godesc Capabilities**


    Classifies atoms of a molecule into typed groups, by atomic number, by
	Sybyl-like atom type labels, or by AutoDock4 force-field types with
	chemical refinements (aromaticity, donor/acceptor character).

    Tallies close contacts between protein and ligand atom groups, binned
	into one or several distance shells, producing one count per
	(protein type, ligand type, shell) combination in a fixed, reproducible
	column order.

    Batches the computation over sequences of ligands into a matrix, one row
	per ligand, processing ligands concurrently while keeping the input order.

    Wraps arbitrary per-ligand scoring functions into the same build contract,
	with dense or sparse (CSR) output.

    Composes several descriptor sources (close contacts, pose-scoring terms,
	external property predictors, normal-mode analysis results...) into a
	single concatenated feature vector per ligand.

    Descriptor configurations survive process boundaries: every descriptor is
	JSON-(de)serializable from its construction arguments alone, and built
	matrices can be stored in a zstd-compressed container.

The molecule reading/writing itself is out of the scope of this library; atoms
arrive as already-parsed attribute tables (see Atom and Mol). goChem can be
used to produce them from PDB or XYZ files.
*/
package desc
