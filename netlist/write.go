// SPDX-License-Identifier: MIT

package netlist

import (
	"bufio"
	"io"
	"slices"
	"strconv"

	"github.com/katalvlaran/resnet/circuit"
)

// Format selects the output layout of Write.
type Format struct {
	// NonVerbose prints bare current values, one per line.
	NonVerbose bool
	// Potentials appends node potentials and forces verbose current lines.
	Potentials bool
}

// FormatValue renders v with six significant digits ("3.33333", "10",
// "1e-05").
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Write prints the current of every edge, in the order given, as seen from
// its First endpoint, then the potentials when requested.
func Write(w io.Writer, edges []circuit.Edge, sol circuit.Solution, f Format) error {
	bw := bufio.NewWriter(w)
	verbose := !f.NonVerbose || f.Potentials

	for _, e := range edges {
		i, _ := sol.Current(e.First, e.Second)
		if verbose {
			bw.WriteString(strconv.FormatUint(uint64(e.First), 10))
			bw.WriteString(" -- ")
			bw.WriteString(strconv.FormatUint(uint64(e.Second), 10))
			bw.WriteString(": ")
			bw.WriteString(FormatValue(i))
			bw.WriteString(" A\n")
			continue
		}
		bw.WriteString(FormatValue(i))
		bw.WriteByte('\n')
	}

	if f.Potentials {
		nodes := make([]uint, 0, len(sol.Potentials))
		for id := range sol.Potentials {
			nodes = append(nodes, id)
		}
		slices.Sort(nodes)
		for _, id := range nodes {
			bw.WriteString(strconv.FormatUint(uint64(id), 10))
			bw.WriteString(" -- ")
			bw.WriteString(FormatValue(sol.Potentials[id]))
			bw.WriteString(" V\n")
		}
	}

	return bw.Flush()
}

// WriteEdges prints edges back in the input grammar, one per line.
func WriteEdges(w io.Writer, edges []circuit.Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		bw.WriteString(strconv.FormatUint(uint64(e.First), 10))
		bw.WriteString(" -- ")
		bw.WriteString(strconv.FormatUint(uint64(e.Second), 10))
		bw.WriteString(", ")
		bw.WriteString(strconv.FormatFloat(e.Resistance, 'g', -1, 64))
		bw.WriteString(";")
		if e.EMF != 0 {
			bw.WriteString(" ")
			bw.WriteString(strconv.FormatFloat(e.EMF, 'g', -1, 64))
			bw.WriteString(" V")
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
