// Package netlist reads and writes the plain-text edge-list format of the
// resnet tools.
//
// Input grammar (whitespace, including newlines, is insignificant; '#'
// starts a comment that runs to the end of the line):
//
//	edge := uint "--" uint "," float [ ";" [ float "V" ] ]
//
// For example:
//
//	0 -- 1, 4.0; 10 V   # 4 Ω with a 10 V source acting from 0 to 1
//	1 -- 2, 0;           # ideal wire
//	2 -- 0, 2.5
//
// Output, one line per input edge in input order:
//
//	0 -- 1: 1.25 A       (verbose)
//	1.25                 (non-verbose)
//
// followed, when potentials are requested, by one "n -- V V" line per node in
// ascending id order.
package netlist
