// SPDX-License-Identifier: MIT
package netlist_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/resnet/netlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangle = `
0 -- 1, 1; 10 V
1 -- 2, 1;
2 -- 0, 1;
`

func solveText(t *testing.T, text string) (string, string, string) {
	t.Helper()
	edges, err := netlist.Parse(strings.NewReader(text))
	require.NoError(t, err)
	n, err := netlist.Network(edges)
	require.NoError(t, err)
	sol, err := n.Solve()
	require.NoError(t, err)

	var verbose, bare, pots strings.Builder
	require.NoError(t, netlist.Write(&verbose, edges, sol, netlist.Format{}))
	require.NoError(t, netlist.Write(&bare, edges, sol, netlist.Format{NonVerbose: true}))
	require.NoError(t, netlist.Write(&pots, edges, sol, netlist.Format{NonVerbose: true, Potentials: true}))

	return verbose.String(), bare.String(), pots.String()
}

func TestWrite(t *testing.T) {
	verbose, bare, pots := solveText(t, triangle)

	assert.Equal(t, "0 -- 1: 3.33333 A\n1 -- 2: 3.33333 A\n2 -- 0: 3.33333 A\n", verbose)
	assert.Equal(t, "3.33333\n3.33333\n3.33333\n", bare)
	assert.Equal(t, verbose+"0 -- 0 V\n1 -- 6.66667 V\n2 -- 3.33333 V\n", pots,
		"potentials force verbose current lines")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "10", netlist.FormatValue(10))
	assert.Equal(t, "-2.5", netlist.FormatValue(-2.5))
	assert.Equal(t, "1e-05", netlist.FormatValue(0.00001))
	assert.Equal(t, "1.23457e+06", netlist.FormatValue(1234567))
}

func TestCompareValues(t *testing.T) {
	ok, err := netlist.CompareValues(strings.NewReader("1 2.0000000001\n3"), strings.NewReader("1.0 2 3e0"), 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = netlist.CompareValues(strings.NewReader("1 2"), strings.NewReader("1 2 3"), 1e-9)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = netlist.CompareValues(strings.NewReader("1 2"), strings.NewReader("1 2.1"), 1e-9)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = netlist.CompareValues(strings.NewReader("1 A"), strings.NewReader("1"), 1e-9)
	require.ErrorIs(t, err, netlist.ErrSyntax)
}
