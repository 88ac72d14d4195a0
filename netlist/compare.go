// SPDX-License-Identifier: MIT

package netlist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/resnet/matrix"
)

// ReadValues reads whitespace-separated numbers from r.
func ReadValues(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var out []float64
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %q: %w", len(out)+1, sc.Text(), ErrSyntax)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("netlist: read: %w", err)
	}

	return out, nil
}

// CompareValues reports whether a and b hold the same number of values and
// every pair is roughly equal under eps. Non-numeric words are ErrSyntax.
func CompareValues(a, b io.Reader, eps float64) (bool, error) {
	va, err := ReadValues(a)
	if err != nil {
		return false, err
	}
	vb, err := ReadValues(b)
	if err != nil {
		return false, err
	}
	if len(va) != len(vb) {
		return false, nil
	}
	for i := range va {
		if !matrix.RoughlyEqual(va[i], vb[i], eps) {
			return false, nil
		}
	}

	return true, nil
}
