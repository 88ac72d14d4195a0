// SPDX-License-Identifier: MIT

// Package chart renders solved networks as bar charts with gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/resnet/circuit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNothingToPlot is returned for a solution without nodes.
var ErrNothingToPlot = errors.New("chart: solution has no nodes")

// Default canvas size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// barWidth is the width of one bar.
var barWidth = vg.Points(16)

// Potentials builds a bar chart with one bar per node, ordered by id.
func Potentials(sol circuit.Solution) (*plot.Plot, error) {
	if len(sol.Potentials) == 0 {
		return nil, ErrNothingToPlot
	}
	nodes := make([]uint, 0, len(sol.Potentials))
	for id := range sol.Potentials {
		nodes = append(nodes, id)
	}
	slices.Sort(nodes)

	values := make(plotter.Values, len(nodes))
	names := make([]string, len(nodes))
	for i, id := range nodes {
		values[i] = sol.Potentials[id]
		names[i] = strconv.FormatUint(uint64(id), 10)
	}

	return bars("Node potentials", "node", "V", values, names)
}

// Currents builds a bar chart with one bar per edge, in the given order,
// as seen from each edge's First endpoint.
func Currents(edges []circuit.Edge, sol circuit.Solution) (*plot.Plot, error) {
	if len(edges) == 0 {
		return nil, ErrNothingToPlot
	}
	values := make(plotter.Values, len(edges))
	names := make([]string, len(edges))
	for i, e := range edges {
		values[i], _ = sol.Current(e.First, e.Second)
		names[i] = fmt.Sprintf("%d-%d", e.First, e.Second)
	}

	return bars("Edge currents", "edge", "A", values, names)
}

func bars(title, xlabel, ylabel string, values plotter.Values, names []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	b, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	b.Color = color.RGBA{R: 51, G: 102, B: 204, A: 255}
	b.LineStyle.Width = vg.Length(0)
	p.Add(b)
	p.NominalX(names...)

	return p, nil
}

// Write encodes p in the given format ("png", "svg", "pdf", ...).
func Write(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: write: %w", err)
	}

	return nil
}

// SavePotentials renders the potential chart to path. The image format
// follows the file extension.
func SavePotentials(path string, sol circuit.Solution) error {
	p, err := Potentials(sol)
	if err != nil {
		return err
	}
	if filepath.Ext(path) == "" {
		return fmt.Errorf("chart: %s: missing file extension", path)
	}
	if err := p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}

	return nil
}
