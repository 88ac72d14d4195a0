// SPDX-License-Identifier: MIT

package netlist

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/resnet/circuit"
)

// ErrSyntax indicates malformed netlist text. The wrapping error carries the
// line number and what was expected.
var ErrSyntax = errors.New("netlist: syntax error")

// Parse reads every edge from r. The input must hold at least one edge.
//
// Implementation:
//   - Stage 1: Read the whole input (netlists are small).
//   - Stage 2: Scan edges until EOF. After ";" a number may be either the
//     EMF of this edge or the first node of the next one; the scanner reads
//     ahead for the "V" suffix and backtracks when it is missing.
//
// Errors: ErrSyntax (wrapped with the line number), read errors from r.
func Parse(r io.Reader) ([]circuit.Edge, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("netlist: read: %w", err)
	}

	return ParseBytes(src)
}

// ParseBytes is Parse over an in-memory buffer.
func ParseBytes(src []byte) ([]circuit.Edge, error) {
	s := &scanner{src: src, line: 1}
	var edges []circuit.Edge
	for {
		s.skip()
		if s.eof() {
			break
		}
		e, err := s.edge()
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	if len(edges) == 0 {
		return nil, s.errorf("at least one edge")
	}

	return edges, nil
}

// Network inserts edges into a new network, in order. Insert failures are
// reported with the 1-based position of the offending edge.
func Network(edges []circuit.Edge, opts ...circuit.Option) (*circuit.Network, error) {
	n := circuit.NewNetwork(opts...)
	for i, e := range edges {
		if err := n.AddEdge(e); err != nil {
			return nil, fmt.Errorf("netlist: edge %d (%d -- %d): %w", i+1, e.First, e.Second, err)
		}
	}

	return n, nil
}

// scanner is a byte cursor with line tracking and cheap backtracking.
type scanner struct {
	src  []byte
	pos  int
	line int
}

type mark struct{ pos, line int }

func (s *scanner) save() mark     { return mark{s.pos, s.line} }
func (s *scanner) restore(m mark) { s.pos, s.line = m.pos, m.line }
func (s *scanner) eof() bool      { return s.pos >= len(s.src) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}

	return s.src[s.pos]
}

// skip advances over whitespace and comments.
func (s *scanner) skip() {
	for !s.eof() {
		switch c := s.src[s.pos]; c {
		case '\n':
			s.line++
			s.pos++
		case ' ', '\t', '\r', '\f', '\v':
			s.pos++
		case '#':
			for !s.eof() && s.src[s.pos] != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

func (s *scanner) errorf(expected string) error {
	found := "end of input"
	if !s.eof() {
		found = strconv.QuoteRune(rune(s.src[s.pos]))
	}

	return fmt.Errorf("line %d: expected %s, found %s: %w", s.line, expected, found, ErrSyntax)
}

func (s *scanner) expect(c byte) error {
	s.skip()
	if s.peek() != c {
		return s.errorf(strconv.Quote(string(c)))
	}
	s.pos++

	return nil
}

func (s *scanner) digits() int {
	start := s.pos
	for !s.eof() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}

	return s.pos - start
}

func (s *scanner) node() (uint, error) {
	s.skip()
	start := s.pos
	if s.digits() == 0 {
		return 0, s.errorf("node id")
	}
	v, err := strconv.ParseUint(string(s.src[start:s.pos]), 10, 0)
	if err != nil {
		s.pos = start
		return 0, s.errorf("node id that fits in uint")
	}

	return uint(v), nil
}

// number scans [+-]digits[.digits][(e|E)[+-]digits].
func (s *scanner) number() (float64, error) {
	s.skip()
	start := s.pos
	if c := s.peek(); c == '+' || c == '-' {
		s.pos++
	}
	n := s.digits()
	if s.peek() == '.' {
		s.pos++
		n += s.digits()
	}
	if n == 0 {
		s.pos = start
		return 0, s.errorf("number")
	}
	if c := s.peek(); c == 'e' || c == 'E' {
		exp := s.pos
		s.pos++
		if c := s.peek(); c == '+' || c == '-' {
			s.pos++
		}
		if s.digits() == 0 {
			s.pos = exp
		}
	}
	v, err := strconv.ParseFloat(string(s.src[start:s.pos]), 64)
	if err != nil {
		s.pos = start
		return 0, s.errorf("finite number")
	}

	return v, nil
}

// edge scans one edge; the leading whitespace is already skipped.
func (s *scanner) edge() (circuit.Edge, error) {
	var (
		e   circuit.Edge
		err error
	)
	if e.First, err = s.node(); err != nil {
		return e, err
	}
	if err = s.expect('-'); err != nil {
		return e, err
	}
	if err = s.expect('-'); err != nil {
		return e, err
	}
	if e.Second, err = s.node(); err != nil {
		return e, err
	}
	if err = s.expect(','); err != nil {
		return e, err
	}
	if e.Resistance, err = s.number(); err != nil {
		return e, err
	}

	s.skip()
	if s.peek() != ';' {
		return e, nil
	}
	s.pos++

	// Optional "<float> V": a number without the suffix belongs to the next edge.
	m := s.save()
	emf, err := s.number()
	if err != nil {
		s.restore(m)
		return e, nil
	}
	s.skip()
	if s.peek() != 'V' {
		s.restore(m)
		return e, nil
	}
	s.pos++
	e.EMF = emf

	return e, nil
}
