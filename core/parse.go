package core

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	strict bool
}

// WithStrict makes Parse fail with ErrMalformedLine on the first edge line it
// would otherwise filter out.
func WithStrict() ParseOption {
	return func(c *parseConfig) { c.strict = true }
}

// Parse reads the "N M" / "u v weight" text format into a Graph.
//
// Steps:
//  1. Blank lines are ignored everywhere; fields are split on any whitespace.
//  2. The first non-blank line is the header. N must be a positive integer,
//     else ErrInvalidNodeCount. M is recorded when it is an integer and
//     otherwise ignored.
//  3. Each further line needs at least three fields: integer endpoints in
//     1..N and a finite weight. Extra fields are ignored.
//  4. Lines that fail step 3 are skipped and counted (Graph.Skipped), or,
//     with WithStrict, reported as ErrMalformedLine with their line number.
//
// Complexity: O(size of input) time, O(M) space.
func Parse(r io.Reader, opts ...ParseOption) (*Graph, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		n, declared = 0, -1
		haveHeader  bool
		edges       []Edge
		skipped     int
		lineNo      int
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if !haveHeader {
			haveHeader = true
			v, err := strconv.Atoi(fields[0])
			if err != nil || v < 1 {
				return nil, fmt.Errorf("Parse: line %d: N=%q: %w", lineNo, fields[0], ErrInvalidNodeCount)
			}
			n = v
			if len(fields) > 1 {
				if m, err := strconv.Atoi(fields[1]); err == nil {
					declared = m
				}
			}
			continue
		}

		e, reason := parseEdge(fields, n)
		if reason != "" {
			if cfg.strict {
				return nil, fmt.Errorf("Parse: line %d: %s: %w", lineNo, reason, ErrMalformedLine)
			}
			skipped++
			continue
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: read: %w", err)
	}
	if !haveHeader {
		return nil, fmt.Errorf("Parse: %w", ErrMissingHeader)
	}

	return NewGraph(n, edges, WithDeclaredEdges(declared), withSkipped(skipped))
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts ...ParseOption) (*Graph, error) {
	return Parse(strings.NewReader(s), opts...)
}

// parseEdge converts one edge line. A non-empty reason means the line is
// unusable.
func parseEdge(fields []string, n int) (Edge, string) {
	if len(fields) < 3 {
		return Edge{}, fmt.Sprintf("want 3 fields, got %d", len(fields))
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return Edge{}, fmt.Sprintf("endpoint %q is not an integer", fields[0])
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return Edge{}, fmt.Sprintf("endpoint %q is not an integer", fields[1])
	}
	if u < 1 || u > n || v < 1 || v > n {
		return Edge{}, fmt.Sprintf("endpoints (%d, %d) outside 1..%d", u, v, n)
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return Edge{}, fmt.Sprintf("weight %q is not a finite number", fields[2])
	}

	return Edge{U: u, V: v, Weight: w}, ""
}

// Format writes g in the text format accepted by Parse. The header carries
// the actual edge count.
func Format(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.N(), g.M()); err != nil {
		return fmt.Errorf("Format: %w", err)
	}
	for _, e := range g.Edges() {
		weight := strconv.FormatFloat(e.Weight, 'g', -1, 64)
		if _, err := fmt.Fprintf(bw, "%d %d %s\n", e.U, e.V, weight); err != nil {
			return fmt.Errorf("Format: %w", err)
		}
	}

	return bw.Flush()
}
