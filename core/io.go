// SPDX-License-Identifier: MIT

// Package core: plain-text adjacency-list exchange format.
//
// Layout (one graph per file):
//
//	<nNodes+dummy> <nEdges>
//	[weight] neighbor neighbor ...        ← one line per node, ids 1-based
//	...                                   ← dummy nodes append empty lines
//
// Partition files hold one label per line, length == NNodes(). The format
// serves external tooling and debugging; the detection pipeline never
// requires it.

package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteTo serializes the flushed graph in adjacency-list form. When
// withWeights is true each node line is prefixed by its node weight.
// Dummy nodes (WithDummyNodes) pad the node count and emit empty lines.
//
// Errors: ErrNotFlushed; write failures are returned wrapped.
// Complexity: O(V + E).
func (g *Graph) WriteTo(w io.Writer, withWeights bool) error {
	if !g.flushed {
		return ErrNotFlushed
	}
	bw := bufio.NewWriter(w)

	// Header: padded node count, then edge count.
	if _, err := fmt.Fprintf(bw, "%d %d\n", len(g.weights)+g.dummy, g.be.NEdges()); err != nil {
		return fmt.Errorf("core: write header: %w", err)
	}

	// One adjacency line per real node, neighbor ids 1-based.
	for i := range g.weights {
		var sb strings.Builder
		if withWeights {
			sb.WriteString(strconv.Itoa(g.weights[i]))
		}
		for _, v := range g.be.Neighbors(i) {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v + 1))
		}
		if _, err := fmt.Fprintln(bw, sb.String()); err != nil {
			return fmt.Errorf("core: write node %d: %w", i, err)
		}
	}

	// Dummy padding: isolated nodes, empty adjacency lines.
	for i := 0; i < g.dummy; i++ {
		if _, err := fmt.Fprintln(bw); err != nil {
			return fmt.Errorf("core: write dummy node: %w", err)
		}
	}

	return bw.Flush()
}

// WritePartition serializes the label vector, one label per line.
// Errors: ErrNotFlushed; write failures are returned wrapped.
func (g *Graph) WritePartition(w io.Writer) error {
	if !g.flushed {
		return ErrNotFlushed
	}
	bw := bufio.NewWriter(w)
	for _, label := range g.part {
		if _, err := fmt.Fprintln(bw, label); err != nil {
			return fmt.Errorf("core: write partition: %w", err)
		}
	}

	return bw.Flush()
}

// ReadPartition replaces the label vector with one label per input line.
// The input must contain exactly NNodes() parseable integer lines.
//
// Errors: ErrNotFlushed, ErrBadPartition (count or syntax mismatch);
// read failures are returned wrapped.
func (g *Graph) ReadPartition(r io.Reader) error {
	if !g.flushed {
		return ErrNotFlushed
	}
	sc := bufio.NewScanner(r)
	labels := make([]int, 0, len(g.part))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue // tolerate trailing blank lines
		}
		label, err := strconv.Atoi(line)
		if err != nil {
			return fmt.Errorf("core: partition line %d %q: %w", len(labels)+1, line, ErrBadPartition)
		}
		labels = append(labels, label)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("core: read partition: %w", err)
	}
	if len(labels) != len(g.part) {
		return fmt.Errorf("core: got %d labels for %d nodes: %w", len(labels), len(g.part), ErrBadPartition)
	}
	copy(g.part, labels)

	return nil
}
