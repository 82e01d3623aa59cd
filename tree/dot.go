// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NodeName returns the debug label of n.
func NodeName(n Node) string {
	if named, ok := n.(Named); ok {
		return named.NodeName()
	}
	name := fmt.Sprintf("%T", n)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimPrefix(name, "*")
}

// WriteDOT writes the tree as a Graphviz digraph.
func (t *RenderTree) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph rendertree {")
	fmt.Fprintln(bw, "\tnode [shape=box, fontname=\"Helvetica\"];")
	t.Walk(func(id NodeID, n Node, _ int) bool {
		fmt.Fprintf(bw, "\tn%d [label=%q];\n", id, fmt.Sprintf("%s #%d", NodeName(n), id))
		for _, c := range t.Children(id) {
			fmt.Fprintf(bw, "\tn%d -> n%d;\n", id, c)
		}
		return true
	})
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
