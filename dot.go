// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDot writes the dependency graph of ops in Graphviz dot format. Nodes
// are registers, edges go from the registers read by an op to the register it
// writes.
func WriteDot(w io.Writer, ops []Op) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph {")
	for _, op := range ops {
		switch op.Code {
		case OpNand:
			fmt.Fprintf(bw, "\tr%d [label=\"%d nand\"];\n", op.Out, op.Out)
			for _, in := range op.inputs() {
				fmt.Fprintf(bw, "\tr%d -> r%d;\n", in, op.Out)
			}
		case OpSet:
			fmt.Fprintf(bw, "\tr%d [label=\"%d = %v\", shape=box];\n", op.Out, op.Out, op.Value)
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
