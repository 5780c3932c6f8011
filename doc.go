// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package nandsim compiles logic circuits down to a flat sequence of NAND
operations over a register file, and runs them.

Circuits are described with gates (Nand, Not, And, Or, Nor, Xor, Xnor, Const,
RSLatch, DLatch, HalfAdder, FullAdder, Adder and Group), each one carrying the
register numbers of its inputs and outputs. A Compiler lowers the gates to
primitive ops, allocating registers for internal wires, then schedules the ops
so that every op runs after the ops driving its inputs:

	c := nandsim.NewCompiler(2) // registers 0 and 1 are the inputs
	out := c.Alloc()
	sim, err := c.Compile(nandsim.Xor{A: 0, B: 1, Out: out})
	// ...
	err = sim.Run([]bool{true, false})
	fmt.Println(sim.Register(out)) // true

Each call to Run is one tick: registers that are not inputs keep their value
from the previous tick. Latches are built on feedback loops that the scheduler
cannot order. These loops read some of their own outputs from the previous
tick, so after an input change a latch should be run twice before reading its
output.

The package is not safe for concurrent use.
*/
package nandsim
