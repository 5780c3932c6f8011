// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/nandsim"
)

// AdderN returns a N-bits adder with newly allocated outputs.
//
//	Inputs: a[N], b[N]
//	Outputs: Sum[N], Carry
func AdderN(c *nandsim.Compiler, a, b []int) nandsim.Adder {
	checkWidth("AdderN", len(a), b)
	return nandsim.Adder{
		A:     a,
		B:     b,
		Sum:   c.AllocN(len(a)),
		Carry: c.Alloc(),
	}
}

// Inc returns a N-bits incrementer.
//
//	Inputs: in[N]
//	Outputs: out[N]
//	Function: out = in + 1, overflow is discarded.
func Inc(c *nandsim.Compiler, in, out []int) nandsim.Group {
	checkWidth("Inc", len(in), out)
	if len(in) == 0 {
		return nil
	}
	one := c.Alloc()
	g := nandsim.Group{
		nandsim.Const{Out: one, Value: true},
		nandsim.Xor{A: in[0], B: one, Out: out[0]},
	}
	carry := in[0]
	for i := 1; i < len(in); i++ {
		next := c.Alloc()
		g = append(g,
			nandsim.HalfAdder{A: in[i], B: carry, S: out[i], C: next})
		carry = next
	}
	return g
}
