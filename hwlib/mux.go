// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/nandsim"
)

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
func Mux(c *nandsim.Compiler, a, b, sel, out int) nandsim.Group {
	notSel := c.Alloc()
	return append(muxWith(c, a, b, sel, notSel, out), nandsim.Not{A: sel, Out: notSel})
}

func muxWith(c *nandsim.Compiler, a, b, sel, notSel, out int) nandsim.Group {
	w0, w1 := c.Alloc(), c.Alloc()
	return nandsim.Group{
		nandsim.And{A: a, B: notSel, Out: w0},
		nandsim.And{A: b, B: sel, Out: w1},
		nandsim.Or{A: w0, B: w1, Out: out},
	}
}

// DMux returns a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
func DMux(c *nandsim.Compiler, in, sel, a, b int) nandsim.Group {
	notSel := c.Alloc()
	return nandsim.Group{
		nandsim.Not{A: sel, Out: notSel},
		nandsim.And{A: in, B: notSel, Out: a},
		nandsim.And{A: in, B: sel, Out: b},
	}
}

// MuxN returns a N-bits Mux.
//
//	Inputs: a[N], b[N], sel
//	Outputs: out[N]
//	Function: for i := range out { if sel == 0 { out[i] = a[i] } else { out[i] = b[i] } }
func MuxN(c *nandsim.Compiler, a, b []int, sel int, out []int) nandsim.Group {
	checkWidth("MuxN", len(a), b, out)
	notSel := c.Alloc()
	g := nandsim.Group{nandsim.Not{A: sel, Out: notSel}}
	for i := range a {
		g = append(g, muxWith(c, a[i], b[i], sel, notSel, out[i]))
	}
	return g
}
