// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/nandsim"

// LatchN returns a N-bits gated latch.
//
//	Inputs: d[N], e
//	Outputs: q[N]
//	Function: if e == 1 { q = d } else { q holds its value }
//
// Like nandsim.DLatch, the outputs are stable two runs after an input change.
func LatchN(d []int, e int, q []int) nandsim.Group {
	checkWidth("LatchN", len(d), q)
	g := make(nandsim.Group, len(d))
	for i := range d {
		g[i] = nandsim.DLatch{D: d[i], E: e, Q: q[i]}
	}
	return g
}
