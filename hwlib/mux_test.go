// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"testing"

	ns "github.com/db47h/nandsim"
	hl "github.com/db47h/nandsim/hwlib"
	"github.com/db47h/nandsim/hwtest"
)

func TestMux(t *testing.T) {
	// inputs: a, b, sel
	hwtest.CompareGate(t, 1, 3, func(c *ns.Compiler) ([]ns.Gate, []int) {
		out := c.Alloc()
		return []ns.Gate{hl.Mux(c, 0, 1, 2, out)}, []int{out}
	}, func(in []bool) []bool {
		if in[2] {
			return []bool{in[1]}
		}
		return []bool{in[0]}
	})
}

func TestDMux(t *testing.T) {
	// inputs: in, sel
	hwtest.CompareGate(t, 1, 2, func(c *ns.Compiler) ([]ns.Gate, []int) {
		a, b := c.Alloc(), c.Alloc()
		return []ns.Gate{hl.DMux(c, 0, 1, a, b)}, []int{a, b}
	}, func(in []bool) []bool {
		if in[1] {
			return []bool{false, in[0]}
		}
		return []bool{in[0], false}
	})
}

func TestMuxN(t *testing.T) {
	// inputs: a[4], b[4], sel
	hwtest.CompareGate(t, 1, 9, func(c *ns.Compiler) ([]ns.Gate, []int) {
		out := c.AllocN(4)
		return []ns.Gate{hl.MuxN(c, []int{0, 1, 2, 3}, []int{4, 5, 6, 7}, 8, out)}, out
	}, func(in []bool) []bool {
		if in[8] {
			return append([]bool(nil), in[4:8]...)
		}
		return append([]bool(nil), in[0:4]...)
	})
}
