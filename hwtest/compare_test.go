// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest_test

import (
	"testing"

	ns "github.com/db47h/nandsim"
	"github.com/db47h/nandsim/hwtest"
)

func TestCompareGate(t *testing.T) {
	// custom or
	hwtest.CompareGate(t, 1, 2, func(c *ns.Compiler) ([]ns.Gate, []int) {
		notA, notB, out := c.Alloc(), c.Alloc(), c.Alloc()
		return []ns.Gate{
			ns.Nand{A: 0, B: 0, Out: notA},
			ns.Nand{A: 1, B: 1, Out: notB},
			ns.Nand{A: notA, B: notB, Out: out},
		}, []int{out}
	}, func(in []bool) []bool {
		return []bool{in[0] || in[1]}
	})
}

func TestCompareGate_random(t *testing.T) {
	// 14 inputs is above the exhaustive testing limit
	const n = 14
	hwtest.CompareGate(t, 1, n, func(c *ns.Compiler) ([]ns.Gate, []int) {
		var gs []ns.Gate
		outs := c.AllocN(n / 2)
		for i := range outs {
			gs = append(gs, ns.Xor{A: 2 * i, B: 2*i + 1, Out: outs[i]})
		}
		return gs, outs
	}, func(in []bool) []bool {
		out := make([]bool, n/2)
		for i := range out {
			out[i] = in[2*i] != in[2*i+1]
		}
		return out
	})
}
