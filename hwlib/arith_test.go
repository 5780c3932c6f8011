// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"testing"
	"testing/quick"

	ns "github.com/db47h/nandsim"
	hl "github.com/db47h/nandsim/hwlib"
	"github.com/db47h/nandsim/hwtest"
)

func TestAdderN(t *testing.T) {
	// inputs: a[3], b[3]
	hwtest.CompareGate(t, 1, 6, func(c *ns.Compiler) ([]ns.Gate, []int) {
		add := hl.AdderN(c, []int{0, 1, 2}, []int{3, 4, 5})
		return []ns.Gate{add}, append(append([]int(nil), add.Sum...), add.Carry)
	}, func(in []bool) []bool {
		a, b := hl.FromBits(in[:3]), hl.FromBits(in[3:])
		return hl.Bits(a+b, 4)
	})
}

func TestAdder16(t *testing.T) {
	c, s, err := ns.NewCompilerIO("a[16], b[16]")
	if err != nil {
		t.Fatal(err)
	}
	a, b := s.Bus("a"), s.Bus("b")
	add := hl.AdderN(c, a, b)
	sim, err := c.Compile(add)
	if err != nil {
		t.Fatal(err)
	}
	in := make([]bool, c.Immediates())
	f := func(x, y uint16) bool {
		hl.SetUint64(in, a, uint64(x))
		hl.SetUint64(in, b, uint64(y))
		if err := sim.Run(in); err != nil {
			t.Fatal(err)
		}
		sum := hl.Uint64(sim, append(append([]int(nil), add.Sum...), add.Carry))
		return sum == uint64(x)+uint64(y)
	}
	if err = quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestInc(t *testing.T) {
	hwtest.CompareGate(t, 1, 4, func(c *ns.Compiler) ([]ns.Gate, []int) {
		out := c.AllocN(4)
		return []ns.Gate{hl.Inc(c, []int{0, 1, 2, 3}, out)}, out
	}, func(in []bool) []bool {
		return hl.Bits(hl.FromBits(in)+1, 4)
	})
}
