// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides multi-bit parts built from the nandsim gates.
//
// Parts needing internal wires allocate them from a Compiler. These
// allocations are committed, like any top-level register.
package hwlib

import (
	"strconv"

	"github.com/db47h/nandsim"
)

func checkWidth(name string, n int, buses ...[]int) {
	for _, b := range buses {
		if len(b) != n {
			panic(name + ": bus width mismatch, expected " + strconv.Itoa(n) + " got " + strconv.Itoa(len(b)))
		}
	}
}

// NotN returns a N-bits NOT gate.
//
//	Inputs: in[N]
//	Outputs: out[N]
//	Function: for i := range out { out[i] = !in[i] }
func NotN(in, out []int) nandsim.Group {
	checkWidth("NotN", len(in), out)
	g := make(nandsim.Group, len(in))
	for i := range in {
		g[i] = nandsim.Not{A: in[i], Out: out[i]}
	}
	return g
}

// GateN returns a N-bits logic gate made of the gates returned by f.
//
//	Inputs: a[N], b[N]
//	Outputs: out[N]
//	Function: for i := range out { out[i] = f(a[i], b[i]) }
func GateN(a, b, out []int, f func(a, b, out int) nandsim.Gate) nandsim.Group {
	checkWidth("GateN", len(a), b, out)
	g := make(nandsim.Group, len(a))
	for i := range a {
		g[i] = f(a[i], b[i], out[i])
	}
	return g
}

// AndN returns a N-bits AND gate.
func AndN(a, b, out []int) nandsim.Group {
	return GateN(a, b, out, func(a, b, out int) nandsim.Gate { return nandsim.And{A: a, B: b, Out: out} })
}

// NandN returns a N-bits NAND gate.
func NandN(a, b, out []int) nandsim.Group {
	return GateN(a, b, out, func(a, b, out int) nandsim.Gate { return nandsim.Nand{A: a, B: b, Out: out} })
}

// OrN returns a N-bits OR gate.
func OrN(a, b, out []int) nandsim.Group {
	return GateN(a, b, out, func(a, b, out int) nandsim.Gate { return nandsim.Or{A: a, B: b, Out: out} })
}

// NorN returns a N-bits NOR gate.
func NorN(a, b, out []int) nandsim.Group {
	return GateN(a, b, out, func(a, b, out int) nandsim.Gate { return nandsim.Nor{A: a, B: b, Out: out} })
}

// XorN returns a N-bits XOR gate.
func XorN(a, b, out []int) nandsim.Group {
	return GateN(a, b, out, func(a, b, out int) nandsim.Gate { return nandsim.Xor{A: a, B: b, Out: out} })
}

type gateFn func(a, b, out int) nandsim.Gate

func nWay(c *nandsim.Compiler, name string, in []int, out int, f gateFn) nandsim.Group {
	switch len(in) {
	case 0:
		panic(name + ": no inputs")
	case 1:
		// buffer
		return nandsim.Group{f(in[0], in[0], out)}
	}
	var g nandsim.Group
	acc := in[0]
	for i := 1; i < len(in); i++ {
		o := out
		if i < len(in)-1 {
			o = c.Alloc()
		}
		g = append(g, f(acc, in[i], o))
		acc = o
	}
	return g
}

// AndNWay returns a N-way AND gate.
//
//	Inputs: in[N]
//	Outputs: out
//	Function: out = in[0] && in[1] && ... && in[N-1]
func AndNWay(c *nandsim.Compiler, in []int, out int) nandsim.Group {
	return nWay(c, "AndNWay", in, out, func(a, b, out int) nandsim.Gate { return nandsim.And{A: a, B: b, Out: out} })
}

// OrNWay returns a N-way OR gate.
//
//	Inputs: in[N]
//	Outputs: out
//	Function: out = in[0] || in[1] || ... || in[N-1]
func OrNWay(c *nandsim.Compiler, in []int, out int) nandsim.Group {
	return nWay(c, "OrNWay", in, out, func(a, b, out int) nandsim.Gate { return nandsim.Or{A: a, B: b, Out: out} })
}
