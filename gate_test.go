// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim_test

import (
	"testing"

	ns "github.com/db47h/nandsim"
)

type gateFn func(in, out []int) ns.Gate

// testGate runs a gate for every combination of inputs. in[0] is the msb of
// the combination number.
func testGate(t *testing.T, gate gateFn, inputs, outputs int, result [][]bool) {
	t.Helper()
	c := ns.NewCompiler(inputs)
	in := make([]int, inputs)
	for i := range in {
		in[i] = i
	}
	out := c.AllocN(outputs)
	s, err := c.Compile(gate(in, out))
	if err != nil {
		t.Fatal(err)
	}

	values := make([]bool, inputs)
	for i := 0; i < 1<<uint(inputs); i++ {
		for bit := range values {
			values[len(values)-bit-1] = i&(1<<uint(bit)) != 0
		}
		if err = s.Run(values); err != nil {
			t.Fatal(err)
		}
		for o, r := range out {
			if exp, got := result[o][i], s.Register(r); exp != got {
				t.Errorf("%v => out[%d] = %v, got %v", values, o, exp, got)
			}
		}
	}
}

func Test_gates(t *testing.T) {
	td := []struct {
		name   string
		gate   gateFn
		inputs int
		result [][]bool // a=0 && b=0, a=0 && b=1, a=1 && b=0, a=1 && b=1
	}{
		{"NAND", func(in, out []int) ns.Gate { return ns.Nand{A: in[0], B: in[1], Out: out[0]} }, 2, [][]bool{{true, true, true, false}}},
		{"NOT", func(in, out []int) ns.Gate { return ns.Not{A: in[0], Out: out[0]} }, 1, [][]bool{{true, false}}},
		{"AND", func(in, out []int) ns.Gate { return ns.And{A: in[0], B: in[1], Out: out[0]} }, 2, [][]bool{{false, false, false, true}}},
		{"OR", func(in, out []int) ns.Gate { return ns.Or{A: in[0], B: in[1], Out: out[0]} }, 2, [][]bool{{false, true, true, true}}},
		{"NOR", func(in, out []int) ns.Gate { return ns.Nor{A: in[0], B: in[1], Out: out[0]} }, 2, [][]bool{{true, false, false, false}}},
		{"XOR", func(in, out []int) ns.Gate { return ns.Xor{A: in[0], B: in[1], Out: out[0]} }, 2, [][]bool{{false, true, true, false}}},
		{"XNOR", func(in, out []int) ns.Gate { return ns.Xnor{A: in[0], B: in[1], Out: out[0]} }, 2, [][]bool{{true, false, false, true}}},
		{"TRUE", func(in, out []int) ns.Gate { return ns.Const{Out: out[0], Value: true} }, 1, [][]bool{{true, true}}},
		{"FALSE", func(in, out []int) ns.Gate { return ns.Const{Out: out[0]} }, 1, [][]bool{{false, false}}},
		{"GROUP", func(in, out []int) ns.Gate {
			// a && !b, with the gates out of order
			return ns.Group{
				ns.And{A: in[0], B: out[1], Out: out[0]},
				ns.Not{A: in[1], Out: out[1]},
			}
		}, 2, [][]bool{{false, false, true, false}, {true, false, true, false}}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			testGate(t, d.gate, d.inputs, len(d.result), d.result)
		})
	}
}

func TestLower(t *testing.T) {
	td := []struct {
		name  string
		gate  ns.Gate
		fresh int // internal registers
		ops   int
	}{
		{"NAND", ns.Nand{A: 0, B: 1, Out: 2}, 0, 1},
		{"NOT", ns.Not{A: 0, Out: 2}, 0, 1},
		{"AND", ns.And{A: 0, B: 1, Out: 2}, 1, 2},
		{"OR", ns.Or{A: 0, B: 1, Out: 2}, 2, 3},
		{"NOR", ns.Nor{A: 0, B: 1, Out: 2}, 3, 4},
		{"XOR", ns.Xor{A: 0, B: 1, Out: 2}, 5, 6},
		{"CONST", ns.Const{Out: 2}, 0, 1},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			inc := ns.NewIncrementer(3)
			ops, err := ns.Lower(d.gate, &inc)
			if err != nil {
				t.Fatal(err)
			}
			if n := inc.Value() - 3; n != d.fresh {
				t.Errorf("allocated %d registers, expected %d", n, d.fresh)
			}
			if len(ops) != d.ops {
				t.Errorf("got %d ops, expected %d: %v", len(ops), d.ops, ops)
			}
			// the output register is written as-is
			found := false
			for _, op := range ops {
				if op.Out == 2 {
					found = true
				}
			}
			if !found {
				t.Errorf("no op writes to output register 2: %v", ops)
			}
		})
	}
}

func TestLower_group(t *testing.T) {
	var inc ns.Incrementer
	if _, err := ns.Lower(ns.Group{ns.Not{A: 0, Out: 1}, nil}, &inc); err == nil {
		t.Fatal("expected error for nil gate in group")
	}
}
