// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import "github.com/pkg/errors"

// HalfAdder returns a half adder.
//
//	Inputs: A, B
//	Outputs: S, C
//	Function: S = lsb(A + B)
//	          C = msb(A + B)
type HalfAdder struct {
	A, B, S, C int
}

func (g HalfAdder) lower(b *builder) {
	b.add(Xor{g.A, g.B, g.S})
	b.add(And{g.A, g.B, g.C})
}

// FullAdder is a 3 bit adder.
//
//	Inputs: A, B, Cin
//	Outputs: S, Cout
//	Function: S = lsb(A + B + Cin)
//	          Cout = msb(A + B + Cin)
type FullAdder struct {
	A, B, Cin, S, Cout int
}

func (g FullAdder) lower(b *builder) {
	s0, c0, c1 := b.alloc(), b.alloc(), b.alloc()
	b.add(HalfAdder{g.A, g.B, s0, c0})
	b.add(HalfAdder{s0, g.Cin, g.S, c1})
	b.add(Or{c0, c1, g.Cout})
}

// Adder is a N-bit ripple carry adder. Bit 0 is the lsb of each bus.
//
//	Inputs: A[N], B[N]
//	Outputs: Sum[N], Carry
//	Function: Sum = lsb(A + B), Carry = bit N of A + B
type Adder struct {
	A, B  []int
	Sum   []int
	Carry int
}

func (g Adder) lower(b *builder) {
	n := len(g.A)
	if n == 0 {
		b.fail(errors.New("zero width adder"))
		return
	}
	if len(g.B) != n || len(g.Sum) != n {
		b.fail(errors.Errorf("adder bus width mismatch: len(A)=%d, len(B)=%d, len(Sum)=%d", n, len(g.B), len(g.Sum)))
		return
	}
	cin := b.alloc()
	b.add(Const{Out: cin})
	for i := 0; i < n; i++ {
		cout := g.Carry
		if i < n-1 {
			cout = b.alloc()
		}
		b.add(FullAdder{g.A[i], g.B[i], cin, g.Sum[i], cout})
		cin = cout
	}
}
