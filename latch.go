// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

// RSLatch is a set/reset latch made of two cross-coupled NOR gates.
//
//	Inputs: S, R
//	Outputs: Q
//	Function: S=1 R=0 => Q=1
//	          S=0 R=1 => Q=0
//	          S=0 R=0 => Q holds its value
//	          S=1 R=1 => Q=0
//
// The NOR pair reads its own outputs from the previous tick. After any input
// change, run the simulation twice before reading Q.
type RSLatch struct {
	S, R, Q int
}

func (g RSLatch) lower(b *builder) {
	q, nq := b.alloc(), b.alloc()
	b.add(Nor{g.R, nq, q})
	b.add(Nor{g.S, q, nq})
	// buffer q into the caller's register
	b.add(Or{q, q, g.Q})
}

// DLatch is a gated data latch.
//
//	Inputs: D, E
//	Outputs: Q
//	Function: E=1 => Q=D
//	          E=0 => Q holds its value
//
// Like RSLatch, it needs two ticks to settle after an input change.
type DLatch struct {
	D, E, Q int
}

func (g DLatch) lower(b *builder) {
	notD, notE := b.alloc(), b.alloc()
	b.add(Not{g.D, notD})
	b.add(Not{g.E, notE})
	fromD, fromNotD := b.alloc(), b.alloc()
	b.add(Nor{g.D, notE, fromD})     // !D && E
	b.add(Nor{notD, notE, fromNotD}) // D && E
	// the signal derived from D drives R, the one from !D drives S.
	b.add(RSLatch{S: fromNotD, R: fromD, Q: g.Q})
}
