// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"github.com/pkg/errors"
)

// A Gate describes a circuit element by the registers wired to its inputs and
// outputs. Lowering a gate expands it into NAND and Set ops, allocating
// internal wires from an Incrementer. Output registers given by the caller are
// written to as-is, never reallocated.
//
// The set of gates is closed: only the types in this package implement Gate.
// Larger circuits are built by composing them, see Group.
type Gate interface {
	lower(b *builder)
}

// builder collects the ops emitted while lowering a gate tree.
type builder struct {
	inc *Incrementer
	ops []Op
	err error
}

func (b *builder) alloc() int {
	return b.inc.Next()
}

func (b *builder) nand(a, c, out int) {
	b.ops = append(b.ops, NandOp(a, c, out))
}

func (b *builder) set(out int, v bool) {
	b.ops = append(b.ops, SetOp(out, v))
}

func (b *builder) add(g Gate) {
	if b.err != nil {
		return
	}
	g.lower(b)
}

func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Lower expands g into primitive ops, allocating internal registers from inc.
// The returned ops are not necessarily in dependency order.
func Lower(g Gate, inc *Incrementer) ([]Op, error) {
	b := builder{inc: inc}
	b.add(g)
	if b.err != nil {
		return nil, b.err
	}
	return b.ops, nil
}

// Nand is the primitive gate.
//
//	Function: Out = !(A && B)
type Nand struct {
	A, B, Out int
}

func (g Nand) lower(b *builder) { b.nand(g.A, g.B, g.Out) }

// Not is a NOT gate.
//
//	Function: Out = !A
type Not struct {
	A, Out int
}

func (g Not) lower(b *builder) { b.nand(g.A, g.A, g.Out) }

// And is an AND gate.
//
//	Function: Out = A && B
type And struct {
	A, B, Out int
}

func (g And) lower(b *builder) {
	nand := b.alloc()
	b.add(Nand{g.A, g.B, nand})
	b.add(Not{nand, g.Out})
}

// Or is an OR gate.
//
//	Function: Out = A || B
type Or struct {
	A, B, Out int
}

func (g Or) lower(b *builder) {
	notA, notB := b.alloc(), b.alloc()
	b.nand(g.A, g.A, notA)
	b.nand(g.B, g.B, notB)
	b.nand(notA, notB, g.Out)
}

// Nor is a NOR gate.
//
//	Function: Out = !(A || B)
type Nor struct {
	A, B, Out int
}

func (g Nor) lower(b *builder) {
	or := b.alloc()
	b.add(Or{g.A, g.B, or})
	b.add(Not{or, g.Out})
}

// Xor is a XOR gate.
//
//	Function: Out = A && !B || !A && B
type Xor struct {
	A, B, Out int
}

func (g Xor) lower(b *builder) {
	or, nand := b.alloc(), b.alloc()
	b.add(Or{g.A, g.B, or})
	b.add(Nand{g.A, g.B, nand})
	b.add(And{or, nand, g.Out})
}

// Xnor is a XNOR gate.
//
//	Function: Out = A && B || !A && !B
type Xnor struct {
	A, B, Out int
}

func (g Xnor) lower(b *builder) {
	xor := b.alloc()
	b.add(Xor{g.A, g.B, xor})
	b.add(Not{xor, g.Out})
}

// Const ties a register to a constant value. Its Set op is executed on every
// tick.
type Const struct {
	Out   int
	Value bool
}

func (g Const) lower(b *builder) { b.set(g.Out, g.Value) }

// Group packages several gates into one. Members are lowered in order.
type Group []Gate

func (g Group) lower(b *builder) {
	for i, p := range g {
		if p == nil {
			b.fail(errors.Errorf("nil gate at index %d in group", i))
			return
		}
		b.add(p)
	}
}
