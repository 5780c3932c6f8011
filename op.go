// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import "strconv"

// An OpCode identifies a primitive operation.
type OpCode uint8

// Primitive operations.
const (
	OpNand OpCode = iota // reg[Out] = !(reg[A] && reg[B])
	OpSet                // reg[Out] = Value
)

// An Op is a primitive micro-operation over the register file.
type Op struct {
	Code  OpCode
	A, B  int
	Out   int
	Value bool
}

// NandOp returns an op computing !(reg[a] && reg[b]) into reg[out].
func NandOp(a, b, out int) Op {
	return Op{Code: OpNand, A: a, B: b, Out: out}
}

// SetOp returns an op forcing reg[out] to v.
func SetOp(out int, v bool) Op {
	return Op{Code: OpSet, Out: out, Value: v}
}

// inputs returns the registers read by o.
func (o Op) inputs() []int {
	if o.Code == OpNand {
		if o.A == o.B {
			return []int{o.A}
		}
		return []int{o.A, o.B}
	}
	return nil
}

// maxReg returns the highest register number referenced by o.
func (o Op) maxReg() int {
	m := o.Out
	if o.Code == OpNand {
		if o.A > m {
			m = o.A
		}
		if o.B > m {
			m = o.B
		}
	}
	return m
}

func (o Op) String() string {
	switch o.Code {
	case OpNand:
		return "Nand(" + strconv.Itoa(o.A) + ", " + strconv.Itoa(o.B) + ", " + strconv.Itoa(o.Out) + ")"
	case OpSet:
		return "Set(" + strconv.Itoa(o.Out) + ", " + strconv.FormatBool(o.Value) + ")"
	}
	return "Op(" + strconv.Itoa(int(o.Code)) + ")"
}
