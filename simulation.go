// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"github.com/pkg/errors"
)

// A Simulation runs a compiled program over a register file.
//
// A Simulation is not safe for concurrent use.
type Simulation struct {
	regs       []bool
	ops        []Op
	immediates int
}

// NewSimulation returns a simulation running ops over a zeroed file of
// the given number of registers, the first immediates of them being inputs.
// The ops must be in execution order.
func NewSimulation(immediates, registers int, ops []Op) (*Simulation, error) {
	if immediates < 0 || registers < immediates {
		return nil, errors.Errorf("invalid register count %d for %d immediates", registers, immediates)
	}
	for i, op := range ops {
		if op.Out < immediates && op.Code != OpSet {
			return nil, errors.Errorf("op #%d %v: writes to immediate register %d", i, op, op.Out)
		}
		if op.Out < 0 || op.Code == OpNand && (op.A < 0 || op.B < 0) {
			return nil, errors.Errorf("op #%d %v: negative register number", i, op)
		}
		if m := op.maxReg(); m >= registers {
			return nil, errors.Errorf("op #%d %v: register %d out of range [0, %d)", i, op, m, registers)
		}
	}
	return &Simulation{
		regs:       make([]bool, registers),
		ops:        append([]Op(nil), ops...),
		immediates: immediates,
	}, nil
}

// Run sets the immediate registers to the given values then runs the program
// once. All other registers keep their value from the previous run.
//
// Run fails without touching any register if len(immediates) does not match
// the immediate count.
func (s *Simulation) Run(immediates []bool) error {
	if len(immediates) != s.immediates {
		return errors.Errorf("got %d immediate values, expected %d", len(immediates), s.immediates)
	}
	r := s.regs
	copy(r, immediates)
	for _, op := range s.ops {
		switch op.Code {
		case OpNand:
			r[op.Out] = !(r[op.A] && r[op.B])
		case OpSet:
			r[op.Out] = op.Value
		}
	}
	return nil
}

// Register returns the value of register n. It panics if n is out of range.
func (s *Simulation) Register(n int) bool {
	if n < 0 || n >= len(s.regs) {
		panic(errors.Errorf("register %d out of range [0, %d)", n, len(s.regs)))
	}
	return s.regs[n]
}

// Registers returns a copy of the register file.
func (s *Simulation) Registers() []bool {
	return append([]bool(nil), s.regs...)
}

// Len returns the size of the register file.
func (s *Simulation) Len() int { return len(s.regs) }

// Immediates returns the number of immediate registers.
func (s *Simulation) Immediates() int { return s.immediates }

// Ops returns a copy of the program.
func (s *Simulation) Ops() []Op {
	return append([]Op(nil), s.ops...)
}

// Reset clears all registers.
func (s *Simulation) Reset() {
	for i := range s.regs {
		s.regs[i] = false
	}
}
