// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"io"

	"github.com/pkg/errors"
)

// A Compiler turns gates into a runnable Simulation.
//
// Registers 0 to Immediates()-1 are the circuit inputs. Registers for the
// outputs of top-level gates are allocated by the caller with Alloc or
// AllocN, before calling Compile. Internal wires allocated while compiling
// are not committed: compiling the same gates again yields the same program.
type Compiler struct {
	// If not nil, scheduling waves are traced to Trace.
	Trace io.Writer

	immediates int
	inc        Incrementer
}

// NewCompiler returns a new compiler for a circuit with the given number of
// immediate registers.
func NewCompiler(immediates int) *Compiler {
	if immediates < 0 {
		panic("negative immediate count")
	}
	return &Compiler{
		immediates: immediates,
		inc:        NewIncrementer(immediates),
	}
}

// Immediates returns the number of immediate registers.
func (c *Compiler) Immediates() int { return c.immediates }

// Registers returns the number of registers allocated so far, immediates
// included.
func (c *Compiler) Registers() int { return c.inc.Value() }

// Alloc allocates a new register and returns its number.
func (c *Compiler) Alloc() int { return c.inc.Next() }

// AllocN allocates n consecutive registers.
func (c *Compiler) AllocN(n int) []int {
	first := c.inc.Value()
	c.inc.Skip(n)
	rs := make([]int, n)
	for i := range rs {
		rs[i] = first + i
	}
	return rs
}

// Reset releases all allocated registers except the immediates.
func (c *Compiler) Reset() {
	c.inc = NewIncrementer(c.immediates)
}

// Compile lowers gates, schedules the resulting ops and returns a new
// Simulation with a zeroed register file.
//
// The register count of the simulation is the number of registers committed
// with Alloc plus the internal wires of gates. An empty gate list yields a
// register file holding only the immediates.
func (c *Compiler) Compile(gates ...Gate) (*Simulation, error) {
	if len(gates) == 0 {
		return NewSimulation(c.immediates, c.immediates, nil)
	}
	inc := c.inc // snapshot
	var ops []Op
	for i, g := range gates {
		if g == nil {
			return nil, errors.Errorf("nil gate at index %d", i)
		}
		gops, err := Lower(g, &inc)
		if err != nil {
			return nil, errors.Wrapf(err, "gate #%d (%T)", i, g)
		}
		ops = append(ops, gops...)
	}
	for i, op := range ops {
		if m := op.maxReg(); m >= inc.Value() {
			return nil, errors.Errorf("op #%d %v: register %d out of range [0, %d)", i, op, m, inc.Value())
		}
	}

	ops, err := Schedule(ops, c.immediates, c.Trace)
	if err != nil {
		return nil, errors.Wrap(err, "schedule")
	}
	return NewSimulation(c.immediates, inc.Value(), ops)
}
