// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"github.com/pkg/errors"
)

// A Socket maps wire names to register numbers in a circuit. New registers
// are allocated through the Compiler.
type Socket struct {
	m map[string]int
	c *Compiler
}

// NewSocket returns an empty Socket allocating registers from c.
func NewSocket(c *Compiler) *Socket {
	return &Socket{
		m: make(map[string]int),
		c: c,
	}
}

// NewCompilerIO returns a new Compiler whose immediates are the wires named in
// inputs (see ExpandBus), in order, together with a Socket mapping these names
// to their register.
//
//	c, s, err := NewCompilerIO("a[4], b[4]")
//	// s.Pin("a[0]") == 0, s.Pin("b[0]") == 4
func NewCompilerIO(inputs string) (*Compiler, *Socket, error) {
	names, err := ExpandBus(inputs)
	if err != nil {
		return nil, nil, err
	}
	c := NewCompiler(len(names))
	s := NewSocket(c)
	for i, n := range names {
		if _, ok := s.m[n]; ok {
			return nil, nil, errors.New("duplicate input name " + n)
		}
		s.m[n] = i
	}
	return c, s, nil
}

// Compiler returns the compiler that s allocates registers from.
func (s *Socket) Compiler() *Compiler { return s.c }

// Pin returns the register allocated to the given wire name.
// This function panics if the wire does not exist.
func (s *Socket) Pin(name string) int {
	n, ok := s.m[name]
	if !ok {
		panic("wire " + name + " does not exist")
	}
	return n
}

// PinOrNew returns the register allocated to the given wire name.
// If no such wire exists a new register is allocated.
func (s *Socket) PinOrNew(name string) int {
	n, ok := s.m[name]
	if !ok {
		n = s.c.Alloc()
		s.m[name] = n
	}
	return n
}

// Bus returns the registers allocated to the given bus name.
// This function panics if the bus does not exist.
func (s *Socket) Bus(name string) []int {
	out := make([]int, 0)
	for i := 0; ; i++ {
		n, ok := s.m[BusPinName(name, i)]
		if !ok {
			break
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		panic("bus " + name + " does not exist")
	}
	return out
}

// BusOrNew returns the registers allocated to the given bus name, allocating
// missing ones.
func (s *Socket) BusOrNew(name string, bits int) []int {
	out := make([]int, bits)
	for i := range out {
		out[i] = s.PinOrNew(BusPinName(name, i))
	}
	return out
}
