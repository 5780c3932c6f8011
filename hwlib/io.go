// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/nandsim"
)

// Uint64 returns the registers as an uint64. regs[0] is lsb.
func Uint64(s *nandsim.Simulation, regs []int) uint64 {
	var out uint64
	for bit, r := range regs {
		if s.Register(r) {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// SetUint64 sets in[regs[i]] to bit i of v. It is meant to fill the
// immediate vector passed to Simulation.Run.
func SetUint64(in []bool, regs []int, v uint64) {
	for bit, r := range regs {
		in[r] = v&(1<<uint(bit)) != 0
	}
}

// Bits returns the n lower bits of v, lsb first.
func Bits(v uint64, n int) []bool {
	out := make([]bool, n)
	for bit := range out {
		out[bit] = v&(1<<uint(bit)) != 0
	}
	return out
}

// FromBits is the reverse of Bits.
func FromBits(bits []bool) uint64 {
	var out uint64
	for bit, b := range bits {
		if b {
			out |= 1 << uint(bit)
		}
	}
	return out
}
