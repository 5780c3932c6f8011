// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

// An Incrementer hands out register numbers. It is the only source of fresh
// wires in a circuit.
//
// The zero value is an Incrementer starting at register 0. Incrementers are
// plain values: copying one snapshots its state.
type Incrementer struct {
	val int
}

// NewIncrementer returns an Incrementer whose next register is start.
func NewIncrementer(start int) Incrementer {
	return Incrementer{val: start}
}

// Next returns the next free register number and advances the counter.
func (i *Incrementer) Next() int {
	n := i.val
	i.val++
	return n
}

// Skip reserves a block of n registers.
func (i *Incrementer) Skip(n int) {
	if n < 0 {
		panic("negative skip count")
	}
	i.val += n
}

// Value returns the next register that Next would return, which is also the
// number of registers allocated so far.
func (i Incrementer) Value() int { return i.val }
