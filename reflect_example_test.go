// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim_test

import (
	"fmt"

	ns "github.com/db47h/nandsim"
	hl "github.com/db47h/nandsim/hwlib"
)

// mux4 is the wiring of a 4 bits mux.
type mux4 struct {
	A   [4]int `ns:"in"`     // input bus "a"
	B   [4]int `ns:"in"`     // input bus "b"
	S   int    `ns:"in,sel"` // single wire, the second tag value forces the name to "sel"
	Out [4]int `ns:"out"`    // output bus "out"
}

// Bind example with a 4 bits mux.
func ExampleSocket_Bind() {
	c, s, err := ns.NewCompilerIO("a[4], b[4], sel")
	if err != nil {
		panic(err)
	}
	var m mux4
	if err = s.Bind(&m); err != nil {
		panic(err)
	}
	sim, err := c.Compile(hl.MuxN(c, m.A[:], m.B[:], m.S, m.Out[:]))
	if err != nil {
		panic(err)
	}

	in := make([]bool, c.Immediates())
	hl.SetUint64(in, m.A[:], 5)
	hl.SetUint64(in, m.B[:], 10)
	for _, sel := range []bool{false, true} {
		in[m.S] = sel
		if err = sim.Run(in); err != nil {
			panic(err)
		}
		fmt.Printf("sel=%v out=%d\n", sel, hl.Uint64(sim, m.Out[:]))
	}
	// Output:
	// sel=false out=5
	// sel=true out=10
}
