// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
package hwtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/nandsim"
)

// maxExhaustive is the input count above which CompareGate switches to random
// testing.
const maxExhaustive = 12

func randBool(r *rand.Rand) bool {
	return r.Int63()&(1<<62) != 0
}

// A BuildFn builds a circuit whose inputs are the immediate registers of c. It
// returns the gates to compile and the registers to read back as outputs.
type BuildFn func(c *nandsim.Compiler) (gates []nandsim.Gate, outputs []int)

// CompareGate compiles the circuit returned by build for the given number of
// inputs, and compares its outputs to the values returned by ref given the
// same inputs. The simulation is run ticks times for each input vector before
// reading the outputs.
//
// All input combinations are tested for circuits of up to 12 inputs. Larger
// circuits are tested with 4096 random input vectors.
func CompareGate(t *testing.T, ticks int, inputs int, build BuildFn, ref func(in []bool) []bool) {
	t.Helper()

	if ticks < 1 {
		ticks = 1
	}
	c := nandsim.NewCompiler(inputs)
	gates, outs := build(c)
	s, err := c.Compile(gates...)
	if err != nil {
		t.Fatal(err)
	}

	in := make([]bool, inputs)
	errString := func(o int, ex, got bool) string {
		var b strings.Builder
		for i, v := range in {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "in[%d]=%v", i, v)
		}
		return fmt.Sprintf("\nExpected %s => out[%d]=%v\nGot %v", b.String(), o, ex, got)
	}

	check := func() {
		t.Helper()
		for i := 0; i < ticks; i++ {
			if err := s.Run(in); err != nil {
				t.Fatal(err)
			}
		}
		exp := ref(in)
		if len(exp) != len(outs) {
			t.Fatalf("reference returned %d outputs, expected %d", len(exp), len(outs))
		}
		for o, r := range outs {
			if got := s.Register(r); got != exp[o] {
				t.Fatal(errString(o, exp[o], got))
			}
		}
	}

	start := time.Now()
	iter := 0
	if inputs <= maxExhaustive {
		for v := 0; v < 1<<uint(inputs); v++ {
			for bit := range in {
				in[bit] = v&(1<<uint(bit)) != 0
			}
			check()
			iter++
		}
	} else {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for ; iter < 1<<maxExhaustive; iter++ {
			for bit := range in {
				in[bit] = randBool(rnd)
			}
			check()
		}
	}

	t.Logf("%d registers, %d ops. %d input vectors in %v", s.Len(), len(s.Ops()), iter, time.Since(start))
}
