// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/hwlib"
	"github.com/k0kubun/pp/v3"
	"github.com/pkg/errors"
)

type circuit struct {
	inputs string
	build  func(s *nandsim.Socket) ([]nandsim.Gate, []string)
}

var circuits = map[string]circuit{
	"halfadder": {"a, b", func(s *nandsim.Socket) ([]nandsim.Gate, []string) {
		return []nandsim.Gate{
			nandsim.Xor{A: s.Pin("a"), B: s.Pin("b"), Out: s.PinOrNew("s")},
			nandsim.And{A: s.Pin("a"), B: s.Pin("b"), Out: s.PinOrNew("c")},
		}, []string{"s", "c"}
	}},
	"adder4": {"a[4], b[4]", func(s *nandsim.Socket) ([]nandsim.Gate, []string) {
		return []nandsim.Gate{nandsim.Adder{
				A:     s.Bus("a"),
				B:     s.Bus("b"),
				Sum:   s.BusOrNew("sum", 4),
				Carry: s.PinOrNew("carry"),
			}}, []string{
				nandsim.BusPinName("sum", 0), nandsim.BusPinName("sum", 1),
				nandsim.BusPinName("sum", 2), nandsim.BusPinName("sum", 3),
				"carry"}
	}},
	"rslatch": {"s, r", func(s *nandsim.Socket) ([]nandsim.Gate, []string) {
		return []nandsim.Gate{nandsim.RSLatch{S: s.Pin("s"), R: s.Pin("r"), Q: s.PinOrNew("q")}}, []string{"q"}
	}},
	"dlatch": {"d, e", func(s *nandsim.Socket) ([]nandsim.Gate, []string) {
		return []nandsim.Gate{nandsim.DLatch{D: s.Pin("d"), E: s.Pin("e"), Q: s.PinOrNew("q")}}, []string{"q"}
	}},
}

func parseBits(in string, n int) ([]bool, error) {
	in = strings.TrimSpace(in)
	if in == "" {
		return make([]bool, n), nil
	}
	if len(in) != n {
		return nil, errors.Errorf("expected %d input bits, got %q", n, in)
	}
	out := make([]bool, n)
	for i, r := range in {
		switch r {
		case '0':
		case '1':
			out[i] = true
		default:
			return nil, errors.Errorf("invalid bit %q in %q", r, in)
		}
	}
	return out, nil
}

func run(name, input string, ticks int, dot string, trace, dump bool) error {
	cc, ok := circuits[name]
	if !ok {
		return errors.New("unknown circuit " + name)
	}
	c, s, err := nandsim.NewCompilerIO(cc.inputs)
	if err != nil {
		return err
	}
	if trace {
		c.Trace = os.Stderr
	}
	gates, outs := cc.build(s)
	sim, err := c.Compile(gates...)
	if err != nil {
		return errors.Wrap(err, "compile "+name)
	}
	log.Printf("%s: %d registers, %d ops", name, sim.Len(), len(sim.Ops()))

	if dot != "" {
		f, err := os.Create(dot)
		if err != nil {
			return err
		}
		err = nandsim.WriteDot(f, sim.Ops())
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return errors.Wrap(err, "write "+dot)
		}
	}

	in, err := parseBits(input, c.Immediates())
	if err != nil {
		return err
	}
	names, err := nandsim.ExpandBus(cc.inputs)
	if err != nil {
		return err
	}
	for i := 0; i < ticks; i++ {
		if err = sim.Run(in); err != nil {
			return err
		}
	}
	for i, n := range names {
		log.Printf("in  %-8s %v", n, in[i])
	}
	for _, n := range outs {
		log.Printf("out %-8s %v", n, sim.Register(s.Pin(n)))
	}
	if name == "adder4" {
		log.Printf("%d + %d = %d",
			hwlib.Uint64(sim, s.Bus("a")), hwlib.Uint64(sim, s.Bus("b")),
			hwlib.Uint64(sim, append(s.Bus("sum"), s.Pin("carry"))))
	}
	if dump {
		pp.Println(sim.Ops(), sim.Registers())
	}
	return nil
}

func main() {
	name := flag.String("circuit", "halfadder", "circuit to run: halfadder, adder4, rslatch or dlatch")
	input := flag.String("in", "", "input bits, first input first (e.g. 01 for a=0, b=1)")
	ticks := flag.Int("ticks", 2, "number of simulation ticks")
	dot := flag.String("dot", "", "write the compiled program's dependency graph to this file")
	trace := flag.Bool("trace", false, "trace scheduler waves to stderr")
	dump := flag.Bool("dump", false, "dump the compiled program and register file")
	flag.Parse()

	log.SetFlags(0)
	if err := run(*name, *input, *ticks, *dot, *trace, *dump); err != nil {
		log.Fatalf("%+v", err)
	}
}
