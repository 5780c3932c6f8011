// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import (
	"io"
	"sort"

	"github.com/k0kubun/pp/v3"
	"github.com/pkg/errors"
)

// depGraph is the dependency graph of a program. Each op is identified by the
// register it writes to.
type depGraph struct {
	nodes      []Op  // immediate roots followed by the program ops
	immediates int   // number of immediate roots at the head of nodes
	producer   []int // register -> index in nodes, -1 if not driven
	consumers  [][]int
}

func newDepGraph(ops []Op, immediates int) (*depGraph, error) {
	size := immediates
	for i, op := range ops {
		if op.Out < 0 || op.Code == OpNand && (op.A < 0 || op.B < 0) {
			return nil, errors.Errorf("op #%d %v: negative register number", i, op)
		}
		if m := op.maxReg() + 1; m > size {
			size = m
		}
	}

	g := &depGraph{
		nodes:      make([]Op, 0, immediates+len(ops)),
		immediates: immediates,
		producer:   make([]int, size),
		consumers:  make([][]int, size),
	}
	for i := range g.producer {
		g.producer[i] = -1
	}
	for i := 0; i < immediates; i++ {
		g.nodes = append(g.nodes, SetOp(i, false))
		g.producer[i] = i
	}
	for i, op := range ops {
		if op.Out < immediates {
			return nil, errors.Errorf("op #%d %v: output connected to immediate register %d", i, op, op.Out)
		}
		if p := g.producer[op.Out]; p >= 0 {
			return nil, errors.Errorf("op #%d %v: register %d already driven by %v", i, op, op.Out, g.nodes[p])
		}
		g.producer[op.Out] = len(g.nodes)
		g.nodes = append(g.nodes, op)
		for _, in := range op.inputs() {
			g.consumers[in] = append(g.consumers[in], op.Out)
		}
	}
	return g, nil
}

func (g *depGraph) op(r int) Op { return g.nodes[g.producer[r]] }

// isRoot returns true if none of the registers read by the op driving r have
// a producer.
func (g *depGraph) isRoot(r int) bool {
	for _, in := range g.op(r).inputs() {
		if g.producer[in] >= 0 {
			return false
		}
	}
	return true
}

// scheduler holds the state of a layered topological sort.
type scheduler struct {
	*depGraph
	pending []bool // pending[r] is true if the op driving r is not scheduled yet
	left    int
	out     []Op
	tr      *pp.PrettyPrinter
}

func (s *scheduler) waiting(r int) bool {
	for _, in := range s.op(r).inputs() {
		if s.producer[in] >= 0 && s.pending[in] {
			return true
		}
	}
	return false
}

func (s *scheduler) emit(r int) {
	s.pending[r] = false
	s.left--
	// immediate roots only seed the frontier
	if p := s.producer[r]; p >= s.immediates {
		s.out = append(s.out, s.nodes[p])
	}
}

// wave processes one layer of the frontier and returns the next one. If force
// is true, every pending op in the frontier is scheduled regardless of its
// inputs.
func (s *scheduler) wave(queue []int, force bool) []int {
	var next []int
	for _, r := range queue {
		if !s.pending[r] {
			continue
		}
		if !force && s.waiting(r) {
			next = append(next, r)
			continue
		}
		s.emit(r)
		next = append(next, s.consumers[r]...)
	}
	return s.frontier(next)
}

// frontier returns the sorted set of pending registers in rs.
func (s *scheduler) frontier(rs []int) []int {
	sort.Ints(rs)
	out := rs[:0]
	for i, r := range rs {
		if !s.pending[r] || i > 0 && r == rs[i-1] {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *scheduler) remaining() []int {
	var rs []int
	for r, p := range s.pending {
		if p {
			rs = append(rs, r)
		}
	}
	return rs
}

func (s *scheduler) trace(format string, args ...interface{}) {
	if s.tr != nil {
		s.tr.Printf(format, args...)
	}
}

func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Schedule reorders ops so that every op runs after the ops driving the
// registers it reads. Registers [0, immediates) are caller supplied inputs and
// must not be driven by any op.
//
// Ops are scheduled in waves, starting from the immediates and the ops whose
// inputs are not driven by anything. Ops within a wave are sorted by output
// register. Feedback loops stall the wave; a stalled wave is then scheduled as
// a whole, so ops in a loop read values from the previous run for the
// registers whose producer comes later.
//
// If trace is not nil, each wave is dumped to it.
func Schedule(ops []Op, immediates int, trace io.Writer) ([]Op, error) {
	if immediates < 0 {
		return nil, errors.New("negative immediate count")
	}
	g, err := newDepGraph(ops, immediates)
	if err != nil {
		return nil, err
	}

	s := &scheduler{
		depGraph: g,
		pending:  make([]bool, len(g.producer)),
		left:     len(g.nodes),
		out:      make([]Op, 0, len(ops)),
	}
	if trace != nil {
		s.tr = pp.New()
		s.tr.SetOutput(trace)
		s.tr.SetColoringEnabled(false)
	}

	var queue []int
	for r, p := range g.producer {
		if p < 0 {
			continue
		}
		s.pending[r] = true
		if s.isRoot(r) {
			queue = append(queue, r)
		}
	}

	// each wave either schedules at least one op or stalls, and a stalled
	// wave is always followed by a forced one.
	maxWaves := 2*len(g.nodes) + 1
	force := false
	for n := 0; s.left > 0; n++ {
		if n >= maxWaves {
			panic("scheduler did not converge")
		}
		if len(queue) == 0 {
			// loops that no root reaches
			queue = s.remaining()
			s.trace("wave %d: reseed %v\n", n, queue)
		}
		done := len(s.out)
		next := s.wave(queue, force)
		s.trace("wave %d: queue %v, forced %v, scheduled %v\n", n, queue, force, s.out[done:])
		force = sameSet(queue, next)
		queue = next
	}

	return s.out, nil
}
