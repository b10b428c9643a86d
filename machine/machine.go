// SPDX-License-Identifier: MIT

package machine

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/advent/parse"
)

var log = logrus.WithField("component", "machine")

// Machine is an Intcode interpreter. The zero value is not usable; call New.
type Machine struct {
	mem    []int64
	counts map[int64]*Counts
	ip     int64
	rb     int64
	state  State
	fault  *Fault
	input  []int64
	output []int64
	steps  int64
}

// New returns a Machine whose memory is a copy of tape.
func New(tape []int64) *Machine {
	return &Machine{mem: slices.Clone(tape)}
}

// Parse reads a comma-separated program. Whitespace around numbers and a
// trailing newline are allowed.
func Parse(text string) ([]int64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyProgram
	}
	var tape []int64
	pos := 0
	for _, field := range strings.Split(strings.TrimRight(text, " \t\r\n,"), ",") {
		s := strings.TrimSpace(field)
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, &parse.Error{Kind: parse.KindInt, Input: text, Pos: pos, Msg: fmt.Sprintf("cell %d", len(tape)), Err: err}
		}
		tape = append(tape, v)
		pos += len(field) + 1
	}
	return tape, nil
}

// State returns the state after the most recent step.
func (m *Machine) State() State { return m.state }

// Fault returns the fault that stopped the machine, or nil.
func (m *Machine) Fault() error {
	if m.fault == nil {
		return nil
	}
	return m.fault
}

// IP returns the instruction pointer.
func (m *Machine) IP() int64 { return m.ip }

// RelativeBase returns the relative base register.
func (m *Machine) RelativeBase() int64 { return m.rb }

// Steps returns the number of instructions executed.
func (m *Machine) Steps() int64 { return m.steps }

// Peek returns the cell at addr without counting a read. Addresses past the
// end (or negative) read as 0.
func (m *Machine) Peek(addr int64) int64 { return cellAt(m.mem, addr) }

// Poke stores v at addr, growing memory as needed.
func (m *Machine) Poke(addr, v int64) error {
	if addr < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAddress, addr)
	}
	if addr >= MaxMemory {
		return fmt.Errorf("%w: %d", ErrAddressRange, addr)
	}
	m.grow(addr)
	m.mem[addr] = v
	return nil
}

// Memory returns a copy of the current tape.
func (m *Machine) Memory() []int64 { return slices.Clone(m.mem) }

// Counts returns the execute/read/write counters of addr.
func (m *Machine) Counts(addr int64) Counts {
	if c, ok := m.counts[addr]; ok {
		return *c
	}
	return Counts{}
}

// Input returns a copy of the pending input queue.
func (m *Machine) Input() []int64 { return slices.Clone(m.input) }

// Output returns a copy of the output queue without draining it.
func (m *Machine) Output() []int64 { return slices.Clone(m.output) }

// AddInput enqueues values. A machine blocked in AwaitingInput resumes on
// its next step.
func (m *Machine) AddInput(vs ...int64) {
	m.input = append(m.input, vs...)
}

// DrainOutput removes and returns the output queue.
func (m *Machine) DrainOutput() []int64 {
	out := m.output
	m.output = nil
	return out
}

// Clone returns a deep copy sharing no state with m.
func (m *Machine) Clone() *Machine {
	c := *m
	c.mem = slices.Clone(m.mem)
	c.counts = maps.Clone(m.counts)
	for addr, n := range c.counts {
		cp := *n
		c.counts[addr] = &cp
	}
	c.input = slices.Clone(m.input)
	c.output = slices.Clone(m.output)
	if m.fault != nil {
		f := *m.fault
		c.fault = &f
	}
	return &c
}

// Step executes one instruction and returns the resulting state. A halted
// or faulted machine is left unchanged.
func (m *Machine) Step() State {
	if m.state.Stopped() {
		return m.state
	}
	in, err := Decode(m.mem, m.ip)
	if err != nil {
		return m.fail(err.(*Fault))
	}
	if in.Op == In && len(m.input) == 0 {
		m.state = AwaitingInput
		return m.state
	}

	m.count(m.ip).Exec++
	m.steps++
	next := m.ip + int64(in.Op.Size())
	m.state = Running

	// Resolve operand addresses for positional and relative modes.
	var addr [3]int64
	for i, mode := range in.Modes[:len(in.Args)] {
		switch mode {
		case Positional:
			addr[i] = in.Args[i]
		case Relative:
			addr[i] = m.rb + in.Args[i]
		default:
			continue
		}
		if addr[i] < 0 {
			f := &Fault{Kind: FaultNegativeAddress, IP: m.ip, Cell: cellAt(m.mem, m.ip), Addr: addr[i]}
			return m.fail(f)
		}
		if i == in.Op.writes() && addr[i] >= MaxMemory {
			f := &Fault{Kind: FaultAddressRange, IP: m.ip, Cell: cellAt(m.mem, m.ip), Addr: addr[i]}
			return m.fail(f)
		}
	}
	load := func(i int) int64 {
		if in.Modes[i] == Immediate {
			return in.Args[i]
		}
		m.count(addr[i]).Read++
		return cellAt(m.mem, addr[i])
	}
	store := func(i int, v int64) {
		m.grow(addr[i])
		m.count(addr[i]).Write++
		m.mem[addr[i]] = v
	}

	switch in.Op {
	case Add:
		store(2, load(0)+load(1))
	case Mul:
		store(2, load(0)*load(1))
	case In:
		v := m.input[0]
		m.input = m.input[1:]
		store(0, v)
	case Out:
		m.output = append(m.output, load(0))
		m.state = AwaitingOutput
	case Jnz:
		if load(0) != 0 {
			next = load(1)
		}
	case Jz:
		if load(0) == 0 {
			next = load(1)
		}
	case Lt:
		store(2, b2i(load(0) < load(1)))
	case Eq:
		store(2, b2i(load(0) == load(1)))
	case Arb:
		m.rb += load(0)
	case Halt:
		m.state = Halted
		return m.state
	}
	m.ip = next
	return m.state
}

// Run steps until the machine halts, faults or blocks on input.
func (m *Machine) Run() State {
	for {
		switch s := m.Step(); s {
		case Halted, Faulted, AwaitingInput:
			return s
		}
	}
}

// RunToNextOutput runs until the next "out" and pops that value from the
// output queue. It returns false if the machine halts, faults or blocks on
// input first.
func (m *Machine) RunToNextOutput() (int64, bool) {
	for {
		switch m.Step() {
		case AwaitingOutput:
			v := m.output[len(m.output)-1]
			m.output = m.output[:len(m.output)-1]
			return v, true
		case Halted, Faulted, AwaitingInput:
			return 0, false
		}
	}
}

// RunToNextIO runs until the machine blocks on input, emits an output,
// halts or faults, and returns that state.
func (m *Machine) RunToNextIO() State {
	for {
		if s := m.Step(); s != Running {
			return s
		}
	}
}

func (m *Machine) fail(f *Fault) State {
	m.fault = f
	m.state = Faulted
	log.WithFields(logrus.Fields{
		"kind":  f.Kind.String(),
		"ip":    f.IP,
		"cell":  f.Cell,
		"steps": m.steps,
	}).Debug("machine faulted")
	return m.state
}

// grow extends memory to cover addr. Callers keep addr below MaxMemory.
func (m *Machine) grow(addr int64) {
	if addr < int64(len(m.mem)) {
		return
	}
	m.mem = append(m.mem, make([]int64, addr+1-int64(len(m.mem)))...)
}

// count returns the counters of addr. Only touched addresses are stored,
// so a read far past the end costs one entry.
func (m *Machine) count(addr int64) *Counts {
	c, ok := m.counts[addr]
	if !ok {
		if m.counts == nil {
			m.counts = make(map[int64]*Counts)
		}
		c = new(Counts)
		m.counts[addr] = c
	}
	return c
}

func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
