// SPDX-License-Identifier: MIT

package machine

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
)

// PageSize is the number of cells per PrintMemory row.
const PageSize = 10

// Debugger drives a Machine interactively. All printing goes to the writer
// given to NewDebugger.
type Debugger struct {
	m      *Machine
	out    io.Writer
	breaks map[int64]bool
}

// NewDebugger attaches a debugger to m.
func NewDebugger(m *Machine, out io.Writer) *Debugger {
	return &Debugger{m: m, out: out, breaks: make(map[int64]bool)}
}

// Machine returns the machine under debug.
func (d *Debugger) Machine() *Machine { return d.m }

// SetBreakpoint stops Continue before executing the instruction at addr.
func (d *Debugger) SetBreakpoint(addr int64) { d.breaks[addr] = true }

// ClearBreakpoint removes the breakpoint at addr, if any.
func (d *Debugger) ClearBreakpoint(addr int64) { delete(d.breaks, addr) }

// Breakpoints returns the breakpoint addresses in ascending order.
func (d *Debugger) Breakpoints() []int64 {
	out := make([]int64, 0, len(d.breaks))
	for a := range d.breaks {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

// Step executes n instructions, stopping early if the machine stops or
// blocks on input.
func (d *Debugger) Step(n int) State {
	s := d.m.State()
	for i := 0; i < n; i++ {
		if s = d.m.Step(); s.Stopped() || s == AwaitingInput {
			break
		}
	}
	return s
}

// Continue runs until a breakpoint is reached, the machine blocks on input,
// halts or faults. The instruction under IP is always executed first, so
// Continue makes progress from a breakpoint. The bool reports a breakpoint
// stop.
func (d *Debugger) Continue() (State, bool) {
	for first := true; ; first = false {
		if !first && d.breaks[d.m.IP()] {
			return d.m.State(), true
		}
		switch s := d.m.Step(); s {
		case Halted, Faulted, AwaitingInput:
			return s, false
		}
	}
}

// Disassemble prints up to before instructions preceding IP and after
// instructions from IP. Instruction starts are found by a linear sweep from
// address 0. Operands that name memory are shown with their current value.
func (d *Debugger) Disassemble(before, after int) {
	mem := d.m.mem
	ip := d.m.IP()
	before, after = max(before, 0), max(after, 0)

	var starts []int64
	for _, in := range Disassemble(mem, 0, len(mem)) {
		if in.Addr >= ip {
			break
		}
		starts = append(starts, in.Addr)
	}
	var list []Instruction
	for _, addr := range starts[max(len(starts)-before, 0):] {
		in := Disassemble(mem, addr, 1)[0]
		if addr+int64(in.Size()) > ip {
			// IP points into this instruction; show the overlap as data.
			in = Instruction{Addr: addr, Op: Data, Args: mem[addr:ip]}
		}
		list = append(list, in)
	}
	if ip >= 0 {
		list = append(list, Disassemble(mem, ip, after)...)
	}
	for _, in := range list {
		marker := "  "
		if in.Addr == ip {
			marker = "=>"
		} else if d.breaks[in.Addr] {
			marker = "* "
		}
		fmt.Fprintf(d.out, "%s %05d  %-28s%s\n", marker, in.Addr, in.String(), d.operandValues(in))
	}
	if ip < 0 || ip >= int64(len(mem)) {
		fmt.Fprintf(d.out, "=> %05d  <outside memory>\n", ip)
	}
}

// operandValues renders "; [9]=8 [rb+3]@12=0" for memory operands.
func (d *Debugger) operandValues(in Instruction) string {
	if in.Op == Data {
		return ""
	}
	var parts []string
	for i, a := range in.Args {
		switch in.Modes[i] {
		case Positional:
			parts = append(parts, fmt.Sprintf("%s=%d", FormatOperand(Positional, a), d.m.Peek(a)))
		case Relative:
			addr := d.m.rb + a
			parts = append(parts, fmt.Sprintf("%s@%d=%d", FormatOperand(Relative, a), addr, d.m.Peek(addr)))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "; " + strings.Join(parts, " ")
}

// PrintMemory prints n cells starting at from, PageSize cells per row.
func (d *Debugger) PrintMemory(from int64, n int) {
	from = max(from, 0)
	for row := int64(0); row < int64(n); row += PageSize {
		fmt.Fprintf(d.out, "%05d:", from+row)
		for c := row; c < row+PageSize && c < int64(n); c++ {
			fmt.Fprintf(d.out, " %d", d.m.Peek(from+c))
		}
		fmt.Fprintln(d.out)
	}
}

// PrintCounts prints every address with a non-zero counter.
func (d *Debugger) PrintCounts() {
	tw := tabwriter.NewWriter(d.out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "addr\texec\tread\twrite\t")
	for _, addr := range slices.Sorted(maps.Keys(d.m.counts)) {
		c := d.m.counts[addr]
		if *c == (Counts{}) {
			continue
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t\n", addr, c.Exec, c.Read, c.Write)
	}
	tw.Flush()
}

func (d *Debugger) printState() {
	fmt.Fprintf(d.out, "state=%s ip=%d rb=%d steps=%d\n", d.m.State(), d.m.IP(), d.m.RelativeBase(), d.m.Steps())
	if err := d.m.Fault(); err != nil {
		fmt.Fprintln(d.out, err)
	}
}

// REPL reads debugger commands from in until "q" or end of input:
//
//	s [n]        step n instructions (default 1)
//	c            continue
//	b addr       set breakpoint
//	d addr       clear breakpoint
//	l [n]        disassemble n instructions around IP (default 5)
//	m addr [n]   print n cells from addr (default 50)
//	counts       print execute/read/write counters
//	i v...       add input values
//	o            drain and print output
//	q            quit
func (d *Debugger) REPL(in io.Reader) error {
	sc := bufio.NewScanner(in)
	fmt.Fprint(d.out, "(dbg) ")
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) > 0 {
			if fields[0] == "q" {
				return nil
			}
			if err := d.exec(fields[0], fields[1:]); err != nil {
				fmt.Fprintln(d.out, "error:", err)
			}
		}
		fmt.Fprint(d.out, "(dbg) ")
	}
	return sc.Err()
}

func (d *Debugger) exec(cmd string, args []string) error {
	nums := make([]int64, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return fmt.Errorf("bad number %q", a)
		}
		nums[i] = v
	}
	arg := func(i int, def int64) int64 {
		if i < len(nums) {
			return nums[i]
		}
		return def
	}

	switch cmd {
	case "s":
		d.Step(int(arg(0, 1)))
		d.Disassemble(0, 1)
		d.printState()
	case "c":
		if _, hit := d.Continue(); hit {
			fmt.Fprintf(d.out, "breakpoint at %d\n", d.m.IP())
		}
		d.printState()
	case "b", "d":
		if len(nums) != 1 {
			return fmt.Errorf("%s needs one address", cmd)
		}
		if cmd == "b" {
			d.SetBreakpoint(nums[0])
		} else {
			d.ClearBreakpoint(nums[0])
		}
		fmt.Fprintln(d.out, "breakpoints:", d.Breakpoints())
	case "l":
		n := int(arg(0, 5))
		d.Disassemble(n/2, n-n/2)
	case "m":
		if len(nums) == 0 {
			return fmt.Errorf("m needs an address")
		}
		d.PrintMemory(nums[0], int(arg(1, 50)))
	case "counts":
		d.PrintCounts()
	case "i":
		d.m.AddInput(nums...)
	case "o":
		fmt.Fprintln(d.out, d.m.DrainOutput())
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
