// Package cpu implements the fetch-decode-execute loop. It imports both
// machine and cache, wiring the cache engine into
// every fetch, load, and store the way a higher-level composing layer does
// in front of lower-level, independently-testable pieces.
package cpu

import (
	"github.com/sarchlab/cachetrace/cache"
	"github.com/sarchlab/cachetrace/isa"
	"github.com/sarchlab/cachetrace/machine"
)

// State is the interpreter's run state.
type State int

const (
	Running State = iota
	Halted
)

// Interpreter executes the fetch-decode-execute loop over the register file,
// routing every memory access through the cache engine.
type Interpreter struct {
	regs  *machine.RegisterFile
	cache *cache.Engine
	state State
}

// New returns an Interpreter over regs and cache, starting in the Running
// state. Execution starts at regs.PC, which New does not reset.
func New(regs *machine.RegisterFile, engine *cache.Engine) *Interpreter {
	return &Interpreter{regs: regs, cache: engine, state: Running}
}

// Run executes instructions until the interpreter halts.
func (in *Interpreter) Run() {
	for in.state == Running {
		in.step()
	}
}

// State reports the interpreter's current run state.
func (in *Interpreter) State() State {
	return in.state
}

func (in *Interpreter) step() {
	word := in.cache.Read(int(in.regs.PC))
	inst := isa.Decode(word)

	if inst.Op == isa.HALT {
		in.cache.Flush()
		in.state = Halted
		return
	}

	in.regs.PC++

	switch inst.Op {
	case isa.ADD:
		regA := in.regs.Read(inst.RegA)
		regB := in.regs.Read(inst.RegB)
		in.regs.Write(uint8(inst.Field2), regA+regB)

	case isa.NAND:
		regA := in.regs.Read(inst.RegA)
		regB := in.regs.Read(inst.RegB)
		in.regs.Write(uint8(inst.Field2), ^(regA & regB))

	case isa.LW:
		regB := in.regs.Read(inst.RegB)
		addr := regB + inst.Field2
		value := in.cache.Read(int(addr))
		in.regs.Write(inst.RegA, value)

	case isa.SW:
		regA := in.regs.Read(inst.RegA)
		regB := in.regs.Read(inst.RegB)
		addr := regB + inst.Field2
		in.cache.Write(int(addr), regA)

	case isa.BEQ:
		regA := in.regs.Read(inst.RegA)
		regB := in.regs.Read(inst.RegB)
		if regA == regB {
			in.regs.PC += inst.Field2
		}

	case isa.JALR:
		// The link write lands before the jump target is read; when
		// RegA == RegB this overwrites the very register the jump
		// target comes from, so the destination becomes pc (already
		// incremented above). Matches the reference implementation.
		link := in.regs.PC
		in.regs.Write(inst.RegA, link)
		in.regs.PC = in.regs.Read(inst.RegB)

	case isa.NOOP:
		// no effect
	}
}
