// Package cpu implements the Sharp LR35902 instruction set: fetch,
// decode and execute, including flag arithmetic and the interrupt
// master enable state machine. It has no notion of cycle timing; a
// Step executes exactly one instruction.
package cpu

import (
	"github.com/brightlode/dmgcore/internal/cartridge"
	"github.com/brightlode/dmgcore/internal/mmu"
)

// imeState is the interrupt-master-enable state machine. EI does not
// take effect until the instruction after it has finished executing.
type imeState uint8

const (
	imeDisabled imeState = iota
	imeEnabled
	imeArming
)

// CPU is the register file, program counter, stack pointer and
// interrupt state of the LR35902. It fetches and executes instructions
// through an MMU; it owns no memory of its own.
type CPU struct {
	PC, SP uint16
	Registers

	ime imeState

	// halted is set by HALT/STOP; while set, Step issues no fetches.
	halted bool

	Debug           bool
	DebugBreakpoint bool

	mmu *mmu.MMU
}

// New creates a CPU bound to the given MMU. Registers start zeroed;
// call Start to initialise PC from a cartridge's entry point.
func New(bus *mmu.MMU) *CPU {
	c := &CPU{mmu: bus}
	c.wireRegisterPairs()
	return c
}

// wireRegisterPairs points the AF/BC/DE/HL views at this CPU's own
// register fields. It must run after c has its final address, which is
// why New allocates the CPU and returns a pointer rather than a value.
func (c *CPU) wireRegisterPairs() {
	c.AF = &RegisterPair{&c.A, &c.F}
	c.BC = &RegisterPair{&c.B, &c.C}
	c.DE = &RegisterPair{&c.D, &c.E}
	c.HL = &RegisterPair{&c.H, &c.L}
}

// Start sets PC from the cartridge's entry point and enables IME, as a
// reset vector would on real hardware once the boot ROM hands off.
func (c *CPU) Start(cart *cartridge.Cartridge) {
	c.PC = cart.EntryPoint()
	c.ime = imeEnabled
	c.halted = false
}

// IME reports whether interrupts are currently enabled.
func (c *CPU) IME() bool {
	return c.ime == imeEnabled
}

// Halted reports whether the CPU is suspended in HALT/STOP.
func (c *CPU) Halted() bool {
	return c.halted
}

// Step fetches, decodes and executes exactly one instruction (or, if
// halted, does nothing). A pending EI transitions to enabled once the
// instruction after EI completes, matching real hardware's one
// instruction delay.
func (c *CPU) Step() {
	if c.halted {
		return
	}

	armed := c.ime == imeArming
	opcode := c.fetch()
	instr := c.decode(opcode)
	instr.Execute(c, c.readOperands(instr.Length))

	if armed && c.ime == imeArming {
		c.ime = imeEnabled
	}
}

// decode resolves an opcode byte to its Instruction, following the CB
// prefix when present.
func (c *CPU) decode(opcode uint8) Instruction {
	if opcode == 0xCB {
		return InstructionSetCB[c.fetch()]
	}
	return InstructionSet[opcode]
}

// fetch reads the byte at PC and advances PC by one.
func (c *CPU) fetch() uint8 {
	value := c.mmu.Read(c.PC)
	c.PC++
	return value
}

// readOperands reads length-1 operand bytes following the opcode
// already consumed by fetch/decode.
func (c *CPU) readOperands(length uint8) []uint8 {
	if length <= 1 {
		return nil
	}
	operands := make([]uint8, length-1)
	for i := range operands {
		operands[i] = c.fetch()
	}
	return operands
}

// halt suspends instruction fetch until cleared by the host (real
// hardware clears it on a pending interrupt; interrupt delivery is out
// of scope for this core).
func (c *CPU) halt() {
	c.halted = true
}

// enableImeNextInstruction arms IME to take effect after the
// instruction following EI finishes (EI).
func (c *CPU) enableImeNextInstruction() {
	c.ime = imeArming
}

// disableIme clears IME immediately (DI).
func (c *CPU) disableIme() {
	c.ime = imeDisabled
}

// enableImeNow sets IME immediately (RETI).
func (c *CPU) enableImeNow() {
	c.ime = imeEnabled
}
