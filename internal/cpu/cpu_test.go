package cpu

import (
	"os"
	"testing"

	"github.com/brightlode/dmgcore/internal/cartridge"
	"github.com/brightlode/dmgcore/internal/mmu"
)

// validROM returns a 32 KiB image with a passing logo and header
// checksum, suitable for installing via MMU.SetCartridge.
func validROM(t *testing.T) []byte {
	t.Helper()
	rom := make([]byte, 0x8000)
	for i := range rom {
		rom[i] = 0xFF
	}
	logo := []byte{
		0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83,
		0x00, 0x0C, 0x00, 0x0D, 0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
		0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99, 0xBB, 0xBB, 0x67, 0x63,
		0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
	}
	copy(rom[0x104:], logo)
	rom[0x147] = 0 // ROM ONLY

	checksum := uint8(0)
	for addr := 0x134; addr <= 0x14C; addr++ {
		checksum = checksum - rom[addr] - 1
	}
	rom[0x14D] = checksum
	return rom
}

func newTestCPU(t *testing.T) (*CPU, *mmu.MMU) {
	t.Helper()
	bus := mmu.New()
	rom := validROM(t)
	cart := cartridge.Insert(writeTempROM(t, rom))
	if err := bus.SetCartridge(cart); err != nil {
		t.Fatalf("SetCartridge: %v", err)
	}
	return New(bus), bus
}

func writeTempROM(t *testing.T, data []byte) string {
	t.Helper()
	path := t.TempDir() + "/test.gb"
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp rom: %v", err)
	}
	return path
}

func TestStep_LDBd8(t *testing.T) {
	c, bus := newTestCPU(t)
	c.PC = 0xC000
	bus.Write(0xC000, 0x06) // LD B,d8
	bus.Write(0xC001, 0x42)

	c.Step()

	if c.B != 0x42 {
		t.Fatalf("B = 0x%02X, want 0x42", c.B)
	}
	if c.PC != 0xC002 {
		t.Fatalf("PC = 0x%04X, want 0xC002", c.PC)
	}
}

func TestStep_AddA_FlagTable(t *testing.T) {
	c, bus := newTestCPU(t)
	c.A = 0x3A
	c.PC = 0xC000
	bus.Write(0xC000, 0xC6) // ADD A,n8
	bus.Write(0xC001, 0xC6)

	c.Step()

	if c.A != 0x00 {
		t.Fatalf("A = 0x%02X, want 0x00", c.A)
	}
	if !c.isFlagSet(FlagZero) || c.isFlagSet(FlagSubtract) || !c.isFlagSet(FlagHalfCarry) || !c.isFlagSet(FlagCarry) {
		t.Fatalf("F = 0x%02X, want Z=1 N=0 H=1 C=1", c.F)
	}
}

func TestStep_DAA(t *testing.T) {
	c, bus := newTestCPU(t)
	c.A = 0x45
	c.F = 0
	c.PC = 0xC000
	bus.Write(0xC000, 0xC6) // ADD A,0x38
	bus.Write(0xC001, 0x38)
	bus.Write(0xC002, 0x27) // DAA

	c.Step()
	if c.A != 0x7D || c.isFlagSet(FlagHalfCarry) {
		t.Fatalf("after ADD: A=0x%02X H=%v, want A=0x7D H=false", c.A, c.isFlagSet(FlagHalfCarry))
	}

	c.Step()
	if c.A != 0x83 {
		t.Fatalf("after DAA: A=0x%02X, want 0x83", c.A)
	}
	if c.isFlagSet(FlagZero) || c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
		t.Fatalf("after DAA: F=0x%02X, want Z=0 H=0 C=0", c.F)
	}
}

func TestStep_JRConditional(t *testing.T) {
	// ROM is read-only through the bus, so the instruction is placed in
	// the cartridge image before it is installed.
	bus := mmu.New()
	rom := validROM(t)
	rom[0x1000] = 0x28 // JR Z,e8
	rom[0x1001] = 0x05
	cart := cartridge.Insert(writeTempROM(t, rom))
	if err := bus.SetCartridge(cart); err != nil {
		t.Fatalf("SetCartridge: %v", err)
	}
	c := New(bus)
	c.PC = 0x1000
	c.setFlag(FlagZero)

	c.Step()

	if c.PC != 0x1007 {
		t.Fatalf("PC = 0x%04X, want 0x1007", c.PC)
	}
}

func TestIME_EIDelayedOneInstruction(t *testing.T) {
	c, bus := newTestCPU(t)
	c.PC = 0xC000
	bus.Write(0xC000, 0xFB) // EI
	bus.Write(0xC001, 0x00) // NOP

	c.Step()
	if c.IME() {
		t.Fatal("IME should not yet be enabled immediately after EI")
	}

	c.Step()
	if !c.IME() {
		t.Fatal("IME should be enabled after the instruction following EI")
	}
}

func TestStack_PushPopRoundTrip(t *testing.T) {
	c, _ := newTestCPU(t)
	c.SP = 0xFFFE

	c.push(0xBEEF)
	if c.SP != 0xFFFC {
		t.Fatalf("SP after push = 0x%04X, want 0xFFFC", c.SP)
	}

	got := c.pop()
	if got != 0xBEEF {
		t.Fatalf("pop() = 0x%04X, want 0xBEEF", got)
	}
	if c.SP != 0xFFFE {
		t.Fatalf("SP after pop = 0x%04X, want 0xFFFE", c.SP)
	}
}

func TestPopAF_MasksLowNibble(t *testing.T) {
	c, _ := newTestCPU(t)
	c.SP = 0xFFFE
	c.A, c.F = 0x12, 0xFF

	c.push(c.AF.Uint16())
	InstructionSet[0xF1].Execute(c, nil) // POP AF

	if c.F != 0xF0 {
		t.Fatalf("F after POP AF = 0x%02X, want low nibble zeroed (0xF0)", c.F)
	}
}

func TestIncDec_Restores(t *testing.T) {
	for n := 0; n < 256; n++ {
		c, _ := newTestCPU(t)
		c.B = uint8(n)
		inc := c.increment(c.B)
		dec := c.decrement(inc)
		if dec != uint8(n) {
			t.Fatalf("INC;DEC(%d) = %d, want %d", n, dec, n)
		}
	}
}

func TestSwap_IsOwnInverse(t *testing.T) {
	c, _ := newTestCPU(t)
	for n := 0; n < 256; n++ {
		v := uint8(n)
		if got := c.swap(c.swap(v)); got != v {
			t.Fatalf("SWAP(SWAP(0x%02X)) = 0x%02X, want 0x%02X", v, got, v)
		}
	}
}

func TestRLC_EightTimesIsIdentity(t *testing.T) {
	c, _ := newTestCPU(t)
	v := uint8(0x6B)
	got := v
	for i := 0; i < 8; i++ {
		got = c.rotateLeftCircular(got)
	}
	if got != v {
		t.Fatalf("RLC applied 8 times = 0x%02X, want 0x%02X", got, v)
	}
}

func TestCondition_MatchesFlags(t *testing.T) {
	c, _ := newTestCPU(t)

	c.clearFlag(FlagZero)
	c.clearFlag(FlagCarry)
	if !c.condition(condNZ) || c.condition(condZ) {
		t.Fatalf("condition with Z=0 C=0: NZ=%v Z=%v, want NZ=true Z=false", c.condition(condNZ), c.condition(condZ))
	}
	if !c.condition(condNC) || c.condition(condC) {
		t.Fatalf("condition with Z=0 C=0: NC=%v C=%v, want NC=true C=false", c.condition(condNC), c.condition(condC))
	}

	c.setFlag(FlagZero)
	c.setFlag(FlagCarry)
	if c.condition(condNZ) || !c.condition(condZ) {
		t.Fatalf("condition with Z=1 C=1: NZ=%v Z=%v, want NZ=false Z=true", c.condition(condNZ), c.condition(condZ))
	}
	if c.condition(condNC) || !c.condition(condC) {
		t.Fatalf("condition with Z=1 C=1: NC=%v C=%v, want NC=false C=true", c.condition(condNC), c.condition(condC))
	}
}

// condition must panic on any code outside the four defined condition
// codes: that path is unreachable through a correctly built
// instruction table, but condition itself must still guard it.
func TestCondition_InvalidCodePanics(t *testing.T) {
	c, _ := newTestCPU(t)

	defer func() {
		if recover() == nil {
			t.Fatal("condition(4) should panic on an invalid condition code")
		}
	}()
	c.condition(4)
}

func TestStart_SetsPCFromEntryPointAndEnablesIME(t *testing.T) {
	bus := mmu.New()
	rom := validROM(t)
	cart := cartridge.Insert(writeTempROM(t, rom))
	if err := bus.SetCartridge(cart); err != nil {
		t.Fatalf("SetCartridge: %v", err)
	}

	c := New(bus)
	c.Start(cart)

	if c.PC != cart.EntryPoint() {
		t.Fatalf("PC = 0x%04X, want 0x%04X", c.PC, cart.EntryPoint())
	}
	if !c.IME() {
		t.Fatal("Start should enable IME")
	}
	if c.Halted() {
		t.Fatal("Start should clear halted")
	}
}
