package cpu

import "testing"

// A CB instruction is two bytes on the wire (0xCB + the real opcode)
// but InstructionSetCB entries must carry Length 1: decode already
// consumes the second byte to select the table entry, so Step must not
// read a third byte as an operand.
func TestCBInstructions_LengthIsOne(t *testing.T) {
	for i, instr := range InstructionSetCB {
		if instr.Length != 1 {
			t.Fatalf("InstructionSetCB[0x%02X].Length = %d, want 1", i, instr.Length)
		}
	}
}

func TestStep_BitSetRes(t *testing.T) {
	c, bus := newTestCPU(t)
	c.PC = 0xC000
	c.B = 0x00

	bus.Write(0xC000, 0xCB)
	bus.Write(0xC001, 0xC0) // SET 0,B
	c.Step()
	if c.B != 0x01 {
		t.Fatalf("B after SET 0,B = 0x%02X, want 0x01", c.B)
	}
	if c.PC != 0xC002 {
		t.Fatalf("PC after one CB instruction = 0x%04X, want 0xC002", c.PC)
	}

	bus.Write(0xC002, 0xCB)
	bus.Write(0xC003, 0x40) // BIT 0,B
	c.Step()
	if c.isFlagSet(FlagZero) {
		t.Fatal("BIT 0,B with bit set should clear Zero")
	}

	bus.Write(0xC004, 0xCB)
	bus.Write(0xC005, 0x80) // RES 0,B
	c.Step()
	if c.B != 0x00 {
		t.Fatalf("B after RES 0,B = 0x%02X, want 0x00", c.B)
	}
}
