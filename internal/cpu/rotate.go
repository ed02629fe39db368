package cpu

// rotateLeftCircular implements RLC n: Z=(result==0); N=0; H=0;
// C=old bit 7. Bit 7 wraps into bit 0.
func (c *CPU) rotateLeftCircular(value uint8) uint8 {
	carry := value >> 7
	result := value<<1 | carry
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.writeFlag(FlagCarry, carry == 1)
	c.shouldZeroFlag(result)
	return result
}

// rotateRightCircular implements RRC n: Z=(result==0); N=0; H=0;
// C=old bit 0. Bit 0 wraps into bit 7.
func (c *CPU) rotateRightCircular(value uint8) uint8 {
	carry := value & 0x01
	result := value>>1 | carry<<7
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.writeFlag(FlagCarry, carry == 1)
	c.shouldZeroFlag(result)
	return result
}

// rotateLeft implements RL n: rotates through the carry flag.
func (c *CPU) rotateLeft(value uint8) uint8 {
	oldCarry := c.carryBit()
	newCarry := value >> 7
	result := value<<1 | oldCarry
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.writeFlag(FlagCarry, newCarry == 1)
	c.shouldZeroFlag(result)
	return result
}

// rotateRight implements RR n: rotates through the carry flag.
func (c *CPU) rotateRight(value uint8) uint8 {
	oldCarry := c.carryBit()
	newCarry := value & 0x01
	result := value>>1 | oldCarry<<7
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.writeFlag(FlagCarry, newCarry == 1)
	c.shouldZeroFlag(result)
	return result
}

// rlca implements RLCA: like rotateLeftCircular on A, but Z is always
// reset rather than reflecting the result.
func (c *CPU) rlca() {
	c.A = c.rotateLeftCircular(c.A)
	c.clearFlag(FlagZero)
}

// rrca implements RRCA.
func (c *CPU) rrca() {
	c.A = c.rotateRightCircular(c.A)
	c.clearFlag(FlagZero)
}

// rla implements RLA.
func (c *CPU) rla() {
	c.A = c.rotateLeft(c.A)
	c.clearFlag(FlagZero)
}

// rra implements RRA.
func (c *CPU) rra() {
	c.A = c.rotateRight(c.A)
	c.clearFlag(FlagZero)
}
