package cpu

// and implements AND n: Z=(result==0); N=0; H=1; C=0.
func (c *CPU) and(a, b uint8) uint8 {
	result := a & b
	c.setFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
	c.clearFlag(FlagSubtract)
	c.shouldZeroFlag(result)
	return result
}

// or implements OR n: Z=(result==0); N=0; H=0; C=0.
func (c *CPU) or(a, b uint8) uint8 {
	result := a | b
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
	c.clearFlag(FlagSubtract)
	c.shouldZeroFlag(result)
	return result
}

// xor implements XOR n: Z=(result==0); N=0; H=0; C=0.
func (c *CPU) xor(a, b uint8) uint8 {
	result := a ^ b
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
	c.clearFlag(FlagSubtract)
	c.shouldZeroFlag(result)
	return result
}
