package cpu

// testBit implements BIT u3,n: Z=(bit==0); N=0; H=1; C unchanged.
func (c *CPU) testBit(value uint8, position uint8) {
	c.writeFlag(FlagZero, (value>>position)&1 == 0)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// resetBit implements RES u3,n: clears the given bit, no flag effects.
func (c *CPU) resetBit(value uint8, position uint8) uint8 {
	return value &^ (1 << position)
}

// setBit implements SET u3,n: sets the given bit, no flag effects.
func (c *CPU) setBit(value uint8, position uint8) uint8 {
	return value | (1 << position)
}
