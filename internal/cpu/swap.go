package cpu

// swap implements SWAP n: swaps the upper and lower nibbles.
// Z=(result==0); N=0; H=0; C=0.
func (c *CPU) swap(value uint8) uint8 {
	result := value<<4 | value>>4
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
	c.shouldZeroFlag(result)
	return result
}
