package cpu

// ldHLSPOffset implements LD HL,SP+e8: same flag/arithmetic rules as
// ADD SP,e8, but the result is stored into HL and SP is untouched.
func (c *CPU) ldHLSPOffset(e8 int8) {
	c.HL.SetUint16(c.addSPSigned(e8))
}
