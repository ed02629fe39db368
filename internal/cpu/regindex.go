package cpu

// readR8/writeR8 decode the standard 3-bit register-select encoding
// shared by the unprefixed and CB-prefixed tables: 0=B 1=C 2=D 3=E 4=H
// 5=L 6=(HL) 7=A. Keeping this in one place means the CB table (fully
// regular across all eight selectors) can be built with a loop instead
// of 256 literal entries.
func (c *CPU) readR8(index uint8) uint8 {
	switch index {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.mmu.Read(c.HL.Uint16())
	case 7:
		return c.A
	}
	panic("cpu: invalid r8 index")
}

func (c *CPU) writeR8(index uint8, value uint8) {
	switch index {
	case 0:
		c.B = value
	case 1:
		c.C = value
	case 2:
		c.D = value
	case 3:
		c.E = value
	case 4:
		c.H = value
	case 5:
		c.L = value
	case 6:
		c.mmu.Write(c.HL.Uint16(), value)
	case 7:
		c.A = value
	default:
		panic("cpu: invalid r8 index")
	}
}

var r8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
