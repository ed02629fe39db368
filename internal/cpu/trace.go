package cpu

import "fmt"

// String formats a single-line register trace, in the same field order
// as a debugger would print: A:.. F:.. B:.. C:.. D:.. E:.. H:.. L:..
// SP:.... PC:..... It is read-only introspection with no effect on
// emulation semantics.
func (c *CPU) String() string {
	return fmt.Sprintf(
		"A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X",
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC,
	)
}
