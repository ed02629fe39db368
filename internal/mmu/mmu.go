// Package mmu provides the central memory bus: every read and write a
// component makes flows through it, routed to cartridge, PPU, work
// RAM, or high RAM by address range.
package mmu

import (
	"github.com/brightlode/dmgcore/internal/cartridge"
	"github.com/brightlode/dmgcore/internal/gblog"
	"github.com/brightlode/dmgcore/internal/ppu"
)

const (
	wramSize = 0x2000 // 0xC000-0xDFFF
	hramSize = 0x7F   // 0xFF80-0xFFFE
	ioSize   = 0x80   // 0xFF00-0xFF7F

	wramBase = 0xC000
	hramBase = 0xFF80
	ioBase   = 0xFF00

	// Boot-animation parameters: kept as named constants rather than
	// literals so a host can retune the scroll-in without touching
	// on_frame's logic.
	bootStartY   = 80
	bootTargetY  = 0
	bootStep     = 1
	bootEndDelay = 30

	// Fixed tile-map position the boot logo is written to and
	// referenced from.
	logoTileMapX = 4
	logoTileMapY = 8
	// background sentinel the tile-map is filled with before the logo
	// is written over it.
	tileMapSentinel = 0
)

// MMU is the Game Boy's central memory bus.
type MMU struct {
	cart *cartridge.Cartridge
	ppu  *ppu.PPU

	wram [wramSize]uint8
	hram [hramSize]uint8
	io   [ioSize]uint8

	boot bootAnimation
}

type bootAnimation struct {
	active    bool
	currentY  int
	targetY   int
	step      int
	delayLeft int
}

// New returns an MMU with a fresh PPU and no cartridge installed.
func New() *MMU {
	return &MMU{ppu: ppu.New()}
}

// PPU returns the bus's PPU, for a renderer to consult.
func (m *MMU) PPU() *ppu.PPU {
	return m.ppu
}

// Cartridge returns the installed cartridge, or nil if no SetCartridge
// call has succeeded yet. A rejected call leaves the previously
// installed cartridge in place.
func (m *MMU) Cartridge() *cartridge.Cartridge {
	return m.cart
}

// SetCartridge installs cart and triggers the boot sequence. It fails
// fast - leaving any previously installed cartridge untouched - if
// cart is not valid.
func (m *MMU) SetCartridge(cart *cartridge.Cartridge) error {
	if !cart.IsValid() {
		gblog.Logger.Errorf("mmu: rejected cartridge %q: invalid header", cart.Header.Title)
		return errInvalidCartridge
	}

	m.cart = cart
	m.runBootSequence()
	return nil
}

func (m *MMU) runBootSequence() {
	m.ppu.Reset()

	for y := 0; y < ppu.TileMapHeight; y++ {
		for x := 0; x < ppu.TileMapWidth; x++ {
			m.ppu.SetTileID(x, y, tileMapSentinel)
		}
	}

	m.writeLogoTiles()

	m.ppu.SetSCX(0)
	m.ppu.SetSCY(bootStartY)

	m.boot = bootAnimation{
		active:   true,
		currentY: bootStartY,
		targetY:  bootTargetY,
		step:     bootStep,
	}
}

// writeLogoTiles decodes the cartridge's Nintendo logo into the
// tile-set and references the decoded tiles from the tile-map at a
// fixed position, starting at tile ID 1 (ID 0 is left as the
// background sentinel).
func (m *MMU) writeLogoTiles() {
	logo := m.cart.NintendoLogo()

	// logo is a 32-row x 12-column matrix of packed pixel bytes, one
	// byte per tile row. The logo has no grey shades, so the same byte
	// serves as both the low and high bit-plane of each tile row: a
	// set bit decodes to pixel value 3 (black), a clear bit to 0
	// (white).
	const tilesAcross = 12
	const tileRows = 4 // 32 logo rows / 8 rows per tile

	tileID := uint8(1)
	for tr := 0; tr < tileRows; tr++ {
		for col := 0; col < tilesAcross; col++ {
			var raw [16]uint8
			for row := 0; row < 8; row++ {
				b := logo[tr*8+row][col]
				raw[row*2] = b
				raw[row*2+1] = b
			}
			base := uint16(0x8000) + uint16(tileID)*16
			for i, v := range raw {
				m.ppu.WriteVRAM(base+uint16(i), v)
			}
			m.ppu.SetTileID(logoTileMapX+col, logoTileMapY+tr, tileID)
			if tileID < 255 {
				tileID++
			}
		}
	}
}

// OnFrame advances the boot animation by one frame: step current_y
// toward target_y; once the target is reached, wait bootEndDelay
// frames and then clear VRAM. It is a no-op once the animation has
// finished and its delay has elapsed.
func (m *MMU) OnFrame() {
	if !m.boot.active {
		return
	}

	if m.boot.currentY != m.boot.targetY {
		if m.boot.currentY > m.boot.targetY {
			m.boot.currentY -= m.boot.step
			if m.boot.currentY < m.boot.targetY {
				m.boot.currentY = m.boot.targetY
			}
		} else {
			m.boot.currentY += m.boot.step
			if m.boot.currentY > m.boot.targetY {
				m.boot.currentY = m.boot.targetY
			}
		}
		m.ppu.SetSCY(uint8(m.boot.currentY))
		return
	}

	if m.boot.delayLeft == 0 {
		m.boot.delayLeft = bootEndDelay
	}
	if m.delayFrames() {
		m.ppu.Reset()
		m.boot.active = false
	}
}

// delayFrames is the boot animation's frame down-counter, held on this
// MMU: it decrements delayLeft and reports true on the frame it reaches
// zero.
func (m *MMU) delayFrames() bool {
	m.boot.delayLeft--
	return m.boot.delayLeft <= 0
}

// Read returns the byte at address, routed per the bus's memory map.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address <= 0x7FFF:
		return m.cart.ReadROM(address)
	case address <= 0x9FFF:
		return m.ppu.ReadVRAM(address)
	case address <= 0xBFFF:
		return m.cart.ReadRAM(address)
	case address <= 0xDFFF:
		return m.wram[address-wramBase]
	case address <= 0xFDFF: // echo of WRAM
		gblog.Logger.Debugf("mmu: read from echo address 0x%04X", address)
		return 0xFF
	case address <= 0xFE9F:
		return m.ppu.ReadOAM(address)
	case address <= 0xFEFF: // invalid OAM
		gblog.Logger.Debugf("mmu: read from invalid OAM address 0x%04X", address)
		return 0xFF
	case address <= 0xFF7F:
		return m.io[address-ioBase]
	case address <= 0xFFFE:
		return m.hram[address-hramBase]
	default: // 0xFFFF, IE register
		return 0xFF
	}
}

// Write stores value at address, routed per the bus's memory map. Out
// of range writes (ROM, echo, invalid OAM, IE) are logged and ignored
// rather than rejected, matching real hardware's tolerance of
// misbehaving software.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address <= 0x7FFF:
		m.cart.WriteROM(address, value)
	case address <= 0x9FFF:
		m.ppu.WriteVRAM(address, value)
	case address <= 0xBFFF:
		m.cart.WriteRAM(address, value)
	case address <= 0xDFFF:
		m.wram[address-wramBase] = value
	case address <= 0xFDFF:
		gblog.Logger.Debugf("mmu: ignored write of 0x%02X to echo address 0x%04X", value, address)
	case address <= 0xFE9F:
		m.ppu.WriteOAM(address, value)
	case address <= 0xFEFF:
		gblog.Logger.Debugf("mmu: ignored write of 0x%02X to invalid OAM address 0x%04X", value, address)
	case address <= 0xFF7F:
		m.io[address-ioBase] = value
	case address <= 0xFFFE:
		m.hram[address-hramBase] = value
	default:
		gblog.Logger.Debugf("mmu: ignored write of 0x%02X to IE register", value)
	}
}
