// Package ppu owns video RAM and object attribute memory and decodes
// them into tiles and a background for a renderer to display.
package ppu

const (
	// VRAMSize is the size of the VRAM address window, 0x8000-0x9FFF.
	VRAMSize = 0x2000
	// OAMSize is the size of the OAM address window, 0xFE00-0xFE9F.
	OAMSize = 0xA0

	vramBase = 0x8000
	oamBase  = 0xFE00

	tileSetBase = 0x8000 // 384 tiles of 16 bytes, 0x8000-0x97FF
	tileMapBase = 0x9800 // 32x32 one-byte tile IDs, 0x9800-0x9FFF

	// TileMapWidth and TileMapHeight are the tile-map's dimensions in
	// tiles; a single 32x32 map is used in the base configuration.
	TileMapWidth  = 32
	TileMapHeight = 32
)

// PPU owns VRAM and OAM plus the SCX/SCY scroll registers. It decodes
// bytes on demand through Tile.FromAddress rather than caching decoded
// tiles, since nothing here runs a real-time scanline renderer.
type PPU struct {
	vram [VRAMSize]uint8
	oam  [OAMSize]uint8

	scx uint8
	scy uint8
}

// New returns a PPU with zeroed VRAM and OAM.
func New() *PPU {
	return &PPU{}
}

// Reset fills VRAM and OAM with 0, as on a hard power-on.
func (p *PPU) Reset() {
	for i := range p.vram {
		p.vram[i] = 0
	}
	for i := range p.oam {
		p.oam[i] = 0
	}
}

// ReadVRAM reads a byte from VRAM, addr in 0x8000-0x9FFF.
func (p *PPU) ReadVRAM(addr uint16) uint8 {
	return p.vram[addr-vramBase]
}

// WriteVRAM writes a byte to VRAM.
func (p *PPU) WriteVRAM(addr uint16, value uint8) {
	p.vram[addr-vramBase] = value
}

// ReadOAM reads a byte from OAM, addr in 0xFE00-0xFE9F.
func (p *PPU) ReadOAM(addr uint16) uint8 {
	return p.oam[addr-oamBase]
}

// WriteOAM writes a byte to OAM.
func (p *PPU) WriteOAM(addr uint16, value uint8) {
	p.oam[addr-oamBase] = value
}

// GetTile decodes the tile-set entry id (0-383, though only 0-255 is
// addressable in an 8-bit tile ID) directly from VRAM.
func (p *PPU) GetTile(id uint8) Tile {
	return FromAddress(p, uint16(id))
}

// GetTileID looks up the tile-map entry at tile coordinate (x,y), each
// in [0,32), returning the tile-set ID stored there.
func (p *PPU) GetTileID(x, y int) uint8 {
	offset := uint16(y*TileMapWidth + x)
	return p.vram[tileMapBase-vramBase+offset]
}

// SetTileID writes a tile-set ID into the tile-map at (x,y).
func (p *PPU) SetTileID(x, y int, id uint8) {
	offset := uint16(y*TileMapWidth + x)
	p.vram[tileMapBase-vramBase+offset] = id
}

// SCX and SCY are the background scroll registers. They are held here
// rather than routed through the MMU's I/O window, per the boot
// sequence's scroll-in effect operating directly on the PPU.
func (p *PPU) SCX() uint8 { return p.scx }
func (p *PPU) SCY() uint8 { return p.scy }

func (p *PPU) SetSCX(v uint8) { p.scx = v }
func (p *PPU) SetSCY(v uint8) { p.scy = v }

// GetScreenScroll returns the current (SCX, SCY) pair, for a host
// renderer that wants both registers in one call.
func (p *PPU) GetScreenScroll() (uint8, uint8) {
	return p.scx, p.scy
}
