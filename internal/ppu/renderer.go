package ppu

import "github.com/brightlode/dmgcore/internal/ppu/palette"

const (
	// ScreenWidth and ScreenHeight are the visible screen's dimensions.
	ScreenWidth  = 160
	ScreenHeight = 144

	backgroundSize = 256 // 32 tiles * 8 pixels
)

// Renderer composes a PPU's tile-map, tile-set, and scroll registers
// with a Palette to produce displayable output. It holds no state of
// its own; every call decodes directly from the PPU it was given.
type Renderer struct {
	ppu     *PPU
	palette palette.Palette
}

// NewRenderer returns a Renderer over ppu using pal for colour lookup.
func NewRenderer(ppu *PPU, pal palette.Palette) *Renderer {
	return &Renderer{ppu: ppu, palette: pal}
}

// RenderBackground renders the 160x144 visible window of the 256x256
// background into Palette colours. For each screen pixel (x,y), it
// wraps (x+SCX, y+SCY) into the background space, maps that to a
// tile-map cell, decodes the tile living there, and looks up the pixel
// within it.
func (r *Renderer) RenderBackground() [ScreenHeight][ScreenWidth]palette.Color {
	var out [ScreenHeight][ScreenWidth]palette.Color

	scx, scy := int(r.ppu.SCX()), int(r.ppu.SCY())
	for y := 0; y < ScreenHeight; y++ {
		bgY := (y + scy) % backgroundSize
		tileRow, pixelRow := bgY/8, bgY%8
		for x := 0; x < ScreenWidth; x++ {
			bgX := (x + scx) % backgroundSize
			tileCol, pixelCol := bgX/8, bgX%8

			id := r.ppu.GetTileID(tileCol, tileRow)
			tile := FromAddress(r.ppu, uint16(id))
			out[y][x] = r.palette.At(tile.GetPixel(pixelCol, pixelRow))
		}
	}

	return out
}

const (
	tileSetRows = 24 // 384 tiles = 24 rows x 16 columns of 8x8 blocks
	tileSetCols = 16
)

// RenderTileSet dumps all 384 tiles of the tile-set as a 24x16 grid of
// 8x8 blocks, independent of the tile-map - a debug view for a tile
// viewer and for tests asserting a decoded tile (such as the boot logo)
// looks right.
func (r *Renderer) RenderTileSet() [tileSetRows * 8][tileSetCols * 8]palette.Color {
	var out [tileSetRows * 8][tileSetCols * 8]palette.Color

	for id := 0; id < tileSetRows*tileSetCols; id++ {
		tile := FromAddress(r.ppu, uint16(id))
		blockRow, blockCol := id/tileSetCols, id%tileSetCols
		for py := 0; py < 8; py++ {
			for px := 0; px < 8; px++ {
				out[blockRow*8+py][blockCol*8+px] = r.palette.At(tile.GetPixel(px, py))
			}
		}
	}

	return out
}
