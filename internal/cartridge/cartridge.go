// Package cartridge parses a raw Game Boy ROM image and exposes its
// header metadata plus a flat 32 KiB ROM window and an 8 KiB external
// RAM window. Bank switching beyond that flat window is out of scope:
// Insert only ever exposes bank 0 and bank 1 of the ROM image.
package cartridge

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/brightlode/dmgcore/internal/gblog"
)

const (
	romWindowSize = 0x8000 // banks 0+1, flat
	ramWindowSize = 0x2000
)

// Cartridge is an immutable parsed ROM image plus a mutable external
// RAM window. A failed load produces an eject sentinel: a
// zero-initialised cartridge with both validity flags false, so callers don't
// need a separate error path to keep routing reads through the MMU.
type Cartridge struct {
	Header Header

	rom []byte
	ram [ramWindowSize]byte
}

// Insert loads a ROM image from path, which may be a flat .gb/.gbc
// file or a .zip archive containing one. It fails soft: a read or
// parse failure yields an eject sentinel rather than an error, since
// the MMU's SetCartridge is the actual point of rejection.
func Insert(path string) *Cartridge {
	data, err := readROM(path)
	if err != nil {
		gblog.Logger.Errorf("cartridge: %s: %v", path, err)
		return eject()
	}
	return fromBytes(data)
}

// readROM reads a flat ROM file, or - when path ends in .zip - the
// first non-directory entry of the archive. ROM redistributions are
// commonly zipped; decompressing in insert keeps that detail out of
// every caller.
func readROM(path string) ([]byte, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return os.ReadFile(path)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open zip entry %s: %w", f.Name, err)
		}
		defer rc.Close()

		buf := make([]byte, f.UncompressedSize64)
		if _, err := io.ReadFull(rc, buf); err != nil {
			return nil, fmt.Errorf("read zip entry %s: %w", f.Name, err)
		}
		return buf, nil
	}
	return nil, fmt.Errorf("zip archive %s contains no files", path)
}

func fromBytes(data []byte) *Cartridge {
	if len(data) < 0x150 {
		gblog.Logger.Errorf("cartridge: image too small for a header: %d bytes", len(data))
		return eject()
	}

	c := &Cartridge{Header: parseHeader(data)}
	c.rom = make([]byte, romWindowSize)
	copy(c.rom, data)
	for i := len(data); i < romWindowSize; i++ {
		c.rom[i] = 0xFF
	}
	return c
}

// eject is the zero-initialised sentinel returned when a ROM can't be
// read or parsed: every validity flag is false, so MMU.SetCartridge
// rejects it rather than booting garbage.
func eject() *Cartridge {
	return &Cartridge{rom: make([]byte, romWindowSize)}
}

// IsValid reports whether the cartridge passed both validity checks.
func (c *Cartridge) IsValid() bool {
	return c.Header.IsValid()
}

// ReadROM reads a byte from the flat ROM window, 0x0000-0x7FFF.
func (c *Cartridge) ReadROM(addr uint16) uint8 {
	return c.rom[addr]
}

// WriteROM logs and ignores a write to ROM: cartridge ROM is read-only
// here. A real MBC would intercept this range to select banks; that's
// out of scope for a flat ROM image.
func (c *Cartridge) WriteROM(addr uint16, value uint8) {
	gblog.Logger.Debugf("cartridge: ignored write of 0x%02X to ROM address 0x%04X", value, addr)
}

// ReadRAM reads a byte from the external RAM window, 0xA000-0xBFFF.
func (c *Cartridge) ReadRAM(addr uint16) uint8 {
	return c.ram[addr-0xA000]
}

// WriteRAM mutates the external RAM window.
func (c *Cartridge) WriteRAM(addr uint16, value uint8) {
	c.ram[addr-0xA000] = value
}

// EntryPoint is the fixed address, 0x100, where cartridge execution
// begins once the reset hand-off completes. On real hardware the bytes
// there are ordinary code (conventionally a NOP then a JP to 0x150);
// a CPU starts fetching from here rather than jumping straight past it.
func (c *Cartridge) EntryPoint() uint16 {
	return offEntryPoint
}

// NintendoLogo decodes the packed 48-byte logo at 0x104-0x133 into a
// 32x12 matrix used by the boot animation: the 48 bytes are two
// 24-byte halves: within each half, 4 rows of 12 nibbles are unpacked,
// and each of the 4 bits of a nibble expands to a 2-bit pixel pair
// packed into one output byte, replicated across 4 output rows - a
// 4 (vertical) x 2 (horizontal) block of set pixels per source bit.
func (c *Cartridge) NintendoLogo() [32][12]uint8 {
	var out [32][12]uint8

	for half := 0; half < 2; half++ {
		chunk := c.rom[offNintendoLogo+half*24 : offNintendoLogo+half*24+24]
		for i := 0; i < 48; i++ { // 48 nibbles per half: 4 rows x 12 cols
			row, col := i/12, i%12
			b := chunk[i/2]
			var nibble uint8
			if i%2 == 0 {
				nibble = b >> 4
			} else {
				nibble = b & 0x0F
			}

			var expanded uint8
			for bit := 0; bit < 4; bit++ {
				if nibble&(1<<(3-bit)) != 0 {
					expanded |= 0b11 << (6 - bit*2)
				}
			}

			baseRow := half*16 + row*4
			for dup := 0; dup < 4; dup++ {
				out[baseRow+dup][col] = expanded
			}
		}
	}

	return out
}
