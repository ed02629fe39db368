package cartridge

import "fmt"

// Fixed header offsets within bank 0, relative to the start of the ROM
// image (not relative to 0x100).
const (
	offEntryPoint      = 0x100
	offNintendoLogo    = 0x104
	nintendoLogoSize   = 0x30
	offTitle           = 0x134
	titleSize          = 16
	offManufacturer    = 0x13F
	manufacturerSize   = 4
	offNewLicensee     = 0x144
	offSGBFlag         = 0x146
	offCartridgeType   = 0x147
	offROMSize         = 0x148
	offRAMSize         = 0x149
	offDestinationCode = 0x14A
	offOldLicensee     = 0x14B
	offMaskROMVersion  = 0x14C
	offHeaderChecksum  = 0x14D
	offGlobalChecksum  = 0x14E
)

// nintendoLogo is the 48-byte bitmap every licensed cartridge carries
// at 0x104-0x133; the boot animation refuses to continue unless a
// cartridge's copy matches this exactly.
var nintendoLogo = [nintendoLogoSize]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C,
	0x00, 0x0D, 0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6,
	0xDD, 0xDD, 0xD9, 0x99, 0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC,
	0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// Type is the cartridge hardware/MBC identification byte at 0x147,
// modelled as a closed set of known variants plus a catch-all that
// carries the raw byte forward.
type Type struct {
	Name    string
	Unknown bool
	Raw     uint8
}

func (t Type) String() string {
	if t.Unknown {
		return fmt.Sprintf("UNKNOWN(0x%02X)", t.Raw)
	}
	return t.Name
}

var cartridgeTypes = map[uint8]string{
	0x00: "ROM_ONLY",
	0x01: "MBC1", 0x02: "MBC1_RAM", 0x03: "MBC1_RAM_BATTERY",
	0x05: "MBC2", 0x06: "MBC2_BATTERY",
	0x08: "ROM_RAM", 0x09: "ROM_RAM_BATTERY",
	0x0B: "MMM01", 0x0C: "MMM01_RAM", 0x0D: "MMM01_RAM_BATTERY",
	0x0F: "MBC3_TIMER_BATTERY", 0x10: "MBC3_TIMER_RAM_BATTERY",
	0x11: "MBC3", 0x12: "MBC3_RAM", 0x13: "MBC3_RAM_BATTERY",
	0x19: "MBC5", 0x1A: "MBC5_RAM", 0x1B: "MBC5_RAM_BATTERY",
	0x1C: "MBC5_RUMBLE", 0x1D: "MBC5_RUMBLE_RAM", 0x1E: "MBC5_RUMBLE_RAM_BATTERY",
	0x1F: "POCKET_CAMERA",
	0xFC: "TAMA5",
	0xFD: "HUC3",
	0xFE: "HUC1",
}

func decodeCartridgeType(raw uint8) Type {
	if name, ok := cartridgeTypes[raw]; ok {
		return Type{Name: name, Raw: raw}
	}
	return Type{Unknown: true, Raw: raw}
}

// romSizes maps the ROM-size code at 0x148 to (total bytes, bank count).
var romSizes = map[uint8][2]int{
	0x00: {32 * 1024, 2},
	0x01: {64 * 1024, 4},
	0x02: {128 * 1024, 8},
	0x03: {256 * 1024, 16},
	0x04: {512 * 1024, 32},
	0x05: {1024 * 1024, 64},
	0x06: {2 * 1024 * 1024, 128},
	0x07: {4 * 1024 * 1024, 256},
	0x08: {8 * 1024 * 1024, 512},
	0x52: {1152 * 1024, 72},
	0x53: {1280 * 1024, 80},
	0x54: {1536 * 1024, 96},
}

// ramSizes maps the RAM-size code at 0x149 to total bytes.
var ramSizes = map[uint8]int{
	0x00: 0,
	0x01: 2 * 1024,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Destination is the region code at 0x14A.
type Destination uint8

const (
	DestinationJapan Destination = iota
	DestinationOverseas
	DestinationUnknown
)

func decodeDestination(raw uint8) Destination {
	switch raw {
	case 0x00:
		return DestinationJapan
	case 0x01:
		return DestinationOverseas
	default:
		return DestinationUnknown
	}
}

func (d Destination) String() string {
	switch d {
	case DestinationJapan:
		return "Japan"
	case DestinationOverseas:
		return "Overseas"
	default:
		return "Unknown"
	}
}

// Licensee carries either a known publisher name or the raw byte(s)
// when the code isn't one this table recognizes.
type Licensee struct {
	Name    string
	Unknown bool
	Raw     string
}

func (l Licensee) String() string {
	if l.Unknown {
		return fmt.Sprintf("UNKNOWN(%q)", l.Raw)
	}
	return l.Name
}

// oldLicensees maps the single-byte 0x14B code, used unless that byte
// is the 0x33 sentinel selecting the two-character new-licensee table.
var oldLicensees = map[uint8]string{
	0x00: "none", 0x01: "Nintendo", 0x08: "Capcom", 0x09: "Hot-B",
	0x0A: "Jaleco", 0x0B: "Coconuts Japan", 0x0C: "Elite Systems",
	0x13: "Electronic Arts", 0x18: "Hudson Soft", 0x19: "ITC Entertainment",
	0x1A: "Yanoman", 0x1D: "Japan Clary", 0x1F: "Virgin Games",
	0x24: "PCM Complete", 0x25: "San-X", 0x28: "Kemco Japan", 0x29: "Seta",
	0x30: "Infogrames", 0x31: "Nintendo", 0x32: "Bandai",
	0x34: "Konami", 0x35: "Hector", 0x38: "Capcom", 0x39: "Banpresto",
	0x3C: "Entertainment Interactive", 0x3E: "Gremlin",
	0x41: "Ubisoft", 0x42: "Atlus", 0x44: "Malibu", 0x46: "Angel",
	0x47: "Spectrum Holobyte", 0x49: "Irem", 0x4A: "Virgin Games",
	0x4D: "Malibu", 0x4F: "U.S. Gold", 0x50: "Absolute",
	0x51: "Acclaim", 0x52: "Activision", 0x53: "American Sammy",
	0x54: "Gametek", 0x55: "Park Place", 0x56: "LJN", 0x57: "Matchbox",
	0x59: "Milton Bradley", 0x5A: "Mindscape", 0x5B: "Romstar",
	0x5C: "Naxat Soft", 0x5D: "Tradewest", 0x60: "Titus",
	0x61: "Virgin Games", 0x67: "Ocean Software", 0x69: "Electronic Arts",
	0x6E: "Elite Systems", 0x6F: "Electro Brain", 0x70: "Infogrames",
	0x71: "Interplay", 0x72: "Broderbund", 0x73: "Sculptured Software",
	0x75: "SCI", 0x78: "THQ", 0x79: "Accolade", 0x7A: "Triffix Entertainment",
	0x7C: "Microprose", 0x7F: "Kemco", 0x80: "Misawa Entertainment",
	0x83: "LOZC", 0x86: "Tokuma Shoten", 0x8B: "Bullet-Proof Software",
	0x8C: "Vic Tokai", 0x8E: "Ape", 0x8F: "I'Max", 0x91: "Chunsoft",
	0x92: "Video System", 0x93: "Tsubaraya Productions", 0x95: "Varie",
	0x96: "Yonezawa/s'pal", 0x97: "Kaneko", 0x99: "Arc",
	0x9A: "Nihon Bussan", 0x9B: "Tecmo", 0x9C: "Imagineer", 0x9D: "Banpresto",
	0x9F: "Nova", 0xA1: "Hori Electric", 0xA2: "Bandai", 0xA4: "Konami",
	0xA6: "Kawada", 0xA7: "Takara", 0xA9: "Technos Japan",
	0xAA: "Broderbund", 0xAC: "Toei Animation", 0xAD: "Toho",
	0xAF: "Namco", 0xB0: "Acclaim", 0xB1: "ASCII or Nexsoft",
	0xB2: "Bandai", 0xB4: "Square Enix", 0xB6: "HAL Laboratory",
	0xB7: "SNK", 0xB9: "Pony Canyon", 0xBA: "Culture Brain",
	0xBB: "Sunsoft", 0xBD: "Sony Imagesoft", 0xBF: "Sammy",
	0xC0: "Taito", 0xC2: "Kemco", 0xC3: "Square", 0xC4: "Tokuma Shoten",
	0xC5: "Data East", 0xC6: "Tonkin House", 0xC8: "Koei",
	0xC9: "UFL", 0xCA: "Ultra", 0xCB: "Vap", 0xCC: "Use Corporation",
	0xCD: "Meldac", 0xCE: "Pony Canyon", 0xCF: "Angel", 0xD0: "Taito",
	0xD1: "Sofel", 0xD2: "Quest", 0xD3: "Sigma Enterprises",
	0xD4: "ASK Kodansha", 0xD6: "Naxat Soft", 0xD7: "Copya System",
	0xD9: "Banpresto", 0xDA: "Tomy", 0xDB: "LJN", 0xDD: "NCS",
	0xDE: "Human", 0xDF: "Altron", 0xE0: "Jaleco", 0xE1: "Towa Chiki",
	0xE2: "Yutaka", 0xE3: "Varie", 0xE5: "Epcoh", 0xE7: "Athena",
	0xE8: "Asmik Ace Entertainment", 0xE9: "Natsume", 0xEA: "King Records",
	0xEB: "Atlus", 0xEC: "Epic/Sony Records", 0xEE: "IGS",
	0xF0: "A Wave", 0xF3: "Extreme Entertainment", 0xFF: "LJN",
}

// newLicensees maps the two-ASCII-digit 0x144-0x145 code.
var newLicensees = map[string]string{
	"00": "none", "01": "Nintendo", "08": "Capcom", "13": "Electronic Arts",
	"18": "Hudson Soft", "19": "B-AI", "20": "KSS", "22": "POW",
	"24": "PCM Complete", "25": "San-X", "28": "Kemco Japan", "29": "Seta",
	"30": "Viacom", "31": "Nintendo", "32": "Bandai", "33": "Ocean/Acclaim",
	"34": "Konami", "35": "Hector", "37": "Taito", "38": "Hudson",
	"39": "Banpresto", "41": "Ubisoft", "42": "Atlus", "44": "Malibu",
	"46": "Angel", "47": "Bullet-Proof Software", "49": "Irem",
	"50": "Absolute", "51": "Acclaim", "52": "Activision",
	"53": "American Sammy", "54": "Konami", "55": "Hi Tech Entertainment",
	"56": "LJN", "57": "Matchbox", "58": "Mattel", "59": "Milton Bradley",
	"60": "Titus", "61": "Virgin Games", "64": "LucasArts", "67": "Ocean Software",
	"69": "Electronic Arts", "70": "Infogrames", "71": "Interplay",
	"72": "Broderbund", "73": "Sculptured Software", "75": "SCI",
	"78": "THQ", "79": "Accolade", "80": "Misawa Entertainment",
	"83": "LOZC", "86": "Tokuma Shoten", "87": "Tsukuda Original",
	"91": "Chunsoft", "92": "Video System", "93": "Ocean/Acclaim",
	"95": "Varie", "96": "Yonezawa/s'pal", "97": "Kaneko", "99": "Pack-In-Video",
	"A4": "Konami (Yu-Gi-Oh!)",
}

func decodeLicensee(oldCode uint8, newCode string) Licensee {
	if oldCode == 0x33 {
		if name, ok := newLicensees[newCode]; ok {
			return Licensee{Name: name}
		}
		return Licensee{Unknown: true, Raw: newCode}
	}
	if name, ok := oldLicensees[oldCode]; ok {
		return Licensee{Name: name}
	}
	return Licensee{Unknown: true, Raw: fmt.Sprintf("0x%02X", oldCode)}
}

// Header is everything parsed out of bank 0's fixed metadata region,
// plus the two validity flags that gate whether the cartridge boots.
type Header struct {
	Title            string
	ManufacturerCode string
	NewLicenseeCode  string
	OldLicenseeCode  uint8
	Licensee         Licensee
	SGBSupport       bool
	CartridgeType    Type
	ROMSizeBytes     int
	ROMBanks         int
	RAMSizeBytes     int
	Destination      Destination
	MaskROMVersion   uint8
	HeaderChecksum   uint8
	GlobalChecksum   uint16

	LogoMatches         bool
	HeaderChecksumValid bool
}

// IsValid reports whether a cartridge is bootable: both the logo and
// the header checksum must check out.
func (h Header) IsValid() bool {
	return h.LogoMatches && h.HeaderChecksumValid
}

// parseHeader reads a full ROM image (at least 0x150 bytes) and
// extracts the header, computing both validity flags along the way.
func parseHeader(rom []byte) Header {
	h := Header{}

	h.Title = extractASCII(rom[offTitle : offTitle+titleSize])
	h.ManufacturerCode = extractASCII(rom[offManufacturer : offManufacturer+manufacturerSize])
	h.NewLicenseeCode = string(rom[offNewLicensee : offNewLicensee+2])
	h.SGBSupport = rom[offSGBFlag] == 0x03
	h.CartridgeType = decodeCartridgeType(rom[offCartridgeType])

	if sizes, ok := romSizes[rom[offROMSize]]; ok {
		h.ROMSizeBytes, h.ROMBanks = sizes[0], sizes[1]
	}
	h.RAMSizeBytes = ramSizes[rom[offRAMSize]]

	h.Destination = decodeDestination(rom[offDestinationCode])
	h.OldLicenseeCode = rom[offOldLicensee]
	h.Licensee = decodeLicensee(h.OldLicenseeCode, h.NewLicenseeCode)
	h.MaskROMVersion = rom[offMaskROMVersion]
	h.HeaderChecksum = rom[offHeaderChecksum]
	h.GlobalChecksum = uint16(rom[offGlobalChecksum])<<8 | uint16(rom[offGlobalChecksum+1])

	h.LogoMatches = logoMatches(rom)
	h.HeaderChecksumValid = headerChecksum(rom) == h.HeaderChecksum

	return h
}

func logoMatches(rom []byte) bool {
	for i := 0; i < nintendoLogoSize; i++ {
		if rom[offNintendoLogo+i] != nintendoLogo[i] {
			return false
		}
	}
	return true
}

// headerChecksum computes the header checksum over 0x134..=0x14C:
// x := 0; for each byte b, x := (x - b - 1) mod 256.
func headerChecksum(rom []byte) uint8 {
	var x uint8
	for addr := offTitle; addr <= offMaskROMVersion; addr++ {
		x = x - rom[addr] - 1
	}
	return x
}

func extractASCII(b []byte) string {
	end := len(b)
	for i, c := range b {
		if c == 0 {
			end = i
			break
		}
	}
	return string(b[:end])
}
