package mmu

import "errors"

var errInvalidCartridge = errors.New("mmu: cartridge failed header validation")
