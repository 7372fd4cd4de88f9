// This file is part of Mule-GB.
//
// Mule-GB is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mule-GB is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mule-GB.  If not, see <https://www.gnu.org/licenses/>.

package cartridge_test

import (
	"fmt"
	"testing"

	"github.com/Ragnaroek/mule-gb/cartridge"
	"github.com/Ragnaroek/mule-gb/curated"
	"github.com/Ragnaroek/mule-gb/test"
)

// offsets of the header fields tweaked by the tests.
const (
	idxEntryPoint    = 0x100
	idxTitle         = 0x134
	idxManufacturer  = 0x13f
	idxGBCFlag       = 0x143
	idxNewLicensee   = 0x144
	idxSGBFlag       = 0x146
	idxCartridgeType = 0x147
	idxROMSize       = 0x148
	idxRAMSize       = 0x149
	idxDestination   = 0x14a
	idxOldLicensee   = 0x14b
	idxROMVersion    = 0x14c
	idxChecksum      = 0x14d
	idxGlobalCheck   = 0x14e
	headerRegion     = 0x150
	bankWidth        = 0x4000
)

// number of banks declared by each valid ROM size byte.
var bankCounts = map[byte]int{
	0x00: 2, 0x01: 4, 0x02: 8, 0x03: 16, 0x04: 32, 0x05: 64,
	0x06: 128, 0x07: 256, 0x08: 512, 0x52: 72, 0x53: 80, 0x54: 96,
}

// buildImage creates a synthetic cartridge image sized according to the
// ROM size byte. all other fields are zero, which is a valid value for
// every strict field.
func buildImage(romSize byte) []byte {
	data := make([]byte, bankCounts[romSize]*bankWidth)
	data[idxROMSize] = romSize
	return data
}

func TestBankPartitioning(t *testing.T) {
	for romSize, numBanks := range bankCounts {
		data := buildImage(romSize)

		cart, err := cartridge.Decode(data)
		test.DemandSuccess(t, err, fmt.Sprintf("ROM size %#02x", romSize))

		test.ExpectEquality(t, len(cart.Banks), numBanks, fmt.Sprintf("ROM size %#02x", romSize))
		for _, b := range cart.Banks {
			if b.Number == 0 {
				test.ExpectEquality(t, len(b.Data), bankWidth-headerRegion)
			} else {
				test.ExpectEquality(t, len(b.Data), bankWidth)
			}
		}

		// the banks partition the post-header bytes exactly
		total := 0
		for _, b := range cart.Banks {
			total += len(b.Data)
		}
		test.ExpectEquality(t, total, len(data)-headerRegion)
	}
}

func TestOldLicenseeLayout(t *testing.T) {
	data := buildImage(0x00)
	copy(data[idxTitle:], "ZELDA")
	data[idxOldLicensee] = 0x01

	cart, err := cartridge.Decode(data)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cart.Header.GameTitle, "ZELDA")
	test.ExpectEquality(t, cart.Header.ManufacturerCode, "")
	test.ExpectEquality(t, cart.Header.LicenseeCode, cartridge.Nintendo)
}

func TestNewLicenseeLayout(t *testing.T) {
	data := buildImage(0x00)

	// under the new form the title field is 11 bytes followed by a 4 byte
	// manufacturer code. the 15 byte title window of the old form is
	// filled completely to prove the split
	copy(data[idxTitle:], "ELEVENCHARSMNFC")
	data[idxOldLicensee] = 0x33
	copy(data[idxNewLicensee:], "01")

	cart, err := cartridge.Decode(data)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cart.Header.GameTitle, "ELEVENCHARS")
	test.ExpectEquality(t, cart.Header.ManufacturerCode, "MNFC")
	test.ExpectEquality(t, cart.Header.LicenseeCode, cartridge.Nintendo)
}

func TestNulStripping(t *testing.T) {
	data := buildImage(0x00)
	copy(data[idxTitle:], "ZE\x00LDA")

	cart, err := cartridge.Decode(data)
	test.DemandSuccess(t, err)

	// NUL bytes are removed wherever they appear, not just as padding
	test.ExpectEquality(t, cart.Header.GameTitle, "ZELDA")
}

func TestEntryPointAndRawFields(t *testing.T) {
	data := buildImage(0x00)
	copy(data[idxEntryPoint:], []byte{0x00, 0xc3, 0x50, 0x01})
	data[idxROMVersion] = 0x02
	data[idxChecksum] = 0xab
	data[idxGlobalCheck] = 0x34
	data[idxGlobalCheck+1] = 0x12

	cart, err := cartridge.Decode(data)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cart.Header.EntryPoint, [4]byte{0x00, 0xc3, 0x50, 0x01})
	test.ExpectEquality(t, cart.Header.ROMVersion, 0x02)
	test.ExpectEquality(t, cart.Header.Checksum, 0xab)
	test.ExpectEquality(t, cart.Header.GlobalChecksum, 0x1234)
}

func TestGBCFlag(t *testing.T) {
	expected := map[byte]cartridge.GBCFlag{
		0x00: cartridge.GBOnly,
		0x80: cartridge.GBCAndGB,
		0xc0: cartridge.GBCOnly,
	}

	for b := 0; b <= 0xff; b++ {
		data := buildImage(0x00)
		data[idxGBCFlag] = byte(b)

		cart, err := cartridge.Decode(data)
		if f, ok := expected[byte(b)]; ok {
			test.DemandSuccess(t, err)
			test.ExpectEquality(t, cart.Header.GBCFlag, f)
		} else {
			test.ExpectFailure(t, err, fmt.Sprintf("GBC flag %#02x", b))
			test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedValue))
		}
	}
}

func TestSGBFlag(t *testing.T) {
	expected := map[byte]cartridge.SGBFlag{
		0x00: cartridge.NoSGB,
		0x03: cartridge.SGBSupport,
	}

	for b := 0; b <= 0xff; b++ {
		data := buildImage(0x00)
		data[idxSGBFlag] = byte(b)

		cart, err := cartridge.Decode(data)
		if f, ok := expected[byte(b)]; ok {
			test.DemandSuccess(t, err)
			test.ExpectEquality(t, cart.Header.SGBFlag, f)
		} else {
			test.ExpectFailure(t, err, fmt.Sprintf("SGB flag %#02x", b))
			test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedValue))
		}
	}
}

func TestROMSize(t *testing.T) {
	for romSize := range bankCounts {
		data := buildImage(romSize)
		_, err := cartridge.Decode(data)
		test.ExpectSuccess(t, err, fmt.Sprintf("ROM size %#02x", romSize))
	}

	for b := 0; b <= 0xff; b++ {
		if _, ok := bankCounts[byte(b)]; ok {
			continue
		}
		data := buildImage(0x00)
		data[idxROMSize] = byte(b)

		_, err := cartridge.Decode(data)
		test.ExpectFailure(t, err, fmt.Sprintf("ROM size %#02x", b))
		test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedValue))
	}
}

func TestRAMSize(t *testing.T) {
	// bytes 0x04 and 0x05 deliberately out of ascending size order
	expected := map[byte]cartridge.RAMSize{
		0x00: cartridge.NoRAM,
		0x01: cartridge.RAM2KB,
		0x02: cartridge.RAM8KB,
		0x03: cartridge.RAM32KB,
		0x04: cartridge.RAM128KB,
		0x05: cartridge.RAM64KB,
	}

	for b := 0; b <= 0xff; b++ {
		data := buildImage(0x00)
		data[idxRAMSize] = byte(b)

		cart, err := cartridge.Decode(data)
		if s, ok := expected[byte(b)]; ok {
			test.DemandSuccess(t, err)
			test.ExpectEquality(t, cart.Header.RAMSize, s)
		} else {
			test.ExpectFailure(t, err, fmt.Sprintf("RAM size %#02x", b))
			test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedValue))
		}
	}
}

func TestDestinationCode(t *testing.T) {
	expected := map[byte]cartridge.DestinationCode{
		0x00: cartridge.Japanese,
		0x01: cartridge.NonJapanese,
	}

	for b := 0; b <= 0xff; b++ {
		data := buildImage(0x00)
		data[idxDestination] = byte(b)

		cart, err := cartridge.Decode(data)
		if c, ok := expected[byte(b)]; ok {
			test.DemandSuccess(t, err)
			test.ExpectEquality(t, cart.Header.DestinationCode, c)
		} else {
			test.ExpectFailure(t, err, fmt.Sprintf("destination code %#02x", b))
			test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedValue))
		}
	}
}

func TestCartridgeType(t *testing.T) {
	expected := map[byte]cartridge.CartridgeType{
		0x00: cartridge.ROMOnly,
		0x01: cartridge.MBC1,
		0x02: cartridge.MBC1RAM,
		0x03: cartridge.MBC1RAMBattery,
		0x05: cartridge.MBC2,
		0x06: cartridge.MBC2Battery,
		0x08: cartridge.ROMRAM,
		0x09: cartridge.ROMRAMBattery,
		0x0b: cartridge.MMM01,
		0x0c: cartridge.MMM01RAM,
		0x0d: cartridge.MMM01RAMBattery,
		0x0f: cartridge.MBC3TimerBattery,
		0x10: cartridge.MBC3TimerRAMBattery,
		0x11: cartridge.MBC3,
		0x12: cartridge.MBC3RAM,
		0x13: cartridge.MBC1RAMBattery,
		0x19: cartridge.MBC5,
		0x1a: cartridge.MBC5RAM,
		0x1b: cartridge.MBC5RAMBattery,
		0x1c: cartridge.MBC5Rumble,
		0x1d: cartridge.MBC5RumbleRAM,
		0x1e: cartridge.MBC5RumbleRAMBattery,
		0x20: cartridge.MBC6,
		0x22: cartridge.MBC7SensorRumbleRAMBattery,
		0xfc: cartridge.PocketCamera,
		0xfd: cartridge.BandaiTama5,
		0xfe: cartridge.HuC3,
		0xff: cartridge.HuC1RAMBattery,
	}

	// unknown cartridge type bytes are values, not errors
	for b := 0; b <= 0xff; b++ {
		data := buildImage(0x00)
		data[idxCartridgeType] = byte(b)

		cart, err := cartridge.Decode(data)
		test.DemandSuccess(t, err, fmt.Sprintf("cartridge type %#02x", b))

		ct, ok := expected[byte(b)]
		if !ok {
			ct = cartridge.UnknownCartridgeType
		}
		test.ExpectEquality(t, cart.Header.CartridgeType, ct, fmt.Sprintf("cartridge type %#02x", b))
	}
}

func TestCartridgeTypeAlias(t *testing.T) {
	// bytes 0x03 and 0x13 both decode to MBC1+RAM+Battery
	for _, b := range []byte{0x03, 0x13} {
		data := buildImage(0x00)
		data[idxCartridgeType] = b

		cart, err := cartridge.Decode(data)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, cart.Header.CartridgeType, cartridge.MBC1RAMBattery)
	}
}

func TestOldLicenseeCodes(t *testing.T) {
	expected := map[byte]cartridge.LicenseeCode{
		0x00: cartridge.NoLicensee,
		0x01: cartridge.Nintendo,
		0x08: cartridge.Capcom,
		0xb2: cartridge.Bandai,
		0xaf: cartridge.Namco,
	}

	for b := 0; b <= 0xff; b++ {
		if byte(b) == 0x33 {
			// the sentinel switches to the new form, tested separately
			continue
		}

		data := buildImage(0x00)
		data[idxOldLicensee] = byte(b)

		cart, err := cartridge.Decode(data)
		test.DemandSuccess(t, err, fmt.Sprintf("old licensee %#02x", b))

		c, ok := expected[byte(b)]
		if !ok {
			c = cartridge.UnknownLicensee
		}
		test.ExpectEquality(t, cart.Header.LicenseeCode, c, fmt.Sprintf("old licensee %#02x", b))
	}
}

func TestNewLicenseeCodes(t *testing.T) {
	expected := map[string]cartridge.LicenseeCode{
		"00": cartridge.NoLicensee,
		"01": cartridge.Nintendo,
		"08": cartridge.Capcom,
		"B2": cartridge.Bandai,
		"AF": cartridge.Namco,
		"99": cartridge.UnknownLicensee,
		"ZZ": cartridge.UnknownLicensee,
	}

	for code, c := range expected {
		data := buildImage(0x00)
		data[idxOldLicensee] = 0x33
		copy(data[idxNewLicensee:], code)

		cart, err := cartridge.Decode(data)
		test.DemandSuccess(t, err, fmt.Sprintf("new licensee %s", code))
		test.ExpectEquality(t, cart.Header.LicenseeCode, c, fmt.Sprintf("new licensee %s", code))
	}
}

func TestAllZeroImage(t *testing.T) {
	// a 32KB image of zero bytes is a valid cartridge
	data := make([]byte, 2*bankWidth)

	cart, err := cartridge.Decode(data)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cart.Header.GameTitle, "")
	test.ExpectEquality(t, cart.Header.ManufacturerCode, "")
	test.ExpectEquality(t, cart.Header.GBCFlag, cartridge.GBOnly)
	test.ExpectEquality(t, cart.Header.LicenseeCode, cartridge.NoLicensee)
	test.ExpectEquality(t, cart.Header.SGBFlag, cartridge.NoSGB)
	test.ExpectEquality(t, cart.Header.CartridgeType, cartridge.ROMOnly)
	test.ExpectEquality(t, cart.Header.ROMSize, cartridge.NoBanking)
	test.ExpectEquality(t, cart.Header.RAMSize, cartridge.NoRAM)
	test.ExpectEquality(t, cart.Header.DestinationCode, cartridge.Japanese)

	test.ExpectEquality(t, len(cart.Banks), 2)
	test.ExpectEquality(t, len(cart.Banks[0].Data), bankWidth-headerRegion)
	test.ExpectEquality(t, len(cart.Banks[1].Data), bankWidth)
}

func TestTruncatedInput(t *testing.T) {
	full := buildImage(0x00)

	// truncation at every interesting boundary is an error, never a panic
	for _, length := range []int{
		0, 1, 0xff, 0x100, 0x103, 0x133, idxTitle, idxGBCFlag,
		idxOldLicensee, idxGlobalCheck, headerRegion - 1, headerRegion,
		bankWidth, len(full) - 1,
	} {
		_, err := cartridge.Decode(full[:length])
		test.ExpectFailure(t, err, fmt.Sprintf("length %d", length))
		test.ExpectSuccess(t, curated.Is(err, cartridge.TruncatedInput), fmt.Sprintf("length %d", length))
	}

	_, err := cartridge.Decode(full)
	test.ExpectSuccess(t, err)
}
