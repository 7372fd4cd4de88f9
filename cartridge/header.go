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

package cartridge

import (
	"encoding/json"

	"github.com/Ragnaroek/mule-gb/curated"
)

// Header is the decoded cartridge header. it is built once by the Decode()
// function and never changed after that.
type Header struct {
	EntryPoint       [4]byte         `json:"entry_point"`
	GameTitle        string          `json:"game_title"`
	ManufacturerCode string          `json:"manufacturer_code"`
	GBCFlag          GBCFlag         `json:"gbc_flag"`
	LicenseeCode     LicenseeCode    `json:"licensee_code"`
	SGBFlag          SGBFlag         `json:"sgb_flag"`
	CartridgeType    CartridgeType   `json:"cartridge_type"`
	ROMSize          ROMSize         `json:"rom_size"`
	RAMSize          RAMSize         `json:"ram_size"`
	DestinationCode  DestinationCode `json:"destination_code"`
	ROMVersion       uint8           `json:"rom_version"`
	Checksum         uint8           `json:"checksum"`
	GlobalChecksum   uint16          `json:"global_checksum"`
}

// GBCFlag describes the level of GameBoy Color support declared by the
// cartridge.
type GBCFlag int

// List of valid GBCFlag values.
const (
	// not explicitly set. only the classic GameBoy is supported
	GBOnly GBCFlag = iota

	// supports the GameBoy Color in addition to the classic GameBoy
	GBCAndGB

	// only supports the GameBoy Color
	GBCOnly
)

func (f GBCFlag) String() string {
	switch f {
	case GBOnly:
		return "GB only"
	case GBCAndGB:
		return "GBC and GB"
	case GBCOnly:
		return "GBC only"
	}
	return "unknown"
}

// MarshalJSON implements the json.Marshaler interface.
func (f GBCFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func decodeGBCFlag(b uint8) (GBCFlag, error) {
	switch b {
	case 0x00:
		return GBOnly, nil
	case 0x80:
		return GBCAndGB, nil
	case 0xc0:
		return GBCOnly, nil
	}
	return 0, curated.Errorf(UnsupportedValue, "GBC flag", b)
}

// SGBFlag describes whether the cartridge declares Super GameBoy support.
type SGBFlag int

// List of valid SGBFlag values.
const (
	NoSGB SGBFlag = iota
	SGBSupport
)

func (f SGBFlag) String() string {
	switch f {
	case NoSGB:
		return "no SGB"
	case SGBSupport:
		return "SGB support"
	}
	return "unknown"
}

// MarshalJSON implements the json.Marshaler interface.
func (f SGBFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func decodeSGBFlag(b uint8) (SGBFlag, error) {
	switch b {
	case 0x00:
		return NoSGB, nil
	case 0x03:
		return SGBSupport, nil
	}
	return 0, curated.Errorf(UnsupportedValue, "SGB flag", b)
}

// LicenseeCode identifies the company that published the cartridge. the
// code is stored in one of two forms, the sentinel value 0x33 in the
// old-style byte indicating that the new two character form is in effect.
type LicenseeCode int

// List of valid LicenseeCode values. codes that have no explicit mapping
// decode to UnknownLicensee, they are never an error.
const (
	NoLicensee LicenseeCode = iota
	UnknownLicensee
	Nintendo
	Capcom
	Bandai
	Namco
)

func (c LicenseeCode) String() string {
	switch c {
	case NoLicensee:
		return "none"
	case Nintendo:
		return "Nintendo"
	case Capcom:
		return "Capcom"
	case Bandai:
		return "Bandai"
	case Namco:
		return "Namco"
	}
	return "unknown"
}

// MarshalJSON implements the json.Marshaler interface.
func (c LicenseeCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func decodeOldLicenseeCode(b uint8) LicenseeCode {
	switch b {
	case 0x00:
		return NoLicensee
	case 0x01:
		return Nintendo
	case 0x08:
		return Capcom
	case 0xb2:
		return Bandai
	case 0xaf:
		return Namco
	}
	return UnknownLicensee
}

func decodeNewLicenseeCode(code [2]byte) LicenseeCode {
	switch string(code[:]) {
	case "00":
		return NoLicensee
	case "01":
		return Nintendo
	case "08":
		return Capcom
	case "B2":
		return Bandai
	case "AF":
		return Namco
	}
	return UnknownLicensee
}

// CartridgeType identifies the memory bank controller and any additional
// hardware on the cartridge.
type CartridgeType int

// List of valid CartridgeType values. bytes that have no explicit mapping
// decode to UnknownCartridgeType, they are never an error.
//
// Note that MBC3RAMBattery has no byte mapping to it. byte 0x13 decodes to
// MBC1RAMBattery, the same as byte 0x03.
const (
	ROMOnly CartridgeType = iota
	MBC1
	MBC1RAM
	MBC1RAMBattery
	MBC2
	MBC2Battery
	ROMRAM
	ROMRAMBattery
	MMM01
	MMM01RAM
	MMM01RAMBattery
	MBC3TimerBattery
	MBC3TimerRAMBattery
	MBC3
	MBC3RAM
	MBC3RAMBattery
	MBC5
	MBC5RAM
	MBC5RAMBattery
	MBC5Rumble
	MBC5RumbleRAM
	MBC5RumbleRAMBattery
	MBC6
	MBC7SensorRumbleRAMBattery
	PocketCamera
	BandaiTama5
	HuC3
	HuC1RAMBattery
	UnknownCartridgeType
)

func (c CartridgeType) String() string {
	switch c {
	case ROMOnly:
		return "ROM Only"
	case MBC1:
		return "MBC1"
	case MBC1RAM:
		return "MBC1+RAM"
	case MBC1RAMBattery:
		return "MBC1+RAM+Battery"
	case MBC2:
		return "MBC2"
	case MBC2Battery:
		return "MBC2+Battery"
	case ROMRAM:
		return "ROM+RAM"
	case ROMRAMBattery:
		return "ROM+RAM+Battery"
	case MMM01:
		return "MMM01"
	case MMM01RAM:
		return "MMM01+RAM"
	case MMM01RAMBattery:
		return "MMM01+RAM+Battery"
	case MBC3TimerBattery:
		return "MBC3+Timer+Battery"
	case MBC3TimerRAMBattery:
		return "MBC3+Timer+RAM+Battery"
	case MBC3:
		return "MBC3"
	case MBC3RAM:
		return "MBC3+RAM"
	case MBC3RAMBattery:
		return "MBC3+RAM+Battery"
	case MBC5:
		return "MBC5"
	case MBC5RAM:
		return "MBC5+RAM"
	case MBC5RAMBattery:
		return "MBC5+RAM+Battery"
	case MBC5Rumble:
		return "MBC5+Rumble"
	case MBC5RumbleRAM:
		return "MBC5+Rumble+RAM"
	case MBC5RumbleRAMBattery:
		return "MBC5+Rumble+RAM+Battery"
	case MBC6:
		return "MBC6"
	case MBC7SensorRumbleRAMBattery:
		return "MBC7+Sensor+Rumble+RAM+Battery"
	case PocketCamera:
		return "Pocket Camera"
	case BandaiTama5:
		return "Bandai TAMA5"
	case HuC3:
		return "HuC3"
	case HuC1RAMBattery:
		return "HuC1+RAM+Battery"
	}
	return "unknown"
}

// MarshalJSON implements the json.Marshaler interface.
func (c CartridgeType) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func decodeCartridgeType(b uint8) CartridgeType {
	switch b {
	case 0x00:
		return ROMOnly
	case 0x01:
		return MBC1
	case 0x02:
		return MBC1RAM
	case 0x03:
		return MBC1RAMBattery
	case 0x05:
		return MBC2
	case 0x06:
		return MBC2Battery
	case 0x08:
		return ROMRAM
	case 0x09:
		return ROMRAMBattery
	case 0x0b:
		return MMM01
	case 0x0c:
		return MMM01RAM
	case 0x0d:
		return MMM01RAMBattery
	case 0x0f:
		return MBC3TimerBattery
	case 0x10:
		return MBC3TimerRAMBattery
	case 0x11:
		return MBC3
	case 0x12:
		return MBC3RAM
	case 0x13:
		return MBC1RAMBattery
	case 0x19:
		return MBC5
	case 0x1a:
		return MBC5RAM
	case 0x1b:
		return MBC5RAMBattery
	case 0x1c:
		return MBC5Rumble
	case 0x1d:
		return MBC5RumbleRAM
	case 0x1e:
		return MBC5RumbleRAMBattery
	case 0x20:
		return MBC6
	case 0x22:
		return MBC7SensorRumbleRAMBattery
	case 0xfc:
		return PocketCamera
	case 0xfd:
		return BandaiTama5
	case 0xfe:
		return HuC3
	case 0xff:
		return HuC1RAMBattery
	}
	return UnknownCartridgeType
}

// ROMSize describes the declared size of the cartridge ROM, expressed as
// the number of program banks it contains.
type ROMSize int

// List of valid ROMSize values.
const (
	NoBanking ROMSize = iota
	Banks4
	Banks8
	Banks16
	Banks32
	Banks64
	Banks72
	Banks80
	Banks96
	Banks128
	Banks256
	Banks512
)

func (s ROMSize) String() string {
	switch s {
	case NoBanking:
		return "32KB (no banking)"
	case Banks4:
		return "4 banks"
	case Banks8:
		return "8 banks"
	case Banks16:
		return "16 banks"
	case Banks32:
		return "32 banks"
	case Banks64:
		return "64 banks"
	case Banks72:
		return "72 banks"
	case Banks80:
		return "80 banks"
	case Banks96:
		return "96 banks"
	case Banks128:
		return "128 banks"
	case Banks256:
		return "256 banks"
	case Banks512:
		return "512 banks"
	}
	return "unknown"
}

// MarshalJSON implements the json.Marshaler interface.
func (s ROMSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// NumBanks returns the number of program banks in a cartridge of this
// size. a cartridge with no banking hardware still occupies two bank-sized
// regions of the address space.
func (s ROMSize) NumBanks() int {
	switch s {
	case NoBanking:
		return 2
	case Banks4:
		return 4
	case Banks8:
		return 8
	case Banks16:
		return 16
	case Banks32:
		return 32
	case Banks64:
		return 64
	case Banks72:
		return 72
	case Banks80:
		return 80
	case Banks96:
		return 96
	case Banks128:
		return 128
	case Banks256:
		return 256
	case Banks512:
		return 512
	}
	return 0
}

func decodeROMSize(b uint8) (ROMSize, error) {
	switch b {
	case 0x00:
		return NoBanking, nil
	case 0x01:
		return Banks4, nil
	case 0x02:
		return Banks8, nil
	case 0x03:
		return Banks16, nil
	case 0x04:
		return Banks32, nil
	case 0x05:
		return Banks64, nil
	case 0x06:
		return Banks128, nil
	case 0x07:
		return Banks256, nil
	case 0x08:
		return Banks512, nil
	case 0x52:
		return Banks72, nil
	case 0x53:
		return Banks80, nil
	case 0x54:
		return Banks96, nil
	}
	return 0, curated.Errorf(UnsupportedValue, "ROM size", b)
}

// RAMSize describes the size of any RAM on the cartridge.
type RAMSize int

// List of valid RAMSize values. note that bytes 0x04 and 0x05 are not in
// ascending size order, 0x04 is the larger of the two.
const (
	NoRAM RAMSize = iota
	RAM2KB
	RAM8KB
	RAM32KB
	RAM64KB
	RAM128KB
)

func (s RAMSize) String() string {
	switch s {
	case NoRAM:
		return "none"
	case RAM2KB:
		return "2KB"
	case RAM8KB:
		return "8KB"
	case RAM32KB:
		return "32KB"
	case RAM64KB:
		return "64KB"
	case RAM128KB:
		return "128KB"
	}
	return "unknown"
}

// MarshalJSON implements the json.Marshaler interface.
func (s RAMSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func decodeRAMSize(b uint8) (RAMSize, error) {
	switch b {
	case 0x00:
		return NoRAM, nil
	case 0x01:
		return RAM2KB, nil
	case 0x02:
		return RAM8KB, nil
	case 0x03:
		return RAM32KB, nil
	case 0x04:
		return RAM128KB, nil
	case 0x05:
		return RAM64KB, nil
	}
	return 0, curated.Errorf(UnsupportedValue, "RAM size", b)
}

// DestinationCode describes the market the cartridge was sold in.
type DestinationCode int

// List of valid DestinationCode values.
const (
	Japanese DestinationCode = iota
	NonJapanese
)

func (c DestinationCode) String() string {
	switch c {
	case Japanese:
		return "Japanese"
	case NonJapanese:
		return "non-Japanese"
	}
	return "unknown"
}

// MarshalJSON implements the json.Marshaler interface.
func (c DestinationCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func decodeDestinationCode(b uint8) (DestinationCode, error) {
	switch b {
	case 0x00:
		return Japanese, nil
	case 0x01:
		return NonJapanese, nil
	}
	return 0, curated.Errorf(UnsupportedValue, "destination code", b)
}
