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
	"fmt"
	"strings"

	"github.com/Ragnaroek/mule-gb/curated"
	"github.com/Ragnaroek/mule-gb/datareader"
)

// error patterns raised by the Decode() function.
const (
	// a byte in one of the strict header fields matched no known value.
	// the error names the field and the offending byte
	UnsupportedValue = "cartridge: unsupported %s (%#02x)"

	// the buffer is shorter than the layout declared by the header
	TruncatedInput = "cartridge: truncated input: %v"
)

// the fixed cartridge layout. the boot vectors, entry point, logo and
// header fields all live inside bank 0's address space, which is why the
// first program bank is shorter than the others.
const (
	bootVectorRegion = 0x100
	logoRegion       = 0x30
	oldLicenseeIdx   = 0x14b
	headerRegion     = 0x150
	bankWidth        = 0x4000
)

// the value of the old-style licensee byte indicating that the new-style
// two character form is in effect.
const newLicenseeSentinel = 0x33

// Bank is a single bank of program data. the data aliases the buffer given
// to the Decode() function.
type Bank struct {
	Number int
	Data   []byte
}

func (b Bank) String() string {
	return fmt.Sprintf("bank %d (%d bytes)", b.Number, len(b.Data))
}

// Cartridge is the result of a successful Decode(). it is not changed
// after construction.
type Cartridge struct {
	Header Header
	Banks  []Bank
}

// Decode interprets the data as a cartridge image, producing the decoded
// header and the sequence of program banks. the banks alias the supplied
// buffer, no data is copied.
//
// An input shorter than the layout requires results in a TruncatedInput
// error. there is no partial result on any error.
func Decode(data []byte) (*Cartridge, error) {
	r := datareader.NewReader(data)

	hdr, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}

	banks, err := decodeBanks(r, hdr.ROMSize)
	if err != nil {
		return nil, err
	}

	return &Cartridge{Header: *hdr, Banks: banks}, nil
}

func decodeHeader(r *datareader.Reader) (*Header, error) {
	hdr := &Header{}

	// boot vectors are not interpreted
	if err := r.Skip(bootVectorRegion); err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}

	// entry point is stored raw
	ep, err := r.Slice(r.Offset(), r.Offset()+len(hdr.EntryPoint))
	if err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}
	copy(hdr.EntryPoint[:], ep)
	if err := r.Skip(len(hdr.EntryPoint)); err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}

	// logo data is required by the console but is of no interest here
	if err := r.Skip(logoRegion); err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}

	// phase one: the old-style licensee byte is ahead of the cursor but it
	// decides the layout of the fields before it. peeking it now fixes the
	// layout variant for the sequential phase: the width of the title
	// field, whether a manufacturer code is present and which form the
	// licensee code takes
	oldLicensee, err := r.ReadUint8At(oldLicenseeIdx)
	if err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}
	newForm := oldLicensee == newLicenseeSentinel

	// phase two: decode the remaining fields sequentially under the chosen
	// variant. both variants consume the same total span
	titleWidth := 15
	if newForm {
		titleWidth = 11
	}

	title, err := r.ReadString(titleWidth)
	if err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}
	hdr.GameTitle = stripNul(title)

	if newForm {
		m, err := r.ReadString(4)
		if err != nil {
			return nil, curated.Errorf(TruncatedInput, err)
		}
		hdr.ManufacturerCode = stripNul(m)
	}

	b, err := r.ReadUint8()
	if err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}
	hdr.GBCFlag, err = decodeGBCFlag(b)
	if err != nil {
		return nil, err
	}

	// the new-style licensee bytes are always consumed but only
	// interpreted when the new form is in effect
	var newLicensee [2]byte
	for i := range newLicensee {
		newLicensee[i], err = r.ReadUint8()
		if err != nil {
			return nil, curated.Errorf(TruncatedInput, err)
		}
	}
	if newForm {
		hdr.LicenseeCode = decodeNewLicenseeCode(newLicensee)
	} else {
		hdr.LicenseeCode = decodeOldLicenseeCode(oldLicensee)
	}

	b, err = r.ReadUint8()
	if err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}
	hdr.SGBFlag, err = decodeSGBFlag(b)
	if err != nil {
		return nil, err
	}

	b, err = r.ReadUint8()
	if err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}
	hdr.CartridgeType = decodeCartridgeType(b)

	b, err = r.ReadUint8()
	if err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}
	hdr.ROMSize, err = decodeROMSize(b)
	if err != nil {
		return nil, err
	}

	b, err = r.ReadUint8()
	if err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}
	hdr.RAMSize, err = decodeRAMSize(b)
	if err != nil {
		return nil, err
	}

	b, err = r.ReadUint8()
	if err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}
	hdr.DestinationCode, err = decodeDestinationCode(b)
	if err != nil {
		return nil, err
	}

	// the old-style licensee byte was consumed by the phase one peek but
	// its sequential position must still be advanced past
	if err := r.Skip(1); err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}

	hdr.ROMVersion, err = r.ReadUint8()
	if err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}

	hdr.Checksum, err = r.ReadUint8()
	if err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}

	hdr.GlobalChecksum, err = r.ReadUint16()
	if err != nil {
		return nil, curated.Errorf(TruncatedInput, err)
	}

	return hdr, nil
}

func decodeBanks(r *datareader.Reader, size ROMSize) ([]Bank, error) {
	numBanks := size.NumBanks()
	banks := make([]Bank, 0, numBanks)

	for b := 0; b < numBanks; b++ {
		width := bankWidth
		if b == 0 {
			// the header region occupies the start of bank 0
			width -= headerRegion
		}

		data, err := r.Slice(r.Offset(), r.Offset()+width)
		if err != nil {
			return nil, curated.Errorf(TruncatedInput, err)
		}
		if err := r.Skip(width); err != nil {
			return nil, curated.Errorf(TruncatedInput, err)
		}

		banks = append(banks, Bank{Number: b, Data: data})
	}

	return banks, nil
}

// NUL bytes pad the title and manufacturer fields to their fixed widths.
func stripNul(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
