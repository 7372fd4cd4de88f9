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

package dump

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Ragnaroek/mule-gb/curated"
)

// the s-expression format renders the record as nested association lists
// of dotted pairs, in header field order. byte arrays render as #(...)
// vectors.
func writeSExpr(output io.Writer, v view) error {
	s := strings.Builder{}

	ep := make([]string, 0, len(v.Header.EntryPoint))
	for _, b := range v.Header.EntryPoint {
		ep = append(ep, strconv.Itoa(int(b)))
	}

	s.WriteString("((header . (")
	s.WriteString(fmt.Sprintf("(entry_point . #(%s))", strings.Join(ep, " ")))
	s.WriteString(fmt.Sprintf(" (game_title . %s)", strconv.Quote(v.Header.GameTitle)))
	s.WriteString(fmt.Sprintf(" (manufacturer_code . %s)", strconv.Quote(v.Header.ManufacturerCode)))
	s.WriteString(fmt.Sprintf(" (gbc_flag . %s)", strconv.Quote(v.Header.GBCFlag.String())))
	s.WriteString(fmt.Sprintf(" (licensee_code . %s)", strconv.Quote(v.Header.LicenseeCode.String())))
	s.WriteString(fmt.Sprintf(" (sgb_flag . %s)", strconv.Quote(v.Header.SGBFlag.String())))
	s.WriteString(fmt.Sprintf(" (cartridge_type . %s)", strconv.Quote(v.Header.CartridgeType.String())))
	s.WriteString(fmt.Sprintf(" (rom_size . %s)", strconv.Quote(v.Header.ROMSize.String())))
	s.WriteString(fmt.Sprintf(" (ram_size . %s)", strconv.Quote(v.Header.RAMSize.String())))
	s.WriteString(fmt.Sprintf(" (destination_code . %s)", strconv.Quote(v.Header.DestinationCode.String())))
	s.WriteString(fmt.Sprintf(" (rom_version . %d)", v.Header.ROMVersion))
	s.WriteString(fmt.Sprintf(" (checksum . %d)", v.Header.Checksum))
	s.WriteString(fmt.Sprintf(" (global_checksum . %d)", v.Header.GlobalChecksum))
	s.WriteString("))")

	if v.Banks != nil {
		s.WriteString(" (banks . (")
		for i, b := range v.Banks {
			if i > 0 {
				s.WriteString(" ")
			}
			s.WriteString(fmt.Sprintf("((number . %d) (size . %d) (hash . %s))", b.Number, b.Size, strconv.Quote(b.Hash)))
		}
		s.WriteString("))")
	}

	s.WriteString(")\n")

	if _, err := io.WriteString(output, s.String()); err != nil {
		return curated.Errorf("dump: %v", err)
	}

	return nil
}
