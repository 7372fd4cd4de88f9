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

package dump_test

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"testing"

	"github.com/Ragnaroek/mule-gb/cartridge"
	"github.com/Ragnaroek/mule-gb/curated"
	"github.com/Ragnaroek/mule-gb/dump"
	"github.com/Ragnaroek/mule-gb/test"
)

// a 32KB image with a title and a non-zero entry point. everything else is
// left at zero.
func fixture(t *testing.T) *cartridge.Cartridge {
	t.Helper()

	data := make([]byte, 0x8000)
	copy(data[0x100:], []byte{0x00, 0xc3, 0x50, 0x01})
	copy(data[0x134:], "ZELDA")

	cart, err := cartridge.Decode(data)
	test.DemandSuccess(t, err)
	return cart
}

const expectedJSON = `{
  "header": {
    "entry_point": [
      0,
      195,
      80,
      1
    ],
    "game_title": "ZELDA",
    "manufacturer_code": "",
    "gbc_flag": "GB only",
    "licensee_code": "none",
    "sgb_flag": "no SGB",
    "cartridge_type": "ROM Only",
    "rom_size": "32KB (no banking)",
    "ram_size": "none",
    "destination_code": "Japanese",
    "rom_version": 0,
    "checksum": 0,
    "global_checksum": 0
  }
}
`

func TestWriteJSON(t *testing.T) {
	cart := fixture(t)
	tw := &test.Writer{}

	err := dump.Write(tw, cart, dump.WriteAttr{Format: dump.FormatJSON})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tw.Compare(expectedJSON), tw.String())

	// the empty string selects the JSON format
	tw.Clear()
	err = dump.Write(tw, cart, dump.WriteAttr{})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tw.Compare(expectedJSON))
}

func TestWriteJSONBanks(t *testing.T) {
	cart := fixture(t)
	tw := &test.Writer{}

	err := dump.Write(tw, cart, dump.WriteAttr{Banks: true})
	test.ExpectSuccess(t, err)

	// only number, size and hash of each bank appear in the output
	hash := fmt.Sprintf("%x", sha1.Sum(cart.Banks[1].Data))
	test.ExpectSuccess(t, strings.Contains(tw.String(), `"banks": [`))
	test.ExpectSuccess(t, strings.Contains(tw.String(), `"number": 1`))
	test.ExpectSuccess(t, strings.Contains(tw.String(), `"size": 16384`))
	test.ExpectSuccess(t, strings.Contains(tw.String(), fmt.Sprintf("%q", hash)))
}

const expectedSExpr = `((header . ((entry_point . #(0 195 80 1))` +
	` (game_title . "ZELDA")` +
	` (manufacturer_code . "")` +
	` (gbc_flag . "GB only")` +
	` (licensee_code . "none")` +
	` (sgb_flag . "no SGB")` +
	` (cartridge_type . "ROM Only")` +
	` (rom_size . "32KB (no banking)")` +
	` (ram_size . "none")` +
	` (destination_code . "Japanese")` +
	` (rom_version . 0)` +
	` (checksum . 0)` +
	` (global_checksum . 0))))` + "\n"

func TestWriteSExpr(t *testing.T) {
	cart := fixture(t)
	tw := &test.Writer{}

	err := dump.Write(tw, cart, dump.WriteAttr{Format: dump.FormatSExpr})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tw.Compare(expectedSExpr), tw.String())
}

func TestWriteSExprBanks(t *testing.T) {
	cart := fixture(t)
	tw := &test.Writer{}

	err := dump.Write(tw, cart, dump.WriteAttr{Format: dump.FormatSExpr, Banks: true})
	test.ExpectSuccess(t, err)

	hash := fmt.Sprintf("%x", sha1.Sum(cart.Banks[0].Data))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "(banks . ("))
	test.ExpectSuccess(t, strings.Contains(tw.String(), fmt.Sprintf("((number . 0) (size . %d) (hash . %q))", len(cart.Banks[0].Data), hash)))
}

func TestWriteDot(t *testing.T) {
	cart := fixture(t)
	tw := &test.Writer{}

	err := dump.Write(tw, cart, dump.WriteAttr{Format: dump.FormatDot})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "digraph"))
}

func TestUnsupportedFormat(t *testing.T) {
	cart := fixture(t)
	tw := &test.Writer{}

	err := dump.Write(tw, cart, dump.WriteAttr{Format: "yaml"})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, dump.UnsupportedFormat))
}
