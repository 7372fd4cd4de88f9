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
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Ragnaroek/mule-gb/cartridge"
	"github.com/Ragnaroek/mule-gb/curated"

	"github.com/bradleyjkemp/memviz"
)

// UnsupportedFormat is the error pattern returned when the Format field of
// WriteAttr names an unknown format.
const UnsupportedFormat = "dump: unsupported format (%s)"

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	// one of the Format* values. the empty string selects FormatJSON
	Format string

	// include a summary of each program bank in the output
	Banks bool
}

// List of valid values for the Format field of WriteAttr.
const (
	FormatJSON  = "json"
	FormatSExpr = "sexpr"
	FormatDot   = "dot"
)

// bank data is never serialised in full. banks appear in the output as
// number, size and content hash.
type bankSummary struct {
	Number int    `json:"number"`
	Size   int    `json:"size"`
	Hash   string `json:"hash"`
}

type view struct {
	Header cartridge.Header `json:"header"`
	Banks  []bankSummary    `json:"banks,omitempty"`
}

// Write a decoded cartridge to io.Writer in the format selected by attr.
func Write(output io.Writer, cart *cartridge.Cartridge, attr WriteAttr) error {
	v := view{Header: cart.Header}

	if attr.Banks {
		v.Banks = make([]bankSummary, 0, len(cart.Banks))
		for _, b := range cart.Banks {
			v.Banks = append(v.Banks, bankSummary{
				Number: b.Number,
				Size:   len(b.Data),
				Hash:   fmt.Sprintf("%x", sha1.Sum(b.Data)),
			})
		}
	}

	switch attr.Format {
	case "", FormatJSON:
		return writeJSON(output, v)
	case FormatSExpr:
		return writeSExpr(output, v)
	case FormatDot:
		return writeDot(output, v)
	}

	return curated.Errorf(UnsupportedFormat, attr.Format)
}

func writeJSON(output io.Writer, v view) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return curated.Errorf("dump: %v", err)
	}

	if _, err := output.Write(b); err != nil {
		return curated.Errorf("dump: %v", err)
	}
	if _, err := output.Write([]byte("\n")); err != nil {
		return curated.Errorf("dump: %v", err)
	}

	return nil
}

func writeDot(output io.Writer, v view) error {
	memviz.Map(output, &v)
	return nil
}
