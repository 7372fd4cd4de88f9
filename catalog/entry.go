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

package catalog

import (
	"fmt"
	"strconv"

	"github.com/Ragnaroek/mule-gb/cartridge"
	"github.com/Ragnaroek/mule-gb/cartridgeloader"
	"github.com/Ragnaroek/mule-gb/curated"
	"github.com/Ragnaroek/mule-gb/database"
)

const romEntryID = "rom"

const (
	romFieldFilename int = iota
	romFieldHash
	romFieldTitle
	romFieldCartridgeType
	romFieldROMSize
	romFieldRAMSize
	romFieldVersion
	numROMFields
)

// romEntry is the catalog database entry for a single known ROM. it stores
// a summary of the decoded header alongside the hash of the file's
// content, enough for Verify() to notice when either has changed.
type romEntry struct {
	Filename      string
	Hash          string
	Title         string
	CartridgeType string
	ROMSize       string
	RAMSize       string
	Version       uint8
}

func deserialiseROMEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numROMFields {
		return nil, curated.Errorf("catalog: wrong number of fields in entry (%d)", len(fields))
	}

	version, err := strconv.Atoi(fields[romFieldVersion])
	if err != nil {
		return nil, curated.Errorf("catalog: invalid version field (%s)", fields[romFieldVersion])
	}

	return &romEntry{
		Filename:      fields[romFieldFilename],
		Hash:          fields[romFieldHash],
		Title:         fields[romFieldTitle],
		CartridgeType: fields[romFieldCartridgeType],
		ROMSize:       fields[romFieldROMSize],
		RAMSize:       fields[romFieldRAMSize],
		Version:       uint8(version),
	}, nil
}

// newROMEntry summarises a freshly loaded and decoded cartridge.
func newROMEntry(cartload cartridgeloader.Loader, cart *cartridge.Cartridge) *romEntry {
	return &romEntry{
		Filename:      cartload.Filename,
		Hash:          cartload.Hash,
		Title:         cart.Header.GameTitle,
		CartridgeType: cart.Header.CartridgeType.String(),
		ROMSize:       cart.Header.ROMSize.String(),
		RAMSize:       cart.Header.RAMSize.String(),
		Version:       cart.Header.ROMVersion,
	}
}

// ID implements the database.Entry interface.
func (ent romEntry) ID() string {
	return romEntryID
}

// String implements the database.Entry interface.
func (ent romEntry) String() string {
	title := ent.Title
	if title == "" {
		title = "-"
	}
	return fmt.Sprintf("[%s] %s %s rom=%s ram=%s v%d", title, ent.Filename, ent.CartridgeType, ent.ROMSize, ent.RAMSize, ent.Version)
}

// Serialise implements the database.Entry interface.
func (ent romEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		ent.Filename,
		ent.Hash,
		ent.Title,
		ent.CartridgeType,
		ent.ROMSize,
		ent.RAMSize,
		strconv.Itoa(int(ent.Version)),
	}, nil
}

// CleanUp implements the database.Entry interface.
func (ent romEntry) CleanUp() error {
	// the entry stores nothing outside the database file
	return nil
}
