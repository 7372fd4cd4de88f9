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
	"io"
	"strconv"

	"github.com/Ragnaroek/mule-gb/cartridge"
	"github.com/Ragnaroek/mule-gb/cartridgeloader"
	"github.com/Ragnaroek/mule-gb/curated"
	"github.com/Ragnaroek/mule-gb/database"
	"github.com/Ragnaroek/mule-gb/resources"
)

// name of the catalog database file. the full path is assembled by the
// resources package.
const catalogDBFile = "catalog.db"

// when starting a database session we need to register what entries we
// will find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(romEntryID, deserialiseROMEntry)
}

func dbPath() (string, error) {
	path, err := resources.JoinPath(catalogDBFile)
	if err != nil {
		return "", curated.Errorf("catalog: %v", err)
	}
	return path, nil
}

// List displays all entries in the catalog.
func List(output io.Writer) error {
	path, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(path, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// Add loads and decodes the named cartridge file and stores a summary
// entry in the catalog.
func Add(output io.Writer, filename string) error {
	cartload := cartridgeloader.NewLoader(filename)
	if err := cartload.Load(); err != nil {
		return curated.Errorf("catalog: %v", err)
	}

	cart, err := cartridge.Decode(cartload.Data)
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}

	path, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(path, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}
	defer db.EndSession(true)

	ent := newROMEntry(cartload, cart)
	if err := db.Add(ent); err != nil {
		return curated.Errorf("catalog: %v", err)
	}

	output.Write([]byte(fmt.Sprintf("added: %s\n", ent)))

	return nil
}

// Delete removes an entry from the catalog. the confirmation reader is
// asked for a y/n answer before anything is removed.
func Delete(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("catalog: invalid key (%s)", key)
	}

	path, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(path, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}
	defer db.EndSession(true)

	ent, err := db.SelectKeys(nil, v)
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	_, err = confirmation.Read(confirm)
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		err = db.Delete(v)
		if err != nil {
			return curated.Errorf("catalog: %v", err)
		}
		output.Write([]byte(fmt.Sprintf("deleted entry #%s from the catalog\n", key)))
	}

	return nil
}

// Verify re-loads and re-decodes every catalogued file, comparing the
// data hash and the stored header summary against what is on disk. a
// closing tally counts the entries that succeeded and failed. when
// verbose is true the reason for each failure is printed too.
func Verify(output io.Writer, verbose bool) error {
	path, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(path, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}
	defer db.EndSession(false)

	numSucceed := 0
	numFail := 0
	numError := 0

	defer func() {
		output.Write([]byte(fmt.Sprintf("catalog verify: %d succeed, %d fail", numSucceed, numFail)))
		if numError > 0 {
			output.Write([]byte(" [with errors]"))
		}
		output.Write([]byte("\n"))
	}()

	_, err = db.SelectAll(func(key int, dbent database.Entry) error {
		ent, ok := dbent.(*romEntry)
		if !ok {
			return curated.Errorf("catalog: unexpected entry type (%s)", dbent.ID())
		}

		reason, err := verifyEntry(ent)
		if err != nil {
			numError++
			output.Write([]byte(fmt.Sprintf("  ERROR: %03d %s\n", key, ent)))
			if verbose {
				output.Write([]byte(fmt.Sprintf("%s\n", err)))
			}
			return nil
		}

		if reason != "" {
			numFail++
			output.Write([]byte(fmt.Sprintf("failure: %03d %s\n", key, ent)))
			if verbose {
				output.Write([]byte(fmt.Sprintf("%s\n", reason)))
			}
			return nil
		}

		numSucceed++
		output.Write([]byte(fmt.Sprintf("succeed: %03d %s\n", key, ent)))
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// verifyEntry checks one catalog entry against the file on disk. the
// returned string is empty on success and names the first mismatch
// otherwise.
func verifyEntry(ent *romEntry) (string, error) {
	cartload := cartridgeloader.NewLoader(ent.Filename)
	if err := cartload.Load(); err != nil {
		return "", err
	}

	if cartload.Hash != ent.Hash {
		return "hash has changed", nil
	}

	cart, err := cartridge.Decode(cartload.Data)
	if err != nil {
		return "", err
	}

	fresh := newROMEntry(cartload, cart)
	switch {
	case fresh.Title != ent.Title:
		return "title has changed", nil
	case fresh.CartridgeType != ent.CartridgeType:
		return "cartridge type has changed", nil
	case fresh.ROMSize != ent.ROMSize:
		return "ROM size has changed", nil
	case fresh.RAMSize != ent.RAMSize:
		return "RAM size has changed", nil
	case fresh.Version != ent.Version:
		return "ROM version has changed", nil
	}

	return "", nil
}
