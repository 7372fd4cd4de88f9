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

package database_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Ragnaroek/mule-gb/database"
	"github.com/Ragnaroek/mule-gb/test"
)

type testEntry struct {
	name  string
	value string
}

func (ent testEntry) ID() string {
	return "test"
}

func (ent testEntry) String() string {
	return fmt.Sprintf("%s = %s", ent.name, ent.value)
}

func (ent testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.name, ent.value}, nil
}

func (ent testEntry) CleanUp() error {
	return nil
}

func deserialiseTestEntry(fields database.SerialisedEntry) (database.Entry, error) {
	return testEntry{name: fields[0], value: fields[1]}, nil
}

func initTestSession(db *database.Session) error {
	return db.RegisterEntryType("test", deserialiseTestEntry)
}

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	// create and populate
	db, err := database.StartSession(path, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 0)

	err = db.Add(testEntry{name: "foo", value: "bar"})
	test.ExpectSuccess(t, err)
	err = db.Add(testEntry{name: "baz", value: "qux"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 2)

	err = db.EndSession(true)
	test.DemandSuccess(t, err)

	// reopen for reading
	db, err = database.StartSession(path, database.ActivityReading, initTestSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 2)

	tw := &test.Writer{}
	err = db.List(tw)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tw.Compare("000 foo = bar\n001 baz = qux\nTotal: 2\n"), tw.String())

	// committing a read-only session is an error
	err = db.EndSession(true)
	test.ExpectFailure(t, err)
	err = db.EndSession(false)
	test.ExpectSuccess(t, err)

	// reopen and delete an entry
	db, err = database.StartSession(path, database.ActivityModifying, initTestSession)
	test.DemandSuccess(t, err)

	err = db.Delete(0)
	test.ExpectSuccess(t, err)
	err = db.Delete(0)
	test.ExpectFailure(t, err)

	err = db.EndSession(true)
	test.DemandSuccess(t, err)

	// the deletion has persisted
	db, err = database.StartSession(path, database.ActivityReading, initTestSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 1)

	ent, err := db.SelectKeys(nil, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "baz = qux")

	err = db.EndSession(false)
	test.ExpectSuccess(t, err)
}

func TestSelect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := database.StartSession(path, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)
	defer db.EndSession(false)

	err = db.Add(testEntry{name: "foo", value: "bar"})
	test.ExpectSuccess(t, err)
	err = db.Add(testEntry{name: "baz", value: "qux"})
	test.ExpectSuccess(t, err)

	count := 0
	_, err = db.SelectAll(func(_ int, _ database.Entry) error {
		count++
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, count, 2)

	_, err = db.SelectKeys(nil, 100)
	test.ExpectFailure(t, err)
}
