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

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Ragnaroek/mule-gb/cartridgeloader"
	"github.com/Ragnaroek/mule-gb/test"
)

func TestLoader(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	fn := filepath.Join(t.TempDir(), "game.gb")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0600))

	cartload := cartridgeloader.NewLoader(fn)
	test.ExpectEquality(t, cartload.ShortName(), "game")
	test.ExpectEquality(t, cartload.HasLoaded(), false)

	test.ExpectSuccess(t, cartload.Load())
	test.ExpectEquality(t, cartload.HasLoaded(), true)
	test.ExpectEquality(t, len(cartload.Data), len(data))
	test.ExpectEquality(t, cartload.Hash, fmt.Sprintf("%x", sha1.Sum(data)))

	// a second load is a no-op once data is present
	test.ExpectSuccess(t, cartload.Load())
	test.ExpectEquality(t, len(cartload.Data), len(data))
}

func TestLoaderHashValidation(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.gb")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xff}, 0600))

	// a pre-set hash that does not match the file content fails the load
	cartload := cartridgeloader.NewLoader(fn)
	cartload.Hash = "0000000000000000000000000000000000000000"
	test.ExpectFailure(t, cartload.Load())
}

func TestRecognisedExtension(t *testing.T) {
	test.ExpectSuccess(t, cartridgeloader.RecognisedExtension("zelda.gb"))
	test.ExpectSuccess(t, cartridgeloader.RecognisedExtension("ZELDA.GBC"))
	test.ExpectSuccess(t, cartridgeloader.RecognisedExtension("dir/name.rom"))
	test.ExpectFailure(t, cartridgeloader.RecognisedExtension("notes.txt"))
	test.ExpectFailure(t, cartridgeloader.RecognisedExtension("noextension"))
}
