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

package scan

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Ragnaroek/mule-gb/cartridge"
	"github.com/Ragnaroek/mule-gb/cartridgeloader"
	"github.com/Ragnaroek/mule-gb/curated"
	"github.com/Ragnaroek/mule-gb/logger"
)

// Attr controls the behaviour of the Scan() function.
type Attr struct {
	// only print the files that failed to decode
	FailuresOnly bool

	// anything received on this channel stops the scan between files. the
	// closing tally still reports what was scanned up to that point. nil
	// means the scan cannot be interrupted
	Quit <-chan os.Signal
}

// Scan walks the directory tree and decodes every file with a recognised
// cartridge extension, printing one result line per file and a closing
// tally.
func Scan(output io.Writer, dir string, attr Attr) error {
	numDecoded := 0
	numFailed := 0

	defer func() {
		output.Write([]byte(fmt.Sprintf("scanned %d files: %d decoded, %d failed\n", numDecoded+numFailed, numDecoded, numFailed)))
	}()

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !cartridgeloader.RecognisedExtension(path) {
			return nil
		}

		// check for an interrupt between files. the walk is abandoned but
		// the deferred tally still runs
		select {
		case <-attr.Quit:
			return filepath.SkipAll
		default:
		}

		if err := decodeOne(path); err != nil {
			numFailed++
			logger.Log(logger.Allow, "scan", err)
			output.Write([]byte(fmt.Sprintf("failure: %s\n", path)))
			return nil
		}

		numDecoded++
		if !attr.FailuresOnly {
			output.Write([]byte(fmt.Sprintf("decoded: %s\n", path)))
		}

		return nil
	})
	if err != nil {
		return curated.Errorf("scan: %v", err)
	}

	return nil
}

func decodeOne(path string) error {
	cartload := cartridgeloader.NewLoader(path)
	if err := cartload.Load(); err != nil {
		return err
	}

	_, err := cartridge.Decode(cartload.Data)
	return err
}
