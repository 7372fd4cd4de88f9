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

package cartridgeloader

import (
	"path"
	"strings"
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{
	".GB", ".GBC", ".SGB", ".DMG", ".BIN", ".ROM",
}

// RecognisedExtension returns true if the file's extension is in the
// FileExtensions list. comparison is case insensitive.
func RecognisedExtension(filename string) bool {
	ext := path.Ext(filename)
	for _, e := range FileExtensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
