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

// Package cartridgeloader is used to specify the cartridge image that is
// to be decoded.
//
// When the image is ready to be decoded, the Load() function should be
// used. The Load() function handles loading of data from different
// sources. Currently only local files and data over HTTP are supported.
// The sha1 hash of the data is computed as part of loading and, if the
// Hash field was pre-set, validated against the expected value.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/Zelda.gb",
//	}
//
// It is preferred however that the NewLoader() function is used.
package cartridgeloader
