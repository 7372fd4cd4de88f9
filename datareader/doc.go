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

// Package datareader provides the primitive read operations used when
// decoding a binary layout. A Reader walks forward over a byte buffer with
// typed little-endian reads; the few absolute-offset operations, such as
// ReadUint8At(), leave the cursor where it is.
//
// Every operation is bounds checked. An access outside the buffer returns a
// curated error with the OutOfRange pattern and leaves the cursor
// unchanged, meaning a truncated input file surfaces as a normal error and
// not as a panic.
package datareader
