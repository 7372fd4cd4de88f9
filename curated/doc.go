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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with
// a specific pattern. The pattern is what differentiates curated errors.
// For example:
//
//	e := curated.Errorf("decode: unexpected byte %#02x", b)
//
//	if curated.Is(e, "decode: unexpected byte %#02x") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("decode: unexpected byte %#02x", b)
//	f := curated.Errorf("inspect: %v", e)
//
//	if curated.Has(f, "decode: unexpected byte %#02x") {
//		fmt.Println("true")
//	}
//
// In this example a call to Is() with the inner pattern would return false;
// error f only matches the pattern it was created with, "inspect: %v".
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. Put another way, it returns true if the error is
// 'curated' and false if the error is 'uncurated'. We can also think of the
// difference as being 'expected' and 'unexpected' depending on how we choose
// to handle the result of a function call.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. The practical advantage of this is that it
// alleviates the problem of when and how to wrap errors. Wrapping an error
// with the same prefix at two levels of the call stack will print the prefix
// once, not twice.
//
// For the purposes of this package an error chain is composed of parts
// separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan). For example:
//
//	part 1: part 2: part 3
//
// There is no special provision for sentinel errors in the curated package
// but they are achievable in practice through the use of the Is() and Has()
// functions. Sentinel patterns should be stored as a const string, suitably
// named and commented. The cartridge and datareader packages both do this.
package curated
