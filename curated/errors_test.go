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

package curated_test

import (
	"errors"
	"testing"

	"github.com/Ragnaroek/mule-gb/curated"
	"github.com/Ragnaroek/mule-gb/test"
)

const testPattern = "test: value = %d"

func TestMatching(t *testing.T) {
	e := curated.Errorf(testPattern, 10)

	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, "some other pattern"))

	// a wrapped error no longer matches with Is() but it does with Has()
	f := curated.Errorf("fatal: %v", e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, "fatal: %v"))

	// errors from the errors package are uncurated
	g := errors.New("uncurated")
	test.ExpectFailure(t, curated.IsAny(g))
	test.ExpectFailure(t, curated.Is(g, testPattern))
	test.ExpectFailure(t, curated.Has(g, testPattern))

	// nil is not an error at all
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("decode: not yet implemented")

	// wrapping e with the prefix it already carries should not repeat the
	// prefix in the message
	f := curated.Errorf("decode: %v", e)
	test.ExpectEquality(t, f.Error(), "decode: not yet implemented")

	// a different prefix is kept
	g := curated.Errorf("inspect: %v", e)
	test.ExpectEquality(t, g.Error(), "inspect: decode: not yet implemented")
}

func TestMessageFormatting(t *testing.T) {
	e := curated.Errorf("decode: unsupported rom size (%#02x)", uint8(0x09))
	test.ExpectEquality(t, e.Error(), "decode: unsupported rom size (0x09)")
}
