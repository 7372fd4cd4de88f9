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

package datareader

import (
	"encoding/binary"
	"strings"
	"unicode/utf8"

	"github.com/Ragnaroek/mule-gb/curated"
)

// OutOfRange is the error pattern returned by any read whose range falls
// outside the underlying buffer.
const OutOfRange = "datareader: out of range (offset %d, length %d, buffer size %d)"

// Reader is a sequential reader of binary data. It borrows the byte buffer
// given to the New*() functions, it never copies it. Slices returned by the
// Slice() and UnreadBytes() functions alias that buffer.
//
// The cursor only ever moves forward. The exceptions, ReadUint8At() and
// Slice(), work with absolute offsets and do not move the cursor at all.
type Reader struct {
	data   []byte
	offset int
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// NewReaderAt creates a Reader with the cursor at the specified offset.
func NewReaderAt(data []byte, offset int) *Reader {
	return &Reader{data: data, offset: offset}
}

// require checks that the range [offset, offset+length) is inside the
// buffer. the cursor is left alone on failure.
func (r *Reader) require(offset int, length int) error {
	if offset < 0 || length < 0 || offset+length > len(r.data) {
		return curated.Errorf(OutOfRange, offset, length, len(r.data))
	}
	return nil
}

// ReadUint8 consumes one byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.require(r.offset, 1); err != nil {
		return 0, err
	}
	v := r.data[r.offset]
	r.offset++
	return v, nil
}

// ReadUint16 consumes two bytes as a little-endian unsigned value.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.require(r.offset, 2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.offset:])
	r.offset += 2
	return v, nil
}

// ReadUint32 consumes four bytes as a little-endian unsigned value.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.require(r.offset, 4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.offset:])
	r.offset += 4
	return v, nil
}

// ReadUint64 consumes eight bytes as a little-endian unsigned value.
func (r *Reader) ReadUint64() (uint64, error) {
	if err := r.require(r.offset, 8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.data[r.offset:])
	r.offset += 8
	return v, nil
}

// ReadInt16 consumes two bytes as a little-endian signed value.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadInt32 consumes four bytes as a little-endian signed value.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadBool consumes two bytes as a little-endian unsigned value. the result
// is false if and only if the value is exactly zero.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadUint16()
	return v != 0, err
}

// ReadString consumes the specified number of bytes, decoded as UTF-8.
// invalid byte sequences are replaced with the unicode replacement
// character, they are never an error.
func (r *Reader) ReadString(length int) (string, error) {
	if err := r.require(r.offset, length); err != nil {
		return "", err
	}
	s := lossyString(r.data[r.offset : r.offset+length])
	r.offset += length
	return s, nil
}

// lossyString decodes UTF-8 with one replacement character substituted for
// each maximal invalid subpart. a truncated multi-byte sequence decodes to
// a single replacement character, a run of stray bytes to one each.
func lossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	s := strings.Builder{}
	s.Grow(len(b))

	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			size = invalidPrefixWidth(b)
			s.WriteRune(utf8.RuneError)
		} else {
			s.WriteRune(r)
		}
		b = b[size:]
	}

	return s.String()
}

// invalidPrefixWidth measures the maximal subpart at the start of b, which
// is known not to begin a valid encoding. the subpart is the longest prefix
// of a well-formed sequence, so a multi-byte lead absorbs the valid
// continuation bytes that follow it.
func invalidPrefixWidth(b []byte) int {
	cont := func(c byte) bool {
		return c&0xc0 == 0x80
	}

	if len(b) < 2 {
		return 1
	}

	// the permitted range of the second byte depends on the lead. the
	// constrained leads rule out overlong encodings, surrogates and code
	// points beyond U+10FFFF
	switch {
	case b[0] == 0xe0:
		if b[1] < 0xa0 || b[1] > 0xbf {
			return 1
		}
	case b[0] == 0xed:
		if b[1] < 0x80 || b[1] > 0x9f {
			return 1
		}
	case b[0] >= 0xe1 && b[0] <= 0xef:
		if !cont(b[1]) {
			return 1
		}
	case b[0] == 0xf0:
		if b[1] < 0x90 || b[1] > 0xbf {
			return 1
		}
	case b[0] >= 0xf1 && b[0] <= 0xf3:
		if !cont(b[1]) {
			return 1
		}
	case b[0] == 0xf4:
		if b[1] < 0x80 || b[1] > 0x8f {
			return 1
		}
	default:
		// stray continuation byte, overlong two-byte lead or an outright
		// invalid byte. a two-byte lead with a valid continuation never
		// arrives here, it is a complete encoding
		return 1
	}

	// a three-byte lead with two valid continuations is likewise complete,
	// so the sequence must have been cut short after the second byte
	if b[0] <= 0xef {
		return 2
	}

	if len(b) >= 3 && cont(b[2]) {
		return 3
	}
	return 2
}

// ReadUint8At reads the byte at an absolute offset. the cursor is not
// moved.
func (r *Reader) ReadUint8At(offset int) (uint8, error) {
	if err := r.require(offset, 1); err != nil {
		return 0, err
	}
	return r.data[offset], nil
}

// Skip advances the cursor without reading.
func (r *Reader) Skip(n int) error {
	if err := r.require(r.offset, n); err != nil {
		return err
	}
	r.offset += n
	return nil
}

// Slice returns the bytes in the absolute range [start, end). the cursor is
// not moved and the returned slice aliases the underlying buffer.
func (r *Reader) Slice(start int, end int) ([]byte, error) {
	if err := r.require(start, end-start); err != nil {
		return nil, err
	}
	return r.data[start:end], nil
}

// UnreadBytes returns the remainder of the buffer, from the cursor to the
// end.
func (r *Reader) UnreadBytes() []byte {
	return r.data[r.offset:]
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int {
	return r.offset
}
