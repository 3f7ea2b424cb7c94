// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - encode a 64 bit unsigned integer as a Varint64
//
// little endian encoding of seven data bits per byte, the high bit
// flags a continuation byte; a ninth byte, when present, keeps all
// eight of its bits so the largest value still encodes in nine bytes
func ToVarint64(value uint64) []byte {
	encoded := make([]byte, 0, Varint64MaximumBytes)
	if value < 0x80 {
		return append(encoded, byte(value))
	}

	for i := 0; i < Varint64MaximumBytes && 0 != value; i += 1 {
		flag := uint64(0x80)
		if value < 0x80 {
			flag = 0x00
		}
		encoded = append(encoded, byte(value|flag))
		value >>= 7
	}
	return encoded
}

// FromVarint64 - decode a Varint64 from the start of a buffer
//
// the second return is the number of bytes consumed
// a truncated buffer decodes as 0, 0
func FromVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)

	shift := uint(0)
	used := 0

	for used < len(buffer) {
		b := uint64(buffer[used])
		used += 1
		if used < Varint64MaximumBytes {
			value |= b & 0x7f << shift
			if 0 == b&0x80 {
				return value, used
			}
		} else {
			// ninth byte carries all eight bits
			value |= b << shift
			return value, used
		}
		shift += 7
	}
	return 0, 0
}

// CopyVarint64 - duplicate the Varint64 at the beginning of a buffer
func CopyVarint64(buffer []byte) []byte {
	prefix := make([]byte, 0)

loop:
	for i := 0; i < Varint64MaximumBytes; i += 1 {
		b := buffer[i]
		prefix = append(prefix, b)
		if 0 == b&0x80 {
			break loop
		}
	}
	return prefix
}

// ClippedVarint64 - decode a Varint64 restricted to minimum..maximum
//
// the decoded value is returned as an int, any value outside the
// range or a bad range gives 0, 0
func ClippedVarint64(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum < 0 || minimum >= maximum {
		return 0, 0
	}

	value, used := FromVarint64(buffer)
	if 0 == used {
		return 0, 0
	}
	n := int(value)
	if n < minimum || n > maximum {
		return 0, 0
	}
	return n, used
}
