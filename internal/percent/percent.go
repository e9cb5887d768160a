// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package percent decodes and encodes request-target octets the way
// quark.c's decode()/encode() do: a narrow, control-char-safe codec,
// not general URL-encoding.
package percent

import "strings"

// Decode turns '+' into ' ' and "%HH" (two hex digits, either case)
// into the byte HH. A malformed '%' escape — not followed by two hex
// digits — is copied through verbatim rather than rejected, matching
// quark.c's decode(), which only consumes the escape on a successful
// sscanf("%2hhx").
func Decode(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); i++ {
		switch c := src[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(src) && isHex(src[i+1]) && isHex(src[i+2]):
			b.WriteByte(unhex(src[i+1])<<4 | unhex(src[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Encode escapes bytes outside the printable-ASCII range (< 0x20 or
// > 0x7F) as upper-case "%XX"; every other byte, including '/', '.',
// '%' and other reserved characters, passes through unchanged. This is
// the codec quark.c's encode() uses for redirect Location headers, not
// a general URL-encoder.
func Encode(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	const hexDigits = "0123456789ABCDEF"
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c < 0x20 || c > 0x7F {
			b.WriteByte('%')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xf])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
