// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"fmt"
	"strings"
)

// RootKey names the entry for the bare prefix. The encoder never emits a '%'
// that is not followed by two hex digits, so no path can collide with it.
const RootKey = "%root"

const upperhex = "0123456789ABCDEF"

// Key derives the cache key for rawURL by stripping prefix once and encoding
// the remainder. The result never contains '/', so every key is a single
// path element.
func Key(rawURL string, prefix string) string {
	return EncodeKey(strings.Replace(rawURL, prefix, "", 1))
}

// EncodeKey percent-encodes every byte of name outside the unreserved set
// A-Z a-z 0-9 '-' '.' '_' '~'. Names made only of dots have the dots encoded
// too so a key can never refer to "." or "..".
func EncodeKey(name string) string {
	if name == "" {
		return RootKey
	}

	dotsOnly := strings.Trim(name, ".") == ""

	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isUnreserved(c) && !(dotsOnly && c == '.') {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

// DecodeKey reverses EncodeKey.
func DecodeKey(key string) (string, error) {
	if key == RootKey {
		return "", nil
	}

	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+2 >= len(key) {
			return "", fmt.Errorf("truncated escape in key %q", key)
		}
		hi, ok1 := unhex(key[i+1])
		lo, ok2 := unhex(key[i+2])
		if !ok1 || !ok2 {
			return "", fmt.Errorf("invalid escape %q in key %q", key[i:i+3], key)
		}
		b.WriteByte(hi<<4 | lo)
		i += 2
	}
	return b.String(), nil
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
