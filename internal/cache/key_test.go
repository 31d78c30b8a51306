// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prefix = "https://pokeapi.co/api/v2/"

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "single segment", url: prefix + "pokemon", want: "pokemon"},
		{name: "nested path", url: prefix + "pokemon/25", want: "pokemon%2F25"},
		{name: "query", url: prefix + "pokemon?limit=20&offset=40", want: "pokemon%3Flimit%3D20%26offset%3D40"},
		{name: "bare prefix", url: prefix, want: RootKey},
		{name: "unreserved kept", url: prefix + "a-b.c_d~e", want: "a-b.c_d~e"},
		{name: "percent is escaped", url: prefix + "50%", want: "50%25"},
		{name: "space", url: prefix + "mr mime", want: "mr%20mime"},
		{name: "dot", url: prefix + ".", want: "%2E"},
		{name: "dot dot", url: prefix + "..", want: "%2E%2E"},
		{name: "dots inside a name", url: prefix + "..a", want: "..a"},
		{name: "non ascii", url: prefix + "flabébé", want: "flab%C3%A9b%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(tt.url, prefix)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "/")
			assert.Equal(t, got, Key(tt.url, prefix), "key must be deterministic")
		})
	}
}

func TestKey_StripsPrefixOnce(t *testing.T) {
	// Only the leading prefix goes; a repeat further in is part of the path.
	got := Key(prefix+prefix, prefix)
	assert.Equal(t, EncodeKey(prefix), got)
}

func TestEncodeKey_Injective(t *testing.T) {
	names := []string{
		"", "%root", "root", ".", "..", "%2E", "%2E%2E", "pokemon/25", "pokemon%2F25",
		"pokemon/25/", "pokemon//25", "a b", "a+b", "a%20b", "~", "-", "_",
	}

	seen := map[string]string{}
	for _, n := range names {
		k := EncodeKey(n)
		assert.NotContains(t, k, "/")
		if prev, ok := seen[k]; ok {
			t.Fatalf("names %q and %q both encode to %q", prev, n, k)
		}
		seen[k] = n
	}
}

func TestDecodeKey_RoundTrip(t *testing.T) {
	for _, n := range []string{"", ".", "..", "pokemon/25", "pokemon?limit=1", "50%", "flabébé", "%root"} {
		got, err := DecodeKey(EncodeKey(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestDecodeKey_Invalid(t *testing.T) {
	for _, k := range []string{"%", "%2", "abc%zz", strings.Repeat("a", 3) + "%4"} {
		_, err := DecodeKey(k)
		assert.Error(t, err, "key %q", k)
	}
}
