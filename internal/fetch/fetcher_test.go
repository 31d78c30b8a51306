// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nejni-marji/pokeapi/internal/cache"
)

const prefix = "https://pokeapi.co/api/v2/"

// countingGetter returns a new body on each call so refetches are visible.
type countingGetter struct {
	calls int
	err   error
}

func (g *countingGetter) Get(_ context.Context, url string) ([]byte, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return []byte(fmt.Sprintf(`{"url":%q,"call":%d}`, url, g.calls)), nil
}

func newTestFetcher() (*Fetcher, *cache.MemoryStore, *countingGetter) {
	store := cache.NewMemoryStore()
	getter := &countingGetter{}
	return New(prefix, store, getter), store, getter
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseMode("sometimes")
	assert.ErrorContains(t, err, "must be one of")
}

func TestResolve_Auto(t *testing.T) {
	f, store, getter := newTestFetcher()
	ctx := context.Background()
	url := prefix + "pokemon/25"

	var first bytes.Buffer
	require.NoError(t, f.Get(ctx, &first, url, false, ModeAuto))
	assert.Equal(t, 1, getter.calls)
	assert.Equal(t, 1, store.Writes)
	assert.Len(t, store.Data, 1)
	assert.Contains(t, store.Data, "pokemon%2F25")

	var second bytes.Buffer
	require.NoError(t, f.Get(ctx, &second, url, false, ModeAuto))
	assert.Equal(t, 1, getter.calls, "second auto call must not hit the network")
	assert.Equal(t, 1, store.Writes)
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestResolve_AutoReportsSource(t *testing.T) {
	f, _, _ := newTestFetcher()
	ctx := context.Background()

	res, err := f.Resolve(ctx, prefix+"ability", ModeAuto)
	require.NoError(t, err)
	assert.False(t, res.FromCache)
	assert.Equal(t, "ability", res.Key)

	res, err = f.Resolve(ctx, prefix+"ability", ModeAuto)
	require.NoError(t, err)
	assert.True(t, res.FromCache)
}

func TestResolve_Update(t *testing.T) {
	f, store, getter := newTestFetcher()
	ctx := context.Background()
	url := prefix + "pokemon/25"
	key := cache.Key(url, prefix)

	require.NoError(t, store.Write(key, []byte("stale")))

	for i := 1; i <= 3; i++ {
		res, err := f.Resolve(ctx, url, ModeUpdate)
		require.NoError(t, err)
		assert.False(t, res.FromCache)
		assert.Equal(t, i, getter.calls)
		assert.Equal(t, res.Body, store.Data[key], "cache must hold the latest fetch")
	}
	assert.Equal(t, 4, store.Writes)
	assert.Equal(t, 0, store.Reads)
}

func TestResolve_UpdateWithCompare(t *testing.T) {
	f, store, getter := newTestFetcher()
	f.Compare = true
	url := prefix + "type/3"

	_, err := f.Resolve(context.Background(), url, ModeUpdate)
	require.NoError(t, err)
	_, err = f.Resolve(context.Background(), url, ModeUpdate)
	require.NoError(t, err)

	assert.Equal(t, 2, getter.calls)
	assert.Equal(t, 2, store.Writes)
	assert.Equal(t, 1, store.Reads, "only the second update has an old entry to compare")
}

func TestResolve_Ignore(t *testing.T) {
	f, store, getter := newTestFetcher()
	ctx := context.Background()
	url := prefix + "pokemon/25"
	key := cache.Key(url, prefix)

	res, err := f.Resolve(ctx, url, ModeIgnore)
	require.NoError(t, err)
	assert.Equal(t, 1, getter.calls)
	assert.Empty(t, store.Data)

	// Even with an entry present, ignore neither reads nor replaces it.
	require.NoError(t, store.Write(key, []byte("cached")))
	res, err = f.Resolve(ctx, url, ModeIgnore)
	require.NoError(t, err)
	assert.Equal(t, 2, getter.calls)
	assert.NotEqual(t, "cached", string(res.Body))
	assert.Equal(t, "cached", string(store.Data[key]))
	assert.Equal(t, 0, store.Reads)
	assert.Equal(t, 1, store.Writes)
}

func TestResolve_PrefixMismatch(t *testing.T) {
	for _, mode := range Modes {
		t.Run(string(mode), func(t *testing.T) {
			f, store, getter := newTestFetcher()

			var out bytes.Buffer
			err := f.Get(context.Background(), &out, "https://example.com/api/v2/pokemon", false, mode)

			var pe *PrefixError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, prefix, pe.Prefix)
			assert.Equal(t, 0, getter.calls)
			assert.Empty(t, store.Data)
			assert.Equal(t, 0, store.Reads)
			assert.Empty(t, out.String())
		})
	}
}

func TestResolve_FetchErrorLeavesCacheAlone(t *testing.T) {
	for _, mode := range []Mode{ModeAuto, ModeUpdate} {
		t.Run(string(mode), func(t *testing.T) {
			f, store, getter := newTestFetcher()
			getter.err = errors.New("dns failure")

			_, err := f.Resolve(context.Background(), prefix+"pokemon/1", mode)
			assert.ErrorContains(t, err, "dns failure")
			assert.Empty(t, store.Data)
		})
	}
}

func TestResolve_UnknownMode(t *testing.T) {
	f, _, _ := newTestFetcher()
	_, err := f.Resolve(context.Background(), prefix+"x", Mode("never"))
	assert.Error(t, err)
}

func TestGet_Quiet(t *testing.T) {
	for _, mode := range Modes {
		t.Run(string(mode), func(t *testing.T) {
			f, store, getter := newTestFetcher()

			var out bytes.Buffer
			require.NoError(t, f.Get(context.Background(), &out, prefix+"berry/1", true, mode))
			assert.Empty(t, out.String())
			assert.Equal(t, 1, getter.calls)

			if mode == ModeIgnore {
				assert.Empty(t, store.Data)
			} else {
				assert.Len(t, store.Data, 1, "quiet must not suppress cache population")
			}
		})
	}
}

func TestEmit(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "adds newline", body: `{"a":1}`, want: "{\"a\":1}\n"},
		{name: "keeps existing newline", body: "text\n", want: "text\n"},
		{name: "empty body", body: "", want: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, Emit(&out, []byte(tt.body), false))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestEmit_Quiet(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Emit(&out, []byte("body"), true))
	assert.Zero(t, out.Len())
}

func TestCompareBodies(t *testing.T) {
	changed, n := compareBodies([]byte(`{"a":1,"b":2}`), []byte(`{"b":2,"a":1}`))
	assert.False(t, changed)
	assert.Equal(t, 0, n)

	changed, n = compareBodies([]byte(`{"a":1}`), []byte(`{"a":2,"c":3}`))
	assert.True(t, changed)
	assert.Equal(t, 2, n)

	changed, n = compareBodies([]byte("plain"), []byte("text"))
	assert.True(t, changed)
	assert.Equal(t, -1, n)
}
