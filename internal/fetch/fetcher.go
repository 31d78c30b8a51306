// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fetch

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"

	"github.com/nejni-marji/pokeapi/internal/cache"
)

// Result is a resolved body and where it came from.
type Result struct {
	Body      []byte
	Key       string
	FromCache bool
}

// Fetcher resolves URLs beneath Prefix, caching bodies in Store.
type Fetcher struct {
	Prefix string
	Store  cache.Store
	Getter Getter
	// Compare makes update mode log whether the stored body changed. It
	// costs an extra read of the old entry.
	Compare bool
}

// New returns a Fetcher. A nil getter means NewHTTPGetter().
func New(prefix string, store cache.Store, getter Getter) *Fetcher {
	if getter == nil {
		getter = NewHTTPGetter()
	}
	return &Fetcher{Prefix: prefix, Store: store, Getter: getter}
}

// Get resolves url and writes the body to w unless quiet.
func (f *Fetcher) Get(ctx context.Context, w io.Writer, url string, quiet bool, mode Mode) error {
	res, err := f.Resolve(ctx, url, mode)
	if err != nil {
		return err
	}
	return Emit(w, res.Body, quiet)
}

// Resolve returns the body for url according to mode. The URL is checked
// against the prefix before anything else happens.
func (f *Fetcher) Resolve(ctx context.Context, url string, mode Mode) (*Result, error) {
	log.Debugf("url: %s", url)
	log.Debugf("prefix: %s", f.Prefix)

	if !strings.HasPrefix(url, f.Prefix) {
		return nil, &PrefixError{URL: url, Prefix: f.Prefix}
	}

	key := cache.Key(url, f.Prefix)
	log.Debugf("cache key: %s", key)

	switch mode {
	case ModeIgnore:
		log.Info("ignoring cache")
		body, err := f.Getter.Get(ctx, url)
		if err != nil {
			return nil, err
		}
		return &Result{Body: body, Key: key}, nil

	case ModeUpdate:
		return f.refresh(ctx, url, key, f.Compare)

	case ModeAuto:
		ok, err := f.Store.Exists(key)
		if err != nil {
			return nil, err
		}
		log.Debugf("has cache: %t", ok)
		if !ok {
			return f.refresh(ctx, url, key, false)
		}

		log.Infof("reading from cache for %s", url)
		body, err := f.Store.Read(key)
		if err != nil {
			return nil, err
		}
		return &Result{Body: body, Key: key, FromCache: true}, nil
	}

	return nil, fmt.Errorf("unknown cache mode %q", mode)
}

// refresh fetches url and stores the body under key. With compare set, an
// existing entry is diffed against the new body for the debug log.
func (f *Fetcher) refresh(ctx context.Context, url, key string, compare bool) (*Result, error) {
	body, err := f.Getter.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	if compare {
		logChange(f.Store, key, body)
	}

	log.Infof("writing to cache for %s (%s)", url, humanize.Bytes(uint64(len(body))))
	if err := f.Store.Write(key, body); err != nil {
		return nil, err
	}
	return &Result{Body: body, Key: key}, nil
}

// Emit writes body to w as a single write, adding a final newline if the
// body lacks one. Nothing is written when quiet is set.
func Emit(w io.Writer, body []byte, quiet bool) error {
	if quiet {
		log.Info("running in quiet mode")
		return nil
	}

	out := body
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = make([]byte, 0, len(body)+1)
		out = append(out, body...)
		out = append(out, '\n')
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
