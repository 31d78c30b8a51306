// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fetch

import (
	"bytes"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"

	"github.com/nejni-marji/pokeapi/internal/cache"
)

// logChange reports at debug level how a fresh body differs from the one
// already stored under key. Failures are only logged.
func logChange(store cache.Store, key string, fresh []byte) {
	ok, err := store.Exists(key)
	if err != nil || !ok {
		log.Debugf("no previous cache entry for %s", key)
		return
	}

	old, err := store.Read(key)
	if err != nil {
		log.WithError(err).Debugf("could not read previous cache entry for %s", key)
		return
	}

	changed, deltas := compareBodies(old, fresh)
	if !changed {
		log.Debugf("cache entry %s unchanged", key)
		return
	}
	log.Debugf("cache entry %s changed (%d top-level deltas)", key, deltas)
}

// compareBodies reports whether two bodies differ. For JSON objects the
// number of top-level deltas is also returned; otherwise it is -1.
func compareBodies(old, fresh []byte) (bool, int) {
	d, err := gojsondiff.New().Compare(old, fresh)
	if err != nil {
		return !bytes.Equal(old, fresh), -1
	}
	return d.Modified(), len(d.Deltas())
}
