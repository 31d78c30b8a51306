// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package fetch resolves a resource body from the network or the cache
// according to a cache mode, and emits it.
package fetch
