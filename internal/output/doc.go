// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders fetched bodies in the requested format and prints
// the cache listing.
package output
