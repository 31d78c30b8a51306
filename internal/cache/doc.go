// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache stores raw API response bodies keyed by a flat, percent
// encoded form of the resource path. Nothing here expires or evicts entries.
package cache
