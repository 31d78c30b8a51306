// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package apiurl turns user supplied resource paths into absolute API URLs.
package apiurl
