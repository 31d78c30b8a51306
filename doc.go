// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// pokeapi is the main package for the pokeapi command line tool. It fetches
// API resources, keeps their bodies in the user cache directory, and wires
// the CLI to the internal packages.
package main
