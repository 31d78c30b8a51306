// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the pokeapi CLI. It wires flags, validators, the
// fetch action and the mapping from errors to exit codes.
package command
