// SPDX-License-Identifier: MIT

// Package config holds the immutable experiment configuration.
//
// An Experiment is loaded from YAML on top of Default(), validated once with
// struct tags (go-playground/validator) and cross-checked against the grid
// it describes: every movable stick and every solution index must exist.
// It is then passed by value into the session; nothing in the module reads
// configuration from globals.
//
// Durations are Go duration strings ("15m", "1s"); grid indices are
// [row, col] pairs centred on the middle of the field.
package config
