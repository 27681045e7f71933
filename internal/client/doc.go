// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line application runtime.
//
// It maps the positional arguments of the fortnite binary to calls on a
// fortnite.Client, opens and closes the session around the calls that need
// one, and writes every result to its output as indented JSON.
package client
