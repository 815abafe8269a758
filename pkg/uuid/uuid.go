// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

/*
Package uuid provides unique identifiers for records created at runtime.

It wraps the standard UUID library to generate Version 4 values, matching the
shape of every identifier in the catalog. The identifier validator only
accepts version nibbles 1-5, so newer time-ordered versions (v7) must not be
used for persisted entity ids.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv4 string.
func New() string {
	return uuid.New().String()
}
