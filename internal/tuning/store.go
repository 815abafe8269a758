// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package tuning

import "context"

// Repository defines the data access contract.
type Repository interface {
	// GetEngineRecord loads the engine and its stages, read methods, and
	// options in one consistent snapshot — the three child collections must
	// never reflect different points in time. Returns apperr.NotFound when
	// no engine with that id exists.
	GetEngineRecord(context context.Context, engineID string) (*EngineRecord, error)
}
