// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package catalog

import "context"

// Repository defines the data access contract.
//
// Every listing returns children ordered by name ascending; the tie-break
// between equal names is whatever order the storage engine yields and is
// not part of the contract. An unknown (but well-formed) parent id yields
// an empty slice, never an error.
type Repository interface {
	ListBrands(context context.Context) ([]*Brand, error)
	ListModels(context context.Context, brandID string) ([]*Model, error)
	ListBuilds(context context.Context, modelID string) ([]*Build, error)
	ListEngines(context context.Context, buildID string) ([]*Engine, error)
}
