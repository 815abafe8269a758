// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package lead

import "context"

// Repository defines the data access contract. Insert-only by design.
type Repository interface {
	CreateLead(context context.Context, lead *Lead) error
}
