// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package schema

// CatReadMethodTable represents the 'catalog.readmethod' table
type CatReadMethodTable struct {
	Table     string
	ID        string
	EngineID  string
	Name      string
	CreatedAt string
}

// CatReadMethod is the schema definition for catalog.readmethod
var CatReadMethod = CatReadMethodTable{
	Table:     "catalog.readmethod",
	ID:        "id",
	EngineID:  "engineid",
	Name:      "name",
	CreatedAt: "createdat",
}

func (t CatReadMethodTable) Columns() []string {
	return []string{t.ID, t.EngineID, t.Name, t.CreatedAt}
}
