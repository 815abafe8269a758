// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package schema

// CatOptionTable represents the 'catalog.option' table
type CatOptionTable struct {
	Table     string
	ID        string
	EngineID  string
	Name      string
	Category  string
	IsEnabled string
	CreatedAt string
}

// CatOption is the schema definition for catalog.option
var CatOption = CatOptionTable{
	Table:     "catalog.option",
	ID:        "id",
	EngineID:  "engineid",
	Name:      "name",
	Category:  "category",
	IsEnabled: "isenabled",
	CreatedAt: "createdat",
}

func (t CatOptionTable) Columns() []string {
	return []string{t.ID, t.EngineID, t.Name, t.Category, t.IsEnabled, t.CreatedAt}
}
