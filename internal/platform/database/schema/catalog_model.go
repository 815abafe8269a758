// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package schema

// CatModelTable represents the 'catalog.model' table
type CatModelTable struct {
	Table     string
	ID        string
	BrandID   string
	Name      string
	CreatedAt string
}

// CatModel is the schema definition for catalog.model
var CatModel = CatModelTable{
	Table:     "catalog.model",
	ID:        "id",
	BrandID:   "brandid",
	Name:      "name",
	CreatedAt: "createdat",
}

func (t CatModelTable) Columns() []string {
	return []string{t.ID, t.BrandID, t.Name, t.CreatedAt}
}
