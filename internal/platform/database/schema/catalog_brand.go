// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

// Package schema is the registry of table and column names used to build
// SQL statements. Keeping the identifiers in one place prevents drift
// between queries and the migration files.
package schema

// CatBrandTable represents the 'catalog.brand' table
type CatBrandTable struct {
	Table     string
	ID        string
	Name      string
	LogoURL   string
	CreatedAt string
}

// CatBrand is the schema definition for catalog.brand
var CatBrand = CatBrandTable{
	Table:     "catalog.brand",
	ID:        "id",
	Name:      "name",
	LogoURL:   "logourl",
	CreatedAt: "createdat",
}

func (t CatBrandTable) Columns() []string {
	return []string{t.ID, t.Name, t.LogoURL, t.CreatedAt}
}
