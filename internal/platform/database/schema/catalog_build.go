// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package schema

// CatBuildTable represents the 'catalog.build' table
type CatBuildTable struct {
	Table     string
	ID        string
	ModelID   string
	Name      string
	YearFrom  string
	YearTo    string
	CreatedAt string
}

// CatBuild is the schema definition for catalog.build
var CatBuild = CatBuildTable{
	Table:     "catalog.build",
	ID:        "id",
	ModelID:   "modelid",
	Name:      "name",
	YearFrom:  "yearfrom",
	YearTo:    "yearto",
	CreatedAt: "createdat",
}

func (t CatBuildTable) Columns() []string {
	return []string{t.ID, t.ModelID, t.Name, t.YearFrom, t.YearTo, t.CreatedAt}
}
