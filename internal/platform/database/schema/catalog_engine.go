// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package schema

// CatEngineTable represents the 'catalog.engine' table
type CatEngineTable struct {
	Table            string
	ID               string
	BuildID          string
	Name             string
	EngineCode       string
	FuelType         string
	DisplacementCc   string
	ECU              string
	CompressionRatio string
	BoreMm           string
	StrokeMm         string
	TurboType        string
	EngineNumber     string
	CreatedAt        string
}

// CatEngine is the schema definition for catalog.engine
var CatEngine = CatEngineTable{
	Table:            "catalog.engine",
	ID:               "id",
	BuildID:          "buildid",
	Name:             "name",
	EngineCode:       "enginecode",
	FuelType:         "fueltype",
	DisplacementCc:   "displacementcc",
	ECU:              "ecu",
	CompressionRatio: "compressionratio",
	BoreMm:           "boremm",
	StrokeMm:         "strokemm",
	TurboType:        "turbotype",
	EngineNumber:     "enginenumber",
	CreatedAt:        "createdat",
}

func (t CatEngineTable) Columns() []string {
	return []string{
		t.ID, t.BuildID, t.Name, t.EngineCode, t.FuelType, t.DisplacementCc,
		t.ECU, t.CompressionRatio, t.BoreMm, t.StrokeMm, t.TurboType,
		t.EngineNumber, t.CreatedAt,
	}
}
