// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package schema

// CatStageTable represents the 'catalog.stage' table
type CatStageTable struct {
	Table      string
	ID         string
	EngineID   string
	Name       string
	StockHp    string
	TunedHp    string
	StockNm    string
	TunedNm    string
	TuningType string
	Method     string
	PriceCents string
	Notes      string
	CreatedAt  string
}

// CatStage is the schema definition for catalog.stage
var CatStage = CatStageTable{
	Table:      "catalog.stage",
	ID:         "id",
	EngineID:   "engineid",
	Name:       "name",
	StockHp:    "stockhp",
	TunedHp:    "tunedhp",
	StockNm:    "stocknm",
	TunedNm:    "tunednm",
	TuningType: "tuningtype",
	Method:     "method",
	PriceCents: "pricecents",
	Notes:      "notes",
	CreatedAt:  "createdat",
}

func (t CatStageTable) Columns() []string {
	return []string{
		t.ID, t.EngineID, t.Name, t.StockHp, t.TunedHp, t.StockNm, t.TunedNm,
		t.TuningType, t.Method, t.PriceCents, t.Notes, t.CreatedAt,
	}
}
