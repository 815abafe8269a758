// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package schema

// LeadTable represents the 'leads.lead' table
type LeadTable struct {
	Table     string
	ID        string
	EngineID  string
	StageID   string
	Name      string
	Email     string
	Phone     string
	Message   string
	Consent   string
	MetaJSON  string
	CreatedAt string
}

// Lead is the schema definition for leads.lead
//
// engineid and stageid are deliberately NOT foreign keys: lead capture must
// not fail on a referential mismatch with the catalog.
var Lead = LeadTable{
	Table:     "leads.lead",
	ID:        "id",
	EngineID:  "engineid",
	StageID:   "stageid",
	Name:      "name",
	Email:     "email",
	Phone:     "phone",
	Message:   "message",
	Consent:   "consent",
	MetaJSON:  "metajson",
	CreatedAt: "createdat",
}

func (t LeadTable) Columns() []string {
	return []string{
		t.ID, t.EngineID, t.StageID, t.Name, t.Email, t.Phone, t.Message,
		t.Consent, t.MetaJSON, t.CreatedAt,
	}
}
