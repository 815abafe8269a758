// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

// Package lead captures customer enquiries for a chosen engine and tuning
// stage. Leads are insert-only from the API's perspective: they are created
// once and handed off to the back office, never read back or mutated here.
package lead

import "time"

// Lead is a persisted customer enquiry.
//
// EngineID and StageID are stored as given (after shape validation) without
// checking that they reference existing catalog rows or that the stage
// belongs to the engine. A catalog refresh between page load and form submit
// must not cost the business a lead.
type Lead struct {
	ID       string         `json:"id"`
	EngineID string         `json:"engineId"`
	StageID  string         `json:"stageId"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    *string        `json:"phone"`
	Message  *string        `json:"message"`
	Consent  bool           `json:"consent"`
	Meta     map[string]any `json:"meta"`

	CreatedAt time.Time `json:"-"`
}

// Input is the submission payload from the configurator's contact form.
type Input struct {
	EngineID string         `json:"engineId"`
	StageID  string         `json:"stageId"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Message  string         `json:"message"`
	Consent  bool           `json:"consent"`
	Meta     map[string]any `json:"meta"`
}

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldConsent = "consent"
)
