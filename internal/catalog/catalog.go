// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

// Package catalog implements the hierarchical vehicle browser:
// brand → model → build → engine. Each level is a pure filtered listing of
// the children of one parent entity; all derived computation lives in the
// tuning package.
package catalog

// Brand is the root of the vehicle hierarchy.
type Brand struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	LogoURL *string `json:"logoUrl"`
}

// Model belongs to exactly one Brand.
type Model struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Build is a model generation, optionally bounded by a production year range.
type Build struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	YearFrom *int   `json:"yearFrom"`
	YearTo   *int   `json:"yearTo"`
}

// Engine is a specific power unit fitted to a Build. The listing projection
// carries only the manufacturer's engine code; the full technical record is
// served by the tuning package.
type Engine struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EngineCode string `json:"engineCode"`
}
