// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

// Package tuning assembles the full tuning configuration of one engine:
// its technical specification, the available tuning stages with computed
// power/torque gains, the ECU read methods, and the add-on options.
//
// The assembly is a pure derivation from a single consistent storage read —
// calling it twice against unchanged data produces byte-identical output,
// which is what makes the short-TTL response cache safe.
package tuning

// # Storage records
//
// Raw rows as read from the catalog; no derived fields.

// Engine carries the technical attributes of one power unit. All technical
// attributes are optional in the source data.
type Engine struct {
	ID               string
	BuildID          string
	Name             string
	EngineCode       string
	FuelType         *string
	DisplacementCc   *int
	ECU              *string
	CompressionRatio *string
	BoreMm           *float64
	StrokeMm         *float64
	TurboType        *string
	EngineNumber     *string
}

// Stage is a named tuning profile with stock and tuned dyno figures.
// Tuned values are typically above stock but are not required to be:
// a detuned or reset stage yields negative gains, which are computed as-is.
type Stage struct {
	ID         string
	Name       string
	StockHp    int
	TunedHp    int
	StockNm    int
	TunedNm    int
	TuningType string
	Method     string
	PriceCents *int
	Notes      *string
}

// ReadMethod is a technique for reading/writing the engine's ECU (OBD,
// bench, boot mode, ...).
type ReadMethod struct {
	ID   string
	Name string
}

// Option is an add-on modification toggle (pops & bangs, EGR off, ...).
type Option struct {
	ID        string
	Name      string
	Category  string
	IsEnabled bool
}

// EngineRecord is the result of the single consistent read: the engine and
// all three child collections from the same snapshot.
type EngineRecord struct {
	Engine      *Engine
	Stages      []*Stage
	ReadMethods []*ReadMethod
	Options     []*Option
}

// # Response shapes
//
// Field names are the wire contract consumed by the embedding widget.

// Measurement is a power/torque pair (horsepower, newton-metres).
type Measurement struct {
	Hp int `json:"hp"`
	Nm int `json:"nm"`
}

// Gain is the derived delta between stock and tuned measurements.
type Gain struct {
	Hp    int     `json:"hp"`
	Nm    int     `json:"nm"`
	HpPct float64 `json:"hpPct"`
	NmPct float64 `json:"nmPct"`
}

// StageView is one tuning stage with its computed gains.
type StageView struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Stock      Measurement `json:"stock"`
	Tuned      Measurement `json:"tuned"`
	Gain       Gain        `json:"gain"`
	PriceCents *int        `json:"priceCents"`
	Notes      *string     `json:"notes"`
	Method     string      `json:"method"`
	TuningType string      `json:"tuningType"`
}

// Technical is the engine's specification block.
type Technical struct {
	FuelType         *string  `json:"fuelType"`
	DisplacementCc   *int     `json:"displacementCc"`
	ECU              *string  `json:"ecu"`
	CompressionRatio *string  `json:"compressionRatio"`
	BoreMm           *float64 `json:"boreMm"`
	StrokeMm         *float64 `json:"strokeMm"`
	TurboType        *string  `json:"turboType"`
	EngineNumber     *string  `json:"engineNumber"`
	EngineCode       string   `json:"engineCode"`
}

// OptionView is the projection of an add-on option.
type OptionView struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Enabled  bool   `json:"enabled"`
}

// Configuration is the fully assembled, denormalized response for one engine.
type Configuration struct {
	Stages      []StageView  `json:"stages"`
	Technical   Technical    `json:"technical"`
	ReadMethods []string     `json:"readMethods"`
	Options     []OptionView `json:"options"`
}
