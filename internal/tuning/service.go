// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package tuning

import (
	"context"
	"log/slog"

	"github.com/lukavetter/torqline/internal/platform/apperr"
	"github.com/lukavetter/torqline/internal/platform/validate"
)

// Cache is an optional read-through cache for assembled configurations.
//
// Implementations must treat their backend as best-effort: a miss and a
// backend failure look the same to the service (ok == false), and Set
// failures are swallowed. The assembler stays correct with no cache at all.
type Cache interface {
	Get(context context.Context, engineID string) (*Configuration, bool)
	Set(context context.Context, engineID string, configuration *Configuration)
}

type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService constructs the assembler. cache may be nil.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// AssembleConfiguration loads the engine identified by engineID together
// with its stages, read methods, and options, and derives the per-stage
// gains.
//
// A malformed engineID is rejected before any storage or cache access.
// The result is purely derived from one consistent read: the same engine id
// against unchanged storage yields byte-identical output.
func (service *Service) AssembleConfiguration(context context.Context, engineID string) (*Configuration, error) {
	if !validate.IsUUID(engineID) {
		return nil, apperr.InvalidArgument("Invalid engineId")
	}

	if service.cache != nil {
		if configuration, ok := service.cache.Get(context, engineID); ok {
			return configuration, nil
		}
	}

	record, err := service.repo.GetEngineRecord(context, engineID)
	if err != nil {
		return nil, err
	}

	configuration := assemble(record)

	if service.cache != nil {
		service.cache.Set(context, engineID, configuration)
	}

	service.logger.Debug("configuration_assembled",
		slog.String("engine_id", engineID),
		slog.Int("stages", len(configuration.Stages)),
	)

	return configuration, nil
}

// assemble denormalizes one engine record into the response shape.
// Stages keep storage order; no re-sort is applied here.
func assemble(record *EngineRecord) *Configuration {
	stages := make([]StageView, 0, len(record.Stages))
	for _, stage := range record.Stages {
		stock := Measurement{Hp: stage.StockHp, Nm: stage.StockNm}
		tuned := Measurement{Hp: stage.TunedHp, Nm: stage.TunedNm}

		stages = append(stages, StageView{
			ID:         stage.ID,
			Name:       stage.Name,
			Stock:      stock,
			Tuned:      tuned,
			Gain:       ComputeGain(stock, tuned),
			PriceCents: stage.PriceCents,
			Notes:      stage.Notes,
			Method:     stage.Method,
			TuningType: stage.TuningType,
		})
	}

	readMethods := make([]string, 0, len(record.ReadMethods))
	for _, method := range record.ReadMethods {
		readMethods = append(readMethods, method.Name)
	}

	options := make([]OptionView, 0, len(record.Options))
	for _, option := range record.Options {
		options = append(options, OptionView{
			Name:     option.Name,
			Category: option.Category,
			Enabled:  option.IsEnabled,
		})
	}

	engine := record.Engine
	return &Configuration{
		Stages: stages,
		Technical: Technical{
			FuelType:         engine.FuelType,
			DisplacementCc:   engine.DisplacementCc,
			ECU:              engine.ECU,
			CompressionRatio: engine.CompressionRatio,
			BoreMm:           engine.BoreMm,
			StrokeMm:         engine.StrokeMm,
			TurboType:        engine.TurboType,
			EngineNumber:     engine.EngineNumber,
			EngineCode:       engine.EngineCode,
		},
		ReadMethods: readMethods,
		Options:     options,
	}
}
