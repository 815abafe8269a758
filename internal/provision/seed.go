// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package provision

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Fixed demo ids so re-seeding updates in place instead of duplicating.
const (
	seedBrandID      = "0c7e9a52-6fd1-4a5b-9f40-1f2b7c8d9e01"
	seedModelID      = "1d8f0b63-70e2-4b6c-8a51-2a3c8d9e0f12"
	seedBuildID      = "2e9a1c74-81f3-4c7d-9b62-3b4d9e0f1a23"
	seedEngineID     = "3f0b2d85-9204-4d8e-8c73-4c5e0f1a2b34"
	seedStageID      = "4a1c3e96-a315-4e9f-9d84-5d6f1a2b3c45"
	seedReadMethodID = "5b2d4fa7-b426-4fa0-8e95-6e7a2b3c4d56"
	seedOptionID     = "6c3e50b8-c537-40b1-9fa6-7f8b3c4d5e67"
)

// Seed inserts a single complete demo tree (brand through stage, read method
// and option) so the API is explorable on a fresh database.
func Seed(ctx context.Context, db *pgxpool.Pool, logger *slog.Logger) error {
	records := map[string][]record{
		"brands.csv": {{
			"id": seedBrandID, "name": "Audi",
			"logo_url": "https://cdn.torqline.dev/brands/audi.svg",
		}},
		"models.csv": {{
			"id": seedModelID, "brand_id": seedBrandID, "name": "A4",
		}},
		"builds.csv": {{
			"id": seedBuildID, "model_id": seedModelID, "name": "B9",
			"year_from": "2015", "year_to": "2020",
		}},
		"engines.csv": {{
			"id": seedEngineID, "build_id": seedBuildID,
			"name": "2.0 TFSI", "engine_code": "EA888",
			"fuel_type": "petrol", "displacement_cc": "1984",
			"ecu": "Bosch MED17.1", "turbo_type": "IHI IS20",
		}},
		"stages.csv": {{
			"id": seedStageID, "engine_id": seedEngineID, "name": "Stage 1",
			"stock_hp": "190", "tuned_hp": "245",
			"stock_nm": "320", "tuned_nm": "390",
			"tuning_type": "performance", "method": "OBD",
			"price_cents": "49900", "notes": "Optimized for 98 RON fuel",
		}},
		"read_methods.csv": {{
			"id": seedReadMethodID, "engine_id": seedEngineID, "name": "OBD",
		}},
		"options.csv": {{
			"id": seedOptionID, "engine_id": seedEngineID,
			"name": "Pops & Bangs", "category": "sound", "is_enabled": "true",
		}},
	}

	importer := NewImporter(db, logger)

	steps := []struct {
		file string
		load func(context.Context, []record) (int, error)
	}{
		{"brands.csv", importer.importBrands},
		{"models.csv", importer.importModels},
		{"builds.csv", importer.importBuilds},
		{"engines.csv", importer.importEngines},
		{"stages.csv", importer.importStages},
		{"read_methods.csv", importer.importReadMethods},
		{"options.csv", importer.importOptions},
	}

	for _, step := range steps {
		if _, err := step.load(ctx, records[step.file]); err != nil {
			return fmt.Errorf("provision: seed %s: %w", step.file, err)
		}
	}

	logger.Info("demo_data_seeded", slog.String("engine_id", seedEngineID))
	return nil
}
