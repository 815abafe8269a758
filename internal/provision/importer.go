// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

// Package provision bulk-loads the tuning catalog from CSV exports.
//
// # Architecture
//
// This is one-shot tooling, not runtime behavior: it is invoked by
// cmd/importer against the same database the API serves from. Every row is
// upserted by id, so re-running an import is idempotent. The API's runtime
// packages never write catalog data.
package provision

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lukavetter/torqline/internal/platform/database/schema"
)

// Importer loads CSV files from a data directory into the catalog schema.
type Importer struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewImporter creates a CSV importer writing through the given pool.
func NewImporter(db *pgxpool.Pool, logger *slog.Logger) *Importer {
	return &Importer{db: db, logger: logger}
}

// ImportAll loads every catalog CSV from dir, parents before children so
// foreign keys resolve. Expected files: brands.csv, models.csv, builds.csv,
// engines.csv, stages.csv, read_methods.csv, options.csv.
func (importer *Importer) ImportAll(ctx context.Context, dir string) error {
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
		records, err := readCSV(filepath.Join(dir, step.file))
		if err != nil {
			return fmt.Errorf("provision: read %s: %w", step.file, err)
		}

		count, err := step.load(ctx, records)
		if err != nil {
			return fmt.Errorf("provision: import %s: %w", step.file, err)
		}

		importer.logger.Info("csv_imported",
			slog.String("file", step.file),
			slog.Int("rows", count),
		)
	}

	return nil
}

func (importer *Importer) importBrands(context context.Context, records []record) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		schema.CatBrand.Table,
		schema.CatBrand.ID, schema.CatBrand.Name, schema.CatBrand.LogoURL,
		schema.CatBrand.ID,
		schema.CatBrand.Name, schema.CatBrand.Name,
		schema.CatBrand.LogoURL, schema.CatBrand.LogoURL,
	)

	for _, row := range records {
		if _, err := importer.db.Exec(context, query,
			row.get("id"), row.get("name"), row.optional("logo_url"),
		); err != nil {
			return 0, err
		}
	}
	return len(records), nil
}

func (importer *Importer) importModels(context context.Context, records []record) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		schema.CatModel.Table,
		schema.CatModel.ID, schema.CatModel.BrandID, schema.CatModel.Name,
		schema.CatModel.ID,
		schema.CatModel.BrandID, schema.CatModel.BrandID,
		schema.CatModel.Name, schema.CatModel.Name,
	)

	for _, row := range records {
		if _, err := importer.db.Exec(context, query,
			row.get("id"), row.get("brand_id"), row.get("name"),
		); err != nil {
			return 0, err
		}
	}
	return len(records), nil
}

func (importer *Importer) importBuilds(context context.Context, records []record) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		schema.CatBuild.Table,
		schema.CatBuild.ID, schema.CatBuild.ModelID, schema.CatBuild.Name,
		schema.CatBuild.YearFrom, schema.CatBuild.YearTo,
		schema.CatBuild.ID,
		schema.CatBuild.ModelID, schema.CatBuild.ModelID,
		schema.CatBuild.Name, schema.CatBuild.Name,
		schema.CatBuild.YearFrom, schema.CatBuild.YearFrom,
		schema.CatBuild.YearTo, schema.CatBuild.YearTo,
	)

	for _, row := range records {
		if _, err := importer.db.Exec(context, query,
			row.get("id"), row.get("model_id"), row.get("name"),
			row.optionalInt("year_from"), row.optionalInt("year_to"),
		); err != nil {
			return 0, err
		}
	}
	return len(records), nil
}

func (importer *Importer) importEngines(context context.Context, records []record) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		schema.CatEngine.Table,
		schema.CatEngine.ID, schema.CatEngine.BuildID, schema.CatEngine.Name,
		schema.CatEngine.EngineCode, schema.CatEngine.FuelType, schema.CatEngine.DisplacementCc,
		schema.CatEngine.ECU, schema.CatEngine.CompressionRatio, schema.CatEngine.BoreMm,
		schema.CatEngine.StrokeMm, schema.CatEngine.TurboType, schema.CatEngine.EngineNumber,
		schema.CatEngine.ID,
		schema.CatEngine.BuildID, schema.CatEngine.BuildID,
		schema.CatEngine.Name, schema.CatEngine.Name,
		schema.CatEngine.EngineCode, schema.CatEngine.EngineCode,
		schema.CatEngine.FuelType, schema.CatEngine.FuelType,
		schema.CatEngine.DisplacementCc, schema.CatEngine.DisplacementCc,
		schema.CatEngine.ECU, schema.CatEngine.ECU,
		schema.CatEngine.CompressionRatio, schema.CatEngine.CompressionRatio,
		schema.CatEngine.BoreMm, schema.CatEngine.BoreMm,
		schema.CatEngine.StrokeMm, schema.CatEngine.StrokeMm,
		schema.CatEngine.TurboType, schema.CatEngine.TurboType,
		schema.CatEngine.EngineNumber, schema.CatEngine.EngineNumber,
	)

	for _, row := range records {
		if _, err := importer.db.Exec(context, query,
			row.get("id"), row.get("build_id"), row.get("name"), row.get("engine_code"),
			row.optional("fuel_type"), row.optionalInt("displacement_cc"),
			row.optional("ecu"), row.optional("compression_ratio"),
			row.optionalFloat("bore_mm"), row.optionalFloat("stroke_mm"),
			row.optional("turbo_type"), row.optional("engine_number"),
		); err != nil {
			return 0, err
		}
	}
	return len(records), nil
}

func (importer *Importer) importStages(context context.Context, records []record) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		schema.CatStage.Table,
		schema.CatStage.ID, schema.CatStage.EngineID, schema.CatStage.Name,
		schema.CatStage.StockHp, schema.CatStage.TunedHp, schema.CatStage.StockNm,
		schema.CatStage.TunedNm, schema.CatStage.TuningType, schema.CatStage.Method,
		schema.CatStage.PriceCents, schema.CatStage.Notes,
		schema.CatStage.ID,
		schema.CatStage.EngineID, schema.CatStage.EngineID,
		schema.CatStage.Name, schema.CatStage.Name,
		schema.CatStage.StockHp, schema.CatStage.StockHp,
		schema.CatStage.TunedHp, schema.CatStage.TunedHp,
		schema.CatStage.StockNm, schema.CatStage.StockNm,
		schema.CatStage.TunedNm, schema.CatStage.TunedNm,
		schema.CatStage.TuningType, schema.CatStage.TuningType,
		schema.CatStage.Method, schema.CatStage.Method,
		schema.CatStage.PriceCents, schema.CatStage.PriceCents,
		schema.CatStage.Notes, schema.CatStage.Notes,
	)

	for _, row := range records {
		stockHp, err := row.requiredInt("stock_hp")
		if err != nil {
			return 0, err
		}
		tunedHp, err := row.requiredInt("tuned_hp")
		if err != nil {
			return 0, err
		}
		stockNm, err := row.requiredInt("stock_nm")
		if err != nil {
			return 0, err
		}
		tunedNm, err := row.requiredInt("tuned_nm")
		if err != nil {
			return 0, err
		}

		if _, err := importer.db.Exec(context, query,
			row.get("id"), row.get("engine_id"), row.get("name"),
			stockHp, tunedHp, stockNm, tunedNm,
			row.get("tuning_type"), row.get("method"),
			row.optionalInt("price_cents"), row.optional("notes"),
		); err != nil {
			return 0, err
		}
	}
	return len(records), nil
}

func (importer *Importer) importReadMethods(context context.Context, records []record) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		schema.CatReadMethod.Table,
		schema.CatReadMethod.ID, schema.CatReadMethod.EngineID, schema.CatReadMethod.Name,
		schema.CatReadMethod.ID,
		schema.CatReadMethod.EngineID, schema.CatReadMethod.EngineID,
		schema.CatReadMethod.Name, schema.CatReadMethod.Name,
	)

	for _, row := range records {
		if _, err := importer.db.Exec(context, query,
			row.get("id"), row.get("engine_id"), row.get("name"),
		); err != nil {
			return 0, err
		}
	}
	return len(records), nil
}

func (importer *Importer) importOptions(context context.Context, records []record) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		schema.CatOption.Table,
		schema.CatOption.ID, schema.CatOption.EngineID, schema.CatOption.Name,
		schema.CatOption.Category, schema.CatOption.IsEnabled,
		schema.CatOption.ID,
		schema.CatOption.EngineID, schema.CatOption.EngineID,
		schema.CatOption.Name, schema.CatOption.Name,
		schema.CatOption.Category, schema.CatOption.Category,
		schema.CatOption.IsEnabled, schema.CatOption.IsEnabled,
	)

	for _, row := range records {
		if _, err := importer.db.Exec(context, query,
			row.get("id"), row.get("engine_id"), row.get("name"),
			row.get("category"), row.boolDefault("is_enabled", true),
		); err != nil {
			return 0, err
		}
	}
	return len(records), nil
}

// # CSV plumbing

// record is one CSV row keyed by header name.
type record map[string]string

// get returns the trimmed cell value, empty string when the column is absent.
func (r record) get(column string) string {
	return r[column]
}

// optional returns nil for empty cells so they persist as NULL.
func (r record) optional(column string) *string {
	value := r[column]
	if value == "" {
		return nil
	}
	return &value
}

// optionalInt parses an integer cell, mapping empty or malformed values to NULL.
func (r record) optionalInt(column string) *int {
	value, err := strconv.Atoi(r[column])
	if err != nil {
		return nil
	}
	return &value
}

// optionalFloat parses a decimal cell, mapping empty or malformed values to NULL.
func (r record) optionalFloat(column string) *float64 {
	value, err := strconv.ParseFloat(r[column], 64)
	if err != nil {
		return nil
	}
	return &value
}

// requiredInt parses an integer cell that must be present and well-formed.
func (r record) requiredInt(column string) (int, error) {
	value, err := strconv.Atoi(r[column])
	if err != nil {
		return 0, fmt.Errorf("column %q: invalid integer %q", column, r[column])
	}
	return value, nil
}

// boolDefault parses a boolean cell, falling back to def when empty.
func (r record) boolDefault(column string, def bool) bool {
	raw := r[column]
	if raw == "" {
		return def
	}
	return raw == "true"
}

// readCSV reads a headered CSV file into records. Cells are trimmed; short
// rows are tolerated (missing trailing cells read as empty).
func readCSV(path string) ([]record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return decodeCSV(file)
}

// decodeCSV is split from readCSV so parsing is testable without the filesystem.
func decodeCSV(reader io.Reader) ([]record, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]record, 0, len(rows)-1)

	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		entry := record{}
		for i, column := range header {
			if i < len(row) {
				entry[column] = row[i]
			}
		}
		records = append(records, entry)
	}

	return records, nil
}
