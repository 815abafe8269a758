// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lukavetter/torqline/internal/platform/database/schema"
	"github.com/lukavetter/torqline/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListBrands(context context.Context) ([]*Brand, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.CatBrand.ID,
		schema.CatBrand.Name,
		schema.CatBrand.LogoURL,
		schema.CatBrand.Table,
		schema.CatBrand.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_brands")
	}
	defer rows.Close()

	// Empty catalogs serialize as [], not null.
	brands := make([]*Brand, 0)
	for rows.Next() {
		b := &Brand{}
		if err := rows.Scan(&b.ID, &b.Name, &b.LogoURL); err != nil {
			return nil, dberr.Wrap(err, "scan_brand")
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_brands")
	}

	return brands, nil
}

func (repository *PostgresRepository) ListModels(context context.Context, brandID string) ([]*Model, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC;
	`,
		schema.CatModel.ID,
		schema.CatModel.Name,
		schema.CatModel.Table,
		schema.CatModel.BrandID,
		schema.CatModel.Name,
	)

	rows, err := repository.db.Query(context, query, brandID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_models")
	}
	defer rows.Close()

	models := make([]*Model, 0)
	for rows.Next() {
		m := &Model{}
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_model")
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_models")
	}

	return models, nil
}

func (repository *PostgresRepository) ListBuilds(context context.Context, modelID string) ([]*Build, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC;
	`,
		schema.CatBuild.ID,
		schema.CatBuild.Name,
		schema.CatBuild.YearFrom,
		schema.CatBuild.YearTo,
		schema.CatBuild.Table,
		schema.CatBuild.ModelID,
		schema.CatBuild.Name,
	)

	rows, err := repository.db.Query(context, query, modelID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_builds")
	}
	defer rows.Close()

	builds := make([]*Build, 0)
	for rows.Next() {
		b := &Build{}
		if err := rows.Scan(&b.ID, &b.Name, &b.YearFrom, &b.YearTo); err != nil {
			return nil, dberr.Wrap(err, "scan_build")
		}
		builds = append(builds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_builds")
	}

	return builds, nil
}

func (repository *PostgresRepository) ListEngines(context context.Context, buildID string) ([]*Engine, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC;
	`,
		schema.CatEngine.ID,
		schema.CatEngine.Name,
		schema.CatEngine.EngineCode,
		schema.CatEngine.Table,
		schema.CatEngine.BuildID,
		schema.CatEngine.Name,
	)

	rows, err := repository.db.Query(context, query, buildID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_engines")
	}
	defer rows.Close()

	engines := make([]*Engine, 0)
	for rows.Next() {
		e := &Engine{}
		if err := rows.Scan(&e.ID, &e.Name, &e.EngineCode); err != nil {
			return nil, dberr.Wrap(err, "scan_engine")
		}
		engines = append(engines, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_engines")
	}

	return engines, nil
}
