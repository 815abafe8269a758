// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package tuning

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lukavetter/torqline/internal/platform/apperr"
	"github.com/lukavetter/torqline/internal/platform/database/schema"
	"github.com/lukavetter/torqline/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetEngineRecord reads the engine and its three child collections inside a
// single repeatable-read transaction, so a concurrent catalog import cannot
// produce a torn snapshot (e.g. a new stage paired with old options).
func (repository *PostgresRepository) GetEngineRecord(context context.Context, engineID string) (*EngineRecord, error) {
	transaction, err := repository.db.BeginTx(context, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, dberr.Wrap(err, "begin_engine_record")
	}
	defer func() { _ = transaction.Rollback(context) }()

	engine, err := repository.getEngine(context, transaction, engineID)
	if err != nil {
		return nil, err
	}

	stages, err := repository.listStages(context, transaction, engineID)
	if err != nil {
		return nil, err
	}

	readMethods, err := repository.listReadMethods(context, transaction, engineID)
	if err != nil {
		return nil, err
	}

	options, err := repository.listOptions(context, transaction, engineID)
	if err != nil {
		return nil, err
	}

	if err := transaction.Commit(context); err != nil {
		return nil, dberr.Wrap(err, "commit_engine_record")
	}

	return &EngineRecord{
		Engine:      engine,
		Stages:      stages,
		ReadMethods: readMethods,
		Options:     options,
	}, nil
}

func (repository *PostgresRepository) getEngine(context context.Context, tx pgx.Tx, engineID string) (*Engine, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.CatEngine.ID,
		schema.CatEngine.BuildID,
		schema.CatEngine.Name,
		schema.CatEngine.EngineCode,
		schema.CatEngine.FuelType,
		schema.CatEngine.DisplacementCc,
		schema.CatEngine.ECU,
		schema.CatEngine.CompressionRatio,
		schema.CatEngine.BoreMm,
		schema.CatEngine.StrokeMm,
		schema.CatEngine.TurboType,
		schema.CatEngine.EngineNumber,
		schema.CatEngine.Table,
		schema.CatEngine.ID,
	)

	e := &Engine{}
	err := tx.QueryRow(context, query, engineID).Scan(
		&e.ID, &e.BuildID, &e.Name, &e.EngineCode, &e.FuelType, &e.DisplacementCc,
		&e.ECU, &e.CompressionRatio, &e.BoreMm, &e.StrokeMm, &e.TurboType, &e.EngineNumber,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Engine")
		}
		return nil, dberr.Wrap(err, "get_engine")
	}

	return e, nil
}

// listStages returns the stages in insertion order. The assembler applies
// no re-sort of its own — storage order is the contract.
func (repository *PostgresRepository) listStages(context context.Context, tx pgx.Tx, engineID string) ([]*Stage, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC;
	`,
		schema.CatStage.ID,
		schema.CatStage.Name,
		schema.CatStage.StockHp,
		schema.CatStage.TunedHp,
		schema.CatStage.StockNm,
		schema.CatStage.TunedNm,
		schema.CatStage.TuningType,
		schema.CatStage.Method,
		schema.CatStage.PriceCents,
		schema.CatStage.Notes,
		schema.CatStage.Table,
		schema.CatStage.EngineID,
		schema.CatStage.CreatedAt,
		schema.CatStage.ID,
	)

	rows, err := tx.Query(context, query, engineID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_stages")
	}
	defer rows.Close()

	stages := make([]*Stage, 0)
	for rows.Next() {
		s := &Stage{}
		if err := rows.Scan(
			&s.ID, &s.Name, &s.StockHp, &s.TunedHp, &s.StockNm, &s.TunedNm,
			&s.TuningType, &s.Method, &s.PriceCents, &s.Notes,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_stage")
		}
		stages = append(stages, s)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_stages")
	}

	return stages, nil
}

func (repository *PostgresRepository) listReadMethods(context context.Context, tx pgx.Tx, engineID string) ([]*ReadMethod, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC;
	`,
		schema.CatReadMethod.ID,
		schema.CatReadMethod.Name,
		schema.CatReadMethod.Table,
		schema.CatReadMethod.EngineID,
		schema.CatReadMethod.CreatedAt,
		schema.CatReadMethod.ID,
	)

	rows, err := tx.Query(context, query, engineID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_read_methods")
	}
	defer rows.Close()

	methods := make([]*ReadMethod, 0)
	for rows.Next() {
		m := &ReadMethod{}
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_read_method")
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_read_methods")
	}

	return methods, nil
}

func (repository *PostgresRepository) listOptions(context context.Context, tx pgx.Tx, engineID string) ([]*Option, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC;
	`,
		schema.CatOption.ID,
		schema.CatOption.Name,
		schema.CatOption.Category,
		schema.CatOption.IsEnabled,
		schema.CatOption.Table,
		schema.CatOption.EngineID,
		schema.CatOption.CreatedAt,
		schema.CatOption.ID,
	)

	rows, err := tx.Query(context, query, engineID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_options")
	}
	defer rows.Close()

	options := make([]*Option, 0)
	for rows.Next() {
		o := &Option{}
		if err := rows.Scan(&o.ID, &o.Name, &o.Category, &o.IsEnabled); err != nil {
			return nil, dberr.Wrap(err, "scan_option")
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_options")
	}

	return options, nil
}
