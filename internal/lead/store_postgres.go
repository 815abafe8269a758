// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package lead

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

func (repository *PostgresRepository) CreateLead(context context.Context, l *Lead) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING %s
	`,
		schema.Lead.Table,
		schema.Lead.ID, schema.Lead.EngineID, schema.Lead.StageID, schema.Lead.Name,
		schema.Lead.Email, schema.Lead.Phone, schema.Lead.Message, schema.Lead.Consent,
		schema.Lead.MetaJSON, schema.Lead.CreatedAt,
		schema.Lead.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		l.ID, l.EngineID, l.StageID, l.Name, l.Email, l.Phone, l.Message, l.Consent, l.Meta,
	).Scan(&l.CreatedAt)
	return dberr.Wrap(err, "create_lead")
}
