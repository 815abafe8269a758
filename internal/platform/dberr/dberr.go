// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lukavetter/torqline/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Classification:
//
//  1. pgx.ErrNoRows            → NOT_FOUND
//  2. timeouts / connectivity  → STORAGE_UNAVAILABLE (transient, caller may retry)
//  3. anything else            → INTERNAL_ERROR
//
// No retry happens here or anywhere below — each storage call is performed
// at most once.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	if isUnavailable(err) {
		return apperr.StorageUnavailable(err)
	}

	return apperr.Internal(err)
}

// isUnavailable reports whether err is a transient connectivity or timeout
// failure, as opposed to a programming error in a query.
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	if pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr)
}
