// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package lead

import (
	"context"
	"log/slog"

	"github.com/lukavetter/torqline/internal/platform/apperr"
	"github.com/lukavetter/torqline/internal/platform/validate"
	"github.com/lukavetter/torqline/pkg/pointer"
	"github.com/lukavetter/torqline/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// AcceptLead validates and persists one enquiry, returning the generated
// lead id.
//
// Validation order is part of the contract: identifier shape first
// (INVALID_ARGUMENT — both ids must be well-formed even though neither is
// checked for existence), then the required business fields
// (VALIDATION_ERROR with per-field details).
//
// The operation is not idempotent — a retried submission creates a second
// lead. De-duplication, if wanted, is the caller's concern.
func (service *Service) AcceptLead(context context.Context, input Input) (string, error) {
	if !validate.IsUUID(input.EngineID) || !validate.IsUUID(input.StageID) {
		return "", apperr.InvalidArgument("Invalid engineId or stageId")
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 200).
		Required(FieldEmail, input.Email)

	if input.Email != "" {
		validator.Email(FieldEmail, input.Email)
	}

	validator.True(FieldConsent, input.Consent, "Consent is required to submit an enquiry")

	if err := validator.Err(); err != nil {
		return "", err
	}

	record := &Lead{
		ID:       uuid.New(),
		EngineID: input.EngineID,
		StageID:  input.StageID,
		Name:     input.Name,
		Email:    input.Email,
		Consent:  true,
		Meta:     input.Meta,
	}

	if input.Phone != "" {
		record.Phone = pointer.To(input.Phone)
	}
	if input.Message != "" {
		record.Message = pointer.To(input.Message)
	}
	if record.Meta == nil {
		record.Meta = map[string]any{}
	}

	if err := service.repo.CreateLead(context, record); err != nil {
		return "", err
	}

	service.logger.Info("lead_accepted",
		slog.String("lead_id", record.ID),
		slog.String("engine_id", record.EngineID),
		slog.String("stage_id", record.StageID),
	)

	return record.ID, nil
}
