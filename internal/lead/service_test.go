// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package lead_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukavetter/torqline/internal/lead"
	"github.com/lukavetter/torqline/internal/platform/apperr"
	"github.com/lukavetter/torqline/internal/platform/validate"
)

const (
	testEngineID = "3f0b2d85-9204-4d8e-8c73-4c5e0f1a2b34"
	testStageID  = "4a1c3e96-a315-4e9f-9d84-5d6f1a2b3c45"
)

// fakeRepository captures the persisted lead.
type fakeRepository struct {
	created *lead.Lead
	err     error
}

func (repo *fakeRepository) CreateLead(_ context.Context, record *lead.Lead) error {
	if repo.err != nil {
		return repo.err
	}
	repo.created = record
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func validInput() lead.Input {
	return lead.Input{
		EngineID: testEngineID,
		StageID:  testStageID,
		Name:     "Luka Vetter",
		Email:    "luka@example.com",
		Consent:  true,
	}
}

/*
TestAcceptLead_Success verifies the happy path: a valid submission persists
and returns a freshly generated, well-formed lead id.
*/
func TestAcceptLead_Success(t *testing.T) {
	repo := &fakeRepository{}
	service := lead.NewService(repo, testLogger())

	input := validInput()
	input.Phone = "+49 151 12345678"
	input.Message = "Interested in Stage 1"
	input.Meta = map[string]any{"source": "widget"}

	leadID, err := service.AcceptLead(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, validate.IsUUID(leadID))
	require.NotNil(t, repo.created)
	assert.Equal(t, leadID, repo.created.ID)
	assert.Equal(t, testEngineID, repo.created.EngineID)
	assert.Equal(t, testStageID, repo.created.StageID)
	assert.Equal(t, "Luka Vetter", repo.created.Name)
	assert.True(t, repo.created.Consent)
	require.NotNil(t, repo.created.Phone)
	assert.Equal(t, "+49 151 12345678", *repo.created.Phone)
	assert.Equal(t, map[string]any{"source": "widget"}, repo.created.Meta)
}

/*
TestAcceptLead_OptionalDefaults verifies that absent optional fields persist
as NULL-able pointers and an empty meta object.
*/
func TestAcceptLead_OptionalDefaults(t *testing.T) {
	repo := &fakeRepository{}
	service := lead.NewService(repo, testLogger())

	_, err := service.AcceptLead(context.Background(), validInput())
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.Nil(t, repo.created.Phone)
	assert.Nil(t, repo.created.Message)
	assert.Equal(t, map[string]any{}, repo.created.Meta)
}

/*
TestAcceptLead_MalformedIDs verifies that identifier-shape failures are
INVALID_ARGUMENT and short-circuit before field validation or persistence —
even when only one of the two ids is malformed.
*/
func TestAcceptLead_MalformedIDs(t *testing.T) {
	tests := []struct {
		name     string
		engineID string
		stageID  string
	}{
		{"both_malformed", "nope", "nope"},
		{"engine_malformed", "nope", testStageID},
		{"stage_malformed", testEngineID, "nope"},
		{"stage_bad_version", testEngineID, "4a1c3e96-a315-7e9f-9d84-5d6f1a2b3c45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := lead.NewService(repo, testLogger())

			input := validInput()
			input.EngineID = tt.engineID
			input.StageID = tt.stageID
			// Field validation must not even run: leave name empty too and
			// assert the id failure wins.
			input.Name = ""

			_, err := service.AcceptLead(context.Background(), input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "INVALID_ARGUMENT", ae.Code)
			assert.Equal(t, "Invalid engineId or stageId", ae.Message)
			assert.Nil(t, repo.created)
		})
	}
}

/*
TestAcceptLead_FieldValidation verifies per-field VALIDATION_ERROR details
for well-formed ids with incomplete records.
*/
func TestAcceptLead_FieldValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*lead.Input)
		field  string
	}{
		{"missing_name", func(in *lead.Input) { in.Name = "" }, "name"},
		{"missing_email", func(in *lead.Input) { in.Email = "" }, "email"},
		{"bad_email", func(in *lead.Input) { in.Email = "not-an-email" }, "email"},
		{"no_consent", func(in *lead.Input) { in.Consent = false }, "consent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := lead.NewService(repo, testLogger())

			input := validInput()
			tt.mutate(&input)

			_, err := service.AcceptLead(context.Background(), input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.field, ae.Details[0].Field)
			assert.Nil(t, repo.created)
		})
	}
}

/*
TestAcceptLead_StorageErrorPropagates verifies that persistence failures pass
through to the caller.
*/
func TestAcceptLead_StorageErrorPropagates(t *testing.T) {
	repo := &fakeRepository{err: apperr.StorageUnavailable(context.DeadlineExceeded)}
	service := lead.NewService(repo, testLogger())

	_, err := service.AcceptLead(context.Background(), validInput())
	require.Error(t, err)
	assert.Equal(t, "STORAGE_UNAVAILABLE", apperr.As(err).Code)
}
