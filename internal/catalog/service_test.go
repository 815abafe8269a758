// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package catalog_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukavetter/torqline/internal/catalog"
	"github.com/lukavetter/torqline/internal/platform/apperr"
)

const testParentID = "0c7e9a52-6fd1-4a5b-9f40-1f2b7c8d9e01"

// fakeRepository serves canned listings and records the last parent id seen.
type fakeRepository struct {
	brands  []*catalog.Brand
	models  []*catalog.Model
	builds  []*catalog.Build
	engines []*catalog.Engine
	err     error

	lastParentID string
	calls        int
}

func (repo *fakeRepository) ListBrands(_ context.Context) ([]*catalog.Brand, error) {
	repo.calls++
	return repo.brands, repo.err
}

func (repo *fakeRepository) ListModels(_ context.Context, brandID string) ([]*catalog.Model, error) {
	repo.calls++
	repo.lastParentID = brandID
	return repo.models, repo.err
}

func (repo *fakeRepository) ListBuilds(_ context.Context, modelID string) ([]*catalog.Build, error) {
	repo.calls++
	repo.lastParentID = modelID
	return repo.builds, repo.err
}

func (repo *fakeRepository) ListEngines(_ context.Context, buildID string) ([]*catalog.Engine, error) {
	repo.calls++
	repo.lastParentID = buildID
	return repo.engines, repo.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

/*
TestListModels_InvalidBrandID verifies the id-shape guard: a malformed parent
id is rejected with INVALID_ARGUMENT before any storage call.
*/
func TestListModels_InvalidBrandID(t *testing.T) {
	repo := &fakeRepository{}
	service := catalog.NewService(repo, testLogger())

	for _, bad := range []string{"", "abc", "0c7e9a52-6fd1-7a5b-9f40-1f2b7c8d9e01"} {
		_, err := service.ListModels(context.Background(), bad)
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "INVALID_ARGUMENT", ae.Code)
		assert.Equal(t, "Invalid brandId", ae.Message)
	}

	assert.Zero(t, repo.calls)
}

/*
TestGuardMessages_PerLevel pins the per-level error messages for builds and
engines.
*/
func TestGuardMessages_PerLevel(t *testing.T) {
	service := catalog.NewService(&fakeRepository{}, testLogger())

	_, err := service.ListBuilds(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, "Invalid modelId", apperr.As(err).Message)

	_, err = service.ListEngines(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, "Invalid buildId", apperr.As(err).Message)
}

/*
TestListModels_UnknownParentIsEmptyList verifies that a well-formed but
unknown parent id yields an empty list, not an error. The hierarchy does not
distinguish a missing parent from a childless one.
*/
func TestListModels_UnknownParentIsEmptyList(t *testing.T) {
	repo := &fakeRepository{models: make([]*catalog.Model, 0)}
	service := catalog.NewService(repo, testLogger())

	models, err := service.ListModels(context.Background(), testParentID)
	require.NoError(t, err)
	assert.Empty(t, models)
	assert.Equal(t, testParentID, repo.lastParentID)

	// Empty listings must serialize as [], never null.
	payload, err := json.Marshal(models)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(payload))
}

/*
TestListBrands_PassThrough verifies that the brand listing is returned as the
repository produced it.
*/
func TestListBrands_PassThrough(t *testing.T) {
	brands := []*catalog.Brand{
		{ID: testParentID, Name: "Audi"},
		{ID: "1d8f0b63-70e2-4b6c-8a51-2a3c8d9e0f12", Name: "BMW"},
	}
	service := catalog.NewService(&fakeRepository{brands: brands}, testLogger())

	got, err := service.ListBrands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, brands, got)
}

/*
TestListEngines_StorageErrorPropagates verifies that storage failures pass
through to the caller untouched.
*/
func TestListEngines_StorageErrorPropagates(t *testing.T) {
	storageErr := apperr.StorageUnavailable(context.DeadlineExceeded)
	service := catalog.NewService(&fakeRepository{err: storageErr}, testLogger())

	_, err := service.ListEngines(context.Background(), testParentID)
	require.Error(t, err)
	assert.Equal(t, "STORAGE_UNAVAILABLE", apperr.As(err).Code)
}
