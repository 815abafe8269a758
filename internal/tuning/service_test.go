// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package tuning_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukavetter/torqline/internal/platform/apperr"
	"github.com/lukavetter/torqline/internal/tuning"
	"github.com/lukavetter/torqline/pkg/pointer"
)

const testEngineID = "3f0b2d85-9204-4d8e-8c73-4c5e0f1a2b34"

// fakeRepository records calls and serves a canned engine record.
type fakeRepository struct {
	record *tuning.EngineRecord
	err    error
	calls  int
}

func (repo *fakeRepository) GetEngineRecord(_ context.Context, _ string) (*tuning.EngineRecord, error) {
	repo.calls++
	if repo.err != nil {
		return nil, repo.err
	}
	return repo.record, nil
}

// fakeCache is an in-memory Cache with call counters.
type fakeCache struct {
	entries map[string]*tuning.Configuration
	gets    int
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*tuning.Configuration{}}
}

func (cache *fakeCache) Get(_ context.Context, engineID string) (*tuning.Configuration, bool) {
	cache.gets++
	configuration, ok := cache.entries[engineID]
	return configuration, ok
}

func (cache *fakeCache) Set(_ context.Context, engineID string, configuration *tuning.Configuration) {
	cache.sets++
	cache.entries[engineID] = configuration
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func demoRecord() *tuning.EngineRecord {
	return &tuning.EngineRecord{
		Engine: &tuning.Engine{
			ID:             testEngineID,
			Name:           "2.0 TFSI",
			EngineCode:     "EA888",
			FuelType:       pointer.To("petrol"),
			DisplacementCc: pointer.To(1984),
			ECU:            pointer.To("Bosch MED17.1"),
		},
		Stages: []*tuning.Stage{
			{
				ID: "4a1c3e96-a315-4e9f-9d84-5d6f1a2b3c45", Name: "Stage 1",
				StockHp: 190, TunedHp: 245, StockNm: 320, TunedNm: 390,
				TuningType: "performance", Method: "OBD",
				PriceCents: pointer.To(49900),
				Notes:      pointer.To("Optimized for 98 RON fuel"),
			},
			{
				ID: "4a1c3e96-a315-4e9f-9d84-5d6f1a2b3c46", Name: "Stage 2",
				StockHp: 190, TunedHp: 280, StockNm: 320, TunedNm: 430,
				TuningType: "performance", Method: "bench",
			},
		},
		ReadMethods: []*tuning.ReadMethod{
			{ID: "5b2d4fa7-b426-4fa0-8e95-6e7a2b3c4d56", Name: "OBD"},
			{ID: "5b2d4fa7-b426-4fa0-8e95-6e7a2b3c4d57", Name: "bench"},
		},
		Options: []*tuning.Option{
			{ID: "6c3e50b8-c537-40b1-9fa6-7f8b3c4d5e67", Name: "Pops & Bangs", Category: "sound", IsEnabled: true},
			{ID: "6c3e50b8-c537-40b1-9fa6-7f8b3c4d5e68", Name: "EGR Off", Category: "emissions", IsEnabled: false},
		},
	}
}

/*
TestAssembleConfiguration_InvalidID verifies that a malformed engine id is
rejected without touching cache or storage.
*/
func TestAssembleConfiguration_InvalidID(t *testing.T) {
	repo := &fakeRepository{record: demoRecord()}
	cache := newFakeCache()
	service := tuning.NewService(repo, cache, testLogger())

	for _, bad := range []string{"", "not-a-uuid", "3f0b2d85-9204-7d8e-8c73-4c5e0f1a2b34"} {
		_, err := service.AssembleConfiguration(context.Background(), bad)
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "INVALID_ARGUMENT", ae.Code)
		assert.Equal(t, "Invalid engineId", ae.Message)
	}

	assert.Zero(t, repo.calls)
	assert.Zero(t, cache.gets)
}

/*
TestAssembleConfiguration_Shape checks the denormalized response: stages in
storage order with computed gains, read method names, option projections,
and the technical block.
*/
func TestAssembleConfiguration_Shape(t *testing.T) {
	repo := &fakeRepository{record: demoRecord()}
	service := tuning.NewService(repo, nil, testLogger())

	configuration, err := service.AssembleConfiguration(context.Background(), testEngineID)
	require.NoError(t, err)

	require.Len(t, configuration.Stages, 2)
	stage1 := configuration.Stages[0]
	assert.Equal(t, "Stage 1", stage1.Name)
	assert.Equal(t, tuning.Gain{Hp: 55, Nm: 70, HpPct: 28.95, NmPct: 21.88}, stage1.Gain)
	assert.Equal(t, 49900, *stage1.PriceCents)

	stage2 := configuration.Stages[1]
	assert.Equal(t, "Stage 2", stage2.Name)
	assert.Nil(t, stage2.PriceCents)
	assert.Nil(t, stage2.Notes)

	assert.Equal(t, []string{"OBD", "bench"}, configuration.ReadMethods)

	require.Len(t, configuration.Options, 2)
	assert.Equal(t, tuning.OptionView{Name: "Pops & Bangs", Category: "sound", Enabled: true}, configuration.Options[0])
	assert.False(t, configuration.Options[1].Enabled)

	assert.Equal(t, "EA888", configuration.Technical.EngineCode)
	assert.Equal(t, "petrol", *configuration.Technical.FuelType)
	assert.Equal(t, 1984, *configuration.Technical.DisplacementCc)
	assert.Nil(t, configuration.Technical.TurboType)
}

/*
TestAssembleConfiguration_Deterministic verifies that repeated assemblies of
unchanged data serialize byte-identically. This property is what makes the
response cache transparent.
*/
func TestAssembleConfiguration_Deterministic(t *testing.T) {
	repo := &fakeRepository{record: demoRecord()}
	service := tuning.NewService(repo, nil, testLogger())

	first, err := service.AssembleConfiguration(context.Background(), testEngineID)
	require.NoError(t, err)
	second, err := service.AssembleConfiguration(context.Background(), testEngineID)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, string(firstJSON), string(secondJSON))
}

/*
TestAssembleConfiguration_EmptyCollections verifies that an engine without
stages, read methods, or options serializes those fields as empty arrays,
never null.
*/
func TestAssembleConfiguration_EmptyCollections(t *testing.T) {
	record := demoRecord()
	record.Stages = nil
	record.ReadMethods = nil
	record.Options = nil

	service := tuning.NewService(&fakeRepository{record: record}, nil, testLogger())

	configuration, err := service.AssembleConfiguration(context.Background(), testEngineID)
	require.NoError(t, err)

	payload, err := json.Marshal(configuration)
	require.NoError(t, err)

	assert.Contains(t, string(payload), `"stages":[]`)
	assert.Contains(t, string(payload), `"readMethods":[]`)
	assert.Contains(t, string(payload), `"options":[]`)
}

/*
TestAssembleConfiguration_NotFound verifies that storage errors pass through
untouched.
*/
func TestAssembleConfiguration_NotFound(t *testing.T) {
	repo := &fakeRepository{err: apperr.NotFound("Engine")}
	service := tuning.NewService(repo, nil, testLogger())

	_, err := service.AssembleConfiguration(context.Background(), testEngineID)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "Engine not found", ae.Message)
}

/*
TestAssembleConfiguration_CacheHit verifies that a warm cache short-circuits
the storage read, and that a miss populates the cache.
*/
func TestAssembleConfiguration_CacheHit(t *testing.T) {
	repo := &fakeRepository{record: demoRecord()}
	cache := newFakeCache()
	service := tuning.NewService(repo, cache, testLogger())

	// Cold: storage is read, result is cached.
	first, err := service.AssembleConfiguration(context.Background(), testEngineID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, cache.sets)

	// Warm: served from cache, storage untouched.
	second, err := service.AssembleConfiguration(context.Background(), testEngineID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first, second)
}

/*
TestAssembleConfiguration_NilCache verifies the service works with no cache
wired at all.
*/
func TestAssembleConfiguration_NilCache(t *testing.T) {
	repo := &fakeRepository{record: demoRecord()}
	service := tuning.NewService(repo, nil, testLogger())

	_, err := service.AssembleConfiguration(context.Background(), testEngineID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
}
