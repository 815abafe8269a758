// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package catalog

import (
	"context"
	"log/slog"

	"github.com/lukavetter/torqline/internal/platform/apperr"
	"github.com/lukavetter/torqline/internal/platform/validate"
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

// ListBrands returns every brand ordered by name ascending.
func (service *Service) ListBrands(context context.Context) ([]*Brand, error) {
	return service.repo.ListBrands(context)
}

// ListModels returns the models of one brand.
//
// A malformed brandID is rejected before any storage call. A well-formed but
// unknown brandID returns an empty list: the resolver deliberately does not
// distinguish "brand missing" from "brand has no models".
func (service *Service) ListModels(context context.Context, brandID string) ([]*Model, error) {
	if !validate.IsUUID(brandID) {
		return nil, apperr.InvalidArgument("Invalid brandId")
	}
	return service.repo.ListModels(context, brandID)
}

// ListBuilds returns the builds of one model. Same guard and empty-list
// semantics as ListModels.
func (service *Service) ListBuilds(context context.Context, modelID string) ([]*Build, error) {
	if !validate.IsUUID(modelID) {
		return nil, apperr.InvalidArgument("Invalid modelId")
	}
	return service.repo.ListBuilds(context, modelID)
}

// ListEngines returns the engines of one build. Same guard and empty-list
// semantics as ListModels.
func (service *Service) ListEngines(context context.Context, buildID string) ([]*Engine, error) {
	if !validate.IsUUID(buildID) {
		return nil, apperr.InvalidArgument("Invalid buildId")
	}
	return service.repo.ListEngines(context, buildID)
}
