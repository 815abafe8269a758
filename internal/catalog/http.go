// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/lukavetter/torqline/internal/platform/request"
	"github.com/lukavetter/torqline/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the four hierarchy listings. Parent identifiers are
// query parameters, matching the embedding widget's calls
// (GET /models?brandId=...).
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/brands", handler.listBrands)
	router.Get("/models", handler.listModels)
	router.Get("/builds", handler.listBuilds)
	router.Get("/engines", handler.listEngines)
}

func (handler *Handler) listBrands(writer http.ResponseWriter, request *http.Request) {
	brands, err := handler.service.ListBrands(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, brands)
}

func (handler *Handler) listModels(writer http.ResponseWriter, request *http.Request) {
	brandID := requestutil.Query(request, "brandId")

	models, err := handler.service.ListModels(request.Context(), brandID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, models)
}

func (handler *Handler) listBuilds(writer http.ResponseWriter, request *http.Request) {
	modelID := requestutil.Query(request, "modelId")

	builds, err := handler.service.ListBuilds(request.Context(), modelID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, builds)
}

func (handler *Handler) listEngines(writer http.ResponseWriter, request *http.Request) {
	buildID := requestutil.Query(request, "buildId")

	engines, err := handler.service.ListEngines(request.Context(), buildID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, engines)
}
