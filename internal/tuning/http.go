// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package tuning

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

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/config", handler.getConfiguration)
}

func (handler *Handler) getConfiguration(writer http.ResponseWriter, request *http.Request) {
	engineID := requestutil.Query(request, "engineId")

	configuration, err := handler.service.AssembleConfiguration(request.Context(), engineID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, configuration)
}
