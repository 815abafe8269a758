// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package lead

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
	router.Post("/leads", handler.acceptLead)
}

func (handler *Handler) acceptLead(writer http.ResponseWriter, request *http.Request) {
	var input Input

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	leadID, err := handler.service.AcceptLead(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]string{"id": leadID})
}
