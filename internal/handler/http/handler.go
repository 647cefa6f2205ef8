// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and compression
// concerns are all handled at this layer before requests are forwarded
// to the service layer.
package http

import (
	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
