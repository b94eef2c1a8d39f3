// Package controllers holds the HTTP handlers. Each controller owns one
// resource and follows the same pipeline: decode, validate, call the
// service, write the envelope. Domain errors map onto statuses in one
// place so every resource fails the same way.
package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/meera/app/services"
	"github.com/shashiranjanraj/meera/pkg/logger"
	"github.com/shashiranjanraj/meera/pkg/response"
)

// respondError translates service errors into the response envelope.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w, "Not found")
	case errors.Is(err, services.ErrUploadFailed):
		logger.WithCtx(r.Context()).Error("upload failed", "error", err)
		response.ServerError(w, "Image upload failed")
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
		response.ServerError(w, err.Error())
	}
}
