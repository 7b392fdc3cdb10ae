// Package handlers maps the HTTP surface onto the service layer. POST
// endpoints accept browser form submissions and answer successful mutations
// with a redirect, mirroring how the directory is used from web forms; reads
// return JSON documents for the presentation layer.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SodiqovS/Fyyur/internal/apperrors"
	"github.com/SodiqovS/Fyyur/internal/models"
	"github.com/SodiqovS/Fyyur/internal/service"
)

type Handlers struct {
	services *service.Services
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{services: services}
}

// Home returns the most recently listed artists and venues.
func (h *Handlers) Home(c *gin.Context) {
	artists, err := h.services.Artists.Recent(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	venues, err := h.services.Venues.Recent(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.HomeResponse{
		RecentArtists: artists,
		RecentVenues:  venues,
	})
}

// renderError maps service errors onto HTTP responses. Validation failures
// report per-field messages, missing references answer 404, and anything else
// is a storage failure already rolled back by the store.
func (h *Handlers) renderError(c *gin.Context, err error) {
	c.Error(err)

	var validationErr *apperrors.ValidationError
	var notFoundErr *apperrors.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	default:
		slog.Error("Request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred"})
	}
}

// bindError answers a malformed form body that never reached validation.
func (h *Handlers) bindError(c *gin.Context, err error) {
	c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
}

// idParam parses the numeric :id path parameter.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a non-negative integer"})
		return 0, false
	}
	return id, true
}
