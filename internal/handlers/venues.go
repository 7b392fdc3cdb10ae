package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SodiqovS/Fyyur/internal/models"
)

// ListVenues returns all venues grouped by (city, state).
func (h *Handlers) ListVenues(c *gin.Context) {
	areas, err := h.services.Venues.Areas(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, areas)
}

// SearchVenues matches venue names against the submitted search term.
func (h *Handlers) SearchVenues(c *gin.Context) {
	var form models.SearchForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindError(c, err)
		return
	}

	result, err := h.services.Venues.Search(c.Request.Context(), form.SearchTerm)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetVenue returns the venue detail page with past and upcoming shows.
func (h *Handlers) GetVenue(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	page, err := h.services.Venues.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// CreateVenue stores a new venue and sends the browser back to the home page.
func (h *Handlers) CreateVenue(c *gin.Context) {
	var form models.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindError(c, err)
		return
	}

	if _, err := h.services.Venues.Create(c.Request.Context(), &form); err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// UpdateVenue overwrites a venue and sends the browser to its detail page.
func (h *Handlers) UpdateVenue(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var form models.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindError(c, err)
		return
	}

	if _, err := h.services.Venues.Update(c.Request.Context(), id, &form); err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", id))
}

// DeleteVenue removes a venue and sends the browser to the venue listing.
func (h *Handlers) DeleteVenue(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.services.Venues.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/venues")
}
