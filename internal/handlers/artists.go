package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SodiqovS/Fyyur/internal/models"
)

// ListArtists returns every artist ordered by id.
func (h *Handlers) ListArtists(c *gin.Context) {
	artists, err := h.services.Artists.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, artists)
}

// SearchArtists matches artist names against the submitted search term.
func (h *Handlers) SearchArtists(c *gin.Context) {
	var form models.SearchForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindError(c, err)
		return
	}

	result, err := h.services.Artists.Search(c.Request.Context(), form.SearchTerm)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetArtist returns the artist detail page with past and upcoming shows.
func (h *Handlers) GetArtist(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	page, err := h.services.Artists.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// CreateArtist stores a new artist and sends the browser back to the home page.
func (h *Handlers) CreateArtist(c *gin.Context) {
	var form models.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindError(c, err)
		return
	}

	if _, err := h.services.Artists.Create(c.Request.Context(), &form); err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// UpdateArtist overwrites an artist and sends the browser to its detail page.
func (h *Handlers) UpdateArtist(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var form models.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindError(c, err)
		return
	}

	if _, err := h.services.Artists.Update(c.Request.Context(), id, &form); err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", id))
}
