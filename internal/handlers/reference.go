package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListStates returns the seeded states, the choices for the state select.
func (h *Handlers) ListStates(c *gin.Context) {
	states, err := h.services.Reference.States(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, states)
}

// ListGenres returns the seeded genres, the choices for the genre multiselect.
func (h *Handlers) ListGenres(c *gin.Context) {
	genres, err := h.services.Reference.Genres(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, genres)
}
