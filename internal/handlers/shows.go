package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SodiqovS/Fyyur/internal/models"
)

// ListShows returns every show ordered by start time.
func (h *Handlers) ListShows(c *gin.Context) {
	shows, err := h.services.Shows.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, shows)
}

// CreateShow stores a new show and sends the browser back to the home page.
func (h *Handlers) CreateShow(c *gin.Context) {
	var form models.ShowForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindError(c, err)
		return
	}

	if _, err := h.services.Shows.Create(c.Request.Context(), &form); err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
