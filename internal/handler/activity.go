package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) clientActivity(c *gin.Context) {
	user := h.getUser(c)

	entries, err := h.services.Activity.List(c.Request.Context(), user.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
