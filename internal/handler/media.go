package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lybamughees/mobile-project/internal/dto"
	"github.com/lybamughees/mobile-project/internal/media"
)

func (h *Handler) getMedia(c *gin.Context) {
	path, err := h.media.Path(c.Param("filename"))
	if err != nil {
		if err == media.ErrNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}

		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.File(path)
}
