package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lybamughees/mobile-project/internal/dto"
)

func (h *Handler) authSignUp(c *gin.Context) {
	var input dto.SignUpDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Auth.SignUp(c.Request.Context(), input); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewBasicResponse(true, ""))
}

func (h *Handler) authToken(c *gin.Context) {
	var input dto.SignInDto
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	token, err := h.services.Auth.SignIn(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
