package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lybamughees/mobile-project/internal/dto"
)

func (h *Handler) clientMe(c *gin.Context) {
	user := h.getUser(c)

	profile, err := h.services.User.Profile(c.Request.Context(), user.Username, user.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *Handler) clientProfile(c *gin.Context) {
	user := h.getUser(c)

	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errUsernameIsNotProvided.Error()))
		return
	}

	profile, err := h.services.User.Profile(c.Request.Context(), username, user.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *Handler) clientSearch(c *gin.Context) {
	user := h.getUser(c)

	results, err := h.services.User.Search(c.Request.Context(), c.Query("search_query"), user.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *Handler) clientFollow(c *gin.Context) {
	user := h.getUser(c)

	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errUsernameIsNotProvided.Error()))
		return
	}

	if err := h.services.User.Follow(c.Request.Context(), user.Username, username); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewBasicResponse(true, ""))
}

func (h *Handler) clientFollowers(c *gin.Context) {
	user := h.getUser(c)

	followers, err := h.services.User.Followers(c.Request.Context(), user.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, followers)
}

func (h *Handler) clientFollowing(c *gin.Context) {
	user := h.getUser(c)

	following, err := h.services.User.Following(c.Request.Context(), user.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, following)
}

func (h *Handler) clientUpdateBio(c *gin.Context) {
	user := h.getUser(c)

	var input dto.UpdateBioDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.User.UpdateBio(c.Request.Context(), user.Username, input.Bio); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewBasicResponse(true, ""))
}

func (h *Handler) clientUpdateAvatar(c *gin.Context) {
	user := h.getUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}
	defer file.Close()

	extension := filepath.Ext(fileHeader.Filename)
	if err := h.services.User.UpdateAvatar(c.Request.Context(), user.Username, extension, file); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewBasicResponse(true, ""))
}
