package handler

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lybamughees/mobile-project/internal/dto"
)

func (h *Handler) clientFeed(c *gin.Context) {
	user := h.getUser(c)

	feed, err := h.services.Post.Feed(c.Request.Context(), user.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

func (h *Handler) clientPost(c *gin.Context) {
	user := h.getUser(c)

	postID, err := uuid.Parse(c.Query("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	post, err := h.services.Post.Get(c.Request.Context(), postID, user.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) clientPostLikes(c *gin.Context) {
	postID, err := uuid.Parse(c.Query("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	likes, err := h.services.Post.Likes(c.Request.Context(), postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

func (h *Handler) clientPostComments(c *gin.Context) {
	postID, err := uuid.Parse(c.Query("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	comments, err := h.services.Post.Comments(c.Request.Context(), postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *Handler) clientCreatePost(c *gin.Context) {
	user := h.getUser(c)

	var input dto.CreatePostDto
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	// The photo part is optional.
	var (
		photo     io.Reader
		extension string
	)
	if fileHeader, err := c.FormFile("photo"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
			return
		}
		defer file.Close()

		photo = file
		extension = filepath.Ext(fileHeader.Filename)
	}

	if err := h.services.Post.Create(c.Request.Context(), user.Username, input, extension, photo); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewBasicResponse(true, ""))
}

func (h *Handler) clientCreateComment(c *gin.Context) {
	user := h.getUser(c)

	var input dto.CreateCommentDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Post.AddComment(c.Request.Context(), user.Username, input); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewBasicResponse(true, ""))
}

func (h *Handler) clientToggleLike(c *gin.Context) {
	user := h.getUser(c)

	postID, err := uuid.Parse(c.Query("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.Post.ToggleLike(c.Request.Context(), postID, user.Username); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewBasicResponse(true, ""))
}
