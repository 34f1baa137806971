package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lybamughees/mobile-project/internal/dto"
	"github.com/lybamughees/mobile-project/internal/service"
)

var (
	errNotAuthorized         = errors.New("user is not authorized")
	errInvalidID             = errors.New("provided an invalid ID")
	errUsernameIsNotProvided = errors.New("please provide username")
)

// respondError translates service errors into the API status taxonomy:
// 400 bad request, 401 unauthorized, 404 not found, 409 conflict,
// 500 for everything unexpected.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrUsernameTaken):
		status = http.StatusConflict
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	}

	c.JSON(status, dto.NewBasicResponse(false, err.Error()))
}
