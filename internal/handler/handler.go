package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lybamughees/mobile-project/internal/media"
	"github.com/lybamughees/mobile-project/internal/model"
	"github.com/lybamughees/mobile-project/internal/service"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
	media    *media.Store
}

func New(services *service.Service, mediaStore *media.Store) *Handler {
	return &Handler{
		services: services,
		media:    mediaStore,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/sign-up", h.authSignUp)
			auth.POST("/token", h.authToken)
		}

		client := v1.Group("/client")
		{
			client.Use(h.authMiddleware)

			client.GET("/me", h.clientMe)
			client.GET("/users", h.clientProfile)
			client.GET("/search", h.clientSearch)
			client.GET("/activity", h.clientActivity)

			client.POST("/follow", h.clientFollow)
			client.GET("/followers", h.clientFollowers)
			client.GET("/following", h.clientFollowing)

			client.POST("/bio", h.clientUpdateBio)
			client.POST("/avatar", h.clientUpdateAvatar)

			client.GET("/posts", h.clientFeed)
			client.GET("/post", h.clientPost)
			client.GET("/likes", h.clientPostLikes)
			client.GET("/comments", h.clientPostComments)
			client.POST("/post", h.clientCreatePost)
			client.POST("/comment", h.clientCreateComment)
			client.POST("/like", h.clientToggleLike)
		}

		v1.GET("/media/:filename", h.getMedia)
	}

	return r
}

func (h *Handler) getUser(c *gin.Context) *model.User {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.User)
	if !ok {
		return nil
	}

	return &user
}
