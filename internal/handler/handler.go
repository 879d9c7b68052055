package handler

import (
	"github.com/BloggingApp/content-service/internal/model"
	"github.com/BloggingApp/content-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", h.health)

		posts := v1.Group("/posts")
		{
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.GET("", h.notRequiredAuthMiddleware, h.postsList)
			posts.GET("/my", h.authMiddleware, h.postsGetMy)

			post := posts.Group("/:postID")
			{
				post.GET("", h.notRequiredAuthMiddleware, h.postsGetByID)
				post.PATCH("", h.authMiddleware, h.postsEdit)
				post.DELETE("", h.authMiddleware, h.postsDelete)
				post.POST("/publish", h.authMiddleware, h.postsPublish)
				post.POST("/unpublish", h.authMiddleware, h.postsUnpublish)

				post.POST("/comments", h.authMiddleware, h.commentsCreate)
				post.GET("/comments", h.commentsGet)
			}
		}

		comments := v1.Group("/comments")
		{
			comment := comments.Group("/:commentID")
			{
				comment.GET("", h.commentsGetByID)
				comment.POST("/replies", h.authMiddleware, h.commentsReply)
				comment.DELETE("", h.authMiddleware, h.commentsDelete)
			}
		}
	}

	return r
}

const identityCtxKey = "identity"

// getIdentityFromRequest returns the identity set by the auth
// middlewares; anonymous when none was set.
func (h *Handler) getIdentityFromRequest(c *gin.Context) model.Identity {
	identityReq, _ := c.Get(identityCtxKey)

	identity, ok := identityReq.(model.Identity)
	if !ok {
		return model.Identity{}
	}

	return identity
}
