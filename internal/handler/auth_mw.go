package handler

import (
	"net/http"
	"os"
	"strings"

	"github.com/BloggingApp/content-service/internal/dto"
	"github.com/BloggingApp/content-service/internal/model"
	"github.com/BloggingApp/content-service/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	accessToken := strings.Split(header, " ")[1]
	if accessToken == "" {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	identity, err := identityFromAccessToken(accessToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	c.Set(identityCtxKey, identity)

	c.Next()
}

func identityFromAccessToken(accessToken string) (model.Identity, error) {
	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		return model.Identity{}, err
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return model.Identity{}, errNotAuthorized
	}

	id, err := uuid.Parse(idString)
	if err != nil {
		return model.Identity{}, err
	}

	return model.Authenticated(id), nil
}
