package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/BloggingApp/content-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "ok"))
}

func (h *Handler) postsCreate(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), identity.UserID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

func (h *Handler) postsList(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)
	page, limit := pageParams(c)

	posts, err := h.services.Post.FindAll(c.Request.Context(), identity, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsGetMy(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)
	page, limit := pageParams(c)

	posts, err := h.services.Post.FindAuthorPosts(c.Request.Context(), identity.UserID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), postID, identity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}

func (h *Handler) postsEdit(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	var input dto.EditPostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	post, err := h.services.Post.Edit(c.Request.Context(), postID, identity, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}

func (h *Handler) postsDelete(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), postID, identity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) postsPublish(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	post, err := h.services.Post.Publish(c.Request.Context(), postID, identity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}

func (h *Handler) postsUnpublish(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	post, err := h.services.Post.Unpublish(c.Request.Context(), postID, identity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}

func postIDParam(c *gin.Context) (int64, error) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.ParseInt(postIDString, 10, 64)
	if err != nil {
		return 0, err
	}
	return postID, nil
}

// pageParams reads page/limit from the query string. Malformed values
// come back as zero and are coerced to defaults by the service.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}
