package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/BloggingApp/content-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsCreate(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	var input dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdComment, err := h.services.Comment.Create(c.Request.Context(), postID, identity, input.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdComment)
}

func (h *Handler) commentsGet(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	page, limit := pageParams(c)

	comments, err := h.services.Comment.FindPostComments(c.Request.Context(), postID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *Handler) commentsGetByID(c *gin.Context) {
	commentID, err := commentIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	thread, err := h.services.Comment.FindWithReplies(c.Request.Context(), commentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *thread)
}

func (h *Handler) commentsReply(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	commentID, err := commentIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	var input dto.CreateReplyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdReply, err := h.services.Comment.CreateReply(c.Request.Context(), commentID, identity, input.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdReply)
}

func (h *Handler) commentsDelete(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	commentID, err := commentIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), commentID, identity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func commentIDParam(c *gin.Context) (int64, error) {
	commentIDString := strings.TrimSpace(c.Param("commentID"))
	commentID, err := strconv.ParseInt(commentIDString, 10, 64)
	if err != nil {
		return 0, err
	}
	return commentID, nil
}
