package dto

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Publish bool   `json:"publish"`
}

type EditPostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type PageRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
