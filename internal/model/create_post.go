package model

type CreatePostDTO struct {
	UserID  int64  `json:"user_id"`
	Content string `json:"content"`
}
