package model

import "github.com/jackc/pgx/v5/pgtype"

type Post struct {
	ID          int64              `json:"post_id"`
	UserID      int64              `json:"user_id"`
	Content     string             `json:"content"`
	CreatedTime pgtype.Timestamptz `json:"created_time"`
}
