package model

import "github.com/jackc/pgx/v5/pgtype"

type User struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	CreatedTime pgtype.Timestamptz `json:"created_time"`
}
