package model

type CreateUserDTO struct {
	Name string `json:"name"`
}
