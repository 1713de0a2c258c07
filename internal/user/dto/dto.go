package dto

import "github.com/posuniversal/pos-admin-service/internal/model"

type RegisterInput struct {
	Username string
	Password string
	Name     string
	Email    string
}

type Session struct {
	Token     string      `json:"token"`
	ValidTill string      `json:"valid_till"`
	User      *model.User `json:"user"`
}
