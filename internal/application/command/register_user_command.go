package command

import "linkedpro/internal/application/common"

type RegisterUserCommand struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
}

// RegisterUserCommandResult carries a session token because registration
// logs the new user in immediately.
type RegisterUserCommandResult struct {
	Token string             `json:"token"`
	User  *common.UserResult `json:"user"`
}
