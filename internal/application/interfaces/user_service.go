package interfaces

import (
	"linkedpro/internal/application/command"
	"linkedpro/internal/application/query"
)

type UserService interface {
	Register(cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	Logout(tokenID string)
	UpdateProfile(userID int, cmd *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error)
	FindUserByID(id int) (*query.UserQueryResult, error)
}
