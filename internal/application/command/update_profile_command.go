package command

import "linkedpro/internal/application/common"

type UpdateProfileCommand struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

type UpdateProfileCommandResult struct {
	User *common.UserResult `json:"user"`
}
