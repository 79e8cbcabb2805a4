package mapper

import (
	"strings"

	"linkedpro/internal/application/common"
	"linkedpro/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Bio:       user.Bio,
		Initials:  Initials(user.Name),
		CreatedAt: user.CreatedAt,
	}
}

// Initials returns up to two uppercase initials from the words of a name,
// for the avatar placeholder.
func Initials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		runes := []rune(word)
		b.WriteString(strings.ToUpper(string(runes[0])))
	}
	return b.String()
}
