package repositories

import "linkedpro/internal/domain/entities"

// UserRepository is the identity store. Create assigns the next sequential
// id. Lookups return nil (no error) when there is no match. All methods
// exchange snapshot copies, so callers never share mutable state with the
// store; edits are applied by handing a modified copy to Update. Email
// uniqueness is enforced by the service layer, which checks FindByEmail
// before any write.
type UserRepository interface {
	Create(user *entities.User) *entities.User
	FindByID(id int) *entities.User
	FindByEmail(email string) *entities.User
	Update(user *entities.User) *entities.User
	All() []*entities.User
}
