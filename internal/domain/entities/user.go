package entities

import "time"

// DefaultBio is assigned when registration omits the bio field.
const DefaultBio = "New member of LinkedPro"

// User is an identity record. IDs are sequential integers assigned by the
// identity repository; ID, Password and CreatedAt are immutable after
// creation. Passwords are stored and compared as plaintext on purpose:
// the application is a self-contained demo with no credential security.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUser(name, email, password, bio string) *User {
	if bio == "" {
		bio = DefaultBio
	}
	return &User{
		Name:      name,
		Email:     email,
		Password:  password,
		Bio:       bio,
		CreatedAt: time.Now().UTC(),
	}
}

// CheckPassword reports whether the candidate matches exactly. Comparison
// is case-sensitive and whitespace-sensitive.
func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}

// UpdateProfile mutates the editable fields in place. ID, Password and
// CreatedAt are never touched.
func (u *User) UpdateProfile(name, email, bio string) {
	u.Name = name
	u.Email = email
	u.Bio = bio
}
