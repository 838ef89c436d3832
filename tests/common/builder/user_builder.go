//go:build unit || e2e

package builder

import (
	"artshop/internal/domain/user"
)

type UserBuilder struct {
	Username     string
	Email        string
	PasswordHash string
	Role         user.Role
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         user.RoleCustomer,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.Username = username
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithRole(role user.Role) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(b.Username)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}

	return user.NewUser(username, email, b.PasswordHash, b.Role), nil
}
