package model

import (
	"fmt"

	"github.com/google/uuid"
)

// User is the root of the ownership hierarchy. The display name is unique
// across all users.
type User struct {
	id   string
	name string
}

// NewUser creates a user with a freshly generated id.
func NewUser(name string) (*User, error) {
	return newUser(uuid.New().String(), name)
}

func newUser(id, name string) (*User, error) {
	if isBlank(id) {
		return nil, fmt.Errorf("%w: user id", ErrMissingRequiredField)
	}
	if isBlank(name) {
		return nil, fmt.Errorf("%w: user name", ErrMissingRequiredField)
	}
	return &User{id: id, name: name}, nil
}

func (u *User) ID() string {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) SetName(name string) error {
	if isBlank(name) {
		return fmt.Errorf("%w: user name", ErrMissingRequiredField)
	}
	u.name = name
	return nil
}
