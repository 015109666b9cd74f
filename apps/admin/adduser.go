package main

import (
	"context"

	"github.com/learnplaygrow/backend/core/user"
)

// addUser registers a new user; validation (including the closed role set and
// email uniqueness) goes through the same path as the signup endpoint.
func (cli *commandLine) addUser(name, email, role, pwd string) error {
	nu := user.NewUser{
		Name:     name,
		Email:    email,
		Password: pwd,
		Role:     role,
	}
	if err := nu.Validate(); err != nil {
		return err
	}
	_, err := user.NewService(cli.usrRepo).Register(context.Background(), nu)
	return err
}
