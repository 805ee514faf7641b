package main

import (
	"fmt"

	"github.com/trezcool/chuo/core"
	"github.com/trezcool/chuo/core/directory"
)

// addUser updates or creates a directory.User
func (cli *commandLine) addUser(name, email string, role directory.Role) error {
	email = core.CleanString(email, true /* lower */)

	if usr, err := cli.dirSvc.GetUserByEmail(email); err == nil {
		uu := directory.UpdateUser{Name: name, Email: email, Role: role}
		if err := uu.Validate(usr); err != nil {
			return err
		}
		updated, err := cli.dirSvc.UpdateUser(usr.ID, uu)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "user %d updated: %s <%s> (%s)\n", updated.ID, updated.Name, updated.Email, updated.Role)
		return nil
	} else if err != directory.ErrUserNotFound {
		return err
	}

	nu := directory.NewUser{Name: name, Email: email, Role: role}
	if err := nu.Validate(); err != nil {
		return err
	}
	usr, err := cli.dirSvc.CreateUser(nu)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "user %d created: %s <%s> (%s)\n", usr.ID, usr.Name, usr.Email, usr.Role)
	return nil
}
