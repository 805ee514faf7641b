package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/trezcool/chuo/core/directory"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	dirSvc *directory.Service
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  adduser -name NAME -email EMAIL -role ROLE - create (or update) a user")
	fmt.Fprintln(cli.out, "  seed - print a summary of the sample dataset")
	fmt.Fprintln(cli.out, "  report - print the campus report")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserName := addUserCmd.String("name", "", "The user's display name.")
	addUserEmail := addUserCmd.String("email", "", "The user's email address.")
	addUserRole := addUserCmd.String("role", string(directory.RoleStudent), "One of Student, Instructor or Admin.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserName == "" || *addUserEmail == "" {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserName, *addUserEmail, directory.Role(*addUserRole))
	case "seed":
		return cli.printSeedSummary()
	case "report":
		return cli.printReport()
	default:
		cli.printUsage()
		return errHelp
	}
}
