package main

import (
	"log"
	"os"

	"github.com/trezcool/chuo/core/directory"
	"github.com/trezcool/chuo/storage/memory"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up the store; the directory lives in process memory so every run
	// starts from the sample dataset
	db, err := memorystore.Open()
	errAndDie(err)
	errAndDie(memorystore.Seed(db))

	// start CLI
	cli := commandLine{
		dirSvc: directory.NewService(db, nil),
		out:    os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
