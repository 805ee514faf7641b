package main

import (
	"log"
	"os"

	"github.com/trezcool/chuo/apps/api/echo"
	"github.com/trezcool/chuo/core"
	"github.com/trezcool/chuo/core/directory"
	"github.com/trezcool/chuo/core/session"
	"github.com/trezcool/chuo/services/email"
	"github.com/trezcool/chuo/services/logger"
	"github.com/trezcool/chuo/storage/memory"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up services
	var logger core.Logger
	var mailSvc core.EmailService
	if core.Conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
		mailSvc = emailsvc.NewConsoleService()
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	// set up the directory store with the sample dataset
	db, err := memorystore.Open()
	errAndDie(err)
	errAndDie(memorystore.Seed(db))

	dirSvc := directory.NewService(db, mailSvc)
	sessSvc := session.NewService(dirSvc)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:      core.Conf.ServerAddress(),
			DirectorySvc: dirSvc,
			SessionSvc:   sessSvc,
			Logger:       logger,
		},
	)
	app.Start()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
