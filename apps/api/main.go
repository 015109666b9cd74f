package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/learnplaygrow/backend/apps/api/echo"
	"github.com/learnplaygrow/backend/core"
	"github.com/learnplaygrow/backend/core/catalog"
	"github.com/learnplaygrow/backend/core/quiz"
	"github.com/learnplaygrow/backend/core/user"
	"github.com/learnplaygrow/backend/services/logger"
	"github.com/learnplaygrow/backend/storage/database"
	"github.com/learnplaygrow/backend/storage/database/inmem"
	"github.com/learnplaygrow/backend/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatal(err)
	}

	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	if err := run(conf, logger, std); err != nil {
		logger.Fatal("api: startup failed", err)
	}
}

func run(conf *core.Config, logger core.Logger, std *log.Logger) error {
	// set up DB
	db, err := database.Open(conf)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := database.Ping(db); err != nil {
		return err
	}

	// set up services
	usrSvc := user.NewService(sqlxrepos.NewUserRepository(db))
	catSvc := catalog.NewService(sqlxrepos.NewCatalogRepository(db), usrSvc)
	quizSvc := quiz.NewService(inmemdb.NewQuizRepository())

	// start API server
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(
		conf.Server.Address(),
		shutdown,
		&echoapi.Deps{
			Conf:       conf,
			Logger:     logger,
			UserSvc:    usrSvc,
			CatalogSvc: catSvc,
			QuizSvc:    quizSvc,
		},
	)

	serverErrors := make(chan error, 1)
	go func() {
		std.Printf("api: listening on %s", conf.Server.Address())
		serverErrors <- app.Start()
	}()

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		std.Printf("api: %v: starting shutdown", sig)

		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err := app.Stop(ctx); err != nil {
			std.Printf("api: graceful shutdown failed: %v", err)
			return err
		}
	}
	return nil
}
