package main

import (
	"github.com/learnplaygrow/backend/storage/database"
)

var migrateFunc = database.Migrate // mockable

func (cli *commandLine) migrate(args []string) error {
	command := args[0]
	return migrateFunc(cli.db.DB, command, args[1:]...)
}
