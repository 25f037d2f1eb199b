package main

import (
	"kicker/internal/back"
	"kicker/internal/config"
)

func loadFixtures() error {
	conf, err := config.New()
	if err != nil {
		return err
	}

	if err := back.Migrate(conf.MigrationsDir, conf.SQLPath); err != nil {
		return err
	}

	b, err := back.New("sqlite3", conf.SQLPath)
	if err != nil {
		return err
	}

	return b.LoadFixtures()
}
