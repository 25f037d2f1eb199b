package main

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"kicker/internal/back"
	"kicker/internal/config"
	"kicker/internal/web"
)

func serve() error {
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

	done := make(chan struct{})
	signaled := make(chan os.Signal, 1)
	signal.Notify(signaled, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup
	server := web.NewServer(b, conf)
	go server.Serve(&wg, done)

	sig := <-signaled
	log.Printf("info: received signal %d", sig)
	close(done)
	wg.Wait()

	log.Print("info: shutdown complete")

	return nil
}
