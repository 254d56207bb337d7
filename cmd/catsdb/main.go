package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dbmanager/internal/cli/cats"
	"dbmanager/internal/config"
	"dbmanager/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadEnvFile(); err != nil {
		log.Fatalf("config: %v", err)
	}

	connect := func(ctx context.Context) (cats.Store, func(context.Context) error, error) {
		cfg, err := config.LoadMongo()
		if err != nil {
			return nil, nil, err
		}
		db, err := repository.ConnectMongo(ctx, cfg.URI, cfg.DBName, cfg.Timeout)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[info] connected to MongoDB database %s", cfg.DBName)
		return repository.NewCatRepository(db), db.Client().Disconnect, nil
	}

	if err := cats.Execute(ctx, cats.NewRootCmd(connect), os.Args[1:]); err != nil {
		log.Printf("[error] %v", err)
		stop()
		os.Exit(1)
	}
}
