package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/gorm"

	"dbmanager/internal/cli/tasks"
	"dbmanager/internal/config"
	"dbmanager/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadEnvFile(); err != nil {
		log.Fatalf("config: %v", err)
	}

	open := func(ctx context.Context) (*gorm.DB, error) {
		cfg, err := config.LoadDB()
		if err != nil {
			return nil, err
		}
		return repository.NewDB(cfg)
	}

	if err := tasks.NewRootCmd(open).ExecuteContext(ctx); err != nil {
		log.Printf("[error] %v", err)
		stop()
		os.Exit(1)
	}
}
