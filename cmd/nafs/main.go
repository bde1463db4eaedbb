package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.New().ExecuteContext(ctx); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
