package main

import (
	"log"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
