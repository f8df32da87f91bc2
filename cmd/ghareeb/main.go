package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/algharieb/ghareeb-app/cmd/ghareeb/commands"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
