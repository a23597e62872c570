package main

import (
	"github.com/joho/godotenv"

	"github.com/parth/tourdates/internal/cli"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	cli.Execute()
}
