package main

import "github.com/housestock/backend/internal/cli"

func main() {
	cli.Execute()
}
